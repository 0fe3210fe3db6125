package catalog

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-SalonWeb/internal/api/handlers"
	"github.com/m04kA/SMC-SalonWeb/internal/integrations/salonapi"
)

const maxUploadBytes = 10 << 20

// StatusRequest тело PATCH .../status
type StatusRequest struct {
	IsActive *bool `json:"isActive"`
}

// CategoryRequest форма категории (JSON или multipart с полем image)
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"isActive"`
}

// ServiceRequest форма услуги (JSON или multipart с полем image)
type ServiceRequest struct {
	CategoryID      int64   `json:"categoryId"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	IsActive        bool    `json:"isActive"`
}

// RoomRequest форма кабинета
type RoomRequest struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	IsActive bool   `json:"isActive"`
}

func (r RoomRequest) ToAPIInput() salonapi.RoomInput {
	return salonapi.RoomInput{Name: r.Name, Capacity: r.Capacity, IsActive: r.IsActive}
}

// form поля формы с изображением; close освобождает файл
type form struct {
	values map[string]string
	image  *salonapi.Upload
	close  func()
}

func isMultipart(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")
}

func parseMultipart(r *http.Request) (*form, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, err
	}

	f := &form{values: map[string]string{}, close: func() {}}
	for key, vals := range r.MultipartForm.Value {
		if len(vals) > 0 {
			f.values[key] = vals[0]
		}
	}

	file, header, err := r.FormFile("image")
	switch {
	case err == nil:
		f.image = &salonapi.Upload{Filename: header.Filename, Content: file}
		f.close = func() { _ = file.Close() }
	case !errors.Is(err, http.ErrMissingFile):
		return nil, err
	}
	return f, nil
}

func (f *form) bool(key string) (bool, error) {
	raw := f.values[key]
	if raw == "" {
		return false, nil
	}
	return strconv.ParseBool(raw)
}

func (f *form) int64(key string) (int64, error) {
	raw := f.values[key]
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseInt(raw, 10, 64)
}

func (f *form) float(key string) (float64, error) {
	raw := f.values[key]
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}

// parseCategory читает форму категории в любом из двух форматов
func parseCategory(r *http.Request) (salonapi.CategoryInput, func(), error) {
	if !isMultipart(r) {
		var req CategoryRequest
		if err := handlers.DecodeJSON(r, &req); err != nil {
			return salonapi.CategoryInput{}, func() {}, err
		}
		return salonapi.CategoryInput{Name: req.Name, Description: req.Description, IsActive: req.IsActive}, func() {}, nil
	}

	f, err := parseMultipart(r)
	if err != nil {
		return salonapi.CategoryInput{}, func() {}, err
	}
	active, err := f.bool("isActive")
	if err != nil {
		f.close()
		return salonapi.CategoryInput{}, func() {}, fmt.Errorf("isActive: %w", err)
	}
	return salonapi.CategoryInput{
		Name:        f.values["name"],
		Description: f.values["description"],
		IsActive:    active,
		Image:       f.image,
	}, f.close, nil
}

// parseService читает форму услуги в любом из двух форматов
func parseService(r *http.Request) (salonapi.ServiceInput, func(), error) {
	if !isMultipart(r) {
		var req ServiceRequest
		if err := handlers.DecodeJSON(r, &req); err != nil {
			return salonapi.ServiceInput{}, func() {}, err
		}
		return salonapi.ServiceInput{
			CategoryID:      req.CategoryID,
			Name:            req.Name,
			Description:     req.Description,
			Price:           req.Price,
			DurationMinutes: req.DurationMinutes,
			IsActive:        req.IsActive,
		}, func() {}, nil
	}

	f, err := parseMultipart(r)
	if err != nil {
		return salonapi.ServiceInput{}, func() {}, err
	}

	in := salonapi.ServiceInput{
		Name:        f.values["name"],
		Description: f.values["description"],
		Image:       f.image,
	}
	var perr error
	if in.CategoryID, perr = f.int64("categoryId"); perr != nil {
		f.close()
		return in, func() {}, fmt.Errorf("categoryId: %w", perr)
	}
	if in.Price, perr = f.float("price"); perr != nil {
		f.close()
		return in, func() {}, fmt.Errorf("price: %w", perr)
	}
	duration, perr := f.int64("durationMinutes")
	if perr != nil {
		f.close()
		return in, func() {}, fmt.Errorf("durationMinutes: %w", perr)
	}
	in.DurationMinutes = int(duration)
	if in.IsActive, perr = f.bool("isActive"); perr != nil {
		f.close()
		return in, func() {}, fmt.Errorf("isActive: %w", perr)
	}
	return in, f.close, nil
}
