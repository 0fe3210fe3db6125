package salonapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-SalonWeb/internal/domain"
)

// ListCategories GET /api/categories
func (c *Client) ListCategories(ctx context.Context) (*Response[[]domain.Category], error) {
	return call[[]domain.Category](ctx, c, http.MethodGet, "/api/categories", "/api/categories", nil, nil)
}

// CreateCategory POST /api/categories (multipart, изображение опционально)
func (c *Client) CreateCategory(ctx context.Context, in CategoryInput) (*Response[domain.Category], error) {
	body, err := multipartBody(categoryFields(in), in.Image)
	if err != nil {
		return nil, err
	}
	return call[domain.Category](ctx, c, http.MethodPost, "/api/categories", "/api/categories", nil, body)
}

// UpdateCategory PUT /api/categories/{id}
func (c *Client) UpdateCategory(ctx context.Context, id int64, in CategoryInput) (*Response[domain.Category], error) {
	body, err := multipartBody(categoryFields(in), in.Image)
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/api/categories/%d", id)
	return call[domain.Category](ctx, c, http.MethodPut, "/api/categories/{id}", path, nil, body)
}

// SetCategoryStatus PATCH /api/categories/{id}/status
func (c *Client) SetCategoryStatus(ctx context.Context, id int64, active bool) (*Response[domain.Category], error) {
	body, err := jsonBody(StatusRequest{IsActive: active})
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/api/categories/%d/status", id)
	return call[domain.Category](ctx, c, http.MethodPatch, "/api/categories/{id}/status", path, nil, body)
}

// ListServices GET /api/services, categoryID = 0 - все услуги
func (c *Client) ListServices(ctx context.Context, categoryID int64) (*Response[[]domain.Service], error) {
	var query url.Values
	if categoryID > 0 {
		query = url.Values{"categoryId": []string{strconv.FormatInt(categoryID, 10)}}
	}
	return call[[]domain.Service](ctx, c, http.MethodGet, "/api/services", "/api/services", query, nil)
}

// GetService GET /api/services/{id}
func (c *Client) GetService(ctx context.Context, id int64) (*Response[domain.Service], error) {
	path := fmt.Sprintf("/api/services/%d", id)
	return call[domain.Service](ctx, c, http.MethodGet, "/api/services/{id}", path, nil, nil)
}

// CreateService POST /api/services (multipart)
func (c *Client) CreateService(ctx context.Context, in ServiceInput) (*Response[domain.Service], error) {
	body, err := multipartBody(serviceFields(in), in.Image)
	if err != nil {
		return nil, err
	}
	return call[domain.Service](ctx, c, http.MethodPost, "/api/services", "/api/services", nil, body)
}

// UpdateService PUT /api/services/{id}
func (c *Client) UpdateService(ctx context.Context, id int64, in ServiceInput) (*Response[domain.Service], error) {
	body, err := multipartBody(serviceFields(in), in.Image)
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/api/services/%d", id)
	return call[domain.Service](ctx, c, http.MethodPut, "/api/services/{id}", path, nil, body)
}

// SetServiceStatus PATCH /api/services/{id}/status
func (c *Client) SetServiceStatus(ctx context.Context, id int64, active bool) (*Response[domain.Service], error) {
	body, err := jsonBody(StatusRequest{IsActive: active})
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/api/services/%d/status", id)
	return call[domain.Service](ctx, c, http.MethodPatch, "/api/services/{id}/status", path, nil, body)
}

// ListRooms GET /api/rooms
func (c *Client) ListRooms(ctx context.Context) (*Response[[]domain.Room], error) {
	return call[[]domain.Room](ctx, c, http.MethodGet, "/api/rooms", "/api/rooms", nil, nil)
}

// CreateRoom POST /api/rooms
func (c *Client) CreateRoom(ctx context.Context, in RoomInput) (*Response[domain.Room], error) {
	body, err := jsonBody(in)
	if err != nil {
		return nil, err
	}
	return call[domain.Room](ctx, c, http.MethodPost, "/api/rooms", "/api/rooms", nil, body)
}

// formField пара имя-значение для multipart формы
type formField struct {
	name  string
	value string
}

func categoryFields(in CategoryInput) []formField {
	return []formField{
		{"name", in.Name},
		{"description", in.Description},
		{"isActive", strconv.FormatBool(in.IsActive)},
	}
}

func serviceFields(in ServiceInput) []formField {
	return []formField{
		{"categoryId", strconv.FormatInt(in.CategoryID, 10)},
		{"name", in.Name},
		{"description", in.Description},
		{"price", strconv.FormatFloat(in.Price, 'f', 2, 64)},
		{"durationMinutes", strconv.Itoa(in.DurationMinutes)},
		{"isActive", strconv.FormatBool(in.IsActive)},
	}
}

// multipartBody собирает multipart/form-data; файл уходит в поле image
func multipartBody(fields []formField, image *Upload) (*requestBody, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, fmt.Errorf("%w: failed to write field %s: %v", ErrInternal, f.name, err)
		}
	}

	if image != nil && image.Content != nil {
		part, err := w.CreateFormFile("image", image.Filename)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to create image part: %v", ErrInternal, err)
		}
		if _, err := io.Copy(part, image.Content); err != nil {
			return nil, fmt.Errorf("%w: failed to copy image: %v", ErrInternal, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: failed to close multipart writer: %v", ErrInternal, err)
	}

	return &requestBody{reader: &buf, contentType: w.FormDataContentType()}, nil
}
