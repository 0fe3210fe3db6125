package store

import (
	"context"

	"github.com/m04kA/SMC-SalonWeb/internal/domain"
	"github.com/m04kA/SMC-SalonWeb/internal/integrations/salonapi"
)

func categoryID(c domain.Category) int64 { return c.ID }

// CategorySlice категории услуг
type CategorySlice struct {
	*Slice[domain.Category]
	api CategoryAPI
}

func NewCategorySlice(api CategoryAPI, log Logger) *CategorySlice {
	return &CategorySlice{Slice: newSlice[domain.Category]("categories", log), api: api}
}

// FetchAll загружает все категории
func (s *CategorySlice) FetchAll(ctx context.Context) ([]domain.Category, error) {
	resp, err := thunk[domain.Category, []domain.Category]{
		op:       "fetch",
		fallback: "Failed to fetch categories",
		call: func(ctx context.Context) (*salonapi.Response[[]domain.Category], error) {
			return s.api.ListCategories(ctx)
		},
		reduce: func(st *State[domain.Category], data []domain.Category) {
			st.Items = nonNil(data)
		},
	}.run(ctx, s.Slice)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Create создает категорию и добавляет ее в конец списка.
// При ошибке список не меняется.
func (s *CategorySlice) Create(ctx context.Context, in salonapi.CategoryInput) (*domain.Category, error) {
	if err := validatePayload(in); err != nil {
		return nil, s.reject("create", err)
	}

	resp, err := thunk[domain.Category, domain.Category]{
		op:       "create",
		fallback: "Failed to create category",
		success:  "Category created successfully",
		call: func(ctx context.Context) (*salonapi.Response[domain.Category], error) {
			return s.api.CreateCategory(ctx, in)
		},
		reduce: func(st *State[domain.Category], data domain.Category) {
			st.Items = append(st.Items, data)
		},
	}.run(ctx, s.Slice)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// Update изменяет категорию
func (s *CategorySlice) Update(ctx context.Context, id int64, in salonapi.CategoryInput) (*domain.Category, error) {
	if err := validatePayload(in); err != nil {
		return nil, s.reject("update", err)
	}

	resp, err := thunk[domain.Category, domain.Category]{
		op:       "update",
		fallback: "Failed to update category",
		success:  "Category updated successfully",
		call: func(ctx context.Context) (*salonapi.Response[domain.Category], error) {
			return s.api.UpdateCategory(ctx, id, in)
		},
		reduce: func(st *State[domain.Category], data domain.Category) {
			st.Items = replaceByID(st.Items, data, categoryID)
		},
	}.run(ctx, s.Slice)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// SetStatus включает или выключает категорию
func (s *CategorySlice) SetStatus(ctx context.Context, id int64, active bool) (*domain.Category, error) {
	resp, err := thunk[domain.Category, domain.Category]{
		op:       "status",
		fallback: "Failed to update category status",
		success:  "Category status updated",
		call: func(ctx context.Context) (*salonapi.Response[domain.Category], error) {
			return s.api.SetCategoryStatus(ctx, id, active)
		},
		reduce: func(st *State[domain.Category], data domain.Category) {
			st.Items = replaceByID(st.Items, data, categoryID)
		},
	}.run(ctx, s.Slice)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
