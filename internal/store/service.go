package store

import (
	"context"

	"github.com/m04kA/SMC-SalonWeb/internal/domain"
	"github.com/m04kA/SMC-SalonWeb/internal/integrations/salonapi"
)

func serviceID(s domain.Service) int64 { return s.ID }

// ServiceSlice услуги салона; Current - открытая карточка услуги
type ServiceSlice struct {
	*Slice[domain.Service]
	api ServiceAPI
}

func NewServiceSlice(api ServiceAPI, log Logger) *ServiceSlice {
	return &ServiceSlice{Slice: newSlice[domain.Service]("services", log), api: api}
}

// FetchAll загружает услуги, categoryID = 0 - без фильтра
func (s *ServiceSlice) FetchAll(ctx context.Context, categoryID int64) ([]domain.Service, error) {
	resp, err := thunk[domain.Service, []domain.Service]{
		op:       "fetch",
		fallback: "Failed to fetch services",
		call: func(ctx context.Context) (*salonapi.Response[[]domain.Service], error) {
			return s.api.ListServices(ctx, categoryID)
		},
		reduce: func(st *State[domain.Service], data []domain.Service) {
			st.Items = nonNil(data)
		},
	}.run(ctx, s.Slice)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// FetchByID загружает одну услугу в Current
func (s *ServiceSlice) FetchByID(ctx context.Context, id int64) (*domain.Service, error) {
	resp, err := thunk[domain.Service, domain.Service]{
		op:       "fetchOne",
		fallback: "Failed to fetch service",
		call: func(ctx context.Context) (*salonapi.Response[domain.Service], error) {
			return s.api.GetService(ctx, id)
		},
		reduce: func(st *State[domain.Service], data domain.Service) {
			st.Current = &data
		},
	}.run(ctx, s.Slice)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *ServiceSlice) Create(ctx context.Context, in salonapi.ServiceInput) (*domain.Service, error) {
	if err := validatePayload(in); err != nil {
		return nil, s.reject("create", err)
	}

	resp, err := thunk[domain.Service, domain.Service]{
		op:       "create",
		fallback: "Failed to create service",
		success:  "Service created successfully",
		call: func(ctx context.Context) (*salonapi.Response[domain.Service], error) {
			return s.api.CreateService(ctx, in)
		},
		reduce: func(st *State[domain.Service], data domain.Service) {
			st.Items = append(st.Items, data)
		},
	}.run(ctx, s.Slice)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *ServiceSlice) Update(ctx context.Context, id int64, in salonapi.ServiceInput) (*domain.Service, error) {
	if err := validatePayload(in); err != nil {
		return nil, s.reject("update", err)
	}

	resp, err := thunk[domain.Service, domain.Service]{
		op:       "update",
		fallback: "Failed to update service",
		success:  "Service updated successfully",
		call: func(ctx context.Context) (*salonapi.Response[domain.Service], error) {
			return s.api.UpdateService(ctx, id, in)
		},
		reduce: func(st *State[domain.Service], data domain.Service) {
			st.Items = replaceByID(st.Items, data, serviceID)
		},
	}.run(ctx, s.Slice)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *ServiceSlice) SetStatus(ctx context.Context, id int64, active bool) (*domain.Service, error) {
	resp, err := thunk[domain.Service, domain.Service]{
		op:       "status",
		fallback: "Failed to update service status",
		success:  "Service status updated",
		call: func(ctx context.Context) (*salonapi.Response[domain.Service], error) {
			return s.api.SetServiceStatus(ctx, id, active)
		},
		reduce: func(st *State[domain.Service], data domain.Service) {
			st.Items = replaceByID(st.Items, data, serviceID)
		},
	}.run(ctx, s.Slice)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
