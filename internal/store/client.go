package store

import (
	"context"

	"github.com/m04kA/SMC-SalonWeb/internal/domain"
	"github.com/m04kA/SMC-SalonWeb/internal/integrations/salonapi"
)

// ClientSlice клиентская база для ресепшна
type ClientSlice struct {
	*Slice[domain.Client]
	api ClientAPI
}

func NewClientSlice(api ClientAPI, log Logger) *ClientSlice {
	return &ClientSlice{Slice: newSlice[domain.Client]("clients", log), api: api}
}

func (s *ClientSlice) FetchAll(ctx context.Context) ([]domain.Client, error) {
	resp, err := thunk[domain.Client, []domain.Client]{
		op:       "fetch",
		fallback: "Failed to fetch clients",
		call: func(ctx context.Context) (*salonapi.Response[[]domain.Client], error) {
			return s.api.ListClients(ctx)
		},
		reduce: func(st *State[domain.Client], data []domain.Client) {
			st.Items = nonNil(data)
		},
	}.run(ctx, s.Slice)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}
