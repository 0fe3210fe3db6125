package store

import (
	"context"

	"github.com/m04kA/SMC-SalonWeb/internal/domain"
	"github.com/m04kA/SMC-SalonWeb/internal/integrations/salonapi"
)

// RoomSlice кабинеты салона
type RoomSlice struct {
	*Slice[domain.Room]
	api RoomAPI
}

func NewRoomSlice(api RoomAPI, log Logger) *RoomSlice {
	return &RoomSlice{Slice: newSlice[domain.Room]("rooms", log), api: api}
}

func (s *RoomSlice) FetchAll(ctx context.Context) ([]domain.Room, error) {
	resp, err := thunk[domain.Room, []domain.Room]{
		op:       "fetch",
		fallback: "Failed to fetch rooms",
		call: func(ctx context.Context) (*salonapi.Response[[]domain.Room], error) {
			return s.api.ListRooms(ctx)
		},
		reduce: func(st *State[domain.Room], data []domain.Room) {
			st.Items = nonNil(data)
		},
	}.run(ctx, s.Slice)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (s *RoomSlice) Create(ctx context.Context, in salonapi.RoomInput) (*domain.Room, error) {
	if err := validatePayload(in); err != nil {
		return nil, s.reject("create", err)
	}

	resp, err := thunk[domain.Room, domain.Room]{
		op:       "create",
		fallback: "Failed to create room",
		success:  "Room created successfully",
		call: func(ctx context.Context) (*salonapi.Response[domain.Room], error) {
			return s.api.CreateRoom(ctx, in)
		},
		reduce: func(st *State[domain.Room], data domain.Room) {
			st.Items = append(st.Items, data)
		},
	}.run(ctx, s.Slice)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
