package store

import (
	"context"

	"github.com/m04kA/SMC-SalonWeb/internal/domain"
	"github.com/m04kA/SMC-SalonWeb/internal/integrations/salonapi"
)

func accountID(a domain.AdminAccount) int64 { return a.ID }

// AdminSlice учетные записи сотрудников
type AdminSlice struct {
	*Slice[domain.AdminAccount]
	api AdminAPI
}

func NewAdminSlice(api AdminAPI, log Logger) *AdminSlice {
	return &AdminSlice{Slice: newSlice[domain.AdminAccount]("admins", log), api: api}
}

func (s *AdminSlice) FetchAccounts(ctx context.Context) ([]domain.AdminAccount, error) {
	resp, err := thunk[domain.AdminAccount, []domain.AdminAccount]{
		op:       "fetch",
		fallback: "Failed to fetch accounts",
		call: func(ctx context.Context) (*salonapi.Response[[]domain.AdminAccount], error) {
			return s.api.ListAdmins(ctx)
		},
		reduce: func(st *State[domain.AdminAccount], data []domain.AdminAccount) {
			st.Items = nonNil(data)
		},
	}.run(ctx, s.Slice)
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (s *AdminSlice) CreateAccount(ctx context.Context, req salonapi.CreateAccountRequest) (*domain.AdminAccount, error) {
	if err := validatePayload(req); err != nil {
		return nil, s.reject("create", err)
	}

	resp, err := thunk[domain.AdminAccount, domain.AdminAccount]{
		op:       "create",
		fallback: "Failed to create account",
		success:  "Account created successfully",
		call: func(ctx context.Context) (*salonapi.Response[domain.AdminAccount], error) {
			return s.api.CreateAdmin(ctx, req)
		},
		reduce: func(st *State[domain.AdminAccount], data domain.AdminAccount) {
			st.Items = append(st.Items, data)
		},
	}.run(ctx, s.Slice)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (s *AdminSlice) SetAccountStatus(ctx context.Context, id int64, active bool) (*domain.AdminAccount, error) {
	resp, err := thunk[domain.AdminAccount, domain.AdminAccount]{
		op:       "status",
		fallback: "Failed to update account status",
		success:  "Account status updated",
		call: func(ctx context.Context) (*salonapi.Response[domain.AdminAccount], error) {
			return s.api.SetAdminStatus(ctx, id, active)
		},
		reduce: func(st *State[domain.AdminAccount], data domain.AdminAccount) {
			st.Items = replaceByID(st.Items, data, accountID)
		},
	}.run(ctx, s.Slice)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
