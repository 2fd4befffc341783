package http

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/rentwise/leasehold/internal/app"
	"github.com/rentwise/leasehold/internal/domain"
)

// TenantResponse is the API representation of a tenant.
type TenantResponse struct {
	ID        string `json:"id" doc:"Unique identifier"`
	Name      string `json:"name" doc:"Full name"`
	Email     string `json:"email" doc:"Contact email"`
	Role      string `json:"role" doc:"User role"`
	CreatedAt string `json:"created_at" doc:"Creation timestamp (ISO 8601)"`
	UpdatedAt string `json:"updated_at" doc:"Last update timestamp (ISO 8601)"`
}

func toTenantResponse(t domain.Tenant) TenantResponse {
	return TenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		Email:     t.Email,
		Role:      string(t.Role),
		CreatedAt: t.CreatedAt.Format(timeFormat),
		UpdatedAt: t.UpdatedAt.Format(timeFormat),
	}
}

// TenantBody is the request payload for creating or updating a tenant.
type TenantBody struct {
	Name  string `json:"name" minLength:"1" maxLength:"255" doc:"Full name"`
	Email string `json:"email" format:"email" doc:"Contact email"`
}

type CreateTenantInput struct {
	Body TenantBody
}

type CreateTenantOutput struct {
	Body TenantResponse
}

type GetTenantInput struct {
	ID string `path:"id" doc:"Tenant ID"`
}

type GetTenantOutput struct {
	Body TenantResponse
}

type UpdateTenantInput struct {
	ID   string `path:"id" doc:"Tenant ID"`
	Body TenantBody
}

type UpdateTenantOutput struct {
	Body TenantResponse
}

type DeleteTenantInput struct {
	ID string `path:"id" doc:"Tenant ID"`
}

type ListTenantsOutput struct {
	Body []TenantResponse
}

type SearchTenantsInput struct {
	Name string `query:"name" minLength:"1" doc:"Name fragment to search for"`
}

type SearchTenantsOutput struct {
	Body []TenantResponse
}

// RegisterTenants adds the tenant API routes to the Huma API.
func RegisterTenants(api huma.API, svc *app.TenantService) {
	huma.Register(api, huma.Operation{
		OperationID: "create-tenant",
		Method:      http.MethodPost,
		Path:        "/api/v1/tenants",
		Summary:     "Register a new tenant",
		Tags:        []string{"Tenants"},
	}, func(ctx context.Context, input *CreateTenantInput) (*CreateTenantOutput, error) {
		tenant, err := svc.Create(ctx, app.TenantInput{Name: input.Body.Name, Email: input.Body.Email})
		if err != nil {
			return nil, toHumaError(err)
		}
		return &CreateTenantOutput{Body: toTenantResponse(tenant)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-tenant",
		Method:      http.MethodGet,
		Path:        "/api/v1/tenants/{id}",
		Summary:     "Get a tenant by ID",
		Tags:        []string{"Tenants"},
	}, func(ctx context.Context, input *GetTenantInput) (*GetTenantOutput, error) {
		tenant, err := svc.GetByID(ctx, input.ID)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &GetTenantOutput{Body: toTenantResponse(tenant)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-tenants",
		Method:      http.MethodGet,
		Path:        "/api/v1/tenants",
		Summary:     "List tenants",
		Tags:        []string{"Tenants"},
	}, func(ctx context.Context, _ *struct{}) (*ListTenantsOutput, error) {
		tenants, err := svc.List(ctx)
		if err != nil {
			return nil, toHumaError(err)
		}
		resp := make([]TenantResponse, len(tenants))
		for i, tn := range tenants {
			resp[i] = toTenantResponse(tn)
		}
		return &ListTenantsOutput{Body: resp}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "search-tenants",
		Method:      http.MethodGet,
		Path:        "/api/v1/tenants/search",
		Summary:     "Search tenants by name",
		Tags:        []string{"Tenants"},
	}, func(ctx context.Context, input *SearchTenantsInput) (*SearchTenantsOutput, error) {
		tenants, err := svc.SearchByName(ctx, input.Name)
		if err != nil {
			return nil, toHumaError(err)
		}
		resp := make([]TenantResponse, len(tenants))
		for i, tn := range tenants {
			resp[i] = toTenantResponse(tn)
		}
		return &SearchTenantsOutput{Body: resp}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-tenant",
		Method:      http.MethodPut,
		Path:        "/api/v1/tenants/{id}",
		Summary:     "Update a tenant",
		Tags:        []string{"Tenants"},
	}, func(ctx context.Context, input *UpdateTenantInput) (*UpdateTenantOutput, error) {
		tenant, err := svc.Update(ctx, input.ID, app.TenantInput{Name: input.Body.Name, Email: input.Body.Email})
		if err != nil {
			return nil, toHumaError(err)
		}
		return &UpdateTenantOutput{Body: toTenantResponse(tenant)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-tenant",
		Method:        http.MethodDelete,
		Path:          "/api/v1/tenants/{id}",
		Summary:       "Delete a tenant",
		Tags:          []string{"Tenants"},
		DefaultStatus: http.StatusNoContent,
	}, func(ctx context.Context, input *DeleteTenantInput) (*struct{}, error) {
		if err := svc.Delete(ctx, input.ID); err != nil {
			return nil, toHumaError(err)
		}
		return nil, nil
	})
}
