package http

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/rentwise/leasehold/internal/app"
	"github.com/rentwise/leasehold/internal/domain"
)

// OwnerResponse is the API representation of a property owner.
type OwnerResponse struct {
	ID        string `json:"id" doc:"Unique identifier"`
	Name      string `json:"name" doc:"Full name"`
	Email     string `json:"email" doc:"Contact email"`
	Role      string `json:"role" doc:"User role"`
	CreatedAt string `json:"created_at" doc:"Creation timestamp (ISO 8601)"`
	UpdatedAt string `json:"updated_at" doc:"Last update timestamp (ISO 8601)"`
}

func toOwnerResponse(o domain.Owner) OwnerResponse {
	return OwnerResponse{
		ID:        o.ID,
		Name:      o.Name,
		Email:     o.Email,
		Role:      string(o.Role),
		CreatedAt: o.CreatedAt.Format(timeFormat),
		UpdatedAt: o.UpdatedAt.Format(timeFormat),
	}
}

// OwnerBody is the request payload for creating or updating an owner.
type OwnerBody struct {
	Name  string `json:"name" minLength:"1" maxLength:"255" doc:"Full name"`
	Email string `json:"email" format:"email" doc:"Contact email"`
}

type CreateOwnerInput struct {
	Body OwnerBody
}

type CreateOwnerOutput struct {
	Body OwnerResponse
}

type GetOwnerInput struct {
	ID string `path:"id" doc:"Owner ID"`
}

type GetOwnerOutput struct {
	Body OwnerResponse
}

type UpdateOwnerInput struct {
	ID   string `path:"id" doc:"Owner ID"`
	Body OwnerBody
}

type UpdateOwnerOutput struct {
	Body OwnerResponse
}

type DeleteOwnerInput struct {
	ID string `path:"id" doc:"Owner ID"`
}

type ListOwnersOutput struct {
	Body []OwnerResponse
}

type SearchOwnersInput struct {
	Name string `query:"name" minLength:"1" doc:"Name fragment to search for"`
}

type SearchOwnersOutput struct {
	Body []OwnerResponse
}

// RegisterOwners adds the owner API routes to the Huma API.
func RegisterOwners(api huma.API, svc *app.OwnerService) {
	huma.Register(api, huma.Operation{
		OperationID: "create-owner",
		Method:      http.MethodPost,
		Path:        "/api/v1/owners",
		Summary:     "Register a new property owner",
		Tags:        []string{"Owners"},
	}, func(ctx context.Context, input *CreateOwnerInput) (*CreateOwnerOutput, error) {
		owner, err := svc.Create(ctx, app.OwnerInput{Name: input.Body.Name, Email: input.Body.Email})
		if err != nil {
			return nil, toHumaError(err)
		}
		return &CreateOwnerOutput{Body: toOwnerResponse(owner)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-owner",
		Method:      http.MethodGet,
		Path:        "/api/v1/owners/{id}",
		Summary:     "Get an owner by ID",
		Tags:        []string{"Owners"},
	}, func(ctx context.Context, input *GetOwnerInput) (*GetOwnerOutput, error) {
		owner, err := svc.GetByID(ctx, input.ID)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &GetOwnerOutput{Body: toOwnerResponse(owner)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-owners",
		Method:      http.MethodGet,
		Path:        "/api/v1/owners",
		Summary:     "List owners",
		Tags:        []string{"Owners"},
	}, func(ctx context.Context, _ *struct{}) (*ListOwnersOutput, error) {
		owners, err := svc.List(ctx)
		if err != nil {
			return nil, toHumaError(err)
		}
		resp := make([]OwnerResponse, len(owners))
		for i, o := range owners {
			resp[i] = toOwnerResponse(o)
		}
		return &ListOwnersOutput{Body: resp}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "search-owners",
		Method:      http.MethodGet,
		Path:        "/api/v1/owners/search",
		Summary:     "Search owners by name",
		Tags:        []string{"Owners"},
	}, func(ctx context.Context, input *SearchOwnersInput) (*SearchOwnersOutput, error) {
		owners, err := svc.SearchByName(ctx, input.Name)
		if err != nil {
			return nil, toHumaError(err)
		}
		resp := make([]OwnerResponse, len(owners))
		for i, o := range owners {
			resp[i] = toOwnerResponse(o)
		}
		return &SearchOwnersOutput{Body: resp}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-owner",
		Method:      http.MethodPut,
		Path:        "/api/v1/owners/{id}",
		Summary:     "Update an owner",
		Tags:        []string{"Owners"},
	}, func(ctx context.Context, input *UpdateOwnerInput) (*UpdateOwnerOutput, error) {
		owner, err := svc.Update(ctx, input.ID, app.OwnerInput{Name: input.Body.Name, Email: input.Body.Email})
		if err != nil {
			return nil, toHumaError(err)
		}
		return &UpdateOwnerOutput{Body: toOwnerResponse(owner)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-owner",
		Method:        http.MethodDelete,
		Path:          "/api/v1/owners/{id}",
		Summary:       "Delete an owner",
		Tags:          []string{"Owners"},
		DefaultStatus: http.StatusNoContent,
	}, func(ctx context.Context, input *DeleteOwnerInput) (*struct{}, error) {
		if err := svc.Delete(ctx, input.ID); err != nil {
			return nil, toHumaError(err)
		}
		return nil, nil
	})
}
