package http

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/rentwise/leasehold/internal/app"
	"github.com/rentwise/leasehold/internal/domain"
)

// PropertyResponse is the API representation of a rental property.
type PropertyResponse struct {
	ID          string `json:"id" doc:"Unique identifier"`
	Title       string `json:"title" doc:"Listing title"`
	Description string `json:"description" doc:"Listing description"`
	Address     string `json:"address" doc:"Street address"`
	Price       string `json:"price" doc:"Monthly rental price"`
	Status      string `json:"status" doc:"Availability status"`
	OwnerID     string `json:"owner_id" doc:"Owning user ID"`
	CreatedAt   string `json:"created_at" doc:"Creation timestamp (ISO 8601)"`
	UpdatedAt   string `json:"updated_at" doc:"Last update timestamp (ISO 8601)"`
}

func toPropertyResponse(p domain.Property) PropertyResponse {
	return PropertyResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Address:     p.Address,
		Price:       p.Price.String(),
		Status:      string(p.Status),
		OwnerID:     p.OwnerID,
		CreatedAt:   p.CreatedAt.Format(timeFormat),
		UpdatedAt:   p.UpdatedAt.Format(timeFormat),
	}
}

// PropertyBody is the request payload for creating or updating a property.
type PropertyBody struct {
	Title       string  `json:"title" minLength:"1" maxLength:"255" doc:"Listing title"`
	Description string  `json:"description,omitempty" maxLength:"2000" doc:"Listing description"`
	Address     string  `json:"address" minLength:"1" maxLength:"500" doc:"Street address"`
	Price       float64 `json:"price" exclusiveMinimum:"0" doc:"Monthly rental price"`
	OwnerID     string  `json:"owner_id" minLength:"1" doc:"Owning user ID"`
}

func (b PropertyBody) toInput() app.PropertyInput {
	return app.PropertyInput{
		Title:       b.Title,
		Description: b.Description,
		Address:     b.Address,
		Price:       decimal.NewFromFloat(b.Price),
		OwnerID:     b.OwnerID,
	}
}

type CreatePropertyInput struct {
	Body PropertyBody
}

type CreatePropertyOutput struct {
	Body PropertyResponse
}

type GetPropertyInput struct {
	ID string `path:"id" doc:"Property ID"`
}

type GetPropertyOutput struct {
	Body PropertyResponse
}

type UpdatePropertyInput struct {
	ID   string `path:"id" doc:"Property ID"`
	Body PropertyBody
}

type UpdatePropertyOutput struct {
	Body PropertyResponse
}

type DeletePropertyInput struct {
	ID string `path:"id" doc:"Property ID"`
}

type ListPropertiesOutput struct {
	Body []PropertyResponse
}

type SearchPropertiesInput struct {
	Title string `query:"title" minLength:"1" doc:"Title fragment to search for"`
}

type SearchPropertiesOutput struct {
	Body []PropertyResponse
}

// RegisterProperties adds the property API routes to the Huma API.
func RegisterProperties(api huma.API, svc *app.PropertyService) {
	huma.Register(api, huma.Operation{
		OperationID: "create-property",
		Method:      http.MethodPost,
		Path:        "/api/v1/properties",
		Summary:     "List a new property",
		Tags:        []string{"Properties"},
	}, func(ctx context.Context, input *CreatePropertyInput) (*CreatePropertyOutput, error) {
		property, err := svc.Create(ctx, input.Body.toInput())
		if err != nil {
			return nil, toHumaError(err)
		}
		return &CreatePropertyOutput{Body: toPropertyResponse(property)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-property",
		Method:      http.MethodGet,
		Path:        "/api/v1/properties/{id}",
		Summary:     "Get a property by ID",
		Tags:        []string{"Properties"},
	}, func(ctx context.Context, input *GetPropertyInput) (*GetPropertyOutput, error) {
		property, err := svc.GetByID(ctx, input.ID)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &GetPropertyOutput{Body: toPropertyResponse(property)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-properties",
		Method:      http.MethodGet,
		Path:        "/api/v1/properties",
		Summary:     "List properties",
		Tags:        []string{"Properties"},
	}, func(ctx context.Context, _ *struct{}) (*ListPropertiesOutput, error) {
		properties, err := svc.List(ctx)
		if err != nil {
			return nil, toHumaError(err)
		}
		resp := make([]PropertyResponse, len(properties))
		for i, p := range properties {
			resp[i] = toPropertyResponse(p)
		}
		return &ListPropertiesOutput{Body: resp}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "search-properties",
		Method:      http.MethodGet,
		Path:        "/api/v1/properties/search",
		Summary:     "Search properties by title",
		Tags:        []string{"Properties"},
	}, func(ctx context.Context, input *SearchPropertiesInput) (*SearchPropertiesOutput, error) {
		properties, err := svc.SearchByTitle(ctx, input.Title)
		if err != nil {
			return nil, toHumaError(err)
		}
		resp := make([]PropertyResponse, len(properties))
		for i, p := range properties {
			resp[i] = toPropertyResponse(p)
		}
		return &SearchPropertiesOutput{Body: resp}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-property",
		Method:      http.MethodPut,
		Path:        "/api/v1/properties/{id}",
		Summary:     "Update a property",
		Tags:        []string{"Properties"},
	}, func(ctx context.Context, input *UpdatePropertyInput) (*UpdatePropertyOutput, error) {
		property, err := svc.Update(ctx, input.ID, input.Body.toInput())
		if err != nil {
			return nil, toHumaError(err)
		}
		return &UpdatePropertyOutput{Body: toPropertyResponse(property)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-property",
		Method:        http.MethodDelete,
		Path:          "/api/v1/properties/{id}",
		Summary:       "Delete a property",
		Tags:          []string{"Properties"},
		DefaultStatus: http.StatusNoContent,
	}, func(ctx context.Context, input *DeletePropertyInput) (*struct{}, error) {
		if err := svc.Delete(ctx, input.ID); err != nil {
			return nil, toHumaError(err)
		}
		return nil, nil
	})
}
