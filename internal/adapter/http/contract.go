package http

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/rentwise/leasehold/internal/app"
	"github.com/rentwise/leasehold/internal/domain"
)

// ContractResponse is the API representation of a rental contract.
type ContractResponse struct {
	ID           string `json:"id" doc:"Unique identifier"`
	StartDate    string `json:"start_date" doc:"First day of the lease (YYYY-MM-DD)"`
	EndDate      string `json:"end_date" doc:"Last day of the lease (YYYY-MM-DD)"`
	MonthlyValue string `json:"monthly_value" doc:"Monthly rent amount"`
	Status       string `json:"status" doc:"Lifecycle state"`
	TenantID     string `json:"tenant_id" doc:"Tenant user ID"`
	OwnerID      string `json:"owner_id" doc:"Owner user ID"`
	PropertyID   string `json:"property_id" doc:"Rented property ID"`
	CreatedAt    string `json:"created_at" doc:"Creation timestamp (ISO 8601)"`
	UpdatedAt    string `json:"updated_at" doc:"Last update timestamp (ISO 8601)"`
}

func toContractResponse(c domain.Contract) ContractResponse {
	return ContractResponse{
		ID:           c.ID,
		StartDate:    c.StartDate.Format(dateFormat),
		EndDate:      c.EndDate.Format(dateFormat),
		MonthlyValue: c.MonthlyValue.String(),
		Status:       string(c.Status),
		TenantID:     c.TenantID,
		OwnerID:      c.OwnerID,
		PropertyID:   c.PropertyID,
		CreatedAt:    c.CreatedAt.Format(timeFormat),
		UpdatedAt:    c.UpdatedAt.Format(timeFormat),
	}
}

// ContractBody is the request payload for creating or updating a contract.
type ContractBody struct {
	StartDate    string  `json:"start_date" format:"date" doc:"First day of the lease (YYYY-MM-DD)"`
	EndDate      string  `json:"end_date" format:"date" doc:"Last day of the lease (YYYY-MM-DD)"`
	MonthlyValue float64 `json:"monthly_value" exclusiveMinimum:"0" doc:"Monthly rent amount"`
	TenantID     string  `json:"tenant_id" minLength:"1" doc:"Tenant user ID"`
	OwnerID      string  `json:"owner_id" minLength:"1" doc:"Owner user ID"`
	PropertyID   string  `json:"property_id" minLength:"1" doc:"Property ID"`
}

func (b ContractBody) toInput() (app.ContractInput, error) {
	start, err := time.Parse(dateFormat, b.StartDate)
	if err != nil {
		return app.ContractInput{}, huma.Error422UnprocessableEntity("invalid start_date: " + b.StartDate)
	}
	end, err := time.Parse(dateFormat, b.EndDate)
	if err != nil {
		return app.ContractInput{}, huma.Error422UnprocessableEntity("invalid end_date: " + b.EndDate)
	}
	return app.ContractInput{
		StartDate:    start,
		EndDate:      end,
		MonthlyValue: decimal.NewFromFloat(b.MonthlyValue),
		TenantID:     b.TenantID,
		OwnerID:      b.OwnerID,
		PropertyID:   b.PropertyID,
	}, nil
}

type CreateContractInput struct {
	Body ContractBody
}

type CreateContractOutput struct {
	Body ContractResponse
}

type GetContractInput struct {
	ID string `path:"id" doc:"Contract ID"`
}

type GetContractOutput struct {
	Body ContractResponse
}

type UpdateContractInput struct {
	ID   string `path:"id" doc:"Contract ID"`
	Body ContractBody
}

type UpdateContractOutput struct {
	Body ContractResponse
}

type TerminateContractInput struct {
	ID string `path:"id" doc:"Contract ID"`
}

type TerminateContractOutput struct {
	Body ContractResponse
}

type ListContractsOutput struct {
	Body []ContractResponse
}

type GetContractByTenantInput struct {
	TenantID string `path:"tenantId" doc:"Tenant user ID"`
}

type GetContractByOwnerInput struct {
	OwnerID string `path:"ownerId" doc:"Owner user ID"`
}

// RegisterContracts adds the contract API routes to the Huma API.
func RegisterContracts(api huma.API, svc *app.ContractService) {
	huma.Register(api, huma.Operation{
		OperationID: "create-contract",
		Method:      http.MethodPost,
		Path:        "/api/v1/contracts",
		Summary:     "Create a rental contract and its payment schedule",
		Tags:        []string{"Contracts"},
	}, func(ctx context.Context, input *CreateContractInput) (*CreateContractOutput, error) {
		in, err := input.Body.toInput()
		if err != nil {
			return nil, err
		}
		contract, err := svc.Create(ctx, in)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &CreateContractOutput{Body: toContractResponse(contract)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-contract",
		Method:      http.MethodGet,
		Path:        "/api/v1/contracts/{id}",
		Summary:     "Get a contract by ID",
		Tags:        []string{"Contracts"},
	}, func(ctx context.Context, input *GetContractInput) (*GetContractOutput, error) {
		contract, err := svc.GetByID(ctx, input.ID)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &GetContractOutput{Body: toContractResponse(contract)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-contracts",
		Method:      http.MethodGet,
		Path:        "/api/v1/contracts",
		Summary:     "List contracts",
		Tags:        []string{"Contracts"},
	}, func(ctx context.Context, _ *struct{}) (*ListContractsOutput, error) {
		contracts, err := svc.List(ctx)
		if err != nil {
			return nil, toHumaError(err)
		}
		resp := make([]ContractResponse, len(contracts))
		for i, c := range contracts {
			resp[i] = toContractResponse(c)
		}
		return &ListContractsOutput{Body: resp}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-contract-by-tenant",
		Method:      http.MethodGet,
		Path:        "/api/v1/contracts/tenant/{tenantId}",
		Summary:     "Get the contract held by a tenant",
		Tags:        []string{"Contracts"},
	}, func(ctx context.Context, input *GetContractByTenantInput) (*GetContractOutput, error) {
		contract, err := svc.GetByTenant(ctx, input.TenantID)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &GetContractOutput{Body: toContractResponse(contract)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-contract-by-owner",
		Method:      http.MethodGet,
		Path:        "/api/v1/contracts/owner/{ownerId}",
		Summary:     "Get the contract held by an owner",
		Tags:        []string{"Contracts"},
	}, func(ctx context.Context, input *GetContractByOwnerInput) (*GetContractOutput, error) {
		contract, err := svc.GetByOwner(ctx, input.OwnerID)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &GetContractOutput{Body: toContractResponse(contract)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "update-contract",
		Method:      http.MethodPut,
		Path:        "/api/v1/contracts/{id}",
		Summary:     "Update a contract",
		Tags:        []string{"Contracts"},
	}, func(ctx context.Context, input *UpdateContractInput) (*UpdateContractOutput, error) {
		in, err := input.Body.toInput()
		if err != nil {
			return nil, err
		}
		contract, err := svc.Update(ctx, input.ID, in)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &UpdateContractOutput{Body: toContractResponse(contract)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "terminate-contract",
		Method:      http.MethodPost,
		Path:        "/api/v1/contracts/{id}/terminate",
		Summary:     "Terminate an active contract",
		Tags:        []string{"Contracts"},
	}, func(ctx context.Context, input *TerminateContractInput) (*TerminateContractOutput, error) {
		contract, err := svc.Terminate(ctx, input.ID)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &TerminateContractOutput{Body: toContractResponse(contract)}, nil
	})
}
