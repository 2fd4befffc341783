package http

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/rentwise/leasehold/internal/app"
	"github.com/rentwise/leasehold/internal/domain"
)

// PaymentResponse is the API representation of a scheduled rent payment.
type PaymentResponse struct {
	ID          string  `json:"id" doc:"Unique identifier"`
	DueDate     string  `json:"due_date" doc:"Date the payment falls due (YYYY-MM-DD)"`
	PaymentDate *string `json:"payment_date" doc:"Date the payment was confirmed, null while unpaid"`
	Amount      string  `json:"amount" doc:"Payment amount"`
	Status      string  `json:"status" doc:"Lifecycle state"`
	ContractID  string  `json:"contract_id" doc:"Owning contract ID"`
	CreatedAt   string  `json:"created_at" doc:"Creation timestamp (ISO 8601)"`
	UpdatedAt   string  `json:"updated_at" doc:"Last update timestamp (ISO 8601)"`
}

func toPaymentResponse(p domain.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:         p.ID,
		DueDate:    p.DueDate.Format(dateFormat),
		Amount:     p.Amount.String(),
		Status:     string(p.Status),
		ContractID: p.ContractID,
		CreatedAt:  p.CreatedAt.Format(timeFormat),
		UpdatedAt:  p.UpdatedAt.Format(timeFormat),
	}
	if p.PaymentDate != nil {
		paid := p.PaymentDate.Format(dateFormat)
		resp.PaymentDate = &paid
	}
	return resp
}

type GetPaymentInput struct {
	ID string `path:"id" doc:"Payment ID"`
}

type GetPaymentOutput struct {
	Body PaymentResponse
}

type ListContractPaymentsInput struct {
	ContractID string `path:"id" doc:"Contract ID"`
}

type ListContractPaymentsOutput struct {
	Body []PaymentResponse
}

type ConfirmPaymentInput struct {
	ID   string `path:"id" doc:"Payment ID"`
	Body struct {
		OwnerID string `json:"owner_id" minLength:"1" doc:"ID of the owner confirming receipt"`
	}
}

type ConfirmPaymentOutput struct {
	Body PaymentResponse
}

// RegisterPayments adds the payment API routes to the Huma API.
func RegisterPayments(api huma.API, svc *app.PaymentService) {
	huma.Register(api, huma.Operation{
		OperationID: "get-payment",
		Method:      http.MethodGet,
		Path:        "/api/v1/payments/{id}",
		Summary:     "Get a payment by ID",
		Tags:        []string{"Payments"},
	}, func(ctx context.Context, input *GetPaymentInput) (*GetPaymentOutput, error) {
		payment, err := svc.GetByID(ctx, input.ID)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &GetPaymentOutput{Body: toPaymentResponse(payment)}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "list-contract-payments",
		Method:      http.MethodGet,
		Path:        "/api/v1/contracts/{id}/payments",
		Summary:     "List the payment schedule of a contract",
		Tags:        []string{"Payments"},
	}, func(ctx context.Context, input *ListContractPaymentsInput) (*ListContractPaymentsOutput, error) {
		payments, err := svc.ListByContract(ctx, input.ContractID)
		if err != nil {
			return nil, toHumaError(err)
		}
		resp := make([]PaymentResponse, len(payments))
		for i, p := range payments {
			resp[i] = toPaymentResponse(p)
		}
		return &ListContractPaymentsOutput{Body: resp}, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "confirm-payment",
		Method:      http.MethodPost,
		Path:        "/api/v1/payments/{id}/confirm",
		Summary:     "Confirm receipt of a payment",
		Tags:        []string{"Payments"},
	}, func(ctx context.Context, input *ConfirmPaymentInput) (*ConfirmPaymentOutput, error) {
		payment, err := svc.Confirm(ctx, input.ID, input.Body.OwnerID)
		if err != nil {
			return nil, toHumaError(err)
		}
		return &ConfirmPaymentOutput{Body: toPaymentResponse(payment)}, nil
	})
}
