package http

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	"github.com/rentwise/leasehold/internal/domain"
)

// toHumaError translates domain errors to Huma HTTP errors.
func toHumaError(err error) error {
	var nfErr *domain.NotFoundError
	if errors.As(err, &nfErr) {
		return huma.Error404NotFound(nfErr.Error())
	}

	var trErr *domain.TransitionError
	if errors.As(err, &trErr) {
		return huma.Error422UnprocessableEntity(trErr.Error())
	}

	return huma.Error500InternalServerError("internal server error")
}

const (
	dateFormat = "2006-01-02"
	timeFormat = "2006-01-02T15:04:05Z"
)
