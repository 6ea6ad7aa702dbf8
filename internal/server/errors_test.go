package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/jonathan/newsguard/internal/llm"
	"github.com/jonathan/newsguard/internal/types"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"session not found", &ErrSessionNotFound{ID: uuid.New()}, http.StatusNotFound},
		{"assessment not found", &ErrAssessmentNotFound{ID: uuid.New()}, http.StatusNotFound},
		{"persistence disabled", &ErrPersistenceDisabled{}, http.StatusServiceUnavailable},
		{"corroboration disabled", &ErrCorroborationDisabled{}, http.StatusServiceUnavailable},
		{"bad request", &ErrBadRequest{Message: "nope"}, http.StatusBadRequest},
		{"upstream failure", &llm.UpstreamError{Message: "down"}, http.StatusBadGateway},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatus(tc.err))
		})
	}
}

func TestHTTPStatus_WrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("rule evaluation failed: %w", &llm.UpstreamError{Message: "quota"})
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(wrapped))

	item := &types.NewsItem{}
	err := item.Validate()
	var validation validator.ValidationErrors
	if assert.ErrorAs(t, err, &validation) {
		wrapped = fmt.Errorf("invalid news item: %w", err)
		assert.Equal(t, http.StatusBadRequest, HTTPStatus(wrapped))
	}
}
