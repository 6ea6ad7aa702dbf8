// Package server provides the HTTP REST API for the detection engine.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/newsguard/internal/llm"
)

// ErrSessionNotFound indicates no cached assessment exists for the id
type ErrSessionNotFound struct {
	ID uuid.UUID
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("no cached assessment for id: %s", e.ID)
}

// ErrAssessmentNotFound indicates no stored assessment exists for the id
type ErrAssessmentNotFound struct {
	ID uuid.UUID
}

func (e *ErrAssessmentNotFound) Error() string {
	return fmt.Sprintf("assessment not found: %s", e.ID)
}

// ErrPersistenceDisabled indicates the server runs without a database
type ErrPersistenceDisabled struct{}

func (e *ErrPersistenceDisabled) Error() string {
	return "persistence is not configured"
}

// ErrCorroborationDisabled indicates the server runs without search credentials
type ErrCorroborationDisabled struct{}

func (e *ErrCorroborationDisabled) Error() string {
	return "corroboration is not configured"
}

// ErrBadRequest indicates a malformed request body or parameter
type ErrBadRequest struct {
	Message string
}

func (e *ErrBadRequest) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		sessionNotFound    *ErrSessionNotFound
		assessmentNotFound *ErrAssessmentNotFound
		persistence        *ErrPersistenceDisabled
		corroboration      *ErrCorroborationDisabled
		badRequest         *ErrBadRequest
		upstream           *llm.UpstreamError
		validation         validator.ValidationErrors
	)

	switch {
	case errors.As(err, &sessionNotFound), errors.As(err, &assessmentNotFound):
		return http.StatusNotFound
	case errors.As(err, &persistence), errors.As(err, &corroboration):
		return http.StatusServiceUnavailable
	case errors.As(err, &badRequest), errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &upstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
