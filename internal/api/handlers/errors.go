package handlers

import (
	"context"
	"net/http"

	"github.com/CyberSolo/UDAM/internal/auth"
	domain "github.com/CyberSolo/UDAM/pkg/types"
)

// APIError is the problem body returned for failed operations. Code is the
// stable machine-readable error code.
type APIError struct {
	Status int    `json:"status" example:"409"                           doc:"HTTP status code"`
	Title  string `json:"title"  example:"Conflict"                      doc:"HTTP status text"`
	Code   string `json:"code"   example:"invalid_transition"            doc:"Stable error code"`
	Detail string `json:"detail" example:"order is COMPLETED, cannot ACCEPT" doc:"Human readable explanation"`
}

func (e *APIError) Error() string { return e.Detail }

// GetStatus implements huma.StatusError.
func (e *APIError) GetStatus() int { return e.Status }

var codeStatus = map[string]int{
	domain.CodeNotFound:              http.StatusNotFound,
	domain.CodeForbidden:             http.StatusForbidden,
	domain.CodeInvalidTransition:     http.StatusConflict,
	domain.CodeInsufficientInventory: http.StatusConflict,
	domain.CodeDuplicate:             http.StatusConflict,
	domain.CodeAlreadyReleased:       http.StatusConflict,
	domain.CodeInvalidInput:          http.StatusUnprocessableEntity,
	domain.CodeWindowExpired:         http.StatusGone,
}

// StatusForCode returns the HTTP status for a domain error code.
func StatusForCode(code string) int {
	if status, ok := codeStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// apiError converts an engine error into its problem body. Internal errors
// are not echoed to the caller.
func apiError(err error) error {
	code := domain.ErrorCode(err)
	status := StatusForCode(code)
	detail := err.Error()
	if status == http.StatusInternalServerError {
		detail = "internal error"
	}
	return &APIError{
		Status: status,
		Title:  http.StatusText(status),
		Code:   code,
		Detail: detail,
	}
}

func unauthorized() error {
	return &APIError{
		Status: http.StatusUnauthorized,
		Title:  http.StatusText(http.StatusUnauthorized),
		Code:   "unauthorized",
		Detail: "authentication required",
	}
}

// requireUser returns the authenticated actor or a 401.
func requireUser(ctx context.Context) (domain.Actor, error) {
	actor := auth.ActorFrom(ctx)
	if actor.UserID == "" {
		return domain.Actor{}, unauthorized()
	}
	return actor, nil
}

var bearerSecurity = []map[string][]string{{"bearer": {}}}

var adminSecurity = []map[string][]string{{"adminToken": {}}}
