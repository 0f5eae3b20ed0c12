// Package handlers implements the HTTP handlers for the UDAM marketplace API.
// Operations are registered with huma; health checks are plain echo handlers.
package handlers

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}
