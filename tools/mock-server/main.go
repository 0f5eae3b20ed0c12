// Package main implements a mock Discord webhook receiver for local development.
// Point notifications.discord.webhook_url at it to capture the embeds udam
// sends without a real Discord channel, and inspect them via GET /messages.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"
)

// Discord rejects messages with more than ten embeds.
const maxEmbeds = 10

type webhookPayload struct {
	Content string  `json:"content,omitempty"`
	Embeds  []embed `json:"embeds"`
}

type embed struct {
	Title       string       `json:"title"`
	Color       int          `json:"color"`
	Description string       `json:"description,omitempty"`
	Fields      []embedField `json:"fields,omitempty"`
}

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type message struct {
	Webhook    string         `json:"webhook"`
	ReceivedAt time.Time      `json:"received_at"`
	Payload    webhookPayload `json:"payload"`
}

// inbox keeps the most recent messages in arrival order.
type inbox struct {
	mu       sync.Mutex
	messages []message
	capacity int

	// failEvery makes every Nth delivery fail with 500 when > 0.
	failEvery int
	received  int
}

func newInbox(capacity, failEvery int) *inbox {
	return &inbox{capacity: capacity, failEvery: failEvery}
}

// accept records m and reports whether the delivery should succeed.
func (b *inbox) accept(m message) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.received++
	if b.failEvery > 0 && b.received%b.failEvery == 0 {
		return false
	}
	b.messages = append(b.messages, m)
	if over := len(b.messages) - b.capacity; over > 0 {
		b.messages = b.messages[over:]
	}
	return true
}

func (b *inbox) list() []message {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]message, len(b.messages))
	copy(out, b.messages)
	return out
}

func (b *inbox) clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.messages = nil
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	capacity := flag.Int("keep", 100, "number of messages to keep")
	failEvery := flag.Int("fail-every", 0, "fail every Nth delivery with HTTP 500 (0 disables)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	box := newInbox(*capacity, *failEvery)

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock discord webhook server", "addr", addr,
		"webhook_url", fmt.Sprintf("http://localhost%s/api/webhooks/dev/token", addr))

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMux(logger, box)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newMux(logger *slog.Logger, box *inbox) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/webhooks/{id}/{token}", webhookHandler(logger, box))
	mux.HandleFunc("GET /messages", listHandler(box))
	mux.HandleFunc("DELETE /messages", clearHandler(logger, box))
	return mux
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

// discordError mirrors the error body Discord returns for rejected payloads.
func discordError(w http.ResponseWriter, status, code int, msg string) {
	writeJSON(w, status, map[string]any{"code": code, "message": msg})
}

func webhookHandler(logger *slog.Logger, box *inbox) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload webhookPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			logger.Warn("malformed webhook body", "error", err)
			discordError(w, http.StatusBadRequest, 50109, "The request body contains invalid JSON.")
			return
		}

		if payload.Content == "" && len(payload.Embeds) == 0 {
			discordError(w, http.StatusBadRequest, 50006, "Cannot send an empty message")
			return
		}
		if len(payload.Embeds) > maxEmbeds {
			discordError(w, http.StatusBadRequest, 50035, "Invalid Form Body: embeds must be 10 or fewer in length.")
			return
		}
		for i, e := range payload.Embeds {
			if e.Title == "" && e.Description == "" && len(e.Fields) == 0 {
				discordError(w, http.StatusBadRequest, 50035, fmt.Sprintf("Invalid Form Body: embeds.%d is empty.", i))
				return
			}
		}

		m := message{
			Webhook:    r.PathValue("id"),
			ReceivedAt: time.Now().UTC(),
			Payload:    payload,
		}
		if !box.accept(m) {
			logger.Warn("simulated delivery failure", "webhook", m.Webhook)
			discordError(w, http.StatusInternalServerError, 0, "500: Internal Server Error")
			return
		}

		for _, e := range payload.Embeds {
			logger.Info("embed", "webhook", m.Webhook, "title", e.Title, "fields", len(e.Fields))
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func listHandler(box *inbox) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"messages": box.list()})
	}
}

func clearHandler(logger *slog.Logger, box *inbox) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		box.clear()
		logger.Info("cleared messages")
		w.WriteHeader(http.StatusNoContent)
	}
}
