package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/CyberSolo/UDAM/internal/notify"
	domain "github.com/CyberSolo/UDAM/pkg/types"
)

const hookPath = "/api/webhooks/dev/token"

func post(t *testing.T, mux http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, hookPath, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestWebhookHandler_AcceptsEmbeds(t *testing.T) {
	box := newInbox(10, 0)
	mux := newMux(testLogger(), box)

	w := post(t, mux, `{"embeds":[{"title":"Order accepted: order o-1","color":3447003}]}`)
	if w.Code != http.StatusNoContent {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusNoContent)
	}

	got := box.list()
	if len(got) != 1 {
		t.Fatalf("messages=%d, want 1", len(got))
	}
	if got[0].Webhook != "dev" {
		t.Errorf("webhook=%q, want dev", got[0].Webhook)
	}
	if got[0].Payload.Embeds[0].Title != "Order accepted: order o-1" {
		t.Errorf("title=%q", got[0].Payload.Embeds[0].Title)
	}
}

func TestWebhookHandler_Rejects(t *testing.T) {
	tooMany := webhookPayload{}
	for range maxEmbeds + 1 {
		tooMany.Embeds = append(tooMany.Embeds, embed{Title: "x"})
	}
	tooManyJSON, err := json.Marshal(tooMany)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{name: "malformed json", body: `{"embeds":`, wantCode: 50109},
		{name: "empty message", body: `{"embeds":[]}`, wantCode: 50006},
		{name: "too many embeds", body: string(tooManyJSON), wantCode: 50035},
		{name: "blank embed", body: `{"embeds":[{"color":1}]}`, wantCode: 50035},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := newInbox(10, 0)
			w := post(t, newMux(testLogger(), box), tt.body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status=%d, want %d", w.Code, http.StatusBadRequest)
			}
			var resp struct {
				Code int `json:"code"`
			}
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if resp.Code != tt.wantCode {
				t.Errorf("code=%d, want %d", resp.Code, tt.wantCode)
			}
			if n := len(box.list()); n != 0 {
				t.Errorf("stored %d rejected messages", n)
			}
		})
	}
}

func TestInbox_FailEvery(t *testing.T) {
	box := newInbox(10, 2)
	mux := newMux(testLogger(), box)
	body := `{"embeds":[{"title":"t"}]}`

	want := []int{http.StatusNoContent, http.StatusInternalServerError, http.StatusNoContent, http.StatusInternalServerError}
	for i, code := range want {
		if w := post(t, mux, body); w.Code != code {
			t.Errorf("delivery %d: status=%d, want %d", i+1, w.Code, code)
		}
	}
	if n := len(box.list()); n != 2 {
		t.Errorf("messages=%d, want 2", n)
	}
}

func TestInbox_KeepsMostRecent(t *testing.T) {
	box := newInbox(2, 0)
	for _, title := range []string{"a", "b", "c"} {
		box.accept(message{Payload: webhookPayload{Embeds: []embed{{Title: title}}}})
	}

	got := box.list()
	if len(got) != 2 {
		t.Fatalf("messages=%d, want 2", len(got))
	}
	if got[0].Payload.Embeds[0].Title != "b" || got[1].Payload.Embeds[0].Title != "c" {
		t.Errorf("kept %q and %q, want b and c", got[0].Payload.Embeds[0].Title, got[1].Payload.Embeds[0].Title)
	}
}

func TestListAndClear(t *testing.T) {
	box := newInbox(10, 0)
	mux := newMux(testLogger(), box)
	post(t, mux, `{"embeds":[{"title":"t"}]}`)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/messages", http.NoBody))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusOK)
	}
	var resp struct {
		Messages []message `json:"messages"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(resp.Messages) != 1 {
		t.Fatalf("messages=%d, want 1", len(resp.Messages))
	}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/messages", http.NoBody))
	if w.Code != http.StatusNoContent {
		t.Fatalf("status=%d, want %d", w.Code, http.StatusNoContent)
	}
	if n := len(box.list()); n != 0 {
		t.Errorf("messages=%d after clear, want 0", n)
	}
}

// The udam Discord notifier must produce payloads the receiver accepts.
func TestDiscordNotifierRoundTrip(t *testing.T) {
	box := newInbox(10, 0)
	srv := httptest.NewServer(newMux(testLogger(), box))
	defer srv.Close()

	n := notify.NewDiscordNotifier(srv.URL + hookPath)
	ctx := context.Background()

	err := n.Notify(ctx, &notify.Event{
		Kind:     notify.EventDisputeResolved,
		OrderID:  "o-7",
		BuyerID:  "buyer-1",
		SellerID: "seller-1",
		Amount:   1250,
		State:    domain.StateResolved,
		Decision: domain.PartyBuyer,
	})
	if err != nil {
		t.Fatalf("notify: %v", err)
	}

	events := make([]notify.Event, 12)
	for i := range events {
		events[i] = notify.Event{Kind: notify.EventOrderCompleted, OrderID: "o", State: domain.StateCompleted}
	}
	if err := n.NotifyBatch(ctx, events, "window sweep"); err != nil {
		t.Fatalf("notify batch: %v", err)
	}

	got := box.list()
	if len(got) != 2 {
		t.Fatalf("messages=%d, want 2", len(got))
	}

	var fields bytes.Buffer
	for _, f := range got[0].Payload.Embeds[0].Fields {
		fields.WriteString(f.Name + "=" + f.Value + ";")
	}
	for _, want := range []string{"Amount=12.50;", "Decision=BUYER;"} {
		if !strings.Contains(fields.String(), want) {
			t.Errorf("fields %q missing %q", fields.String(), want)
		}
	}
	if n := len(got[1].Payload.Embeds); n != maxEmbeds {
		t.Errorf("batch embeds=%d, want %d", n, maxEmbeds)
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}
