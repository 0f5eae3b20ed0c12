package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CyberSolo/UDAM/internal/metrics"
	domain "github.com/CyberSolo/UDAM/pkg/types"
)

func testEvent(kind EventKind) Event {
	return Event{
		Kind:     kind,
		OrderID:  "order-123",
		BuyerID:  "buyer-1",
		SellerID: "seller-1",
		Amount:   1250,
		State:    domain.StateDisputed,
	}
}

func TestDiscordNotifier_Notify(t *testing.T) {
	t.Parallel()

	resolvedForBuyer := testEvent(EventDisputeResolved)
	resolvedForBuyer.Decision = domain.PartyBuyer
	resolvedForBuyer.State = domain.StateResolved
	resolvedForBuyer.Detail = "adjudicated"

	tests := []struct {
		name       string
		event      Event
		statusCode int
		wantErr    bool
		errMsg     string
		wantColor  int
	}{
		{
			name:       "dispute opened uses orange",
			event:      testEvent(EventDisputeOpened),
			statusCode: http.StatusNoContent,
			wantColor:  colorOrange,
		},
		{
			name:       "completed uses green",
			event:      testEvent(EventOrderCompleted),
			statusCode: http.StatusNoContent,
			wantColor:  colorGreen,
		},
		{
			name:       "resolved for buyer uses red",
			event:      resolvedForBuyer,
			statusCode: http.StatusNoContent,
			wantColor:  colorRed,
		},
		{
			name:       "cancelled uses grey",
			event:      testEvent(EventOrderCancelled),
			statusCode: http.StatusOK,
			wantColor:  colorGrey,
		},
		{
			name:       "discord returns 429 rate limited",
			event:      testEvent(EventDisputeOpened),
			statusCode: http.StatusTooManyRequests,
			wantErr:    true,
			errMsg:     "rate limited",
		},
		{
			name:       "discord returns 400 error",
			event:      testEvent(EventDisputeOpened),
			statusCode: http.StatusBadRequest,
			wantErr:    true,
			errMsg:     "discord returned 400",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var received discordWebhookPayload

			srv := httptest.NewServer(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
					assert.Equal(t, http.MethodPost, r.Method)

					err := json.NewDecoder(r.Body).Decode(&received)
					assert.NoError(t, err)

					w.WriteHeader(tt.statusCode)
				}),
			)
			defer srv.Close()

			d := NewDiscordNotifier(srv.URL)
			err := d.Notify(context.Background(), &tt.event)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			require.Len(t, received.Embeds, 1)

			embed := received.Embeds[0]
			assert.Equal(t, tt.wantColor, embed.Color)
			assert.Contains(t, embed.Title, tt.event.OrderID)

			fieldMap := make(map[string]string)
			for _, f := range embed.Fields {
				fieldMap[f.Name] = f.Value
			}
			assert.Equal(t, "12.50", fieldMap["Amount"])
			assert.Equal(t, tt.event.BuyerID, fieldMap["Buyer"])
			assert.Equal(t, string(tt.event.State), fieldMap["State"])
			if tt.event.Decision != "" {
				assert.Equal(t, string(tt.event.Decision), fieldMap["Decision"])
				assert.Equal(t, tt.event.Detail, embed.Description)
			}
		})
	}
}

func TestDiscordNotifier_NotifyBatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		count      int
		wantEmbeds int
		wantCalls  int
	}{
		{name: "three events", count: 3, wantEmbeds: 3, wantCalls: 1},
		{name: "overflow is summarised", count: 14, wantEmbeds: maxEmbeds, wantCalls: 1},
		{name: "empty batch sends nothing", count: 0, wantCalls: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var (
				received discordWebhookPayload
				calls    int
			)
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
				w.WriteHeader(http.StatusNoContent)
			}))
			defer srv.Close()

			events := make([]Event, tt.count)
			for i := range events {
				events[i] = testEvent(EventOrderCompleted)
			}

			d := NewDiscordNotifier(srv.URL)
			require.NoError(t, d.NotifyBatch(context.Background(), events, "window sweep"))

			assert.Equal(t, tt.wantCalls, calls)
			assert.Len(t, received.Embeds, tt.wantEmbeds)
			if tt.count > maxEmbeds {
				assert.Contains(t, received.Embeds[maxEmbeds-1].Title, "5 more events")
			}
		})
	}
}

func TestDiscordNotifier_NetworkError(t *testing.T) {
	t.Parallel()

	d := NewDiscordNotifier("http://127.0.0.1:1") // nothing listening
	ev := testEvent(EventDisputeOpened)
	err := d.Notify(context.Background(), &ev)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sending discord webhook")
}

func TestDiscordNotifier_InvalidWebhookURL(t *testing.T) {
	t.Parallel()

	d := NewDiscordNotifier("://not-a-valid-url")
	ev := testEvent(EventDisputeOpened)
	err := d.Notify(context.Background(), &ev)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating discord request")
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	d := NewDiscordNotifier("https://example.com", WithHTTPClient(custom))
	assert.Same(t, custom, d.client)
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0.00", FormatAmount(0))
	assert.Equal(t, "0.05", FormatAmount(5))
	assert.Equal(t, "20.00", FormatAmount(2000))
	assert.Equal(t, "-1.25", FormatAmount(-125))
}

func TestEventFor(t *testing.T) {
	t.Parallel()

	o := &domain.Order{
		ID: "o1", BuyerID: "b", SellerID: "s", Amount: 20, State: domain.StateResolved,
		Resolution: &domain.Resolution{Decision: domain.PartySeller, Source: domain.SourceAdjudicated},
	}
	ev := EventFor(EventDisputeResolved, o)
	assert.Equal(t, domain.PartySeller, ev.Decision)
	assert.Equal(t, "adjudicated", ev.Detail)
	assert.Equal(t, int64(20), ev.Amount)
}

func getNotificationHistogramSampleCount() uint64 {
	ch := make(chan prometheus.Metric, 1)
	metrics.NotificationDuration.Collect(ch)
	m := <-ch
	pb := &dto.Metric{}
	_ = m.Write(pb)
	return pb.GetHistogram().GetSampleCount()
}

func TestNotify_ObservesNotificationDuration(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	before := getNotificationHistogramSampleCount()

	d := NewDiscordNotifier(srv.URL)
	ev := testEvent(EventOrderAccepted)
	require.NoError(t, d.Notify(context.Background(), &ev))

	after := getNotificationHistogramSampleCount()
	assert.Greater(t, after, before, "NotificationDuration histogram sample count should increase")
}
