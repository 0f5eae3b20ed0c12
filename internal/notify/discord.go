package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/CyberSolo/UDAM/internal/metrics"
	domain "github.com/CyberSolo/UDAM/pkg/types"
)

const (
	colorGreen  = 0x2ECC71 // completed, seller paid
	colorBlue   = 0x3498DB // routine lifecycle
	colorOrange = 0xE67E22 // dispute activity
	colorRed    = 0xE74C3C // resolved for the buyer
	colorGrey   = 0x95A5A6 // cancelled

	maxEmbeds = 10
)

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = c
	}
}

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Notify sends a single event as a Discord embed.
func (d *DiscordNotifier) Notify(ctx context.Context, ev *Event) error {
	payload := discordWebhookPayload{
		Embeds: []discordEmbed{buildEmbed(ev)},
	}
	return d.post(ctx, payload)
}

// NotifyBatch sends multiple events as a single Discord message.
func (d *DiscordNotifier) NotifyBatch(ctx context.Context, events []Event, summary string) error {
	if len(events) == 0 {
		return nil
	}

	embeds := make([]discordEmbed, 0, maxEmbeds+1)

	// Discord allows max 10 embeds per message.
	limit := min(len(events), maxEmbeds)
	for i := range limit {
		embeds = append(embeds, buildEmbed(&events[i]))
	}

	if len(events) > maxEmbeds {
		embeds[maxEmbeds-1] = discordEmbed{
			Title:       fmt.Sprintf("... and %d more events from %s", len(events)-maxEmbeds+1, summary),
			Color:       colorBlue,
			Description: "Query the orders API for the full list.",
		}
	}

	return d.post(ctx, discordWebhookPayload{Embeds: embeds})
}

func buildEmbed(ev *Event) discordEmbed {
	embed := discordEmbed{
		Title: fmt.Sprintf("%s: order %s", eventTitle(ev.Kind), ev.OrderID),
		Color: eventColor(ev),
		Fields: []discordEmbedField{
			{Name: "State", Value: string(ev.State), Inline: true},
			{Name: "Amount", Value: FormatAmount(ev.Amount), Inline: true},
			{Name: "Buyer", Value: ev.BuyerID, Inline: true},
			{Name: "Seller", Value: ev.SellerID, Inline: true},
		},
	}

	if ev.Decision != "" {
		embed.Fields = append(embed.Fields, discordEmbedField{
			Name: "Decision", Value: string(ev.Decision), Inline: true,
		})
	}
	if ev.Detail != "" {
		embed.Description = ev.Detail
	}

	return embed
}

func eventTitle(k EventKind) string {
	switch k {
	case EventOrderAccepted:
		return "Order accepted"
	case EventOrderCancelled:
		return "Order cancelled"
	case EventOrderCompleted:
		return "Order completed"
	case EventDisputeOpened:
		return "Dispute opened"
	case EventDisputeCounter:
		return "Dispute countered"
	case EventDisputeResolved:
		return "Dispute resolved"
	default:
		return string(k)
	}
}

func eventColor(ev *Event) int {
	switch ev.Kind {
	case EventOrderCompleted:
		return colorGreen
	case EventOrderCancelled:
		return colorGrey
	case EventDisputeOpened, EventDisputeCounter:
		return colorOrange
	case EventDisputeResolved:
		if ev.Decision == domain.PartyBuyer {
			return colorRed
		}
		return colorGreen
	default:
		return colorBlue
	}
}

// FormatAmount renders minor units as a decimal string.
func FormatAmount(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%d.%02d", sign, minor/100, minor%100)
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	start := time.Now()
	defer func() {
		metrics.NotificationDuration.Observe(time.Since(start).Seconds())
	}()

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling discord payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		d.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating discord request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("discord returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
