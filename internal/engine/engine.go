// Package engine implements the order lifecycle, dispute resolution and
// reputation rules of the marketplace on top of the store, inventory and
// escrow packages.
package engine

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/CyberSolo/UDAM/internal/metrics"
	"github.com/CyberSolo/UDAM/internal/notify"
	"github.com/CyberSolo/UDAM/internal/store"
	"github.com/CyberSolo/UDAM/internal/vault"
	domain "github.com/CyberSolo/UDAM/pkg/types"
)

const (
	instrumentationName = "github.com/CyberSolo/UDAM/internal/engine"

	defaultDisputeWindow  = 72 * time.Hour
	defaultCounterWindow  = 48 * time.Hour
	defaultMaxAttempts    = 5
	defaultSweepBatch     = 100
	defaultNotifyTimeout  = 10 * time.Second
	recentReviewsPerUser  = 10
	maxDisputeTextLength  = 2000
	maxReviewCommentChars = 1000
)

// Engine orchestrates orders, disputes, listings and reviews.
type Engine struct {
	store    store.Store
	notifier notify.Notifier
	vault    *vault.Sealer
	log      *slog.Logger

	tracer     trace.Tracer
	opDuration metric.Float64Histogram

	now              func() time.Time
	disputeWindow    time.Duration
	counterWindow    time.Duration
	autoConfirmLimit int64
	maxAttempts      int
	sweepBatch       int
	notifyTimeout    time.Duration

	// sweepMu serializes window sweeps; sweepCursor is where the next one
	// resumes.
	sweepMu     sync.Mutex
	sweepCursor store.ExpiryCursor

	pending sync.WaitGroup
}

// NewEngine creates a new Engine with injected dependencies. A nil notifier
// discards events.
func NewEngine(
	s store.Store,
	n notify.Notifier,
	v *vault.Sealer,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:         s,
		notifier:      n,
		vault:         v,
		log:           slog.Default(),
		tracer:        otel.Tracer(instrumentationName),
		now:           time.Now,
		disputeWindow: defaultDisputeWindow,
		counterWindow: defaultCounterWindow,
		maxAttempts:   defaultMaxAttempts,
		sweepBatch:    defaultSweepBatch,
		notifyTimeout: defaultNotifyTimeout,
	}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.notifier == nil {
		eng.notifier = notify.NewNoOpNotifier(eng.log)
	}

	h, err := otel.Meter(instrumentationName).Float64Histogram(
		"udam.engine.operation.duration",
		metric.WithDescription("Duration of engine operations."),
		metric.WithUnit("s"),
	)
	if err != nil {
		eng.log.Warn("operation histogram unavailable", "error", err)
	}
	eng.opDuration = h

	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithNowFunc replaces the clock.
func WithNowFunc(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// WithDisputeWindow sets how long a buyer may dispute an accepted order.
func WithDisputeWindow(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.disputeWindow = d
	}
}

// WithCounterWindow sets how long a seller may answer a dispute.
func WithCounterWindow(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.counterWindow = d
	}
}

// WithAutoConfirmLimit creates orders whose amount is at most limit directly
// in CONFIRMED. Zero disables the shortcut.
func WithAutoConfirmLimit(limit int64) EngineOption {
	return func(e *Engine) {
		e.autoConfirmLimit = limit
	}
}

// WithMaxAttempts bounds optimistic retries of one transition.
func WithMaxAttempts(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.maxAttempts = n
		}
	}
}

// WithSweepBatch sets how many expired orders one sweep handles.
func WithSweepBatch(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.sweepBatch = n
		}
	}
}

// WithNotifyTimeout bounds each notification delivery.
func WithNotifyTimeout(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.notifyTimeout = d
	}
}

// Ping reports whether the datastore is reachable.
func (eng *Engine) Ping(ctx context.Context) error {
	return eng.store.Ping(ctx)
}

// Wait blocks until in-flight notifications have been delivered.
func (eng *Engine) Wait() {
	eng.pending.Wait()
}

// startOp opens a span for an engine operation. The returned func ends it,
// recording err and the operation duration.
func (eng *Engine) startOp(
	ctx context.Context,
	name string,
	attrs ...attribute.KeyValue,
) (context.Context, func(*error)) {
	start := time.Now()
	ctx, span := eng.tracer.Start(ctx, "engine."+name, trace.WithAttributes(attrs...))

	return ctx, func(errp *error) {
		outcome := "ok"
		if errp != nil && *errp != nil {
			outcome = domain.ErrorCode(*errp)
			span.RecordError(*errp)
			span.SetStatus(codes.Error, (*errp).Error())
		} else {
			span.SetStatus(codes.Ok, "")
		}
		span.End()

		if eng.opDuration != nil {
			eng.opDuration.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(
				attribute.String("operation", name),
				attribute.String("outcome", outcome),
			))
		}
	}
}

// publish delivers an event in the background. Delivery failures are logged
// and counted, never returned.
func (eng *Engine) publish(ctx context.Context, kind notify.EventKind, o *domain.Order) {
	ev := notify.EventFor(kind, o)

	eng.pending.Add(1)
	go func() {
		defer eng.pending.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), eng.notifyTimeout)
		defer cancel()

		if err := eng.notifier.Notify(ctx, &ev); err != nil {
			metrics.NotificationFailuresTotal.Inc()
			eng.log.Warn("notification failed",
				"kind", ev.Kind,
				"order_id", ev.OrderID,
				"error", err,
			)
		}
	}()
}

func (eng *Engine) publishBatch(ctx context.Context, events []notify.Event, summary string) {
	if len(events) == 0 {
		return
	}

	eng.pending.Add(1)
	go func() {
		defer eng.pending.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), eng.notifyTimeout)
		defer cancel()

		if err := eng.notifier.NotifyBatch(ctx, events, summary); err != nil {
			metrics.NotificationFailuresTotal.Inc()
			eng.log.Warn("batch notification failed",
				"summary", summary,
				"count", len(events),
				"error", err,
			)
		}
	}()
}
