package pgsql

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/turma62/fundraiser/internal/core/domain"
	"github.com/turma62/fundraiser/internal/realtime"
)

// LedgerChannel is the NOTIFY channel fed by the ledger_records trigger.
const LedgerChannel = "ledger_changes"

const (
	listenBackoffMin = time.Second
	listenBackoffMax = 30 * time.Second
)

// ChangeListener holds one pooled connection in LISTEN mode and forwards every
// notification to a publisher.
type ChangeListener struct {
	pool      *pgxpool.Pool
	publisher realtime.Publisher
	channel   string
	logger    *slog.Logger
}

// NewChangeListener creates a listener for LedgerChannel.
func NewChangeListener(pool *pgxpool.Pool, publisher realtime.Publisher, logger *slog.Logger) *ChangeListener {
	return &ChangeListener{
		pool:      pool,
		publisher: publisher,
		channel:   LedgerChannel,
		logger:    logger.With(slog.String("component", "change_listener")),
	}
}

// Run listens until ctx is cancelled, reconnecting with backoff. Live views are
// sent one trigger after every reconnect, since notifications may have been missed.
func (l *ChangeListener) Run(ctx context.Context) {
	var backoff time.Duration
	for {
		established, err := l.listen(ctx)
		if ctx.Err() != nil {
			l.logger.Info("Change listener stopped")
			return
		}
		backoff = nextBackoff(backoff, established)
		l.logger.Warn("Change listener disconnected, retrying",
			slog.String("error", err.Error()),
			slog.Bool("was_listening", established),
			slog.Duration("backoff", backoff))

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}
	}
}

// nextBackoff doubles the wait up to listenBackoffMax. A session that reached
// LISTEN starts over from listenBackoffMin.
func nextBackoff(prev time.Duration, established bool) time.Duration {
	if established || prev <= 0 {
		return listenBackoffMin
	}
	next := prev * 2
	if next > listenBackoffMax {
		next = listenBackoffMax
	}
	return next
}

// listen reports whether LISTEN was established before the session ended.
func (l *ChangeListener) listen(ctx context.Context) (bool, error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to acquire listen connection: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+l.channel); err != nil {
		return false, fmt.Errorf("failed to LISTEN %s: %w", l.channel, err)
	}
	l.logger.Info("Listening for ledger changes", slog.String("channel", l.channel))
	l.publisher.Publish(domain.ChangeEvent{Op: domain.ChangeUpdate})

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return true, fmt.Errorf("failed waiting for notification: %w", err)
		}
		l.publisher.Publish(ParseChangePayload(n.Payload))
	}
}

type changePayload struct {
	Op string `json:"op"`
	ID string `json:"id"`
}

// ParseChangePayload decodes the trigger payload. A malformed payload still
// yields an event, since consumers only use it as a refetch trigger.
func ParseChangePayload(payload string) domain.ChangeEvent {
	ev := domain.ChangeEvent{Op: domain.ChangeInsert, ReceivedAt: time.Now()}
	var p changePayload
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return ev
	}
	switch domain.ChangeOp(p.Op) {
	case domain.ChangeInsert, domain.ChangeUpdate, domain.ChangeDelete:
		ev.Op = domain.ChangeOp(p.Op)
	}
	ev.RecordID = p.ID
	return ev
}
