package client

import (
	"context"
	"errors"
	"sync"

	"github.com/ponyo877/mural/server/domain"
)

// ErrSubmitInFlight is returned while a previous submit has not completed.
var ErrSubmitInFlight = errors.New("a submit is already in flight")

// Reconciler maintains a live, deduplicated, newest-first view of the
// mural in one client session. The baseline load and the live subscription
// run concurrently; merging is keyed by message id, so an event for a
// message the baseline already returned (or one the session itself just
// posted) never shows up twice.
type Reconciler struct {
	client   *Client
	onChange func([]domain.Message)

	mu         sync.Mutex
	view       []domain.Message
	seen       map[string]bool
	submitting bool
}

func NewReconciler(client *Client, onChange func([]domain.Message)) *Reconciler {
	if onChange == nil {
		onChange = func([]domain.Message) {}
	}
	return &Reconciler{
		client:   client,
		onChange: onChange,
		seen:     make(map[string]bool),
	}
}

// Baseline replaces the view with the server's full list. Messages that
// arrived over the live channel while the fetch was in flight are folded
// back in. On failure the current view is kept; a stale or empty board is
// acceptable degraded behavior.
func (r *Reconciler) Baseline(ctx context.Context) error {
	messages, err := r.client.ListMessages(ctx)
	if err != nil {
		return err
	}

	r.mu.Lock()
	early := r.view
	r.view = append([]domain.Message{}, messages...)
	r.seen = make(map[string]bool, len(messages))
	for _, m := range messages {
		r.seen[m.ID] = true
	}
	for i := len(early) - 1; i >= 0; i-- {
		r.upsertLocked(early[i])
	}
	snapshot := r.snapshotLocked()
	r.mu.Unlock()

	r.onChange(snapshot)
	return nil
}

// Listen runs the live subscription until ctx ends, upserting every
// received message into the view.
func (r *Reconciler) Listen(ctx context.Context) error {
	return r.client.Listen(ctx, func(event domain.Event) {
		r.mu.Lock()
		changed := r.upsertLocked(event.Data)
		snapshot := r.snapshotLocked()
		r.mu.Unlock()
		if changed {
			r.onChange(snapshot)
		}
	})
}

// Submit posts a new recadinho. Blank input (after trimming) is ignored
// without a request. While a submit is in flight further submits are
// rejected. On success the created message is upserted right away, so the
// submitter's own board updates even if the broadcast echo is lost.
func (r *Reconciler) Submit(ctx context.Context, author, body string) (domain.Message, error) {
	author, body = domain.TrimInput(author, body)
	if author == "" || body == "" {
		return domain.Message{}, nil
	}

	r.mu.Lock()
	if r.submitting {
		r.mu.Unlock()
		return domain.Message{}, ErrSubmitInFlight
	}
	r.submitting = true
	r.mu.Unlock()

	message, err := r.client.CreateMessage(ctx, author, body)

	r.mu.Lock()
	r.submitting = false
	if err != nil {
		r.mu.Unlock()
		return domain.Message{}, err
	}
	changed := r.upsertLocked(message)
	snapshot := r.snapshotLocked()
	r.mu.Unlock()

	if changed {
		r.onChange(snapshot)
	}
	return message, nil
}

func (r *Reconciler) Submitting() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.submitting
}

// Snapshot returns a copy of the current view, newest first.
func (r *Reconciler) Snapshot() []domain.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

// upsertLocked prepends the message if its id is not in the view yet.
func (r *Reconciler) upsertLocked(message domain.Message) bool {
	if message.ID == "" || r.seen[message.ID] {
		return false
	}
	r.seen[message.ID] = true
	r.view = append([]domain.Message{message}, r.view...)
	return true
}

func (r *Reconciler) snapshotLocked() []domain.Message {
	return append([]domain.Message{}, r.view...)
}
