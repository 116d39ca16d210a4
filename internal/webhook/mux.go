package webhook

import (
	"context"
	"sync"

	logf "sigs.k8s.io/controller-runtime/pkg/log"
)

// Mux routes events to handlers by event type. Events without a
// registered handler are acknowledged and logged.
type Mux struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

func NewMux() *Mux {
	return &Mux{handlers: map[string]Handler{}}
}

// On registers h for eventType, replacing any previous handler.
func (m *Mux) On(eventType string, h Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[eventType] = h
}

func (m *Mux) OnFunc(eventType string, f func(context.Context, Request) Response) {
	m.On(eventType, HandlerFunc(f))
}

func (m *Mux) Handle(ctx context.Context, req Request) Response {
	m.mu.RLock()
	h, ok := m.handlers[req.Event.Type]
	m.mu.RUnlock()
	if !ok {
		logf.FromContext(ctx).Info("No handler for event type", "type", req.Event.Type)
		return OkResponse()
	}
	return h.Handle(ctx, req)
}

// LogEvents acknowledges every event after logging its list and email.
func LogEvents() Handler {
	return HandlerFunc(func(ctx context.Context, req Request) Response {
		ev := req.Event
		logf.FromContext(ctx).Info("Received mailchimp event",
			"type", ev.Type,
			"firedAt", ev.FiredAt,
			"listID", ev.Data.ListID,
			"email", ev.Data.Email,
			"reason", ev.Data.Reason,
		)
		return OkResponse()
	})
}
