package mailchimp

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// State is the lifecycle state of an Invocation.
type State int32

const (
	StateCreated State = iota
	StateValidating
	StateInFlight
	// StateRejected is terminal: the operation was unknown or the params
	// were invalid, and the transport was never called.
	StateRejected
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "Created"
	case StateValidating:
		return "Validating"
	case StateInFlight:
		return "InFlight"
	case StateRejected:
		return "Rejected"
	case StateCompleted:
		return "Completed"
	case StateFailed:
		return "Failed"
	}
	return "Unknown"
}

// Terminal reports whether no further transition can happen.
func (s State) Terminal() bool {
	return s == StateRejected || s == StateCompleted || s == StateFailed
}

// Invocation records one call of an operation. It is discarded once its
// completion has been delivered.
type Invocation struct {
	ID        uuid.UUID
	Group     string
	Operation string
	Params    any

	descriptor *Descriptor
	state      atomic.Int32
	once       sync.Once
	done       chan struct{}
	result     *Result
	err        *Error
}

func newInvocation(group, name string, params any) *Invocation {
	return &Invocation{
		ID:        uuid.New(),
		Group:     group,
		Operation: name,
		Params:    params,
		done:      make(chan struct{}),
	}
}

// Descriptor blocks until the invocation finishes and returns the resolved
// descriptor, or nil when the operation is unknown.
func (i *Invocation) Descriptor() *Descriptor {
	<-i.done
	return i.descriptor
}

// State returns the current lifecycle state.
func (i *Invocation) State() State {
	return State(i.state.Load())
}

func (i *Invocation) transition(from, to State) bool {
	return i.state.CompareAndSwap(int32(from), int32(to))
}

// Done is closed after the completion has been delivered.
func (i *Invocation) Done() <-chan struct{} {
	return i.done
}

// Wait blocks until the invocation finishes or ctx is done. Waiting does not
// cancel the invocation.
func (i *Invocation) Wait(ctx context.Context) (*Result, error) {
	select {
	case <-i.done:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	if i.err != nil {
		return nil, i.err
	}
	return i.result, nil
}

// finish records the outcome and delivers it exactly once. The terminal state
// is set before the completion runs; Done closes after it returns, even if a
// handler panics.
func (i *Invocation) finish(final State, result *Result, failure *Error, deliver func()) bool {
	delivered := false
	i.once.Do(func() {
		delivered = true
		i.result, i.err = result, failure
		i.state.Store(int32(final))
		defer close(i.done)
		deliver()
	})
	return delivered
}
