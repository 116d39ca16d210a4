package mailchimp

import (
	"github.com/go-logr/logr"
)

// Completion receives the outcome of an invocation. Exactly one of its
// branches runs, once.
//
// The zero Completion discards the result and hands failures to the client's
// FailurePolicy. Setting only OnSuccess keeps that failure behaviour.
type Completion struct {
	OnSuccess func(*Result)
	OnFailure func(*Error)
}

// OnSuccess returns a completion with only a success handler.
func OnSuccess(f func(*Result)) Completion {
	return Completion{OnSuccess: f}
}

// Handle returns a completion with both handlers.
func Handle(onSuccess func(*Result), onFailure func(*Error)) Completion {
	return Completion{OnSuccess: onSuccess, OnFailure: onFailure}
}

// FailurePolicy handles failures of invocations whose completion has no
// OnFailure handler.
type FailurePolicy func(*Invocation, *Error)

// LogAndDrop logs the failure and discards it. It is the default policy.
func LogAndDrop(log logr.Logger) FailurePolicy {
	return func(inv *Invocation, err *Error) {
		log.Error(err, "Unhandled mailchimp failure",
			"group", inv.Group,
			"operation", inv.Operation,
			"invocation", inv.ID.String(),
			"kind", string(err.Kind),
		)
	}
}

// Rethrow hands the failure back to the owner of failures as an
// *UnhandledFailure. The send blocks the invocation until it is received, so
// Done does not close before the owner has the failure; pass a buffered
// channel to avoid stalling on a slow reader.
func Rethrow(failures chan<- *UnhandledFailure) FailurePolicy {
	return func(inv *Invocation, err *Error) {
		failures <- &UnhandledFailure{Invocation: inv.ID, Err: err}
	}
}

func (c Completion) success(r *Result) {
	if c.OnSuccess != nil {
		c.OnSuccess(r)
	}
}

func (c Completion) failure(inv *Invocation, err *Error, policy FailurePolicy) {
	if c.OnFailure != nil {
		c.OnFailure(err)
		return
	}
	if policy != nil {
		policy(inv, err)
	}
}
