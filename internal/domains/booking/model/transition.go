package model

import (
	"carehub/shared/failure"
	"fmt"
	"slices"
)

// Transition is one row of the booking state machine.
type Transition struct {
	From []Status
	To   Status
	Verb string
}

func (t Transition) Allows(from Status) bool {
	return slices.Contains(t.From, from)
}

var transitions = map[Operation]Transition{
	OperationConfirm: {
		From: []Status{StatusPending},
		To:   StatusConfirmed,
		Verb: "confirm",
	},
	OperationDecline: {
		From: []Status{StatusPending},
		To:   StatusCancelled,
		Verb: "decline",
	},
	OperationCancel: {
		From: []Status{StatusPending, StatusConfirmed},
		To:   StatusCancelled,
		Verb: "cancel",
	},
	OperationComplete: {
		From: []Status{StatusConfirmed},
		To:   StatusCompleted,
		Verb: "mark as completed",
	},
}

// TransitionFor returns the state machine row for a lifecycle operation.
func TransitionFor(op Operation) (Transition, bool) {
	t, ok := transitions[op]

	return t, ok
}

// InvalidTransition is the error returned when op is not allowed from the current status.
func InvalidTransition(op Operation, current Status) error {
	verb := string(op)
	if t, ok := transitions[op]; ok {
		verb = t.Verb
	}

	return failure.BadRequestFromString(fmt.Sprintf("Cannot %s a booking with status: %s", verb, current)) //nolint:wrapcheck
}

func Forbidden(op Operation) error {
	return failure.Forbidden(fmt.Sprintf("Not authorized to %s this booking", op)) //nolint:wrapcheck
}
