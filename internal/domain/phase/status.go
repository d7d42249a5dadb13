package phase

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

var Statuses = []Status{StatusPending, StatusActive, StatusCompleted, StatusCancelled}

var transitions = map[Status][]Status{
	StatusPending:   {StatusActive, StatusCancelled},
	StatusActive:    {StatusCompleted, StatusCancelled},
	StatusCompleted: nil,
	StatusCancelled: nil,
}

func ParseStatus(value string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := transitions[s]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, value)
	}
	return s, nil
}

// AllowedTransitions returns the statuses reachable from s.
func (s Status) AllowedTransitions() []Status {
	next := transitions[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

func (s Status) CanTransitionTo(to Status) bool {
	for _, candidate := range transitions[s] {
		if candidate == to {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// InvalidTransitionError is returned when a status change is outside the whitelist.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid phase status transition from %s to %s", e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// TransitionTo returns the phase with its new status. On error the phase is returned unchanged.
func (p Phase) TransitionTo(to Status) (Phase, error) {
	if !p.Status.CanTransitionTo(to) {
		return p, &InvalidTransitionError{From: p.Status, To: to}
	}
	p.Status = to
	return p, nil
}

func (p Phase) CanBeStarted() bool {
	return p.Status.CanTransitionTo(StatusActive)
}

func (p Phase) CanBeCompleted() bool {
	return p.Status.CanTransitionTo(StatusCompleted)
}

func (p Phase) CanBeCancelled() bool {
	return p.Status.CanTransitionTo(StatusCancelled)
}
