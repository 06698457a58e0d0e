package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a fixed linear progression and a single
// cancellation branch.
//
// State transitions:
//
//	Placed ──> Accepted ──> Cooked ──> Packed ──> Ready ──> OutForDelivery ──> Delivered
//	  │
//	  └──> Cancelled
//
// Delivered and Cancelled are terminal. Status is a value object: transition
// methods return the next status instead of mutating the receiver.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status assigned by order intake.
	Placed

	// Accepted means the kitchen took the order; the estimated ready time is set.
	Accepted

	// Cooked means the food is prepared.
	Cooked

	// Packed means the food is boxed.
	Packed

	// Ready means the order waits for pickup or a rider.
	Ready

	// OutForDelivery means a rider is on the way.
	OutForDelivery

	// Delivered is the successful terminal state.
	Delivered

	// Cancelled is the terminal state reachable only from Placed.
	Cancelled
)

var statusNames = map[Status]string{
	Unknown:        "UNKNOWN",
	Placed:         "PLACED",
	Accepted:       "ACCEPTED",
	Cooked:         "COOKED",
	Packed:         "PACKED",
	Ready:          "READY",
	OutForDelivery: "OUT_FOR_DELIVERY",
	Delivered:      "DELIVERED",
	Cancelled:      "CANCELLED",
}

// nextStatus is the advance table. Statuses missing from it cannot advance.
//
//nolint:exhaustive // terminal and unknown statuses are intentionally absent
var nextStatus = map[Status]Status{
	Placed:         Accepted,
	Accepted:       Cooked,
	Cooked:         Packed,
	Packed:         Ready,
	Ready:          OutForDelivery,
	OutForDelivery: Delivered,
}

// AllStatuses returns every valid status in lifecycle order, Cancelled last.
func AllStatuses() []Status {
	return []Status{Placed, Accepted, Cooked, Packed, Ready, OutForDelivery, Delivered, Cancelled}
}

// ParseStatus converts a wire name such as "OUT_FOR_DELIVERY" into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined lifecycle states.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is Unknown or out of range
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status. It is safe on invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[Unknown]
}

// MarshalText encodes the status by name for JSON and message payloads.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a status name.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// IsTerminal reports whether no transition is defined out of s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Next returns the status that follows s in the linear lifecycle.
//
// Returns:
//   - (next, nil) when s has a successor in the advance table
//   - (Unknown, InvalidTransitionError) for terminal, unknown or out of range statuses
//
// Example:
//
//	next, err := order.Cooked.Next() // order.Packed, nil
func (s Status) Next() (Status, error) {
	next, ok := nextStatus[s]
	if !ok {
		return Unknown, errs.NewInvalidTransitionError(s.String(), "advance")
	}
	return next, nil
}

// Accept returns Accepted when s is Placed.
// Accepting is one-shot: any other starting status is an invalid transition.
func (s Status) Accept() (Status, error) {
	if s != Placed {
		return Unknown, errs.NewInvalidTransitionError(s.String(), "accept")
	}
	return Accepted, nil
}

// Cancel returns Cancelled when s is Placed.
func (s Status) Cancel() (Status, error) {
	if s != Placed {
		return Unknown, errs.NewInvalidTransitionError(s.String(), "cancel")
	}
	return Cancelled, nil
}
