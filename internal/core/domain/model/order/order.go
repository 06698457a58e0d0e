package order

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// PreparationTime is added to the acceptance instant to promise a ready time.
const PreparationTime = 45 * time.Minute

// ErrOrderIsNotConstructed is returned when an Order instance was not created through
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// ID is the numeric order identifier assigned by storage.
type ID int64

// Order is the aggregate root of the ordering domain. It owns the status state
// machine and the captured order lines.
//
// Order follows these invariants:
//   - It has at least one line and belongs to exactly one customer
//   - Total equals the sum of line subtotals at creation and is never recomputed
//   - Status changes only through Advance, Accept and Cancel
//   - EstimatedAt is set exactly when the order is accepted
//
// Each successful transition records the event kinds observers must receive.
// The application layer drains them with DomainEvents after the change is stored.
type Order struct {
	id          ID
	code        Code
	customerID  int64
	mode        Mode
	status      Status
	total       kernel.Money
	estimatedAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time
	lines       []Line

	events []EventKind

	isConstructed bool
}

// NewOrder creates an order in Placed status.
//
// Parameters:
//   - customerID: owning customer (positive)
//   - code: human-readable order code
//   - mode: Takeaway or Delivery
//   - lines: at least one constructed line
//   - now: creation instant
//
// Returns:
//   - *Order: the new order with its total computed from the lines
//   - error: joined validation errors for every invalid argument
//
// The returned order has no ID until the repository assigns one, and it has
// EventNewOrder recorded.
func NewOrder(customerID int64, code Code, mode Mode, lines []Line, now time.Time) (*Order, error) {
	o := &Order{
		status:        Placed,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setCode(code),
		mode.Validate(),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	o.mode = mode
	o.total = sumLines(lines)
	o.events = []EventKind{EventNewOrder}
	return o, nil
}

// RestoreOrder rebuilds an order from persistence without recomputing its total.
func RestoreOrder(
	id ID,
	code Code,
	customerID int64,
	mode Mode,
	status Status,
	total kernel.Money,
	estimatedAt *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
	lines []Line,
) (*Order, error) {
	o := &Order{
		id:            id,
		estimatedAt:   estimatedAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setCode(code),
		mode.Validate(),
		status.Validate(),
		total.Validate(),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	o.mode = mode
	o.status = status
	o.total = total
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// AssignID stores the identifier generated by the repository. It can be called once.
func (o *Order) AssignID(id ID) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", id))
	}
	if o.id != 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("order already has id %d", o.id))
	}
	o.id = id
	return nil
}

// ID returns the storage identifier (0 before the order is persisted).
func (o *Order) ID() ID {
	return o.id
}

// Code returns the human-readable order code.
func (o *Order) Code() Code {
	return o.code
}

// CustomerID returns the owning customer.
func (o *Order) CustomerID() int64 {
	return o.customerID
}

// Mode returns how the order is fulfilled.
func (o *Order) Mode() Mode {
	return o.mode
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Total returns the amount captured at creation.
func (o *Order) Total() kernel.Money {
	return o.total
}

// EstimatedAt returns the promised ready time, nil until the order is accepted.
func (o *Order) EstimatedAt() *time.Time {
	if o.estimatedAt == nil {
		return nil
	}
	t := *o.estimatedAt
	return &t
}

// CreatedAt returns the creation instant.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the instant of the last status change.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Lines returns a copy of the order lines.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Advance moves the order to the next status of the lifecycle.
//
// Advancing a Placed order is the accept transition and sets the estimated
// ready time. From Delivered, Cancelled or an unknown status it fails with an
// InvalidTransitionError and leaves the order untouched.
//
// Example:
//
//	if err := o.Advance(time.Now()); errors.Is(err, errs.ErrInvalidTransition) {
//	    // terminal order
//	}
func (o *Order) Advance(now time.Time) error {
	if o.status == Placed {
		return o.Accept(now)
	}

	next, err := o.status.Next()
	if err != nil {
		return err
	}

	o.apply(next, now)
	return nil
}

// Accept moves a Placed order to Accepted and promises now + PreparationTime.
// Any other starting status is an InvalidTransitionError.
func (o *Order) Accept(now time.Time) error {
	next, err := o.status.Accept()
	if err != nil {
		return err
	}

	estimated := now.Add(PreparationTime)
	o.estimatedAt = &estimated
	o.apply(next, now)
	o.events = append(o.events, EventOrderAccepted)
	return nil
}

// Cancel moves a Placed order to Cancelled.
func (o *Order) Cancel(now time.Time) error {
	next, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.apply(next, now)
	return nil
}

// DomainEvents returns the event kinds recorded since the last ClearDomainEvents,
// in emission order: EventStatusUpdated always precedes EventOrderAccepted.
func (o *Order) DomainEvents() []EventKind {
	events := make([]EventKind, len(o.events))
	copy(events, o.events)
	return events
}

// ClearDomainEvents forgets recorded events once they have been published.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) apply(next Status, now time.Time) {
	o.status = next
	o.updatedAt = now
	o.events = append(o.events, EventStatusUpdated)
}

func (o *Order) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"customer id", fmt.Errorf("%d is not greater than 0", customerID))
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setCode(code Code) error {
	if code == "" {
		return errs.NewValueIsRequiredError("order code")
	}
	o.code = code
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}
	for i, l := range lines {
		if err := l.Validate(); err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
	}
	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

func sumLines(lines []Line) kernel.Money {
	total := kernel.ZeroMoney()
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}
