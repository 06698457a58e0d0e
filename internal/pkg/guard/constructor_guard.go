// Package guard provides a marker that lets value objects and commands detect
// whether they were built by their constructor or left as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in structs whose zero value is not a valid instance.
// Constructors set it with NewConstructorGuard and Validate methods check it.
//
// Example:
//
//	type AcceptOrderCommand struct {
//	    orderID order.ID
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c AcceptOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that reports the owning object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for constructed guards and validationError otherwise.
// A nil validationError is replaced with ErrDefaultConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
