// Package errs provides the typed errors shared by the ordering service.
//
// Every error type follows the same shape:
//   - a sentinel variable (e.g. ErrObjectNotFound) that callers match with errors.Is
//   - a struct carrying the details of the failure
//   - constructors with and without a cause
//   - Error() for a single-line message and Unwrap() returning the sentinel
//
// Lifecycle code reports ErrInvalidTransition for illegal status changes,
// ErrObjectNotFound for unknown orders, ErrVersionIsInvalid when a conditional
// write loses a race and ErrPersistenceFailure for storage errors. The HTTP
// adapter maps each sentinel to a status code.
package errs
