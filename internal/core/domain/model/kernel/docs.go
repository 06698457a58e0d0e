// Package kernel provides the value objects shared by the ordering domain.
//
// The package includes:
//   - Money: a non-negative decimal amount with two fractional digits
//   - Phone: a normalized customer phone number, the natural key of customers
//
// Both are immutable and safe for concurrent use.
package kernel
