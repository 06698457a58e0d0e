// Package order provides the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root holding identity, captured lines and status
//   - Status: the state machine PLACED → ACCEPTED → COOKED → PACKED → READY →
//     OUT_FOR_DELIVERY → DELIVERED, with CANCELLED reachable from PLACED only
//   - Line: a menu item, captured price and quantity
//   - Mode, Code and EventKind value types
//
// Key business rules:
//   - The total is the sum of captured line subtotals and never changes afterwards
//   - Accepting sets the estimated ready time to the acceptance instant + 45 minutes
//   - Advancing from a terminal status, or cancelling outside PLACED, is an
//     InvalidTransitionError and leaves the order untouched
package order
