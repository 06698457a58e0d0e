// Package services contains domain services that work across several orders
// or across orders and the menu.
//
// The package includes:
//   - OrderStatsCalculator: dashboard buckets and delivered revenue
//   - OrderPricer: turns requested menu items into priced order lines
//   - PaymentLinkBuilder: UPI payment links for an order total
package services
