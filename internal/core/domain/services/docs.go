// Package services contains domain services: operations that express
// business rules spanning more than one aggregate or that do not naturally
// belong to a single entity.
//
// The package currently provides AccessPolicy, the authorization capability
// evaluated at the application boundary, and CounterOfferPolicy, the
// automated seller-side pricing rule used in negotiations. Authorization is
// expressed as an explicit function of (caller identity, resource) rather
// than per-route flags, so the rules are visible and testable in one place.
package services
