// Package negotiation provides domain entities and business logic for price
// negotiation in the vehicle-sales system. A buyer opens a negotiation on a
// listing with an initial offer; offers accumulate as the buyer and the
// seller side trade amounts; accepting fixes the final price, which an order
// can then be placed at instead of the listed price.
//
// The package includes:
//   - Negotiation: The aggregate root holding the offer history and outcome
//   - Status: A state machine enforcing ongoing -> accepted/rejected
//   - Offer: A single priced proposal from the buyer or the seller side
//
// Key business rules:
//   - A negotiation is created ongoing with the buyer's opening offer
//   - Offers may only be added while the negotiation is ongoing
//   - Accepting takes the price of the latest offer as the final price
//   - Accepted and rejected are terminal states; the final price of an
//     accepted negotiation never changes afterwards
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package negotiation
