// Package order provides domain entities and business logic for the purchase
// lifecycle in the vehicle-sales system. It implements the Order aggregate
// root together with its optional child records: the delivery, the buyer
// rating, and the payment.
//
// The package includes:
//   - Order: The aggregate root that manages payment status and owns the children
//   - PaymentStatus: A state machine enforcing pending -> paid/failed -> refunded
//   - Delivery: The shipping record, created together with the order
//   - DeliveryStatus: pending -> in_transit -> delivered
//   - Rating: Buyer feedback, attachable exactly once and only after payment
//   - Payment: The recorded payment attempt for the order
//
// Key business rules:
//   - An order is created with a pending delivery attached; both exist or neither
//   - A rating may be attached only when the order is paid, and only once
//   - Attaching a rating flips the delivery to delivered in the same operation;
//     when no delivery exists this side effect is a no-op
//   - Failed and refunded are terminal payment states
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
