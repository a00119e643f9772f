package commands

import (
	"errors"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/core/domain/model/order"
	"negcom/internal/pkg/errs"
	"negcom/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand represents the outcome of a payment attempt against a
// pending order, as reported by the payment provider callback. A successful
// attempt settles the order; a failed one leaves it pending for a retry.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	method     order.PaymentMethod
	reference  string
	successful bool

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command to record a payment attempt.
// The method name must be one of the supported payment methods and the
// provider reference must be present.
func NewRecordPaymentCommand(
	orderID kernel.UUID,
	methodName string,
	reference string,
	successful bool,
) (RecordPaymentCommand, error) {
	paymentCommand := RecordPaymentCommand{
		successful: successful,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		paymentCommand.setOrderID(orderID),
		paymentCommand.setMethod(methodName),
		paymentCommand.setReference(reference),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return paymentCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRecordPaymentCommandIsNotConstructed if validation fails.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being paid.
func (c RecordPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Method returns the payment method used for the attempt.
func (c RecordPaymentCommand) Method() order.PaymentMethod {
	return c.method
}

// Reference returns the provider's payment reference.
func (c RecordPaymentCommand) Reference() string {
	return c.reference
}

// IsSuccessful reports whether the payment attempt succeeded.
func (c RecordPaymentCommand) IsSuccessful() bool {
	return c.successful
}

func (c *RecordPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RecordPaymentCommand) setMethod(methodName string) error {
	method, err := order.PaymentMethodFromString(methodName)
	if err != nil {
		return err
	}

	c.method = method
	return nil
}

func (c *RecordPaymentCommand) setReference(reference string) error {
	if reference == "" {
		return errs.NewValueIsRequiredError("reference")
	}

	c.reference = reference
	return nil
}
