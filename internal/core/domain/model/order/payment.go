package order

import (
	"errors"
	"fmt"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/pkg/errs"
)

// PaymentReferenceMaxLen bounds the gateway reference string.
const PaymentReferenceMaxLen = 80

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through NewPayment.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// PaymentMethod enumerates the accepted payment channels.
type PaymentMethod int

const (
	PaymentMethodUnknown PaymentMethod = iota
	PaymentMethodCreditCard
	PaymentMethodPayPal
	PaymentMethodBankTransfer
	PaymentMethodMobileMoney
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentMethodCreditCard:   "credit_card",
		PaymentMethodPayPal:       "paypal",
		PaymentMethodBankTransfer: "bank_transfer",
		PaymentMethodMobileMoney:  "mobile_money",
	}
}

// PaymentMethodFromString parses a wire-format method name.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, str := range getPaymentMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return PaymentMethodUnknown, errs.NewValueIsInvalidErrorWithCause("payment method",
		fmt.Errorf("%q is not a known payment method", s))
}

// Validate checks the method is one of the accepted channels.
func (m PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment method",
			fmt.Errorf("%d is not a valid payment method", m))
	}
	return nil
}

// String returns the wire-format name of the method.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "unknown"
}

// Payment records a single payment attempt for an order: the channel used,
// the unique gateway reference, and whether the gateway reported success.
// An order carries at most one payment record.
type Payment struct {
	id         kernel.UUID
	method     PaymentMethod
	reference  string
	successful bool

	isConstructed bool
}

// NewPayment creates a payment record for a gateway response.
// The reference is required, unique per order system-wide, and bounded by
// PaymentReferenceMaxLen.
func NewPayment(id kernel.UUID, method PaymentMethod, reference string, successful bool) (*Payment, error) {
	payment := &Payment{
		successful:    successful,
		isConstructed: true,
	}

	if err := errors.Join(
		payment.setID(id),
		payment.setMethod(method),
		payment.setReference(reference),
	); err != nil {
		return nil, err
	}

	return payment, nil
}

// Validate ensures the Payment instance was properly constructed.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}

	return nil
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// Method returns the payment channel.
func (p *Payment) Method() PaymentMethod {
	return p.method
}

// Reference returns the gateway reference.
func (p *Payment) Reference() string {
	return p.reference
}

// IsSuccessful reports whether the gateway confirmed the payment.
func (p *Payment) IsSuccessful() bool {
	return p.successful
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setMethod(method PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}
	p.method = method
	return nil
}

func (p *Payment) setReference(reference string) error {
	if reference == "" {
		return errs.NewValueIsRequiredError("payment reference")
	}
	if len(reference) > PaymentReferenceMaxLen {
		return errs.NewValueIsOutOfRangeError("payment reference", len(reference), 1, PaymentReferenceMaxLen)
	}
	p.reference = reference
	return nil
}
