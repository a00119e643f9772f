package commands

import (
	"errors"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/core/domain/model/order"
	"negcom/internal/pkg/errs"
	"negcom/internal/pkg/guard"
)

var ErrRateOrderCommandIsNotConstructed = errors.New(
	"RateOrderCommand must be created via NewRateOrderCommand constructor",
)

// RateOrderCommand represents a buyer's one-time rating of a paid order.
// Carries the score and an optional free-text comment.
type RateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	score   int
	comment string

	guard guard.ConstructorGuard
}

// NewRateOrderCommand creates a command to rate a completed purchase.
// Validates that the order ID is valid, the score is within the accepted
// range, and the comment does not exceed the maximum length.
func NewRateOrderCommand(orderID kernel.UUID, score int, comment string) (RateOrderCommand, error) {
	rateCommand := RateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rateCommand.setOrderID(orderID),
		rateCommand.setScore(score),
		rateCommand.setComment(comment),
	); err != nil {
		return RateOrderCommand{}, err
	}

	return rateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRateOrderCommandIsNotConstructed if validation fails.
func (c RateOrderCommand) Validate() error {
	return c.guard.Validate(ErrRateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being rated.
func (c RateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Score returns the rating score.
func (c RateOrderCommand) Score() int {
	return c.score
}

// Comment returns the optional rating comment.
func (c RateOrderCommand) Comment() string {
	return c.comment
}

func (c *RateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RateOrderCommand) setScore(score int) error {
	if score < order.RatingScoreMin || score > order.RatingScoreMax {
		return errs.NewValueIsOutOfRangeError("score", score,
			order.RatingScoreMin, order.RatingScoreMax)
	}

	c.score = score
	return nil
}

func (c *RateOrderCommand) setComment(comment string) error {
	if len(comment) > order.RatingCommentMaxLen {
		return errs.NewValueIsOutOfRangeError("comment length", len(comment),
			0, order.RatingCommentMaxLen)
	}

	c.comment = comment
	return nil
}
