package commands

import (
	"errors"
	"time"

	"negcom/internal/pkg/errs"
	"negcom/internal/pkg/guard"
)

var ErrExpireStaleOrdersCommandIsNotConstructed = errors.New(
	"ExpireStaleOrdersCommand must be created via NewExpireStaleOrdersCommand constructor",
)

// ExpireStaleOrdersCommand represents a sweep of pending orders that were
// never paid. Orders older than the maximum age are cancelled, releasing
// their vehicles for other buyers. Triggered periodically by the job
// scheduler rather than by a user.
type ExpireStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewExpireStaleOrdersCommand creates a command to expire stale pending
// orders. The maximum age must be positive.
func NewExpireStaleOrdersCommand(maxAge time.Duration) (ExpireStaleOrdersCommand, error) {
	expireCommand := ExpireStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := expireCommand.setMaxAge(maxAge); err != nil {
		return ExpireStaleOrdersCommand{}, err
	}

	return expireCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrExpireStaleOrdersCommandIsNotConstructed if validation fails.
func (c ExpireStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpireStaleOrdersCommandIsNotConstructed)
}

// MaxAge returns how long a pending order may stay unpaid before expiring.
func (c ExpireStaleOrdersCommand) MaxAge() time.Duration {
	return c.maxAge
}

func (c *ExpireStaleOrdersCommand) setMaxAge(maxAge time.Duration) error {
	if maxAge <= 0 {
		return errs.NewValueIsInvalidError("maxAge")
	}

	c.maxAge = maxAge
	return nil
}
