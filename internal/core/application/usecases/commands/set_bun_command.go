package commands

import (
	"errors"
	"strings"

	"burger/internal/core/domain/model/kernel"
	"burger/internal/pkg/errs"
	"burger/internal/pkg/guard"
)

var ErrSetBunCommandIsNotConstructed = errors.New(
	"SetBunCommand must be created via NewSetBunCommand constructor",
)

// SetBunCommand asks to put the named catalog bun on a burger, replacing any previous bun.
type SetBunCommand struct { //nolint:recvcheck //using for validation
	burgerID kernel.UUID
	bunName  string

	guard guard.ConstructorGuard
}

// NewSetBunCommand validates the burger id and requires a non-blank bun name.
func NewSetBunCommand(burgerID kernel.UUID, bunName string) (SetBunCommand, error) {
	cmd := SetBunCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setBurgerID(burgerID),
		cmd.setBunName(bunName),
	); err != nil {
		return SetBunCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetBunCommand) Validate() error {
	return c.guard.Validate(ErrSetBunCommandIsNotConstructed)
}

// BurgerID returns the identifier of the burger to change.
func (c SetBunCommand) BurgerID() kernel.UUID {
	return c.burgerID
}

// BunName returns the catalog name of the bun.
func (c SetBunCommand) BunName() string {
	return c.bunName
}

func (c *SetBunCommand) setBurgerID(burgerID kernel.UUID) error {
	if err := burgerID.Validate(); err != nil {
		return err
	}

	c.burgerID = burgerID
	return nil
}

func (c *SetBunCommand) setBunName(bunName string) error {
	if strings.TrimSpace(bunName) == "" {
		return errs.NewValueIsRequiredError("bun name")
	}

	c.bunName = bunName
	return nil
}
