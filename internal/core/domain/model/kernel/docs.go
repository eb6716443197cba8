// Package kernel provides the shared domain primitives of the burger model.
//
// The package includes:
//   - UUID: a value object identifying aggregates such as a Burger
//   - Money: an exact decimal amount used for bun, ingredient and burger prices
//
// Both types are immutable values. Their zero values are either invalid (UUID)
// or a meaningful zero amount (Money).
package kernel
