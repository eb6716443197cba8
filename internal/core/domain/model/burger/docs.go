// Package burger contains the Burger aggregate root.
//
// A Burger holds one bun, used for both the top and the bottom, and an ordered
// sequence of ingredients. Its price and receipt are computed from the current
// state on every call; nothing derived is cached.
//
// Operations that receive a position (RemoveIngredient, MoveIngredient) validate
// it against the current number of ingredients and fail with an
// *errs.ValueIsOutOfRangeError without modifying the burger. Price and Receipt
// require a bun and fail with ErrBunIsNotSet otherwise.
//
// Receipt layout:
//
//	(==== black bun ====)
//	= sauce hot sauce =
//	= filling cutlet =
//	(==== black bun ====)
//
//	Price: 400.00
package burger
