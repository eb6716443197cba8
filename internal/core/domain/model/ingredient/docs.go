// Package ingredient provides the Ingredient value object: a sauce or a filling
// placed between the buns of a burger.
//
// The package includes:
//   - Type: a closed enumeration with exactly two valid categories, Sauce and Filling
//   - Ingredient: an immutable value holding a type, a name and a price
//
// Ingredients are created by catalog code outside the domain and are shared by
// reference between burgers; nothing in this package mutates them.
package ingredient
