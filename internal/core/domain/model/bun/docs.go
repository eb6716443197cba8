// Package bun provides the Bun value object: the top and bottom bread of a burger.
// A burger uses the same bun twice, so its price counts twice in the burger total.
package bun
