// Package color holds the pure color conversions behind the gradient pipeline:
// HEX, RGB and HSL interconversion, rgba formatting, saturation shifts, WCAG
// contrast ratios and random color generation.
//
// Functions in this package never fail loudly. Malformed input produces
// malformed output (NaN components, "#"-prefixed garbage) rather than a panic;
// callers that take user input validate it first with ParseHex.
package color
