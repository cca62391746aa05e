// Package textutil holds small string helpers: integer-literal detection,
// Roman numerals, and numbered menu formatting.
package textutil
