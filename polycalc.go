/*
Package polycalc is a pure Go calculator for single-variable polynomials with integer or real coefficients.
The algebra engine lives in package poly and provides construction, equality, addition, subtraction,
multiplication, exponentiation, composition, evaluation and differentiation over immutable values.
Package calculator parses user-supplied coefficient text and dispatches operations on top of the engine,
and cmd/polycalc exposes it on the command line.
*/
package polycalc
