/*
Package termalg implements the symbolic terms of a computer-algebra engine:
algebraic monomials (exponent vectors) and trigonometric monomials (integer
multipliers of cos/sin phases), both stored as a single machine integer through
a bounds-checked Kronecker encoding.

The sub-packages are organised as follows:

  - kronecker: the process-wide limits table and the encode/decode codec.
  - monomial: algebraic monomials.
  - trig: trigonometric monomials with a cosine/sine flavour.
  - symbols: ordered symbol sets and the index/insertion maps passed to monomial operations.
  - coefficient: the coefficient fields used for substitution and term multiplication.

A monomial never stores its own dimension: every operation receives the symbol
set the monomial lives in, and the caller is responsible for always using the
same symbol set for the same monomial.
*/
package termalg
