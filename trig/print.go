package trig

import (
	"fmt"
	"io"
	"strings"

	"github.com/termalg/termalg/kronecker"
	"github.com/termalg/termalg/symbols"
)

// Print writes the monomial on w in the form cos(-2*x+y).
// cos(0) is written as an empty string and sin(0) as 0.
func (m Monomial[T]) Print(w io.Writer, ss symbols.Set) (err error) {

	v, err := m.Unpack(ss)
	if err != nil {
		return fmt.Errorf("cannot Print: %w", err)
	}

	switch {
	case m.IsUnitary():
		return
	case m.IsZero():
		_, err = io.WriteString(w, "0")
		return
	}

	_, err = fmt.Fprintf(w, "%s(%s)", m.function(), linearCombination(v, ss, "%s", "%d*%s"))

	return
}

// String returns the output of Print.
func (m Monomial[T]) String(ss symbols.Set) (string, error) {
	var sb strings.Builder
	err := m.Print(&sb, ss)
	return sb.String(), err
}

// PrintTex writes the TeX representation of the monomial on w, e.g.
// \cos{\left({x}-{y}\right)}.
func (m Monomial[T]) PrintTex(w io.Writer, ss symbols.Set) (err error) {

	v, err := m.Unpack(ss)
	if err != nil {
		return fmt.Errorf("cannot PrintTex: %w", err)
	}

	switch {
	case m.IsUnitary():
		return
	case m.IsZero():
		_, err = io.WriteString(w, "0")
		return
	}

	_, err = fmt.Fprintf(w, "\\%s{\\left(%s\\right)}", m.function(), linearCombination(v, ss, "{%s}", "%d{%s}"))

	return
}

// Tex returns the output of PrintTex.
func (m Monomial[T]) Tex(ss symbols.Set) (string, error) {
	var sb strings.Builder
	err := m.PrintTex(&sb, ss)
	return sb.String(), err
}

func (m Monomial[T]) function() string {
	if m.sine {
		return "sin"
	}
	return "cos"
}

// linearCombination formats sum_i v_i*x_i, skipping zero multipliers.
// unit formats a symbol whose multiplier has a magnitude of one and scaled
// formats a multiplier and a symbol.
func linearCombination[T kronecker.Integer](v []T, ss symbols.Set, unit, scaled string) string {

	var sb strings.Builder

	for i, n := range v {

		switch {
		case n == 0:
			continue
		case n < 0:
			sb.WriteByte('-')
			n = -n
		case sb.Len() != 0:
			sb.WriteByte('+')
		}

		if n == 1 {
			fmt.Fprintf(&sb, unit, ss.Name(i))
		} else {
			fmt.Fprintf(&sb, scaled, n, ss.Name(i))
		}
	}

	return sb.String()
}
