package monomial

import (
	"fmt"
	"io"
	"strings"

	"github.com/termalg/termalg/symbols"
)

// Print writes the monomial on w in the form x**2*y**-1.
// Symbols with a zero exponent are skipped and an exponent of 1 is omitted.
func (m Monomial[T]) Print(w io.Writer, ss symbols.Set) (err error) {

	v, err := m.Unpack(ss)
	if err != nil {
		return fmt.Errorf("cannot Print: %w", err)
	}

	sep := ""
	for i, e := range v {

		if e == 0 {
			continue
		}

		if _, err = fmt.Fprint(w, sep, ss.Name(i)); err != nil {
			return
		}

		if e != 1 {
			if _, err = fmt.Fprintf(w, "**%d", e); err != nil {
				return
			}
		}

		sep = "*"
	}

	return
}

// String returns the output of Print.
func (m Monomial[T]) String(ss symbols.Set) (string, error) {
	var sb strings.Builder
	err := m.Print(&sb, ss)
	return sb.String(), err
}

// PrintTex writes the TeX representation of the monomial on w.
// Negative exponents are written as the denominator of a \frac, e.g.
// \frac{{y}^{3}}{{x}^{2}}.
func (m Monomial[T]) PrintTex(w io.Writer, ss symbols.Set) (err error) {

	v, err := m.Unpack(ss)
	if err != nil {
		return fmt.Errorf("cannot PrintTex: %w", err)
	}

	var num, den strings.Builder

	for i, e := range v {

		sb := &num
		if e < 0 {
			sb = &den
			e = -e
		}

		switch e {
		case 0:
		case 1:
			fmt.Fprintf(sb, "{%s}", ss.Name(i))
		default:
			fmt.Fprintf(sb, "{%s}^{%d}", ss.Name(i), e)
		}
	}

	switch {
	case den.Len() == 0:
		_, err = io.WriteString(w, num.String())
	case num.Len() == 0:
		_, err = fmt.Fprintf(w, "\\frac{1}{%s}", den.String())
	default:
		_, err = fmt.Fprintf(w, "\\frac{%s}{%s}", num.String(), den.String())
	}

	return
}

// Tex returns the output of PrintTex.
func (m Monomial[T]) Tex(ss symbols.Set) (string, error) {
	var sb strings.Builder
	err := m.PrintTex(&sb, ss)
	return sb.String(), err
}
