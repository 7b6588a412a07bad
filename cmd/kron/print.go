package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/termalg/termalg/kronecker"
	"github.com/termalg/termalg/monomial"
	"github.com/termalg/termalg/symbols"
	"github.com/termalg/termalg/trig"
	"github.com/termalg/termalg/utils"
)

type printConfig struct {
	ss       symbols.Set
	trig     bool
	cos      bool
	tex      bool
	fromCode bool
}

func newPrintCmd(v *viper.Viper) *cobra.Command {

	cmd := &cobra.Command{
		Use:   "print -- <exponent>... | <code>",
		Short: "Print a monomial given its exponents or, with --code, its code",
		RunE: func(cmd *cobra.Command, args []string) error {

			names := v.GetStringSlice("symbols")

			if !utils.IsSortedDistinct(names) {
				return fmt.Errorf("invalid symbols %v: the symbols must be sorted and distinct", names)
			}

			cfg := printConfig{
				ss:       symbols.NewSet(names...),
				trig:     v.GetBool("trig"),
				tex:      v.GetBool("tex"),
				fromCode: v.GetBool("code"),
			}

			switch flavour := v.GetString("flavour"); flavour {
			case "cos":
				cfg.cos = true
			case "sin":
			default:
				return fmt.Errorf("invalid flavour %q: must be cos or sin", flavour)
			}

			w := cmd.OutOrStdout()

			switch v.GetInt("width") {
			case 8:
				return printMonomial[int8](w, args, cfg)
			case 16:
				return printMonomial[int16](w, args, cfg)
			case 32:
				return printMonomial[int32](w, args, cfg)
			default:
				return printMonomial[int64](w, args, cfg)
			}
		},
	}

	cmd.Flags().StringSlice("symbols", nil, "sorted comma-separated list of symbols")
	cmd.Flags().Bool("trig", false, "print a trigonometric monomial")
	cmd.Flags().String("flavour", "cos", "flavour of the trigonometric monomial (cos or sin)")
	cmd.Flags().Bool("tex", false, "print in TeX")
	cmd.Flags().Bool("code", false, "the argument is the code of the monomial")

	return cmd
}

// printer is implemented by monomial.Monomial and trig.Monomial.
type printer interface {
	Print(w io.Writer, ss symbols.Set) error
	PrintTex(w io.Writer, ss symbols.Set) error
}

func printMonomial[T kronecker.Integer](w io.Writer, args []string, cfg printConfig) (err error) {

	vec, err := parseVector[T](args)
	if err != nil {
		return
	}

	if cfg.fromCode {
		if len(vec) != 1 {
			return fmt.Errorf("expected a single code but got %d arguments", len(vec))
		}
		if vec, err = kronecker.Decode(vec[0], cfg.ss.Len()); err != nil {
			return
		}
	}

	var m printer

	if cfg.trig {
		if m, err = trig.New(vec, cfg.cos, cfg.ss); err != nil {
			return
		}
	} else {
		if m, err = monomial.New(vec, cfg.ss); err != nil {
			return
		}
	}

	if cfg.tex {
		err = m.PrintTex(w, cfg.ss)
	} else {
		err = m.Print(w, cfg.ss)
	}

	if err != nil {
		return
	}

	_, err = fmt.Fprintln(w)

	return
}
