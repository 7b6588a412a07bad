package main

import (
	"fmt"
	"io"

	"github.com/montanaflynn/stats"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/termalg/termalg/kronecker"
)

func newLimitsCmd(v *viper.Viper) *cobra.Command {

	cmd := &cobra.Command{
		Use:   "limits",
		Short: "Print the codec bounds of every dimension",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {

			w := cmd.OutOrStdout()
			dim := v.GetInt("dim")
			withStats := v.GetBool("stats")

			switch v.GetInt("width") {
			case 8:
				return printLimits[int8](w, dim, withStats)
			case 16:
				return printLimits[int16](w, dim, withStats)
			case 32:
				return printLimits[int32](w, dim, withStats)
			default:
				return printLimits[int64](w, dim, withStats)
			}
		},
	}

	cmd.Flags().Int("dim", -1, "only print the given dimension")
	cmd.Flags().Bool("stats", false, "print the mean and median of the bounds")

	return cmd
}

func printLimits[T kronecker.Integer](w io.Writer, dim int, withStats bool) (err error) {

	l := kronecker.GetLimits[T]()

	first, last := 1, l.MaxSize()

	if dim >= 0 {
		if _, ok := l.Get(dim); !ok {
			return fmt.Errorf("invalid dimension %d: the maximum size is %d", dim, l.MaxSize())
		}
		first, last = dim, dim
	}

	for n := first; n <= last; n++ {

		e, _ := l.Get(n)

		if _, err = fmt.Fprintf(w, "%d\thmax=%d\tbounds=%v", n, e.HMax, e.Bounds); err != nil {
			return
		}

		if withStats && n > 0 {

			data := make(stats.Float64Data, n)
			for i, h := range e.Bounds {
				data[i] = float64(h)
			}

			var mean, median float64

			if mean, err = data.Mean(); err != nil {
				return
			}

			if median, err = data.Median(); err != nil {
				return
			}

			if _, err = fmt.Fprintf(w, "\tmean=%.2f\tmedian=%.2f", mean, median); err != nil {
				return
			}
		}

		if _, err = fmt.Fprintln(w); err != nil {
			return
		}
	}

	return
}
