package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/termalg/termalg/kronecker"
	"github.com/termalg/termalg/utils"
)

func newEncodeCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "encode -- <component>...",
		Short: "Print the code of a vector",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch v.GetInt("width") {
			case 8:
				return encode[int8](w, args)
			case 16:
				return encode[int16](w, args)
			case 32:
				return encode[int32](w, args)
			default:
				return encode[int64](w, args)
			}
		},
	}
}

func newDecodeCmd(v *viper.Viper) *cobra.Command {

	cmd := &cobra.Command{
		Use:   "decode -- <code>",
		Short: "Print the vector of a code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			size := v.GetInt("size")
			switch v.GetInt("width") {
			case 8:
				return decode[int8](w, args[0], size)
			case 16:
				return decode[int16](w, args[0], size)
			case 32:
				return decode[int32](w, args[0], size)
			default:
				return decode[int64](w, args[0], size)
			}
		},
	}

	cmd.Flags().Int("size", 1, "size of the decoded vector")

	return cmd
}

// parseVector parses the arguments as integers of type T.
func parseVector[T kronecker.Integer](args []string) (vec []T, err error) {
	vec = make([]T, len(args))
	for i, arg := range args {
		var x int64
		if x, err = strconv.ParseInt(arg, 10, utils.BitWidth[T]()); err != nil {
			return nil, fmt.Errorf("invalid component %q: %w", arg, err)
		}
		vec[i] = T(x)
	}
	return
}

func encode[T kronecker.Integer](w io.Writer, args []string) (err error) {

	vec, err := parseVector[T](args)
	if err != nil {
		return
	}

	n, err := kronecker.Encode(vec)
	if err != nil {
		return
	}

	_, err = fmt.Fprintln(w, n)

	return
}

func decode[T kronecker.Integer](w io.Writer, arg string, size int) (err error) {

	code, err := parseVector[T]([]string{arg})
	if err != nil {
		return
	}

	vec, err := kronecker.Decode(code[0], size)
	if err != nil {
		return
	}

	s := make([]string, len(vec))
	for i := range vec {
		s[i] = strconv.FormatInt(int64(vec[i]), 10)
	}

	_, err = fmt.Fprintln(w, strings.Join(s, " "))

	return
}
