package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/termalg/termalg/kronecker"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestKron(t *testing.T) {

	t.Run("Limits", func(t *testing.T) {
		out, err := run(t, "limits", "--width", "8")
		require.NoError(t, err)
		require.Len(t, strings.Split(strings.TrimSpace(out), "\n"), kronecker.GetLimits[int8]().MaxSize())

		out, err = run(t, "limits", "--width", "16", "--dim", "2", "--stats")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(out, "2\t"))
		require.Contains(t, out, "mean=")
		require.Contains(t, out, "median=")

		_, err = run(t, "limits", "--width", "8", "--dim", "5")
		require.Error(t, err)

		_, err = run(t, "limits", "--width", "12")
		require.Error(t, err)
	})

	t.Run("Limits/Env", func(t *testing.T) {
		t.Setenv("KRON_WIDTH", "8")
		out, err := run(t, "limits")
		require.NoError(t, err)
		require.Len(t, strings.Split(strings.TrimSpace(out), "\n"), kronecker.GetLimits[int8]().MaxSize())
	})

	t.Run("EncodeDecode", func(t *testing.T) {
		code, err := run(t, "encode", "--width", "32", "--", "3", "-1", "2")
		require.NoError(t, err)

		out, err := run(t, "decode", "--width", "32", "--size", "3", "--", strings.TrimSpace(code))
		require.NoError(t, err)
		require.Equal(t, "3 -1 2\n", out)

		_, err = run(t, "encode", "--width", "8", "--", "100", "0")
		require.Error(t, err)

		_, err = run(t, "encode", "--", "x")
		require.Error(t, err)
	})

	t.Run("Print", func(t *testing.T) {
		out, err := run(t, "print", "--symbols", "x,y", "--", "-1", "-2")
		require.NoError(t, err)
		require.Equal(t, "x**-1*y**-2\n", out)

		out, err = run(t, "print", "--symbols", "x,y", "--tex", "--", "-2", "3")
		require.NoError(t, err)
		require.Equal(t, "\\frac{{y}^{3}}{{x}^{2}}\n", out)

		out, err = run(t, "print", "--symbols", "x,y", "--trig", "--", "1", "-1")
		require.NoError(t, err)
		require.Equal(t, "cos(x-y)\n", out)

		out, err = run(t, "print", "--symbols", "x,y", "--trig", "--flavour", "sin", "--tex", "--", "1", "2")
		require.NoError(t, err)
		require.Equal(t, "\\sin{\\left({x}+2{y}\\right)}\n", out)

		code, err := run(t, "encode", "--width", "16", "--", "2", "0", "-1")
		require.NoError(t, err)

		out, err = run(t, "print", "--width", "16", "--symbols", "a,b,c", "--code", "--", strings.TrimSpace(code))
		require.NoError(t, err)
		require.Equal(t, "a**2*c**-1\n", out)

		_, err = run(t, "print", "--symbols", "y,x", "--", "1", "1")
		require.Error(t, err)

		_, err = run(t, "print", "--symbols", "x", "--trig", "--flavour", "tan", "--", "1")
		require.Error(t, err)

		_, err = run(t, "print", "--symbols", "x", "--", "1", "1")
		require.Error(t, err)
	})

	t.Run("LogLevel", func(t *testing.T) {
		_, err := run(t, "limits", "--log-level", "loud")
		require.Error(t, err)
		kronecker.SetLogger(nil)
	})
}
