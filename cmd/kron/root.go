package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/termalg/termalg/kronecker"
)

// EnvPrefix is the prefix of the environment variables read by kron,
// e.g. KRON_WIDTH.
const EnvPrefix = "KRON"

// NewRootCmd returns the kron command and its subcommands.
// Every flag can also be set through the environment variable
// KRON_<FLAG>, dashes replaced by underscores.
func NewRootCmd() *cobra.Command {

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:          "kron",
		Short:        "Inspect the Kronecker codec and print packed monomials",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {

			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}

			var level slog.Level
			if err := level.UnmarshalText([]byte(v.GetString("log-level"))); err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}

			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			kronecker.SetLogger(logger)

			width := v.GetInt("width")
			switch width {
			case 8, 16, 32, 64:
			default:
				return fmt.Errorf("invalid width %d: must be 8, 16, 32 or 64", width)
			}

			logger.Debug("configuration", "width", width, "command", cmd.Name())

			return nil
		},
	}

	cmd.PersistentFlags().Int("width", 64, "width in bits of the packed integers (8, 16, 32 or 64)")
	cmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn or error)")

	cmd.AddCommand(
		newLimitsCmd(v),
		newEncodeCmd(v),
		newDecodeCmd(v),
		newPrintCmd(v),
	)

	return cmd
}
