package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hook-notifier/internal/app"
	"hook-notifier/internal/di"
)

// Version is set at build time via -ldflags.
var Version = "dev"

type commandContext struct {
	configPath string
	verbose    bool
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:   "notifier",
		Short: "Forward agent tool-use hook events to a Discord webhook",
		Long: `notifier reads one hook event as JSON on stdin, summarises it and posts
it to the Discord webhook in DISCORD_WEBHOOK_URL. Without usable stdin it falls
back to HOOK_EVENT, TOOL_NAME and the ACTIVITY_* variables. It always exits 0.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withApp(cmd, func(application *app.App) {
				application.Run(cmd.Context())
			})
		},
	}

	rootCmd.PersistentFlags().StringVarP(&ctx.configPath, "config", "c", "", "Configuration file path (JSON, YAML or TOML)")
	rootCmd.PersistentFlags().BoolVarP(&ctx.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	rootCmd.Version = Version

	rootCmd.AddCommand(newTestCommand(ctx))

	return rootCmd
}

func newTestCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Send a test notification",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withApp(cmd, func(application *app.App) {
				application.Test(cmd.Context())
			})
		},
	}
}

// withApp builds the application for cmd. Setup failures are reported like
// any other outcome and never turn into a command error.
func (c *commandContext) withApp(cmd *cobra.Command, fn func(*app.App)) error {
	application, err := di.InitializeApp(
		di.Options{ConfigPath: c.configPath, Verbose: c.verbose},
		di.Streams{In: cmd.InOrStdin(), Out: cmd.OutOrStdout(), ErrOut: cmd.ErrOrStderr()},
	)
	if err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "❌ Error: %v\n", err)
		return nil
	}
	fn(application)
	return nil
}
