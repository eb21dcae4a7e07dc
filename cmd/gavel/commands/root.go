// Package commands implements the CLI commands for gavel.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/gavel/internal/adapters/config"
	"go.trai.ch/gavel/internal/app"
	"go.trai.ch/gavel/internal/build"
)

// CLI represents the command line interface for gavel.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command

	configPath string
	repository string
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "gavel",
		Short:         "Maintain the version index of an artifact repository",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Annotations["skipConfig"] == "true" {
				return nil
			}
			return c.app.Configure(cmd.Context(), c.configPath)
		},
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", config.DefaultFilename, "Path to the configuration file")
	rootCmd.PersistentFlags().StringVarP(&c.repository, "repository", "r", "releases", "Repository to operate on")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newPublishCmd())
	rootCmd.AddCommand(c.newVersionsCmd())
	rootCmd.AddCommand(c.newLatestCmd())
	rootCmd.AddCommand(c.newMetadataCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
