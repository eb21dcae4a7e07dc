package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/gavel/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print the application version",
		Annotations: map[string]string{"skipConfig": "true"},
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "gavel version %s\n", build.Version)
		},
	}
}
