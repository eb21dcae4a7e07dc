package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// identityEnv names the environment variable providing the default publisher identity.
const identityEnv = "GAVEL_IDENTITY"

func (c *CLI) newPublishCmd() *cobra.Command {
	var identity string

	cmd := &cobra.Command{
		Use:   "publish <groupId> <artifactId> <version>...",
		Short: "Publish one or more versions of an artifact",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			groupID, artifactID, versions := args[0], args[1], args[2:]
			if err := c.app.Publish(cmd.Context(), c.repository, identity, groupID, artifactID, versions); err != nil {
				return err
			}
			for _, v := range versions {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "published %s:%s:%s\n", groupID, artifactID, v)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&identity, "identity", "i", os.Getenv(identityEnv), "Identity the publish is authorized as")
	return cmd
}
