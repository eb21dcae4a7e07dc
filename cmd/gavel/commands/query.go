package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newVersionsCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "versions <groupId:artifactId[:version] | path>",
		Short: "List the indexed versions in ascending order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := c.app.Versions(cmd.Context(), c.repository, args[0], filter)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if list.Snapshot {
				_, _ = fmt.Fprintln(out, "# snapshot builds")
			}
			for _, v := range list.Versions {
				_, _ = fmt.Fprintln(out, v)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Only list versions starting with this prefix")
	return cmd
}

func (c *CLI) newLatestCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "latest <groupId:artifactId[:version] | path>",
		Short: "Print the last indexed version in ascending order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			latest, err := c.app.Latest(cmd.Context(), c.repository, args[0], filter)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if latest.Snapshot {
				_, _ = fmt.Fprintln(out, "# snapshot build")
			}
			_, _ = fmt.Fprintln(out, latest.Version)
			return nil
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Only consider versions starting with this prefix")
	return cmd
}

func (c *CLI) newMetadataCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "metadata <groupId:artifactId[:version] | path>",
		Short: "Print the index document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.app.Metadata(cmd.Context(), c.repository, args[0])
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(doc)
			return err
		},
	}
}
