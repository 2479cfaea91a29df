package cli

import (
	"fmt"
	"strconv"

	"primespace/internal/client"

	"github.com/spf13/cobra"
)

// HomeCmd shows the first few available listings.
func HomeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Show featured available properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := newClient(cmd)
			if err != nil {
				return err
			}
			properties, err := c.FeaturedProperties(cmd.Context())
			listOrEmpty(cmd, properties, err)
			return nil
		},
	}
}

// ListCmd shows the catalog with optional filters.
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := newClient(cmd)
			if err != nil {
				return err
			}
			filter := client.ListFilter{}
			filter.Type, _ = cmd.Flags().GetString("type")
			filter.Status, _ = cmd.Flags().GetString("status")
			filter.Location, _ = cmd.Flags().GetString("location")

			properties, err := c.ListProperties(cmd.Context(), filter)
			listOrEmpty(cmd, properties, err)
			return nil
		},
	}
	cmd.Flags().String("type", "", "filter by type (Sale or Rent)")
	cmd.Flags().String("status", "", "filter by status (Available, Sold or Rented)")
	cmd.Flags().String("location", "", "filter by location substring")
	return cmd
}

// ShowCmd prints one listing in full.
func ShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single property",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid property id %q", args[0])
			}
			c, _, err := newClient(cmd)
			if err != nil {
				return err
			}
			property, err := c.GetProperty(cmd.Context(), id)
			if err != nil {
				return err
			}
			printProperty(cmd, property)
			return nil
		},
	}
}
