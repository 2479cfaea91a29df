package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"primespace/internal/api"

	"github.com/spf13/cobra"
)

// CreateCmd adds a listing; requires an admin session.
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a property listing (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := api.CreatePropertyRequest{}
			req.Title, _ = cmd.Flags().GetString("title")
			req.Location, _ = cmd.Flags().GetString("location")
			req.Description, _ = cmd.Flags().GetString("description")
			req.Type, _ = cmd.Flags().GetString("type")
			req.Status, _ = cmd.Flags().GetString("status")
			req.Image, _ = cmd.Flags().GetString("image")

			price, _ := cmd.Flags().GetInt64("price")
			req.Price = &price
			area, _ := cmd.Flags().GetInt("area")
			req.Area = &area
			if cmd.Flags().Changed("bedrooms") {
				bedrooms, _ := cmd.Flags().GetInt("bedrooms")
				req.Bedrooms = &bedrooms
			}
			if cmd.Flags().Changed("bathrooms") {
				bathrooms, _ := cmd.Flags().GetInt("bathrooms")
				req.Bathrooms = &bathrooms
			}

			c, _, err := newClient(cmd)
			if err != nil {
				return err
			}
			property, err := c.CreateProperty(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created property #%d\n", property.ID)
			return nil
		},
	}
	cmd.Flags().String("title", "", "listing title")
	cmd.Flags().String("location", "", "listing location")
	cmd.Flags().Int64("price", 0, "price")
	cmd.Flags().String("description", "", "description")
	cmd.Flags().String("type", "", "Sale or Rent")
	cmd.Flags().String("status", "", "Available, Sold or Rented (default Available)")
	cmd.Flags().Int("bedrooms", 0, "bedroom count (default 2)")
	cmd.Flags().Int("bathrooms", 0, "bathroom count (default 1)")
	cmd.Flags().Int("area", 0, "area in sq.ft")
	cmd.Flags().String("image", "", "image URL")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("location")
	cmd.MarkFlagRequired("price")
	cmd.MarkFlagRequired("description")
	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("area")
	return cmd
}

// UpdateCmd merges the provided flags into an existing listing; only flags
// that were set are sent.
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a property listing (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid property id %q", args[0])
			}

			req := api.UpdatePropertyRequest{}
			if cmd.Flags().Changed("title") {
				v, _ := cmd.Flags().GetString("title")
				req.Title = &v
			}
			if cmd.Flags().Changed("location") {
				v, _ := cmd.Flags().GetString("location")
				req.Location = &v
			}
			if cmd.Flags().Changed("price") {
				v, _ := cmd.Flags().GetInt64("price")
				req.Price = &v
			}
			if cmd.Flags().Changed("description") {
				v, _ := cmd.Flags().GetString("description")
				req.Description = &v
			}
			if cmd.Flags().Changed("type") {
				v, _ := cmd.Flags().GetString("type")
				req.Type = &v
			}
			if cmd.Flags().Changed("status") {
				v, _ := cmd.Flags().GetString("status")
				req.Status = &v
			}
			if cmd.Flags().Changed("bedrooms") {
				v, _ := cmd.Flags().GetInt("bedrooms")
				req.Bedrooms = &v
			}
			if cmd.Flags().Changed("bathrooms") {
				v, _ := cmd.Flags().GetInt("bathrooms")
				req.Bathrooms = &v
			}
			if cmd.Flags().Changed("area") {
				v, _ := cmd.Flags().GetInt("area")
				req.Area = &v
			}
			if cmd.Flags().Changed("image") {
				v, _ := cmd.Flags().GetString("image")
				req.Image = &v
			}

			c, _, err := newClient(cmd)
			if err != nil {
				return err
			}
			property, err := c.UpdateProperty(cmd.Context(), id, req)
			if err != nil {
				return err
			}
			printProperty(cmd, property)
			return nil
		},
	}
	cmd.Flags().String("title", "", "listing title")
	cmd.Flags().String("location", "", "listing location")
	cmd.Flags().Int64("price", 0, "price")
	cmd.Flags().String("description", "", "description")
	cmd.Flags().String("type", "", "Sale or Rent")
	cmd.Flags().String("status", "", "Available, Sold or Rented")
	cmd.Flags().Int("bedrooms", 0, "bedroom count")
	cmd.Flags().Int("bathrooms", 0, "bathroom count")
	cmd.Flags().Int("area", 0, "area in sq.ft")
	cmd.Flags().String("image", "", "image URL")
	return cmd
}

// DeleteCmd permanently removes a listing after a confirmation prompt.
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a property listing (admin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid property id %q", args[0])
			}

			if yes, _ := cmd.Flags().GetBool("yes"); !yes {
				fmt.Fprintf(cmd.OutOrStdout(), "Delete property #%d? [y/N]: ", id)
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
			}

			c, _, err := newClient(cmd)
			if err != nil {
				return err
			}
			message, err := c.DeleteProperty(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}
	cmd.Flags().Bool("yes", false, "skip the confirmation prompt")
	return cmd
}
