// Package cli implements the PrimeSpace command line client: the catalog
// views and the admin dashboard of the original web UI, as subcommands.
package cli

import (
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"primespace/internal/client"
	"primespace/internal/model"

	"github.com/spf13/cobra"
)

const defaultServer = "http://localhost:8080"

// NewRootCmd assembles the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "primespace",
		Short:         "PrimeSpace property listings client",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().String("server", serverFromEnv(), "API base URL")
	root.PersistentFlags().String("session", "", "session file (default ~/.primespace/session.json)")

	root.AddCommand(
		HomeCmd(),
		ListCmd(),
		ShowCmd(),
		LoginCmd(),
		RegisterCmd(),
		LogoutCmd(),
		CreateCmd(),
		UpdateCmd(),
		DeleteCmd(),
	)
	return root
}

func serverFromEnv() string {
	if v := os.Getenv("PRIMESPACE_SERVER"); v != "" {
		return v
	}
	return defaultServer
}

func sessionPath(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Flags().GetString("session"); path != "" {
		return path, nil
	}
	return client.DefaultSessionPath()
}

// newClient builds an API client with whatever session is on disk.
func newClient(cmd *cobra.Command) (*client.Client, string, error) {
	path, err := sessionPath(cmd)
	if err != nil {
		return nil, "", err
	}
	session, err := client.LoadSession(path)
	if err != nil {
		return nil, "", err
	}
	server, _ := cmd.Flags().GetString("server")
	return client.New(server, session), path, nil
}

func printListing(cmd *cobra.Command, properties []model.Property) {
	if len(properties) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No properties found.")
		return
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tLOCATION\tTYPE\tSTATUS\tPRICE")
	for _, p := range properties {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\n", p.ID, p.Title, p.Location, p.Type, p.Status, p.Price)
	}
	w.Flush()
}

func printProperty(cmd *cobra.Command, p *model.Property) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "#%d %s (%s)\n", p.ID, p.Title, p.Status)
	fmt.Fprintf(out, "Location:  %s\n", p.Location)
	fmt.Fprintf(out, "Price:     %d\n", p.Price)
	fmt.Fprintf(out, "Type:      %s\n", p.Type)
	fmt.Fprintf(out, "Bedrooms:  %d  Bathrooms: %d  Area: %d sq.ft\n", p.Bedrooms, p.Bathrooms, p.Area)
	fmt.Fprintf(out, "Image:     %s\n", p.Image)
	fmt.Fprintln(out)
	fmt.Fprintln(out, p.Description)
}

// listOrEmpty renders a catalog fetch, degrading to an empty listing when
// the request fails.
func listOrEmpty(cmd *cobra.Command, properties []model.Property, err error) {
	if err != nil {
		log.Printf("fetch properties: %v", err)
		properties = nil
	}
	printListing(cmd, properties)
}
