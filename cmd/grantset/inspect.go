package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	inspectApplication string
	inspectGrantsFile  string
)

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <descriptor.yaml>",
	Short: "List the applications, privileges and resource patterns a descriptor grants",
	Example: `  grantset inspect analyst.yaml
  grantset inspect analyst.yaml --application myapp`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runInspect(args[0])
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVar(&inspectApplication, "application", "", "Restrict output to one application (exact name)")
	inspectCmd.Flags().StringVar(&inspectGrantsFile, "grants", "", "Extra grants file layered on top of the descriptor")
}

func runInspect(descriptorPath string) error {
	auth, err := loadAuthorizer(descriptorPath, inspectGrantsFile)
	if err != nil {
		return err
	}
	set := auth.Set()

	applications := set.ApplicationNames()
	if inspectApplication != "" {
		applications = []string{inspectApplication}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	if _, err := fmt.Fprintln(w, "APPLICATION\tACTIONS\tRESOURCES"); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	rows := 0
	for _, app := range applications {
		for _, p := range set.PrivilegesFor(app) {
			actions := strings.Join(p.Actions(), ", ")
			if actions == "" {
				actions = "(none)"
			}
			patterns := strings.Join(set.ResourcePatternsFor(p), ", ")
			if patterns == "" {
				patterns = "(none)"
			}
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", app, actions, patterns); err != nil {
				return fmt.Errorf("failed to write row: %w", err)
			}
			rows++
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	if rows == 0 {
		fmt.Println("No privileges found.")
	}
	return nil
}
