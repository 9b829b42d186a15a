package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grantset-dev/grantset/internal/config"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <descriptor.yaml>",
	Short: "Validate a permission descriptor without evaluating anything",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		descriptor, err := config.LoadDescriptor(args[0])
		if err != nil {
			return err
		}
		if _, err := descriptor.Grants(); err != nil {
			return err
		}
		fmt.Printf("%s is valid (%d application grants)\n", args[0], len(descriptor.Applications))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
