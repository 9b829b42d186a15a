package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/grantset-dev/grantset/internal/application/services"
	"github.com/grantset-dev/grantset/internal/output"
)

var (
	checkApplication string
	checkActions     []string
	checkResource    string
	requestsFile     string
	grantsFile       string
	filterExpr       string
	format           string
	outFile          string
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <descriptor.yaml>",
	Short: "Check whether a descriptor authorizes requested capabilities",
	Long: `Load a permission descriptor and evaluate authorization requests
against it.

A single request is given with --application, --action and --resource.
A batch of requests is given with --requests pointing at a YAML file:

  requests:
    - application: myapp
      actions: ["data:read"]
      resource: object/1

Filtering:
  --filter "!granted"                      Show denied decisions only
  --filter "application == 'myapp'"        Show one application's decisions`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkApplication, "application", "", "Application namespace of the requested privilege")
	checkCmd.Flags().StringSliceVar(&checkActions, "action", nil, "Requested action patterns (comma-separated or repeated)")
	checkCmd.Flags().StringVar(&checkResource, "resource", "", "Resource the privilege is requested on")
	checkCmd.Flags().StringVar(&requestsFile, "requests", "", "YAML file with a batch of authorization requests")
	checkCmd.Flags().StringVar(&grantsFile, "grants", "", "Extra grants file layered on top of the descriptor")
	checkCmd.Flags().StringVar(&filterExpr, "filter", "", "Decision filter expression (e.g. \"!granted\")")
	checkCmd.Flags().StringVar(&format, "format", "table", "Output format: table, json, yaml")
	checkCmd.Flags().StringVarP(&outFile, "output", "o", "", "Output file path (default: stdout)")
}

func runCheck(ctx context.Context, descriptorPath string) error {
	auth, err := loadAuthorizer(descriptorPath, grantsFile)
	if err != nil {
		return err
	}

	reqs, err := collectRequests()
	if err != nil {
		return err
	}

	decisions, err := auth.CheckAll(ctx, reqs)
	if err != nil {
		return err
	}

	if filterExpr != "" {
		program, err := services.CompileDecisionFilter(filterExpr)
		if err != nil {
			return err
		}
		decisions, err = services.FilterDecisions(decisions, program)
		if err != nil {
			return err
		}
	}

	w, closeOutput, err := openOutput(outFile)
	if err != nil {
		return err
	}
	defer closeOutput() //nolint:errcheck // best-effort close on the error path

	formatter, err := newFormatter(format, w)
	if err != nil {
		return err
	}
	return formatter.Format(output.NewReport(descriptorPath, decisions))
}

// requestsDocument is the YAML structure of a batch requests file.
type requestsDocument struct {
	Requests []services.Request `yaml:"requests"`
}

// collectRequests merges the single-request flags and the batch file.
func collectRequests() ([]services.Request, error) {
	var reqs []services.Request

	if checkApplication != "" || checkResource != "" {
		if checkApplication == "" || checkResource == "" {
			return nil, fmt.Errorf("--application and --resource must be given together")
		}
		reqs = append(reqs, services.Request{
			Application: checkApplication,
			Actions:     checkActions,
			Resource:    checkResource,
		})
	}

	if requestsFile != "" {
		data, err := os.ReadFile(requestsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read requests file: %w", err)
		}
		var doc requestsDocument
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to parse requests file: %w", err)
		}
		reqs = append(reqs, doc.Requests...)
	}

	if len(reqs) == 0 {
		return nil, fmt.Errorf("no requests given: use --application/--resource or --requests")
	}
	return reqs, nil
}
