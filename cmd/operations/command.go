package operations

import (
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"go.miloapis.com/mailchimp/internal/openapi"
	"go.miloapis.com/mailchimp/pkg/mailchimp"
)

type operation struct {
	Group  string `json:"group"`
	Name   string `json:"name"`
	Doc    string `json:"doc"`
	Method string `json:"method"`
	Path   string `json:"path"`
	Params string `json:"params"`
	Result string `json:"result"`
}

// NewOperationsCommand creates the operations subcommand, which lists the
// registered operations.
func NewOperationsCommand() *cobra.Command {
	var (
		output string
		groups []string
	)

	cmd := &cobra.Command{
		Use:   "operations",
		Short: "List the registered API operations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOperations(cmd, mailchimp.DefaultRegistry(), output, groups)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text, json, openapi)")
	cmd.Flags().StringSliceVarP(&groups, "group", "g", nil, "Only list operations of these groups")

	return cmd
}

func runOperations(cmd *cobra.Command, reg *mailchimp.Registry, output string, groups []string) error {
	out := cmd.OutOrStdout()

	if output == "openapi" {
		doc, err := openapi.Build(cmd.Context(), reg, openapi.Options{Groups: groups})
		if err != nil {
			return fmt.Errorf("failed to build openapi document: %w", err)
		}
		data, err := openapi.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal openapi document: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	known := reg.Groups()
	if len(groups) == 0 {
		groups = known
	}
	var ops []operation
	for _, group := range groups {
		if !slices.Contains(known, group) {
			return fmt.Errorf("unknown group %q", group)
		}
		for _, d := range reg.GroupOperations(group) {
			ops = append(ops, operation{
				Group:  d.Group,
				Name:   d.Name,
				Doc:    d.Doc,
				Method: d.Method,
				Path:   d.Path,
				Params: d.Params.String(),
				Result: d.Result.String(),
			})
		}
	}

	switch output {
	case "json":
		data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(ops, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal operations: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	case "text":
		return printTable(out, ops)
	default:
		return fmt.Errorf("unsupported output format: %s", output)
	}
}

func printTable(out io.Writer, ops []operation) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "GROUP\tOPERATION\tMETHOD\tPATH\tDOC")
	for _, op := range ops {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", op.Group, op.Name, op.Method, op.Path, op.Doc)
	}
	return w.Flush()
}
