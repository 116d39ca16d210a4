package call

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	logf "sigs.k8s.io/controller-runtime/pkg/log"

	"go.miloapis.com/mailchimp/internal/config"
	"go.miloapis.com/mailchimp/internal/telemetry"
	"go.miloapis.com/mailchimp/pkg/mailchimp"
)

// NewCallCommand creates the call subcommand, which invokes one operation
// and prints its result.
func NewCallCommand() *cobra.Command {
	var (
		params     string
		paramsFile string
		query      string
	)

	cmd := &cobra.Command{
		Use:   "call <group> <operation>",
		Short: "Invoke an API operation",
		Long: `Invoke an API operation and print the result as JSON.

Params are a JSON object given inline with --params or read from a file with
--params-file ("-" reads stdin). --query selects part of the result with a
gjson path, e.g. "data.#.id".`,
		Example: `  mailchimp call helper ping
  mailchimp call lists subscribe --params '{"id":"a6b5da1054","email":{"email":"jane@example.com"}}'
  mailchimp call campaigns list --query 'data.#.title'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if params != "" && paramsFile != "" {
				return fmt.Errorf("--params and --params-file are mutually exclusive")
			}

			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}

			log := logf.Log.WithName("mailchimp")
			shutdown, err := telemetry.Setup(cmd.Context(), "mailchimp")
			if err != nil {
				return fmt.Errorf("failed to setup telemetry: %w", err)
			}
			defer shutdown.Flush(log)

			client, err := cfg.NewClient(mailchimp.WithLogger(log))
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			body, err := readParams(cmd.InOrStdin(), params, paramsFile)
			if err != nil {
				return err
			}

			var p any
			if len(body) > 0 {
				if err := mailchimp.NewJSONCodec().Decode(body, &p); err != nil {
					return fmt.Errorf("failed to parse params: %w", err)
				}
			}

			res, err := client.Call(cmd.Context(), args[0], args[1], p)
			if err != nil {
				return err
			}
			return printResult(cmd.OutOrStdout(), res, query)
		},
	}

	config.BindFlags(cmd.Flags())
	cmd.Flags().StringVarP(&params, "params", "p", "", "Params as a JSON object")
	cmd.Flags().StringVarP(&paramsFile, "params-file", "f", "", "File holding the params as a JSON object, - for stdin")
	cmd.Flags().StringVarP(&query, "query", "q", "", "gjson path selecting part of the result")

	return cmd
}

func readParams(stdin io.Reader, inline, file string) ([]byte, error) {
	switch {
	case inline != "":
		return []byte(inline), nil
	case file == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read params from stdin: %w", err)
		}
		return data, nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read params file: %w", err)
		}
		return data, nil
	default:
		return nil, nil
	}
}

func printResult(out io.Writer, res *mailchimp.Result, query string) error {
	if query != "" {
		v := res.Get(query)
		if !v.Exists() {
			return fmt.Errorf("query %q matched nothing", query)
		}
		if v.IsObject() || v.IsArray() {
			_, err := fmt.Fprint(out, v.Get("@pretty").String())
			return err
		}
		_, err := fmt.Fprintln(out, v.String())
		return err
	}
	_, err := fmt.Fprint(out, res.Get("@pretty").String())
	return err
}
