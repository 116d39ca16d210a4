package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	logf "sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	"sigs.k8s.io/controller-runtime/pkg/manager/signals"

	"go.miloapis.com/mailchimp/cmd/call"
	"go.miloapis.com/mailchimp/cmd/operations"
	version "go.miloapis.com/mailchimp/cmd/version"
	"go.miloapis.com/mailchimp/cmd/webhook"
)

func main() {
	opts := zap.Options{
		Development: true,
	}
	zapFlags := flag.NewFlagSet("zap", flag.ExitOnError)
	opts.BindFlags(zapFlags)

	rootCmd := &cobra.Command{
		Use:   "mailchimp",
		Short: "Mailchimp v2.0 API client",
		Long:  "Invoke Mailchimp v2.0 API operations from the command line and receive list webhooks.",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			zapOpts := []zap.Opts{zap.UseFlagOptions(&opts)}
			if cmd.Annotations[webhook.LogFormatAnnotation] == "json" {
				zapOpts = append(zapOpts, zap.JSONEncoder())
			}
			logf.SetLogger(zap.New(zapOpts...))
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().AddGoFlagSet(zapFlags)

	rootCmd.AddCommand(call.NewCallCommand())
	rootCmd.AddCommand(operations.NewOperationsCommand())
	rootCmd.AddCommand(version.NewVersionCommand())
	rootCmd.AddCommand(webhook.CreateWebhookCommand())

	if err := rootCmd.ExecuteContext(signals.SetupSignalHandler()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
