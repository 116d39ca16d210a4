package webhook

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"k8s.io/utils/ptr"
	logf "sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/healthz"
	ctrlwebhook "sigs.k8s.io/controller-runtime/pkg/webhook"

	"go.miloapis.com/mailchimp/internal/config"
	"go.miloapis.com/mailchimp/internal/telemetry"
	webhook "go.miloapis.com/mailchimp/internal/webhook"
	"go.miloapis.com/mailchimp/pkg/mailchimp"
)

// LogFormatAnnotation selects the log encoder of a command.
const LogFormatAnnotation = "mailchimp.miloapis.com/log-format"

const secretEnv = "MAILCHIMP_WEBHOOK_SECRET"

// CreateWebhookCommand returns a cobra command that starts the Mailchimp
// list webhook server.
func CreateWebhookCommand() *cobra.Command {
	var (
		webhookPort                                     int
		webhookCertDir, webhookCertFile, webhookKeyFile string
		webhookPath                                     string
		probeBindAddress                                string
	)

	cmd := &cobra.Command{
		Use:         "webhook",
		Short:       "Runs the Mailchimp list webhook server",
		Annotations: map[string]string{LogFormatAnnotation: "json"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logf.Log.WithName("webhook")
			ctx := logf.IntoContext(cmd.Context(), log)

			log.Info("Starting webhook server",
				"cert_dir", webhookCertDir,
				"cert_file", webhookCertFile,
				"key_file", webhookKeyFile,
				"webhook_port", webhookPort,
				"path", webhookPath,
			)

			shutdown, err := telemetry.Setup(ctx, "mailchimp-webhook")
			if err != nil {
				return fmt.Errorf("failed to setup telemetry: %w", err)
			}
			defer shutdown.Flush(log)

			log.Info("Loading webhook secret")
			secret := os.Getenv(secretEnv)
			if secret == "" {
				return fmt.Errorf("%s is required but not set", secretEnv)
			}

			server := ctrlwebhook.NewServer(ctrlwebhook.Options{
				CertDir:  webhookCertDir,
				CertName: webhookCertFile,
				KeyName:  webhookKeyFile,
				Port:     webhookPort,
			})

			log.Info("Setting up webhook")
			mux := webhook.NewMux()
			for _, eventType := range []string{
				mailchimp.EventSubscribe,
				mailchimp.EventUnsubscribe,
				mailchimp.EventProfile,
				mailchimp.EventUpEmail,
				mailchimp.EventCleaned,
				mailchimp.EventCampaign,
			} {
				mux.On(eventType, webhook.LogEvents())
			}
			webhook.New(webhookPath, secret, mux).SetupWithServer(server)

			probes := &http.Server{
				Addr: probeBindAddress,
				Handler: &healthz.Handler{Checks: map[string]healthz.Checker{
					"webhook": server.StartedChecker(),
				}},
				ReadHeaderTimeout: 5 * time.Second,
			}
			go func() {
				log.Info("Serving health probes", "address", probeBindAddress)
				if err := probes.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error(err, "Health probe server failed")
				}
			}()
			defer probes.Close()

			log.Info("Starting server")
			return server.Start(ctx)
		},
	}

	cmd.Flags().IntVar(&webhookPort, "webhook-port", 9443, "Port for the webhook server")
	cmd.Flags().StringVar(&webhookCertDir,
		"cert-dir", "/etc/certs", "Directory that contains the TLS certs to use for serving the webhook")
	cmd.Flags().StringVar(&webhookCertFile, "cert-file", "", "Filename in the directory that contains the TLS cert")
	cmd.Flags().StringVar(&webhookKeyFile, "key-file", "", "Filename in the directory that contains the TLS private key")
	cmd.Flags().StringVar(&webhookPath, "path", "/mailchimp", "Path the webhook is served on")

	cmd.Flags().StringVar(&probeBindAddress, "health-probe-bind-address", ":8081", "address the probe endpoint binds to")

	cmd.AddCommand(newRegisterCommand())

	return cmd
}

func newRegisterCommand() *cobra.Command {
	var (
		listID  string
		url     string
		actions []string
		sources []string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a webhook URL on a list with lists/webhook-add",
		Example: `  mailchimp webhook register --list-id a6b5da1054 \
    --url "https://hooks.example.com/mailchimp?secret=$MAILCHIMP_WEBHOOK_SECRET" \
    --actions subscribe,unsubscribe --sources user,admin`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params, err := webhookAddParams(listID, url, actions, sources)
			if err != nil {
				return err
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

			inv := client.Lists.WebhookAdd(cmd.Context(), params, mailchimp.Completion{
				OnFailure: func(*mailchimp.Error) {},
			})
			res, err := inv.Wait(cmd.Context())
			if err != nil {
				return err
			}

			var out mailchimp.WebhookAddResult
			if err := res.Decode(&out); err != nil {
				return fmt.Errorf("failed to decode result: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered webhook %d on list %s\n", out.ID, listID)
			return nil
		},
	}

	config.BindFlags(cmd.Flags())
	cmd.Flags().StringVar(&listID, "list-id", "", "List to register the webhook on")
	cmd.Flags().StringVar(&url, "url", "", "Public URL of the webhook, including the secret query parameter")
	cmd.Flags().StringSliceVar(&actions, "actions", nil,
		"Events to deliver (subscribe, unsubscribe, profile, cleaned, upemail, campaign); all when empty")
	cmd.Flags().StringSliceVar(&sources, "sources", nil, "Change origins to deliver (user, admin, api); all when empty")
	_ = cmd.MarkFlagRequired("list-id")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}

func webhookAddParams(listID, url string, actions, sources []string) (*mailchimp.WebhookAddParams, error) {
	params := &mailchimp.WebhookAddParams{ID: listID, URL: url}

	if len(actions) > 0 {
		a := &mailchimp.WebhookActions{
			Subscribe:   ptr.To(false),
			Unsubscribe: ptr.To(false),
			Profile:     ptr.To(false),
			Cleaned:     ptr.To(false),
			UpEmail:     ptr.To(false),
			Campaign:    ptr.To(false),
		}
		for _, action := range actions {
			switch strings.ToLower(strings.TrimSpace(action)) {
			case mailchimp.EventSubscribe:
				a.Subscribe = ptr.To(true)
			case mailchimp.EventUnsubscribe:
				a.Unsubscribe = ptr.To(true)
			case mailchimp.EventProfile:
				a.Profile = ptr.To(true)
			case mailchimp.EventCleaned:
				a.Cleaned = ptr.To(true)
			case mailchimp.EventUpEmail:
				a.UpEmail = ptr.To(true)
			case mailchimp.EventCampaign:
				a.Campaign = ptr.To(true)
			default:
				return nil, fmt.Errorf("unknown action %q", action)
			}
		}
		params.Actions = a
	}

	if len(sources) > 0 {
		s := &mailchimp.WebhookSources{User: ptr.To(false), Admin: ptr.To(false), API: ptr.To(false)}
		for _, source := range sources {
			switch strings.ToLower(strings.TrimSpace(source)) {
			case "user":
				s.User = ptr.To(true)
			case "admin":
				s.Admin = ptr.To(true)
			case "api":
				s.API = ptr.To(true)
			default:
				return nil, fmt.Errorf("unknown source %q", source)
			}
		}
		params.Sources = s
	}

	return params, nil
}
