package webhook

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	logf "sigs.k8s.io/controller-runtime/pkg/log"
	ctrlwebhook "sigs.k8s.io/controller-runtime/pkg/webhook"

	"go.miloapis.com/mailchimp/pkg/mailchimp"
)

// maxBodyBytes bounds the form body of a delivery.
const maxBodyBytes = 1 << 20

const tracerName = "go.miloapis.com/mailchimp/internal/webhook"

// Webhook receives Mailchimp list webhooks registered with
// lists/webhook-add.
type Webhook struct {
	Handler  Handler
	Endpoint string
	secret   string // shared secret expected in the "secret" query parameter
}

type Request struct {
	Event *mailchimp.WebhookEvent
}

type Response struct {
	HttpStatus int `json:"HttpStatus"`
}

type HandlerFunc func(context.Context, Request) Response

func (f HandlerFunc) Handle(ctx context.Context, req Request) Response {
	return f(ctx, req)
}

type Handler interface {
	Handle(context.Context, Request) Response
}

// WebhookVerificationError represents errors that can occur during webhook verification
type WebhookVerificationError struct {
	Code    string
	Message string
	Err     error
}

func (e *WebhookVerificationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

var (
	ErrMissingSecret = errors.New("missing webhook secret")
	ErrInvalidSecret = errors.New("invalid webhook secret")
)

// New returns a webhook served at endpoint. An empty secret disables
// verification.
func New(endpoint, secret string, handler Handler) *Webhook {
	return &Webhook{Handler: handler, Endpoint: endpoint, secret: secret}
}

// verifyWebhook checks the shared secret Mailchimp echoes back from the
// registered URL, e.g. https://hooks.example.com/mailchimp?secret=s3cr3t.
func verifyWebhook(r *http.Request, secret string) error {
	if secret == "" {
		return nil
	}
	got := r.URL.Query().Get("secret")
	if got == "" {
		return &WebhookVerificationError{
			Code:    "MISSING_SECRET",
			Message: "Missing secret query parameter",
			Err:     ErrMissingSecret,
		}
	}
	if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
		return &WebhookVerificationError{
			Code:    "INVALID_SECRET",
			Message: "Invalid secret",
			Err:     ErrInvalidSecret,
		}
	}
	return nil
}

// SetupWithServer registers the webhook on a controller-runtime webhook
// server.
func (wh *Webhook) SetupWithServer(srv ctrlwebhook.Server) {
	srv.Register(wh.Endpoint, wh)
}

func (wh *Webhook) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := logf.FromContext(r.Context()).WithName("mailchimp-http-webhook")
	log.Info("Handling request", "method", r.Method, "remoteAddr", r.RemoteAddr)

	ctx, span := otel.Tracer(tracerName).Start(r.Context(), "mailchimp webhook "+wh.Endpoint,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(attribute.String("http.request.method", r.Method)),
	)
	defer span.End()
	r = r.WithContext(ctx)

	// panic recovery
	defer func() {
		if r := recover(); r != nil {
			log.Error(nil, "Panic in webhook handler", "panic", r)
			span.SetStatus(codes.Error, fmt.Sprint(r))
			wh.writeResponse(w, InternalServerErrorResponse())
		}
	}()

	if err := verifyWebhook(r, wh.secret); err != nil {
		var verifyErr *WebhookVerificationError
		if errors.As(err, &verifyErr) {
			log.Error(err, "Webhook verification failed", "code", verifyErr.Code)
		} else {
			log.Error(err, "Webhook verification failed")
		}
		wh.writeResponse(w, UnauthorizedResponse())
		return
	}

	switch r.Method {
	case http.MethodGet:
		// Mailchimp validates the URL with a GET before saving the webhook.
		log.Info("Answered validation request")
		wh.writeResponse(w, OkResponse())
		return
	case http.MethodPost:
	default:
		log.Error(nil, "Method not allowed", "method", r.Method)
		w.Header().Set("Allow", http.MethodGet+", "+http.MethodPost)
		wh.writeResponse(w, MethodNotAllowedResponse())
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		log.Error(err, "Failed to parse webhook form")
		wh.writeResponse(w, BadRequestResponse())
		return
	}

	event, err := mailchimp.ParseWebhookForm(r.PostForm)
	if err != nil {
		log.Error(err, "Failed to parse webhook event")
		wh.writeResponse(w, BadRequestResponse())
		return
	}

	log.Info("Parsed event", "type", event.Type, "firedAt", event.FiredAt, "listID", event.Data.ListID)
	span.SetAttributes(
		attribute.String("mailchimp.event.type", event.Type),
		attribute.String("mailchimp.list", event.Data.ListID),
	)

	if !mailchimp.KnownEventType(event.Type) {
		log.Info("Unknown event type", "type", event.Type)
		wh.writeResponse(w, BadRequestResponse())
		return
	}

	response := wh.Handler.Handle(r.Context(), Request{Event: event})
	wh.writeResponse(w, response)
}

// writeResponse writes the status of response. A zero status acknowledges
// the event with 200.
func (wh *Webhook) writeResponse(w http.ResponseWriter, response Response) {
	status := response.HttpStatus
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
}
