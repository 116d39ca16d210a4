package mailchimp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-logr/logr"
	"github.com/tidwall/gjson"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"k8s.io/apimachinery/pkg/util/validation/field"
	logf "sigs.k8s.io/controller-runtime/pkg/log"
)

const tracerName = "go.miloapis.com/mailchimp"

// API defines the interface for the Mailchimp client.
type API interface {
	// Invoke starts an operation and returns at once. The outcome is
	// delivered to completion on another goroutine.
	Invoke(ctx context.Context, group, name string, params any, completion Completion) *Invocation

	// Call invokes an operation and waits for its outcome.
	Call(ctx context.Context, group, name string, params any) (*Result, error)
}

var _ API = (*Client)(nil)

// Client dispatches Mailchimp v2.0 operations described by a Registry.
//
// The resource-group fields (Lists, Campaigns, ...) bind operation names and
// forward to Invoke.
type Client struct {
	facades

	config     Config
	registry   *Registry
	transport  Transport
	codec      Codec
	httpClient *http.Client
	log        *logr.Logger
	policy     FailurePolicy
	tracer     trace.Tracer
}

// ClientOption defines a functional option for configuring the Client.
type ClientOption func(*Client)

// WithEndpoint overrides the API root derived from the key.
func WithEndpoint(endpoint string) ClientOption {
	return func(c *Client) {
		c.config.Endpoint = endpoint
	}
}

// WithDebug toggles request and response tracing.
func WithDebug(debug bool) ClientOption {
	return func(c *Client) {
		c.config.Debug = debug
	}
}

// WithTimeout sets the per-request transport timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.config.Timeout = timeout
	}
}

// WithHTTPClient sets the HTTP client used by the default transport.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTransport replaces the default HTTP transport.
func WithTransport(t Transport) ClientOption {
	return func(c *Client) {
		c.transport = t
	}
}

// WithCodec replaces the default JSON codec.
func WithCodec(codec Codec) ClientOption {
	return func(c *Client) {
		c.codec = codec
	}
}

// WithRegistry replaces the embedded operation catalogue. The registry is
// sealed by New.
func WithRegistry(r *Registry) ClientOption {
	return func(c *Client) {
		c.registry = r
	}
}

// WithLogger sets the logger. By default the logger is taken from the
// invocation context.
func WithLogger(log logr.Logger) ClientOption {
	return func(c *Client) {
		c.log = &log
	}
}

// WithFailurePolicy sets how failures without an OnFailure handler are
// handled. The default logs and drops them.
func WithFailurePolicy(p FailurePolicy) ClientOption {
	return func(c *Client) {
		c.policy = p
	}
}

// WithTracer sets the tracer used for invocation spans.
func WithTracer(t trace.Tracer) ClientOption {
	return func(c *Client) {
		c.tracer = t
	}
}

// New creates a Mailchimp client for an API key.
func New(apiKey string, opts ...ClientOption) (*Client, error) {
	return NewFromConfig(Config{APIKey: apiKey}, opts...)
}

// NewFromConfig creates a Mailchimp client from a Config, typically one
// returned by LoadConfigFromEnv.
func NewFromConfig(cfg Config, opts ...ClientOption) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("api key is required")
	}

	c := &Client{
		config: cfg,
		codec:  NewJSONCodec(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.config.Timeout < 0 {
		return nil, fmt.Errorf("timeout must not be negative")
	}
	if c.config.Timeout == 0 {
		c.config.Timeout = defaultTimeout
	}
	c.config.Endpoint = c.config.ResolvedEndpoint()

	if c.registry == nil {
		c.registry = DefaultRegistry()
	}
	c.registry.Seal()

	if c.transport == nil {
		c.transport = NewHTTPTransport(c.config.Endpoint, c.httpClient, c.config.Timeout)
	}
	if c.tracer == nil {
		c.tracer = otel.Tracer(tracerName)
	}

	c.facades.init(c)
	return c, nil
}

// Config returns a copy of the client configuration.
func (c *Client) Config() Config {
	return c.config
}

// Registry returns the sealed registry the client dispatches from.
func (c *Client) Registry() *Registry {
	return c.registry
}

// Invoke starts the operation (group, name) with params and returns its
// record immediately. Cancelling ctx does not cancel the invocation; use the
// transport timeout to bound it.
func (c *Client) Invoke(ctx context.Context, group, name string, params any, completion Completion) *Invocation {
	inv := newInvocation(group, name, params)
	go c.run(context.WithoutCancel(ctx), inv, completion)
	return inv
}

// Call invokes an operation and waits for its outcome. If ctx is done first,
// Call returns ctx.Err() and the invocation keeps running.
func (c *Client) Call(ctx context.Context, group, name string, params any) (*Result, error) {
	inv := c.Invoke(ctx, group, name, params, Completion{OnFailure: func(*Error) {}})
	return inv.Wait(ctx)
}

func (c *Client) logger(ctx context.Context) logr.Logger {
	if c.log != nil {
		return *c.log
	}
	return logf.FromContext(ctx)
}

func (c *Client) run(ctx context.Context, inv *Invocation, completion Completion) {
	log := c.logger(ctx).WithValues(
		"group", inv.Group,
		"operation", inv.Operation,
		"invocation", inv.ID.String(),
	)

	ctx, span := c.tracer.Start(ctx, "mailchimp "+operationKey(inv.Group, inv.Operation),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("mailchimp.group", inv.Group),
			attribute.String("mailchimp.operation", inv.Operation),
			attribute.String("mailchimp.invocation", inv.ID.String()),
		),
	)

	result, failure := c.execute(logr.NewContext(ctx, log), inv)
	if failure != nil {
		span.RecordError(failure)
		span.SetStatus(codes.Error, string(failure.Kind))
	} else {
		span.SetStatus(codes.Ok, "")
	}
	// The span is closed before delivery so it never outlives Done.
	span.End()

	if failure != nil {
		final := StateFailed
		if inv.State() == StateRejected {
			final = StateRejected
		}
		policy := c.policy
		if policy == nil {
			policy = LogAndDrop(log)
		}
		inv.finish(final, nil, failure, recovered(log, func() {
			completion.failure(inv, failure, policy)
		}))
		return
	}

	inv.finish(StateCompleted, result, nil, recovered(log, func() {
		completion.success(result)
	}))
}

// recovered runs deliver and logs a panic from a completion handler or
// failure policy instead of letting it take down the process.
func recovered(log logr.Logger, deliver func()) func() {
	return func() {
		defer func() {
			if r := recover(); r != nil {
				log.Error(fmt.Errorf("%v", r), "Mailchimp completion handler panicked")
			}
		}()
		deliver()
	}
}

func (c *Client) execute(ctx context.Context, inv *Invocation) (*Result, *Error) {
	log := logr.FromContextOrDiscard(ctx)
	inv.transition(StateCreated, StateValidating)

	d, err := c.registry.Lookup(inv.Group, inv.Operation)
	if err != nil {
		inv.transition(StateValidating, StateRejected)
		var mcErr *Error
		if errors.As(err, &mcErr) {
			return nil, mcErr
		}
		return nil, c.newError(inv, UnknownOperation, err)
	}
	inv.descriptor = d

	body, failure := c.prepare(inv, d)
	if failure != nil {
		inv.transition(StateValidating, StateRejected)
		return nil, failure
	}

	inv.transition(StateValidating, StateInFlight)
	req := &Request{
		Method:     d.Method,
		Path:       d.Path,
		Credential: c.config.APIKey,
		Body:       body,
	}

	if c.config.Debug {
		log.Info("Sending mailchimp request", "method", req.Method, "path", req.Path, "body", string(body))
	}
	start := time.Now()
	resp, err := c.transport.Send(ctx, req)
	if c.config.Debug {
		if err != nil {
			log.Info("Mailchimp request failed", "path", req.Path, "duration", time.Since(start).String(), "error", err.Error())
		} else {
			log.Info("Received mailchimp response", "path", req.Path, "duration", time.Since(start).String(), "status", resp.StatusCode, "body", string(resp.Body))
		}
	}
	if err != nil {
		return nil, c.newError(inv, TransportFailure, err)
	}

	return c.decodeResponse(inv, d, resp)
}

// prepare normalizes and validates the params and returns the encoded body.
func (c *Client) prepare(inv *Invocation, d *Descriptor) ([]byte, *Error) {
	var normalized any = map[string]any{}
	if inv.Params != nil {
		n, err := c.codec.Normalize(inv.Params)
		if err != nil {
			return nil, c.newError(inv, InvalidParams, err)
		}
		if n != nil {
			normalized = n
		}
	}

	if _, ok := normalized.(map[string]any); !ok {
		e := c.newError(inv, InvalidParams, nil)
		e.Fields = field.ErrorList{field.TypeInvalid(field.NewPath("params"), string(kindOf(normalized)), "must be object")}
		return nil, e
	}
	if errs := d.Params.Validate(normalized); len(errs) > 0 {
		e := c.newError(inv, InvalidParams, nil)
		e.Fields = errs
		return nil, e
	}

	body, err := c.codec.Encode(normalized)
	if err != nil {
		return nil, c.newError(inv, InvalidParams, err)
	}
	return body, nil
}

func (c *Client) decodeResponse(inv *Invocation, d *Descriptor, resp *Response) (*Result, *Error) {
	if env, ok := errorEnvelope(resp.Body); ok {
		e := c.newError(inv, RemoteError, nil)
		e.Status, e.Name, e.Code, e.Message = env.Status, env.Name, env.Code, env.Error
		e.StatusCode = resp.StatusCode
		return nil, e
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		e := c.newError(inv, TransportFailure, nil)
		e.StatusCode = resp.StatusCode
		e.Message = truncate(string(resp.Body), 512)
		return nil, e
	}

	var value any
	if err := c.codec.Decode(resp.Body, &value); err != nil {
		e := c.newError(inv, MalformedResponse, err)
		e.StatusCode = resp.StatusCode
		return nil, e
	}
	if errs := d.Result.Validate(value); len(errs) > 0 {
		e := c.newError(inv, MalformedResponse, nil)
		e.StatusCode = resp.StatusCode
		e.Fields = errs
		return nil, e
	}

	return &Result{raw: resp.Body, value: value, codec: c.codec}, nil
}

func (c *Client) newError(inv *Invocation, kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Group: inv.Group, Operation: inv.Operation, Err: err}
}

// errorEnvelope detects the Mailchimp error envelope
// {"status":"error","code":214,"name":"List_AlreadySubscribed","error":"..."}.
func errorEnvelope(body []byte) (RequestError, bool) {
	if !gjson.ValidBytes(body) {
		return RequestError{}, false
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() || root.Get("status").String() != "error" {
		return RequestError{}, false
	}
	return RequestError{
		Status: root.Get("status").String(),
		Name:   root.Get("name").String(),
		Code:   int(root.Get("code").Int()),
		Error:  root.Get("error").String(),
	}, true
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
