package mailchimp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/sjson"

	"go.miloapis.com/mailchimp/pkg/version"
)

// Request is one exchange handed to a Transport. Body is the encoded params
// without the credential.
type Request struct {
	Method     string
	Path       string
	Credential string
	Body       []byte
}

// Response is the raw answer to a Request. Any HTTP status is a Response; only
// failures to complete the exchange are errors.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport performs the network exchange for an invocation.
type Transport interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, req *Request) (*Response, error)

func (f TransportFunc) Send(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}

// TransportError reports an exchange that did not produce a response.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the exchange hit the request timeout.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var t interface{ Timeout() bool }
	return errors.As(e.Err, &t) && t.Timeout()
}

// HTTPTransport sends requests to the Mailchimp v2.0 API. The credential is
// spliced into the JSON body as "apikey".
type HTTPTransport struct {
	endpoint   string
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
}

var _ Transport = (*HTTPTransport)(nil)

// NewHTTPTransport creates a transport for the given API root. A nil client
// uses http.DefaultClient; a zero timeout disables the per-request deadline.
func NewHTTPTransport(endpoint string, httpClient *http.Client, timeout time.Duration) *HTTPTransport {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPTransport{
		endpoint:   strings.TrimSuffix(endpoint, "/"),
		httpClient: httpClient,
		timeout:    timeout,
		userAgent:  version.UserAgent(),
	}
}

// Endpoint returns the API root requests are sent to.
func (t *HTTPTransport) Endpoint() string {
	return t.endpoint
}

func (t *HTTPTransport) Send(ctx context.Context, req *Request) (*Response, error) {
	body := req.Body
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}
	if req.Credential != "" {
		var err error
		body, err = sjson.SetBytes(body, "apikey", req.Credential)
		if err != nil {
			return nil, fmt.Errorf("failed to set credential: %w", err)
		}
	}

	if t.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	method := req.Method
	if method == "" {
		method = http.MethodPost
	}
	url := t.endpoint + req.Path
	httpReq, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", t.userAgent)

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Method: method, URL: url, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: method, URL: url, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}
