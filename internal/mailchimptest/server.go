// Package mailchimptest provides an in-process fake of the Mailchimp v2.0 API
// for tests.
package mailchimptest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/tidwall/gjson"
)

// Call is one request received by the fake.
type Call struct {
	Group     string
	Method    string
	APIKey    string
	UserAgent string
	Body      []byte
}

// Param returns a body field at a gjson path, e.g. "email.email".
func (c Call) Param(path string) gjson.Result {
	return gjson.GetBytes(c.Body, path)
}

type reply struct {
	status int
	body   string
}

// Server is a fake Mailchimp API. Routes answer with the replies queued by
// Reply; the last reply of a route is repeated.
type Server struct {
	*httptest.Server

	mu      sync.Mutex
	calls   []Call
	replies map[string][]reply
	apiKey  string
}

// NewServer starts a fake that accepts any API key. It is closed when the
// test ends.
func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{replies: make(map[string][]reply)}

	r := chi.NewRouter()
	r.Post("/{group}/{method}.json", s.handle)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, -90, "API_NotFound", "Unknown method")
	})

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// RequireAPIKey makes the fake reject requests whose apikey differs.
func (s *Server) RequireAPIKey(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.apiKey = key
}

// Reply queues a response for a wire route such as ("lists", "batch-subscribe").
func (s *Server) Reply(group, method string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := group + "/" + method
	s.replies[key] = append(s.replies[key], reply{status: status, body: body})
}

// ReplyError queues a Mailchimp error envelope. Mailchimp sends those with
// status 500.
func (s *Server) ReplyError(group, method string, code int, name, message string) {
	body, _ := json.Marshal(map[string]any{
		"status": "error",
		"code":   code,
		"name":   name,
		"error":  message,
	})
	s.Reply(group, method, http.StatusInternalServerError, string(body))
}

// Calls returns the requests received so far.
func (s *Server) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Call, len(s.calls))
	copy(out, s.calls)
	return out
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, -100, "ValidationError", err.Error())
		return
	}
	call := Call{
		Group:     chi.URLParam(r, "group"),
		Method:    chi.URLParam(r, "method"),
		APIKey:    gjson.GetBytes(body, "apikey").String(),
		UserAgent: r.UserAgent(),
		Body:      body,
	}

	s.mu.Lock()
	s.calls = append(s.calls, call)
	expected := s.apiKey
	key := call.Group + "/" + call.Method
	queue := s.replies[key]
	var next *reply
	if len(queue) > 0 {
		next = &queue[0]
		if len(queue) > 1 {
			s.replies[key] = queue[1:]
		}
	}
	s.mu.Unlock()

	if expected != "" && call.APIKey != expected {
		writeError(w, http.StatusInternalServerError, 104, "Invalid_ApiKey", "Invalid Mailchimp API Key: "+call.APIKey)
		return
	}
	if next == nil {
		writeError(w, http.StatusInternalServerError, -32601, "Invalid_Method", "Unknown method "+key)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(next.status)
	_, _ = w.Write([]byte(next.body))
}

func writeError(w http.ResponseWriter, status, code int, name, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status": "error",
		"code":   code,
		"name":   name,
		"error":  message,
	})
}
