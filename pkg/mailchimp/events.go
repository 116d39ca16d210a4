package mailchimp

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Event types sent by list webhooks registered with lists/webhook-add.
const (
	EventSubscribe   = "subscribe"
	EventUnsubscribe = "unsubscribe"
	EventProfile     = "profile"
	EventUpEmail     = "upemail"
	EventCleaned     = "cleaned"
	EventCampaign    = "campaign"
)

// WebhookTimeLayout is the layout of the fired_at field.
const WebhookTimeLayout = "2006-01-02 15:04:05"

// WebhookEvent is one list webhook delivery.
type WebhookEvent struct {
	Type    string      `json:"type"`
	FiredAt string      `json:"fired_at"`
	Data    WebhookData `json:"data"`
}

// WebhookData carries the event fields. Which fields are set depends on the
// event type: subscribe and profile carry Merges, upemail carries NewEmail
// and OldEmail, cleaned and campaign carry Reason.
type WebhookData struct {
	ID         string         `json:"id,omitempty"`
	ListID     string         `json:"list_id,omitempty"`
	Email      string         `json:"email,omitempty"`
	EmailType  string         `json:"email_type,omitempty"`
	IPOpt      string         `json:"ip_opt,omitempty"`
	IPSignup   string         `json:"ip_signup,omitempty"`
	WebID      string         `json:"web_id,omitempty"`
	Action     string         `json:"action,omitempty"`
	Reason     string         `json:"reason,omitempty"`
	CampaignID string         `json:"campaign_id,omitempty"`
	NewID      string         `json:"new_id,omitempty"`
	NewEmail   string         `json:"new_email,omitempty"`
	OldEmail   string         `json:"old_email,omitempty"`
	Subject    string         `json:"subject,omitempty"`
	Status     string         `json:"status,omitempty"`
	Merges     map[string]any `json:"merges,omitempty"`
}

// FiredTime parses FiredAt, which Mailchimp sends in UTC.
func (e *WebhookEvent) FiredTime() (time.Time, error) {
	return time.ParseInLocation(WebhookTimeLayout, e.FiredAt, time.UTC)
}

// Merge returns a merge field such as "FNAME" as a string.
func (d WebhookData) Merge(tag string) string {
	v, ok := d.Merges[tag]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// KnownEventType reports whether t is one of the list webhook event types.
func KnownEventType(t string) bool {
	switch t {
	case EventSubscribe, EventUnsubscribe, EventProfile, EventUpEmail, EventCleaned, EventCampaign:
		return true
	}
	return false
}

// ParseWebhookForm decodes a form-encoded webhook body such as
//
//	type=subscribe&fired_at=2009-03-26+21:35:57&data[email]=a@b.com&data[merges][FNAME]=Ann
//
// Bracketed keys become nested objects; numeric segments become arrays.
func ParseWebhookForm(form url.Values) (*WebhookEvent, error) {
	tree := map[string]any{}
	keys := make([]string, 0, len(form))
	for k := range form {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		segments, err := splitFormKey(k)
		if err != nil {
			return nil, err
		}
		setPath(tree, segments, form.Get(k))
	}

	codec := NewJSONCodec()
	data, err := codec.Encode(arrayify(tree))
	if err != nil {
		return nil, err
	}
	var ev WebhookEvent
	if err := codec.Decode(data, &ev); err != nil {
		return nil, err
	}
	if ev.Type == "" {
		return nil, fmt.Errorf("webhook payload has no type")
	}
	return &ev, nil
}

// splitFormKey splits "data[merges][FNAME]" into [data merges FNAME].
func splitFormKey(key string) ([]string, error) {
	i := strings.IndexByte(key, '[')
	if i < 0 {
		return []string{key}, nil
	}
	segments := []string{key[:i]}
	rest := key[i:]
	for rest != "" {
		if rest[0] != '[' {
			return nil, fmt.Errorf("malformed form key %q", key)
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, fmt.Errorf("malformed form key %q", key)
		}
		segments = append(segments, rest[1:end])
		rest = rest[end+1:]
	}
	return segments, nil
}

func setPath(tree map[string]any, segments []string, value string) {
	node := tree
	for _, seg := range segments[:len(segments)-1] {
		child, ok := node[seg].(map[string]any)
		if !ok {
			child = map[string]any{}
			node[seg] = child
		}
		node = child
	}
	node[segments[len(segments)-1]] = value
}

// arrayify turns objects whose keys are exactly 0..n-1 into arrays.
func arrayify(v any) any {
	m, ok := v.(map[string]any)
	if !ok {
		return v
	}
	for k, child := range m {
		m[k] = arrayify(child)
	}
	if len(m) == 0 {
		return m
	}
	out := make([]any, len(m))
	for k, child := range m {
		i, err := strconv.Atoi(k)
		if err != nil || i < 0 || i >= len(m) {
			return m
		}
		out[i] = child
	}
	return out
}
