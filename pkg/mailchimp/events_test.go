package mailchimp

import (
	"net/url"
	"testing"
	"time"
)

func TestParseWebhookForm(t *testing.T) {
	tests := []struct {
		name  string
		form  string
		check func(t *testing.T, ev *WebhookEvent)
	}{
		{
			name: "subscribe",
			form: "type=subscribe&fired_at=2009-03-26+21%3A35%3A57&data%5Bid%5D=8a25ff1d98&data%5Blist_id%5D=a6b5da1054" +
				"&data%5Bemail%5D=api%40mailchimp.com&data%5Bemail_type%5D=html&data%5Bmerges%5D%5BEMAIL%5D=api%40mailchimp.com" +
				"&data%5Bmerges%5D%5BFNAME%5D=MailChimp&data%5Bmerges%5D%5BLNAME%5D=API&data%5Bmerges%5D%5BINTERESTS%5D=Group1%2CGroup2" +
				"&data%5Bip_opt%5D=10.20.10.30&data%5Bip_signup%5D=10.20.10.30",
			check: func(t *testing.T, ev *WebhookEvent) {
				if ev.Type != EventSubscribe {
					t.Errorf("Expected subscribe, got %s", ev.Type)
				}
				if ev.Data.ListID != "a6b5da1054" || ev.Data.Email != "api@mailchimp.com" {
					t.Errorf("Unexpected data: %+v", ev.Data)
				}
				if got := ev.Data.Merge("FNAME"); got != "MailChimp" {
					t.Errorf("Expected FNAME MailChimp, got %q", got)
				}
				if got := ev.Data.Merge("INTERESTS"); got != "Group1,Group2" {
					t.Errorf("Expected INTERESTS, got %q", got)
				}
				fired, err := ev.FiredTime()
				if err != nil {
					t.Fatalf("Failed to parse fired_at: %v", err)
				}
				if !fired.Equal(time.Date(2009, 3, 26, 21, 35, 57, 0, time.UTC)) {
					t.Errorf("Unexpected fired_at %s", fired)
				}
			},
		},
		{
			name: "upemail",
			form: "type=upemail&fired_at=2009-03-26+22%3A15%3A09&data%5Blist_id%5D=a6b5da1054&data%5Bnew_id%5D=51da8c3259" +
				"&data%5Bnew_email%5D=api%2Bnew%40mailchimp.com&data%5Bold_email%5D=api%2Bold%40mailchimp.com",
			check: func(t *testing.T, ev *WebhookEvent) {
				if ev.Data.NewEmail != "api+new@mailchimp.com" || ev.Data.OldEmail != "api+old@mailchimp.com" {
					t.Errorf("Unexpected data: %+v", ev.Data)
				}
			},
		},
		{
			name: "groupings become arrays",
			form: "type=profile&data%5Bmerges%5D%5BGROUPINGS%5D%5B0%5D%5Bname%5D=Colors&data%5Bmerges%5D%5BGROUPINGS%5D%5B0%5D%5Bgroups%5D=Red" +
				"&data%5Bmerges%5D%5BGROUPINGS%5D%5B1%5D%5Bname%5D=Sizes",
			check: func(t *testing.T, ev *WebhookEvent) {
				groupings, ok := ev.Data.Merges["GROUPINGS"].([]any)
				if !ok || len(groupings) != 2 {
					t.Fatalf("Expected 2 groupings, got %#v", ev.Data.Merges["GROUPINGS"])
				}
				first, _ := groupings[0].(map[string]any)
				if first["name"] != "Colors" {
					t.Errorf("Unexpected grouping %v", first)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form, err := url.ParseQuery(tt.form)
			if err != nil {
				t.Fatalf("Bad fixture: %v", err)
			}
			ev, err := ParseWebhookForm(form)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			tt.check(t, ev)
		})
	}
}

func TestParseWebhookFormErrors(t *testing.T) {
	for _, form := range []url.Values{
		{"data[email]": {"a@b.com"}},
		{"type": {"subscribe"}, "data[email": {"a@b.com"}},
		{"type": {"subscribe"}, "data[a]x[b]": {"a@b.com"}},
	} {
		if _, err := ParseWebhookForm(form); err == nil {
			t.Errorf("Expected error for %v", form)
		}
	}
}

func TestKnownEventType(t *testing.T) {
	for _, typ := range []string{EventSubscribe, EventUnsubscribe, EventProfile, EventUpEmail, EventCleaned, EventCampaign} {
		if !KnownEventType(typ) {
			t.Errorf("Expected %s to be known", typ)
		}
	}
	if KnownEventType("contact.created") {
		t.Error("Expected unknown event type to be rejected")
	}
}
