package webhook

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"go.miloapis.com/mailchimp/pkg/mailchimp"
)

const unsubscribeForm = "type=unsubscribe&fired_at=2009-03-26+21%3A40%3A57" +
	"&data%5Baction%5D=unsub&data%5Breason%5D=manual&data%5Bid%5D=8a25ff1d98" +
	"&data%5Blist_id%5D=a6b5da1054&data%5Bemail%5D=api%2Bunsub%40mailchimp.com" +
	"&data%5Bemail_type%5D=html&data%5Bmerges%5D%5BFNAME%5D=MailChimp&data%5Bcampaign_id%5D=cb398d21d2"

func deliver(wh *Webhook, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	rec := httptest.NewRecorder()
	wh.ServeHTTP(rec, req)
	return rec
}

var _ = Describe("Webhook", func() {
	var (
		received []*mailchimp.WebhookEvent
		wh       *Webhook
	)

	BeforeEach(func() {
		received = nil
		wh = New("/mailchimp", "s3cr3t", HandlerFunc(func(_ context.Context, req Request) Response {
			received = append(received, req.Event)
			return OkResponse()
		}))
	})

	Context("when verifying the secret", func() {
		It("accepts the validation ping", func() {
			rec := deliver(wh, http.MethodGet, "/mailchimp?secret=s3cr3t", "")
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(received).To(BeEmpty())
		})

		It("rejects a missing secret", func() {
			rec := deliver(wh, http.MethodPost, "/mailchimp", unsubscribeForm)
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(received).To(BeEmpty())
		})

		It("rejects a wrong secret", func() {
			rec := deliver(wh, http.MethodGet, "/mailchimp?secret=nope", "")
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})

		It("skips verification without a configured secret", func() {
			open := New("/mailchimp", "", wh.Handler)
			rec := deliver(open, http.MethodPost, "/mailchimp", unsubscribeForm)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(received).To(HaveLen(1))
		})

		It("reports typed verification errors", func() {
			req := httptest.NewRequest(http.MethodGet, "/mailchimp?secret=nope", nil)
			err := verifyWebhook(req, "s3cr3t")

			var verifyErr *WebhookVerificationError
			Expect(errors.As(err, &verifyErr)).To(BeTrue())
			Expect(verifyErr.Code).To(Equal("INVALID_SECRET"))
			Expect(errors.Is(verifyErr.Err, ErrInvalidSecret)).To(BeTrue())
			Expect(err.Error()).To(Equal("Invalid secret: invalid webhook secret"))
		})
	})

	Context("when handling deliveries", func() {
		It("decodes the form into an event", func() {
			rec := deliver(wh, http.MethodPost, "/mailchimp?secret=s3cr3t", unsubscribeForm)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(received).To(HaveLen(1))

			ev := received[0]
			Expect(ev.Type).To(Equal(mailchimp.EventUnsubscribe))
			Expect(ev.Data.Action).To(Equal("unsub"))
			Expect(ev.Data.Reason).To(Equal("manual"))
			Expect(ev.Data.Email).To(Equal("api+unsub@mailchimp.com"))
			Expect(ev.Data.CampaignID).To(Equal("cb398d21d2"))
			Expect(ev.Data.Merge("FNAME")).To(Equal("MailChimp"))
		})

		It("rejects unknown event types", func() {
			rec := deliver(wh, http.MethodPost, "/mailchimp?secret=s3cr3t", "type=contact.created&data%5Bemail%5D=a%40b.com")
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(received).To(BeEmpty())
		})

		It("rejects a form without a type", func() {
			rec := deliver(wh, http.MethodPost, "/mailchimp?secret=s3cr3t", "data%5Bemail%5D=a%40b.com")
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("rejects other methods", func() {
			rec := deliver(wh, http.MethodPut, "/mailchimp?secret=s3cr3t", unsubscribeForm)
			Expect(rec.Code).To(Equal(http.StatusMethodNotAllowed))
			Expect(rec.Header().Get("Allow")).To(Equal("GET, POST"))
		})

		It("recovers from handler panics", func() {
			wh.Handler = HandlerFunc(func(context.Context, Request) Response {
				panic("boom")
			})
			rec := deliver(wh, http.MethodPost, "/mailchimp?secret=s3cr3t", unsubscribeForm)
			Expect(rec.Code).To(Equal(http.StatusInternalServerError))
		})

		It("passes the handler's status through", func() {
			wh.Handler = HandlerFunc(func(context.Context, Request) Response {
				return BadRequestResponse()
			})
			rec := deliver(wh, http.MethodPost, "/mailchimp?secret=s3cr3t", unsubscribeForm)
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("acknowledges a zero response", func() {
			wh.Handler = HandlerFunc(func(context.Context, Request) Response {
				return Response{}
			})
			rec := deliver(wh, http.MethodPost, "/mailchimp?secret=s3cr3t", unsubscribeForm)
			Expect(rec.Code).To(Equal(http.StatusOK))
		})
	})

	Context("when tracing", func() {
		var recorder *tracetest.SpanRecorder

		BeforeEach(func() {
			previous := otel.GetTracerProvider()
			recorder = tracetest.NewSpanRecorder()
			otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
			DeferCleanup(func() { otel.SetTracerProvider(previous) })
		})

		It("records a server span per delivery", func() {
			rec := deliver(wh, http.MethodPost, "/mailchimp?secret=s3cr3t", unsubscribeForm)
			Expect(rec.Code).To(Equal(http.StatusOK))

			spans := recorder.Ended()
			Expect(spans).To(HaveLen(1))
			Expect(spans[0].Name()).To(Equal("mailchimp webhook /mailchimp"))
			Expect(spans[0].SpanKind()).To(Equal(trace.SpanKindServer))
			Expect(spans[0].Attributes()).To(ContainElements(
				attribute.String("mailchimp.event.type", "unsubscribe"),
				attribute.String("mailchimp.list", "a6b5da1054"),
			))
		})

		It("marks the span failed when the handler panics", func() {
			wh.Handler = HandlerFunc(func(context.Context, Request) Response {
				panic("boom")
			})
			deliver(wh, http.MethodPost, "/mailchimp?secret=s3cr3t", unsubscribeForm)

			spans := recorder.Ended()
			Expect(spans).To(HaveLen(1))
			Expect(spans[0].Status().Code).To(Equal(codes.Error))
		})
	})

	Context("when serving over HTTP", func() {
		It("accepts deliveries end to end", func() {
			srv := httptest.NewServer(wh)
			DeferCleanup(srv.Close)

			resp, err := http.PostForm(srv.URL+"/mailchimp?secret=s3cr3t", url.Values{
				"type":          {mailchimp.EventCleaned},
				"fired_at":      {"2009-03-26 22:01:00"},
				"data[list_id]": {"a6b5da1054"},
				"data[reason]":  {"hard"},
				"data[email]":   {"api+cleaned@mailchimp.com"},
			})
			Expect(err).NotTo(HaveOccurred())
			DeferCleanup(resp.Body.Close)

			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(received).To(HaveLen(1))
			Expect(received[0].Data.Reason).To(Equal("hard"))
		})
	})
})

var _ = Describe("Mux", func() {
	var mux *Mux

	BeforeEach(func() {
		mux = NewMux()
	})

	It("routes by event type", func() {
		var got []string
		mux.OnFunc(mailchimp.EventSubscribe, func(_ context.Context, req Request) Response {
			got = append(got, "subscribe:"+req.Event.Data.Email)
			return OkResponse()
		})
		mux.OnFunc(mailchimp.EventCampaign, func(_ context.Context, req Request) Response {
			got = append(got, "campaign:"+req.Event.Data.Status)
			return BadRequestResponse()
		})

		ctx := context.Background()
		Expect(mux.Handle(ctx, Request{Event: &mailchimp.WebhookEvent{
			Type: mailchimp.EventSubscribe,
			Data: mailchimp.WebhookData{Email: "a@b.com"},
		}})).To(Equal(OkResponse()))
		Expect(mux.Handle(ctx, Request{Event: &mailchimp.WebhookEvent{
			Type: mailchimp.EventCampaign,
			Data: mailchimp.WebhookData{Status: "sent"},
		}})).To(Equal(BadRequestResponse()))

		Expect(got).To(Equal([]string{"subscribe:a@b.com", "campaign:sent"}))
	})

	It("acknowledges events without a handler", func() {
		resp := mux.Handle(context.Background(), Request{Event: &mailchimp.WebhookEvent{Type: mailchimp.EventProfile}})
		Expect(resp.HttpStatus).To(Equal(http.StatusOK))
	})

	It("replaces a handler registered twice", func() {
		mux.On(mailchimp.EventProfile, HandlerFunc(func(context.Context, Request) Response { return BadRequestResponse() }))
		mux.On(mailchimp.EventProfile, LogEvents())

		resp := mux.Handle(context.Background(), Request{Event: &mailchimp.WebhookEvent{Type: mailchimp.EventProfile}})
		Expect(resp.HttpStatus).To(Equal(http.StatusOK))
	})
})
