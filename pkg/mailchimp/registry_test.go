package mailchimp

import (
	"reflect"
	"testing"

	. "github.com/onsi/gomega"
)

func testDescriptor(group, name string) *Descriptor {
	return &Descriptor{
		Group:  group,
		Name:   name,
		Params: Object(map[string]*Shape{"cid": Req(Of(KindString))}),
		Result: Object(map[string]*Shape{"complete": Req(Of(KindBoolean))}),
	}
}

func TestRegistryRoundTrip(t *testing.T) {
	g := NewWithT(t)

	descs := []*Descriptor{
		testDescriptor("campaigns", "send"),
		testDescriptor("campaigns", "pause"),
		testDescriptor("lists", "webhookDel"),
	}
	r, err := NewRegistry(descs...)
	g.Expect(err).NotTo(HaveOccurred())

	for _, d := range descs {
		got, err := r.Lookup(d.Group, d.Name)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(got.Group).To(Equal(d.Group))
		g.Expect(got.Name).To(Equal(d.Name))
		g.Expect(got.Params).To(Equal(d.Params))
		g.Expect(got.Result).To(Equal(d.Result))
		g.Expect(got.Method).To(Equal("POST"))
		g.Expect(got.Path).To(Equal(DefaultPath(d.Group, d.Name)))
	}

	got, _ := r.Lookup("lists", "webhookDel")
	g.Expect(got.Path).To(Equal("/lists/webhook-del.json"))
}

func TestRegistryDefaultRoundTrip(t *testing.T) {
	g := NewWithT(t)

	r := DefaultRegistry()
	g.Expect(r.Sealed()).To(BeTrue())
	for _, d := range r.Operations() {
		got, err := r.Lookup(d.Group, d.Name)
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(got).To(BeIdenticalTo(d))
	}
}

func TestRegistryLookupIsIdempotent(t *testing.T) {
	g := NewWithT(t)

	r := MustNewRegistry(testDescriptor("campaigns", "send"))
	first, err := r.Lookup("campaigns", "send")
	g.Expect(err).NotTo(HaveOccurred())
	snapshot := first.Clone()

	for range 100 {
		again, err := r.Lookup("campaigns", "send")
		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(reflect.DeepEqual(again, snapshot)).To(BeTrue())
	}
}

func TestRegistryRegisterCopiesDescriptor(t *testing.T) {
	g := NewWithT(t)

	d := testDescriptor("campaigns", "send")
	r := MustNewRegistry(d)
	d.Params.Fields["cid"].Kind = KindNumber

	got, _ := r.Lookup("campaigns", "send")
	g.Expect(got.Params.Fields["cid"].Kind).To(Equal(KindString))
}

func TestRegistryDuplicate(t *testing.T) {
	g := NewWithT(t)

	_, err := NewRegistry(testDescriptor("campaigns", "send"), testDescriptor("campaigns", "send"))
	g.Expect(err).To(HaveOccurred())
	g.Expect(IsDuplicateOperation(err)).To(BeTrue())

	g.Expect(func() {
		MustNewRegistry(testDescriptor("lists", "list"), testDescriptor("lists", "list"))
	}).To(Panic())
}

func TestCatalogDuplicatePanicsAtStartup(t *testing.T) {
	g := NewWithT(t)

	c, err := ParseCatalog([]byte(`
groups:
  - name: lists
    operations:
      - name: list
      - name: list
`))
	g.Expect(err).NotTo(HaveOccurred())
	_, err = c.Registry()
	g.Expect(IsDuplicateOperation(err)).To(BeTrue())
}

func TestRegistryUnknown(t *testing.T) {
	g := NewWithT(t)

	r := MustNewRegistry(testDescriptor("campaigns", "send"))
	_, err := r.Lookup("campaigns", "explode")
	g.Expect(IsUnknownOperation(err)).To(BeTrue())
	_, err = r.Lookup("unknown", "send")
	g.Expect(IsUnknownOperation(err)).To(BeTrue())
}

func TestRegistrySealed(t *testing.T) {
	g := NewWithT(t)

	r := MustNewRegistry(testDescriptor("campaigns", "send"))
	g.Expect(r.Register(testDescriptor("campaigns", "pause"))).To(MatchError(ErrRegistrySealed))
	g.Expect(r.RegisterGroup("mobile", "")).To(MatchError(ErrRegistrySealed))
	g.Expect(r.Len()).To(Equal(1))

	r.Seal()
	g.Expect(r.Sealed()).To(BeTrue())
}

func TestRegistryRejectsIncompleteDescriptor(t *testing.T) {
	g := NewWithT(t)

	r := newOpenRegistry()
	g.Expect(r.Register(&Descriptor{Group: "lists"})).To(HaveOccurred())
	g.Expect(r.Register(nil)).To(HaveOccurred())
}

func TestRegistryOrdering(t *testing.T) {
	g := NewWithT(t)

	r := MustNewRegistry(
		testDescriptor("lists", "subscribe"),
		testDescriptor("campaigns", "send"),
		testDescriptor("lists", "batchSubscribe"),
	)
	var keys []string
	for _, d := range r.Operations() {
		keys = append(keys, d.Key())
	}
	g.Expect(keys).To(Equal([]string{"campaigns/send", "lists/batchSubscribe", "lists/subscribe"}))
	g.Expect(r.Groups()).To(Equal([]string{"campaigns", "lists"}))
	g.Expect(r.GroupOperations("lists")).To(HaveLen(2))
}

func TestDefaultRegistryCatalogue(t *testing.T) {
	g := NewWithT(t)

	r := DefaultRegistry()
	g.Expect(r.Len()).To(Equal(120))
	g.Expect(r.Groups()).To(ConsistOf(
		"campaigns", "conversations", "ecomm", "folders", "gallery", "goal", "helper",
		"lists", "mobile", "neapolitan", "reports", "templates", "users", "vip",
	))
	g.Expect(r.GroupOperations("mobile")).To(BeEmpty())
	g.Expect(r.GroupOperations("neapolitan")).To(BeEmpty())

	counts := map[string]int{
		"folders": 4, "templates": 6, "users": 7, "helper": 10, "conversations": 3, "ecomm": 3,
		"lists": 40, "campaigns": 16, "vip": 4, "reports": 18, "gallery": 7, "goal": 2,
	}
	for group, n := range counts {
		g.Expect(r.GroupOperations(group)).To(HaveLen(n), "group %s", group)
	}

	d, err := r.Lookup("reports", "Orders")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(d.Path).To(Equal("/reports/ecomm-orders.json"))

	d, err = r.Lookup("helper", "inlineCss")
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(d.Path).To(Equal("/helper/inline-css.json"))
}

func TestFacadesCoverRegistry(t *testing.T) {
	g := NewWithT(t)

	c, err := New("key-us1", WithTransport(TransportFunc(nil)))
	g.Expect(err).NotTo(HaveOccurred())

	client := reflect.ValueOf(c).Elem()
	for _, group := range c.Registry().Groups() {
		facade := client.FieldByName(exportedName(group))
		g.Expect(facade.IsValid()).To(BeTrue(), "missing facade for %s", group)
		g.Expect(facade.IsNil()).To(BeFalse(), "facade %s not initialised", group)

		ops := c.Registry().GroupOperations(group)
		g.Expect(facade.NumMethod()).To(Equal(len(ops)), "facade %s is out of date", group)
		for _, d := range ops {
			g.Expect(facade.MethodByName(exportedName(d.Name)).IsValid()).To(BeTrue(),
				"facade %s has no method for %s", group, d.Name)
		}
	}
}

func exportedName(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
