package mailchimp

import (
	"encoding/json"
	"testing"

	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v3"
	"k8s.io/apimachinery/pkg/util/validation/field"
)

func TestParseShape(t *testing.T) {
	tests := []struct {
		expr    string
		want    *Shape
		wantErr bool
	}{
		{expr: "string", want: &Shape{Kind: KindString}},
		{expr: "number!", want: &Shape{Kind: KindNumber, Required: true}},
		{expr: "any", want: &Shape{Kind: KindAny}},
		{expr: "@EmailIdentifier!", want: &Shape{Ref: "EmailIdentifier", Required: true}},
		{expr: "[]string", want: &Shape{Kind: KindArray, Items: &Shape{Kind: KindString}}},
		{expr: "[]@EmailIdentifier!", want: &Shape{Kind: KindArray, Required: true, Items: &Shape{Ref: "EmailIdentifier"}}},
		{expr: "[][]number", want: &Shape{Kind: KindArray, Items: &Shape{Kind: KindArray, Items: &Shape{Kind: KindNumber}}}},
		{expr: "array", wantErr: true},
		{expr: "integer", wantErr: true},
		{expr: "@", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			g := NewWithT(t)
			got, err := ParseShape(tt.expr)
			if tt.wantErr {
				g.Expect(err).To(HaveOccurred())
				return
			}
			g.Expect(err).NotTo(HaveOccurred())
			g.Expect(got).To(Equal(tt.want))
		})
	}
}

func TestShapeUnmarshalYAML(t *testing.T) {
	g := NewWithT(t)

	var s Shape
	err := yaml.Unmarshal([]byte(`
fields:
  is_ready: boolean!
  items:
    items:
      fields: {type: string, heading: string}
  when:
    kind: string
    required: true
`), &s)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(s.Kind).To(Equal(KindObject))
	g.Expect(s.Fields["is_ready"]).To(Equal(&Shape{Kind: KindBoolean, Required: true}))
	g.Expect(s.Fields["items"].Kind).To(Equal(KindArray))
	g.Expect(s.Fields["items"].Items.FieldNames()).To(Equal([]string{"heading", "type"}))
	g.Expect(s.Fields["when"]).To(Equal(&Shape{Kind: KindString, Required: true}))

	g.Expect(yaml.Unmarshal([]byte(`kind: integer`), &s)).To(HaveOccurred())
	g.Expect(yaml.Unmarshal([]byte(`[string]`), &s)).To(HaveOccurred())
}

func TestShapeValidate(t *testing.T) {
	shape := Object(map[string]*Shape{
		"id":    Req(Of(KindString)),
		"count": Of(KindNumber),
		"email": Req(Object(map[string]*Shape{"email": Of(KindString)})),
		"batch": ArrayOf(Object(map[string]*Shape{"email": Req(Of(KindString))})),
		"data":  Req(Of(KindAny)),
	})

	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{
			name:  "valid with unknown fields",
			value: `{"id":"a","email":{"email":"a@b.com","extra":1},"data":{"x":[1]},"unknown":true}`,
		},
		{
			name:  "null counts as missing",
			value: `{"id":null,"email":{},"data":1}`,
			want:  []string{"id"},
		},
		{
			name:  "any accepts every kind",
			value: `{"id":"a","email":{},"data":"text"}`,
		},
		{
			name:  "optional with wrong kind",
			value: `{"id":"a","email":{},"data":1,"count":"3"}`,
			want:  []string{"count"},
		},
		{
			name:  "array element paths",
			value: `{"id":"a","email":{},"data":1,"batch":[{"email":"x"},{},{"email":4}]}`,
			want:  []string{"batch[1].email", "batch[2].email"},
		},
		{
			name:  "all missing",
			value: `{}`,
			want:  []string{"data", "email", "id"},
		},
		{
			name:  "root kind",
			value: `"text"`,
			want:  []string{"<root>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)
			value, err := NewJSONCodec().Normalize(json.RawMessage(tt.value))
			g.Expect(err).NotTo(HaveOccurred())

			var got []string
			for _, fe := range shape.Validate(value) {
				got = append(got, fe.Field)
			}
			if tt.want == nil {
				g.Expect(got).To(BeEmpty())
				return
			}
			g.Expect(got).To(Equal(tt.want))
		})
	}
}

func TestShapeValidateErrorTypes(t *testing.T) {
	g := NewWithT(t)

	shape := Object(map[string]*Shape{"id": Req(Of(KindString)), "n": Of(KindNumber)})
	errs := shape.Validate(map[string]any{"n": true})
	g.Expect(errs).To(HaveLen(2))
	g.Expect(errs[0].Type).To(Equal(field.ErrorTypeRequired))
	g.Expect(errs[1].Type).To(Equal(field.ErrorTypeTypeInvalid))
	g.Expect(errs[1].Detail).To(Equal("must be number"))
}

func TestShapeKindsOfGoValues(t *testing.T) {
	g := NewWithT(t)

	g.Expect(kindOf(json.Number("1.5"))).To(Equal(KindNumber))
	g.Expect(kindOf(3)).To(Equal(KindNumber))
	g.Expect(kindOf(2.5)).To(Equal(KindNumber))
	g.Expect(kindOf("x")).To(Equal(KindString))
	g.Expect(kindOf([]any{})).To(Equal(KindArray))
	g.Expect(kindOf(map[string]any{})).To(Equal(KindObject))
	g.Expect(kindOf(nil)).To(Equal(Kind("null")))
}

func TestShapeString(t *testing.T) {
	g := NewWithT(t)

	s := Object(map[string]*Shape{
		"id":     Req(Of(KindString)),
		"emails": Req(ArrayOf(Object(map[string]*Shape{"email": Of(KindString)}))),
	})
	g.Expect(s.String()).To(Equal("{emails: []{email: string}!, id: string!}"))
}

func TestCodecKeepsNumberPrecision(t *testing.T) {
	g := NewWithT(t)

	codec := NewJSONCodec()
	v, err := codec.Normalize(map[string]any{"order_total": json.Number("12345678901234567890.01")})
	g.Expect(err).NotTo(HaveOccurred())
	out, err := codec.Encode(v)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(string(out)).To(Equal(`{"order_total":12345678901234567890.01}`))
}
