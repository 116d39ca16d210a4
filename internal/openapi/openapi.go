// Package openapi describes the operation registry as an OpenAPI 3 document.
package openapi

import (
	"context"
	"fmt"
	"slices"

	"github.com/getkin/kin-openapi/openapi3"
	jsoniter "github.com/json-iterator/go"

	"go.miloapis.com/mailchimp/pkg/mailchimp"
	"go.miloapis.com/mailchimp/pkg/version"
)

const (
	openAPIVersion = "3.0.3"
	errorSchemaRef = "#/components/schemas/Error"
)

// Options controls the generated document.
type Options struct {
	Title    string
	Endpoint string
	// Groups restricts the document to the named groups. Empty means all.
	Groups []string
}

// Build returns the document for every operation in reg.
func Build(ctx context.Context, reg *mailchimp.Registry, opts Options) (*openapi3.T, error) {
	if opts.Title == "" {
		opts.Title = "Mailchimp API"
	}
	if opts.Endpoint == "" {
		opts.Endpoint = mailchimp.EndpointForKey("")
	}

	doc := &openapi3.T{
		OpenAPI: openAPIVersion,
		Info: &openapi3.Info{
			Title:       opts.Title,
			Version:     "2.0",
			Description: fmt.Sprintf("Generated by mailchimp %s", version.Version),
		},
		Servers: openapi3.Servers{{URL: opts.Endpoint}},
		Paths:   openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				"Error": openapi3.NewSchemaRef("", errorSchema()),
			},
		},
	}

	known := reg.Groups()
	groups := opts.Groups
	if len(groups) == 0 {
		groups = known
	}

	for _, group := range groups {
		if !slices.Contains(known, group) {
			return nil, fmt.Errorf("unknown group %q", group)
		}
		ops := reg.GroupOperations(group)
		doc.Tags = append(doc.Tags, &openapi3.Tag{Name: group, Description: reg.GroupDoc(group)})

		for _, d := range ops {
			item := doc.Paths.Value(d.Path)
			if item == nil {
				item = &openapi3.PathItem{}
				doc.Paths.Set(d.Path, item)
			}
			if item.GetOperation(d.Method) != nil {
				return nil, fmt.Errorf("%s %s is bound to more than one operation", d.Method, d.Path)
			}
			item.SetOperation(d.Method, operation(d))
		}
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate document: %w", err)
	}
	return doc, nil
}

// Marshal renders doc as indented JSON.
func Marshal(doc *openapi3.T) ([]byte, error) {
	return jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(doc, "", "  ")
}

func operation(d *mailchimp.Descriptor) *openapi3.Operation {
	op := openapi3.NewOperation()
	op.OperationID = d.Group + "." + d.Name
	op.Summary = d.Doc
	op.Tags = []string{d.Group}

	body := Schema(d.Params)
	body.WithProperty("apikey", openapi3.NewStringSchema().WithMinLength(1))
	body.Required = append(body.Required, "apikey")
	op.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchema(body),
	}

	result := openapi3.NewSchema()
	if d.Result != nil {
		result = Schema(d.Result)
	}
	op.Responses = openapi3.NewResponses(
		openapi3.WithStatus(200, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().WithDescription("Successful result").WithJSONSchema(result),
		}),
		openapi3.WithName("default", openapi3.NewResponse().
			WithDescription("Error envelope").
			WithContent(openapi3.NewContentWithJSONSchemaRef(openapi3.NewSchemaRef(errorSchemaRef, errorSchema()))),
		),
	)
	return op
}

// Schema converts a shape into a JSON schema. Objects stay open to unknown
// properties.
func Schema(s *mailchimp.Shape) *openapi3.Schema {
	if s == nil {
		return openapi3.NewSchema()
	}
	switch s.Kind {
	case mailchimp.KindString:
		return openapi3.NewStringSchema()
	case mailchimp.KindNumber:
		return openapi3.NewFloat64Schema()
	case mailchimp.KindBoolean:
		return openapi3.NewBoolSchema()
	case mailchimp.KindArray:
		return openapi3.NewArraySchema().WithItems(Schema(s.Items))
	case mailchimp.KindObject:
		obj := openapi3.NewObjectSchema()
		for _, name := range s.FieldNames() {
			f := s.Fields[name]
			obj.WithProperty(name, Schema(f))
			if f.Required {
				obj.Required = append(obj.Required, name)
			}
		}
		return obj
	default:
		return openapi3.NewSchema()
	}
}

func errorSchema() *openapi3.Schema {
	s := openapi3.NewObjectSchema().
		WithProperty("status", openapi3.NewStringSchema().WithEnum("error")).
		WithProperty("code", openapi3.NewIntegerSchema()).
		WithProperty("name", openapi3.NewStringSchema()).
		WithProperty("error", openapi3.NewStringSchema())
	s.Required = []string{"status", "code", "name", "error"}
	return s
}
