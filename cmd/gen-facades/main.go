// Command gen-facades writes the resource-group facades of pkg/mailchimp from
// catalog.yaml. It is run by go generate in pkg/mailchimp.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"
	"unicode"

	"gopkg.in/yaml.v3"
)

// catalog mirrors the names and docs of mailchimp.Catalog. Shapes are not
// needed to generate the facades.
type catalog struct {
	Groups []group `yaml:"groups"`
}

type group struct {
	Name       string      `yaml:"name"`
	Doc        string      `yaml:"doc"`
	Operations []operation `yaml:"operations"`
}

type operation struct {
	Name   string `yaml:"name"`
	Doc    string `yaml:"doc"`
	Method string `yaml:"method"`
	Path   string `yaml:"path"`
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "gen-facades: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("gen-facades", flag.ContinueOnError)
	catalogFile := fs.String("catalog", "catalog.yaml", "path to the operation catalogue")
	outFile := fs.String("out", "zz_generated.facades.go", "path of the generated Go file")
	pkg := fs.String("package", "mailchimp", "package name of the generated file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := os.ReadFile(*catalogFile)
	if err != nil {
		return fmt.Errorf("reading catalog: %w", err)
	}
	var c catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return fmt.Errorf("parsing %s: %w", *catalogFile, err)
	}

	src, err := generate(*pkg, &c)
	if err != nil {
		return err
	}
	if err := os.WriteFile(*outFile, src, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", *outFile, err)
	}

	n := 0
	for _, g := range c.Groups {
		n += len(g.Operations)
	}
	fmt.Printf("Generated %s: %d groups, %d operations\n", *outFile, len(c.Groups), n)
	return nil
}

func generate(pkg string, c *catalog) ([]byte, error) {
	seen := map[string]bool{}
	for _, g := range c.Groups {
		if g.Name == "" {
			return nil, fmt.Errorf("group without a name")
		}
		if seen[g.Name] {
			return nil, fmt.Errorf("group %s declared twice", g.Name)
		}
		seen[g.Name] = true
		ops := map[string]bool{}
		for _, op := range g.Operations {
			if ops[op.Name] {
				return nil, fmt.Errorf("operation %s/%s declared twice", g.Name, op.Name)
			}
			ops[op.Name] = true
		}
	}

	var buf bytes.Buffer
	if err := facadesTemplate.Execute(&buf, struct {
		Package string
		Groups  []group
	}{pkg, c.Groups}); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return src, nil
}

// exported turns "inviteResend" into "InviteResend".
func exported(name string) string {
	if name == "" {
		return name
	}
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func kebab(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

func route(g group, op operation) string {
	method := op.Method
	if method == "" {
		method = "POST"
	}
	path := op.Path
	if path == "" {
		path = "/" + kebab(g.Name) + "/" + kebab(op.Name) + ".json"
	}
	return method + " " + path
}

var facadesTemplate = template.Must(template.New("facades").Funcs(template.FuncMap{
	"exported": exported,
	"route":    route,
}).Parse(`// Code generated by gen-facades from catalog.yaml. DO NOT EDIT.

package {{.Package}}

import "context"

type facades struct {
{{- range .Groups}}
	{{exported .Name}} *{{exported .Name}}
{{- end}}
}

func (f *facades) init(c *Client) {
{{- range .Groups}}
	f.{{exported .Name}} = &{{exported .Name}}{core: c}
{{- end}}
}
{{range $g := .Groups}}
// {{exported $g.Name}} binds the {{$g.Name}} operations.{{if $g.Doc}} {{$g.Doc}}{{end}}
type {{exported $g.Name}} struct {
	core *Client
}
{{range $op := $g.Operations}}
// {{exported $op.Name}} invokes {{$g.Name}}/{{$op.Name}}.{{if $op.Doc}}
//
// {{$op.Doc}}{{end}}
//
// API: {{route $g $op}}
func (g *{{exported $g.Name}}) {{exported $op.Name}}(ctx context.Context, params any, c Completion) *Invocation {
	return g.core.Invoke(ctx, "{{$g.Name}}", "{{$op.Name}}", params, c)
}
{{end}}{{end}}`))
