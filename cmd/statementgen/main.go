// Command statementgen writes the per-service builder types of
// internal/services from the catalog's YAML tables.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"

	"github.com/spf13/cobra"

	"iamcatalog/internal/arn"
	"iamcatalog/internal/catalog"
	"iamcatalog/internal/domain"
	"iamcatalog/internal/logging"
)

func main() {
	var catalogDir, outDir, pkg string

	rootCmd := &cobra.Command{
		Use:   "statementgen",
		Short: "Generate per-service statement builders from the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(catalogDir, outDir, pkg)
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVar(&catalogDir, "catalog", "internal/catalog/services", "Directory holding the service YAML tables")
	rootCmd.Flags().StringVar(&outDir, "out", "internal/services", "Directory to write generated files to")
	rootCmd.Flags().StringVar(&pkg, "package", "services", "Package name of the generated files")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generate(catalogDir, outDir, pkg string) error {
	logging.SetLogLevel(logging.LogLevelWarn)

	reg, err := catalog.LoadDir(catalogDir)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	for _, def := range reg.Services() {
		src, err := render(pkg, def)
		if err != nil {
			return fmt.Errorf("service %s: %w", def.Prefix, err)
		}
		file := filepath.Join(outDir, FileName(def.Prefix))
		if err := os.WriteFile(file, src, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", file, err)
		}
		fmt.Printf("wrote %s (%d actions)\n", file, len(def.Actions))
	}
	return nil
}

// FileName is the generated file for a service prefix
func FileName(prefix string) string {
	return "zz_generated_" + strings.ReplaceAll(prefix, "-", "") + ".go"
}

type actionData struct {
	Name        string
	ID          string
	Description string
	AccessLevel domain.AccessLevel
	URL         string
}

type paramData struct {
	Token string
	Param string
}

type resourceData struct {
	Name   string
	Method string
	ARN    string
	Params []paramData
}

type serviceData struct {
	Package       string
	Type          string
	Prefix        string
	Name          string
	URL           string
	Actions       []actionData
	ResourceTypes []resourceData
}

func render(pkg string, def *domain.ServiceDefinition) ([]byte, error) {
	data := serviceData{
		Package: pkg,
		Type:    TypeName(def.Prefix),
		Prefix:  def.Prefix,
		Name:    def.Name,
		URL:     def.DocumentationURL,
	}
	for _, name := range def.Actions.Names() {
		a := def.Actions[name]
		data.Actions = append(data.Actions, actionData{
			Name:        name,
			ID:          def.ActionID(name),
			Description: docSentence(a.Description),
			AccessLevel: a.AccessLevel,
			URL:         a.URL,
		})
	}
	for _, name := range def.ResourceTypes.Names() {
		rt := def.ResourceTypes[name]
		r := resourceData{Name: name, Method: "On" + TypeName(name), ARN: rt.ARN}
		for _, tok := range arn.Placeholders(rt.ARN) {
			if tok == arn.Partition || tok == arn.Region || tok == arn.Account {
				continue
			}
			r.Params = append(r.Params, paramData{Token: tok, Param: ParamName(tok)})
		}
		data.ResourceTypes = append(data.ResourceTypes, r)
	}

	var buf bytes.Buffer
	if err := serviceTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("generated code does not parse: %w", err)
	}
	return src, nil
}

// docSentence folds a description onto one line ending in a period, so that
// gofmt does not read it as a doc heading
func docSentence(desc string) string {
	desc = strings.Join(strings.Fields(desc), " ")
	if desc != "" && !strings.HasSuffix(desc, ".") {
		desc += "."
	}
	return desc
}

// TypeName turns a prefix or resource type name into an exported identifier:
// "compute-optimizer" -> "ComputeOptimizer", "loadbalancer/app/" -> "LoadbalancerApp"
func TypeName(s string) string {
	var b strings.Builder
	upper := true
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			upper = true
			continue
		}
		if upper {
			b.WriteRune(unicode.ToUpper(r))
			upper = false
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParamName turns an ARN token into a parameter name: "ResourceId" -> "resourceId".
// Keywords and the receiver name get a "Value" suffix.
func ParamName(tok string) string {
	if tok == "" {
		return tok
	}
	runes := []rune(tok)
	runes[0] = unicode.ToLower(runes[0])
	name := string(runes)
	if token.IsKeyword(name) || name == "s" {
		name += "Value"
	}
	return name
}

var serviceTemplate = template.Must(template.New("service").Parse(`// Code generated by statementgen. DO NOT EDIT.

package {{.Package}}

// {{.Type}} builds statements for {{.Name}} ({{.Prefix}}).
//
// {{.URL}}
type {{.Type}} struct {
	*Service
}

// New{{.Type}} returns an empty statement builder for {{.Prefix}}
func New{{.Type}}() *{{.Type}} {
	return &{{.Type}}{Service: newDefault({{printf "%q" .Prefix}})}
}
{{range .Actions}}
// {{.Name}} adds {{.ID}}.
//{{if .Description}}
// {{.Description}}
//{{end}}
// Access Level: {{.AccessLevel}}
//
// {{.URL}}
func (s *{{$.Type}}) {{.Name}}() *{{$.Type}} {
	s.Add({{printf "%q" .ID}})
	return s
}
{{end}}{{range .ResourceTypes}}
// {{.Method}} restricts the statement to a {{.Name}} resource:
//
//	{{.ARN}}
//
// Partition, region and account come from the builder's resolver. A failure
// is reported by Err.
func (s *{{$.Type}}) {{.Method}}({{range $i, $p := .Params}}{{if $i}}, {{end}}{{$p.Param}}{{end}}{{if .Params}} string{{end}}) *{{$.Type}} {
	s.onResource({{printf "%q" .Name}}, map[string]string{ {{- range .Params}}
		{{printf "%q" .Token}}: {{.Param}},{{end}}
	})
	return s
}
{{end}}`))
