package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"iamcatalog/internal/catalog"
)

func TestTypeName(t *testing.T) {
	cases := map[string]string{
		"dlm":                "Dlm",
		"compute-optimizer":  "ComputeOptimizer",
		"loadbalancer/app/":  "LoadbalancerApp",
		"regex-pattern-set":  "RegexPatternSet",
		"ConfigurationStore": "ConfigurationStore",
	}
	for in, want := range cases {
		if got := TypeName(in); got != want {
			t.Errorf("TypeName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParamName(t *testing.T) {
	cases := map[string]string{
		"ResourceId": "resourceId",
		"Name":       "name",
		"Type":       "typeValue",
		"S":          "sValue",
		"":           "",
	}
	for in, want := range cases {
		if got := ParamName(in); got != want {
			t.Errorf("ParamName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFileName(t *testing.T) {
	if got := FileName("compute-optimizer"); got != "zz_generated_computeoptimizer.go" {
		t.Errorf("Unexpected file name: %s", got)
	}
}

func TestRender_Dlm(t *testing.T) {
	src, err := render("services", catalog.Default().MustLookup("dlm"))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	out := string(src)

	for _, want := range []string{
		"// Code generated by statementgen. DO NOT EDIT.",
		"func NewDlm() *Dlm {",
		"func (s *Dlm) CreateLifecyclePolicy() *Dlm {",
		`s.Add("dlm:CreateLifecyclePolicy")`,
		"// Access Level: Tagging",
		"func (s *Dlm) OnPolicy(resourceName string) *Dlm {",
		`"ResourceName": resourceName,`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Generated source is missing %q", want)
		}
	}
}

func TestDocSentence(t *testing.T) {
	cases := map[string]string{
		"Lists tags for a cloud9 environment": "Lists tags for a cloud9 environment.",
		"Grants permission to get a thing.":   "Grants permission to get a thing.",
		"Spans\nlines  here":                  "Spans lines here.",
		"":                                    "",
	}
	for in, want := range cases {
		if got := docSentence(in); got != want {
			t.Errorf("docSentence(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRender_NoDocHeadings(t *testing.T) {
	src, err := render("services", catalog.Default().MustLookup("cloud9"))
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.Contains(string(src), "// # ") {
		t.Error("Descriptions must not be formatted as doc headings")
	}
	if !strings.Contains(string(src), "// Lists tags for a cloud9 environment.\n") {
		t.Error("Expected the description to end with a period")
	}
}

func TestRender_MatchesCommittedFiles(t *testing.T) {
	for _, def := range catalog.Default().Services() {
		src, err := render("services", def)
		if err != nil {
			t.Fatalf("render %s: %v", def.Prefix, err)
		}
		committed, err := os.ReadFile(filepath.Join("..", "..", "internal", "services", FileName(def.Prefix)))
		if err != nil {
			t.Fatalf("read generated file for %s: %v", def.Prefix, err)
		}
		if string(src) != string(committed) {
			t.Errorf("%s is stale, rerun go generate ./internal/services", FileName(def.Prefix))
		}
	}
}

func TestGenerate(t *testing.T) {
	out := t.TempDir()
	if err := generate(filepath.Join("..", "..", "internal", "catalog", "services"), out, "services"); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	entries, err := os.ReadDir(out)
	if err != nil {
		t.Fatalf("read output dir: %v", err)
	}
	if len(entries) != catalog.Default().Len() {
		t.Errorf("Expected %d generated files, got %d", catalog.Default().Len(), len(entries))
	}

	if err := generate(filepath.Join(out, "missing"), out, "services"); err == nil {
		t.Error("Expected an error for a missing catalog directory")
	}
}
