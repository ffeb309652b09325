package catalog

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
	"time"
	"unicode"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"iamcatalog/internal/arn"
	"iamcatalog/internal/domain"
	"iamcatalog/internal/logging"
)

//go:embed services/*.yaml
var embeddedServices embed.FS

const embeddedDir = "services"

// DecodeService parses one YAML service table and checks it for consistency
func DecodeService(data []byte) (*domain.ServiceDefinition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var def domain.ServiceDefinition
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("failed to decode service table: %w", err)
	}
	return finish(&def)
}

// DecodeServiceTOML parses one TOML service table, with the same keys as the
// YAML form, and checks it for consistency
func DecodeServiceTOML(data []byte) (*domain.ServiceDefinition, error) {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var def domain.ServiceDefinition
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("failed to decode service table: %w", err)
	}
	return finish(&def)
}

func finish(def *domain.ServiceDefinition) (*domain.ServiceDefinition, error) {
	if def.Actions == nil {
		def.Actions = domain.Actions{}
	}
	if def.ResourceTypes == nil {
		def.ResourceTypes = domain.ResourceTypes{}
	}
	for name, action := range def.Actions {
		action.Name = name
		def.Actions[name] = action
	}

	if err := Validate(def); err != nil {
		return nil, err
	}
	return def, nil
}

// Validate checks the invariants every service table must hold
func Validate(def *domain.ServiceDefinition) error {
	if def.Prefix == "" {
		return fmt.Errorf("service table has no prefix")
	}
	if strings.ContainsAny(def.Prefix, ": *") || !unicode.IsLetter(rune(def.Prefix[0])) {
		return fmt.Errorf("service %s: prefix contains an illegal character", def.Prefix)
	}
	if !singleLine(def.Name, def.DocumentationURL) {
		return fmt.Errorf("service %s: name and documentation URL must be single lines", def.Prefix)
	}

	for name, action := range def.Actions {
		if !isIdentifier(name) {
			return fmt.Errorf("service %s: illegal action name %q", def.Prefix, name)
		}
		if !singleLine(action.Description, action.URL) {
			return fmt.Errorf("service %s: action %s has a multi-line description or URL", def.Prefix, name)
		}
		if !action.AccessLevel.Valid() {
			return fmt.Errorf("service %s: action %s has unknown access level %q", def.Prefix, name, action.AccessLevel)
		}
		for rt := range action.ResourceTypes {
			if _, ok := def.ResourceTypes[rt]; !ok {
				return fmt.Errorf("service %s: action %s references unknown resource type %q", def.Prefix, name, rt)
			}
		}
	}

	for name, rt := range def.ResourceTypes {
		if rt.Name != name {
			return fmt.Errorf("service %s: resource type %q is named %q", def.Prefix, name, rt.Name)
		}
		if !singleLine(name, rt.ARN) {
			return fmt.Errorf("service %s: resource type %q spans several lines", def.Prefix, name)
		}
		if !strings.HasPrefix(rt.ARN, "arn:${Partition}:") {
			return fmt.Errorf("service %s: resource type %s has ARN template %q without a partition token", def.Prefix, name, rt.ARN)
		}
		for _, tok := range arn.Placeholders(rt.ARN) {
			if !isIdentifier(tok) {
				return fmt.Errorf("service %s: resource type %s has illegal ARN token %q", def.Prefix, name, tok)
			}
		}
	}
	return nil
}

// isIdentifier reports whether s is a letter followed by letters and digits
func isIdentifier(s string) bool {
	for i, r := range s {
		if !unicode.IsLetter(r) && (i == 0 || !unicode.IsDigit(r)) {
			return false
		}
	}
	return s != ""
}

func singleLine(values ...string) bool {
	for _, v := range values {
		if strings.ContainsAny(v, "\r\n") {
			return false
		}
	}
	return true
}

// Load reads every *.yaml, *.yml and *.toml file in dir of fsys into a registry
func Load(fsys fs.FS, dir string) (*Registry, error) {
	start := time.Now()
	logging.LogOperationStart("catalog.Load", map[string]interface{}{"dir": dir})

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		logging.LogOperationEnd("catalog.Load", time.Since(start), false, 0, 0, err)
		return nil, fmt.Errorf("failed to list service tables in %s: %w", dir, err)
	}

	reg := newRegistry()
	for _, entry := range entries {
		decode := decoderFor(entry.Name())
		if entry.IsDir() || decode == nil {
			continue
		}

		file := path.Join(dir, entry.Name())
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			logging.LogOperationEnd("catalog.Load", time.Since(start), false, len(entries), reg.Len(), err)
			return nil, fmt.Errorf("failed to read %s: %w", file, err)
		}

		def, err := decode(data)
		if err != nil {
			logging.LogOperationEnd("catalog.Load", time.Since(start), false, len(entries), reg.Len(), err)
			return nil, fmt.Errorf("%s: %w", file, err)
		}

		if err := reg.add(def); err != nil {
			logging.LogOperationEnd("catalog.Load", time.Since(start), false, len(entries), reg.Len(), err)
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		logging.LogDebug("Loaded service table", map[string]interface{}{
			"service": def.Prefix,
			"actions": len(def.Actions),
			"file":    file,
		})
	}

	logging.LogOperationEnd("catalog.Load", time.Since(start), true, len(entries), reg.Len(), nil)
	return reg, nil
}

// LoadDir reads service tables from a directory on disk
func LoadDir(dir string) (*Registry, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("catalog directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("catalog directory %s is not a directory", dir)
	}
	return Load(os.DirFS(dir), ".")
}

// LoadWithOverrides returns the embedded catalog with the tables found in
// dir replacing or extending it. An empty dir returns the embedded catalog.
func LoadWithOverrides(dir string) (*Registry, error) {
	if dir == "" {
		return Default(), nil
	}
	overrides, err := LoadDir(dir)
	if err != nil {
		return nil, err
	}
	return Default().Merge(overrides), nil
}

func loadEmbedded() (*Registry, error) {
	return Load(embeddedServices, embeddedDir)
}

func decoderFor(name string) func([]byte) (*domain.ServiceDefinition, error) {
	switch {
	case strings.HasSuffix(name, ".yaml"), strings.HasSuffix(name, ".yml"):
		return DecodeService
	case strings.HasSuffix(name, ".toml"):
		return DecodeServiceTOML
	}
	return nil
}
