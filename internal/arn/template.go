// Package arn resolves the ARN templates stored in the service catalog.
//
// Templates carry ${Partition}, ${Region} and ${Account} plus resource-specific
// tokens such as ${ResourceId}. The catalog stores them verbatim; substitution
// only happens here.
package arn

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const (
	Partition = "Partition"
	Region    = "Region"
	Account   = "Account"
)

var (
	// ErrUnresolvedPlaceholder is returned when a template token has no value
	ErrUnresolvedPlaceholder = errors.New("unresolved ARN placeholder")
	// ErrMalformed is returned by Parse for strings that are not ARNs
	ErrMalformed = errors.New("malformed ARN")
)

var placeholderRegex = regexp.MustCompile(`\$\{([A-Za-z0-9]+)\}`)

// Placeholders returns the token names of a template in order of first appearance
func Placeholders(template string) []string {
	matches := placeholderRegex.FindAllStringSubmatch(template, -1)
	names := make([]string, 0, len(matches))
	seen := make(map[string]bool)
	for _, m := range matches {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// Resolver substitutes template tokens. Partition, Region and Account fall back
// to the resolver's fields when the caller does not pass them.
type Resolver struct {
	Partition string
	Region    string
	Account   string
}

// DefaultResolver matches any region and account in the standard partition
func DefaultResolver() Resolver {
	return Resolver{Partition: "aws", Region: "*", Account: "*"}
}

// Resolve fills every ${Token} in template. Values win over the resolver's defaults.
func (r Resolver) Resolve(template string, values map[string]string) (string, error) {
	lookup := map[string]string{
		Partition: r.Partition,
		Region:    r.Region,
		Account:   r.Account,
	}
	for k, v := range values {
		lookup[k] = v
	}

	missing := make([]string, 0)
	resolved := placeholderRegex.ReplaceAllStringFunc(template, func(token string) string {
		name := token[2 : len(token)-1]
		if v, ok := lookup[name]; ok && v != "" {
			return v
		}
		missing = append(missing, name)
		return token
	})

	if len(missing) > 0 {
		sort.Strings(missing)
		return "", fmt.Errorf("%w: %s in %s", ErrUnresolvedPlaceholder, strings.Join(dedupe(missing), ", "), template)
	}
	return resolved, nil
}

// Resolve fills a template using DefaultResolver
func Resolve(template string, values map[string]string) (string, error) {
	return DefaultResolver().Resolve(template, values)
}

func dedupe(sorted []string) []string {
	out := make([]string, 0, len(sorted))
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}
	return out
}

// ARN is a parsed Amazon Resource Name
type ARN struct {
	Partition string
	Service   string
	Region    string
	Account   string
	Resource  string
}

// String reassembles the ARN
func (a ARN) String() string {
	return strings.Join([]string{"arn", a.Partition, a.Service, a.Region, a.Account, a.Resource}, ":")
}

// Parse splits a concrete ARN into its six colon-separated sections.
// The resource section keeps any further colons.
func Parse(s string) (ARN, error) {
	parts := strings.SplitN(s, ":", 6)
	if len(parts) != 6 || parts[0] != "arn" {
		return ARN{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	if parts[1] == "" || parts[2] == "" || parts[5] == "" {
		return ARN{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}
	return ARN{
		Partition: parts[1],
		Service:   parts[2],
		Region:    parts[3],
		Account:   parts[4],
		Resource:  parts[5],
	}, nil
}

// MatchTemplate reports whether value is an instance of template, with each
// ${Token} standing for one or more characters. Matching is case-insensitive
// because IAM compares condition key names that way.
func MatchTemplate(template, value string) bool {
	parts := placeholderRegex.Split(template, -1)
	quoted := make([]string, len(parts))
	for i, part := range parts {
		quoted[i] = regexp.QuoteMeta(part)
	}
	re, err := regexp.Compile("(?i)^" + strings.Join(quoted, ".+") + "$")
	if err != nil {
		return false
	}
	return re.MatchString(value)
}
