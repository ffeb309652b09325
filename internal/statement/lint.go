package statement

import (
	"fmt"
	"path"
	"sort"
	"strings"

	"iamcatalog/internal/arn"
	"iamcatalog/internal/catalog"
	"iamcatalog/internal/domain"
)

// ExpandWildcard returns the actions of def matching pattern, sorted. The
// pattern is the part after the service prefix and may use * and ?, compared
// case-insensitively as IAM does.
func ExpandWildcard(pattern string, def *domain.ServiceDefinition) []string {
	matches := make([]string, 0)
	lowered := strings.ToLower(pattern)
	for _, name := range def.Actions.Names() {
		if ok, err := path.Match(lowered, strings.ToLower(name)); err == nil && ok {
			matches = append(matches, name)
		}
	}
	return matches
}

func isWildcard(s string) bool {
	return strings.ContainsAny(s, "*?")
}

type resolvedAction struct {
	service *domain.ServiceDefinition
	action  domain.ActionDefinition
}

// Lint checks a statement against the catalog. Add accepts any identifier, so
// this is where unknown or risky selections surface. Findings are ordered by
// the statement's action order, then resource, privilege escalation and
// condition findings.
func Lint(s *Statement, reg *catalog.Registry) []domain.Finding {
	findings := make([]domain.Finding, 0)
	resolved := make([]resolvedAction, 0)
	prefixes := make(map[string]bool)

	for _, id := range s.ActionIDs() {
		if id == "*" {
			findings = append(findings, domain.Finding{
				Severity: domain.SeverityWarning,
				Action:   id,
				Message:  "statement grants every action of every service",
			})
			continue
		}

		prefix, name, ok := strings.Cut(id, ":")
		if !ok || prefix == "" || name == "" {
			findings = append(findings, domain.Finding{
				Severity: domain.SeverityError,
				Action:   id,
				Message:  "action identifier is not of the form service:Action",
			})
			continue
		}

		def, err := reg.Lookup(strings.ToLower(prefix))
		if err != nil {
			findings = append(findings, domain.Finding{
				Severity: domain.SeverityWarning,
				Action:   id,
				Message:  fmt.Sprintf("service %s is not in the catalog", prefix),
			})
			continue
		}
		prefixes[def.Prefix] = true

		var names []string
		if isWildcard(name) {
			names = ExpandWildcard(name, def)
			if len(names) == 0 {
				findings = append(findings, domain.Finding{
					Severity: domain.SeverityWarning,
					Action:   id,
					Message:  "wildcard matches no action of the service",
				})
				continue
			}
		} else {
			_, action, found := reg.FindAction(id)
			if !found {
				findings = append(findings, domain.Finding{
					Severity: domain.SeverityError,
					Action:   id,
					Message:  fmt.Sprintf("%s has no action named %s", def.Prefix, name),
				})
				continue
			}
			names = []string{action.Name}
		}

		for _, n := range names {
			action, _ := def.Action(n)
			resolved = append(resolved, resolvedAction{service: def, action: action})

			if action.AccessLevel == domain.AccessLevelPermissionsManagement && s.Effect() == domain.EffectAllow {
				findings = append(findings, domain.Finding{
					Severity: domain.SeverityWarning,
					Action:   def.ActionID(n),
					Message:  "permissions management action can change who has access",
				})
			}
		}
	}

	if len(s.ResourceARNs()) == 0 {
		for _, r := range resolved {
			required := r.action.RequiredResourceTypes()
			if len(required) == 0 {
				continue
			}
			findings = append(findings, domain.Finding{
				Severity: domain.SeverityInfo,
				Action:   r.service.ActionID(r.action.Name),
				Message:  fmt.Sprintf("supports resource-level permissions (%s) but the statement applies to all resources", strings.Join(required, ", ")),
			})
		}
	}

	findings = append(findings, lintResources(s)...)
	findings = append(findings, lintEscalation(s)...)
	return append(findings, lintConditions(s, resolved, prefixes)...)
}

// lintResources flags resources that are neither "*" nor a well-formed ARN
func lintResources(s *Statement) []domain.Finding {
	findings := make([]domain.Finding, 0)
	for _, resource := range s.ResourceARNs() {
		if resource == "*" {
			continue
		}
		if _, err := arn.Parse(resource); err != nil {
			findings = append(findings, domain.Finding{
				Severity: domain.SeverityError,
				Message:  fmt.Sprintf("resource %q is not a valid ARN", resource),
			})
		}
	}
	return findings
}

// lintConditions flags condition keys that none of the selected actions or
// their resource types support. Only tag keys and keys in the namespace of a
// selected service are checked; other aws: keys are global.
func lintConditions(s *Statement, resolved []resolvedAction, prefixes map[string]bool) []domain.Finding {
	findings := make([]domain.Finding, 0)

	supported := make([]string, 0)
	for _, r := range resolved {
		supported = append(supported, r.action.Conditions...)
		for rt := range r.action.ResourceTypes {
			supported = append(supported, r.service.ResourceTypes[rt].ConditionKeys...)
		}
	}

	keys := make([]string, 0)
	for _, clause := range s.Conditions() {
		for k := range clause {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, key := range appendUnique(nil, keys...) {
		if !needsSupport(key, prefixes) {
			continue
		}
		found := false
		for _, template := range supported {
			if arn.MatchTemplate(template, key) {
				found = true
				break
			}
		}
		if !found {
			findings = append(findings, domain.Finding{
				Severity: domain.SeverityWarning,
				Message:  fmt.Sprintf("condition key %s is not supported by any selected action", key),
			})
		}
	}
	return findings
}

func needsSupport(key string, prefixes map[string]bool) bool {
	lower := strings.ToLower(key)
	if strings.HasPrefix(lower, "aws:requesttag/") ||
		strings.HasPrefix(lower, "aws:resourcetag/") ||
		lower == "aws:tagkeys" {
		return true
	}
	prefix, _, ok := strings.Cut(lower, ":")
	return ok && prefixes[prefix]
}
