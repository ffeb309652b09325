// Package statement builds IAM policy statements by chaining action,
// resource and condition selections, and renders them in IAM policy syntax.
package statement

import (
	"encoding/json"
	"fmt"
	"sort"

	"iamcatalog/internal/domain"
)

// Condition operators used by the convenience helpers
const (
	OperatorStringEquals          = "StringEquals"
	OperatorStringLike            = "StringLike"
	OperatorForAllValuesStringEqs = "ForAllValues:StringEquals"
)

// Statement accumulates the actions, resources and conditions of one IAM
// policy statement. The zero value is not usable; call New.
//
// A Statement is owned by the caller that built it and is not safe for
// concurrent mutation.
type Statement struct {
	sid         string
	effect      domain.Effect
	actions     []string
	actionSet   map[string]struct{}
	resources   []string
	resourceSet map[string]struct{}
	conditions  map[string]map[string][]string
}

// New returns an empty Allow statement
func New() *Statement {
	return &Statement{
		effect:      domain.EffectAllow,
		actionSet:   make(map[string]struct{}),
		resourceSet: make(map[string]struct{}),
		conditions:  make(map[string]map[string][]string),
	}
}

// Add appends an action identifier such as "dlm:TagResource". Adding the
// same identifier twice has no further effect. The identifier is not checked
// against any service table; use Lint for that.
func (s *Statement) Add(actionID string) *Statement {
	if _, ok := s.actionSet[actionID]; ok {
		return s
	}
	s.actionSet[actionID] = struct{}{}
	s.actions = append(s.actions, actionID)
	return s
}

// Allow sets the statement effect to Allow
func (s *Statement) Allow() *Statement {
	s.effect = domain.EffectAllow
	return s
}

// Deny sets the statement effect to Deny
func (s *Statement) Deny() *Statement {
	s.effect = domain.EffectDeny
	return s
}

// WithSid sets the statement id
func (s *Statement) WithSid(sid string) *Statement {
	s.sid = sid
	return s
}

// On restricts the statement to the given resource ARNs
func (s *Statement) On(arns ...string) *Statement {
	for _, arn := range arns {
		if _, ok := s.resourceSet[arn]; ok {
			continue
		}
		s.resourceSet[arn] = struct{}{}
		s.resources = append(s.resources, arn)
	}
	return s
}

// If adds a condition clause. Values for an operator/key pair that already
// exists are merged, keeping the first occurrence of each value. A call
// without values is ignored.
func (s *Statement) If(operator, key string, values ...string) *Statement {
	if len(values) == 0 {
		return s
	}
	keys, ok := s.conditions[operator]
	if !ok {
		keys = make(map[string][]string)
		s.conditions[operator] = keys
	}
	keys[key] = appendUnique(keys[key], values...)
	return s
}

// IfRequestTag requires the request to carry tagKey with one of values
func (s *Statement) IfRequestTag(tagKey string, values ...string) *Statement {
	return s.If(OperatorStringEquals, "aws:RequestTag/"+tagKey, values...)
}

// IfResourceTag requires the target resource to carry tagKey with one of values
func (s *Statement) IfResourceTag(tagKey string, values ...string) *Statement {
	return s.If(OperatorStringEquals, "aws:ResourceTag/"+tagKey, values...)
}

// IfTagKeys limits the tag keys a request may carry
func (s *Statement) IfTagKeys(tagKeys ...string) *Statement {
	return s.If(OperatorForAllValuesStringEqs, "aws:TagKeys", tagKeys...)
}

// Sid returns the statement id
func (s *Statement) Sid() string {
	return s.sid
}

// Effect returns the statement effect
func (s *Statement) Effect() domain.Effect {
	return s.effect
}

// ActionIDs returns the selected action identifiers in the order they were added
func (s *Statement) ActionIDs() []string {
	return append([]string(nil), s.actions...)
}

// HasAction reports whether actionID has been added
func (s *Statement) HasAction(actionID string) bool {
	_, ok := s.actionSet[actionID]
	return ok
}

// ResourceARNs returns the resources passed to On, in order
func (s *Statement) ResourceARNs() []string {
	return append([]string(nil), s.resources...)
}

// Conditions returns a copy of the condition clauses
func (s *Statement) Conditions() map[string]map[string][]string {
	out := make(map[string]map[string][]string, len(s.conditions))
	for op, keys := range s.conditions {
		copied := make(map[string][]string, len(keys))
		for k, v := range keys {
			copied[k] = append([]string(nil), v...)
		}
		out[op] = copied
	}
	return out
}

// Render produces the IAM policy-language form of the statement. A statement
// without resources applies to "*".
func (s *Statement) Render() domain.PolicyStatement {
	rendered := domain.PolicyStatement{
		Sid:    s.sid,
		Effect: s.effect,
		Action: s.ActionIDs(),
	}
	if rendered.Action == nil {
		rendered.Action = []string{}
	}

	if len(s.resources) == 0 {
		rendered.Resource = "*"
	} else {
		rendered.Resource = s.ResourceARNs()
	}

	if len(s.conditions) > 0 {
		rendered.Condition = make(map[string]map[string]interface{}, len(s.conditions))
		for op, keys := range s.conditions {
			clause := make(map[string]interface{}, len(keys))
			for k, values := range keys {
				if len(values) == 1 {
					clause[k] = values[0]
				} else {
					clause[k] = append([]string(nil), values...)
				}
			}
			rendered.Condition[op] = clause
		}
	}
	return rendered
}

// MarshalJSON renders the statement
func (s *Statement) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Render())
}

// ToJSON renders the statement as indented JSON
func (s *Statement) ToJSON() (string, error) {
	b, err := json.MarshalIndent(s.Render(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render statement: %w", err)
	}
	return string(b), nil
}

// String summarises the statement for logs
func (s *Statement) String() string {
	keys := make([]string, 0)
	for op, clause := range s.conditions {
		for k := range clause {
			keys = append(keys, op+" "+k)
		}
	}
	sort.Strings(keys)
	return fmt.Sprintf("%s %v on %v if %v", s.effect, s.actions, s.Render().Resource, keys)
}

// appendUnique appends values to a slice, avoiding duplicates
func appendUnique(slice []string, values ...string) []string {
	seen := make(map[string]bool)
	for _, v := range slice {
		seen[v] = true
	}
	for _, v := range values {
		if !seen[v] {
			slice = append(slice, v)
			seen[v] = true
		}
	}
	return slice
}
