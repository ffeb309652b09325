package statement

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"iamcatalog/internal/logging"
)

// ErrUnsupportedElement is returned for statement elements a Statement cannot hold
var ErrUnsupportedElement = errors.New("unsupported policy element")

// ParseDocument reads an IAM policy JSON document back into statements. Action
// and Resource may be strings or arrays, Statement may be an object or an array.
// NotAction and NotResource cannot be expressed by a Statement and are rejected.
func ParseDocument(policyJSON string) (*Document, error) {
	var policyDoc map[string]interface{}
	if err := json.Unmarshal([]byte(policyJSON), &policyDoc); err != nil {
		return nil, fmt.Errorf("failed to parse policy document: %w", err)
	}

	var rawStatements []interface{}
	switch v := policyDoc["Statement"].(type) {
	case []interface{}:
		rawStatements = v
	case map[string]interface{}:
		rawStatements = []interface{}{v}
	case nil:
		return nil, fmt.Errorf("policy document has no Statement")
	default:
		return nil, fmt.Errorf("policy document Statement has unexpected type %T", v)
	}

	doc := NewDocument()
	for i, raw := range rawStatements {
		stmt, ok := raw.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("statement %d is not an object", i)
		}
		parsed, err := parseStatement(stmt)
		if err != nil {
			return nil, fmt.Errorf("statement %d: %w", i, err)
		}
		doc.Add(parsed)
	}
	return doc, nil
}

func parseStatement(stmt map[string]interface{}) (*Statement, error) {
	for _, element := range []string{"NotAction", "NotResource", "NotPrincipal"} {
		if _, ok := stmt[element]; ok {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedElement, element)
		}
	}
	if _, ok := stmt["Principal"]; ok {
		logging.LogDebug("Ignoring Principal element of resource policy statement")
	}

	s := New()
	switch effect, _ := stmt["Effect"].(string); effect {
	case "Allow":
		s.Allow()
	case "Deny":
		s.Deny()
	default:
		return nil, fmt.Errorf("invalid Effect %q", effect)
	}

	if sid, ok := stmt["Sid"].(string); ok {
		s.WithSid(sid)
	}

	for _, action := range normalizeToStringSlice(stmt["Action"]) {
		s.Add(action)
	}

	resources := normalizeToStringSlice(stmt["Resource"])
	if !(len(resources) == 1 && resources[0] == "*") {
		s.On(resources...)
	}

	if condition, ok := stmt["Condition"].(map[string]interface{}); ok {
		operators := make([]string, 0, len(condition))
		for op := range condition {
			operators = append(operators, op)
		}
		sort.Strings(operators)

		for _, op := range operators {
			clause, ok := condition[op].(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("condition operator %s is not an object", op)
			}
			keys := make([]string, 0, len(clause))
			for k := range clause {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				s.If(op, k, normalizeToStringSlice(clause[k])...)
			}
		}
	}
	return s, nil
}

// normalizeToStringSlice converts a JSON string, scalar or array to []string
func normalizeToStringSlice(val interface{}) []string {
	switch v := val.(type) {
	case string:
		return []string{v}
	case []interface{}:
		result := make([]string, 0, len(v))
		for _, item := range v {
			switch s := item.(type) {
			case string:
				result = append(result, s)
			case nil:
			default:
				result = append(result, fmt.Sprint(s))
			}
		}
		return result
	case []string:
		return v
	case bool, float64:
		return []string{fmt.Sprint(v)}
	}
	return nil
}
