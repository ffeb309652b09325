package domain

// PolicyVersion is the current IAM policy language version
const PolicyVersion = "2012-10-17"

// PolicyStatement is the rendered form of one IAM policy statement.
// Resource holds either the string "*" or a []string of ARNs; condition
// values are a string or a []string.
type PolicyStatement struct {
	Sid       string                            `json:"Sid,omitempty"`
	Effect    Effect                            `json:"Effect"`
	Action    []string                          `json:"Action"`
	Resource  interface{}                       `json:"Resource"`
	Condition map[string]map[string]interface{} `json:"Condition,omitempty"`
}

// PolicyDocument is the rendered form of an IAM policy document
type PolicyDocument struct {
	Version   string            `json:"Version"`
	Statement []PolicyStatement `json:"Statement"`
}

// Finding is one issue reported when linting a statement against the catalog
type Finding struct {
	Severity Severity `json:"severity"`
	Action   string   `json:"action,omitempty"`
	Message  string   `json:"message"`
}

// ActionExplanation describes one action of a parsed policy from the catalog
type ActionExplanation struct {
	ActionID    string      `json:"action_id"`
	Known       bool        `json:"known"`
	AccessLevel AccessLevel `json:"access_level,omitempty"`
	Description string      `json:"description,omitempty"`
	URL         string      `json:"url,omitempty"`
	MatchedBy   string      `json:"matched_by,omitempty"`
}

// SimulationResult is the decision IAM reached for one action/resource pair
type SimulationResult struct {
	Action   string `json:"action"`
	Resource string `json:"resource"`
	Decision string `json:"decision"`
	Allowed  bool   `json:"allowed"`
}
