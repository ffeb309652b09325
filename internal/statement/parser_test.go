package statement

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseDocument_StringForms(t *testing.T) {
	policy := `{
		"Version": "2012-10-17",
		"Statement": {
			"Effect": "Allow",
			"Action": "wafv2:GetWebACL",
			"Resource": "*"
		}
	}`

	doc, err := ParseDocument(policy)
	if err != nil {
		t.Fatalf("Failed to parse policy: %v", err)
	}
	stmts := doc.Statements()
	if len(stmts) != 1 {
		t.Fatalf("Expected 1 statement, got %d", len(stmts))
	}
	if !reflect.DeepEqual(stmts[0].ActionIDs(), []string{"wafv2:GetWebACL"}) {
		t.Errorf("Unexpected actions: %v", stmts[0].ActionIDs())
	}
	if len(stmts[0].ResourceARNs()) != 0 {
		t.Errorf("Expected \"*\" to parse to no explicit resources, got %v", stmts[0].ResourceARNs())
	}
}

func TestParseDocument_RoundTrip(t *testing.T) {
	original := NewDocument(
		New().
			WithSid("Tagging").
			Add("config:TagResource").
			Add("config:UntagResource").
			On("arn:aws:config:us-east-1:123456789012:config-rule/config-rule-1").
			IfRequestTag("Team", "a", "b"),
		New().Deny().Add("config:DeleteConfigRule"),
	)
	policyJSON, err := original.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	parsed, err := ParseDocument(policyJSON)
	if err != nil {
		t.Fatalf("Failed to parse rendered policy: %v", err)
	}
	if !reflect.DeepEqual(parsed.Render(), original.Render()) {
		t.Errorf("Round trip changed the document:\n got %+v\nwant %+v", parsed.Render(), original.Render())
	}
}

func TestParseDocument_ScalarConditionValues(t *testing.T) {
	policy := `{
		"Statement": [{
			"Effect": "Allow",
			"Action": ["cloud9:*"],
			"Resource": "*",
			"Condition": {
				"Bool": {"aws:MultiFactorAuthPresent": true},
				"NumericLessThan": {"aws:MultiFactorAuthAge": 3600}
			}
		}]
	}`

	doc, err := ParseDocument(policy)
	if err != nil {
		t.Fatalf("Failed to parse policy: %v", err)
	}
	conditions := doc.Statements()[0].Conditions()
	if got := conditions["Bool"]["aws:MultiFactorAuthPresent"]; !reflect.DeepEqual(got, []string{"true"}) {
		t.Errorf("Expected [true], got %v", got)
	}
	if got := conditions["NumericLessThan"]["aws:MultiFactorAuthAge"]; !reflect.DeepEqual(got, []string{"3600"}) {
		t.Errorf("Expected [3600], got %v", got)
	}
}

func TestParseDocument_Errors(t *testing.T) {
	cases := map[string]string{
		"invalid json":      `{`,
		"no statement":      `{"Version": "2012-10-17"}`,
		"statement string":  `{"Statement": "Allow"}`,
		"statement element": `{"Statement": ["Allow"]}`,
		"bad effect":        `{"Statement": [{"Effect": "Maybe", "Action": "dlm:TagResource"}]}`,
		"bad condition":     `{"Statement": [{"Effect": "Allow", "Action": "dlm:TagResource", "Condition": {"StringEquals": "x"}}]}`,
	}
	for name, policy := range cases {
		if _, err := ParseDocument(policy); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestParseDocument_NotAction(t *testing.T) {
	_, err := ParseDocument(`{"Statement": [{"Effect": "Deny", "NotAction": "iam:*", "Resource": "*"}]}`)
	if !errors.Is(err, ErrUnsupportedElement) {
		t.Errorf("Expected ErrUnsupportedElement, got %v", err)
	}
}
