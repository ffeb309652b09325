package statement

import (
	"reflect"
	"strings"
	"testing"

	"iamcatalog/internal/catalog"
	"iamcatalog/internal/domain"
)

func findingFor(findings []domain.Finding, action string, severity domain.Severity) *domain.Finding {
	for i := range findings {
		if findings[i].Action == action && findings[i].Severity == severity {
			return &findings[i]
		}
	}
	return nil
}

func TestExpandWildcard(t *testing.T) {
	def := catalog.Default().MustLookup("dlm")

	got := ExpandWildcard("Get*", def)
	want := []string{"GetLifecyclePolicies", "GetLifecyclePolicy"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	if got := ExpandWildcard("*tagresource", def); !reflect.DeepEqual(got, []string{"TagResource", "UntagResource"}) {
		t.Errorf("Case-insensitive expansion failed: %v", got)
	}
	if got := ExpandWildcard("*", def); len(got) != 8 {
		t.Errorf("Expected * to match all 8 dlm actions, got %d", len(got))
	}
	if got := ExpandWildcard("Launch*", def); len(got) != 0 {
		t.Errorf("Expected no matches, got %v", got)
	}
}

func TestLint_CleanStatement(t *testing.T) {
	s := New().
		Add("dlm:GetLifecyclePolicies").
		Add("dlm:CreateLifecyclePolicy").
		IfRequestTag("Team", "storage").
		IfTagKeys("Team")

	if findings := Lint(s, catalog.Default()); len(findings) != 0 {
		t.Errorf("Expected no findings, got %+v", findings)
	}
}

func TestLint_UnknownAction(t *testing.T) {
	s := New().Add("dlm:LaunchRockets")
	findings := Lint(s, catalog.Default())

	f := findingFor(findings, "dlm:LaunchRockets", domain.SeverityError)
	if f == nil {
		t.Fatalf("Expected an error finding, got %+v", findings)
	}
	if !strings.Contains(f.Message, "no action named LaunchRockets") {
		t.Errorf("Unexpected message: %s", f.Message)
	}
}

func TestLint_MalformedAndForeign(t *testing.T) {
	s := New().Add("TagResource").Add("ec2:RunInstances").Add("*")
	findings := Lint(s, catalog.Default())

	if findingFor(findings, "TagResource", domain.SeverityError) == nil {
		t.Error("Expected an error for an identifier without prefix")
	}
	if findingFor(findings, "ec2:RunInstances", domain.SeverityWarning) == nil {
		t.Error("Expected a warning for a service outside the catalog")
	}
	if findingFor(findings, "*", domain.SeverityWarning) == nil {
		t.Error("Expected a warning for a global wildcard")
	}
}

func TestLint_PermissionsManagement(t *testing.T) {
	s := New().Add("wafv2:PutPermissionPolicy")
	if findingFor(Lint(s, catalog.Default()), "wafv2:PutPermissionPolicy", domain.SeverityWarning) == nil {
		t.Error("Expected a warning for a permissions management action")
	}

	denied := New().Deny().Add("wafv2:PutPermissionPolicy")
	if findingFor(Lint(denied, catalog.Default()), "wafv2:PutPermissionPolicy", domain.SeverityWarning) != nil {
		t.Error("Denying a permissions management action should not be flagged")
	}
}

func TestLint_WildcardExpansion(t *testing.T) {
	s := New().Add("health:*Organization*")
	findings := Lint(s, catalog.Default())

	for _, action := range []string{
		"health:DescribeHealthServiceStatusForOrganization",
		"health:DisableHealthServiceAccessForOrganization",
		"health:EnableHealthServiceAccessForOrganization",
	} {
		if findingFor(findings, action, domain.SeverityWarning) == nil {
			t.Errorf("Expected wildcard expansion to flag %s, got %+v", action, findings)
		}
	}

	empty := New().Add("health:Launch*")
	if findingFor(Lint(empty, catalog.Default()), "health:Launch*", domain.SeverityWarning) == nil {
		t.Error("Expected a warning for a wildcard matching nothing")
	}
}

func TestLint_ResourceLevelPermissions(t *testing.T) {
	s := New().Add("dlm:DeleteLifecyclePolicy")
	if findingFor(Lint(s, catalog.Default()), "dlm:DeleteLifecyclePolicy", domain.SeverityInfo) == nil {
		t.Error("Expected an info finding for an action with required resource types on \"*\"")
	}

	scoped := New().Add("dlm:DeleteLifecyclePolicy").On("arn:aws:dlm:us-east-1:123456789012:policy/p")
	if len(Lint(scoped, catalog.Default())) != 0 {
		t.Error("Expected no findings once the statement is scoped to a resource")
	}
}

func TestLint_UnsupportedConditionKey(t *testing.T) {
	s := New().Add("dlm:GetLifecyclePolicies").IfRequestTag("Team", "x").If(OperatorStringEquals, "aws:SourceIp", "10.0.0.1")
	findings := Lint(s, catalog.Default())

	if len(findings) != 1 {
		t.Fatalf("Expected exactly one finding, got %+v", findings)
	}
	if !strings.Contains(findings[0].Message, "aws:RequestTag/Team") {
		t.Errorf("Unexpected message: %s", findings[0].Message)
	}
}

func TestLint_ResourceTypeConditionKeys(t *testing.T) {
	s := New().
		Add("cloud9:DeleteEnvironment").
		On("arn:aws:cloud9:us-east-1:123456789012:environment:abc").
		IfResourceTag("Env", "dev")

	if findings := Lint(s, catalog.Default()); len(findings) != 0 {
		t.Errorf("Expected resource tag to be supported through the environment resource type, got %+v", findings)
	}
}

func TestExplain(t *testing.T) {
	doc := NewDocument(New().Add("dlm:Get*").Add("cloud9:createenvironmentec2").Add("s3:GetObject"))
	explanations := Explain(doc, catalog.Default())

	if len(explanations) != 4 {
		t.Fatalf("Expected 4 explanations, got %+v", explanations)
	}
	if explanations[0].ActionID != "dlm:GetLifecyclePolicies" || explanations[0].MatchedBy != "dlm:Get*" {
		t.Errorf("Unexpected wildcard explanation: %+v", explanations[0])
	}
	if explanations[2].ActionID != "cloud9:CreateEnvironmentEC2" || explanations[2].AccessLevel != domain.AccessLevelWrite {
		t.Errorf("Unexpected explanation: %+v", explanations[2])
	}
	if explanations[3].Known {
		t.Errorf("Expected s3:GetObject to be unknown, got %+v", explanations[3])
	}
}

func TestLint_PrivilegeEscalation(t *testing.T) {
	s := New().Add("iam:PassRole").Add("iam:Attach*").Add("iam:GetRole")
	findings := Lint(s, catalog.Default())

	if f := findingFor(findings, "iam:PassRole", domain.SeverityWarning); f == nil || !strings.Contains(f.Message, "privilege escalation") {
		t.Errorf("Expected escalation warning for iam:PassRole, got %+v", findings)
	}
	f := findingFor(findings, "iam:Attach*", domain.SeverityWarning)
	if f == nil || !strings.Contains(f.Message, "iam:AttachRolePolicy, iam:AttachUserPolicy, iam:AttachGroupPolicy") {
		t.Errorf("Expected wildcard to list matching escalation actions, got %+v", f)
	}
	for _, finding := range findings {
		if finding.Action == "iam:GetRole" && strings.Contains(finding.Message, "escalation") {
			t.Error("iam:GetRole should not be flagged for escalation")
		}
	}

	denied := New().Deny().Add("iam:PassRole")
	for _, finding := range Lint(denied, catalog.Default()) {
		if strings.Contains(finding.Message, "escalation") {
			t.Error("Denying an escalation action should not be flagged")
		}
	}
}

func TestLint_MalformedResource(t *testing.T) {
	s := New().
		Add("dlm:GetLifecyclePolicy").
		On("arn:aws:dlm:us-east-1:123456789012:policy/nightly", "policy/nightly", "arn:aws:s3:::bucket")
	findings := Lint(s, catalog.Default())

	if len(findings) != 1 {
		t.Fatalf("Expected exactly one finding, got %+v", findings)
	}
	if findings[0].Severity != domain.SeverityError || !strings.Contains(findings[0].Message, `"policy/nightly"`) {
		t.Errorf("Unexpected finding: %+v", findings[0])
	}

	if got := Lint(New().Add("dlm:GetLifecyclePolicy").On("*"), catalog.Default()); len(got) != 0 {
		t.Errorf("Expected \"*\" to pass, got %+v", got)
	}
}
