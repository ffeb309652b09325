package statement

import (
	"path"
	"strings"

	"iamcatalog/internal/domain"
)

// PrivilegeEscalationActions are IAM write actions that let a principal grant
// itself more access
var PrivilegeEscalationActions = []string{
	"iam:PutRolePolicy",
	"iam:AttachRolePolicy",
	"iam:CreatePolicy",
	"iam:CreatePolicyVersion",
	"iam:PutUserPolicy",
	"iam:AttachUserPolicy",
	"iam:UpdateAssumeRolePolicy",
	"iam:PutGroupPolicy",
	"iam:AttachGroupPolicy",
	"iam:CreateRole",
	"iam:CreateUser",
	"iam:AddUserToGroup",
	"iam:PassRole",
}

// privilegeEscalationActions returns the escalation actions id grants. id may
// be a wildcard pattern such as "iam:Put*" or "*".
func privilegeEscalationActions(id string) []string {
	lowered := strings.ToLower(id)
	found := make([]string, 0)
	for _, dangerous := range PrivilegeEscalationActions {
		if ok, err := path.Match(lowered, strings.ToLower(dangerous)); err == nil && ok {
			found = append(found, dangerous)
		}
	}
	return found
}

func lintEscalation(s *Statement) []domain.Finding {
	findings := make([]domain.Finding, 0)
	if s.Effect() != domain.EffectAllow {
		return findings
	}
	for _, id := range s.ActionIDs() {
		actions := privilegeEscalationActions(id)
		if len(actions) == 0 {
			continue
		}
		findings = append(findings, domain.Finding{
			Severity: domain.SeverityWarning,
			Action:   id,
			Message:  "allows privilege escalation through " + strings.Join(actions, ", "),
		})
	}
	return findings
}
