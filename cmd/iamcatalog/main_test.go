package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/pterm/pterm"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iamcatalog/internal/app"
	"iamcatalog/internal/domain"
	"iamcatalog/internal/logging"
	"iamcatalog/internal/mocks"
	"iamcatalog/internal/publish"
)

type fakes struct {
	iam *mocks.MockIAMClient
	s3  *mocks.MockS3Client
	ssm *mocks.MockSSMClient
}

func run(t *testing.T, f *fakes, args ...string) (string, error) {
	t.Helper()
	pterm.DisableStyling()
	t.Cleanup(pterm.EnableStyling)

	if f == nil {
		f = &fakes{}
	}
	if f.iam == nil {
		f.iam = &mocks.MockIAMClient{}
	}
	if f.s3 == nil {
		f.s3 = &mocks.MockS3Client{}
	}
	if f.ssm == nil {
		f.ssm = &mocks.MockSSMClient{}
	}

	c := &cli{
		viper: viper.New(),
		clients: app.Clients{
			IAM:       func(ctx context.Context) (app.IAMClient, error) { return f.iam, nil },
			S3:        func(ctx context.Context) (publish.S3API, error) { return f.s3, nil },
			SSM:       func(ctx context.Context) (publish.SSMAPI, error) { return f.ssm, nil },
			AccountID: func(ctx context.Context) (string, error) { return "123456789012", nil },
		},
	}
	root := newRootCmd(context.Background(), c)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writePolicy(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestServices_JSON(t *testing.T) {
	out, err := run(t, nil, "services", "--json")
	require.NoError(t, err)

	var summaries []serviceSummary
	require.NoError(t, json.Unmarshal([]byte(out), &summaries))
	assert.Len(t, summaries, 7)
	assert.Equal(t, "cloud9", summaries[0].Prefix)
}

func TestServices_Table(t *testing.T) {
	out, err := run(t, nil, "services")
	require.NoError(t, err)
	assert.Contains(t, out, "compute-optimizer")
	assert.Contains(t, out, "AWS Savings Plans")
}

func TestActions_AccessLevelFilter(t *testing.T) {
	out, err := run(t, nil, "actions", "dlm", "--access-level", "tagging")
	require.NoError(t, err)
	assert.Contains(t, out, "dlm:TagResource")
	assert.Contains(t, out, "dlm:UntagResource")
	assert.NotContains(t, out, "dlm:CreateLifecyclePolicy")
}

func TestActions_UnknownService(t *testing.T) {
	_, err := run(t, nil, "actions", "nope")
	assert.Error(t, err)
}

func TestResources_JSON(t *testing.T) {
	out, err := run(t, nil, "resources", "health", "--json")
	require.NoError(t, err)

	var table domain.ResourceTypes
	require.NoError(t, json.Unmarshal([]byte(out), &table))
	assert.Contains(t, table, "event")
}

func TestStatement_OnResourceWithOverrides(t *testing.T) {
	out, err := run(t, nil, "statement", "dlm", "GetLifecyclePolicy",
		"--on", "policy:ResourceName=nightly",
		"--region", "us-east-1", "--account", "auto",
		"--sid", "ReadNightly")
	require.NoError(t, err)

	var doc domain.PolicyDocument
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Statement, 1)

	stmt := doc.Statement[0]
	assert.Equal(t, "2012-10-17", doc.Version)
	assert.Equal(t, "ReadNightly", stmt.Sid)
	assert.Equal(t, domain.EffectAllow, stmt.Effect)
	assert.Equal(t, []string{"dlm:GetLifecyclePolicy"}, stmt.Action)
	assert.Equal(t, []interface{}{"arn:aws:dlm:us-east-1:123456789012:policy/nightly"}, stmt.Resource)
}

func TestStatement_AccessLevelAndCondition(t *testing.T) {
	out, err := run(t, nil, "statement", "dlm", "--access-level", "Tagging", "--deny",
		"--condition", "StringEquals aws:RequestTag/team=storage,backup")
	require.NoError(t, err)

	var doc domain.PolicyDocument
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	stmt := doc.Statement[0]
	assert.Equal(t, domain.EffectDeny, stmt.Effect)
	assert.Equal(t, []string{"dlm:TagResource", "dlm:UntagResource"}, stmt.Action)
	assert.Equal(t, "*", stmt.Resource)
	assert.Equal(t, []interface{}{"storage", "backup"}, stmt.Condition["StringEquals"]["aws:RequestTag/team"])
}

func TestStatement_NoActions(t *testing.T) {
	_, err := run(t, nil, "statement", "dlm")
	assert.Error(t, err)
}

func TestStatement_MissingPlaceholder(t *testing.T) {
	_, err := run(t, nil, "statement", "wafv2", "GetWebACL", "--on", "webacl:Scope=regional,Name=edge")
	assert.Error(t, err)
}

func TestStatement_LintFailsOnUnknownAction(t *testing.T) {
	out, err := run(t, nil, "statement", "dlm", "GetLifecyclePolicy", "MakeCoffee", "--lint")
	require.Error(t, err)
	assert.Contains(t, out, "MakeCoffee")
}

func TestStatement_ToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	out, err := run(t, nil, "statement", "cloud9", "CreateEnvironmentEC2", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "cloud9:CreateEnvironmentEC2")
}

func TestStatement_ToS3(t *testing.T) {
	f := &fakes{}
	_, err := run(t, f, "statement", "cloud9", "CreateEnvironmentEC2", "-o", "s3://policies/cloud9.json")
	require.NoError(t, err)
	assert.Contains(t, string(f.s3.Objects["policies/cloud9.json"]), "cloud9:CreateEnvironmentEC2")
}

const wildcardPolicy = `{
  "Version": "2012-10-17",
  "Statement": [{
    "Effect": "Allow",
    "Action": ["dlm:Get*", "foo:Bar"],
    "Resource": "*"
  }]
}`

func TestExplain_JSON(t *testing.T) {
	out, err := run(t, nil, "explain", writePolicy(t, wildcardPolicy), "--json")
	require.NoError(t, err)

	var report explainReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	ids := make([]string, 0)
	for _, a := range report.Actions {
		ids = append(ids, a.ActionID)
	}
	assert.Equal(t, []string{"dlm:GetLifecyclePolicies", "dlm:GetLifecyclePolicy", "foo:Bar"}, ids)
	assert.False(t, report.Actions[2].Known)
	assert.NotEmpty(t, report.Findings)
}

func TestExplain_InvalidPolicy(t *testing.T) {
	_, err := run(t, nil, "explain", writePolicy(t, `{"Statement": [{"Effect": "Maybe", "Action": "dlm:Get*"}]}`))
	assert.Error(t, err)
}

func TestSimulate_DerivesActions(t *testing.T) {
	f := &fakes{iam: mocks.NewMockIAMClientWithDecisions(map[string]iamtypes.PolicyEvaluationDecisionType{
		"dlm:GetLifecyclePolicies": iamtypes.PolicyEvaluationDecisionTypeAllowed,
		"dlm:GetLifecyclePolicy":   iamtypes.PolicyEvaluationDecisionTypeAllowed,
	})}

	out, err := run(t, f, "simulate", writePolicy(t, wildcardPolicy), "--json")
	require.NoError(t, err)

	var results []domain.SimulationResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 3)
	assert.True(t, results[0].Allowed)
	assert.False(t, results[2].Allowed)

	assert.Equal(t, []string{"dlm:GetLifecyclePolicies", "dlm:GetLifecyclePolicy", "foo:Bar"}, f.iam.LastSimulateCustomPolicyInput.ActionNames)
}

func TestSimulate_ExplicitActionAndContext(t *testing.T) {
	f := &fakes{}
	_, err := run(t, f, "simulate", writePolicy(t, wildcardPolicy),
		"--action", "dlm:DeleteLifecyclePolicy",
		"--resource", "arn:aws:dlm:us-east-1:123456789012:policy/nightly",
		"--context", "aws:RequestTag/team=storage")
	require.NoError(t, err)

	input := f.iam.LastSimulateCustomPolicyInput
	assert.Equal(t, []string{"dlm:DeleteLifecyclePolicy"}, input.ActionNames)
	assert.Equal(t, []string{"arn:aws:dlm:us-east-1:123456789012:policy/nightly"}, input.ResourceArns)
	assert.Len(t, input.ContextEntries, 1)
}

func TestSimulate_ExpectAllowed(t *testing.T) {
	allowAll := map[string]iamtypes.PolicyEvaluationDecisionType{
		"dlm:GetLifecyclePolicies": iamtypes.PolicyEvaluationDecisionTypeAllowed,
		"dlm:GetLifecyclePolicy":   iamtypes.PolicyEvaluationDecisionTypeAllowed,
	}
	path := writePolicy(t, wildcardPolicy)

	_, err := run(t, &fakes{iam: mocks.NewMockIAMClientWithDecisions(allowAll)}, "simulate", path, "--expect-allowed")
	require.Error(t, err, "foo:Bar is denied")
	assert.Contains(t, err.Error(), "1 of 1 policy document(s)")

	_, err = run(t, &fakes{iam: mocks.NewMockIAMClientWithDecisions(allowAll)}, "simulate", path,
		"--expect-allowed", "--action", "dlm:GetLifecyclePolicy")
	assert.NoError(t, err)

	_, err = run(t, &fakes{}, "simulate", path)
	assert.NoError(t, err, "denials only fail the command with --expect-allowed")
}

func TestLogFormat(t *testing.T) {
	t.Cleanup(func() { logging.SetPlain(false) })

	_, err := run(t, nil, "services", "--log-format", "plain")
	assert.NoError(t, err)

	_, err = run(t, nil, "services", "--log-format", "xml")
	assert.Error(t, err)
}

func TestPublish_ToSSM(t *testing.T) {
	f := &fakes{}
	path := writePolicy(t, `{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Action":"health:DescribeEvents","Resource":"*"}]}`)

	out, err := run(t, f, "publish", path, "--to", "ssm://iam/health-read", "--description", "health read")
	require.NoError(t, err)
	assert.Contains(t, out, "ssm://iam/health-read")
	assert.Contains(t, f.ssm.Parameters["/iam/health-read"], "health:DescribeEvents")
}

func TestPublish_ToIAM(t *testing.T) {
	f := &fakes{}
	path := writePolicy(t, `{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Action":"health:DescribeEvents","Resource":"*"}]}`)

	out, err := run(t, f, "publish", path, "--to", "iam://HealthRead")
	require.NoError(t, err)
	assert.Contains(t, out, mocks.TestPolicyARN("/", "HealthRead"))
}

func TestPublish_LintBlocksErrors(t *testing.T) {
	f := &fakes{}
	path := writePolicy(t, `{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Action":"health:MakeCoffee","Resource":"*"}]}`)

	_, err := run(t, f, "publish", path, "--to", "ssm://health")
	require.Error(t, err)
	assert.Empty(t, f.ssm.Parameters)

	_, err = run(t, f, "publish", path, "--to", "ssm://health", "--lint=false")
	require.NoError(t, err)
}

func TestParseOn(t *testing.T) {
	rt, values, err := parseOn("webacl:Scope=regional, Name=edge,Id=1")
	require.NoError(t, err)
	assert.Equal(t, "webacl", rt)
	assert.Equal(t, map[string]string{"Scope": "regional", "Name": "edge", "Id": "1"}, values)

	_, _, err = parseOn(":Name=x")
	assert.Error(t, err)
	_, _, err = parseOn("webacl:Name")
	assert.Error(t, err)
}

func TestParseCondition(t *testing.T) {
	op, key, values, err := parseCondition("ForAllValues:StringEquals aws:TagKeys=team, env")
	require.NoError(t, err)
	assert.Equal(t, "ForAllValues:StringEquals", op)
	assert.Equal(t, "aws:TagKeys", key)
	assert.Equal(t, []string{"team", "env"}, values)

	for _, bad := range []string{"StringEquals", "StringEquals aws:TagKeys=", "aws:TagKeys=x"} {
		_, _, _, err := parseCondition(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseAccessLevels(t *testing.T) {
	levels, err := parseAccessLevels([]string{"read", "permissions-management", "Permissions_Management"})
	require.NoError(t, err)
	assert.Equal(t, []domain.AccessLevel{domain.AccessLevelRead, domain.AccessLevelPermissionsManagement, domain.AccessLevelPermissionsManagement}, levels)

	_, err = parseAccessLevels([]string{"admin"})
	assert.Error(t, err)
}
