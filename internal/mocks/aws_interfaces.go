// Package mocks provides in-memory fakes of the AWS client slices used by iamcatalog.
package mocks

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// ErrNotFound is returned by the fakes for missing objects, parameters and policies
var ErrNotFound = errors.New("not found")

// =============================================================================
// IAM Interfaces
// =============================================================================

// IAMSimulateCustomPolicy defines the interface for IAM SimulateCustomPolicy operation.
type IAMSimulateCustomPolicy interface {
	SimulateCustomPolicy(
		ctx context.Context,
		params *iam.SimulateCustomPolicyInput,
		optFns ...func(*iam.Options),
	) (*iam.SimulateCustomPolicyOutput, error)
}

// IAMCreatePolicy defines the interface for IAM CreatePolicy operation.
type IAMCreatePolicy interface {
	CreatePolicy(
		ctx context.Context,
		params *iam.CreatePolicyInput,
		optFns ...func(*iam.Options),
	) (*iam.CreatePolicyOutput, error)
}

// =============================================================================
// S3 / SSM / STS Interfaces
// =============================================================================

// S3Objects defines the S3 object operations used to store policy documents.
type S3Objects interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// SSMParameters defines the SSM parameter operations used to store policy documents.
type SSMParameters interface {
	PutParameter(ctx context.Context, params *ssm.PutParameterInput, optFns ...func(*ssm.Options)) (*ssm.PutParameterOutput, error)
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// STSGetCallerIdentity defines the interface for STS GetCallerIdentity operation.
type STSGetCallerIdentity interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// =============================================================================
// IAM Mock Implementation
// =============================================================================

// MockIAMClient is a mock implementation of the IAM interfaces.
// Use the function fields to customize behavior for each test case.
type MockIAMClient struct {
	// SimulateCustomPolicyFunc is called when SimulateCustomPolicy is invoked.
	// If nil, every action/resource pair is reported as implicitDeny.
	SimulateCustomPolicyFunc func(
		ctx context.Context,
		params *iam.SimulateCustomPolicyInput,
		optFns ...func(*iam.Options),
	) (*iam.SimulateCustomPolicyOutput, error)

	// CreatePolicyFunc is called when CreatePolicy is invoked.
	// If nil, the policy is stored in Policies and an ARN in account 123456789012 is returned.
	CreatePolicyFunc func(
		ctx context.Context,
		params *iam.CreatePolicyInput,
		optFns ...func(*iam.Options),
	) (*iam.CreatePolicyOutput, error)

	Policies map[string]string

	SimulateCustomPolicyCallCount int
	CreatePolicyCallCount         int

	LastSimulateCustomPolicyInput *iam.SimulateCustomPolicyInput
	LastCreatePolicyInput         *iam.CreatePolicyInput

	mu sync.Mutex
}

// SimulateCustomPolicy implements IAMSimulateCustomPolicy.
func (m *MockIAMClient) SimulateCustomPolicy(
	ctx context.Context,
	params *iam.SimulateCustomPolicyInput,
	optFns ...func(*iam.Options),
) (*iam.SimulateCustomPolicyOutput, error) {
	m.mu.Lock()
	m.SimulateCustomPolicyCallCount++
	m.LastSimulateCustomPolicyInput = params
	m.mu.Unlock()

	if m.SimulateCustomPolicyFunc != nil {
		return m.SimulateCustomPolicyFunc(ctx, params, optFns...)
	}

	resources := params.ResourceArns
	if len(resources) == 0 {
		resources = []string{"*"}
	}
	out := &iam.SimulateCustomPolicyOutput{}
	for _, action := range params.ActionNames {
		for _, resource := range resources {
			out.EvaluationResults = append(out.EvaluationResults, iamtypes.EvaluationResult{
				EvalActionName:   aws.String(action),
				EvalResourceName: aws.String(resource),
				EvalDecision:     iamtypes.PolicyEvaluationDecisionTypeImplicitDeny,
			})
		}
	}
	return out, nil
}

// CreatePolicy implements IAMCreatePolicy.
func (m *MockIAMClient) CreatePolicy(
	ctx context.Context,
	params *iam.CreatePolicyInput,
	optFns ...func(*iam.Options),
) (*iam.CreatePolicyOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreatePolicyCallCount++
	m.LastCreatePolicyInput = params

	if m.CreatePolicyFunc != nil {
		return m.CreatePolicyFunc(ctx, params, optFns...)
	}

	if m.Policies == nil {
		m.Policies = make(map[string]string)
	}
	name := aws.ToString(params.PolicyName)
	if _, exists := m.Policies[name]; exists {
		return nil, &iamtypes.EntityAlreadyExistsException{Message: aws.String("policy " + name + " already exists")}
	}
	m.Policies[name] = aws.ToString(params.PolicyDocument)

	path := aws.ToString(params.Path)
	if path == "" {
		path = "/"
	}
	return &iam.CreatePolicyOutput{
		Policy: &iamtypes.Policy{
			PolicyName: params.PolicyName,
			Path:       aws.String(path),
			Arn:        aws.String(TestPolicyARN(path, name)),
		},
	}, nil
}

// NewMockIAMClientWithDecisions creates a mock whose simulation answers come from
// decisions, keyed by action name. Actions not in the map are implicitly denied.
func NewMockIAMClientWithDecisions(decisions map[string]iamtypes.PolicyEvaluationDecisionType) *MockIAMClient {
	return &MockIAMClient{
		SimulateCustomPolicyFunc: func(
			ctx context.Context,
			params *iam.SimulateCustomPolicyInput,
			optFns ...func(*iam.Options),
		) (*iam.SimulateCustomPolicyOutput, error) {
			resources := params.ResourceArns
			if len(resources) == 0 {
				resources = []string{"*"}
			}
			out := &iam.SimulateCustomPolicyOutput{}
			for _, action := range params.ActionNames {
				decision, ok := decisions[action]
				if !ok {
					decision = iamtypes.PolicyEvaluationDecisionTypeImplicitDeny
				}
				for _, resource := range resources {
					out.EvaluationResults = append(out.EvaluationResults, iamtypes.EvaluationResult{
						EvalActionName:   aws.String(action),
						EvalResourceName: aws.String(resource),
						EvalDecision:     decision,
					})
				}
			}
			return out, nil
		},
	}
}

// Reset clears all call counts and stored inputs
func (m *MockIAMClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SimulateCustomPolicyCallCount = 0
	m.CreatePolicyCallCount = 0
	m.LastSimulateCustomPolicyInput = nil
	m.LastCreatePolicyInput = nil
}

// =============================================================================
// S3 Mock Implementation
// =============================================================================

// MockS3Client keeps objects in memory, keyed by "bucket/key".
type MockS3Client struct {
	Objects map[string][]byte

	// PutObjectErr, when set, fails every PutObject call.
	PutObjectErr error

	PutObjectCallCount int
	LastPutObjectInput *s3.PutObjectInput

	mu sync.Mutex
}

// PutObject implements S3Objects.
func (m *MockS3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PutObjectCallCount++
	m.LastPutObjectInput = params

	if m.PutObjectErr != nil {
		return nil, m.PutObjectErr
	}

	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	if m.Objects == nil {
		m.Objects = make(map[string][]byte)
	}
	m.Objects[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key)] = body
	return &s3.PutObjectOutput{ETag: aws.String(fmt.Sprintf("\"%x\"", len(body)))}, nil
}

// GetObject implements S3Objects.
func (m *MockS3Client) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	body, ok := m.Objects[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key)]
	if !ok {
		return nil, fmt.Errorf("s3://%s/%s: %w", aws.ToString(params.Bucket), aws.ToString(params.Key), ErrNotFound)
	}
	return &s3.GetObjectOutput{
		Body:          io.NopCloser(strings.NewReader(string(body))),
		ContentLength: aws.Int64(int64(len(body))),
	}, nil
}

// =============================================================================
// SSM Mock Implementation
// =============================================================================

// MockSSMClient keeps parameters in memory.
type MockSSMClient struct {
	Parameters map[string]string

	PutParameterCallCount int
	LastPutParameterInput *ssm.PutParameterInput

	mu sync.Mutex
}

// PutParameter implements SSMParameters.
func (m *MockSSMClient) PutParameter(ctx context.Context, params *ssm.PutParameterInput, optFns ...func(*ssm.Options)) (*ssm.PutParameterOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PutParameterCallCount++
	m.LastPutParameterInput = params

	if m.Parameters == nil {
		m.Parameters = make(map[string]string)
	}
	name := aws.ToString(params.Name)
	if _, exists := m.Parameters[name]; exists && !aws.ToBool(params.Overwrite) {
		return nil, &ssmtypes.ParameterAlreadyExists{Message: aws.String(name)}
	}
	m.Parameters[name] = aws.ToString(params.Value)
	return &ssm.PutParameterOutput{Version: 1}, nil
}

// GetParameter implements SSMParameters.
func (m *MockSSMClient) GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := aws.ToString(params.Name)
	value, ok := m.Parameters[name]
	if !ok {
		return nil, &ssmtypes.ParameterNotFound{Message: aws.String(name)}
	}
	return &ssm.GetParameterOutput{
		Parameter: &ssmtypes.Parameter{Name: aws.String(name), Value: aws.String(value)},
	}, nil
}

// =============================================================================
// STS Mock Implementation
// =============================================================================

// MockSTSClient returns a fixed caller identity.
type MockSTSClient struct {
	Account string
	Err     error

	CallCount int
}

// GetCallerIdentity implements STSGetCallerIdentity.
func (m *MockSTSClient) GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	m.CallCount++
	if m.Err != nil {
		return nil, m.Err
	}
	out := &sts.GetCallerIdentityOutput{}
	if m.Account != "" {
		out.Account = aws.String(m.Account)
		out.Arn = aws.String(fmt.Sprintf("arn:aws:iam::%s:user/test", m.Account))
	}
	return out, nil
}

// =============================================================================
// Test Data Helpers
// =============================================================================

// TestPolicyARN generates the ARN of a customer managed policy in account 123456789012
func TestPolicyARN(path, name string) string {
	return fmt.Sprintf("arn:aws:iam::123456789012:policy%s%s", path, name)
}
