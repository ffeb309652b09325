package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iamcatalog/internal/aws"
	"iamcatalog/internal/config"
	"iamcatalog/internal/mocks"
	"iamcatalog/internal/publish"
)

func fakeClients(iamClient *mocks.MockIAMClient, s3Client *mocks.MockS3Client, ssmClient *mocks.MockSSMClient, stsClient *mocks.MockSTSClient) Clients {
	return Clients{
		IAM: func(ctx context.Context) (IAMClient, error) { return iamClient, nil },
		S3:  func(ctx context.Context) (publish.S3API, error) { return s3Client, nil },
		SSM: func(ctx context.Context) (publish.SSMAPI, error) { return ssmClient, nil },
		AccountID: func(ctx context.Context) (string, error) {
			out, err := stsClient.GetCallerIdentity(ctx, nil)
			if err != nil {
				return "", err
			}
			return *out.Account, nil
		},
	}
}

func defaultSettings() *config.Settings {
	return &config.Settings{Partition: "aws", Region: "*", Account: "*", Output: "-", LogLevel: "WARN"}
}

func TestNew_DefaultResolver(t *testing.T) {
	stsClient := &mocks.MockSTSClient{Account: "111122223333"}
	a, err := New(context.Background(), defaultSettings(), fakeClients(nil, nil, nil, stsClient))
	require.NoError(t, err)

	assert.Equal(t, "*", a.Resolver.Account)
	assert.Equal(t, 0, stsClient.CallCount, "account lookup must not run unless requested")
	assert.Equal(t, 7, a.Registry.Len())
}

func TestNew_AccountLookup(t *testing.T) {
	settings := defaultSettings()
	settings.Account = "auto"
	settings.Region = "us-east-1"

	a, err := New(context.Background(), settings, fakeClients(nil, nil, nil, &mocks.MockSTSClient{Account: "111122223333"}))
	require.NoError(t, err)

	svc, err := a.Service("dlm")
	require.NoError(t, err)
	arn, err := svc.ResourceARN("policy", map[string]string{"ResourceName": "nightly"})
	require.NoError(t, err)
	assert.Equal(t, "arn:aws:dlm:us-east-1:111122223333:policy/nightly", arn)
}

func TestNew_AccountLookupFails(t *testing.T) {
	settings := defaultSettings()
	settings.Account = "auto"

	_, err := New(context.Background(), settings, fakeClients(nil, nil, nil, &mocks.MockSTSClient{Err: errors.New("ExpiredToken")}))
	assert.Error(t, err)
}

func TestNew_CatalogOverride(t *testing.T) {
	dir := t.TempDir()
	content := `prefix: demo
name: Demo
documentation_url: https://example.com
actions:
  GetThing:
    url: https://example.com/GetThing
    description: Grants permission to get a thing
    access_level: Read
resource_types: {}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "demo.yaml"), []byte(content), 0o644))

	settings := defaultSettings()
	settings.CatalogDir = dir
	a, err := New(context.Background(), settings, Clients{})
	require.NoError(t, err)

	svc, err := a.Service("demo")
	require.NoError(t, err)
	svc.AddAction("GetThing")
	assert.Equal(t, []string{"demo:GetThing"}, svc.ActionIDs())
}

func TestService_Unknown(t *testing.T) {
	a, err := New(context.Background(), defaultSettings(), Clients{})
	require.NoError(t, err)

	_, err = a.Service("nope")
	assert.Error(t, err)
}

func TestPublisher_OnlyRequestedClients(t *testing.T) {
	s3Client := &mocks.MockS3Client{}
	a, err := New(context.Background(), defaultSettings(), fakeClients(&mocks.MockIAMClient{}, s3Client, &mocks.MockSSMClient{}, &mocks.MockSTSClient{}))
	require.NoError(t, err)

	p, err := a.Publisher(context.Background(), "s3://policies/dlm.json", "policy.json")
	require.NoError(t, err)
	assert.NotNil(t, p.S3)
	assert.Nil(t, p.SSM)
	assert.Nil(t, p.IAM)

	_, err = a.Publisher(context.Background(), "ftp://nowhere")
	assert.ErrorIs(t, err, publish.ErrUnsupportedTarget)
}

func TestSimulator(t *testing.T) {
	a, err := New(context.Background(), defaultSettings(), fakeClients(&mocks.MockIAMClient{}, nil, nil, &mocks.MockSTSClient{}))
	require.NoError(t, err)

	sim, err := a.Simulator(context.Background(), 2)
	require.NoError(t, err)
	assert.NotNil(t, sim)

	b, err := New(context.Background(), defaultSettings(), Clients{})
	require.NoError(t, err)
	_, err = b.Simulator(context.Background(), 2)
	assert.Error(t, err)
}

func TestNew_AccountLookupUsesConfiguredRegion(t *testing.T) {
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "")
	t.Cleanup(func() { aws.SetRegion("*") })

	settings := defaultSettings()
	settings.Account = "auto"
	settings.Region = "eu-west-1"

	clients := fakeClients(nil, nil, nil, nil)
	var lookupRegion string
	clients.AccountID = func(ctx context.Context) (string, error) {
		c, err := aws.GetAWSClient(ctx, "sts")
		if err != nil {
			return "", err
		}
		lookupRegion = c.(*sts.Client).Options().Region
		return "111122223333", nil
	}

	_, err := New(context.Background(), settings, clients)
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", lookupRegion, "the STS client must be built for the configured region")
}
