package aws

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"iamcatalog/internal/logging"
)

var (
	clientCache    = make(map[string]interface{})
	cacheMutex     sync.RWMutex
	regionOverride string
	regionMux      sync.RWMutex
)

// SetRegion forces the region used for clients. Region "*" or "" leaves the
// SDK's own resolution in place. Cached clients built for another region are
// dropped.
func SetRegion(region string) {
	if region == "*" {
		region = ""
	}

	regionMux.Lock()
	changed := regionOverride != region
	regionOverride = region
	regionMux.Unlock()

	if changed {
		cacheMutex.Lock()
		clientCache = make(map[string]interface{})
		cacheMutex.Unlock()
	}
}

func loadConfig(ctx context.Context, service string) (aws.Config, error) {
	regionMux.RLock()
	region := regionOverride
	regionMux.RUnlock()

	opts := []func(*config.LoadOptions) error{
		config.WithRetryMaxAttempts(5),
		config.WithRetryer(func() aws.Retryer {
			return retry.NewAdaptiveMode(func(o *retry.AdaptiveModeOptions) {
				o.StandardOptions = append(o.StandardOptions, func(so *retry.StandardOptions) {
					so.MaxBackoff = 30 * time.Second
				})
			})
		}),
	}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %w", err)
	}
	logging.LogDebug(fmt.Sprintf("Using default credentials for %s client", service), map[string]interface{}{"region": cfg.Region})
	return cfg, nil
}

// GetAWSClient returns a cached AWS client for a service
func GetAWSClient(ctx context.Context, service string) (interface{}, error) {
	cacheMutex.RLock()
	if client, ok := clientCache[service]; ok {
		cacheMutex.RUnlock()
		return client, nil
	}
	cacheMutex.RUnlock()

	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	if client, ok := clientCache[service]; ok {
		return client, nil
	}

	switch service {
	case "iam", "s3", "ssm", "sts":
	default:
		return nil, fmt.Errorf("unknown service: %s", service)
	}

	cfg, err := loadConfig(ctx, service)
	if err != nil {
		return nil, err
	}

	var client interface{}
	switch service {
	case "iam":
		client = iam.NewFromConfig(cfg)
	case "s3":
		client = s3.NewFromConfig(cfg)
	case "ssm":
		client = ssm.NewFromConfig(cfg)
	case "sts":
		client = sts.NewFromConfig(cfg)
	}

	clientCache[service] = client
	return client, nil
}

// IAM returns the cached IAM client
func IAM(ctx context.Context) (*iam.Client, error) {
	c, err := GetAWSClient(ctx, "iam")
	if err != nil {
		return nil, fmt.Errorf("failed to get IAM client: %w", err)
	}
	return c.(*iam.Client), nil
}

// S3 returns the cached S3 client
func S3(ctx context.Context) (*s3.Client, error) {
	c, err := GetAWSClient(ctx, "s3")
	if err != nil {
		return nil, fmt.Errorf("failed to get S3 client: %w", err)
	}
	return c.(*s3.Client), nil
}

// SSM returns the cached SSM client
func SSM(ctx context.Context) (*ssm.Client, error) {
	c, err := GetAWSClient(ctx, "ssm")
	if err != nil {
		return nil, fmt.Errorf("failed to get SSM client: %w", err)
	}
	return c.(*ssm.Client), nil
}

// CallerIdentityAPI is the slice of STS used to look up the caller's account
type CallerIdentityAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// GetAccountID returns the current AWS account ID.
// AWS_ACCOUNT_ID wins over an STS lookup.
func GetAccountID(ctx context.Context) (string, error) {
	if accountID := os.Getenv("AWS_ACCOUNT_ID"); accountID != "" {
		return accountID, nil
	}

	stsClient, err := GetAWSClient(ctx, "sts")
	if err != nil {
		return "", fmt.Errorf("failed to get STS client: %w", err)
	}
	return AccountID(ctx, stsClient.(*sts.Client))
}

// AccountID asks STS for the caller's account
func AccountID(ctx context.Context, client CallerIdentityAPI) (string, error) {
	start := time.Now()
	result, err := client.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	logging.LogAPICall("sts:GetCallerIdentity", err == nil, time.Since(start), err)
	if err != nil {
		return "", fmt.Errorf("failed to get caller identity: %w", err)
	}

	if result == nil || result.Account == nil {
		return "", fmt.Errorf("empty account ID in response")
	}

	return aws.ToString(result.Account), nil
}
