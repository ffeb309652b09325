// Package publish moves rendered policy documents between iamcatalog and the
// places they are kept: stdout, local files, S3 objects, SSM parameters and
// IAM customer managed policies.
package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	ssmtypes "github.com/aws/aws-sdk-go-v2/service/ssm/types"

	"iamcatalog/internal/logging"
)

var (
	// ErrUnsupportedTarget is returned for locations no sink can handle
	ErrUnsupportedTarget = errors.New("unsupported target")
	// ErrNoClient is returned when a location needs an AWS client that was not configured
	ErrNoClient = errors.New("no client configured")
)

// Kind identifies the sink a location refers to
type Kind string

const (
	KindStdout Kind = "stdout"
	KindFile   Kind = "file"
	KindS3     Kind = "s3"
	KindSSM    Kind = "ssm"
	KindIAM    Kind = "iam"
)

// Target is a parsed location
type Target struct {
	Kind Kind
	// Bucket is set for s3 targets
	Bucket string
	// Name is the file path, object key, parameter name or policy name
	Name string
	// Path is the IAM policy path, always starting and ending with "/"
	Path string
}

// String renders the target back into its location form
func (t Target) String() string {
	switch t.Kind {
	case KindStdout:
		return "-"
	case KindS3:
		return "s3://" + t.Bucket + "/" + t.Name
	case KindSSM:
		return "ssm://" + strings.TrimPrefix(t.Name, "/")
	case KindIAM:
		return "iam://" + strings.TrimPrefix(t.Path, "/") + t.Name
	default:
		return t.Name
	}
}

// ParseTarget parses "-", "stdout", a file path, file://path, s3://bucket/key,
// ssm://name or iam://[path/]PolicyName
func ParseTarget(location string) (Target, error) {
	location = strings.TrimSpace(location)
	if location == "" || location == "-" || location == "stdout" {
		return Target{Kind: KindStdout}, nil
	}

	scheme, rest, found := strings.Cut(location, "://")
	if !found {
		return Target{Kind: KindFile, Name: location}, nil
	}

	switch strings.ToLower(scheme) {
	case "file":
		if rest == "" {
			return Target{}, fmt.Errorf("%w: %s has no path", ErrUnsupportedTarget, location)
		}
		return Target{Kind: KindFile, Name: rest}, nil
	case "s3":
		bucket, key, ok := strings.Cut(rest, "/")
		if !ok || bucket == "" || key == "" {
			return Target{}, fmt.Errorf("%w: %s needs s3://bucket/key", ErrUnsupportedTarget, location)
		}
		return Target{Kind: KindS3, Bucket: bucket, Name: key}, nil
	case "ssm":
		if rest == "" {
			return Target{}, fmt.Errorf("%w: %s has no parameter name", ErrUnsupportedTarget, location)
		}
		name := rest
		if strings.Contains(name, "/") && !strings.HasPrefix(name, "/") {
			name = "/" + name
		}
		return Target{Kind: KindSSM, Name: name}, nil
	case "iam":
		rest = strings.Trim(rest, "/")
		if rest == "" {
			return Target{}, fmt.Errorf("%w: %s has no policy name", ErrUnsupportedTarget, location)
		}
		dir, name := path.Split(rest)
		return Target{Kind: KindIAM, Name: name, Path: "/" + dir}, nil
	}
	return Target{}, fmt.Errorf("%w: %s", ErrUnsupportedTarget, location)
}

// IAMAPI is the slice of the IAM client used to create policies
type IAMAPI interface {
	CreatePolicy(ctx context.Context, params *iam.CreatePolicyInput, optFns ...func(*iam.Options)) (*iam.CreatePolicyOutput, error)
}

// S3API is the slice of the S3 client used to store documents
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// SSMAPI is the slice of the SSM client used to store documents
type SSMAPI interface {
	PutParameter(ctx context.Context, params *ssm.PutParameterInput, optFns ...func(*ssm.Options)) (*ssm.PutParameterOutput, error)
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// Publisher writes and reads documents. AWS clients are only needed for the
// kinds of locations actually used.
type Publisher struct {
	IAM IAMAPI
	S3  S3API
	SSM SSMAPI

	Stdout io.Writer
	Stdin  io.Reader

	// Description is attached to IAM policies and SSM parameters
	Description string
}

// Publish writes document to location and returns where it ended up
// (the policy ARN for IAM targets).
func (p *Publisher) Publish(ctx context.Context, location string, document []byte) (string, error) {
	target, err := ParseTarget(location)
	if err != nil {
		return "", err
	}

	startTime := time.Now()
	logging.LogOperationStart("publish", map[string]interface{}{"resource": target.String(), "kind": string(target.Kind)})

	written, err := p.publish(ctx, target, document)
	logging.LogOperationEnd("publish", time.Since(startTime), err == nil, 1, boolToInt(err == nil), err)
	if err != nil {
		return "", fmt.Errorf("publishing to %s: %w", target, err)
	}
	return written, nil
}

func (p *Publisher) publish(ctx context.Context, target Target, document []byte) (string, error) {
	switch target.Kind {
	case KindStdout:
		out := p.Stdout
		if out == nil {
			out = os.Stdout
		}
		if _, err := out.Write(append(bytes.TrimRight(document, "\n"), '\n')); err != nil {
			return "", err
		}
		return target.String(), nil

	case KindFile:
		if err := os.WriteFile(target.Name, append(bytes.TrimRight(document, "\n"), '\n'), 0o644); err != nil {
			return "", err
		}
		return target.Name, nil

	case KindS3:
		if p.S3 == nil {
			return "", fmt.Errorf("%w: s3", ErrNoClient)
		}
		start := time.Now()
		_, err := p.S3.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(target.Bucket),
			Key:         aws.String(target.Name),
			Body:        bytes.NewReader(document),
			ContentType: aws.String("application/json"),
		})
		logging.LogAPICall("s3:PutObject", err == nil, time.Since(start), err)
		if err != nil {
			return "", err
		}
		return target.String(), nil

	case KindSSM:
		if p.SSM == nil {
			return "", fmt.Errorf("%w: ssm", ErrNoClient)
		}
		input := &ssm.PutParameterInput{
			Name:      aws.String(target.Name),
			Value:     aws.String(string(document)),
			Type:      ssmtypes.ParameterTypeString,
			Overwrite: aws.Bool(true),
		}
		if p.Description != "" {
			input.Description = aws.String(p.Description)
		}
		start := time.Now()
		_, err := p.SSM.PutParameter(ctx, input)
		logging.LogAPICall("ssm:PutParameter", err == nil, time.Since(start), err)
		if err != nil {
			return "", err
		}
		return target.String(), nil

	case KindIAM:
		if p.IAM == nil {
			return "", fmt.Errorf("%w: iam", ErrNoClient)
		}
		input := &iam.CreatePolicyInput{
			PolicyName:     aws.String(target.Name),
			PolicyDocument: aws.String(string(document)),
			Path:           aws.String(target.Path),
		}
		if p.Description != "" {
			input.Description = aws.String(p.Description)
		}
		start := time.Now()
		out, err := p.IAM.CreatePolicy(ctx, input)
		logging.LogAPICall("iam:CreatePolicy", err == nil, time.Since(start), err)
		if err != nil {
			return "", err
		}
		if out.Policy != nil && out.Policy.Arn != nil {
			return aws.ToString(out.Policy.Arn), nil
		}
		return target.String(), nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedTarget, target.Kind)
}

// Fetch reads a document from location. IAM policies cannot be fetched.
func (p *Publisher) Fetch(ctx context.Context, location string) ([]byte, error) {
	target, err := ParseTarget(location)
	if err != nil {
		return nil, err
	}

	data, err := p.fetch(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", target, err)
	}
	return data, nil
}

func (p *Publisher) fetch(ctx context.Context, target Target) ([]byte, error) {
	switch target.Kind {
	case KindStdout:
		in := p.Stdin
		if in == nil {
			in = os.Stdin
		}
		return io.ReadAll(in)

	case KindFile:
		return os.ReadFile(target.Name)

	case KindS3:
		if p.S3 == nil {
			return nil, fmt.Errorf("%w: s3", ErrNoClient)
		}
		start := time.Now()
		out, err := p.S3.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(target.Bucket),
			Key:    aws.String(target.Name),
		})
		logging.LogAPICall("s3:GetObject", err == nil, time.Since(start), err)
		if err != nil {
			return nil, err
		}
		defer out.Body.Close()
		return io.ReadAll(out.Body)

	case KindSSM:
		if p.SSM == nil {
			return nil, fmt.Errorf("%w: ssm", ErrNoClient)
		}
		start := time.Now()
		out, err := p.SSM.GetParameter(ctx, &ssm.GetParameterInput{Name: aws.String(target.Name)})
		logging.LogAPICall("ssm:GetParameter", err == nil, time.Since(start), err)
		if err != nil {
			return nil, err
		}
		if out.Parameter == nil {
			return nil, fmt.Errorf("parameter %s has no value", target.Name)
		}
		return []byte(aws.ToString(out.Parameter.Value)), nil
	}
	return nil, fmt.Errorf("%w: cannot read from %s", ErrUnsupportedTarget, target.Kind)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
