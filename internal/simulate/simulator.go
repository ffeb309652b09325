// Package simulate evaluates rendered policy documents with the IAM policy simulator.
package simulate

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	iamtypes "github.com/aws/aws-sdk-go-v2/service/iam/types"

	"iamcatalog/internal/domain"
	"iamcatalog/internal/logging"
)

// API is the slice of the IAM client the simulator needs
type API interface {
	SimulateCustomPolicy(ctx context.Context, params *iam.SimulateCustomPolicyInput, optFns ...func(*iam.Options)) (*iam.SimulateCustomPolicyOutput, error)
}

// Request is one simulation run
type Request struct {
	PolicyJSON string
	Actions    []string
	Resources  []string
	// Context holds string context keys, e.g. "aws:RequestTag/team" -> ["dev"]
	Context map[string][]string
}

// Simulator runs SimulateCustomPolicy calls, sharing a concurrency limit
// between all callers.
type Simulator struct {
	client     API
	sem        chan struct{}
	maxRetries int
	backoff    time.Duration
}

// New returns a Simulator allowing at most concurrency parallel IAM calls
func New(client API, concurrency int) *Simulator {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Simulator{
		client:     client,
		sem:        make(chan struct{}, concurrency),
		maxRetries: 3,
		backoff:    time.Second,
	}
}

// isThrottlingError checks if an error is a throttling/rate limit error
func isThrottlingError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "Throttling") ||
		strings.Contains(errStr, "Rate exceeded") ||
		strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "429") ||
		strings.Contains(errStr, "TooManyRequests")
}

func (s *Simulator) withRateLimit(ctx context.Context, fn func() error) error {
	select {
	case s.sem <- struct{}{}:
		defer func() { <-s.sem }()
		return fn()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// retryWithBackoff retries fn with exponential backoff on throttling errors
func (s *Simulator) retryWithBackoff(ctx context.Context, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt < s.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt-1)) * s.backoff
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}

		err := fn()
		if err == nil {
			return nil
		}

		lastErr = err
		if !isThrottlingError(err) {
			return err
		}
	}

	return fmt.Errorf("failed after %d retries: %w", s.maxRetries, lastErr)
}

func contextEntries(values map[string][]string) []iamtypes.ContextEntry {
	if len(values) == 0 {
		return nil
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]iamtypes.ContextEntry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, iamtypes.ContextEntry{
			ContextKeyName:   aws.String(k),
			ContextKeyType:   iamtypes.ContextKeyTypeEnumStringList,
			ContextKeyValues: values[k],
		})
	}
	return entries
}

// Simulate evaluates the request and returns one result per action/resource pair.
// Pages of the simulator response are followed until the output is complete.
func (s *Simulator) Simulate(ctx context.Context, req Request) ([]domain.SimulationResult, error) {
	if len(req.Actions) == 0 {
		return nil, fmt.Errorf("at least one action is required")
	}

	startTime := time.Now()
	logging.LogOperationStart("simulate", map[string]interface{}{"actions": len(req.Actions), "resources": len(req.Resources)})

	input := &iam.SimulateCustomPolicyInput{
		PolicyInputList: []string{req.PolicyJSON},
		ActionNames:     req.Actions,
		ResourceArns:    req.Resources,
		ContextEntries:  contextEntries(req.Context),
	}

	var results []domain.SimulationResult
	for {
		var out *iam.SimulateCustomPolicyOutput
		err := s.retryWithBackoff(ctx, func() error {
			return s.withRateLimit(ctx, func() error {
				callStart := time.Now()
				var callErr error
				out, callErr = s.client.SimulateCustomPolicy(ctx, input)
				logging.LogAPICall("iam:SimulateCustomPolicy", callErr == nil, time.Since(callStart), callErr)
				return callErr
			})
		})
		if err != nil {
			err = fmt.Errorf("simulating custom policy: %w", err)
			logging.LogOperationEnd("simulate", time.Since(startTime), false, len(req.Actions), len(results), err)
			return nil, err
		}

		results = append(results, convert(out.EvaluationResults)...)

		if out.Marker == nil || aws.ToString(out.Marker) == "" {
			break
		}
		input.Marker = out.Marker
	}

	logging.LogOperationEnd("simulate", time.Since(startTime), true, len(req.Actions), len(results), nil)
	return results, nil
}

func convert(evals []iamtypes.EvaluationResult) []domain.SimulationResult {
	results := make([]domain.SimulationResult, 0, len(evals))
	for _, eval := range evals {
		action := aws.ToString(eval.EvalActionName)

		if len(eval.ResourceSpecificResults) > 0 {
			for _, rs := range eval.ResourceSpecificResults {
				results = append(results, result(action, aws.ToString(rs.EvalResourceName), rs.EvalResourceDecision))
			}
			continue
		}
		results = append(results, result(action, aws.ToString(eval.EvalResourceName), eval.EvalDecision))
	}
	return results
}

func result(action, resource string, decision iamtypes.PolicyEvaluationDecisionType) domain.SimulationResult {
	if resource == "" {
		resource = "*"
	}
	return domain.SimulationResult{
		Action:   action,
		Resource: resource,
		Decision: string(decision),
		Allowed:  decision == iamtypes.PolicyEvaluationDecisionTypeAllowed,
	}
}

// Outcome is the result of simulating one of several requests
type Outcome struct {
	Request Request
	Results []domain.SimulationResult
	Err     error
}

// SimulateAll runs the requests concurrently, bounded by the simulator's
// concurrency limit. Outcomes are returned in request order.
func (s *Simulator) SimulateAll(ctx context.Context, reqs []Request) []Outcome {
	outcomes := make([]Outcome, len(reqs))

	var wg sync.WaitGroup
	for i, req := range reqs {
		wg.Add(1)
		go func(i int, req Request) {
			defer wg.Done()
			results, err := s.Simulate(ctx, req)
			outcomes[i] = Outcome{Request: req, Results: results, Err: err}
		}(i, req)
	}
	wg.Wait()

	return outcomes
}

// Allowed reports whether every result is an allow
func Allowed(results []domain.SimulationResult) bool {
	if len(results) == 0 {
		return false
	}
	for _, r := range results {
		if !r.Allowed {
			return false
		}
	}
	return true
}
