package services

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"iamcatalog/internal/arn"
	"iamcatalog/internal/catalog"
	"iamcatalog/internal/domain"
)

type builder interface {
	ServicePrefix() string
	Actions() domain.Actions
	ResourceTypes() domain.ResourceTypes
	ActionIDs() []string
}

func allBuilders() map[string]func() builder {
	return map[string]func() builder{
		"cloud9":            func() builder { return NewCloud9() },
		"compute-optimizer": func() builder { return NewComputeOptimizer() },
		"config":            func() builder { return NewConfig() },
		"dlm":               func() builder { return NewDlm() },
		"health":            func() builder { return NewHealth() },
		"savingsplans":      func() builder { return NewSavingsplans() },
		"wafv2":             func() builder { return NewWafv2() },
	}
}

func TestEveryCatalogServiceHasABuilder(t *testing.T) {
	builders := allBuilders()
	for _, prefix := range catalog.Default().Prefixes() {
		newBuilder, ok := builders[prefix]
		require.True(t, ok, "no generated builder for %s", prefix)
		assert.Equal(t, prefix, newBuilder().ServicePrefix())
	}
}

func TestEveryActionMethodAddsItsIdentifier(t *testing.T) {
	for prefix, newBuilder := range allBuilders() {
		for name := range newBuilder().Actions() {
			b := newBuilder()
			method := reflect.ValueOf(b).MethodByName(name)
			require.True(t, method.IsValid(), "%s has no method %s", prefix, name)

			out := method.Call(nil)
			require.Len(t, out, 1)
			assert.Same(t, b, out[0].Interface(), "%s.%s did not return the receiver", prefix, name)
			assert.Equal(t, []string{prefix + ":" + name}, b.ActionIDs())

			// calling twice keeps one copy
			method.Call(nil)
			assert.Equal(t, []string{prefix + ":" + name}, b.ActionIDs())
		}
	}
}

func TestDlm_Chaining(t *testing.T) {
	s := NewDlm().CreateLifecyclePolicy().TagResource()
	assert.Equal(t, []string{"dlm:CreateLifecyclePolicy", "dlm:TagResource"}, s.ActionIDs())

	same := s.GetLifecyclePolicy()
	assert.Same(t, s, same)
	assert.Len(t, s.ActionIDs(), 3)
}

func TestCloud9_CreateEnvironmentEC2(t *testing.T) {
	s := NewCloud9().CreateEnvironmentEC2()
	assert.Equal(t, []string{"cloud9:CreateEnvironmentEC2"}, s.ActionIDs())
	assert.Equal(t, domain.AccessLevelWrite, s.Actions()["CreateEnvironmentEC2"].AccessLevel)
}

func TestWafv2_WebACLTemplate(t *testing.T) {
	assert.Equal(t,
		"arn:${Partition}:wafv2:${Region}:${Account}:${Scope}/webacl/${Name}/${Id}",
		NewWafv2().ResourceTypes()["webacl"].ARN)
}

func TestTablesAreReadOnly(t *testing.T) {
	s := NewDlm()

	first := s.Actions()
	delete(first, "TagResource")
	rts := s.ResourceTypes()
	rts["policy"] = domain.ResourceTypeDefinition{Name: "policy", ARN: "mutated"}

	assert.Contains(t, s.Actions(), "TagResource")
	assert.Equal(t, NewDlm().Actions(), s.Actions())
	assert.Equal(t, "arn:${Partition}:dlm:${Region}:${Account}:policy/${ResourceName}", s.ResourceTypes()["policy"].ARN)
	assert.Equal(t, "dlm", s.ServicePrefix())
}

func TestBuildersAreIndependent(t *testing.T) {
	a := NewDlm().TagResource()
	b := NewDlm()
	assert.Len(t, a.ActionIDs(), 1)
	assert.Empty(t, b.ActionIDs())
}

func TestOnResourceMethods(t *testing.T) {
	s := NewWafv2().GetWebACL().OnWebacl("regional", "main", "a1b2")
	require.NoError(t, s.Err())
	assert.Equal(t, []string{"arn:aws:wafv2:*:*:regional/webacl/main/a1b2"}, s.ResourceARNs())

	s.SetResolver(arn.Resolver{Partition: "aws-us-gov", Region: "us-gov-west-1", Account: "123456789012"})
	s.OnIpset("regional", "blocked", "c3")
	assert.Equal(t, "arn:aws-us-gov:wafv2:us-gov-west-1:123456789012:regional/ipset/blocked/c3", s.ResourceARNs()[1])
}

func TestOnResourceMethods_Error(t *testing.T) {
	s := NewDlm().DeleteLifecyclePolicy().OnPolicy("")
	assert.True(t, errors.Is(s.Err(), arn.ErrUnresolvedPlaceholder))
	assert.Empty(t, s.ResourceARNs())
}

func TestOnResource_UnknownType(t *testing.T) {
	err := NewCloud9().OnResource("bucket", nil)
	assert.Error(t, err)
}

func TestNew_Generic(t *testing.T) {
	s, err := New(catalog.Default(), "savingsplans")
	require.NoError(t, err)

	s.AddAction("DescribeSavingsPlans").AddAction("DescribeSavingsPlans")
	assert.Equal(t, []string{"savingsplans:DescribeSavingsPlans"}, s.ActionIDs())
	assert.Equal(t, "AWS Savings Plans", s.ServiceName())

	_, err = New(catalog.Default(), "nope")
	assert.True(t, errors.Is(err, catalog.ErrUnknownService))
}

func TestAddAccessLevel(t *testing.T) {
	s := NewDlm().AddAccessLevel(domain.AccessLevelTagging)
	assert.Equal(t, []string{"dlm:TagResource", "dlm:UntagResource"}, s.ActionIDs())
}

func TestValidate(t *testing.T) {
	s := NewWafv2().PutPermissionPolicy()
	s.Add("wafv2:Bogus")

	findings := s.Validate()
	severities := make(map[string]domain.Severity)
	for _, f := range findings {
		if f.Action != "" {
			severities[f.Action] = f.Severity
		}
	}
	assert.Equal(t, domain.SeverityError, severities["wafv2:Bogus"])
	assert.Contains(t, severities, "wafv2:PutPermissionPolicy")
}
