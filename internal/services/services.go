// Package services exposes one statement builder per AWS service in the
// catalog, with one chainable method per IAM action:
//
//	s := services.NewDlm().CreateLifecyclePolicy().TagResource()
//	s.ActionIDs() // [dlm:CreateLifecyclePolicy dlm:TagResource]
//
// The per-service types live in zz_generated_*.go and are produced from the
// catalog tables by cmd/statementgen.
package services

//go:generate go run ../../cmd/statementgen --catalog ../catalog/services --out .

import (
	"fmt"

	"iamcatalog/internal/arn"
	"iamcatalog/internal/catalog"
	"iamcatalog/internal/domain"
	"iamcatalog/internal/statement"
)

// Service is a statement builder bound to one service table. The generated
// per-service types embed it.
type Service struct {
	*statement.Statement

	registry *catalog.Registry
	def      *domain.ServiceDefinition
	resolver arn.Resolver
	err      error
}

// New returns a builder for any service of reg
func New(reg *catalog.Registry, prefix string) (*Service, error) {
	def, err := reg.Lookup(prefix)
	if err != nil {
		return nil, err
	}
	return newService(reg, def), nil
}

func newService(reg *catalog.Registry, def *domain.ServiceDefinition) *Service {
	return &Service{
		Statement: statement.New(),
		registry:  reg,
		def:       def,
		resolver:  arn.DefaultResolver(),
	}
}

func newDefault(prefix string) *Service {
	reg := catalog.Default()
	return newService(reg, reg.MustLookup(prefix))
}

// ServicePrefix returns the IAM namespace of the service, e.g. "dlm"
func (s *Service) ServicePrefix() string {
	return s.def.Prefix
}

// ServiceName returns the human readable service name
func (s *Service) ServiceName() string {
	return s.def.Name
}

// Actions returns the action table of the service
func (s *Service) Actions() domain.Actions {
	return s.def.ActionTable()
}

// ResourceTypes returns the resource type table of the service
func (s *Service) ResourceTypes() domain.ResourceTypes {
	return s.def.ResourceTypeTable()
}

// AddAction adds "<prefix>:<name>" for an action name of this service. Like
// Add it does not check the name against the table.
func (s *Service) AddAction(name string) *Service {
	s.Add(s.def.ActionID(name))
	return s
}

// AddAccessLevel adds every action of the service with the given access level
func (s *Service) AddAccessLevel(levels ...domain.AccessLevel) *Service {
	wanted := make(map[domain.AccessLevel]bool, len(levels))
	for _, l := range levels {
		wanted[l] = true
	}
	for _, name := range s.def.Actions.Names() {
		if wanted[s.def.Actions[name].AccessLevel] {
			s.AddAction(name)
		}
	}
	return s
}

// SetResolver replaces the partition/region/account defaults used to fill
// ARN templates
func (s *Service) SetResolver(r arn.Resolver) {
	s.resolver = r
}

// ResourceARN fills the ARN template of a resource type
func (s *Service) ResourceARN(resourceType string, values map[string]string) (string, error) {
	rt, ok := s.def.ResourceTypes[resourceType]
	if !ok {
		return "", fmt.Errorf("service %s has no resource type %q", s.def.Prefix, resourceType)
	}
	return s.resolver.Resolve(rt.ARN, values)
}

// OnResource resolves a resource type's ARN and restricts the statement to it
func (s *Service) OnResource(resourceType string, values map[string]string) error {
	resolved, err := s.ResourceARN(resourceType, values)
	if err != nil {
		return err
	}
	s.On(resolved)
	return nil
}

// onResource is used by the generated On<Type> methods. The first failure is
// kept and reported by Err so the methods can stay chainable.
func (s *Service) onResource(resourceType string, values map[string]string) {
	if err := s.OnResource(resourceType, values); err != nil && s.err == nil {
		s.err = err
	}
}

// Err returns the first error from a generated On<Type> method
func (s *Service) Err() error {
	return s.err
}

// Validate lints the statement against the catalog
func (s *Service) Validate() []domain.Finding {
	return statement.Lint(s.Statement, s.registry)
}
