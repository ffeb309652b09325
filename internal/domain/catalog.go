package domain

import "sort"

// ResourceTypeRef marks a resource type as applicable to an action
type ResourceTypeRef struct {
	Required bool `yaml:"required" toml:"required" json:"required"`
}

// ActionDefinition is the static metadata of one IAM action
type ActionDefinition struct {
	Name          string                     `yaml:"-" toml:"-" json:"name"`
	URL           string                     `yaml:"url" toml:"url" json:"url"`
	Description   string                     `yaml:"description" toml:"description" json:"description"`
	AccessLevel   AccessLevel                `yaml:"access_level" toml:"access_level" json:"access_level"`
	ResourceTypes map[string]ResourceTypeRef `yaml:"resource_types,omitempty" toml:"resource_types,omitempty" json:"resource_types,omitempty"`
	Conditions    []string                   `yaml:"conditions,omitempty" toml:"conditions,omitempty" json:"conditions,omitempty"`
}

// RequiredResourceTypes returns the names of resource types the action requires, sorted
func (a ActionDefinition) RequiredResourceTypes() []string {
	required := make([]string, 0)
	for name, ref := range a.ResourceTypes {
		if ref.Required {
			required = append(required, name)
		}
	}
	sort.Strings(required)
	return required
}

// ResourceTypeDefinition is the static metadata of one resource type
type ResourceTypeDefinition struct {
	Name          string   `yaml:"name" toml:"name" json:"name"`
	ARN           string   `yaml:"arn" toml:"arn" json:"arn"`
	ConditionKeys []string `yaml:"condition_keys" toml:"condition_keys" json:"condition_keys"`
}

// Actions maps action name to its definition
type Actions map[string]ActionDefinition

// ResourceTypes maps resource type name to its definition
type ResourceTypes map[string]ResourceTypeDefinition

// Names returns the action names, sorted
func (a Actions) Names() []string {
	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Names returns the resource type names, sorted
func (r ResourceTypes) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ServiceDefinition is the action and resource-type table of one AWS service.
// A definition is immutable once loaded; the accessors hand out copies.
type ServiceDefinition struct {
	Prefix           string        `yaml:"prefix" toml:"prefix" json:"prefix"`
	Name             string        `yaml:"name" toml:"name" json:"name"`
	DocumentationURL string        `yaml:"documentation_url" toml:"documentation_url" json:"documentation_url"`
	Actions          Actions       `yaml:"actions" toml:"actions" json:"actions"`
	ResourceTypes    ResourceTypes `yaml:"resource_types" toml:"resource_types" json:"resource_types"`
}

// ActionID returns the "<prefix>:<action>" identifier for an action of this service
func (s *ServiceDefinition) ActionID(action string) string {
	return s.Prefix + ":" + action
}

// Action returns a copy of one action definition
func (s *ServiceDefinition) Action(name string) (ActionDefinition, bool) {
	def, ok := s.Actions[name]
	if !ok {
		return ActionDefinition{}, false
	}
	return copyAction(def), true
}

// ActionTable returns a deep copy of the action table
func (s *ServiceDefinition) ActionTable() Actions {
	out := make(Actions, len(s.Actions))
	for name, def := range s.Actions {
		out[name] = copyAction(def)
	}
	return out
}

// ResourceTypeTable returns a deep copy of the resource type table
func (s *ServiceDefinition) ResourceTypeTable() ResourceTypes {
	out := make(ResourceTypes, len(s.ResourceTypes))
	for name, def := range s.ResourceTypes {
		def.ConditionKeys = append([]string(nil), def.ConditionKeys...)
		out[name] = def
	}
	return out
}

func copyAction(def ActionDefinition) ActionDefinition {
	if def.ResourceTypes != nil {
		refs := make(map[string]ResourceTypeRef, len(def.ResourceTypes))
		for k, v := range def.ResourceTypes {
			refs[k] = v
		}
		def.ResourceTypes = refs
	}
	def.Conditions = append([]string(nil), def.Conditions...)
	return def
}
