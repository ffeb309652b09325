package statement

import (
	"strings"

	"iamcatalog/internal/catalog"
	"iamcatalog/internal/domain"
)

// Explain annotates every action of a document with its catalog metadata.
// Wildcards are expanded; each match carries the pattern in MatchedBy.
func Explain(doc *Document, reg *catalog.Registry) []domain.ActionExplanation {
	explanations := make([]domain.ActionExplanation, 0)
	for _, s := range doc.Statements() {
		for _, id := range s.ActionIDs() {
			explanations = append(explanations, explainAction(id, reg)...)
		}
	}
	return explanations
}

func explainAction(id string, reg *catalog.Registry) []domain.ActionExplanation {
	prefix, name, ok := strings.Cut(id, ":")
	if ok && isWildcard(name) {
		def, err := reg.Lookup(strings.ToLower(prefix))
		if err != nil {
			return []domain.ActionExplanation{{ActionID: id}}
		}
		matches := ExpandWildcard(name, def)
		if len(matches) == 0 {
			return []domain.ActionExplanation{{ActionID: id}}
		}
		out := make([]domain.ActionExplanation, 0, len(matches))
		for _, m := range matches {
			action, _ := def.Action(m)
			out = append(out, domain.ActionExplanation{
				ActionID:    def.ActionID(m),
				Known:       true,
				AccessLevel: action.AccessLevel,
				Description: action.Description,
				URL:         action.URL,
				MatchedBy:   id,
			})
		}
		return out
	}

	def, action, found := reg.FindAction(id)
	if !found {
		return []domain.ActionExplanation{{ActionID: id}}
	}
	return []domain.ActionExplanation{{
		ActionID:    def.ActionID(action.Name),
		Known:       true,
		AccessLevel: action.AccessLevel,
		Description: action.Description,
		URL:         action.URL,
	}}
}
