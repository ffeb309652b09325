package statement

import (
	"encoding/json"
	"fmt"

	"iamcatalog/internal/domain"
)

// Document groups statements into an IAM policy document
type Document struct {
	statements []*Statement
}

// NewDocument returns a document holding the given statements
func NewDocument(statements ...*Statement) *Document {
	d := &Document{}
	return d.Add(statements...)
}

// Add appends statements to the document, skipping nil entries
func (d *Document) Add(statements ...*Statement) *Document {
	for _, s := range statements {
		if s != nil {
			d.statements = append(d.statements, s)
		}
	}
	return d
}

// Statements returns the statements of the document
func (d *Document) Statements() []*Statement {
	return append([]*Statement(nil), d.statements...)
}

// Render produces the policy document
func (d *Document) Render() domain.PolicyDocument {
	doc := domain.PolicyDocument{
		Version:   domain.PolicyVersion,
		Statement: make([]domain.PolicyStatement, 0, len(d.statements)),
	}
	for _, s := range d.statements {
		doc.Statement = append(doc.Statement, s.Render())
	}
	return doc
}

// MarshalJSON renders the document
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Render())
}

// ToJSON renders the document as indented JSON
func (d *Document) ToJSON() (string, error) {
	b, err := json.MarshalIndent(d.Render(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render policy document: %w", err)
	}
	return string(b), nil
}
