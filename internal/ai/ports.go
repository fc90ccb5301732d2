package ai

import "context"

// Vision is a hosted multimodal model. It knows nothing about smiles.
type Vision interface {
	// Generate sends one prompt with one image attached and returns the raw
	// model reply, which should be JSON matching schema.
	Generate(ctx context.Context, prompt string, img Image, schema Schema) (string, error)
}

type FieldKind string

const (
	KindNumber FieldKind = "number"
	KindString FieldKind = "string"
)

type Field struct {
	Name        string
	Kind        FieldKind
	Description string
	Required    bool
}

// Schema is the flat JSON object a reply must conform to.
type Schema struct {
	Name   string
	Fields []Field
}

func (s Schema) required() []string {
	var out []string
	for _, f := range s.Fields {
		if f.Required {
			out = append(out, f.Name)
		}
	}
	return out
}
