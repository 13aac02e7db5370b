package schema

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/message"

	"github.com/aretw0/configtree/pkg/document"
)

const (
	uniqueItemPropertiesKeyword = "uniqueItemProperties"
	uniqueItemPropertiesURL     = "https://configtree.invalid/vocab/unique-item-properties"
)

// uniqueItemPropertiesMeta constrains the keyword's own syntax. Schemas using
// any other shape fail to compile.
const uniqueItemPropertiesMeta = `{
	"properties": {
		"uniqueItemProperties": {
			"type": "array",
			"items": {"type": "string"}
		}
	}
}`

func uniqueItemPropertiesVocabulary() (*jsonschema.Vocabulary, error) {
	meta, err := jsonschema.UnmarshalJSON(strings.NewReader(uniqueItemPropertiesMeta))
	if err != nil {
		return nil, err
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(uniqueItemPropertiesURL, meta); err != nil {
		return nil, err
	}
	sch, err := c.Compile(uniqueItemPropertiesURL)
	if err != nil {
		return nil, err
	}

	return &jsonschema.Vocabulary{
		URL:     uniqueItemPropertiesURL,
		Schema:  sch,
		Compile: compileUniqueItemProperties,
	}, nil
}

func compileUniqueItemProperties(_ *jsonschema.CompilerContext, obj map[string]any) (jsonschema.SchemaExt, error) {
	v, ok := obj[uniqueItemPropertiesKeyword]
	if !ok {
		return nil, nil
	}

	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s must be an array of property names, got %T", uniqueItemPropertiesKeyword, v)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	props := make([]string, 0, len(raw))
	for _, p := range raw {
		s, ok := p.(string)
		if !ok {
			return nil, fmt.Errorf("%s must contain only strings, got %T", uniqueItemPropertiesKeyword, p)
		}
		props = append(props, s)
	}
	return &uniqueItemProperties{props: props}, nil
}

// uniqueItemProperties is the compiled form of the keyword.
type uniqueItemProperties struct {
	props []string
}

// Validate reports, per property, the first pair of object items holding equal
// values for it. An item lacking the property counts as holding an absent
// value, so two such items collide. Non-object items are skipped.
func (u *uniqueItemProperties) Validate(ctx *jsonschema.ValidatorContext, v any) {
	items, ok := v.([]any)
	if !ok || len(items) < 2 {
		return
	}

	for _, prop := range u.props {
		if first, second, found := findDuplicate(items, prop); found {
			ctx.AddError(&DuplicateItemProperty{
				Property: prop,
				First:    first,
				Second:   second,
			})
		}
	}
}

func findDuplicate(items []any, prop string) (int, int, bool) {
	for j := 1; j < len(items); j++ {
		b, ok := items[j].(map[string]any)
		if !ok {
			continue
		}
		bv, bok := b[prop]
		for i := 0; i < j; i++ {
			a, ok := items[i].(map[string]any)
			if !ok {
				continue
			}
			av, aok := a[prop]
			if aok != bok {
				continue
			}
			if !aok || document.Equal(av, bv) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// DuplicateItemProperty is the error kind reported when two array items share
// a value for a property listed in "uniqueItemProperties".
type DuplicateItemProperty struct {
	Property string
	First    int
	Second   int
}

func (*DuplicateItemProperty) KeywordPath() []string {
	return []string{uniqueItemPropertiesKeyword}
}

func (k *DuplicateItemProperty) LocalizedString(p *message.Printer) string {
	return p.Sprintf("items at index %d and %d have duplicate values for property '%s'", k.First, k.Second, k.Property)
}
