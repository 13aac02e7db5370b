package schema

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// resourceURL identifies the in-memory schema resource handed to the compiler.
const resourceURL = "https://configtree.invalid/app-config-schema.json"

// Validator compiles schemas and validates documents against them.
type Validator struct {
	draft   *jsonschema.Draft
	vocabs  []*jsonschema.Vocabulary
	printer *message.Printer
	logger  *slog.Logger
}

// Option defines a functional option for configuring the Validator.
type Option func(*Validator)

// WithDraft sets the draft assumed for schemas that do not declare "$schema".
func WithDraft(draft *jsonschema.Draft) Option {
	return func(v *Validator) {
		v.draft = draft
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) {
		v.logger = logger
	}
}

// NewValidator creates a Validator with the "uniqueItemProperties" vocabulary
// registered.
func NewValidator(opts ...Option) (*Validator, error) {
	v := &Validator{
		draft:   jsonschema.Draft7,
		printer: message.NewPrinter(language.English),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.logger == nil {
		v.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	vocab, err := uniqueItemPropertiesVocabulary()
	if err != nil {
		return nil, fmt.Errorf("failed to build uniqueItemProperties vocabulary: %w", err)
	}
	v.vocabs = append(v.vocabs, vocab)

	return v, nil
}

// Validate compiles schema and checks document against it.
// It returns *CompileError if the schema is invalid and *ValidationFailure
// carrying every violation if the document does not conform.
func (v *Validator) Validate(document, schema any) error {
	compiled, err := v.compile(schema)
	if err != nil {
		v.logger.Debug("schema compilation failed", "error", err)
		return &CompileError{Err: err}
	}

	err = compiled.Validate(document)
	if err == nil {
		return nil
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return fmt.Errorf("failed to validate document: %w", err)
	}

	violations := v.flatten(verr, nil)
	sortViolations(violations)
	v.logger.Debug("document does not match schema", "violations", len(violations))

	return &ValidationFailure{Violations: violations}
}

func (v *Validator) compile(schema any) (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	c.DefaultDraft(v.draft)
	c.AssertVocabs()
	for _, vocab := range v.vocabs {
		c.RegisterVocabulary(vocab)
	}

	if err := c.AddResource(resourceURL, schema); err != nil {
		return nil, err
	}
	return c.Compile(resourceURL)
}

// flatten collects the leaves of the engine's error tree. Intermediate nodes
// only group their causes (e.g. "allOf failed") and carry no detail of their own.
func (v *Validator) flatten(verr *jsonschema.ValidationError, out []Violation) []Violation {
	if len(verr.Causes) == 0 {
		return append(out, Violation{
			InstanceLocation: pointer(verr.InstanceLocation),
			KeywordLocation:  keywordLocation(verr.SchemaURL, verr.ErrorKind.KeywordPath()),
			Message:          verr.ErrorKind.LocalizedString(v.printer),
		})
	}
	for _, cause := range verr.Causes {
		out = v.flatten(cause, out)
	}
	return out
}

func sortViolations(violations []Violation) {
	slices.SortFunc(violations, func(a, b Violation) int {
		return cmp.Or(
			cmp.Compare(a.InstanceLocation, b.InstanceLocation),
			cmp.Compare(a.KeywordLocation, b.KeywordLocation),
			cmp.Compare(a.Message, b.Message),
		)
	})
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func pointer(tokens []string) string {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteByte('/')
		sb.WriteString(pointerEscaper.Replace(tok))
	}
	return sb.String()
}

// keywordLocation joins the fragment of the failing subschema with the path of
// the keyword inside it.
func keywordLocation(schemaURL string, keywordPath []string) string {
	_, frag, _ := strings.Cut(schemaURL, "#")
	return frag + pointer(keywordPath)
}
