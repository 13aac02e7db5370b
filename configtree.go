package configtree

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/aretw0/configtree/pkg/document"
	"github.com/aretw0/configtree/pkg/schema"
	"github.com/aretw0/configtree/pkg/tree"
)

const (
	// DefaultConfigurationsDir is the root validated by ValidateConfigurations
	// when no path is given.
	DefaultConfigurationsDir = "configurations"
	// DefaultVersionsDir is the root validated by ValidateVersions when no path
	// is given.
	DefaultVersionsDir = "versions"
)

// Engine is the high-level entry point for the configtree library.
// It wires a document loader, a schema validator and a tree walker together.
type Engine struct {
	walker    *tree.Walker
	loader    document.Loader
	validator tree.SchemaValidator
	draft     *jsonschema.Draft
	hooks     tree.Hooks
	logger    *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLoader injects a custom document Loader instead of reading files from disk.
func WithLoader(l document.Loader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithSchemaValidator injects a custom validator, bypassing the default JSON
// Schema engine.
func WithSchemaValidator(v tree.SchemaValidator) Option {
	return func(e *Engine) {
		e.validator = v
	}
}

// WithDraft sets the JSON Schema draft assumed for schemas without "$schema".
// It has no effect together with WithSchemaValidator.
func WithDraft(draft *jsonschema.Draft) Option {
	return func(e *Engine) {
		e.draft = draft
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks tree.Hooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New initializes a new Engine.
// By default it reads JSON files from disk and validates them with the
// built-in JSON Schema engine.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.logger == nil {
		eng.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if eng.loader == nil {
		eng.loader = document.NewFileLoader()
	}
	if eng.validator == nil {
		schemaOpts := []schema.Option{schema.WithLogger(eng.logger)}
		if eng.draft != nil {
			schemaOpts = append(schemaOpts, schema.WithDraft(eng.draft))
		}
		v, err := schema.NewValidator(schemaOpts...)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize schema validator: %w", err)
		}
		eng.validator = v
	}

	eng.walker = tree.NewWalker(eng.loader, eng.validator,
		tree.WithLogger(eng.logger),
		tree.WithHooks(eng.hooks),
	)
	return eng, nil
}

// ValidateConfigurations validates a configurations/<environment>/v<N>/ tree.
// An empty dir means DefaultConfigurationsDir.
func (e *Engine) ValidateConfigurations(ctx context.Context, dir string) error {
	if dir == "" {
		dir = DefaultConfigurationsDir
	}
	return e.walker.WalkConfigurations(ctx, filepath.Clean(dir))
}

// ValidateVersions validates a versions/v<N>/ tree.
// An empty dir means DefaultVersionsDir.
func (e *Engine) ValidateVersions(ctx context.Context, dir string) error {
	if dir == "" {
		dir = DefaultVersionsDir
	}
	return e.walker.WalkVersions(ctx, filepath.Clean(dir))
}

// Validate validates dir with the given layout, defaulting dir per layout.
func (e *Engine) Validate(ctx context.Context, layout tree.Layout, dir string) error {
	switch layout {
	case tree.LayoutEnvironments:
		return e.ValidateConfigurations(ctx, dir)
	case tree.LayoutVersions:
		return e.ValidateVersions(ctx, dir)
	}
	return e.walker.Walk(ctx, layout, dir)
}
