package tree

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/configtree/pkg/document"
)

// Layout selects the shape of the tree being walked.
type Layout string

const (
	// LayoutEnvironments is root/<environment>/v<N>/.
	LayoutEnvironments Layout = "environments"
	// LayoutVersions is root/v<N>/.
	LayoutVersions Layout = "versions"
)

// SchemaValidator checks a decoded document against a decoded JSON Schema.
type SchemaValidator interface {
	Validate(document, schema any) error
}

// Walker validates configuration trees.
// A Walker holds no per-walk state and can be reused.
type Walker struct {
	loader    document.Loader
	validator SchemaValidator
	logger    *slog.Logger
	hooks     Hooks
}

// Option defines a functional option for configuring the Walker.
type Option func(*Walker)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Walker) {
		w.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks Hooks) Option {
	return func(w *Walker) {
		w.hooks = hooks
	}
}

// NewWalker creates a Walker that reads documents with loader and checks them
// with validator.
func NewWalker(loader document.Loader, validator SchemaValidator, opts ...Option) *Walker {
	w := &Walker{
		loader:    loader,
		validator: validator,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return w
}

// Walk validates root using the given layout.
func (w *Walker) Walk(ctx context.Context, layout Layout, root string) error {
	switch layout {
	case LayoutEnvironments:
		return w.WalkConfigurations(ctx, root)
	case LayoutVersions:
		return w.WalkVersions(ctx, root)
	}
	return fmt.Errorf("unknown layout %q", layout)
}

// WalkConfigurations validates a root/<environment>/v<N>/ tree.
// It returns the first failure encountered.
func (w *Walker) WalkConfigurations(ctx context.Context, root string) error {
	return w.run(ctx, LayoutEnvironments, root, func(r *walk) error {
		entries, err := listDirectory(root)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return &EmptyDirectoryError{Path: root, Expected: "environment"}
		}
		for _, entry := range entries {
			if err := r.environment(root, entry.Name()); err != nil {
				return err
			}
		}
		return nil
	})
}

// WalkVersions validates a root/v<N>/ tree.
// It returns the first failure encountered.
func (w *Walker) WalkVersions(ctx context.Context, root string) error {
	return w.run(ctx, LayoutVersions, root, func(r *walk) error {
		entries, err := listDirectory(root)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return &EmptyDirectoryError{Path: root, Expected: "version"}
		}
		for _, entry := range entries {
			if err := r.version("", root, entry.Name()); err != nil {
				return err
			}
		}
		return nil
	})
}

func (w *Walker) run(ctx context.Context, layout Layout, root string, fn func(*walk) error) error {
	start := time.Now()
	r := &walk{Walker: w, ctx: ctx}

	w.logger.Debug("walk started", "root", root, "layout", layout)
	err := fn(r)

	event := &WalkEvent{
		Root:     root,
		Layout:   layout,
		Versions: r.versions,
		Duration: time.Since(start),
		Err:      err,
	}
	if err != nil {
		event.Kind = KindOf(err)
		w.logger.Debug("walk aborted", "root", root, "kind", event.Kind, "error", err)
	} else {
		w.logger.Info("walk completed", "root", root, "versions", r.versions)
	}
	if w.hooks.OnWalkComplete != nil {
		w.hooks.OnWalkComplete(ctx, event)
	}
	return err
}

// walk holds the traversal state of a single run.
type walk struct {
	*Walker
	ctx      context.Context
	versions int
}

func (r *walk) environment(root, name string) error {
	envPath := filepath.Join(root, name)
	entries, err := listDirectory(envPath)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return &EmptyDirectoryError{Path: envPath, Expected: "version"}
	}

	r.logger.Debug("checking environment", "environment", name, "path", envPath)
	for _, entry := range entries {
		if err := r.version(name, envPath, entry.Name()); err != nil {
			return err
		}
	}
	return nil
}

func (r *walk) version(env, parent, name string) error {
	versionPath := filepath.Join(parent, name)
	if err := checkDirectory(versionPath); err != nil {
		return err
	}
	declared, ok := ParseVersion(name)
	if !ok {
		return &NamingConventionError{Name: name, Path: versionPath}
	}

	configPath := filepath.Join(versionPath, ConfigFileName)
	schemaPath := filepath.Join(versionPath, SchemaFileName)
	if err := checkFile("config", configPath); err != nil {
		return err
	}
	if err := checkFile("schema", schemaPath); err != nil {
		return err
	}

	config, err := r.loadValidated(configPath, schemaPath)
	if err != nil {
		return err
	}

	obj, _ := config.(map[string]any)
	actual, found := obj[VersionField]
	if !found {
		return &MissingFieldError{Path: configPath, Field: VersionField}
	}
	if !versionEquals(declared, actual) {
		return &VersionMismatchError{
			VersionPath: versionPath,
			Declared:    declared,
			ConfigPath:  configPath,
			Actual:      actual,
		}
	}

	r.versions++
	r.logger.Info("version validated", "path", versionPath, "version", declared)
	if r.hooks.OnVersionValidated != nil {
		r.hooks.OnVersionValidated(r.ctx, &VersionEvent{
			Environment: env,
			Path:        versionPath,
			Version:     declared,
		})
	}
	return nil
}

func (r *walk) loadValidated(configPath, schemaPath string) (any, error) {
	wrap := func(err error) error {
		return &FileValidationError{ConfigPath: configPath, SchemaPath: schemaPath, Err: err}
	}

	config, err := r.loader.Load(configPath)
	if err != nil {
		return nil, wrap(err)
	}
	sch, err := r.loader.Load(schemaPath)
	if err != nil {
		return nil, wrap(err)
	}
	if err := r.validator.Validate(config, sch); err != nil {
		return nil, wrap(err)
	}
	return config, nil
}

// versionEquals compares numerically; a non-number never matches.
func versionEquals(declared uint64, actual any) bool {
	n, ok := document.Number(actual)
	return ok && n.Cmp(new(big.Rat).SetUint64(declared)) == 0
}

func checkDirectory(path string) error {
	info, err := os.Lstat(path)
	if err != nil || !info.IsDir() {
		return &NotADirectoryError{Path: path}
	}
	return nil
}

func checkFile(role, path string) error {
	info, err := os.Lstat(path)
	if err != nil || !info.Mode().IsRegular() {
		return &MissingFileError{Role: role, Path: path}
	}
	return nil
}

func listDirectory(path string) ([]os.DirEntry, error) {
	if err := checkDirectory(path); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory '%s': %w", path, err)
	}
	return entries, nil
}
