package tree

import (
	"errors"
	"fmt"

	"github.com/aretw0/configtree/pkg/document"
	"github.com/aretw0/configtree/pkg/schema"
)

// NotADirectoryError reports a path that is missing or is not a directory.
type NotADirectoryError struct {
	Path string
}

func (e *NotADirectoryError) Error() string {
	return fmt.Sprintf("directory '%s' does not exist or is not a directory", e.Path)
}

// EmptyDirectoryError reports a directory without the entries it must hold.
type EmptyDirectoryError struct {
	Path     string
	Expected string // "environment" or "version"
}

func (e *EmptyDirectoryError) Error() string {
	return fmt.Sprintf("no %s directories found in path '%s'", e.Expected, e.Path)
}

// NamingConventionError reports a version directory whose name is not "v<N>".
type NamingConventionError struct {
	Name string
	Path string
}

func (e *NamingConventionError) Error() string {
	return fmt.Sprintf("format of version directory name '%s' in path '%s' should be 'vX' where X is a number", e.Name, e.Path)
}

// MissingFileError reports a required file that is absent or not a regular file.
type MissingFileError struct {
	Role string // "config" or "schema"
	Path string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("%s file '%s' does not exist or is not a file", e.Role, e.Path)
}

// FileValidationError tags a load or schema failure with the configuration it
// was validating.
type FileValidationError struct {
	ConfigPath string
	SchemaPath string
	Err        error
}

func (e *FileValidationError) Error() string {
	return fmt.Sprintf("error validating JSON file '%s': %v", e.ConfigPath, e.Err)
}

func (e *FileValidationError) Unwrap() error {
	return e.Err
}

// MissingFieldError reports a configuration without a required top-level key.
type MissingFieldError struct {
	Path  string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s missing in configuration file '%s'", e.Field, e.Path)
}

// VersionMismatchError reports a configuration whose version field differs from
// the version encoded in its directory name.
type VersionMismatchError struct {
	VersionPath string
	Declared    uint64
	ConfigPath  string
	Actual      any
}

func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("version mismatch: version from path '%s' is %d while version in configuration file '%s' is %s",
		e.VersionPath, e.Declared, e.ConfigPath, formatValue(e.Actual))
}

func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", v)
}

// Kind classifies a failure.
type Kind string

const (
	KindUnknown           Kind = "unknown"
	KindNotADirectory     Kind = "not_a_directory"
	KindEmptyDirectory    Kind = "empty_directory"
	KindNamingConvention  Kind = "naming_convention"
	KindMissingFile       Kind = "missing_file"
	KindRead              Kind = "read"
	KindParse             Kind = "parse"
	KindSchemaCompile     Kind = "schema_compile"
	KindValidationFailure Kind = "validation_failure"
	KindMissingField      Kind = "missing_field"
	KindVersionMismatch   Kind = "version_mismatch"
)

// KindOf returns the Kind of err, looking through wrapped errors.
// It returns "" for a nil error.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	var (
		notDir   *NotADirectoryError
		empty    *EmptyDirectoryError
		naming   *NamingConventionError
		missing  *MissingFileError
		readErr  *document.ReadError
		parseErr *document.ParseError
		compile  *schema.CompileError
		failure  *schema.ValidationFailure
		field    *MissingFieldError
		mismatch *VersionMismatchError
	)

	switch {
	case errors.As(err, &notDir):
		return KindNotADirectory
	case errors.As(err, &empty):
		return KindEmptyDirectory
	case errors.As(err, &naming):
		return KindNamingConvention
	case errors.As(err, &missing):
		return KindMissingFile
	case errors.As(err, &readErr):
		return KindRead
	case errors.As(err, &parseErr):
		return KindParse
	case errors.As(err, &compile):
		return KindSchemaCompile
	case errors.As(err, &failure):
		return KindValidationFailure
	case errors.As(err, &field):
		return KindMissingField
	case errors.As(err, &mismatch):
		return KindVersionMismatch
	}
	return KindUnknown
}
