package document

import (
	"bytes"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Loader defines how documents are retrieved by path.
// This allows the source (filesystem, memory) to be decoupled from the walker.
type Loader interface {
	// Load reads the document at path and returns its decoded value.
	Load(path string) (any, error)
}

// FileLoader implements Loader using the local filesystem.
type FileLoader struct{}

// NewFileLoader creates a loader that reads JSON files from disk.
func NewFileLoader() *FileLoader {
	return &FileLoader{}
}

// Load reads the file at path and decodes it as JSON.
func (l *FileLoader) Load(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: unwrapPathError(err)}
	}
	return Decode(path, data)
}

// Decode parses data as a single JSON value.
// Numbers are decoded as json.Number; trailing content is rejected.
func Decode(path string, data []byte) (any, error) {
	v, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return v, nil
}

// unwrapPathError strips the *os.PathError layer, since ReadError already
// carries the path.
func unwrapPathError(err error) error {
	if pe, ok := err.(*os.PathError); ok {
		return pe.Err
	}
	return err
}
