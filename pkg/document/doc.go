// Package document reads structured documents from disk.
//
// Documents are decoded into generic Go values (map[string]any, []any, string,
// bool, nil and json.Number) so that arbitrary JSON Schemas can be applied to
// them without knowing their shape in advance. Numbers keep their exact textual
// form as json.Number.
//
// Failures are reported as *ReadError (the file could not be read) or
// *ParseError (the bytes are not valid JSON). Both carry the offending path and
// unwrap to the underlying cause.
package document
