// Package schema validates decoded documents against JSON Schemas.
//
// It wraps github.com/santhosh-tekuri/jsonschema/v6 with a fixed, documented
// configuration: Draft 7 is assumed for schemas without "$schema", every
// violation is collected in one pass, and the non-standard
// "uniqueItemProperties" keyword is registered as a custom vocabulary.
//
// Basic usage:
//
//	v, err := schema.NewValidator()
//	if err != nil {
//	    // the built-in vocabulary failed to compile
//	}
//
//	if err := v.Validate(document, schemaDoc); err != nil {
//	    var failure *schema.ValidationFailure
//	    if errors.As(err, &failure) {
//	        for _, violation := range failure.Violations {
//	            fmt.Println(violation)
//	        }
//	    }
//	}
//
// "uniqueItemProperties" takes a list of property names. An array satisfies it
// when no two object elements hold equal values for any listed property:
//
//	{
//	    "type": "array",
//	    "items": {"type": "object"},
//	    "uniqueItemProperties": ["id"]
//	}
//
// Schemas are compiled on every call; nothing is cached between calls.
package schema
