/*
Package configtree validates trees of versioned configuration files before they
are shipped.

A configuration tree groups JSON configuration documents by environment and
version. Every version directory holds a configuration (app-config.json) and the
JSON Schema it must satisfy (app-config-schema.json):

	configurations/
	  dev/
	    v1/
	      app-config.json          {"version": 1, ...}
	      app-config-schema.json
	  prod/
	    v1/
	    v2/

Validation fails on the first directory that breaks a rule: a missing or empty
directory, a version directory not named "v<N>", a missing file, malformed JSON,
an invalid schema, a document that violates its schema (all violations of that
document are reported together), or a "version" field that differs from N.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/configtree"
	)

	func main() {
		eng, err := configtree.New()
		if err != nil {
			log.Fatal(err)
		}

		// Validates ./configurations
		if err := eng.ValidateConfigurations(context.Background(), ""); err != nil {
			log.Fatal(err)
		}
	}

Schemas may use the non-standard "uniqueItemProperties" keyword to require that
array elements do not repeat a value for the named properties. See package
schema for details.
*/
package configtree
