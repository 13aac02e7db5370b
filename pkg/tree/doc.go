/*
Package tree walks a versioned configuration tree and validates every version
directory in it.

Two layouts are supported. WalkConfigurations expects one level of environment
directories above the version directories:

	configurations/
	  dev/
	    v1/
	      app-config.json
	      app-config-schema.json

WalkVersions expects version directories directly under the root:

	versions/
	  v1/
	    app-config.json
	    app-config-schema.json

A version directory is named "v" followed by decimal digits. Its number is the
declared version, and the "version" field of app-config.json must hold the same
number. app-config.json must also conform to app-config-schema.json.

The walk is depth-first in directory listing order and stops at the first
failure. Errors are typed (see KindOf) and carry the offending paths.
*/
package tree
