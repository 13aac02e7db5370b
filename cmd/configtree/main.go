// Configtree validates a tree of versioned configuration files.
//
// Every version directory must be named v<N>, hold app-config.json and
// app-config-schema.json, and the configuration must satisfy the schema and
// declare "version": N.
//
// Usage:
//
//	# Validate ./configurations (configurations/<environment>/v<N>/)
//	configtree
//
//	# Use a project file
//	configtree --config ci/.configtree.yaml
//
//	# Show version information
//	configtree version
//
// The exit status is 0 when every directory is valid and 1 otherwise.
package main

func main() {
	Execute()
}
