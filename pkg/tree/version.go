package tree

import (
	"regexp"
	"strconv"
)

const (
	// ConfigFileName is the configuration document inside a version directory.
	ConfigFileName = "app-config.json"
	// SchemaFileName is the JSON Schema describing ConfigFileName.
	SchemaFileName = "app-config-schema.json"
	// VersionField is the configuration key that must match the directory version.
	VersionField = "version"
)

var versionDirPattern = regexp.MustCompile(`^v(\d+)$`)

// ParseVersion returns the declared version encoded in a version directory
// name ("v12" -> 12).
func ParseVersion(name string) (uint64, bool) {
	m := versionDirPattern.FindStringSubmatch(name)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
