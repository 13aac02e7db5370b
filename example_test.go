package configtree_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/aretw0/configtree"
)

// ExampleEngine_ValidateConfigurations validates a small tree written to a
// temporary directory.
func ExampleEngine_ValidateConfigurations() {
	root, err := os.MkdirTemp("", "configtree-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(root)

	versionDir := filepath.Join(root, "dev", "v1")
	if err := os.MkdirAll(versionDir, 0o755); err != nil {
		log.Fatal(err)
	}
	files := map[string]string{
		"app-config.json":        `{"version": 1, "name": "checkout"}`,
		"app-config-schema.json": `{"type": "object", "required": ["version", "name"]}`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(versionDir, name), []byte(content), 0o644); err != nil {
			log.Fatal(err)
		}
	}

	eng, err := configtree.New()
	if err != nil {
		log.Fatal(err)
	}

	if err := eng.ValidateConfigurations(context.Background(), root); err != nil {
		fmt.Println("invalid:", err)
		return
	}
	fmt.Println("All validations passed!")

	// Output:
	// All validations passed!
}
