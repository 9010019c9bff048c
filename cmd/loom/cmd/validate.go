package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-loom/loom/pkg/metadata"
)

func init() {
	RegisterCommand(validateCmd)
}

var validateCmd = &Command{
	Name:  "validate",
	Short: "Validate a metadata YAML document",
	Long: `Validate reads a component metadata document and checks it: the name
must be present, the version must be a semantic version, and the
structure must declare at least one typed element.`,
	Usage: "loom validate <file.yaml>",
	Run:   runValidate,
}

func runValidate(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("validate takes exactly one file")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	var meta metadata.Metadata
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}
	if err := meta.Validate(); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	fmt.Printf("%s: ok (%s %s)\n", args[0], meta.Name, metadata.CanonicalVersion(meta.Version))
	return nil
}
