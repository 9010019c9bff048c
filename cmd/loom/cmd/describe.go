package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func init() {
	RegisterCommand(describeCmd)
}

var describeCmd = &Command{
	Name:  "describe",
	Short: "Print primitive metadata as YAML",
	Long: `Describe prints the metadata record of one built-in primitive, or of
all of them, as YAML. The output is the same document shape that
"loom validate" accepts.`,
	Usage: "loom describe [primitive]",
	Run:   runDescribe,
}

func runDescribe(args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("describe takes at most one primitive name")
	}

	names := builtinNames()
	if len(args) == 1 {
		if _, ok := builtins[args[0]]; !ok {
			return fmt.Errorf("unknown primitive %q (have: %v)", args[0], names)
		}
		names = args[:1]
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()

	for _, name := range names {
		core := builtins[name]()
		meta := core.Metadata()
		core.Destroy()
		if err := enc.Encode(meta); err != nil {
			return fmt.Errorf("encoding %s: %w", name, err)
		}
	}
	return nil
}
