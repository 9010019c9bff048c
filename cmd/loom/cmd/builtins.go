package cmd

import (
	"sort"

	"github.com/go-loom/loom/pkg/adapter"
	"github.com/go-loom/loom/pkg/metadata"
	"github.com/go-loom/loom/pkg/primitives/button"
	"github.com/go-loom/loom/pkg/primitives/checkbox"
	"github.com/go-loom/loom/pkg/primitives/dropdown"
	"github.com/go-loom/loom/pkg/primitives/menu"
	"github.com/go-loom/loom/pkg/primitives/pagination"
	"github.com/go-loom/loom/pkg/primitives/radio"
	"github.com/go-loom/loom/pkg/primitives/tabs"
	"github.com/go-loom/loom/pkg/primitives/toggle"
)

// instance is the non-generic surface of a component core the CLI needs.
// Every *component.Core[S, E] satisfies it.
type instance interface {
	Metadata() metadata.Metadata
	Connect(a adapter.Adapter) (any, error)
	Destroy()
}

// builtins maps CLI names to constructors for the shipped primitives, each
// preloaded with data that makes a useful demo.
var builtins = map[string]func() instance{
	"button":   func() instance { return button.New(button.Options{Label: "Save"}) },
	"checkbox": func() instance { return checkbox.New(checkbox.Options{Label: "Accept terms"}) },
	"toggle":   func() instance { return toggle.New(toggle.Options{Label: "Dark mode"}) },
	"radio": func() instance {
		return radio.New(radio.Options{Values: []string{"small", "medium", "large"}})
	},
	"tabs": func() instance {
		return tabs.New(tabs.Options{Tabs: []string{"overview", "details", "settings"}})
	},
	"dropdown": func() instance {
		return dropdown.New(dropdown.Options{Items: []string{"apple", "banana", "cherry"}})
	},
	"pagination": func() instance {
		return pagination.New(pagination.Options{Total: 95, PerPage: 10})
	},
	"menu": func() instance {
		return menu.New(menu.Options{Items: []string{"cut", "copy", "paste"}})
	},
}

// builtinNames returns the primitive names in sorted order.
func builtinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
