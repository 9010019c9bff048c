// Package metadata defines the static descriptive record attached to every
// component instance.
//
// Metadata is descriptive only: it documents a primitive's accessibility
// pattern, event vocabulary, and structural element slots for adapters and
// tooling, and never affects runtime behavior. Records are treated as
// immutable after construction; they are passed and stored by value.
package metadata

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/go-loom/loom/pkg/logic"
)

// Metadata describes one primitive.
type Metadata struct {
	// Name is the primitive name (e.g. "Button").
	Name string `yaml:"name"`
	// Version is the primitive's semantic version (e.g. "1.0.0").
	Version string `yaml:"version"`
	// Accessibility documents the accessibility contract.
	Accessibility Accessibility `yaml:"accessibility"`
	// Events documents the event vocabulary.
	Events Events `yaml:"events"`
	// Structure documents the element slots and variants.
	Structure Structure `yaml:"structure"`
}

// Accessibility documents the accessibility pattern a primitive implements.
type Accessibility struct {
	// WCAGLevel is the conformance level the pattern targets ("A", "AA",
	// "AAA").
	WCAGLevel string `yaml:"wcagLevel"`
	// Patterns lists the applicable interaction patterns (e.g.
	// "button", "listbox").
	Patterns []string `yaml:"patterns"`
	// Role is the primary ARIA role, if the primitive has one.
	Role string `yaml:"role,omitempty"`
	// Label describes how the primitive should be labelled.
	Label string `yaml:"label,omitempty"`
	// ARIAAttributes maps emitted ARIA attributes to a short description.
	ARIAAttributes map[string]string `yaml:"ariaAttributes,omitempty"`
}

// Events documents a primitive's event vocabulary.
type Events struct {
	// Supported lists every event the primitive responds to.
	Supported []string `yaml:"supported"`
	// Required lists events the host must be prepared to observe.
	Required []string `yaml:"required,omitempty"`
	// Custom maps non-standard events to a description of their payload.
	Custom map[string]string `yaml:"custom,omitempty"`
}

// Structure documents a primitive's rendered structure.
type Structure struct {
	// Elements maps each slot to its element description.
	Elements map[logic.Slot]Element `yaml:"elements"`
	// Slots lists content slots the host may fill.
	Slots []string `yaml:"slots,omitempty"`
	// Variants lists supported visual variants.
	Variants []string `yaml:"variants,omitempty"`
	// Sizes lists supported sizes.
	Sizes []string `yaml:"sizes,omitempty"`
}

// Element describes one structural slot.
type Element struct {
	// Type is the expected element type (e.g. "button", "ul").
	Type string `yaml:"type"`
	// Role is the ARIA role applied to the element, if any.
	Role string `yaml:"role,omitempty"`
	// Optional marks slots an adapter may omit.
	Optional bool `yaml:"optional,omitempty"`
}

// Validate checks the structural invariants tooling relies on: a name, a
// valid semantic version, and at least one element with a type. It returns
// the first problem found.
func (m Metadata) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("metadata: name is required")
	}
	if !semver.IsValid(CanonicalVersion(m.Version)) {
		return fmt.Errorf("metadata %q: invalid version %q", m.Name, m.Version)
	}
	if len(m.Structure.Elements) == 0 {
		return fmt.Errorf("metadata %q: structure must declare at least one element", m.Name)
	}
	for slot, el := range m.Structure.Elements {
		if strings.TrimSpace(el.Type) == "" {
			return fmt.Errorf("metadata %q: element %q has no type", m.Name, string(slot))
		}
	}
	return nil
}

// CanonicalVersion normalizes a "1.2.3" style version to the "v1.2.3" form
// the semver package expects. The empty string is returned unchanged (and
// is not a valid version).
func CanonicalVersion(v string) string {
	if v == "" {
		return v
	}
	if !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}
