package metadata

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/go-loom/loom/pkg/logic"
)

func valid() Metadata {
	return Metadata{
		Name:    "Checkbox",
		Version: "1.0.0",
		Accessibility: Accessibility{
			WCAGLevel: "AA",
			Patterns:  []string{"checkbox"},
			Role:      "checkbox",
			ARIAAttributes: map[string]string{
				"aria-checked": "true, false, or mixed",
			},
		},
		Events: Events{
			Supported: []string{"toggle", "focus", "blur"},
			Required:  []string{"toggle"},
		},
		Structure: Structure{
			Elements: map[logic.Slot]Element{
				"root":  {Type: "button", Role: "checkbox"},
				"label": {Type: "span", Optional: true},
			},
		},
	}
}

func TestValidateAcceptsCompleteMetadata(t *testing.T) {
	if err := valid().Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidateRequiresName(t *testing.T) {
	m := valid()
	m.Name = "  "
	if err := m.Validate(); err == nil {
		t.Error("blank name accepted")
	}
}

func TestValidateRequiresSemverVersion(t *testing.T) {
	for _, version := range []string{"", "banana", "1.2.3.4"} {
		m := valid()
		m.Version = version
		if err := m.Validate(); err == nil {
			t.Errorf("version %q accepted", version)
		}
	}
	m := valid()
	m.Version = "v2.0.0"
	if err := m.Validate(); err != nil {
		t.Errorf("v-prefixed version rejected: %v", err)
	}
}

func TestValidateRequiresElements(t *testing.T) {
	m := valid()
	m.Structure.Elements = nil
	if err := m.Validate(); err == nil {
		t.Error("empty structure accepted")
	}

	m = valid()
	m.Structure.Elements["root"] = Element{Role: "checkbox"}
	err := m.Validate()
	if err == nil {
		t.Fatal("element without type accepted")
	}
	if !strings.Contains(err.Error(), "root") {
		t.Errorf("error %q does not name the offending slot", err.Error())
	}
}

func TestCanonicalVersion(t *testing.T) {
	cases := map[string]string{
		"1.0.0":  "v1.0.0",
		"v1.0.0": "v1.0.0",
		"":       "",
	}
	for in, want := range cases {
		if got := CanonicalVersion(in); got != want {
			t.Errorf("CanonicalVersion(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	m := valid()
	out, err := yaml.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(out), "wcagLevel: AA") {
		t.Errorf("yaml output missing camelCase keys:\n%s", out)
	}

	var back Metadata
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Name != "Checkbox" || back.Structure.Elements["root"].Role != "checkbox" {
		t.Errorf("round trip lost data: %+v", back)
	}
	if err := back.Validate(); err != nil {
		t.Errorf("round-tripped metadata invalid: %v", err)
	}
}
