package requirements

import (
	"testing"

	"github.com/david1155/wildver/pkg/version"
)

func mustVersions(t *testing.T, texts ...string) []version.Version {
	t.Helper()
	out := make([]version.Version, len(texts))
	for i, s := range texts {
		v, err := version.Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", s, err)
		}
		out[i] = v
	}
	return out
}

func mustPattern(t *testing.T, s string) version.Pattern {
	t.Helper()
	p, err := version.ParsePattern(s)
	if err != nil {
		t.Fatalf("ParsePattern(%q) failed: %v", s, err)
	}
	return p
}

func checkToolchainRuntime(t *testing.T, set *Set) {
	t.Helper()
	if got, want := set.Len(), 2; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	names := set.Names()
	if len(names) != 2 || names[0] != "runtime" || names[1] != "toolchain" {
		t.Errorf("Names() = %v, want [runtime toolchain]", names)
	}
	p, ok := set.Pattern("toolchain")
	if !ok {
		t.Fatal("Pattern(toolchain) not found")
	}
	if got, want := p.String(), "1.2.*"; got != want {
		t.Errorf("Pattern(toolchain) = %q, want %q", got, want)
	}
}

func TestDecodeJSON(t *testing.T) {
	data := []byte(`{"requirements": {"toolchain": "1.2.*", "runtime": "2.0"}}`)
	set, err := DecodeJSON(data)
	if err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}
	checkToolchainRuntime(t, set)
}

func TestDecodeYAML(t *testing.T) {
	data := []byte("requirements:\n  toolchain: \"1.2.*\"\n  runtime: \"2.0\"\n")
	set, err := DecodeYAML(data)
	if err != nil {
		t.Fatalf("DecodeYAML failed: %v", err)
	}
	checkToolchainRuntime(t, set)
}

func TestDecodeFallback(t *testing.T) {
	// JSON documents are valid YAML too, so both shapes go through Decode
	docs := [][]byte{
		[]byte(`{"requirements": {"toolchain": "1.2.*", "runtime": "2.0"}}`),
		[]byte("requirements:\n  toolchain: \"1.2.*\"\n  runtime: \"2.0\"\n"),
	}
	for _, data := range docs {
		set, err := Decode(data)
		if err != nil {
			t.Fatalf("Decode(%s) failed: %v", data, err)
		}
		checkToolchainRuntime(t, set)
	}

	if _, err := Decode(nil); err == nil {
		t.Error("Decode(nil) succeeded, want error")
	}
	if _, err := Decode([]byte("{not valid in either format")); err == nil {
		t.Error("Decode of malformed document succeeded, want error")
	}
}

func TestDecodeBadPattern(t *testing.T) {
	data := []byte(`{"requirements": {"toolchain": "1.x"}}`)
	if _, err := DecodeJSON(data); err == nil {
		t.Error("DecodeJSON with invalid pattern succeeded, want error")
	}
}

func TestDecodeHCL(t *testing.T) {
	data := []byte("toolchain = \"1.2.*\"\nruntime = \"2.0\"\n")
	set, err := DecodeHCL(data, "requirements.hcl")
	if err != nil {
		t.Fatalf("DecodeHCL failed: %v", err)
	}
	checkToolchainRuntime(t, set)
}

func TestDecodeHCLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax error", "toolchain = \n"},
		{"non-string value", "toolchain = 12\n"},
		{"invalid pattern", "toolchain = \"1.x\"\n"},
	}

	for _, tc := range tests {
		if _, err := DecodeHCL([]byte(tc.data), "requirements.hcl"); err == nil {
			t.Errorf("%s: DecodeHCL succeeded, want error", tc.name)
		}
	}
}

func TestSatisfied(t *testing.T) {
	set := NewSet(
		Requirement{Name: "toolchain", Pattern: mustPattern(t, "1.2.*")},
		Requirement{Name: "runtime", Pattern: mustPattern(t, "2.0")},
	)

	tests := []struct {
		name    string
		version string
		want    bool
	}{
		{"toolchain", "1.2.9", true},
		{"toolchain", "1.3.0", false},
		{"runtime", "2.0.4", true},
		{"runtime", "2.1.0", false},
		{"unknown", "1.0.0", false},
	}

	for _, tc := range tests {
		v := mustVersions(t, tc.version)[0]
		if got := set.Satisfied(tc.name, v); got != tc.want {
			t.Errorf("Satisfied(%q, %q) = %v, want %v", tc.name, tc.version, got, tc.want)
		}
	}
}

func TestResolve(t *testing.T) {
	set := NewSet(
		Requirement{Name: "toolchain", Pattern: mustPattern(t, "1.*")},
		Requirement{Name: "runtime", Pattern: mustPattern(t, "9.*")},
	)
	candidates := mustVersions(t, "1.0.0", "1.0.1", "1.1.0", "1.0.2", "2.0.0")

	got, ok := set.Resolve("toolchain", candidates)
	if !ok {
		t.Fatal("Resolve(toolchain) found nothing")
	}
	if want := "1.1.0"; got.String() != want {
		t.Errorf("Resolve(toolchain) = %q, want %q", got, want)
	}

	if _, ok := set.Resolve("runtime", candidates); ok {
		t.Error("Resolve(runtime) found a match, want none")
	}
	if _, ok := set.Resolve("unknown", candidates); ok {
		t.Error("Resolve(unknown) found a match, want none")
	}
	if _, ok := set.Resolve("toolchain", nil); ok {
		t.Error("Resolve over empty candidates found a match, want none")
	}
}
