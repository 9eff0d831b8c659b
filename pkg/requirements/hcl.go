package requirements

import (
	"fmt"

	"github.com/david1155/wildver/pkg/version"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// DecodeHCL parses an HCL requirements document of top-level string
// attributes:
//
//	toolchain = "1.2.*"
//	runtime   = "2.0"
//
// filename is used in diagnostics only; no file is read.
func DecodeHCL(data []byte, filename string) (*Set, error) {
	file, diags := hclsyntax.ParseConfig(data, filename, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse error in %s: %s", filename, diags.Error())
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid requirements in %s: %s", filename, diags.Error())
	}

	patterns := make(map[string]version.Pattern, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("requirement %q in %s: %s", name, filename, diags.Error())
		}
		if !val.Type().Equals(cty.String) {
			return nil, fmt.Errorf("requirement %q in %s: expected string, got %s",
				name, filename, val.Type().FriendlyName())
		}
		p, err := version.ParsePattern(val.AsString())
		if err != nil {
			return nil, fmt.Errorf("requirement %q in %s: %w", name, filename, err)
		}
		patterns[name] = p
	}

	return &Set{patterns: patterns}, nil
}
