// internal/cliutil/cliutil.go
package cliutil

import (
	"fmt"
	"path/filepath"
	"strings"
)

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandPositionals expands any globs among path-like positionals.
// "-" (stdin) passes through untouched.
func ExpandPositionals(posArgs []string) ([]string, error) {
	var out []string
	for _, a := range posArgs {
		if a == "-" {
			out = append(out, a)
			continue
		}
		if hasGlobMeta(a) {
			m, err := filepath.Glob(a)
			if err != nil {
				return nil, fmt.Errorf("bad glob %q: %v", a, err)
			}
			if len(m) == 0 {
				return nil, fmt.Errorf("no input matched %q", a)
			}
			out = append(out, m...)
		} else {
			out = append(out, a)
		}
	}
	return out, nil
}

// SingleInput expands posArgs and requires exactly one input; no arguments
// means stdin.
func SingleInput(posArgs []string) (string, error) {
	if len(posArgs) == 0 {
		return "-", nil
	}
	in, err := ExpandPositionals(posArgs)
	if err != nil {
		return "", err
	}
	if len(in) != 1 {
		return "", fmt.Errorf("expected one almanac, got %d inputs: %s", len(in), strings.Join(in, " "))
	}
	return in[0], nil
}
