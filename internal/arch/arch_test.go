// ./internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"sort"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

const module = "almanac/"

func TestImportBoundaries(t *testing.T) {
	if _, err := exec.LookPath("go"); err != nil {
		t.Skip("go tool not on PATH")
	}
	cmd := exec.Command("go", "list", "-json", module+"...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	outer := []string{
		"almanac/internal/app", "almanac/internal/cli", "almanac/internal/cliutil",
		"almanac/internal/config", "almanac/cmd/",
	}
	bans := map[string][]string{
		// The core packages are the reusable library; nothing internal leaks in.
		"almanac/core/": {"almanac/internal/", "almanac/pkg/", "almanac/cmd/"},
		"almanac/internal/pipeline": append([]string{
			"almanac/internal/writers", "almanac/internal/output",
		}, outer...),
		"almanac/internal/writers": append([]string{"almanac/internal/pipeline"}, outer...),
		"almanac/internal/output":  append([]string{"almanac/internal/pipeline"}, outer...),
		"almanac/pkg/api":          {"almanac/"},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !strings.HasPrefix(p.ImportPath, module) {
			continue
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, module) {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		sort.Strings(violations)
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
