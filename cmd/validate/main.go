// Command validate checks a tunables file the way the controller will read
// it: line syntax, value parsing for every tunable, and key resolution under
// the chosen match mode.
//
// Usage:
//
//	go run ./cmd/validate \
//	  -file Mods/SailwindStormController/config.txt \
//	  -match contains
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/couchcryptid/storm-controller/internal/adapter/tunablefile"
	"github.com/couchcryptid/storm-controller/internal/config"
	"github.com/couchcryptid/storm-controller/internal/domain"
)

// phase tracks pass/fail for a validation phase.
type phase struct {
	name   string
	errors []string
}

func (p *phase) errorf(format string, args ...any) {
	p.errors = append(p.errors, fmt.Sprintf(format, args...))
}

func (p *phase) passed() bool { return len(p.errors) == 0 }

func main() {
	path := flag.String("file", config.DefaultTunablesPath, "tunables file to check")
	match := flag.String("match", domain.MatchContains.String(), "key match mode: contains or exact")
	flag.Parse()

	mode, err := domain.ParseMatchMode(*match)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid -match: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	os.Exit(run(os.Stdout, *path, mode))
}

func run(w io.Writer, path string, mode domain.MatchMode) int {
	fmt.Fprintf(w, "=== Tunables Validation: %s (%s) ===\n\n", path, mode)

	entries, lineErrs, err := tunablefile.Load(path)
	if err != nil {
		fmt.Fprintf(w, "FATAL: %v\n", err)
		return 1
	}

	phases := []*phase{
		validateSyntax(lineErrs),
		validateValues(entries, mode),
		validateKeys(entries, mode),
	}

	allPassed := true
	for _, p := range phases {
		status := "PASS"
		if !p.passed() {
			status = fmt.Sprintf("FAIL (%d errors)", len(p.errors))
			allPassed = false
		}
		fmt.Fprintf(w, "  %-24s %s\n", p.name, status)
	}

	fmt.Fprintf(w, "\nEntries: %d parsed, %d malformed\n", len(entries), len(lineErrs))

	for _, p := range phases {
		if p.passed() {
			continue
		}
		fmt.Fprintf(w, "\n--- %s ---\n", p.name)
		for i, e := range p.errors {
			fmt.Fprintf(w, "  [%d] %s\n", i+1, e)
		}
	}

	if allPassed {
		fmt.Fprintln(w, "\nAll validations passed.")
		return 0
	}
	fmt.Fprintln(w, "\nValidation FAILED.")
	return 1
}

func validateSyntax(lineErrs []domain.LineError) *phase {
	p := &phase{name: "Line syntax"}
	for _, le := range lineErrs {
		p.errorf("%v", le)
	}
	return p
}

// validateValues resolves every tunable the controller reads and checks its
// value parses.
func validateValues(entries []domain.ConfigEntry, mode domain.MatchMode) *phase {
	p := &phase{name: "Tunable values"}
	for _, f := range domain.DefaultTunables().Fields() {
		raw, found := domain.GetValue(entries, f.Key, mode)
		if !found {
			p.errorf("%s: not set, default %g will be used", f.Key, f.Value)
			continue
		}
		if _, ok := domain.ParseTunable(raw); !ok {
			p.errorf("%s: %q is not a finite number, default %g will be used", f.Key, raw, f.Value)
		}
	}
	return p
}

// validateKeys flags entries the controller never reads and tunables whose
// lookup is shadowed by an earlier matching entry.
func validateKeys(entries []domain.ConfigEntry, mode domain.MatchMode) *phase {
	p := &phase{name: "Key resolution"}
	fields := domain.DefaultTunables().Fields()

	for _, e := range entries {
		used := false
		for _, f := range fields {
			if mode.Matches(e.Key, f.Key) {
				used = true
				break
			}
		}
		if !used {
			p.errorf("%q: unknown key, ignored", e.Key)
		}
	}

	for _, f := range fields {
		var matched []string
		for _, e := range entries {
			if mode.Matches(e.Key, f.Key) {
				matched = append(matched, e.Key)
			}
		}
		if len(matched) > 1 {
			p.errorf("%s: matched by %d entries (%s), only %q is used",
				f.Key, len(matched), strings.Join(matched, ", "), matched[0])
		}
	}
	return p
}
