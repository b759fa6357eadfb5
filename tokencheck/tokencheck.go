// Package tokencheck is a fixture-driven checker for token streams: it runs
// named source snippets through a caller-supplied tokenizer and compares
// the produced sequence against the expected one, reporting mismatches by
// line number.
//
// The checker is a peripheral test harness, not part of the layout core's
// contract; it knows nothing about what the tokens mean.
package tokencheck

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"
)

// Token is one element of a produced or expected token sequence. Kind
// identifies the token class; Text carries its payload where one exists.
type Token struct {
	Kind string `yaml:"kind"`
	Text string `yaml:"text,omitempty"`
}

func (t Token) String() string {
	if t.Text == "" {
		return t.Kind
	}
	return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
}

// Case is one snippet with its expected token sequence. Line is the
// snippet's line in the fixture source, used to tag mismatch reports.
type Case struct {
	Line   int     `yaml:"line"`
	Source string  `yaml:"source"`
	Tokens []Token `yaml:"tokens"`
}

// Fixture is a named group of cases.
type Fixture struct {
	Name  string `yaml:"name"`
	Cases []Case `yaml:"cases"`
}

// LoadFixtures parses a YAML fixture file.
func LoadFixtures(data []byte) ([]Fixture, error) {
	var doc struct {
		Fixtures []Fixture `yaml:"fixtures"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("tokencheck: bad fixture file: %w", err)
	}
	return doc.Fixtures, nil
}

// Tokenizer turns a source snippet into a token sequence. It is supplied by
// the caller; the checker never tokenizes anything itself.
type Tokenizer func(src string) []Token

// Result summarizes one checker run. Err combines one error per failed
// case.
type Result struct {
	Fixtures int
	Cases    int
	Passed   int
	Failed   int
	Err      error
}

// Ok reports whether every case passed.
func (r Result) Ok() bool { return r.Failed == 0 }

// Run executes all fixtures against the tokenizer, writing per-fixture
// progress and line-tagged mismatch reports to w.
func Run(w io.Writer, tokenize Tokenizer, fixtures []Fixture) Result {
	var res Result
	res.Fixtures = len(fixtures)

	total := 0
	for _, f := range fixtures {
		total += len(f.Cases)
	}
	res.Cases = total
	fmt.Fprintf(w, "Running %d test%s\n", total, plural(total))

	for _, f := range fixtures {
		fmt.Fprintf(w, "Testing: %s. ", f.Name)

		okay, failed := 0, 0
		for _, c := range f.Cases {
			found := tokenize(c.Source)
			if tokensEqual(found, c.Tokens) {
				okay++
				continue
			}

			if failed == 0 {
				fmt.Fprintln(w)
			}
			failed++

			fmt.Fprintf(w, "  line %d: %q\n", c.Line, c.Source)
			fmt.Fprintf(w, "    expected: %s\n", formatTokens(c.Tokens))
			fmt.Fprintf(w, "    found:    %s\n", formatTokens(found))

			res.Err = multierr.Append(res.Err,
				fmt.Errorf("%s: token mismatch at line %d", f.Name, c.Line))
		}

		res.Passed += okay
		res.Failed += failed
		fmt.Fprintf(w, "(okay: %d, failed: %d)\n", okay, failed)
	}

	fmt.Fprintf(w, "%d passed, %d failed\n", res.Passed, res.Failed)
	return res
}

func tokensEqual(a, b []Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func formatTokens(tokens []Token) string {
	if len(tokens) == 0 {
		return "(none)"
	}
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
