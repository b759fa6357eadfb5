package tokencheck

import (
	"strings"
	"testing"

	"go.uber.org/multierr"
)

// wordTokenize is a toy tokenizer: every whitespace-separated word becomes
// a word token.
func wordTokenize(src string) []Token {
	var out []Token
	for _, w := range strings.Fields(src) {
		out = append(out, Token{Kind: "word", Text: w})
	}
	return out
}

const fixtureYAML = `
fixtures:
  - name: words
    cases:
      - line: 3
        source: "alpha beta"
        tokens:
          - {kind: word, text: alpha}
          - {kind: word, text: beta}
      - line: 7
        source: "gamma"
        tokens:
          - {kind: word, text: gamma}
  - name: broken
    cases:
      - line: 12
        source: "one two"
        tokens:
          - {kind: word, text: one}
`

func TestLoadFixtures(t *testing.T) {
	fixtures, err := LoadFixtures([]byte(fixtureYAML))
	if err != nil {
		t.Fatal(err)
	}
	if len(fixtures) != 2 {
		t.Fatalf("expected 2 fixtures, got %d", len(fixtures))
	}
	if fixtures[0].Name != "words" || len(fixtures[0].Cases) != 2 {
		t.Fatalf("first fixture: %+v", fixtures[0])
	}
	c := fixtures[0].Cases[0]
	if c.Line != 3 || c.Source != "alpha beta" || len(c.Tokens) != 2 {
		t.Fatalf("first case: %+v", c)
	}
}

func TestLoadFixturesBadYAML(t *testing.T) {
	if _, err := LoadFixtures([]byte("fixtures: [}")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestRun(t *testing.T) {
	fixtures, err := LoadFixtures([]byte(fixtureYAML))
	if err != nil {
		t.Fatal(err)
	}

	var out strings.Builder
	res := Run(&out, wordTokenize, fixtures)

	if res.Fixtures != 2 || res.Cases != 3 {
		t.Fatalf("counts: %+v", res)
	}
	if res.Passed != 2 || res.Failed != 1 {
		t.Fatalf("pass/fail: %+v", res)
	}
	if res.Ok() {
		t.Fatal("a failed case should fail the run")
	}

	errs := multierr.Errors(res.Err)
	if len(errs) != 1 || errs[0].Error() != "broken: token mismatch at line 12" {
		t.Fatalf("combined error: %v", res.Err)
	}

	s := out.String()
	for _, want := range []string{
		"Running 3 tests",
		"Testing: words. (okay: 2, failed: 0)",
		`line 12: "one two"`,
		`expected: [word("one")]`,
		`found:    [word("one") word("two")]`,
		"2 passed, 1 failed",
	} {
		if !strings.Contains(s, want) {
			t.Fatalf("output missing %q:\n%s", want, s)
		}
	}
}

func TestRunAllPass(t *testing.T) {
	fixtures, err := LoadFixtures([]byte(fixtureYAML))
	if err != nil {
		t.Fatal(err)
	}

	var out strings.Builder
	res := Run(&out, wordTokenize, fixtures[:1])
	if !res.Ok() || res.Err != nil {
		t.Fatalf("expected clean run: %+v", res)
	}
	if !strings.Contains(out.String(), "2 passed, 0 failed") {
		t.Fatalf("summary missing:\n%s", out.String())
	}
}

func TestTokenString(t *testing.T) {
	if got := (Token{Kind: "plus"}).String(); got != "plus" {
		t.Fatalf("bare kind: %q", got)
	}
	if got := (Token{Kind: "str", Text: "hi"}).String(); got != `str("hi")` {
		t.Fatalf("with text: %q", got)
	}
}
