package prompt

import (
	"strings"
	"testing"
)

func TestForQuestion(t *testing.T) {
	pair := ForQuestion("How do I reverse a list?", "items = [1, 2, 3]", "Python")

	if !strings.Contains(pair.System, "programming assistant") {
		t.Errorf("System prompt missing assistant role: %q", pair.System)
	}
	if !strings.Contains(pair.System, "Python") {
		t.Errorf("System prompt missing target language: %q", pair.System)
	}
	if !strings.Contains(pair.User, "How do I reverse a list?") {
		t.Errorf("User prompt missing question: %q", pair.User)
	}
	if !strings.Contains(pair.User, "items = [1, 2, 3]") {
		t.Errorf("User prompt missing code context: %q", pair.User)
	}
}

func TestForCompileFix(t *testing.T) {
	pair := ForCompileFix("undefined variable x", "print(x)", "Python")

	if !strings.Contains(pair.User, "compiler error") {
		t.Errorf("User prompt missing fix request wrapper: %q", pair.User)
	}
	if !strings.Contains(pair.User, "undefined variable x") {
		t.Errorf("User prompt missing raw error text: %q", pair.User)
	}
	if !strings.Contains(pair.User, "print(x)") {
		t.Errorf("User prompt missing code context: %q", pair.User)
	}
	if !strings.Contains(pair.System, "Python") {
		t.Errorf("Compile-fix should delegate to the question builder: %q", pair.System)
	}
}

func TestForSelectionKeepsFullDocument(t *testing.T) {
	fullDoc := "func a() {}\nfunc b() {}\nfunc c() {}"
	pair := ForSelection("What does this do?", "func b() {}", fullDoc, "Go")

	if !strings.Contains(pair.User, "func b() {}") {
		t.Errorf("User prompt missing highlighted snippet: %q", pair.User)
	}
	// The full document, not just the snippet, stays as code context.
	if !strings.Contains(pair.User, "func a() {}") || !strings.Contains(pair.User, "func c() {}") {
		t.Errorf("User prompt missing surrounding document: %q", pair.User)
	}
}

func TestForCompletion(t *testing.T) {
	pair := ForCompletion("const x =", "TypeScript")

	if !strings.Contains(pair.System, "TypeScript") {
		t.Errorf("System prompt missing target language: %q", pair.System)
	}
	if !strings.Contains(pair.User, "```\nconst x =\n```") {
		t.Errorf("User prompt missing fenced context block: %q", pair.User)
	}
	if !strings.Contains(pair.User, "JSON array") {
		t.Errorf("User prompt missing structured-list request: %q", pair.User)
	}
}
