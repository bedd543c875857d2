package wildcard

import "testing"

func TestVisitedTestAndSet(t *testing.T) {
	sets := map[string]visitedSet{
		"dense":  newDenseVisited(3, 4),
		"sparse": make(sparseVisited),
	}

	for name, v := range sets {
		t.Run(name, func(t *testing.T) {
			if v.testAndSet(2, 3) {
				t.Error("fresh state reported as visited")
			}
			if !v.testAndSet(2, 3) {
				t.Error("state not remembered")
			}
			// (3, 2) and (2, 3) must not alias.
			if v.testAndSet(3, 2) {
				t.Error("distinct state reported as visited")
			}
			if v.testAndSet(0, 0) || v.testAndSet(3, 4) {
				t.Error("corner states reported as visited")
			}
		})
	}
}

func TestNewVisited(t *testing.T) {
	if _, ok := newVisited(10, 10).(*denseVisited); !ok {
		t.Error("small state space should use the dense set")
	}
	if _, ok := newVisited(denseLimit, 1).(sparseVisited); !ok {
		t.Error("large state space should use the sparse set")
	}
	if _, ok := newVisited(1<<30, 1<<30).(sparseVisited); !ok {
		t.Error("huge state space should use the sparse set")
	}
}

// TestVisitedImplementationsAgree runs the search exhaustively over short
// strings and patterns with both visited sets. They explore in the same order,
// so even the push counts must be identical.
func TestVisitedImplementationsAgree(t *testing.T) {
	inputs := enumerate("ab", 4)
	patterns := enumerate("ab?*", 4)

	for _, p := range patterns {
		pattern := []rune(p)
		for _, s := range inputs {
			in := []rune(s)
			dense := search(in, pattern, '?', '*', equalRune, newDenseVisited(len(in), len(pattern)))
			sparse := search(in, pattern, '?', '*', equalRune, make(sparseVisited))
			if dense != sparse {
				t.Fatalf("search(%q, %q): dense %+v, sparse %+v", s, p, dense, sparse)
			}
		}
	}
}

// enumerate returns every string over alphabet with at most maxLen characters.
func enumerate(alphabet string, maxLen int) []string {
	out := []string{""}
	level := []string{""}
	for range maxLen {
		var next []string
		for _, prefix := range level {
			for _, r := range alphabet {
				next = append(next, prefix+string(r))
			}
		}
		out = append(out, next...)
		level = next
	}
	return out
}
