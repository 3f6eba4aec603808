package stamp

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// scriptedGenerator replays a fixed list of values, repeating the last one
// once the list is exhausted. It lets tests force collisions.
type scriptedGenerator struct {
	values []string
	next   int
}

func (g *scriptedGenerator) Generate() string {
	if g.next < len(g.values)-1 {
		v := g.values[g.next]
		g.next++
		return v
	}
	return g.values[len(g.values)-1]
}

// element builds a detached element node for assigner tests.
func element(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: tag, Attr: attrs}
}

func TestNewAssigner(t *testing.T) {
	t.Parallel()

	t.Run("nil generator is rejected", func(t *testing.T) {
		t.Parallel()
		if _, err := NewAssigner(nil); !errors.Is(err, ErrNilGenerator) {
			t.Errorf("expected ErrNilGenerator, got %v", err)
		}
	})
}

func TestAssignerAssign(t *testing.T) {
	t.Parallel()

	t.Run("generates and attaches a fresh id", func(t *testing.T) {
		t.Parallel()
		a, err := NewAssigner(UUIDGenerator{})
		if err != nil {
			t.Fatal(err)
		}

		n := element("div")
		reg := NewRegistry()
		res, err := a.Assign(n, reg)
		if err != nil {
			t.Fatal(err)
		}
		if !res.Generated {
			t.Error("expected Generated=true for a fresh id")
		}
		if res.ID == "" {
			t.Error("expected a non-empty id")
		}
		if got := getAttr(n, "id"); got != res.ID {
			t.Errorf("expected element id %q, got %q", res.ID, got)
		}
		if !reg.Contains(res.ID) {
			t.Error("expected assigned id to be registered")
		}
	})

	t.Run("composes prefix and suffix around the raw value", func(t *testing.T) {
		t.Parallel()
		a, err := NewAssigner(&scriptedGenerator{values: []string{"raw"}}, WithAffix("q-", "-t"))
		if err != nil {
			t.Fatal(err)
		}

		n := element("span")
		res, err := a.Assign(n, NewRegistry())
		if err != nil {
			t.Fatal(err)
		}
		if res.ID != "q-raw-t" {
			t.Errorf("expected q-raw-t, got %q", res.ID)
		}
	})

	t.Run("preserves an existing non-empty id", func(t *testing.T) {
		t.Parallel()
		a, err := NewAssigner(UUIDGenerator{})
		if err != nil {
			t.Fatal(err)
		}

		n := element("div", html.Attribute{Key: "id", Val: "existing"})
		reg := NewRegistry()
		res, err := a.Assign(n, reg)
		if err != nil {
			t.Fatal(err)
		}
		if res.Generated {
			t.Error("expected Generated=false for a preserved id")
		}
		if res.ID != "existing" {
			t.Errorf("expected existing, got %q", res.ID)
		}
		if got := getAttr(n, "id"); got != "existing" {
			t.Errorf("expected element id to stay existing, got %q", got)
		}
		if !reg.Contains("existing") {
			t.Error("expected existing id to be registered as claimed")
		}
	})

	t.Run("empty id attribute is treated as absent", func(t *testing.T) {
		t.Parallel()
		a, err := NewAssigner(&scriptedGenerator{values: []string{"fresh"}})
		if err != nil {
			t.Fatal(err)
		}

		n := element("div", html.Attribute{Key: "id", Val: ""})
		res, err := a.Assign(n, NewRegistry())
		if err != nil {
			t.Fatal(err)
		}
		if !res.Generated || res.ID != "fresh" {
			t.Errorf("expected fresh generated id, got %+v", res)
		}
		if got := getAttr(n, "id"); got != "fresh" {
			t.Errorf("expected id attribute fresh, got %q", got)
		}
	})

	t.Run("retries on collision until a free id is found", func(t *testing.T) {
		t.Parallel()
		a, err := NewAssigner(&scriptedGenerator{values: []string{"taken", "taken", "free"}})
		if err != nil {
			t.Fatal(err)
		}

		reg := NewRegistry()
		reg.Add("taken")

		n := element("div")
		res, err := a.Assign(n, reg)
		if err != nil {
			t.Fatal(err)
		}
		if res.ID != "free" {
			t.Errorf("expected collision retry to land on free, got %q", res.ID)
		}
	})

	t.Run("exhausts after the retry ceiling", func(t *testing.T) {
		t.Parallel()
		a, err := NewAssigner(&scriptedGenerator{values: []string{"stuck"}}, WithMaxRetries(5))
		if err != nil {
			t.Fatal(err)
		}

		reg := NewRegistry()
		reg.Add("stuck")

		n := element("div")
		if _, err := a.Assign(n, reg); !errors.Is(err, ErrGenerationExhausted) {
			t.Errorf("expected ErrGenerationExhausted, got %v", err)
		}
		if got := getAttr(n, "id"); got != "" {
			t.Errorf("expected no id attribute after exhaustion, got %q", got)
		}
	})
}

func TestSetAttr(t *testing.T) {
	t.Parallel()

	t.Run("replaces an existing attribute value", func(t *testing.T) {
		t.Parallel()
		n := element("div", html.Attribute{Key: "id", Val: "old"}, html.Attribute{Key: "class", Val: "x"})
		setAttr(n, "id", "new")
		if got := getAttr(n, "id"); got != "new" {
			t.Errorf("expected new, got %q", got)
		}
		if got := getAttr(n, "class"); got != "x" {
			t.Errorf("expected class to be untouched, got %q", got)
		}
	})

	t.Run("appends a missing attribute", func(t *testing.T) {
		t.Parallel()
		n := element("div")
		setAttr(n, "id", "v")
		if len(n.Attr) != 1 || n.Attr[0].Key != "id" || n.Attr[0].Val != "v" {
			t.Errorf("unexpected attributes %v", n.Attr)
		}
	})
}

// TestAssignUniquenessAcrossSiblings verifies that a freshly generated id
// for a sibling never equals a pre-existing one.
func TestAssignUniquenessAcrossSiblings(t *testing.T) {
	t.Parallel()

	a, err := NewAssigner(&scriptedGenerator{values: []string{"existing", "other"}})
	if err != nil {
		t.Fatal(err)
	}

	reg := NewRegistry()

	first := element("div", html.Attribute{Key: "id", Val: "existing"})
	if _, err := a.Assign(first, reg); err != nil {
		t.Fatal(err)
	}

	second := element("div")
	res, err := a.Assign(second, reg)
	if err != nil {
		t.Fatal(err)
	}
	if res.ID == "existing" {
		t.Error("generated id collided with pre-existing sibling id")
	}
	if !strings.Contains(res.ID, "other") {
		t.Errorf("expected retry to land on other, got %q", res.ID)
	}
}
