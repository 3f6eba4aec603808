package stamp

import "testing"

// TestFilterEligible verifies the inclusion/exclusion contract: exclusion
// wins over inclusion, an empty include set means include-all, and tag name
// comparison is case-insensitive.
func TestFilterEligible(t *testing.T) {
	t.Parallel()

	t.Run("default filter includes every tag", func(t *testing.T) {
		t.Parallel()
		f := NewFilter(nil, nil)
		for _, tag := range []string{"div", "span", "html", "head", "custom-element"} {
			if !f.Eligible(tag) {
				t.Errorf("expected %q to be eligible with default filter", tag)
			}
		}
	})

	t.Run("exclusion wins over inclusion", func(t *testing.T) {
		t.Parallel()
		f := NewFilter([]string{"span"}, []string{"span"})
		if f.Eligible("span") {
			t.Error("expected span to be ineligible when both included and excluded")
		}
	})

	t.Run("non-empty include set restricts eligibility", func(t *testing.T) {
		t.Parallel()
		f := NewFilter([]string{"span"}, nil)
		if !f.Eligible("span") {
			t.Error("expected span to be eligible")
		}
		if f.Eligible("div") {
			t.Error("expected div to be ineligible when include set is non-empty")
		}
	})

	t.Run("excluded tag is ineligible regardless of include set", func(t *testing.T) {
		t.Parallel()
		f := NewFilter(nil, []string{"script"})
		if f.Eligible("script") {
			t.Error("expected script to be ineligible")
		}
		if !f.Eligible("div") {
			t.Error("expected div to remain eligible")
		}
	})

	t.Run("comparison is case-insensitive", func(t *testing.T) {
		t.Parallel()
		f := NewFilter([]string{"DIV"}, []string{"Script"})
		if !f.Eligible("div") {
			t.Error("expected div to match include entry DIV")
		}
		if !f.Eligible("DiV") {
			t.Error("expected DiV to match include entry DIV")
		}
		if f.Eligible("SCRIPT") {
			t.Error("expected SCRIPT to match exclude entry Script")
		}
	})

	t.Run("repeated calls return identical results", func(t *testing.T) {
		t.Parallel()
		f := NewFilter([]string{"span"}, []string{"div"})
		for i := 0; i < 10; i++ {
			if !f.Eligible("span") || f.Eligible("div") || f.Eligible("p") {
				t.Fatal("Eligible is not stable across repeated calls")
			}
		}
	})

	t.Run("blank include entries are ignored", func(t *testing.T) {
		t.Parallel()
		f := NewFilter([]string{"", "  "}, nil)
		if !f.Eligible("div") {
			t.Error("expected blank-only include list to behave as include-all")
		}
	})
}
