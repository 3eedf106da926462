package sanitize

import (
	"strings"
	"testing"
)

func TestDerivePseudonymStable(t *testing.T) {
	a := DerivePseudonym("S1", "D1")
	b := DerivePseudonym("S1", "D1")
	if a != b {
		t.Errorf("DerivePseudonym should be stable across calls: %q != %q", a, b)
	}
}

func TestDerivePseudonymDiffersByDevice(t *testing.T) {
	a := DerivePseudonym("S1", "D1")
	c := DerivePseudonym("S1", "D2")
	if a == c {
		t.Errorf("DerivePseudonym should differ across devices, both = %q", a)
	}
}

func TestDerivePseudonymShape(t *testing.T) {
	ref := DerivePseudonym("S1", "D1")
	if !strings.HasPrefix(ref, "REF-") {
		t.Fatalf("expected REF- prefix, got %q", ref)
	}
	if len(ref) != len("REF-")+12 {
		t.Errorf("expected 12 characters after REF-, got %q (len %d)", ref, len(ref))
	}
	if strings.ContainsAny(ref, "/+") {
		t.Errorf("expected / and + to be substituted, got %q", ref)
	}
}

func TestDerivePseudonymAnonFallbackOnEmptyStudentID(t *testing.T) {
	ref := DerivePseudonym("", "D1")
	if !strings.HasPrefix(ref, "ANON-") {
		t.Errorf("expected ANON- fallback for empty student id, got %q", ref)
	}
	if len(ref) != len("ANON-")+8 {
		t.Errorf("expected 8 characters after ANON-, got %q", ref)
	}
}

func TestSetPseudonymSaltChangesOutput(t *testing.T) {
	before := DerivePseudonym("S1", "D1")
	SetPseudonymSalt("a-different-salt")
	defer SetPseudonymSalt(defaultSalt)

	after := DerivePseudonym("S1", "D1")
	if before == after {
		t.Errorf("expected salt override to change the derived pseudonym")
	}
}
