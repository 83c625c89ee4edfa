package identity

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUID_Deterministic(t *testing.T) {
	a := UUID("go-footnotes:test:alpha")
	b := UUID("go-footnotes:test:alpha")
	if a == uuid.Nil {
		t.Fatal("UUID() should not return nil for a non-empty key")
	}
	if a != b {
		t.Fatalf("UUID() not deterministic: %s != %s", a, b)
	}
	if c := UUID("go-footnotes:test:beta"); c == a {
		t.Fatal("distinct keys should derive distinct ids")
	}
}

func TestUUID_EmptyKey(t *testing.T) {
	if got := UUID("   "); got != uuid.Nil {
		t.Fatalf("UUID(blank) = %s, want nil", got)
	}
}

func TestFootnoteUUID_ScopedByPage(t *testing.T) {
	pageA := uuid.New()
	pageB := uuid.New()

	same := FootnoteUUID(pageA, "identical text")
	if same != FootnoteUUID(pageA, "identical text") {
		t.Fatal("same page and text should derive the same id")
	}
	if same == FootnoteUUID(pageB, "identical text") {
		t.Fatal("different pages should derive different ids")
	}
	if same == FootnoteUUID(pageA, "different text") {
		t.Fatal("different text should derive different ids")
	}
}

func TestFootnoteUUID_TrimsText(t *testing.T) {
	pageID := uuid.New()
	if FootnoteUUID(pageID, "note") != FootnoteUUID(pageID, "  note  ") {
		t.Fatal("surrounding whitespace should not change the derived id")
	}
}
