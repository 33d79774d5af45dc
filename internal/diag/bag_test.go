package diag

import "testing"

func TestBagLimit(t *testing.T) {
	b := NewBag(2)
	for i := 0; i < 3; i++ {
		ok := b.Add(New(SevWarning, InputMalformed, "a", "bad"))
		if want := i < 2; ok != want {
			t.Fatalf("Add #%d = %v, want %v", i, ok, want)
		}
	}
	if b.Len() != 2 {
		t.Fatalf("Len = %d, want 2", b.Len())
	}
}

func TestBagHasErrors(t *testing.T) {
	b := NewBag(4)
	if b.HasErrors() {
		t.Fatal("empty bag reports errors")
	}
	b.Add(New(SevInfo, UIFallback, "", "info"))
	b.Add(New(SevWarning, InputMissing, "c", "missing"))
	if b.HasErrors() {
		t.Fatal("info or warning mistaken for error")
	}
	b.Add(New(SevError, InputMalformed, "b", "bad"))
	if !b.HasErrors() {
		t.Fatal("error not detected")
	}
}

func TestBagSort(t *testing.T) {
	b := NewBag(8)
	b.Add(New(SevWarning, InputMissing, "b", "1"))
	b.Add(New(SevInfo, UIFallback, "a", "2"))
	b.Add(New(SevWarning, InputMalformed, "b", "3"))
	b.Add(New(SevError, InputMalformed, "a", "4"))
	b.Sort()

	want := []string{"4", "2", "3", "1"}
	for i, d := range b.Items() {
		if d.Message != want[i] {
			t.Fatalf("item %d = %q, want %q", i, d.Message, want[i])
		}
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	b := NewBag(4)
	rb := ReportWarning(BagReporter{Bag: b}, InputMalformed, "a", "bad").
		WithNote("using 0")
	rb.Emit()
	rb.Emit()
	if b.Len() != 1 {
		t.Fatalf("Len = %d, want 1", b.Len())
	}
	d := b.Items()[0]
	if d.Severity != SevWarning || d.Field != "a" || len(d.Notes) != 1 || d.Notes[0] != "using 0" {
		t.Fatalf("diagnostic = %+v", d)
	}

	var nilBuilder *ReportBuilder
	nilBuilder.WithNote("x").Emit()
}

func TestCodeString(t *testing.T) {
	if got := InputMalformed.ID(); got != "INP1001" {
		t.Fatalf("ID() = %q", got)
	}
	if got := UIAborted.ID(); got != "UI2001" {
		t.Fatalf("ID() = %q", got)
	}
	if got := Code(42).Title(); got != "Unknown error" {
		t.Fatalf("Title() = %q", got)
	}
	if got := InputMissing.String(); got != "[INP1002]: Input ended before a value was read" {
		t.Fatalf("String() = %q", got)
	}
}

func TestWithNoteDoesNotAlias(t *testing.T) {
	base := New(SevInfo, UIFallback, "", "m").WithNote("one")
	x := base.WithNote("two")
	y := base.WithNote("three")
	if x.Notes[1] != "two" || y.Notes[1] != "three" || len(base.Notes) != 1 {
		t.Fatalf("notes aliased: base=%v x=%v y=%v", base.Notes, x.Notes, y.Notes)
	}
}
