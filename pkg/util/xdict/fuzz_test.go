package xdict

import "testing"

func FuzzInsertRemove(f *testing.F) {
	f.Add("eth0")
	f.Add("")
	f.Add("198.51.100.7%eth0")
	f.Add("中文zone")
	f.Add("\x00\xff")

	f.Fuzz(func(t *testing.T, s string) {
		d := newForTest(t)

		r1, err := d.InsertString(s)
		if err != nil {
			t.Fatalf("InsertString(%q): %v", s, err)
		}
		r2, err := d.InsertOwned(Own([]byte(s)))
		if err != nil {
			t.Fatalf("InsertOwned(%q): %v", s, err)
		}
		if r1 != r2 {
			t.Fatalf("equal content %q produced different refs", s)
		}
		if r1.String() != s || r1.IsNil() {
			t.Fatalf("content mismatch: got %q, want %q", r1.String(), s)
		}
		if got := d.Refs(s); got != 2 {
			t.Fatalf("Refs(%q) = %d, want 2", s, got)
		}
		d.Remove(r1)
		d.Remove(r2)
		if d.Len() != 0 {
			t.Fatalf("Len() = %d after releasing all refs", d.Len())
		}
	})
}
