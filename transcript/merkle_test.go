package transcript

import "testing"

func TestLogCommitAndVerifyPath(t *testing.T) {
	var l Log
	l.Record("prove2:modus-ponens", 2, 4, true)
	l.Record("count4:and-or-or", 4, 9, false)
	l.Record("path1_proveK:f-g-x-y", 4, 14, true)

	tree := l.Commit()
	root := tree.Root()

	entries := l.Entries()
	for i, e := range entries {
		path := tree.Path(i)
		if !VerifyPath(e, i, path, root) {
			t.Fatalf("entry %d should verify against the committed root", i)
		}
	}
}

func TestVerifyPathRejectsTamperedEntry(t *testing.T) {
	var l Log
	l.Record("prove2:de-morgan", 2, 4, true)
	l.Record("count3:tautology", 3, 8, true)

	tree := l.Commit()
	root := tree.Root()
	path := tree.Path(0)

	tampered := Entry{Op: "prove2:de-morgan", Arity: 2, Count: 3, Proven: true}
	if VerifyPath(tampered, 0, path, root) {
		t.Fatalf("tampered entry should not verify")
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	var l Log
	l.Record("count1:id", 1, 2, true)
	entries := l.Entries()
	entries[0].Count = 999
	if l.Entries()[0].Count != 2 {
		t.Fatalf("Entries should return an independent copy")
	}
}
