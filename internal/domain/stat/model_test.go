package stat

import "testing"

func TestDictionary(t *testing.T) {
	defs := Dictionary()
	if len(defs) != 14 {
		t.Fatalf("dictionary size = %d, want 14", len(defs))
	}

	ascending := 0
	for _, def := range defs {
		if def.Ascending {
			ascending++
			if def.Key != KeyExpectedConceded {
				t.Fatalf("only xGC may rank ascending, got %s", def.Key)
			}
		}
	}
	if ascending != 1 {
		t.Fatalf("expected exactly one ascending stat, got %d", ascending)
	}

	if !KeyExpectedConceded.Ascending() {
		t.Fatal("xGC must rank ascending")
	}
	if KeyPoints.Ascending() {
		t.Fatal("pts must rank descending")
	}
	if Key("made_up").Valid() {
		t.Fatal("unknown key must not validate")
	}
}
