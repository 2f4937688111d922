package lookup

import "testing"

func testDef(key string) ImporterDefinition {
	return ImporterDefinition{
		Info: ImporterInfo{Key: key, Label: key, Source: SourceCSV},
		Run:  func(rows [][]string) Result { return Result{} },
	}
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	Clear()
	defer Clear()

	Register(testDef("b-format"))
	Register(testDef("a-format"))

	def, ok := Get("a-format")
	if !ok {
		t.Fatal("Get(a-format) not found")
	}
	if def.Info.Key != "a-format" {
		t.Errorf("Info.Key = %q, want %q", def.Info.Key, "a-format")
	}

	if _, ok := Get("nope"); ok {
		t.Error("Get(nope) found unexpectedly")
	}

	if Count() != 2 {
		t.Errorf("Count() = %d, want 2", Count())
	}
}

func TestRegistry_AllSorted(t *testing.T) {
	Clear()
	defer Clear()

	Register(testDef("zulu"))
	Register(testDef("alpha"))

	all := All()
	if len(all) != 2 {
		t.Fatalf("len(All()) = %d, want 2", len(all))
	}
	if all[0].Info.Key != "alpha" || all[1].Info.Key != "zulu" {
		t.Errorf("All() order = [%s %s], want [alpha zulu]", all[0].Info.Key, all[1].Info.Key)
	}
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	Clear()
	defer Clear()

	Register(testDef("dup"))

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register(testDef("dup"))
}
