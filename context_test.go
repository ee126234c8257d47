// context_test.go: field list and map semantics.
package sqlerror

import (
	"reflect"
	"testing"
)

func TestFieldsFromKV_EmptyInput(t *testing.T) {
	t.Parallel()

	if fs := fieldsFromKV(); fs != nil {
		t.Fatalf("expected nil fields, got %#v", fs)
	}
}

func TestFieldsFromKV_PreservesOrder(t *testing.T) {
	t.Parallel()

	fs := fieldsFromKV("k1", 1, "k2", 2, "k3", 3)
	want := fields{{Key: "k1", Val: 1}, {Key: "k2", Val: 2}, {Key: "k3", Val: 3}}
	if !reflect.DeepEqual(fs, want) {
		t.Fatalf("order mismatch.\nwant=%#v\ngot =%#v", want, fs)
	}
}

func TestFieldsFromKV_NonStringKeyDropsPair(t *testing.T) {
	t.Parallel()

	fs := fieldsFromKV("a", 1, 123, "x", "b", 2)
	want := fields{{Key: "a", Val: 1}, {Key: "b", Val: 2}}
	if !reflect.DeepEqual(fs, want) {
		t.Fatalf("alignment broken.\nwant=%#v\ngot =%#v", want, fs)
	}

	if fs := fieldsFromKV(123, "v"); fs != nil {
		t.Fatalf("only invalid pairs should give nil, got %#v", fs)
	}
}

func TestFieldsFromKV_TrailingKeyGetsNil(t *testing.T) {
	t.Parallel()

	fs := fieldsFromKV("k1", 1, "lonely")
	if len(fs) != 2 || fs[1].Key != "lonely" || fs[1].Val != nil {
		t.Fatalf("expected trailing (lonely, nil); got %#v", fs)
	}
}

func TestFieldsWith_FreshBacking(t *testing.T) {
	t.Parallel()

	dst := fields{{Key: "k1", Val: 1}}
	got := dst.with(Field{Key: "k2", Val: 2})
	if len(got) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(got))
	}
	got[0].Val = 999
	if dst[0].Val != 1 {
		t.Fatalf("aliasing detected: dst mutated through the returned slice")
	}

	same := dst.with()
	if &same[0] == &dst[0] {
		t.Fatalf("with() must copy even when nothing is added")
	}
	if (fields)(nil).with() != nil {
		t.Fatalf("empty with() on nil should stay nil")
	}
}

func TestFieldsToMap(t *testing.T) {
	t.Parallel()

	fs := fields{
		{Key: "", Val: "drop-me"},
		{Key: "dup", Val: 1},
		{Key: "dup", Val: 3},
		{Key: "k", Val: "v"},
	}
	m := fs.toMap()
	if _, ok := m[""]; ok {
		t.Fatalf("empty keys must be filtered")
	}
	if m["dup"] != 3 || m["k"] != "v" || len(m) != 2 {
		t.Fatalf("unexpected map %v", m)
	}

	m["k"] = "changed"
	if fs.toMap()["k"] != "v" {
		t.Fatalf("toMap must return a fresh map")
	}
	if (fields)(nil).toMap() != nil {
		t.Fatalf("no fields should give a nil map")
	}
}

func TestFieldsLookup_LastWriteWins(t *testing.T) {
	t.Parallel()

	fs := fields{{Key: "a", Val: 1}, {Key: "b", Val: 2}, {Key: "a", Val: 3}}
	if v, ok := fs.lookup("a"); !ok || v != 3 {
		t.Fatalf("lookup(a) = %v, %v", v, ok)
	}
	if _, ok := fs.lookup("missing"); ok {
		t.Fatalf("lookup(missing) found something")
	}
}
