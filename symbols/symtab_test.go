package symbols

import (
	"testing"

	"github.com/dwislpy/dwislpyc/common"
)

func TestFormalsOccupyPrefixOfOrdinalSpace(t *testing.T) {
	st := NewSymT()
	st.AddFormal("a", common.IntTy)
	st.AddFormal("b", common.BoolTy)
	st.AddLocal("c", common.StrTy)

	if got, _, _ := st.GetFormal(0); got != "a" {
		t.Fatalf("expected formal 0 to be %q, got %q", "a", got)
	}
	if got, _, _ := st.GetFormal(1); got != "b" {
		t.Fatalf("expected formal 1 to be %q, got %q", "b", got)
	}
	if st.Arity() != 2 {
		t.Fatalf("expected arity 2, got %d", st.Arity())
	}
	if st.Size() != 3 {
		t.Fatalf("expected size 3, got %d", st.Size())
	}

	info, _ := st.GetInfo("c")
	if info.Slot != 2 {
		t.Fatalf("expected local 'c' at slot 2, got %d", info.Slot)
	}
}

func TestRedefinitionRejected(t *testing.T) {
	st := NewSymT()
	st.AddFormal("x", common.IntTy)

	if _, ok := st.AddLocal("x", common.IntTy); ok {
		t.Fatal("expected AddLocal to fail for a name already used as a formal")
	}
	if _, ok := st.AddFormal("x", common.IntTy); ok {
		t.Fatal("expected AddFormal to fail for a duplicate formal name")
	}
}

func TestTempAndLabelNamesAreDistinct(t *testing.T) {
	st := NewSymT()
	names := map[string]bool{}

	for i := 0; i < 5; i++ {
		t1 := st.AddTemp(common.IntTy)
		l1 := st.AddLabel("")
		if names[t1] || names[l1] {
			t.Fatalf("minted a colliding name: %q / %q", t1, l1)
		}
		names[t1] = true
		names[l1] = true
	}
}

func TestStringInterningIsIdempotentByContent(t *testing.T) {
	global := NewSymT()

	l1 := global.AddString("hello")
	l2 := global.AddString("world")
	l3 := global.AddString("hello")

	if l1 != l3 {
		t.Fatalf("expected equal content to share a label: %q vs %q", l1, l3)
	}
	if l1 == l2 {
		t.Fatalf("expected distinct content to get distinct labels: %q vs %q", l1, l2)
	}
}

func TestPerFunctionTableDelegatesStringsToParent(t *testing.T) {
	global := NewSymT()
	fn := NewSymT()
	fn.SetParent(global)

	l1 := fn.AddString("shared")
	l2 := global.AddString("shared")

	if l1 != l2 {
		t.Fatalf("expected a per-function table to intern into the global pool: %q vs %q", l1, l2)
	}

	pool := global.StringPool()
	if pool[l1] != "shared" {
		t.Fatalf("expected the global pool to record %q -> %q", l1, "shared")
	}
}

func TestSetParentTwicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected SetParent called twice to panic")
		}
	}()

	global := NewSymT()
	fn := NewSymT()
	fn.SetParent(global)
	fn.SetParent(global)
}
