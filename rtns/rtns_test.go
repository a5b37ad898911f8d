package rtns

import (
	"testing"

	"github.com/dwislpy/dwislpyc/common"
	"github.com/dwislpy/dwislpyc/report"
)

var loc = report.NewLocation("test.dws", 1, 1)

func TestSeqVoidFollowedByAnythingIsThatThing(t *testing.T) {
	r, err := Seq(Void(), DefTy(common.IntTy), loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Kind != DefKind || !r.Ty.Equal(common.IntTy) {
		t.Fatalf("expected Def(int), got %+v", r)
	}
}

func TestSeqAfterDefiniteReturnIsUnreachable(t *testing.T) {
	_, err := Seq(DefTy(common.IntTy), Void(), loc)
	if err == nil || err.Kind != report.Unreachable {
		t.Fatalf("expected an Unreachable error, got %v", err)
	}
}

func TestSeqVoidOrFollowedByVoidStaysVoidOr(t *testing.T) {
	r, err := Seq(VoidOrTy(common.IntTy), Void(), loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Kind != VoidOrKind || !r.Ty.Equal(common.IntTy) {
		t.Fatalf("expected VoidOr(int), got %+v", r)
	}
}

func TestSeqVoidOrFollowedByMismatchedTypeFails(t *testing.T) {
	_, err := Seq(VoidOrTy(common.IntTy), DefTy(common.BoolTy), loc)
	if err == nil || err.Kind != report.TypeMismatch {
		t.Fatalf("expected a TypeMismatch error, got %v", err)
	}
}

func TestSumOfVoidAndDefIsVoidified(t *testing.T) {
	r, err := Sum(Void(), DefTy(common.IntTy), loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Kind != VoidOrKind || !r.Ty.Equal(common.IntTy) {
		t.Fatalf("expected VoidOr(int), got %+v", r)
	}
}

func TestSumOfTwoDefiniteBranchesIsDefinite(t *testing.T) {
	r, err := Sum(DefTy(common.IntTy), DefTy(common.IntTy), loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Kind != DefKind || !r.Ty.Equal(common.IntTy) {
		t.Fatalf("expected Def(int), got %+v", r)
	}
}

func TestSumOfMismatchedBranchTypesFails(t *testing.T) {
	_, err := Sum(DefTy(common.IntTy), DefTy(common.BoolTy), loc)
	if err == nil || err.Kind != report.TypeMismatch {
		t.Fatalf("expected a TypeMismatch error, got %v", err)
	}
}

func TestVoidifyLeavesVoidUnchanged(t *testing.T) {
	r := Voidify(Void())
	if r.Kind != VoidKind {
		t.Fatalf("expected Void, got %+v", r)
	}
}

func TestVoidifyTurnsDefiniteIntoMaybe(t *testing.T) {
	r := Voidify(DefTy(common.StrTy))
	if r.Kind != VoidOrKind || !r.Ty.Equal(common.StrTy) {
		t.Fatalf("expected VoidOr(str), got %+v", r)
	}
}
