// predicates_test.go: classification helpers over arbitrary errors.
package sqlerror

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestPredicates_Nil(t *testing.T) {
	t.Parallel()

	if _, ok := CategoryOf(nil); ok {
		t.Fatalf("CategoryOf(nil) reported a category")
	}
	if SQLStateOf(nil) != "" || VendorCodeOf(nil) != 0 {
		t.Fatalf("nil carries state or vendor")
	}
	if IsTransient(nil) || IsNonTransient(nil) || IsRecoverable(nil) || IsWarning(nil) {
		t.Fatalf("nil classified")
	}
	if HasState(nil, "") || HasCategory(nil, CategoryGeneric) {
		t.Fatalf("nil matched a graph search")
	}
}

func TestPredicates_ThroughForeignWrappers(t *testing.T) {
	t.Parallel()

	rec := IntegrityViolation("duplicate key").WithState("23505").WithVendorCode(1062)
	err := fmt.Errorf("insert user: %w", rec)

	cat, ok := CategoryOf(err)
	if !ok || cat != CategoryIntegrityConstraint {
		t.Fatalf("CategoryOf = %v, %v", cat, ok)
	}
	if SQLStateOf(err) != "23505" {
		t.Fatalf("SQLStateOf = %q", SQLStateOf(err))
	}
	if VendorCodeOf(err) != 1062 {
		t.Fatalf("VendorCodeOf = %d", VendorCodeOf(err))
	}
	if !IsNonTransient(err) || IsTransient(err) {
		t.Fatalf("integrity violation misclassified")
	}
}

func TestIsTransient(t *testing.T) {
	t.Parallel()

	yes := []error{
		Transient("t"),
		TransientConnection("c"),
		TransactionRollback("deadlock"),
		Timeout("slow"),
		context.DeadlineExceeded,
		fmt.Errorf("wrapped: %w", context.DeadlineExceeded),
	}
	for _, err := range yes {
		if !IsTransient(err) {
			t.Errorf("IsTransient(%v) = false", err)
		}
	}

	no := []error{Syntax("s"), Recoverable("r"), errors.New("plain"), context.Canceled, Warn("w", "", 0)}
	for _, err := range no {
		if IsTransient(err) {
			t.Errorf("IsTransient(%v) = true", err)
		}
	}
}

func TestIsRecoverableAndWarning(t *testing.T) {
	t.Parallel()

	if !IsRecoverable(Recoverable("reconnect")) || IsRecoverable(Transient("t")) {
		t.Fatalf("IsRecoverable misclassified")
	}
	if !IsWarning(DataTruncation(TruncationInfo{Read: true}, nil)) || IsWarning(Syntax("s")) {
		t.Fatalf("IsWarning misclassified")
	}
}

func TestHasState_SearchesSiblings(t *testing.T) {
	t.Parallel()

	a := Syntax("s").WithState("42000")
	b := IntegrityViolation("i").WithState("23000")
	if err := a.Append(b); err != nil {
		t.Fatal(err)
	}
	wrapped := fmt.Errorf("batch: %w", a)

	if SQLStateOf(wrapped) != "42000" {
		t.Fatalf("SQLStateOf must report the first record")
	}
	if !HasState(wrapped, "23000") {
		t.Fatalf("HasState missed a sibling")
	}
	if HasState(wrapped, "99999") {
		t.Fatalf("HasState matched an absent state")
	}
}

func TestHasCategory_SearchesCausesAndJoins(t *testing.T) {
	t.Parallel()

	inner := Timeout("lock wait")
	outer := Wrap(fmt.Errorf("tx: %w", inner), "commit").WithCategory(CategoryNonTransient)
	joined := errors.Join(errors.New("other"), outer)

	if !HasCategory(joined, CategoryTransient) {
		t.Fatalf("HasCategory missed the transient cause")
	}
	if !HasCategory(joined, CategoryNonTransient) {
		t.Fatalf("HasCategory missed the outer record")
	}
	if HasCategory(joined, CategoryWarning) {
		t.Fatalf("HasCategory matched an absent family")
	}
	if HasCategory(errors.New("plain"), CategoryGeneric) {
		t.Fatalf("a foreign error has no category")
	}
}
