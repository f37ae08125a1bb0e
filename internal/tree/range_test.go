package tree

import (
	"reflect"
	"testing"
)

func TestKeysInRange(t *testing.T) {
	tr := newTestTree(t, 2)
	for key := uint64(1); key <= 20; key++ {
		tr.Insert(key)
	}

	got := tr.KeysInRange(5, 10)
	want := []uint64{5, 6, 7, 8, 9, 10}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("KeysInRange(5, 10) = %v, want %v", got, want)
	}

	all := tr.KeysInRange(1, 20)
	if len(all) != 20 {
		t.Errorf("KeysInRange(1, 20) returned %d keys, want 20", len(all))
	}
}

func TestKeysInRangeBounds(t *testing.T) {
	tr := newTestTree(t, 2)
	for _, key := range []uint64{10, 20, 30} {
		tr.Insert(key)
	}

	if got := tr.KeysInRange(20, 20); !reflect.DeepEqual(got, []uint64{20}) {
		t.Errorf("KeysInRange(20, 20) = %v, want [20]", got)
	}
	if got := tr.KeysInRange(21, 21); got != nil {
		t.Errorf("KeysInRange(21, 21) = %v, want nil", got)
	}
	if got := tr.KeysInRange(30, 10); got != nil {
		t.Errorf("KeysInRange(30, 10) = %v, want nil", got)
	}
}

func TestKeysInRangeDegreeThree(t *testing.T) {
	tr := newTestTree(t, 3)
	for key := uint64(1); key <= 30; key++ {
		tr.Insert(key)
	}

	if got := tr.KeysInRange(0, 0); got != nil {
		t.Errorf("KeysInRange(0, 0) = %v, want nil", got)
	}
	got := tr.KeysInRange(28, 100)
	want := []uint64{28, 29, 30}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("KeysInRange(28, 100) = %v, want %v", got, want)
	}
}

func TestPrimesInRange(t *testing.T) {
	tr := newTestTree(t, 2)
	for key := uint64(1); key <= 20; key++ {
		tr.Insert(key)
	}

	got := tr.PrimesInRange(1, 20)
	want := []uint64{2, 3, 5, 7, 11, 13, 17, 19}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PrimesInRange(1, 20) = %v, want %v", got, want)
	}
}

func TestPrimesInRangeSparse(t *testing.T) {
	tr := newTestTree(t, 2)
	for _, key := range []uint64{97, 100, 101, 103, 104} {
		tr.Insert(key)
	}

	got := tr.PrimesInRange(95, 105)
	want := []uint64{97, 101, 103}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PrimesInRange(95, 105) = %v, want %v", got, want)
	}

	if got := tr.PrimesInRange(98, 100); got != nil {
		t.Errorf("PrimesInRange(98, 100) = %v, want nil", got)
	}
}
