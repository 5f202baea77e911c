package orderbook

import (
	"math/rand"
	"sort"
	"testing"
)

func TestRBTreeInsertFindDelete(t *testing.T) {
	tree := NewRBTree()
	pl1 := tree.UpsertLevel(100)
	if pl1 == nil {
		t.Fatal("UpsertLevel failed")
	}
	if pl2 := tree.FindLevel(100); pl2 != pl1 {
		t.Error("FindLevel did not return same PriceLevel")
	}

	tree.UpsertLevel(200)
	if tree.MinLevel().Price != 100 {
		t.Error("expected min=100")
	}
	if tree.MaxLevel().Price != 200 {
		t.Error("expected max=200")
	}

	if !tree.DeleteLevel(100) {
		t.Error("DeleteLevel failed")
	}
	if tree.FindLevel(100) != nil {
		t.Error("expected level 100 to be gone")
	}
}

// --- Edge Cases ---

func TestDeleteNonExistentLevel(t *testing.T) {
	tree := NewRBTree()
	if tree.DeleteLevel(123) {
		t.Error("expected false when deleting non-existent level")
	}
}

func TestEmptyTreeMinMax(t *testing.T) {
	tree := NewRBTree()
	if tree.MinLevel() != nil || tree.MaxLevel() != nil {
		t.Error("expected nil for min/max on empty tree")
	}
}

func TestUpsertDuplicateLevel(t *testing.T) {
	tree := NewRBTree()
	pl1 := tree.UpsertLevel(150)
	pl2 := tree.UpsertLevel(150)
	if pl1 != pl2 {
		t.Error("Upsert should return the same node for duplicate level")
	}
}

func TestForEachAscendingOrder(t *testing.T) {
	tree := NewRBTree()
	for _, p := range []int64{50, 10, 90, 30, 70, 20, 80, 40, 60, 100} {
		tree.UpsertLevel(p)
	}
	if tree.Size() != 10 {
		t.Fatalf("expected size 10, got %d", tree.Size())
	}

	var got []int64
	tree.ForEachAscending(func(lvl *PriceLevel) bool {
		got = append(got, lvl.Price)
		return true
	})
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Fatalf("ascending walk out of order at %d: %v", i, got)
		}
	}

	got = got[:0]
	tree.ForEachDescending(func(lvl *PriceLevel) bool {
		got = append(got, lvl.Price)
		return true
	})
	for i := 1; i < len(got); i++ {
		if got[i-1] <= got[i] {
			t.Fatalf("descending walk out of order at %d: %v", i, got)
		}
	}
}

// checkTree walks the tree and verifies it against the reference set:
// size, strict ascending order, and min/max.
func checkTree(t *testing.T, tree *RBTree, present map[int64]bool) {
	t.Helper()

	want := make([]int64, 0, len(present))
	for p := range present {
		want = append(want, p)
	}
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	var got []int64
	tree.ForEachAscending(func(lvl *PriceLevel) bool {
		got = append(got, lvl.Price)
		return true
	})

	if tree.Size() != len(want) {
		t.Fatalf("size %d, want %d", tree.Size(), len(want))
	}
	if len(got) != len(want) {
		t.Fatalf("walk visited %d levels, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("walk[%d] = %d, want %d (walk %v)", i, got[i], want[i], got)
		}
	}
	if len(want) == 0 {
		if tree.MinLevel() != nil || tree.MaxLevel() != nil {
			t.Fatal("empty tree should have nil min/max")
		}
		return
	}
	if tree.MinLevel().Price != want[0] {
		t.Fatalf("min %d, want %d", tree.MinLevel().Price, want[0])
	}
	if tree.MaxLevel().Price != want[len(want)-1] {
		t.Fatalf("max %d, want %d", tree.MaxLevel().Price, want[len(want)-1])
	}
}

// Randomized churn over a narrow price band. The mixed insert/delete
// stream drives deletion through every rebalancing case on both sides,
// which targeted delete tests tend to miss.
func TestRandomizedInsertDeleteChurn(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tree := NewRBTree()
	present := make(map[int64]bool)

	for i := 0; i < 5000; i++ {
		price := int64(rng.Intn(120)) + 1
		if len(present) == 0 || rng.Intn(100) < 55 {
			tree.UpsertLevel(price)
			present[price] = true
		} else {
			want := present[price]
			if tree.DeleteLevel(price) != want {
				t.Fatalf("delete %d: tree and reference disagree", price)
			}
			delete(present, price)
		}

		if tree.Size() != len(present) {
			t.Fatalf("after op %d: size %d, want %d", i, tree.Size(), len(present))
		}
		if i%100 == 0 {
			checkTree(t, tree, present)
		}
	}
	checkTree(t, tree, present)
}

// Draining from the max side walks the mirrored rebalance branch the
// way repeated best-ask fills do.
func TestDeleteDescendingFromMax(t *testing.T) {
	tree := NewRBTree()
	present := make(map[int64]bool)
	for p := int64(1); p <= 128; p++ {
		tree.UpsertLevel(p)
		present[p] = true
	}
	for tree.MaxLevel() != nil {
		p := tree.MaxLevel().Price
		if !tree.DeleteLevel(p) {
			t.Fatalf("delete max %d failed", p)
		}
		delete(present, p)
		checkTree(t, tree, present)
	}
}

func TestDeleteManyKeepsOrdering(t *testing.T) {
	tree := NewRBTree()
	for p := int64(1); p <= 64; p++ {
		tree.UpsertLevel(p)
	}
	for p := int64(2); p <= 64; p += 2 {
		if !tree.DeleteLevel(p) {
			t.Fatalf("delete %d failed", p)
		}
	}
	if tree.Size() != 32 {
		t.Fatalf("expected 32 levels, got %d", tree.Size())
	}
	if tree.MinLevel().Price != 1 || tree.MaxLevel().Price != 63 {
		t.Errorf("unexpected min/max: %d/%d", tree.MinLevel().Price, tree.MaxLevel().Price)
	}
}
