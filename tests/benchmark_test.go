package tree_test

import (
	"io"
	"math/rand"
	"testing"

	"orderstat-btree/internal/tree"
	"orderstat-btree/pkg/logger"
)

const (
	benchmarkDegree = 100
	numPreloadKeys  = 100000
)

func newBenchTree() *tree.Tree {
	return tree.NewTree(benchmarkDegree, logger.New(logger.Error, io.Discard))
}

func BenchmarkInsertSequential(b *testing.B) {
	t := newBenchTree()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		t.Insert(uint64(i) + 1)
	}
}

func BenchmarkInsertRandom(b *testing.B) {
	t := newBenchTree()
	rng := rand.New(rand.NewSource(1))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t.Insert(uint64(rng.Intn(b.N*2)) + 1)
	}
}

func BenchmarkSearch(b *testing.B) {
	t := newBenchTree()
	for i := 0; i < numPreloadKeys; i++ {
		t.Insert(uint64(i) + 1)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t.Search(uint64(i%numPreloadKeys) + 1)
	}
}

func BenchmarkDelete(b *testing.B) {
	t := newBenchTree()
	keys := make([]uint64, numPreloadKeys)
	for i := 0; i < numPreloadKeys; i++ {
		keys[i] = uint64(i) + 1
		t.Insert(keys[i])
	}
	rng := rand.New(rand.NewSource(1))
	rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i < numPreloadKeys {
			t.Delete(keys[i])
		}
	}
}

func BenchmarkRank(b *testing.B) {
	t := newBenchTree()
	for i := 0; i < numPreloadKeys; i++ {
		t.Insert(uint64(i) + 1)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t.Rank(uint64(i%numPreloadKeys) + 1)
	}
}

func BenchmarkSelect(b *testing.B) {
	t := newBenchTree()
	for i := 0; i < numPreloadKeys; i++ {
		t.Insert(uint64(i) + 1)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t.Select(i%numPreloadKeys + 1)
	}
}

func BenchmarkPrimesInRange(b *testing.B) {
	t := newBenchTree()
	for i := 0; i < numPreloadKeys; i++ {
		t.Insert(uint64(i) + 1)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lo := uint64(i%numPreloadKeys) + 1
		t.PrimesInRange(lo, lo+1000)
	}
}
