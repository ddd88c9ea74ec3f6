package parallel_test

import (
	"sync/atomic"
	"testing"

	"github.com/verge-ml/verge/internal/parallel"
)

func TestFor_CoversAllIndices(t *testing.T) {
	const n = 100_000
	seen := make([]int32, n)

	parallel.For(n, func(i int) {
		atomic.AddInt32(&seen[i], 1)
	}, parallel.DefaultConfig())

	for i, c := range seen {
		if c != 1 {
			t.Fatalf("index %d visited %d times", i, c)
		}
	}
}

func TestFor_SmallInputRunsSerially(t *testing.T) {
	var count int32
	parallel.For(10, func(i int) {
		atomic.AddInt32(&count, 1)
	}, parallel.DefaultConfig())

	if count != 10 {
		t.Errorf("visited %d indices, want 10", count)
	}
}

func TestFor_Disabled(t *testing.T) {
	cfg := parallel.Config{Enabled: false}

	var count int32
	parallel.For(1000, func(i int) {
		atomic.AddInt32(&count, 1)
	}, cfg)

	if count != 1000 {
		t.Errorf("visited %d indices, want 1000", count)
	}
}

func TestFor_Zero(t *testing.T) {
	parallel.For(0, func(i int) {
		t.Error("body should not run for n = 0")
	}, parallel.DefaultConfig())
}
