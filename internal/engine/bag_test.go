package engine

import (
	"math/rand"
	"testing"
)

func TestBagDealsEachKindOncePerCycle(t *testing.T) {
	bag := NewBag(rand.New(rand.NewSource(7)))

	for cycle := 0; cycle < 3; cycle++ {
		seen := make(map[Kind]bool)
		for i := 0; i < KindCount; i++ {
			k := bag.Next()
			if seen[k] {
				t.Fatalf("Cycle %d dealt %v twice", cycle, k)
			}
			seen[k] = true
		}
		if len(seen) != KindCount {
			t.Fatalf("Cycle %d dealt %d distinct kinds, want %d", cycle, len(seen), KindCount)
		}
	}
}

func TestBagDeterministicBySeed(t *testing.T) {
	a := NewBag(rand.New(rand.NewSource(12345)))
	b := NewBag(rand.New(rand.NewSource(12345)))

	for i := 0; i < 50; i++ {
		ka, kb := a.Next(), b.Next()
		if ka != kb {
			t.Fatalf("Deal %d diverged: %v vs %v", i, ka, kb)
		}
	}
}
