package engine

import "math/rand"

// Bag deals piece kinds using the seven-bag rule: one of each kind is
// shuffled into a bag, dealt until empty, then the bag refills. This
// bounds droughts of any one kind to at most twelve pieces.
type Bag struct {
	rng   *rand.Rand
	queue []Kind
}

// NewBag creates a bag backed by the given RNG. The game owns one RNG
// seeded from its options so runs replay deterministically.
func NewBag(rng *rand.Rand) *Bag {
	b := &Bag{rng: rng}
	b.refill()
	return b
}

// Next deals the next kind, refilling the bag when it runs empty.
func (b *Bag) Next() Kind {
	k := b.queue[len(b.queue)-1]
	b.queue = b.queue[:len(b.queue)-1]
	if len(b.queue) == 0 {
		b.refill()
	}
	return k
}

func (b *Bag) refill() {
	b.queue = b.queue[:0]
	for k := Kind(0); k < KindCount; k++ {
		b.queue = append(b.queue, k)
	}
	b.rng.Shuffle(len(b.queue), func(i, j int) {
		b.queue[i], b.queue[j] = b.queue[j], b.queue[i]
	})
}
