package practice

import "github.com/eslsoft/kelimo/internal/entity"

// Memory picks MemoryPairs random words and deals each as an EN card and a TR card sharing
// the word ID as MatchID. The 12 cards are shuffled once.
func Memory(pool []entity.Word, r Shuffler) ([]entity.MemoryCard, error) {
	if len(pool) < MemoryMinPool {
		return nil, entity.NewInsufficientPoolError(MemoryMinPool, len(pool))
	}

	selected := firstN(shuffled(pool, r), MemoryPairs)
	cards := make([]entity.MemoryCard, 0, 2*len(selected))
	for _, w := range selected {
		cards = append(cards,
			entity.MemoryCard{ID: w.ID + "-en", MatchID: w.ID, Text: w.Text, Type: entity.MemoryCardEN},
			entity.MemoryCard{ID: w.ID + "-tr", MatchID: w.ID, Text: w.Meaning, Type: entity.MemoryCardTR},
		)
	}
	r.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
	return cards, nil
}
