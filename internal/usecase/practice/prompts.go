package practice

import (
	"strings"

	"github.com/samber/lo"

	"github.com/eslsoft/kelimo/internal/entity"
)

// Scramble returns words whose letters the client shuffles for the player to rebuild.
func Scramble(pool []entity.Word, r Shuffler) ([]entity.WordPrompt, error) {
	return wordPrompts(pool, r)
}

// Dictation returns words the client reads aloud for the player to type.
func Dictation(pool []entity.Word, r Shuffler) ([]entity.WordPrompt, error) {
	return wordPrompts(pool, r)
}

func wordPrompts(pool []entity.Word, r Shuffler) ([]entity.WordPrompt, error) {
	usable := lo.Filter(pool, func(w entity.Word, _ int) bool {
		return strings.TrimSpace(w.Text) != ""
	})
	if len(usable) < MinPool {
		return nil, entity.NewInsufficientPoolError(MinPool, len(usable))
	}

	selected := firstN(shuffled(usable, r), QuestionLimit)
	return lo.Map(selected, func(w entity.Word, _ int) entity.WordPrompt {
		return entity.WordPrompt{ID: w.ID, Word: strings.TrimSpace(w.Text), Meaning: w.Meaning}
	}), nil
}
