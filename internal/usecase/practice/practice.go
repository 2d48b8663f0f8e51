// Package practice builds question sets for the practice games from a pool of learned words.
package practice

import (
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/eslsoft/kelimo/internal/entity"
)

const (
	// QuestionLimit caps the questions of a quiz, scramble, fill-blank or dictation round.
	QuestionLimit = 10
	// OptionCount is the number of choices of a multiple-choice question.
	OptionCount = 4
	// MinPool is the smallest pool quiz, scramble, fill-blank and dictation accept.
	MinPool = 5
	// MemoryMinPool is the smallest pool the memory game accepts.
	MemoryMinPool = 6
	// MemoryPairs is the number of words turned into card pairs.
	MemoryPairs = 6
	// BlankMarker replaces the hidden word in fill-blank sentences.
	BlankMarker = "{{BLANK}}"
)

// Shuffler permutes n elements through swap. *rand.Rand from math/rand/v2 satisfies it;
// its Shuffle is a Fisher-Yates shuffle.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// DefaultShuffler draws from the goroutine-safe global source of math/rand/v2.
var DefaultShuffler Shuffler = globalShuffler{}

// Options tunes a generated round.
type Options struct {
	Mode entity.QuizMode
}

// Generator dispatches to the per-game builders with a shared source of randomness.
type Generator struct {
	shuffler Shuffler
}

// NewGenerator falls back to DefaultShuffler when s is nil.
func NewGenerator(s Shuffler) *Generator {
	if s == nil {
		s = DefaultShuffler
	}
	return &Generator{shuffler: s}
}

// Generate builds a round of gameType from pool. It returns an *entity.InsufficientPoolError
// when the pool is too small and never a partial round.
func (g *Generator) Generate(gameType entity.GameType, pool []entity.Word, opts Options) (*entity.GameSet, error) {
	set := &entity.GameSet{Type: gameType}
	var err error
	switch gameType {
	case entity.GameTypeQuiz:
		mode := opts.Mode
		if mode == "" {
			mode = entity.QuizModeEnToTr
		}
		set.Quiz, err = Quiz(pool, mode, g.shuffler)
	case entity.GameTypeScramble:
		set.Prompts, err = Scramble(pool, g.shuffler)
	case entity.GameTypeFillBlank:
		set.FillBlank, err = FillBlank(pool, g.shuffler)
	case entity.GameTypeMemory:
		set.Memory, err = Memory(pool, g.shuffler)
	case entity.GameTypeDictation:
		set.Prompts, err = Dictation(pool, g.shuffler)
	default:
		return nil, entity.ErrInvalidGameType
	}
	if err != nil {
		return nil, err
	}
	return set, nil
}

// MinPoolFor returns the minimum number of candidate words gameType needs.
func MinPoolFor(gameType entity.GameType) int {
	if gameType == entity.GameTypeMemory {
		return MemoryMinPool
	}
	return MinPool
}

func shuffled[T any](items []T, r Shuffler) []T {
	out := slices.Clone(items)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func firstN[T any](items []T, n int) []T {
	if len(items) < n {
		return items
	}
	return items[:n]
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func distinctFolded(values []string) int {
	return len(lo.Uniq(lo.FilterMap(values, func(v string, _ int) (string, bool) {
		f := fold(v)
		return f, f != ""
	})))
}

func withoutWord(pool []entity.Word, id string) []entity.Word {
	return lo.Reject(pool, func(w entity.Word, _ int) bool { return w.ID == id })
}

// buildOptions takes the answer plus the first distinct candidates up to OptionCount and
// shuffles them. Callers guarantee enough distinct candidates exist.
func buildOptions(answer string, candidates []string, r Shuffler) []string {
	seen := map[string]struct{}{fold(answer): {}}
	options := make([]string, 0, OptionCount)
	options = append(options, answer)
	for _, c := range candidates {
		if len(options) == OptionCount {
			break
		}
		key := fold(c)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		options = append(options, c)
	}
	r.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })
	return options
}
