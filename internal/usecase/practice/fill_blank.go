package practice

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/eslsoft/kelimo/internal/entity"
)

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// blankPattern matches word case-insensitively. Whole-word edges are checked by MaskExample.
func blankPattern(word string) *regexp.Regexp {
	if word == "" {
		return nil
	}
	return regexp.MustCompile(`(?i)` + regexp.QuoteMeta(word))
}

// wholeWord reports whether the match [start, end) of word in s stands alone. An edge is
// only checked when the word itself begins or ends with a word character, so "C++" still matches.
func wholeWord(s, word string, start, end int) bool {
	first, _ := utf8.DecodeRuneInString(word)
	if isWordRune(first) && start > 0 {
		if before, _ := utf8.DecodeLastRuneInString(s[:start]); isWordRune(before) {
			return false
		}
	}
	last, _ := utf8.DecodeLastRuneInString(word)
	if isWordRune(last) && end < len(s) {
		if after, _ := utf8.DecodeRuneInString(s[end:]); isWordRune(after) {
			return false
		}
	}
	return true
}

// MaskExample replaces every whole-word occurrence of word in example with BlankMarker.
// Letters of any script count as word characters. It reports false when the example
// does not contain the word.
func MaskExample(example, word string) (string, bool) {
	word = strings.TrimSpace(word)
	re := blankPattern(word)
	if re == nil {
		return example, false
	}

	var (
		out     strings.Builder
		copied  int
		pos     int
		matched bool
	)
	for pos <= len(example) {
		loc := re.FindStringIndex(example[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if !wholeWord(example, word, start, end) {
			// Retry one rune later so an overlapping standalone match is not skipped.
			_, size := utf8.DecodeRuneInString(example[start:])
			pos = start + max(size, 1)
			continue
		}
		out.WriteString(example[copied:start])
		out.WriteString(BlankMarker)
		copied, pos, matched = end, end, true
	}
	if !matched {
		return example, false
	}
	out.WriteString(example[copied:])
	return out.String(), true
}

type blankCandidate struct {
	word   entity.Word
	masked string
}

// FillBlank builds cloze questions from words whose example sentence contains the word.
func FillBlank(pool []entity.Word, r Shuffler) ([]entity.FillBlankQuestion, error) {
	eligible := lo.FilterMap(pool, func(w entity.Word, _ int) (blankCandidate, bool) {
		if !w.HasExample() {
			return blankCandidate{}, false
		}
		masked, ok := MaskExample(w.Example, w.Text)
		return blankCandidate{word: w, masked: masked}, ok
	})
	if len(eligible) < MinPool {
		return nil, entity.NewInsufficientPoolError(MinPool, len(eligible))
	}
	textOf := func(c blankCandidate, _ int) string { return c.word.Text }
	if n := distinctFolded(lo.Map(eligible, textOf)); n < OptionCount {
		return nil, entity.NewInsufficientPoolError(MinPool, n)
	}

	selected := firstN(shuffled(eligible, r), QuestionLimit)
	questions := make([]entity.FillBlankQuestion, 0, len(selected))
	for _, target := range selected {
		others := shuffled(lo.Reject(eligible, func(c blankCandidate, _ int) bool {
			return c.word.ID == target.word.ID
		}), r)
		questions = append(questions, entity.FillBlankQuestion{
			ID:            target.word.ID,
			Question:      target.masked,
			CorrectAnswer: target.word.Text,
			Options:       buildOptions(target.word.Text, lo.Map(others, textOf), r),
			Meaning:       target.word.Meaning,
		})
	}
	return questions, nil
}
