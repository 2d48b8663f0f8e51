package practice

import (
	"github.com/samber/lo"

	"github.com/eslsoft/kelimo/internal/entity"
)

func quizSides(mode entity.QuizMode) (question, answer func(entity.Word) string) {
	text := func(w entity.Word) string { return w.Text }
	meaning := func(w entity.Word) string { return w.Meaning }
	if mode == entity.QuizModeTrToEn {
		return meaning, text
	}
	return text, meaning
}

// Quiz builds up to QuestionLimit multiple-choice questions. In EN_TR mode the word is asked
// and its meaning is the answer; TR_EN swaps the two.
func Quiz(pool []entity.Word, mode entity.QuizMode, r Shuffler) ([]entity.QuizQuestion, error) {
	if len(pool) < MinPool {
		return nil, entity.NewInsufficientPoolError(MinPool, len(pool))
	}
	question, answer := quizSides(mode)
	answerOf := func(w entity.Word, _ int) string { return answer(w) }
	if n := distinctFolded(lo.Map(pool, answerOf)); n < OptionCount {
		return nil, entity.NewInsufficientPoolError(MinPool, n)
	}

	selected := firstN(shuffled(pool, r), QuestionLimit)
	questions := make([]entity.QuizQuestion, 0, len(selected))
	for _, target := range selected {
		others := shuffled(withoutWord(pool, target.ID), r)
		questions = append(questions, entity.QuizQuestion{
			ID:            target.ID,
			Question:      question(target),
			Options:       buildOptions(answer(target), lo.Map(others, answerOf), r),
			CorrectAnswer: answer(target),
		})
	}
	return questions, nil
}
