package repository

import (
	"time"

	"github.com/eslsoft/kelimo/pkg/filterexpr"
)

// learnedWordParams receives the filter of a learned-word listing.
type learnedWordParams struct {
	Level        string
	TextPrefix   string
	Texts        []string
	LearnedSince time.Time
	LearnedUntil time.Time
}

var listLearnedWordsSchema = filterexpr.Schema{
	Fields: map[string]filterexpr.Field{
		"level": {
			Kind:    filterexpr.KindString,
			Targets: map[filterexpr.Op]string{filterexpr.OpEQ: "Level"},
		},
		"text": {
			Kind: filterexpr.KindString,
			Targets: map[filterexpr.Op]string{
				filterexpr.OpStartsWith: "TextPrefix",
				filterexpr.OpIn:         "Texts",
			},
		},
		"learned_at": {
			Kind: filterexpr.KindTimestamp,
			Targets: map[filterexpr.Op]string{
				filterexpr.OpGTE: "LearnedSince",
				filterexpr.OpLTE: "LearnedUntil",
			},
		},
	},
	Sortable: []string{"learned_at", "text"},
	Default:  []filterexpr.Sort{{Key: "learned_at", Desc: true}},
	Tiebreak: filterexpr.Sort{Key: "id"},
}
