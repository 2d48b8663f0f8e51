package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const longText = 2147483647

var (
	// WordsColumns holds the columns for the "words" table.
	WordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Size: 36},
		{Name: "text", Type: field.TypeString, Size: 191, Unique: true},
		{Name: "meaning", Type: field.TypeString, Size: longText},
		{Name: "example", Type: field.TypeString, Size: longText},
		{Name: "level", Type: field.TypeString, Size: 16},
		{Name: "created_at", Type: field.TypeTime},
	}
	// WordsTable holds the schema information for the "words" table.
	WordsTable = &schema.Table{
		Name:       "words",
		Columns:    WordsColumns,
		PrimaryKey: []*schema.Column{WordsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "words_created_at", Columns: []*schema.Column{WordsColumns[5]}},
		},
	}

	// SwipeRecordsColumns holds the columns for the "swipe_records" table.
	SwipeRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Size: 36},
		{Name: "user_id", Type: field.TypeString, Size: 128},
		{Name: "word_id", Type: field.TypeString, Size: 36},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"NEW", "LEARNED"}},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SwipeRecordsTable holds the schema information for the "swipe_records" table.
	SwipeRecordsTable = &schema.Table{
		Name:       "swipe_records",
		Columns:    SwipeRecordsColumns,
		PrimaryKey: []*schema.Column{SwipeRecordsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "swipe_records_words_word",
				Columns:    []*schema.Column{SwipeRecordsColumns[2]},
				RefColumns: []*schema.Column{WordsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{Name: "swiperecord_user_id_word_id", Unique: true, Columns: []*schema.Column{SwipeRecordsColumns[1], SwipeRecordsColumns[2]}},
			{Name: "swiperecord_user_id_status", Columns: []*schema.Column{SwipeRecordsColumns[1], SwipeRecordsColumns[3]}},
		},
	}

	// GameResultsColumns holds the columns for the "game_results" table.
	GameResultsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Size: 36},
		{Name: "user_id", Type: field.TypeString, Size: 128},
		{Name: "game_type", Type: field.TypeEnum, Enums: []string{"QUIZ", "SCRAMBLE", "FILL_BLANK", "MEMORY", "DICTATION"}},
		{Name: "score", Type: field.TypeInt64},
		{Name: "correct", Type: field.TypeInt64},
		{Name: "wrong", Type: field.TypeInt64},
		{Name: "created_at", Type: field.TypeTime},
	}
	// GameResultsTable holds the schema information for the "game_results" table.
	GameResultsTable = &schema.Table{
		Name:       "game_results",
		Columns:    GameResultsColumns,
		PrimaryKey: []*schema.Column{GameResultsColumns[0]},
		Indexes: []*schema.Index{
			{Name: "gameresult_user_id_created_at", Columns: []*schema.Column{GameResultsColumns[1], GameResultsColumns[6]}},
		},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		WordsTable,
		SwipeRecordsTable,
		GameResultsTable,
	}
)

func init() {
	SwipeRecordsTable.ForeignKeys[0].RefTable = WordsTable
}

// Migrate creates or upgrades the tables. Existing data is never dropped.
func Migrate(ctx context.Context, drv dialect.Driver) error {
	migrate, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("create migrate: %w", err)
	}
	if err := migrate.Create(ctx, Tables...); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
