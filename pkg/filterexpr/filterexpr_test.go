package filterexpr

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

type request struct {
	filter  string
	orderBy string
}

func (r request) GetFilter() string  { return r.filter }
func (r request) GetOrderBy() string { return r.orderBy }

type wordParams struct {
	Level  string
	Prefix *string
	Texts  []string
	Since  time.Time
	Until  *time.Time
}

var wordSchema = Schema{
	Fields: map[string]Field{
		"level": {Kind: KindString, Targets: map[Op]string{OpEQ: "Level"}},
		"text": {Kind: KindString, Targets: map[Op]string{
			OpStartsWith: "Prefix",
			OpIn:         "Texts",
		}},
		"learned_at": {Kind: KindTimestamp, Targets: map[Op]string{
			OpGTE: "Since",
			OpLTE: "Until",
		}},
	},
	Sortable: []string{"learned_at", "text"},
	Default:  []Sort{{Key: "learned_at", Desc: true}},
	Tiebreak: Sort{Key: "id"},
}

func TestBindFilter(t *testing.T) {
	var params wordParams
	sorts, err := Bind(request{
		filter: `level == "B1" && text.startsWith("ap") && learned_at >= timestamp("2024-03-01T00:00:00Z") && learned_at <= timestamp("2024-03-31T23:59:59Z")`,
	}, &params, wordSchema)
	if err != nil {
		t.Fatalf("Bind returned error: %v", err)
	}

	if params.Level != "B1" {
		t.Fatalf("expected Level B1, got %q", params.Level)
	}
	if params.Prefix == nil || *params.Prefix != "ap" {
		t.Fatalf("expected Prefix ap, got %v", params.Prefix)
	}
	if want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC); !params.Since.Equal(want) {
		t.Fatalf("expected Since %v, got %v", want, params.Since)
	}
	if params.Until == nil || params.Until.Day() != 31 {
		t.Fatalf("expected Until on day 31, got %v", params.Until)
	}
	want := []Sort{{Key: "learned_at", Desc: true}, {Key: "id"}}
	if !reflect.DeepEqual(sorts, want) {
		t.Fatalf("expected default order %v, got %v", want, sorts)
	}
}

func TestBindInList(t *testing.T) {
	var params wordParams
	if _, err := Bind(request{filter: `text in ["apple", "pear"]`}, &params, wordSchema); err != nil {
		t.Fatalf("Bind returned error: %v", err)
	}
	if !reflect.DeepEqual(params.Texts, []string{"apple", "pear"}) {
		t.Fatalf("unexpected Texts %v", params.Texts)
	}
}

func TestBindRejects(t *testing.T) {
	cases := map[string]request{
		"unknown field":      {filter: `meaning == "elma"`},
		"disallowed op":      {filter: `level >= "A1"`},
		"or":                 {filter: `level == "A1" || level == "A2"`},
		"negation":           {filter: `!(level == "A1")`},
		"wrong literal":      {filter: `learned_at >= "yesterday"`},
		"number literal":     {filter: `level == 1`},
		"empty list":         {filter: `text in []`},
		"bad timestamp":      {filter: `learned_at >= timestamp("01/02/2024")`},
		"syntax":             {filter: `level ==`},
		"unsortable":         {orderBy: "meaning"},
		"bad direction":      {orderBy: "text sideways"},
		"duplicate key":      {orderBy: "text, text desc"},
		"too many keys":      {orderBy: "text, learned_at, id"},
		"malformed term":     {orderBy: "text desc please"},
		"literal on left":    {filter: `"B1" == level`},
		"unsupported method": {filter: `text.endsWith("s")`},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			var params wordParams
			_, err := Bind(req, &params, wordSchema)
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestParseOrder(t *testing.T) {
	tests := []struct {
		raw  string
		want []Sort
	}{
		{raw: "", want: []Sort{{Key: "learned_at", Desc: true}, {Key: "id"}}},
		{raw: "text", want: []Sort{{Key: "text"}, {Key: "id"}}},
		{raw: " text DESC , learned_at asc ", want: []Sort{{Key: "text", Desc: true}, {Key: "learned_at"}, {Key: "id"}}},
	}
	for _, tt := range tests {
		got, err := ParseOrder(tt.raw, wordSchema)
		if err != nil {
			t.Fatalf("ParseOrder(%q) returned error: %v", tt.raw, err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("ParseOrder(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestBindMismatchedTarget(t *testing.T) {
	type badParams struct{ Level int }
	var params badParams
	_, err := Bind(request{filter: `level == "A1"`}, &params, wordSchema)
	if err == nil || errors.Is(err, ErrInvalid) {
		t.Fatalf("expected a programming error, got %v", err)
	}
}
