// Package filterexpr turns the filter and order_by strings of list requests into
// typed query parameters. Filters are CEL expressions restricted to AND-ed
// comparisons; order_by is a comma separated list of "key [asc|desc]" terms.
package filterexpr

import (
	"errors"
	"fmt"
	"strings"
)

// Msg is a list request that carries raw filter and order_by inputs.
type Msg interface {
	GetFilter() string
	GetOrderBy() string
}

// Kind is the literal type a filter identifier accepts.
type Kind int

const (
	KindString Kind = iota + 1
	KindTimestamp
)

// Op is a comparison allowed in a filter.
type Op string

const (
	OpEQ         Op = "=="
	OpGTE        Op = ">="
	OpLTE        Op = "<="
	OpStartsWith Op = "startsWith"
	OpIn         Op = "in"
)

// Field declares one filter identifier. Targets maps each allowed operator to
// the name of the params struct field that receives the literal.
type Field struct {
	Kind    Kind
	Targets map[Op]string
}

// Sort is one resolved ordering term.
type Sort struct {
	Key  string
	Desc bool
}

// Schema whitelists the filter identifiers and order keys of a resource.
type Schema struct {
	Fields map[string]Field
	// Sortable lists the keys order_by may reference.
	Sortable []string
	// Default is used when order_by is empty.
	Default []Sort
	// Tiebreak is appended unless order_by already names its key.
	Tiebreak Sort
	// MaxSortKeys bounds the number of order_by terms; zero means two.
	MaxSortKeys int
}

// ErrInvalid wraps every error caused by the caller's input.
var ErrInvalid = errors.New("invalid list expression")

// Bind applies the filter of msg to params and returns the ordering to use.
func Bind[M Msg, P any](msg M, params *P, schema Schema) ([]Sort, error) {
	if params == nil {
		return nil, errors.New("filterexpr: params must not be nil")
	}
	if filter := strings.TrimSpace(msg.GetFilter()); filter != "" {
		preds, err := parseFilter(filter, schema.Fields)
		if err != nil {
			return nil, fmt.Errorf("%w: filter: %v", ErrInvalid, err)
		}
		for _, p := range preds {
			if err := assign(params, p, schema.Fields[p.field]); err != nil {
				return nil, err
			}
		}
	}

	sorts, err := ParseOrder(msg.GetOrderBy(), schema)
	if err != nil {
		return nil, fmt.Errorf("%w: order_by: %v", ErrInvalid, err)
	}
	return sorts, nil
}
