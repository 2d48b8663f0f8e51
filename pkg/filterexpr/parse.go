package filterexpr

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/cel-go/cel"
	exprpb "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

type predicate struct {
	field string
	op    Op
	value any
}

func parseFilter(filter string, fields map[string]Field) ([]predicate, error) {
	if len(fields) == 0 {
		return nil, errors.New("resource does not support filtering")
	}
	env, err := newEnv(fields)
	if err != nil {
		return nil, err
	}
	ast, issues := env.Parse(filter)
	if issues != nil && issues.Err() != nil {
		return nil, issues.Err()
	}
	parsed, err := cel.AstToParsedExpr(ast)
	if err != nil {
		return nil, err
	}

	var terms []*exprpb.Expr
	if err := flattenAnd(parsed.GetExpr(), &terms); err != nil {
		return nil, err
	}

	preds := make([]predicate, 0, len(terms))
	for _, term := range terms {
		p, err := parseTerm(term)
		if err != nil {
			return nil, err
		}
		field, ok := fields[p.field]
		if !ok {
			return nil, fmt.Errorf("field %q is not filterable", p.field)
		}
		if _, ok := field.Targets[p.op]; !ok {
			return nil, fmt.Errorf("operator %q is not allowed on %q", p.op, p.field)
		}
		if err := checkLiteral(field.Kind, p); err != nil {
			return nil, err
		}
		preds = append(preds, p)
	}
	return preds, nil
}

func newEnv(fields map[string]Field) (*cel.Env, error) {
	opts := make([]cel.EnvOption, 0, len(fields))
	for name, f := range fields {
		switch f.Kind {
		case KindString:
			opts = append(opts, cel.Variable(name, cel.StringType))
		case KindTimestamp:
			opts = append(opts, cel.Variable(name, cel.TimestampType))
		default:
			return nil, fmt.Errorf("field %q has unknown kind %d", name, f.Kind)
		}
	}
	return cel.NewEnv(opts...)
}

// flattenAnd collects the operands of nested && calls. Any other logical operator is rejected.
func flattenAnd(expr *exprpb.Expr, out *[]*exprpb.Expr) error {
	if expr == nil {
		return errors.New("empty expression")
	}
	call := expr.GetCallExpr()
	if call == nil {
		*out = append(*out, expr)
		return nil
	}
	switch call.GetFunction() {
	case "_&&_":
		for _, arg := range call.GetArgs() {
			if err := flattenAnd(arg, out); err != nil {
				return err
			}
		}
		return nil
	case "_||_", "!_", "_?_:_":
		return fmt.Errorf("operator %q is not supported, combine terms with &&", call.GetFunction())
	default:
		*out = append(*out, expr)
		return nil
	}
}

func parseTerm(expr *exprpb.Expr) (predicate, error) {
	call := expr.GetCallExpr()
	if call == nil {
		return predicate{}, errors.New("expected a comparison")
	}

	var (
		op          Op
		ident, lit  *exprpb.Expr
		args        = call.GetArgs()
		hasReceiver = call.GetTarget() != nil
	)
	switch call.GetFunction() {
	case "_==_":
		op = OpEQ
	case "_>=_":
		op = OpGTE
	case "_<=_":
		op = OpLTE
	case "@in":
		op = OpIn
	case "startsWith":
		op = OpStartsWith
		if hasReceiver && len(args) == 1 {
			ident, lit = call.GetTarget(), args[0]
		}
	default:
		return predicate{}, fmt.Errorf("function %q is not supported", call.GetFunction())
	}
	if ident == nil {
		if hasReceiver || len(args) != 2 {
			return predicate{}, fmt.Errorf("operator %q expects two operands", op)
		}
		ident, lit = args[0], args[1]
	}

	name := ident.GetIdentExpr().GetName()
	if name == "" {
		return predicate{}, fmt.Errorf("left side of %q must be a field name", op)
	}
	value, err := literal(lit)
	if err != nil {
		return predicate{}, fmt.Errorf("field %q: %w", name, err)
	}
	return predicate{field: name, op: op, value: value}, nil
}

func literal(expr *exprpb.Expr) (any, error) {
	if c := expr.GetConstExpr(); c != nil {
		if _, ok := c.GetConstantKind().(*exprpb.Constant_StringValue); ok {
			return c.GetStringValue(), nil
		}
		return nil, errors.New("only string literals are supported")
	}
	if list := expr.GetListExpr(); list != nil {
		values := make([]string, 0, len(list.GetElements()))
		for _, el := range list.GetElements() {
			v, err := literal(el)
			if err != nil {
				return nil, err
			}
			s, ok := v.(string)
			if !ok {
				return nil, errors.New("list elements must be strings")
			}
			values = append(values, s)
		}
		return values, nil
	}
	if call := expr.GetCallExpr(); call != nil && call.GetFunction() == "timestamp" && len(call.GetArgs()) == 1 {
		raw := call.GetArgs()[0].GetConstExpr().GetStringValue()
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return nil, fmt.Errorf("timestamp %q is not RFC 3339", raw)
		}
		return t, nil
	}
	return nil, errors.New("right side must be a literal, a list of literals or timestamp()")
}

func checkLiteral(kind Kind, p predicate) error {
	switch v := p.value.(type) {
	case string:
		if kind == KindString && p.op != OpIn {
			return nil
		}
	case []string:
		if kind == KindString && p.op == OpIn {
			if len(v) == 0 {
				return fmt.Errorf("field %q: empty list", p.field)
			}
			return nil
		}
	case time.Time:
		if kind == KindTimestamp {
			return nil
		}
	}
	return fmt.Errorf("field %q: literal %v does not fit operator %q", p.field, p.value, p.op)
}
