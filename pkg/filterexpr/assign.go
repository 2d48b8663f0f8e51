package filterexpr

import (
	"fmt"
	"reflect"
	"time"
)

var timeType = reflect.TypeOf(time.Time{})

// assign stores the predicate literal into the params field named by its target.
// Pointer fields are allocated on demand.
func assign(params any, p predicate, field Field) error {
	dest := reflect.ValueOf(params).Elem()
	if dest.Kind() != reflect.Struct {
		return fmt.Errorf("filterexpr: params must point to a struct, got %s", dest.Kind())
	}
	name := field.Targets[p.op]
	target := dest.FieldByName(name)
	if !target.IsValid() || !target.CanSet() {
		return fmt.Errorf("filterexpr: %s has no settable field %q", dest.Type(), name)
	}
	if target.Kind() == reflect.Ptr {
		if target.IsNil() {
			target.Set(reflect.New(target.Type().Elem()))
		}
		target = target.Elem()
	}

	value := reflect.ValueOf(p.value)
	switch {
	case target.Type() == timeType && value.Type() == timeType:
	case target.Kind() == reflect.String && value.Kind() == reflect.String:
		value = value.Convert(target.Type())
	case target.Kind() == reflect.Slice && target.Type().Elem().Kind() == reflect.String && value.Kind() == reflect.Slice:
		out := reflect.MakeSlice(target.Type(), value.Len(), value.Len())
		for i := 0; i < value.Len(); i++ {
			out.Index(i).Set(value.Index(i).Convert(target.Type().Elem()))
		}
		value = out
	default:
		return fmt.Errorf("filterexpr: cannot store %s in %s.%s (%s)", value.Type(), dest.Type(), name, target.Type())
	}
	target.Set(value)
	return nil
}
