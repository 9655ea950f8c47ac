package condition

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

var playerRefType = reflect.TypeOf(PlayerRef{})

// Prepare checks that every required parameter of b is present and
// compiles expression programs. Loaders call it once per condition.
func Prepare(b Body) error {
	if b == nil {
		return errors.New("nil condition body")
	}
	v := reflect.ValueOf(b)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return fmt.Errorf("%s: body must be a non-nil pointer", b.Kind())
	}
	if err := checkRequired(v.Elem()); err != nil {
		return fmt.Errorf("%s: %w", b.Kind(), err)
	}
	if e, ok := b.(*Expression); ok {
		if err := e.Compile(); err != nil {
			return fmt.Errorf("%s: %w", b.Kind(), err)
		}
	}
	return nil
}

func checkRequired(v reflect.Value) error {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("yaml")
		fv := v.Field(i)
		if strings.Contains(tag, ",inline") {
			if err := checkRequired(fv); err != nil {
				return err
			}
			continue
		}
		if strings.Contains(tag, "omitempty") {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		switch {
		case f.Type == playerRefType:
			if fv.FieldByName("Name").String() == "" {
				return fmt.Errorf("missing %s", name)
			}
		case f.Type == reflect.TypeOf(Comparison(0)):
			if c := Comparison(fv.Int()); c < LessThan || c > NotEqual {
				return fmt.Errorf("bad %s", name)
			}
		case fv.Kind() == reflect.String:
			if fv.String() == "" {
				return fmt.Errorf("missing %s", name)
			}
		}
	}
	return nil
}

// playerRefs returns pointers to every PlayerRef field of b.
func playerRefs(b Body) []*PlayerRef {
	v := reflect.ValueOf(b)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return nil
	}
	var out []*PlayerRef
	var walk func(reflect.Value)
	walk = func(v reflect.Value) {
		for i := 0; i < v.NumField(); i++ {
			fv := v.Field(i)
			switch {
			case fv.Type() == playerRefType:
				out = append(out, fv.Addr().Interface().(*PlayerRef))
			case fv.Kind() == reflect.Struct && v.Type().Field(i).Anonymous:
				walk(fv)
			}
		}
	}
	walk(v.Elem())
	return out
}
