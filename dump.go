package runlog

import (
	"fmt"
	"reflect"

	"github.com/rs/zerolog"
)

const (
	maxDumpDepth    = 10
	maxDumpElements = 10
)

// Dump writes the contents of v at debug level, one record per leaf:
// exported struct fields, map entries and up to ten slice elements.
// Cycles and nesting deeper than ten levels are cut short; a pointer shared
// by two branches is dumped under both.
func (l *Logger) Dump(v interface{}) {
	if !l.Enabled(zerolog.DebugLevel) {
		return
	}
	d := dumper{log: l, visited: make(map[uintptr]bool)}
	d.value(v, emptyString, 0)
}

type dumper struct {
	log     *Logger
	visited map[uintptr]bool
}

func (d *dumper) line(format string, args ...interface{}) {
	d.log.DebugWith().Msgf(format, args...)
}

func (d *dumper) value(v interface{}, prefix string, depth int) {
	label := prefix
	if label == emptyString {
		label = "."
	}
	if depth > maxDumpDepth {
		d.line("%s: <max depth reached>", label)
		return
	}
	if v == nil {
		d.line("%s: <nil>", label)
		return
	}

	val := reflect.ValueOf(v)
	for val.Kind() == reflect.Interface || val.Kind() == reflect.Ptr {
		if val.IsNil() {
			d.line("%s: <nil>", label)
			return
		}
		if val.Kind() == reflect.Ptr {
			ptr := val.Pointer()
			if d.visited[ptr] {
				d.line("%s: <circular reference>", label)
				return
			}
			d.visited[ptr] = true
			defer delete(d.visited, ptr)
		}
		val = val.Elem()
	}
	typ := val.Type()

	switch val.Kind() {
	case reflect.Struct:
		d.line("%s: %s {", label, typ.String())
		for i := 0; i < val.NumField(); i++ {
			field := val.Field(i)
			if !field.CanInterface() {
				continue
			}
			d.value(field.Interface(), join(prefix, typ.Field(i).Name), depth+1)
		}
		d.line("%s: }", label)

	case reflect.Map:
		d.line("%s: %s (len: %d) {", label, typ.String(), val.Len())
		iter := val.MapRange()
		for iter.Next() {
			d.value(iter.Value().Interface(), fmt.Sprintf("%s[%v]", prefix, iter.Key().Interface()), depth+1)
		}
		d.line("%s: }", label)

	case reflect.Slice, reflect.Array:
		d.line("%s: %s (len: %d) {", label, typ.String(), val.Len())
		for i := 0; i < val.Len() && i < maxDumpElements; i++ {
			elem := val.Index(i)
			if !elem.CanInterface() {
				continue
			}
			d.value(elem.Interface(), fmt.Sprintf("%s[%d]", prefix, i), depth+1)
		}
		if val.Len() > maxDumpElements {
			d.line("%s: ... (%d more elements)", label, val.Len()-maxDumpElements)
		}
		d.line("%s: }", label)

	default:
		if val.CanInterface() {
			d.line("%s: %v", label, val.Interface())
		} else {
			d.line("%s: %v", label, v)
		}
	}
}

func join(prefix, name string) string {
	if prefix == emptyString {
		return name
	}
	return prefix + "." + name
}
