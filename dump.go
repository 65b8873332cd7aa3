package logcontent

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Maximum recursion depth to prevent stack overflow
const maxDumpDepth = 10

// Limit the number of elements rendered for large slices/arrays/maps
const maxDumpElements = 10

// Limit the values rendered in one dump; shared pointers are walked once
// per path that reaches them.
const maxDumpNodes = 1000

// Dump renders every exported field of the value at every level.
// Structs, maps, slices and pointers are walked recursively; pointer
// cycles render as <circular reference> and output past maxDumpNodes
// values ends in <truncated>.
func Dump[T any]() Renderer[T] {
	return func(v T, _ Level) string {
		return dumpString(v)
	}
}

func dumpString(v interface{}) string {
	d := &dumper{visited: make(map[uintptr]bool)}
	d.dumpValue(v, 0)
	return d.buf.String()
}

type dumper struct {
	buf       strings.Builder
	visited   map[uintptr]bool
	nodes     int
	truncated bool
}

// dumpValue is the recursive helper for dumpString
func (d *dumper) dumpValue(v interface{}, depth int) {
	if d.truncated {
		return
	}
	d.nodes++
	if d.nodes > maxDumpNodes {
		d.truncated = true
		d.buf.WriteString("<truncated>")
		return
	}
	if depth > maxDumpDepth {
		d.buf.WriteString("<max depth reached>")
		return
	}
	if v == nil {
		d.buf.WriteString(nilText)
		return
	}

	val := reflect.ValueOf(v)

	var marked []uintptr
	defer func() {
		for _, ptr := range marked {
			delete(d.visited, ptr)
		}
	}()

	// Unwrap interfaces and pointers with cycle detection.
	for {
		if text, ok := describe(val); ok {
			d.buf.WriteString(text)
			return
		}
		switch val.Kind() {
		case reflect.Interface:
			if val.IsNil() {
				d.buf.WriteString(nilText)
				return
			}
			val = val.Elem()
			continue
		case reflect.Ptr:
			if val.IsNil() {
				d.buf.WriteString(nilText)
				return
			}
			ptr := val.Pointer()
			if d.visited[ptr] {
				d.buf.WriteString("<circular reference>")
				return
			}
			d.visited[ptr] = true
			marked = append(marked, ptr)
			val = val.Elem()
			continue
		default:
		}
		break
	}

	typ := val.Type()

	switch val.Kind() {
	case reflect.Struct:
		d.buf.WriteString(typ.Name())
		d.buf.WriteString("{")
		first := true
		for i := 0; i < val.NumField() && !d.truncated; i++ {
			fieldVal := val.Field(i)
			// Skip unexported fields
			if !fieldVal.CanInterface() {
				continue
			}
			if !first {
				d.buf.WriteString(", ")
			}
			first = false
			d.buf.WriteString(typ.Field(i).Name)
			d.buf.WriteString(": ")
			d.dumpValue(fieldVal.Interface(), depth+1)
		}
		d.buf.WriteString("}")

	case reflect.Map:
		if val.IsNil() {
			d.buf.WriteString(nilText)
			return
		}
		fmt.Fprintf(&d.buf, "map[%s]%s{", typ.Key().String(), typ.Elem().String())
		keys := val.MapKeys()
		// map order is random; sort on the printed key for stable output
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		for i, k := range keys {
			if d.truncated {
				break
			}
			if i == maxDumpElements {
				fmt.Fprintf(&d.buf, ", ... (%d more elements)", len(keys)-maxDumpElements)
				break
			}
			if i > 0 {
				d.buf.WriteString(", ")
			}
			fmt.Fprintf(&d.buf, "%v: ", k.Interface())
			d.dumpValue(val.MapIndex(k).Interface(), depth+1)
		}
		d.buf.WriteString("}")

	case reflect.Slice, reflect.Array:
		if val.Kind() == reflect.Slice && val.IsNil() {
			d.buf.WriteString(nilText)
			return
		}
		fmt.Fprintf(&d.buf, "%s(len: %d)[", typ.String(), val.Len())
		for i := 0; i < val.Len() && i < maxDumpElements && !d.truncated; i++ {
			if i > 0 {
				d.buf.WriteString(", ")
			}
			elem := val.Index(i)
			if elem.CanInterface() {
				d.dumpValue(elem.Interface(), depth+1)
			} else {
				d.dumpValue(reflect.New(elem.Type()).Elem().Interface(), depth+1)
			}
		}
		if val.Len() > maxDumpElements && !d.truncated {
			fmt.Fprintf(&d.buf, ", ... (%d more elements)", val.Len()-maxDumpElements)
		}
		d.buf.WriteString("]")

	case reflect.String:
		fmt.Fprintf(&d.buf, "%q", val.String())

	default:
		if val.IsValid() && val.CanInterface() {
			fmt.Fprintf(&d.buf, "%v", val.Interface())
		} else {
			fmt.Fprintf(&d.buf, "%v", v)
		}
	}
}

// describe returns the text of values that know how to print themselves.
func describe(val reflect.Value) (string, bool) {
	if !val.IsValid() || !val.CanInterface() {
		return emptyString, false
	}
	switch val.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		if val.IsNil() {
			return emptyString, false
		}
	}
	switch x := val.Interface().(type) {
	case error:
		return x.Error(), true
	case fmt.Stringer:
		return x.String(), true
	}
	return emptyString, false
}
