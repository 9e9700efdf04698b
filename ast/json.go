package ast

import (
	"bytes"
	"encoding/json"
	"math"
	"reflect"
	"strconv"
	"unicode/utf8"
)

var rangeType = reflect.TypeOf((*Range)(nil))

// Marshal encodes a tree as ESTree JSON. Every node object carries its
// "type" first, then "start", "end" and "loc" when the tree has locations.
func Marshal(n Node) ([]byte, error) {
	var e encoder
	e.value(reflect.ValueOf(n), false)
	return e.buf.Bytes(), nil
}

// MarshalIndent is like Marshal but indents the output.
func MarshalIndent(n Node, prefix, indent string) ([]byte, error) {
	b, err := Marshal(n)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, b, prefix, indent); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

type encoder struct {
	buf bytes.Buffer
}

// value writes v. Fields declared as a bare interface{} hold literal values,
// and anything other than a JSON scalar in them encodes as an empty object.
func (e *encoder) value(v reflect.Value, scalar bool) {
	switch v.Kind() {
	case reflect.Invalid:
		e.buf.WriteString("null")
	case reflect.Interface:
		if v.IsNil() {
			e.buf.WriteString("null")
			return
		}
		e.value(v.Elem(), v.NumMethod() == 0)
	case reflect.Pointer:
		if v.IsNil() {
			e.buf.WriteString("null")
			return
		}
		if scalar {
			e.buf.WriteString("{}")
			return
		}
		if n, ok := v.Interface().(Node); ok {
			e.object(v.Elem(), n.Type())
			return
		}
		e.value(v.Elem(), false)
	case reflect.Struct:
		if scalar {
			e.buf.WriteString("{}")
			return
		}
		e.object(v, "")
	case reflect.Slice:
		e.buf.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				e.buf.WriteByte(',')
			}
			e.value(v.Index(i), false)
		}
		e.buf.WriteByte(']')
	case reflect.String:
		e.string(v.String())
	case reflect.Bool:
		e.buf.WriteString(strconv.FormatBool(v.Bool()))
	case reflect.Int, reflect.Int64, reflect.Int32:
		e.buf.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflect.Float64, reflect.Float32:
		f := v.Float()
		if math.IsInf(f, 0) || math.IsNaN(f) {
			e.buf.WriteString("null")
			return
		}
		e.buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	default:
		e.buf.WriteString("{}")
	}
}

func (e *encoder) object(v reflect.Value, typ string) {
	e.buf.WriteByte('{')
	first := true
	key := func(name string) {
		if !first {
			e.buf.WriteByte(',')
		}
		first = false
		e.string(name)
		e.buf.WriteByte(':')
	}
	if typ != "" {
		key("type")
		e.string(typ)
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		fv := v.Field(i)
		if f.Anonymous && f.Type == rangeType {
			if fv.IsNil() {
				continue
			}
			r := fv.Interface().(*Range)
			key("start")
			e.buf.WriteString(strconv.Itoa(r.Start))
			key("end")
			e.buf.WriteString(strconv.Itoa(r.End))
			if r.Loc != nil {
				key("loc")
				e.value(reflect.ValueOf(r.Loc), false)
			}
			continue
		}
		name, omitEmpty := parseTag(f.Tag.Get("json"))
		if name == "" || name == "-" {
			continue
		}
		if omitEmpty && isEmpty(fv) {
			continue
		}
		key(name)
		e.value(fv, false)
	}
	e.buf.WriteByte('}')
}

func parseTag(tag string) (string, bool) {
	for i := 0; i < len(tag); i++ {
		if tag[i] == ',' {
			return tag[:i], tag[i+1:] == "omitempty"
		}
	}
	return tag, false
}

func isEmpty(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String, reflect.Slice:
		return v.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return v.IsNil()
	case reflect.Bool:
		return !v.Bool()
	}
	return false
}

const hex = "0123456789abcdef"

func (e *encoder) string(s string) {
	e.buf.WriteByte('"')
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			switch {
			case c == '"' || c == '\\':
				e.buf.WriteByte('\\')
				e.buf.WriteByte(c)
			case c == '\n':
				e.buf.WriteString(`\n`)
			case c == '\r':
				e.buf.WriteString(`\r`)
			case c == '\t':
				e.buf.WriteString(`\t`)
			case c < 0x20:
				e.buf.WriteString(`\u00`)
				e.buf.WriteByte(hex[c>>4])
				e.buf.WriteByte(hex[c&0xF])
			default:
				e.buf.WriteByte(c)
			}
			i++
			continue
		}
		r, n := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && n == 1:
			e.buf.WriteString(`\ufffd`)
		case r == '\u2028' || r == '\u2029':
			e.buf.WriteString(`\u202`)
			e.buf.WriteByte(hex[r&0xF])
		default:
			e.buf.WriteString(s[i : i+n])
		}
		i += n
	}
	e.buf.WriteByte('"')
}
