// Package schema validates invoicing documents against declarative
// contracts. A contract is a plain Go struct: the `json` tag names the wire
// field and an optional `schema` tag relaxes or refines it.
//
//	no rule    the field must be present and non-null
//	optional   may be absent; null is still rejected
//	nullable   may be absent or null
//	email      string must be an e-mail address
//	datetime   string must be an RFC 3339 timestamp
//
// Integer Go kinds only accept integral numbers. Named string types that
// implement Enum are closed sets. Optional and nullable fields must be
// pointers (or slices) so that absence survives normalization.
//
// Validation is structural and has no side effects. Every violation in a
// document is reported, in field declaration order, and the result is a
// freshly built value; unknown keys are dropped.
package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Violation is one field-level problem. Path joins field names and array
// indices with dots ("items.0.tax.icms.cst"); document-level problems use
// the empty path.
type Violation struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Violations is the complete set of problems found in one document.
type Violations []Violation

func (vs Violations) Error() string {
	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		if v.Path == "" {
			parts = append(parts, v.Message)
			continue
		}
		parts = append(parts, v.Path+": "+v.Message)
	}
	return "schema: " + strings.Join(parts, "; ")
}

// AsViolations extracts a violation list from err, if it carries one.
func AsViolations(err error) (Violations, bool) {
	var vs Violations
	if errors.As(err, &vs) {
		return vs, true
	}
	return nil, false
}

// Enum is implemented by closed string enumerations.
type Enum interface {
	Values() []string
}

// Validate decodes raw JSON and checks it against contract T. On success
// it returns the normalized typed document; otherwise the error is
// Violations.
func Validate[T any](raw []byte) (*T, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, Violations{{Message: "Invalid JSON: " + err.Error()}}
	}
	if err := dec.Decode(new(any)); !errors.Is(err, io.EOF) {
		return nil, Violations{{Message: "Invalid JSON: unexpected data after top-level value"}}
	}

	out, vs := ValidateValue[T](doc)
	if len(vs) > 0 {
		return nil, vs
	}
	return out, nil
}

// ValidateValue checks an already decoded JSON value (maps, slices,
// strings, bools, float64 or json.Number) against contract T.
func ValidateValue[T any](v any) (*T, Violations) {
	var out T
	dst := reflect.ValueOf(&out).Elem()
	root := newNode(dst.Type(), "")

	var c collector
	if v == nil {
		c.add("", expected(root.expectation(), nil))
	} else {
		root.check(v, "", dst, &c)
	}
	if len(c.vs) > 0 {
		return nil, c.vs
	}
	return &out, nil
}

// ---- engine ----

var (
	enumType = reflect.TypeOf((*Enum)(nil)).Elem()
	formats  = validator.New()
	plans    sync.Map // reflect.Type -> []field
)

// UTC only: the trailing Z is literal, so offsets such as +03:00 are
// rejected. Fractional seconds are still accepted after the seconds field.
const rfc3339 = "datetime=2006-01-02T15:04:05Z"

type mode int

const (
	required mode = iota
	optional
	nullable
)

func (m mode) String() string {
	switch m {
	case optional:
		return "optional"
	case nullable:
		return "nullable"
	default:
		return "required"
	}
}

type kind int

const (
	kString kind = iota
	kEnum
	kFloat
	kInt
	kBool
	kStruct
	kSlice
)

type node struct {
	kind   kind
	typ    reflect.Type // value type, pointer stripped
	ptr    bool
	format string
	enum   []string
	elem   *node
}

type field struct {
	name  string
	index int
	mode  mode
	node  *node
}

type collector struct{ vs Violations }

func (c *collector) add(path, msg string) {
	c.vs = append(c.vs, Violation{Path: path, Message: msg})
}

func newNode(t reflect.Type, format string) *node {
	n := &node{format: format}
	if t.Kind() == reflect.Pointer {
		n.ptr = true
		t = t.Elem()
	}
	n.typ = t

	switch {
	case t.Implements(enumType):
		n.kind = kEnum
		n.enum = reflect.Zero(t).Interface().(Enum).Values()
	case t.Kind() == reflect.String:
		n.kind = kString
	case t.Kind() == reflect.Float64 || t.Kind() == reflect.Float32:
		n.kind = kFloat
	case t.Kind() >= reflect.Int && t.Kind() <= reflect.Int64:
		n.kind = kInt
	case t.Kind() == reflect.Bool:
		n.kind = kBool
	case t.Kind() == reflect.Struct:
		n.kind = kStruct
	case t.Kind() == reflect.Slice:
		n.kind = kSlice
		n.elem = newNode(t.Elem(), "")
	default:
		panic(fmt.Sprintf("schema: unsupported type %s", t))
	}
	return n
}

// planFor returns the field list of a contract struct, building it once.
func planFor(t reflect.Type) []field {
	if p, ok := plans.Load(t); ok {
		return p.([]field)
	}
	fs := make([]field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = sf.Name
		}
		m, format := parseRule(sf.Tag.Get("schema"))
		n := newNode(sf.Type, format)
		if m != required && !n.ptr && n.kind != kSlice {
			panic(fmt.Sprintf("schema: %s.%s is %s and must be a pointer", t.Name(), sf.Name, m))
		}
		fs = append(fs, field{name: name, index: i, mode: m, node: n})
	}
	p, _ := plans.LoadOrStore(t, fs)
	return p.([]field)
}

func parseRule(tag string) (mode, string) {
	m, format := required, ""
	for _, part := range strings.Split(tag, ",") {
		switch strings.TrimSpace(part) {
		case "":
		case "optional":
			m = optional
		case "nullable":
			m = nullable
		case "email":
			format = "email"
		case "datetime":
			format = "datetime"
		default:
			panic(fmt.Sprintf("schema: unknown rule %q", part))
		}
	}
	return m, format
}

// check validates a non-null v and writes the converted value into dst.
func (n *node) check(v any, path string, dst reflect.Value, c *collector) {
	if n.ptr {
		target := reflect.New(n.typ)
		n.checkValue(v, path, target.Elem(), c)
		dst.Set(target)
		return
	}
	n.checkValue(v, path, dst, c)
}

func (n *node) checkValue(v any, path string, dst reflect.Value, c *collector) {
	switch n.kind {
	case kString:
		s, ok := v.(string)
		if !ok {
			c.add(path, expected("string", v))
			return
		}
		switch n.format {
		case "email":
			if formats.Var(s, "email") != nil {
				c.add(path, "Invalid email")
			}
		case "datetime":
			if formats.Var(s, rfc3339) != nil {
				c.add(path, "Invalid datetime")
			}
		}
		dst.SetString(s)

	case kEnum:
		s, ok := v.(string)
		if !ok {
			c.add(path, expected(n.expectation(), v))
			return
		}
		if !slices.Contains(n.enum, s) {
			c.add(path, fmt.Sprintf("Invalid enum value. Expected %s, received '%s'", n.expectation(), s))
			return
		}
		dst.SetString(s)

	case kFloat:
		f, ok := toFloat(v)
		if !ok {
			c.add(path, numberProblem(v))
			return
		}
		dst.SetFloat(f)

	case kInt:
		f, ok := toFloat(v)
		if !ok {
			c.add(path, numberProblem(v))
			return
		}
		i, ok := toInt(v, f)
		if !ok || dst.OverflowInt(i) {
			c.add(path, "Expected integer, received float")
			return
		}
		dst.SetInt(i)

	case kBool:
		b, ok := v.(bool)
		if !ok {
			c.add(path, expected("boolean", v))
			return
		}
		dst.SetBool(b)

	case kStruct:
		obj, ok := v.(map[string]any)
		if !ok {
			c.add(path, expected("object", v))
			return
		}
		for _, f := range planFor(n.typ) {
			fp := join(path, f.name)
			fv, present := obj[f.name]
			if !present {
				if f.mode == required {
					c.add(fp, "Required")
				}
				continue
			}
			if fv == nil {
				if f.mode != nullable {
					c.add(fp, expected(f.node.expectation(), nil))
				}
				continue
			}
			f.node.check(fv, fp, dst.Field(f.index), c)
		}

	case kSlice:
		arr, ok := v.([]any)
		if !ok {
			c.add(path, expected("array", v))
			return
		}
		out := reflect.MakeSlice(n.typ, len(arr), len(arr))
		for i, e := range arr {
			ep := join(path, strconv.Itoa(i))
			if e == nil {
				if !n.elem.ptr {
					c.add(ep, expected(n.elem.expectation(), nil))
				}
				continue
			}
			n.elem.check(e, ep, out.Index(i), c)
		}
		dst.Set(out)
	}
}

func (n *node) expectation() string {
	switch n.kind {
	case kEnum:
		quoted := make([]string, len(n.enum))
		for i, s := range n.enum {
			quoted[i] = "'" + s + "'"
		}
		return strings.Join(quoted, " | ")
	case kFloat, kInt:
		return "number"
	case kBool:
		return "boolean"
	case kStruct:
		return "object"
	case kSlice:
		return "array"
	default:
		return "string"
	}
}

func expected(want string, got any) string {
	return "Expected " + want + ", received " + received(got)
}

func numberProblem(v any) string {
	if _, ok := v.(json.Number); ok {
		return "Number out of range"
	}
	return expected("number", v)
}

func received(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case json.Number, float64, float32, int, int32, int64:
		return "number"
	case bool:
		return "boolean"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case json.Number:
		f, err := x.Float64()
		return f, err == nil
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	return 0, false
}

func toInt(v any, f float64) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i, true
		}
	}
	if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
