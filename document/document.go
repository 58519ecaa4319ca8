// Package document reads Lottie JSON documents into an immutable tree of values. Lookups on missing members or mistyped values return the zero Value, whose accessors return defaults, so that callers can navigate optional structure without checks.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/tdewolff/parse/v2"
	parseJSON "github.com/tdewolff/parse/v2/json"
	"github.com/tdewolff/parse/v2/strconv"
)

// ErrNotObject is returned when the document root is not a JSON object.
var ErrNotObject = errors.New("document root is not an object")

// MaxDepth is the maximum nesting depth of arrays and objects.
var MaxDepth = 1024

// Kind is the type of a value.
type Kind int

// Value kinds.
const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Member is a key/value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// Value is a JSON value. The zero Value is null.
type Value struct {
	kind    Kind
	num     float64
	str     string
	items   []Value
	members []Member
}

// NewNumber returns a number value.
func NewNumber(f float64) Value {
	return Value{kind: Number, num: f}
}

// NewBool returns a boolean value.
func NewBool(b bool) Value {
	if b {
		return Value{kind: Bool, num: 1.0}
	}
	return Value{kind: Bool}
}

// NewString returns a string value.
func NewString(s string) Value {
	return Value{kind: String, str: s}
}

// NewArray returns an array value.
func NewArray(items ...Value) Value {
	return Value{kind: Array, items: items}
}

// NewObject returns an object value. Later members with the same key shadow earlier ones.
func NewObject(members ...Member) Value {
	return Value{kind: Object, members: members}
}

// NewFloats returns an array of numbers.
func NewFloats(fs ...float64) Value {
	items := make([]Value, len(fs))
	for i, f := range fs {
		items[i] = NewNumber(f)
	}
	return NewArray(items...)
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNull() bool {
	return v.kind == Null
}

func (v Value) IsNumber() bool {
	return v.kind == Number
}

func (v Value) IsString() bool {
	return v.kind == String
}

func (v Value) IsArray() bool {
	return v.kind == Array
}

func (v Value) IsObject() bool {
	return v.kind == Object
}

// Has returns true if the object has a member with the given key.
func (v Value) Has(key string) bool {
	for i := len(v.members) - 1; 0 <= i; i-- {
		if v.members[i].Key == key {
			return true
		}
	}
	return false
}

// Get returns the object member with the given key, or null.
func (v Value) Get(key string) Value {
	for i := len(v.members) - 1; 0 <= i; i-- {
		if v.members[i].Key == key {
			return v.members[i].Value
		}
	}
	return Value{}
}

// Members returns the members of an object.
func (v Value) Members() []Member {
	return v.members
}

// With returns a copy of the object with the member set.
func (v Value) With(key string, val Value) Value {
	members := make([]Member, 0, len(v.members)+1)
	for _, m := range v.members {
		if m.Key != key {
			members = append(members, m)
		}
	}
	members = append(members, Member{key, val})
	return Value{kind: Object, members: members}
}

// Len returns the number of array items or object members.
func (v Value) Len() int {
	if v.kind == Object {
		return len(v.members)
	}
	return len(v.items)
}

// Index returns the i-th array item, or null.
func (v Value) Index(i int) Value {
	if i < 0 || len(v.items) <= i {
		return Value{}
	}
	return v.items[i]
}

// Items returns the items of an array.
func (v Value) Items() []Value {
	return v.items
}

// Float returns the number, 1 or 0 for booleans, the first item for arrays, and 0 otherwise.
func (v Value) Float() float64 {
	return v.FloatOr(0.0)
}

// FloatOr returns the number like Float, or def when the value is not numeric.
func (v Value) FloatOr(def float64) float64 {
	switch v.kind {
	case Number, Bool:
		return v.num
	case Array:
		if 0 < len(v.items) {
			return v.items[0].FloatOr(def)
		}
	}
	return def
}

// Int returns the number rounded to an integer.
func (v Value) Int() int {
	return v.IntOr(0)
}

// IntOr returns the number rounded to an integer, or def when the value is not numeric.
func (v Value) IntOr(def int) int {
	f := v.FloatOr(math.NaN())
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return int(math.Round(f))
}

// Bool returns true for true booleans and non-zero numbers.
func (v Value) Bool() bool {
	switch v.kind {
	case Bool, Number:
		return v.num != 0.0
	}
	return false
}

// Text returns the string value, or the empty string.
func (v Value) Text() string {
	if v.kind == String {
		return v.str
	}
	return ""
}

// Floats returns the numeric items of an array, a single number is returned as a slice of one.
func (v Value) Floats() []float64 {
	switch v.kind {
	case Number:
		return []float64{v.num}
	case Array:
		fs := make([]float64, 0, len(v.items))
		for _, item := range v.items {
			fs = append(fs, item.Float())
		}
		return fs
	}
	return nil
}

func (v Value) String() string {
	switch v.kind {
	case Null:
		return "null"
	case Bool:
		if v.num != 0.0 {
			return "true"
		}
		return "false"
	case Number:
		return fmt.Sprintf("%g", v.num)
	case String:
		return fmt.Sprintf("%q", v.str)
	case Array:
		sb := bytes.Buffer{}
		sb.WriteByte('[')
		for i, item := range v.items {
			if i != 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(item.String())
		}
		sb.WriteByte(']')
		return sb.String()
	}
	sb := bytes.Buffer{}
	sb.WriteByte('{')
	for i, m := range v.members {
		if i != 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%q:%s", m.Key, m.Value.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

////////////////////////////////////////////////////////////////

// Parse reads a JSON document.
func Parse(r io.Reader) (Value, error) {
	return parseInput(parse.NewInput(r))
}

// ParseBytes parses a JSON document from b.
func ParseBytes(b []byte) (Value, error) {
	return parseInput(parse.NewInputBytes(b))
}

// ParseString parses a JSON document from s.
func ParseString(s string) (Value, error) {
	return parseInput(parse.NewInputString(s))
}

// MustParseString parses a JSON document from s and panics on error.
func MustParseString(s string) Value {
	v, err := ParseString(s)
	if err != nil {
		panic(err)
	}
	return v
}

type parser struct {
	p     *parseJSON.Parser
	depth int
}

func parseInput(input *parse.Input) (Value, error) {
	p := &parser{p: parseJSON.NewParser(input)}
	gt, data := p.next()
	if gt == parseJSON.ErrorGrammar {
		return Value{}, p.err()
	}
	v, err := p.value(gt, data)
	if err != nil {
		return Value{}, err
	}
	if gt, _ := p.next(); gt != parseJSON.ErrorGrammar || p.p.Err() != io.EOF {
		if err := p.p.Err(); err != nil && err != io.EOF {
			return Value{}, err
		}
		return Value{}, fmt.Errorf("unexpected data after document")
	}
	return v, nil
}

func (p *parser) next() (parseJSON.GrammarType, []byte) {
	for {
		gt, data := p.p.Next()
		if gt != parseJSON.WhitespaceGrammar {
			return gt, data
		}
	}
}

func (p *parser) err() error {
	if err := p.p.Err(); err != nil && err != io.EOF {
		return err
	}
	return io.ErrUnexpectedEOF
}

func (p *parser) value(gt parseJSON.GrammarType, data []byte) (Value, error) {
	switch gt {
	case parseJSON.LiteralGrammar:
		switch string(data) {
		case "true":
			return NewBool(true), nil
		case "false":
			return NewBool(false), nil
		}
		return Value{}, nil
	case parseJSON.NumberGrammar:
		f, n := strconv.ParseFloat(data)
		if n != len(data) {
			return Value{}, fmt.Errorf("bad number %q", data)
		}
		return NewNumber(f), nil
	case parseJSON.StringGrammar:
		s, err := unquote(data)
		if err != nil {
			return Value{}, err
		}
		return NewString(s), nil
	case parseJSON.StartArrayGrammar:
		return p.array()
	case parseJSON.StartObjectGrammar:
		return p.object()
	case parseJSON.ErrorGrammar:
		return Value{}, p.err()
	}
	return Value{}, fmt.Errorf("unexpected %q", data)
}

func (p *parser) array() (Value, error) {
	if p.depth++; MaxDepth < p.depth {
		return Value{}, fmt.Errorf("document exceeds maximum depth of %d", MaxDepth)
	}
	defer func() { p.depth-- }()

	items := []Value{}
	for {
		gt, data := p.next()
		if gt == parseJSON.EndArrayGrammar {
			return Value{kind: Array, items: items}, nil
		}
		item, err := p.value(gt, data)
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
	}
}

func (p *parser) object() (Value, error) {
	if p.depth++; MaxDepth < p.depth {
		return Value{}, fmt.Errorf("document exceeds maximum depth of %d", MaxDepth)
	}
	defer func() { p.depth-- }()

	members := []Member{}
	for {
		gt, data := p.next()
		if gt == parseJSON.EndObjectGrammar {
			return Value{kind: Object, members: members}, nil
		} else if gt != parseJSON.StringGrammar {
			if gt == parseJSON.ErrorGrammar {
				return Value{}, p.err()
			}
			return Value{}, fmt.Errorf("expected object key, got %q", data)
		}
		key, err := unquote(data)
		if err != nil {
			return Value{}, err
		}

		gt, data = p.next()
		val, err := p.value(gt, data)
		if err != nil {
			return Value{}, fmt.Errorf("%s: %w", key, err)
		}
		members = append(members, Member{key, val})
	}
}

func unquote(data []byte) (string, error) {
	if len(data) < 2 {
		return "", fmt.Errorf("bad string %q", data)
	}
	if bytes.IndexByte(data, '\\') == -1 {
		return string(data[1 : len(data)-1]), nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", fmt.Errorf("bad string %q: %w", data, err)
	}
	return s, nil
}
