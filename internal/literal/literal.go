package literal

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// MaxDepth bounds nesting to keep hostile inputs from exhausting the stack.
const MaxDepth = 32

// Kind identifies the type of a Value.
type Kind uint8

const (
	KindInt Kind = iota
	KindTuple
	KindList
	KindSet
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindTuple:
		return "tuple"
	case KindList:
		return "list"
	case KindSet:
		return "set"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Value is a parsed literal. Sets are kept deduplicated and in canonical order.
type Value struct {
	Kind  Kind
	Int   int64
	Items []Value
}

// Int returns an integer value.
func Int(v int64) Value {
	return Value{Kind: KindInt, Int: v}
}

// Tuple returns a tuple value.
func Tuple(items ...Value) Value {
	return Value{Kind: KindTuple, Items: items}
}

// List returns a list value.
func List(items ...Value) Value {
	return Value{Kind: KindList, Items: items}
}

// Set returns a set value holding the distinct items.
func Set(items ...Value) Value {
	return normalizeSet(slices.Clone(items))
}

// AsSet converts a tuple, list or set into a set. Integers are returned unchanged
// with ok=false.
func (v Value) AsSet() (Value, bool) {
	if v.Kind == KindInt {
		return v, false
	}
	return Set(v.Items...), true
}

// Equal reports whether v and o are structurally equal. Sets compare
// regardless of element order.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	if v.Kind == KindInt {
		return v.Int == o.Int
	}
	return slices.EqualFunc(v.Items, o.Items, Value.Equal)
}

// String returns the canonical literal of v.
func (v Value) String() string {
	var b strings.Builder
	v.write(&b)
	return b.String()
}

func (v Value) write(b *strings.Builder) {
	var open, close byte
	switch v.Kind {
	case KindInt:
		b.WriteString(strconv.FormatInt(v.Int, 10))
		return
	case KindTuple:
		open, close = '(', ')'
	case KindList:
		open, close = '[', ']'
	case KindSet:
		open, close = '{', '}'
	}

	b.WriteByte(open)
	for i, item := range v.Items {
		if i > 0 {
			b.WriteString(", ")
		}
		item.write(b)
	}
	if v.Kind == KindTuple && len(v.Items) == 1 {
		b.WriteByte(',')
	}
	b.WriteByte(close)
}

func normalizeSet(items []Value) Value {
	keys := make([]string, len(items))
	for i, item := range items {
		keys[i] = item.String()
	}

	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return strings.Compare(keys[a], keys[b])
	})

	out := make([]Value, 0, len(items))
	for i, idx := range order {
		if i > 0 && keys[idx] == keys[order[i-1]] {
			continue
		}
		out = append(out, items[idx])
	}
	return Value{Kind: KindSet, Items: out}
}

// SyntaxError reports where parsing failed.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("literal: %s at offset %d", e.Msg, e.Offset)
}

// Parse parses s as a single literal value.
func Parse(s string) (Value, error) {
	p := parser{src: s}
	p.skipSpace()
	v, err := p.value(0)
	if err != nil {
		return Value{}, err
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return Value{}, p.errorf("unexpected %q after value", p.src[p.pos])
	}
	return v, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) errorf(format string, args ...any) error {
	return &SyntaxError{Offset: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) value(depth int) (Value, error) {
	if p.pos >= len(p.src) {
		return Value{}, p.errorf("unexpected end of input")
	}
	if depth > MaxDepth {
		return Value{}, p.errorf("nesting deeper than %d", MaxDepth)
	}

	switch c := p.src[p.pos]; {
	case c == '(':
		return p.sequence(depth, KindTuple, ')')
	case c == '[':
		return p.sequence(depth, KindList, ']')
	case c == '{':
		return p.sequence(depth, KindSet, '}')
	case c == '-' || c == '+' || isDigit(c):
		return p.integer()
	default:
		return Value{}, p.errorf("unexpected %q", c)
	}
}

func (p *parser) sequence(depth int, kind Kind, closing byte) (Value, error) {
	p.pos++ // opening bracket

	var items []Value
	trailingComma := false
	for {
		p.skipSpace()
		if p.pos >= len(p.src) {
			return Value{}, p.errorf("missing %q", closing)
		}
		if p.src[p.pos] == closing {
			p.pos++
			break
		}

		item, err := p.value(depth + 1)
		if err != nil {
			return Value{}, err
		}
		items = append(items, item)
		trailingComma = false

		p.skipSpace()
		if p.pos >= len(p.src) {
			return Value{}, p.errorf("missing %q", closing)
		}
		switch p.src[p.pos] {
		case ',':
			p.pos++
			trailingComma = true
		case closing:
		default:
			return Value{}, p.errorf("expected ',' or %q, got %q", closing, p.src[p.pos])
		}
	}

	switch kind {
	case KindTuple:
		if len(items) == 1 && !trailingComma {
			// Parenthesised expression, not a tuple.
			return items[0], nil
		}
		if items == nil {
			items = []Value{}
		}
		return Value{Kind: KindTuple, Items: items}, nil
	case KindSet:
		return normalizeSet(items), nil
	default:
		if items == nil {
			items = []Value{}
		}
		return Value{Kind: kind, Items: items}, nil
	}
}

func (p *parser) integer() (Value, error) {
	start := p.pos
	if c := p.src[p.pos]; c == '-' || c == '+' {
		p.pos++
	}
	digits := p.pos
	for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
		p.pos++
	}
	if p.pos == digits {
		return Value{}, p.errorf("expected digit")
	}
	if p.pos < len(p.src) && (p.src[p.pos] == '.' || p.src[p.pos] == 'e' || p.src[p.pos] == 'E' || p.src[p.pos] == '_') {
		return Value{}, p.errorf("only plain integers are allowed")
	}

	n, err := strconv.ParseInt(p.src[start:p.pos], 10, 64)
	if err != nil {
		return Value{}, &SyntaxError{Offset: start, Msg: fmt.Sprintf("integer %s out of range", p.src[start:p.pos])}
	}
	return Int(n), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
