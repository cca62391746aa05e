package jsonconfig

import (
	"fmt"
	"math/big"
	"strconv"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindObject
)

var kindNames = map[Kind]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindInt:    "int",
	KindFloat:  "float",
	KindString: "string",
	KindArray:  "array",
	KindObject: "object",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a single configuration value. The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	n    *big.Int // KindInt beyond the int64 range
	f    float64
	s    string
	arr  []Value
	obj  *Document
}

func Null() Value { return Value{} }
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }
func Int(v int64) Value { return Value{kind: KindInt, i: v} }
// BigInt stores an integer of any magnitude. Values that fit in int64 are
// stored as Int.
func BigInt(v *big.Int) Value {
	if v == nil {
		return Int(0)
	}
	if v.IsInt64() {
		return Int(v.Int64())
	}
	return Value{kind: KindInt, n: new(big.Int).Set(v)}
}

func Float(v float64) Value { return Value{kind: KindFloat, f: v} }
func String(v string) Value { return Value{kind: KindString, s: v} }
func Array(items ...Value) Value { return Value{kind: KindArray, arr: append([]Value(nil), items...)} }

// Object wraps a nested document. A nil document becomes an empty object.
func Object(doc *Document) Value {
	if doc == nil {
		doc = NewDocument()
	}
	return Value{kind: KindObject, obj: doc}
}

// Kind reports the variant tag.
func (v Value) Kind() Kind { return v.kind }

// bigInt returns the integer as a big.Int regardless of its storage.
func (v Value) bigInt() *big.Int {
	if v.n != nil {
		return v.n
	}
	return big.NewInt(v.i)
}

// SameKind reports whether both values carry the same variant tag.
func (v Value) SameKind(other Value) bool { return v.kind == other.kind }

// Equal compares kind and content recursively.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindInt:
		if v.n == nil && other.n == nil {
			return v.i == other.i
		}
		return v.bigInt().Cmp(other.bigInt()) == 0
	case KindFloat:
		return v.f == other.f
	case KindString:
		return v.s == other.s
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return v.obj.Equal(other.obj)
	}
	return false
}

// String renders the value for human-facing output. Strings are returned
// unquoted; containers are rendered as compact JSON.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return v.bigInt().String()
	case KindFloat:
		return formatFloat(v.f)
	case KindString:
		return v.s
	default:
		data, err := v.MarshalJSON()
		if err != nil {
			return fmt.Sprintf("<%s>", v.kind)
		}
		return string(data)
	}
}
