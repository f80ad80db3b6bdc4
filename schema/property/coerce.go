package property

import (
	"fmt"
	"math"

	"github.com/syssam/enumgen"
)

// Coerce converts a raw annotation or default value into a typed Value for
// the given class (and kind, for numeric properties). Raw values come from
// Go literals in builders or from decoded YAML/JSON documents, so numbers
// may arrive as any integer width or as float64. Coerce never guesses: a
// value outside the class's domain is an error, not a best-effort cast.
func Coerce(v any, class Class, kind Kind) (enumgen.Value, error) {
	if tv, ok := v.(enumgen.Value); ok {
		return coerceValue(tv, class, kind)
	}
	switch class {
	case ClassString:
		s, ok := v.(string)
		if !ok {
			return enumgen.Value{}, fmt.Errorf("want string, got %T", v)
		}
		return enumgen.StringValue(s), nil
	case ClassBool:
		b, ok := v.(bool)
		if !ok {
			return enumgen.Value{}, fmt.Errorf("want bool, got %T", v)
		}
		return enumgen.BoolValue(b), nil
	case ClassNumeric:
		return coerceNumber(v, kind)
	case ClassEnum:
		s, ok := v.(string)
		if !ok || s == "" {
			return enumgen.Value{}, fmt.Errorf("want enum member identifier, got %T (%v)", v, v)
		}
		return enumgen.EnumValue(s), nil
	case ClassRelation:
		switch t := v.(type) {
		case string:
			ref, err := enumgen.ParseRef(t)
			if err != nil {
				return enumgen.Value{}, err
			}
			return enumgen.RefValue(ref), nil
		case enumgen.VariantRef:
			return enumgen.RefValue(t), nil
		}
		return enumgen.Value{}, fmt.Errorf("want variant reference, got %T", v)
	}
	return enumgen.Value{}, fmt.Errorf("unknown property class %v", class)
}

// coerceValue admits an already-typed Value whose kind matches the class.
func coerceValue(v enumgen.Value, class Class, kind Kind) (enumgen.Value, error) {
	switch class {
	case ClassString:
		if v.Kind == enumgen.KindString {
			return v, nil
		}
	case ClassBool:
		if v.Kind == enumgen.KindBool {
			return v, nil
		}
	case ClassNumeric:
		switch v.Kind {
		case enumgen.KindInt:
			return coerceNumber(v.Int, kind)
		case enumgen.KindUint:
			return coerceNumber(v.Uint, kind)
		case enumgen.KindFloat:
			return coerceNumber(v.Float, kind)
		}
	case ClassEnum:
		if v.Kind == enumgen.KindEnum {
			return v, nil
		}
	case ClassRelation:
		if v.Kind == enumgen.KindRef || v.Kind == enumgen.KindRefList {
			return v, nil
		}
	}
	return enumgen.Value{}, fmt.Errorf("want %s, got %s value", class, v.Kind)
}

func coerceNumber(v any, kind Kind) (enumgen.Value, error) {
	switch {
	case kind.Float():
		f, ok := toFloat64(v)
		if !ok {
			return enumgen.Value{}, fmt.Errorf("want %s, got %T", kind, v)
		}
		return enumgen.FloatValue(f), nil
	case kind.Unsigned():
		u, ok := toUint64(v)
		if !ok {
			return enumgen.Value{}, fmt.Errorf("want %s, got %T (%v)", kind, v, v)
		}
		if !uintFits(u, kind) {
			return enumgen.Value{}, fmt.Errorf("value %d out of range for %s", u, kind)
		}
		return enumgen.UintValue(u), nil
	case kind.Signed():
		i, ok := toInt64(v)
		if !ok {
			return enumgen.Value{}, fmt.Errorf("want %s, got %T (%v)", kind, v, v)
		}
		if !intFits(i, kind) {
			return enumgen.Value{}, fmt.Errorf("value %d out of range for %s", i, kind)
		}
		return enumgen.IntValue(i), nil
	}
	return enumgen.Value{}, fmt.Errorf("numeric property has no kind")
}

// toInt64 accepts any integer width, and floats that carry integral values
// (JSON decodes every number to float64).
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), uint64(n) <= math.MaxInt64
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), n <= math.MaxInt64
	case float32:
		return int64(n), float32(int64(n)) == n
	case float64:
		return int64(n), float64(int64(n)) == n
	}
	return 0, false
}

func toUint64(v any) (uint64, bool) {
	switch n := v.(type) {
	case int:
		return uint64(n), n >= 0
	case int8:
		return uint64(n), n >= 0
	case int16:
		return uint64(n), n >= 0
	case int32:
		return uint64(n), n >= 0
	case int64:
		return uint64(n), n >= 0
	case uint:
		return uint64(n), true
	case uint8:
		return uint64(n), true
	case uint16:
		return uint64(n), true
	case uint32:
		return uint64(n), true
	case uint64:
		return n, true
	case float32:
		return uint64(n), n >= 0 && float32(uint64(n)) == n
	case float64:
		return uint64(n), n >= 0 && float64(uint64(n)) == n
	}
	return 0, false
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	if i, ok := toInt64(v); ok {
		return float64(i), true
	}
	if u, ok := toUint64(v); ok {
		return float64(u), true
	}
	return 0, false
}

func intFits(i int64, k Kind) bool {
	switch k {
	case KindInt8:
		return i >= math.MinInt8 && i <= math.MaxInt8
	case KindInt16:
		return i >= math.MinInt16 && i <= math.MaxInt16
	case KindInt32:
		return i >= math.MinInt32 && i <= math.MaxInt32
	}
	return true
}

func uintFits(u uint64, k Kind) bool {
	switch k {
	case KindUint8:
		return u <= math.MaxUint8
	case KindUint16:
		return u <= math.MaxUint16
	case KindUint32:
		return u <= math.MaxUint32
	}
	return true
}
