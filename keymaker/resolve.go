package keymaker

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/npillmayer/patricia/bitkey"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// ErrUnsupportedType signals that no built-in key maker exists for a type.
var ErrUnsupportedType = errors.New("keymaker: no key maker for type")

// tracer traces to the global core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// For returns the built-in key maker for T.
//
// Predeclared integer, float, string and []byte types map to the functions of
// this package. Defined types with one of these as underlying type are handled
// by reflection. Any other T results in ErrUnsupportedType.
func For[T any]() (Func[T], error) {
	var zero T
	var km any
	switch any(zero).(type) {
	case int8:
		km = Func[int8](Int8)
	case int16:
		km = Func[int16](Int16)
	case int32:
		km = Func[int32](Int32)
	case int64:
		km = Func[int64](Int64)
	case int:
		km = Func[int](Int)
	case uint8:
		km = Func[uint8](Uint8)
	case uint16:
		km = Func[uint16](Uint16)
	case uint32:
		km = Func[uint32](Uint32)
	case uint64:
		km = Func[uint64](Uint64)
	case uint:
		km = Func[uint](Uint)
	case uintptr:
		km = Func[uintptr](Integer[uintptr])
	case float32:
		km = Func[float32](Float32)
	case float64:
		km = Func[float64](Float64)
	case string:
		km = Func[string](String)
	case []byte:
		km = Func[[]byte](Bytes)
	}
	if km != nil {
		return km.(Func[T]), nil
	}
	return reflected[T]()
}

// reflected creates a key maker for defined types by their underlying kind.
func reflected[T any]() (Func[T], error) {
	rt := reflect.TypeFor[T]()
	size := int(rt.Size())
	switch rt.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(v T) bitkey.Key {
			return encodeInt(uint64(reflect.ValueOf(v).Int()), size, true)
		}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(v T) bitkey.Key {
			return encodeInt(reflect.ValueOf(v).Uint(), size, false)
		}, nil
	case reflect.Float32:
		return func(v T) bitkey.Key {
			return Float32(float32(reflect.ValueOf(v).Float()))
		}, nil
	case reflect.Float64:
		return func(v T) bitkey.Key {
			return Float64(reflect.ValueOf(v).Float())
		}, nil
	case reflect.String:
		return func(v T) bitkey.Key {
			return String(reflect.ValueOf(v).String())
		}, nil
	case reflect.Slice:
		if rt.Elem().Kind() == reflect.Uint8 {
			return func(v T) bitkey.Key {
				return Bytes(reflect.ValueOf(v).Bytes())
			}, nil
		}
	}
	tracer().Debugf("keymaker: no key maker for %v", rt)
	return nil, fmt.Errorf("%w: %v", ErrUnsupportedType, rt)
}
