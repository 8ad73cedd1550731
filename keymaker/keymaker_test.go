package keymaker

import (
	"bytes"
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/npillmayer/patricia/bitkey"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestIntegerEncodings(t *testing.T) {
	cases := []struct {
		name  string
		key   bitkey.Key
		bytes []byte
	}{
		{"uint16", Uint16(0x1234), []byte{0x12, 0x34}},
		{"int16", Int16(-0x1234), []byte{0x6d, 0xcc}},
		{"uint32", Uint32(0x12345678), []byte{0x12, 0x34, 0x56, 0x78}},
		{"int32", Int32(-0x12345678), []byte{0x6d, 0xcb, 0xa9, 0x88}},
		{"uint64", Uint64(0x1234567811223344),
			[]byte{0x12, 0x34, 0x56, 0x78, 0x11, 0x22, 0x33, 0x44}},
		{"int64", Int64(-0x1234567811223344),
			[]byte{0x6d, 0xcb, 0xa9, 0x87, 0xee, 0xdd, 0xcc, 0xbc}},
		{"int8", Int8(-1), []byte{0x7f}},
		{"uint8", Uint8(0xab), []byte{0xab}},
		{"int zero", Int32(0), []byte{0x80, 0, 0, 0}},
	}
	for _, c := range cases {
		if !bytes.Equal(c.key.Bytes(), c.bytes) {
			t.Errorf("%s: expected key bytes %x, got %x", c.name, c.bytes, c.key.Bytes())
		}
		if c.key.Len() != 8*len(c.bytes) {
			t.Errorf("%s: expected %d bits, got %d", c.name, 8*len(c.bytes), c.key.Len())
		}
	}
}

func TestSignedOrderPreserved(t *testing.T) {
	values := []int{math.MinInt, -1938482, -42, -1, 0, 1, 20, 512, 65535, math.MaxInt}
	assertOrdered(t, values, Int)
	values32 := []int32{math.MinInt32, -70000, -1, 0, 1, math.MaxInt32}
	assertOrdered(t, values32, Int32)
}

func TestFloatOrderPreserved(t *testing.T) {
	values := []float64{math.Inf(-1), -1e300, -2.5, -1e-300, math.Copysign(0, -1), 0,
		1e-300, 1, 2.5, 1e300, math.Inf(1)}
	assertOrdered(t, values, Float64)
	values32 := []float32{-3.5, -1, 0, 0.25, 1, 1000}
	assertOrdered(t, values32, Float32)
}

func assertOrdered[T any](t *testing.T, values []T, km Func[T]) {
	t.Helper()
	for i := 1; i < len(values); i++ {
		if c := bitkey.Compare(km(values[i-1]), km(values[i])); c >= 0 {
			t.Errorf("expected key(%v) < key(%v), compare = %d", values[i-1], values[i], c)
		}
	}
}

func TestStringAndBytes(t *testing.T) {
	k := String("foo")
	if k.Len() != 24 || string(k.Bytes()) != "foo" {
		t.Errorf("unexpected string key %v", k)
	}
	if !Bytes([]byte("foo")).Equal(k) {
		t.Errorf("expected byte key to equal string key")
	}
	if !String("").IsEmpty() {
		t.Errorf("expected empty string to produce empty key")
	}
}

type celsius int16
type label string
type blob []byte

func TestForBuiltinTypes(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	ki, err := For[int16]()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ki(-0x1234).Equal(Int16(-0x1234)) {
		t.Errorf("expected For[int16] to match Int16")
	}
	ks, err := For[string]()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ks("bar").Equal(String("bar")) {
		t.Errorf("expected For[string] to match String")
	}
	kb, err := For[[]byte]()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kb([]byte{1, 2}).Len() != 16 {
		t.Errorf("expected 16 bit key for 2 bytes")
	}
}

func TestForDefinedTypes(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	kc, err := For[celsius]()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !kc(-0x1234).Equal(Int16(-0x1234)) {
		t.Errorf("expected defined int16 type to encode like int16, got %v", kc(-0x1234))
	}
	kl, err := For[label]()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !kl("x").Equal(String("x")) {
		t.Errorf("expected defined string type to encode like string")
	}
	kbl, err := For[blob]()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !kbl(blob{0xff}).Equal(Bytes([]byte{0xff})) {
		t.Errorf("expected defined byte slice type to encode like []byte")
	}
	values := []celsius{-300, -1, 0, 7, 300}
	assertOrdered(t, values, kc)
}

func TestForUnsupported(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	if _, err := For[struct{ X int }](); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("expected ErrUnsupportedType for struct, got %v", err)
	}
	if _, err := For[[]int](); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("expected ErrUnsupportedType for []int, got %v", err)
	}
	if _, err := For[any](); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("expected ErrUnsupportedType for interface type, got %v", err)
	}
}

func TestIntegerMatchesSort(t *testing.T) {
	values := []uint32{7, 0, 1 << 31, 42, 65536, 255}
	keys := make([]bitkey.Key, len(values))
	for i, v := range values {
		keys[i] = Uint32(v)
	}
	slices.SortFunc(keys, bitkey.Compare)
	slices.Sort(values)
	for i, v := range values {
		if !keys[i].Equal(Uint32(v)) {
			t.Errorf("position %d: expected key of %d, got %v", i, v, keys[i])
		}
	}
}
