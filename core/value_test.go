package core

import (
	"errors"
	"math"
	"testing"
)

// TestKindNames 测试类型名
func TestKindNames(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{NewNull(), "null"},
		{NewBool(false), "bool"},
		{NewInt(1), "int"},
		{NewFloat(1), "float"},
		{NewString(""), "string"},
		{NewArray(1), "array"},
		{NewMap(1), "map"},
		{NewPair(NewNull(), NewNull()), "pair"},
		{NewFunction(func(...Value) (Value, error) { return nil, nil }), "function"},
		{NewPointer(new(int)), "pointer"},
	}
	for _, tt := range tests {
		if got := TypeName(tt.v); got != tt.want {
			t.Errorf("TypeName() = %q, want %q", got, tt.want)
		}
	}
	if TypeName(nil) != "unknown" || Kind(200).String() != "unknown" {
		t.Error("unknown kind name mismatch")
	}
}

// TestEqual 测试深度相等
func TestEqual(t *testing.T) {
	if Equal(NewBool(true), NewBool(false)) {
		t.Error("true == false")
	}
	if Equal(NewInt(1), NewFloat(1)) {
		t.Error("int and float must not be equal")
	}
	if Equal(NewInt(1), NewBool(true)) {
		t.Error("different kinds must not be equal")
	}
	if !Equal(NewString("a"), NewString("a")) {
		t.Error("equal strings")
	}

	m1 := NewMap(4)
	m1.Insert("x", NewInt(1))
	m1.Insert("y", NewInt(2))
	m2 := NewMap(2)
	m2.Insert("y", NewInt(2))
	m2.Insert("x", NewInt(1))
	if !Equal(m1, m2) {
		t.Error("maps with same entries in different order should be equal")
	}
	m2.Insert("x", NewInt(3))
	if Equal(m1, m2) {
		t.Error("maps with different values should differ")
	}

	a1, a2 := NewArray(1), NewArray(4)
	a1.Push(NewString("s"))
	a2.Push(NewString("s"))
	if !Equal(a1, a2) {
		t.Error("arrays with same elements should be equal")
	}
	a2.Push(NewNull())
	if Equal(a1, a2) {
		t.Error("arrays with different length should differ")
	}

	x, y := new(int), new(int)
	if Equal(NewPointer(x), NewPointer(y)) || !Equal(NewPointer(x), NewPointer(x)) {
		t.Error("pointer identity mismatch")
	}
}

// TestSameKind 测试类型比较
func TestSameKind(t *testing.T) {
	if !SameKind(NewInt(1), NewInt(2)) || SameKind(NewInt(1), NewFloat(1)) {
		t.Error("SameKind mismatch")
	}
}

// TestLess 测试有序比较
func TestLess(t *testing.T) {
	tests := []struct {
		a, b Value
		want bool
	}{
		{NewInt(1), NewInt(2), true},
		{NewInt(2), NewInt(1), false},
		{NewInt(1), NewFloat(1.5), true},
		{NewFloat(0.5), NewInt(1), true},
		{NewString("a"), NewString("b"), true},
		{NewString("b"), NewString("a"), false},
		{NewBool(false), NewBool(true), true},
		{NewBool(true), NewBool(true), false},
		{NewString("1"), NewInt(2), false},
		{NewNull(), NewNull(), false},
	}
	for i, tt := range tests {
		if got := Less(tt.a, tt.b); got != tt.want {
			t.Errorf("case %d: Less() = %v, want %v", i, got, tt.want)
		}
	}
}

// TestToString 测试标量文本形式
func TestToString(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{NewInt(777), "777"},
		{NewFloat(1.25), "1.25"},
		{NewBool(true), "true"},
		{NewNull(), "null"},
		{NewString("Ryan"), "Ryan"},
	}
	for _, tt := range tests {
		got, err := ToString(tt.v)
		if err != nil || got != tt.want {
			t.Errorf("ToString(%s) = %q, %v; want %q", tt.v.Kind(), got, err, tt.want)
		}
	}
	if _, err := ToString(NewArray(1)); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("ToString(array) error = %v, want ErrTypeMismatch", err)
	}
}

// TestParseNumber 测试数字解析
func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want Value
	}{
		{"42", Int(42)},
		{"-7", Int(-7)},
		{"1.5", Float(1.5)},
		{"1e3", Float(1000)},
		{"99999999999999999999", Float(1e20)},
	}
	for _, tt := range tests {
		got, err := ParseNumber(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseNumber(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if v, err := ParseNumber("inf"); err != nil || !math.IsInf(float64(v.(Float)), 1) {
		t.Errorf("ParseNumber(inf) = %v, %v", v, err)
	}
	if _, err := ParseNumber("abc"); !errors.Is(err, ErrInvalidNumber) {
		t.Errorf("ParseNumber(abc) error = %v, want ErrInvalidNumber", err)
	}
}

// TestLen 测试长度访问
func TestLen(t *testing.T) {
	if n, err := Len(NewString("abc")); err != nil || n != 3 {
		t.Errorf("Len(string) = %d, %v", n, err)
	}
	if _, err := Len(NewInt(1)); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("Len(int) error = %v, want ErrTypeMismatch", err)
	}
}

// TestFunctionCall 测试原生函数调用
func TestFunctionCall(t *testing.T) {
	add := NewFunction(func(args ...Value) (Value, error) {
		var sum Int
		for _, a := range args {
			sum += a.(Int)
		}
		return sum, nil
	})
	v, err := add.Call(NewInt(1), NewInt(2))
	if err != nil || v != Int(3) {
		t.Errorf("Call() = %v, %v; want 3", v, err)
	}
	if add.Addr() == 0 {
		t.Error("Addr() must not be zero")
	}
}

// TestContractViolations 测试契约违反
func TestContractViolations(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"NewMap", func() { NewMap(-1) }},
		{"NewPointer", func() { NewPointer(nil) }},
		{"NewFunction", func() { NewFunction(nil) }},
		{"NewPair", func() { NewPair(nil, NewNull()) }},
		{"Insert", func() { NewMap(1).Insert("k", nil) }},
		{"Copy", func() { Copy(nil) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				ce, ok := recover().(*ContractError)
				if !ok {
					t.Fatal("want *ContractError")
				}
				if ce.File != "value_test.go" {
					t.Errorf("ContractError.File = %q, want value_test.go", ce.File)
				}
			}()
			tt.fn()
		})
	}
}
