// Package core 提供动态类型值与容器
//
// 设计原则:
//   - 封闭的 Value 接口：Null/Bool/Int/Float/String/Array/Map/Pair/Function/Pointer
//   - 写入拷贝、读出拷贝：容器只持有自己的深拷贝，调用方拿到的值与容器互不影响
//   - 显式释放：Destroy 递归释放，遇到容器直接包含自身时在重入点停止
//   - 可恢复失败返回 error，调用契约违反（nil 值、非正容量）以 *ContractError panic
package core

import (
	"reflect"

	"github.com/uniyakcom/object/str"
)

// Kind 值的类型标签
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindArray
	KindMap
	KindPair
	KindFunction
	KindPointer
)

var kindNames = [...]string{
	KindNull:     "null",
	KindBool:     "bool",
	KindInt:      "int",
	KindFloat:    "float",
	KindString:   "string",
	KindArray:    "array",
	KindMap:      "map",
	KindPair:     "pair",
	KindFunction: "function",
	KindPointer:  "pointer",
}

// String 返回类型名
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Value 动态类型值（封闭接口，只有本包定义的变体实现它）
//
// 标量（Null/Bool/Int/Float/Function/Pointer）是值类型，拷贝即独立。
// String/Array/Map/Pair 是引用类型，由 Copy 深拷贝、由 Destroy 显式释放。
type Value interface {
	Kind() Kind
	sealed()
}

// ─── 标量 ───

// Null 空值
type Null struct{}

// Bool 布尔值
type Bool bool

// Int 64 位有符号整数
type Int int64

// Float 64 位浮点数
type Float float64

func (Null) Kind() Kind  { return KindNull }
func (Bool) Kind() Kind  { return KindBool }
func (Int) Kind() Kind   { return KindInt }
func (Float) Kind() Kind { return KindFloat }

func (Null) sealed()  {}
func (Bool) sealed()  {}
func (Int) sealed()   {}
func (Float) sealed() {}

// NewNull 创建 Null
func NewNull() Null { return Null{} }

// NewBool 创建 Bool
func NewBool(b bool) Bool { return Bool(b) }

// NewInt 创建 Int
func NewInt(n int64) Int { return Int(n) }

// NewFloat 创建 Float
func NewFloat(f float64) Float { return Float(f) }

// ─── String ───

// String 字符串值，内容为不可变的 ByteString
type String struct {
	bs *str.ByteString
}

// NewString 由 Go 字符串创建 String（拷贝内容）
func NewString(s string) *String {
	return &String{bs: str.New(s)}
}

// NewStringBytes 由字节切片创建 String（拷贝内容）
func NewStringBytes(b []byte) *String {
	return &String{bs: str.FromBytes(b)}
}

func (*String) Kind() Kind { return KindString }
func (*String) sealed()    {}

// Len 字节长度
func (s *String) Len() int { return s.bs.Len() }

// Hash 内容哈希
func (s *String) Hash() uint32 { return s.bs.Hash() }

// String 内容拷贝
func (s *String) String() string { return s.bs.String() }

// Bytes 内部字节（只读）
func (s *String) Bytes() []byte { return s.bs.Bytes() }

// ByteString 内部 ByteString（不可变，可安全共享读取）
func (s *String) ByteString() *str.ByteString { return s.bs }

// ─── Pair ───

// Pair 二元组，两个成员都由 Pair 独占
type Pair struct {
	first  Value
	second Value
}

// NewPair 创建 Pair，两个成员均深拷贝
func NewPair(first, second Value) *Pair {
	mustValue(first, "NewPair")
	mustValue(second, "NewPair")
	return &Pair{first: Copy(first), second: Copy(second)}
}

func (*Pair) Kind() Kind { return KindPair }
func (*Pair) sealed()    {}

// First 返回第一个成员的拷贝
func (p *Pair) First() Value { return Copy(p.first) }

// Second 返回第二个成员的拷贝
func (p *Pair) Second() Value { return Copy(p.second) }

// Range 借用遍历两个成员（i = 0 为 first，1 为 second）
func (p *Pair) Range(fn func(i int, v Value) bool) {
	if p.first == nil || !fn(0, p.first) {
		return
	}
	if p.second != nil {
		fn(1, p.second)
	}
}

// ─── Function ───

// NativeFunc 可被 Function 包装的原生函数
type NativeFunc func(args ...Value) (Value, error)

// Function 原生函数引用
type Function struct {
	fn NativeFunc
}

// NewFunction 包装原生函数，fn 不能为 nil
func NewFunction(fn NativeFunc) Function {
	if fn == nil {
		contract(2, "NewFunction caught a nil func")
	}
	return Function{fn: fn}
}

func (Function) Kind() Kind { return KindFunction }
func (Function) sealed()    {}

// Call 调用函数
func (f Function) Call(args ...Value) (Value, error) {
	return f.fn(args...)
}

// Addr 函数入口地址（用于同一性比较与打印）
func (f Function) Addr() uintptr {
	if f.fn == nil {
		return 0
	}
	return reflect.ValueOf(f.fn).Pointer()
}

// ─── Pointer ───

// Pointer 宿主不透明指针，对象系统从不解引用也不释放它
type Pointer struct {
	p any
}

// NewPointer 包装宿主指针，p 不能为 nil
func NewPointer(p any) Pointer {
	if p == nil {
		contract(2, "NewPointer caught a nil pointer")
	}
	return Pointer{p: p}
}

func (Pointer) Kind() Kind { return KindPointer }
func (Pointer) sealed()    {}

// Get 返回被包装的宿主值
func (p Pointer) Get() any { return p.p }

// Addr 指针地址，非指针类宿主值返回 0
func (p Pointer) Addr() uintptr {
	rv := reflect.ValueOf(p.p)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan, reflect.Func, reflect.Slice:
		return rv.Pointer()
	}
	return 0
}

// same 宿主值同一性：指针类比较地址，其余可比较类型比较值
func (p Pointer) same(o Pointer) bool {
	if a, b := p.Addr(), o.Addr(); a != 0 || b != 0 {
		return a == b && reflect.TypeOf(p.p) == reflect.TypeOf(o.p)
	}
	ta := reflect.TypeOf(p.p)
	if ta != reflect.TypeOf(o.p) || !ta.Comparable() {
		return false
	}
	return p.p == o.p
}

// TypeName 返回值的类型名，nil 返回 "unknown"
func TypeName(v Value) string {
	if v == nil {
		return "unknown"
	}
	return v.Kind().String()
}
