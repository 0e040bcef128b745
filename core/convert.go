package core

import (
	"fmt"
	"strconv"

	"github.com/valyala/fastjson/fastfloat"
)

// ToString 标量的文本形式
//
// Null → "null"，Bool → "true"/"false"，Int/Float 为最短十进制表示，
// String 返回内容。容器、Function、Pointer 返回 ErrTypeMismatch。
func ToString(v Value) (string, error) {
	mustValue(v, "ToString")
	switch x := v.(type) {
	case Null:
		return "null", nil
	case Bool:
		return strconv.FormatBool(bool(x)), nil
	case Int:
		return strconv.FormatInt(int64(x), 10), nil
	case Float:
		return strconv.FormatFloat(float64(x), 'g', -1, 64), nil
	case *String:
		return x.String(), nil
	}
	return "", fmt.Errorf("to string of %s: %w", v.Kind(), ErrTypeMismatch)
}

// ParseNumber 把数字文本解析为 Int 或 Float
//
// 能按 int64 完整解析的返回 Int，否则按浮点解析返回 Float
// （支持指数、inf、nan）。
func ParseNumber(s string) (Value, error) {
	if n, err := fastfloat.ParseInt64(s); err == nil {
		return Int(n), nil
	}
	f, err := fastfloat.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", s, ErrInvalidNumber)
	}
	return Float(f), nil
}

// Len String 的字节长度、Array/Map 的元素个数
func Len(v Value) (int, error) {
	mustValue(v, "Len")
	switch x := v.(type) {
	case *String:
		return x.Len(), nil
	case *Array:
		return x.size, nil
	case *Map:
		return x.size, nil
	}
	return 0, fmt.Errorf("len of %s: %w", v.Kind(), ErrTypeMismatch)
}
