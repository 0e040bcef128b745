package json

import "github.com/uniyakcom/object/core"

type jsonError string

func (e jsonError) Error() string { return string(e) }

const (
	// ErrUnsupportedType 值没有 JSON 表示（Pair/Function/Pointer）
	ErrUnsupportedType jsonError = "json: unsupported value type"
	// ErrMaxDepth 嵌套超过 MaxDepth
	ErrMaxDepth jsonError = "json: exceeded max nesting depth"
	// ErrCircular 容器直接包含自身
	ErrCircular jsonError = "json: container contains itself"
)

// UnsupportedTypeError 遇到无法编码的值类型
type UnsupportedTypeError struct {
	Kind core.Kind
}

func (e *UnsupportedTypeError) Error() string {
	return "json: unsupported type: " + e.Kind.String()
}

// Unwrap 支持 errors.Is(err, ErrUnsupportedType)
func (e *UnsupportedTypeError) Unwrap() error { return ErrUnsupportedType }
