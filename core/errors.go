package core

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// coreError 可恢复错误（字符串常量，可直接 errors.Is 比较）
type coreError string

func (e coreError) Error() string { return string(e) }

const (
	// ErrNotFound 查找未命中（调用方通常用 ok 返回值处理，此常量供包装场景使用）
	ErrNotFound coreError = "object: not found"
	// ErrTypeMismatch 访问器与值类型不匹配（如对 Int 取长度）
	ErrTypeMismatch coreError = "object: type mismatch"
	// ErrCapacityOverflow 容量翻倍超过上限
	ErrCapacityOverflow coreError = "object: capacity overflow"
	// ErrInvalidCapacity 容量必须为正数
	ErrInvalidCapacity coreError = "object: capacity must be positive"
	// ErrInvalidNumber 数字文本无法解析
	ErrInvalidNumber coreError = "object: invalid number"
)

// MaxCapacity 容器默认容量上限（Array/Map 翻倍不得超过此值）
const MaxCapacity = 1<<31 - 1

// ContractError 调用契约被违反（nil 值、非正容量等），属于调用方 bug
//
// 以 panic 抛出，携带出错调用点的 文件/函数/行号。
type ContractError struct {
	File string
	Func string
	Line int
	Msg  string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s:%s:%d: %s", e.File, e.Func, e.Line, e.Msg)
}

// contract 以 ContractError panic
//
// skip 为相对 contract 调用者的栈帧数: 1 = 调用 contract 的函数，2 = 它的调用方。
func contract(skip int, msg string) {
	e := &ContractError{File: "?", Func: "?", Msg: msg}
	if pc, file, line, ok := runtime.Caller(skip); ok {
		e.File = filepath.Base(file)
		e.Line = line
		if fn := runtime.FuncForPC(pc); fn != nil {
			name := fn.Name()
			if i := strings.LastIndexByte(name, '/'); i >= 0 {
				name = name[i+1:]
			}
			e.Func = name
		}
	}
	panic(e)
}

// mustValue 拒绝 nil Value（报告 API 调用方位置）
func mustValue(v Value, what string) {
	if v == nil {
		contract(3, what+" caught a nil Value")
	}
}
