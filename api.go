// Package object 统一API入口
package object

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/uniyakcom/object/core"
	"github.com/uniyakcom/object/dump"
	"github.com/uniyakcom/object/json"
	"github.com/uniyakcom/object/marshal"
	"github.com/uniyakcom/object/mm"
)

// Value 导出Value接口
type Value = core.Value

// Kind 导出Kind类型
type Kind = core.Kind

// Array 导出Array类型
type Array = core.Array

// Map 导出Map类型
type Map = core.Map

// String 导出String类型
type String = core.String

// Pair 导出Pair类型
type Pair = core.Pair

// NativeFunc 导出NativeFunc类型
type NativeFunc = core.NativeFunc

// ═══════════════════════════════════════════════════════════════════
// 构造与拷贝
// ═══════════════════════════════════════════════════════════════════

// NewNull 创建 Null
func NewNull() Value { return core.NewNull() }

// NewBool 创建 Bool
func NewBool(b bool) Value { return core.NewBool(b) }

// NewInt 创建 Int
func NewInt(n int64) Value { return core.NewInt(n) }

// NewFloat 创建 Float
func NewFloat(f float64) Value { return core.NewFloat(f) }

// NewString 创建 String
func NewString(s string) *String { return core.NewString(s) }

// NewArray 创建数组
func NewArray(capacity int) *Array { return core.NewArray(capacity) }

// NewMap 创建哈希表
func NewMap(capacity int) *Map { return core.NewMap(capacity) }

// NewPair 创建 Pair
func NewPair(first, second Value) *Pair { return core.NewPair(first, second) }

// NewFunction 包装原生函数
func NewFunction(fn NativeFunc) Value { return core.NewFunction(fn) }

// NewPointer 包装宿主指针
func NewPointer(p any) Value { return core.NewPointer(p) }

// Copy 深拷贝
func Copy(v Value) Value { return core.Copy(v) }

// Destroy 递归释放
func Destroy(v Value) { core.Destroy(v) }

// Split 按单字节分隔符切分字符串
func Split(source string, sep byte) (*Array, error) { return core.Split(source, sep) }

// ═══════════════════════════════════════════════════════════════════
// Runtime：显式的调试流与诊断日志
// ═══════════════════════════════════════════════════════════════════

// Config 运行时配置
type Config struct {
	// Debug 调试输出流（Dump/DumpEx/Echo 与诊断日志）。为 nil 时使用 os.Stderr。
	Debug io.Writer
	// Logger 自定义日志。为 nil 时使用写到 Debug 的 slog 文本日志。
	Logger *slog.Logger
	// Pretty JSON 美化输出
	Pretty bool
	// Escape JSON 字符串转义
	Escape bool
	// Track 是否跟踪 Runtime 创建的值，Close 时统一释放
	Track bool
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Debug:  os.Stderr,
		Pretty: false,
		Escape: false,
		Track:  false,
	}
}

// Runtime 持有调试流、日志与可选的值跟踪器
type Runtime struct {
	cfg     Config
	logger  *slog.Logger
	dumper  *dump.Dumper
	tracker *mm.Tracker
}

// New 创建 Runtime
//
// 用法:
//
//	rt := object.New(object.Config{Debug: os.Stdout, Pretty: true})
//	defer rt.Close()
//	rt.Dump(v)
func New(cfg ...Config) *Runtime {
	c := *DefaultConfig()
	if len(cfg) > 0 {
		c = cfg[0]
		if c.Debug == nil {
			c.Debug = os.Stderr
		}
	}
	logger := c.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(c.Debug, nil))
	}
	rt := &Runtime{
		cfg:    c,
		logger: logger,
		dumper: dump.New(c.Debug),
	}
	if c.Track {
		rt.tracker = mm.New(nil)
	}
	return rt
}

// Logger 返回诊断日志
func (rt *Runtime) Logger() *slog.Logger { return rt.logger }

// Dump 打印 v 到调试流
func (rt *Runtime) Dump(v Value) error { return rt.dumper.Dump(v) }

// DumpEx 打印 v 的结构与地址到调试流
func (rt *Runtime) DumpEx(v Value) error { return rt.dumper.DumpEx(v) }

// Echo 行内打印多个值到调试流
func (rt *Runtime) Echo(vs ...Value) error { return rt.dumper.Echo(vs...) }

// Track 跟踪 v（Config.Track 为 false 时原样返回）
func (rt *Runtime) Track(v Value) Value {
	if rt.tracker != nil {
		rt.tracker.Track(v)
	}
	return v
}

// Array 创建数组并跟踪
func (rt *Runtime) Array(capacity int) *Array {
	a := core.NewArray(capacity)
	rt.Track(a)
	return a
}

// Map 创建哈希表并跟踪
func (rt *Runtime) Map(capacity int) *Map {
	m := core.NewMap(capacity)
	rt.Track(m)
	return m
}

// Push 追加 v 的深拷贝，失败时记录诊断
func (rt *Runtime) Push(a *Array, v Value) (int, error) {
	idx, err := a.Push(v)
	if err != nil {
		rt.logger.Warn("array push failed",
			"kind", core.TypeName(v), "size", a.Len(), "cap", a.Cap(), "limit", a.Limit(), "err", err)
	}
	return idx, err
}

// Insert 写入 key，失败时记录诊断
func (rt *Runtime) Insert(m *Map, key string, v Value) error {
	err := m.Insert(key, v)
	if err != nil {
		rt.logger.Warn("map insert failed",
			"key", key, "kind", core.TypeName(v), "size", m.Len(), "cap", m.Cap(), "limit", m.Limit(), "err", err)
	}
	return err
}

// JSON 按 Config 的 Pretty/Escape 编码，失败时记录诊断
func (rt *Runtime) JSON(v Value) ([]byte, error) {
	data, err := json.EncodeWith(v, json.Options{Pretty: rt.cfg.Pretty, Escape: rt.cfg.Escape})
	if err != nil {
		var ute *json.UnsupportedTypeError
		if errors.As(err, &ute) {
			rt.logger.Warn("json encode failed", "kind", ute.Kind.String(), "err", err)
		} else {
			rt.logger.Warn("json encode failed", "err", err)
		}
	}
	return data, err
}

// Marshal 按格式名编码（"json"、"yaml"）
func (rt *Runtime) Marshal(format string, v Value) ([]byte, error) {
	var c marshal.Codec
	switch strings.ToLower(format) {
	case "json":
		c = marshal.JSON{Pretty: rt.cfg.Pretty, Escape: rt.cfg.Escape}
	default:
		var ok bool
		if c, ok = marshal.ByName(format); !ok {
			err := fmt.Errorf("object: unknown format %q", format)
			rt.logger.Warn("marshal failed", "format", format, "err", err)
			return nil, err
		}
	}
	data, err := c.Marshal(v)
	if err != nil {
		rt.logger.Warn("marshal failed", "format", c.Name(), "err", err)
	}
	return data, err
}

// Close 释放跟踪器持有的全部值，返回释放个数
func (rt *Runtime) Close() int {
	if rt.tracker == nil {
		return 0
	}
	return rt.tracker.Free()
}

// ═══════════════════════════════════════════════════════════════════
// 包级便捷 API（写到 os.Stderr，不跟踪）
// ═══════════════════════════════════════════════════════════════════

var defaultRuntime = New()

// Default 返回包级默认 Runtime
func Default() *Runtime { return defaultRuntime }

// Dump 包级打印
func Dump(v Value) error { return defaultRuntime.Dump(v) }

// JSON 包级紧凑编码
func JSON(v Value) ([]byte, error) { return defaultRuntime.JSON(v) }
