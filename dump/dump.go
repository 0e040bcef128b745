// Package dump 以人类可读的调试格式打印 core.Value
//
// 输出流由调用方显式传入（nil 时为 os.Stderr），没有进程级的全局调试流。
// 单次调用的全部输出先写入池化的 bytebufferpool.ByteBuffer，再一次性写出。
//
// 格式:
//
//	map(2) {
//		name: string(4) "Ryan"
//		tags: array(2) {
//			[0] => int(1)
//			[1] => float(2.50)
//		}
//	}
//
// 容器直接包含自身时，数组在重入点输出 [Circular]，哈希表输出 key: **RECURSION**，
// 随后闭合该容器，不再继续展开。
package dump

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/valyala/bytebufferpool"

	"github.com/uniyakcom/object/core"
)

// Dumper 调试打印器
type Dumper struct {
	w io.Writer
}

// New 创建写到 w 的 Dumper，w 为 nil 时写到 os.Stderr
func New(w io.Writer) *Dumper {
	if w == nil {
		w = os.Stderr
	}
	return &Dumper{w: w}
}

// Dump 打印 v 的结构与内容
func (d *Dumper) Dump(v core.Value) error {
	return d.emit(func(p *printer) { p.value(v, nil, 0) })
}

// DumpEx 打印 v 的结构，容器与字符串以内存地址代替内容
func (d *Dumper) DumpEx(v core.Value) error {
	return d.emit(func(p *printer) {
		p.ex = true
		p.value(v, nil, 0)
	})
}

// Echo 以空格分隔打印多个值的行内形式
//
// 标量输出其文本（浮点保留两位小数），Array 为 [Object Array]，
// Map 为 [Object Map]，其余为 [Object Object]。每个值后跟一个空格。
func (d *Dumper) Echo(vs ...core.Value) error {
	return d.emit(func(p *printer) {
		for _, v := range vs {
			p.inline(v)
			p.buf.WriteByte(' ')
		}
	})
}

func (d *Dumper) emit(fn func(p *printer)) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	fn(&printer{buf: buf})
	_, err := d.w.Write(buf.B)
	return err
}

// Sprint 返回 Dump 的输出文本
func Sprint(v core.Value) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	p := printer{buf: buf}
	p.value(v, nil, 0)
	return buf.String()
}

// ─── printer ───

type printer struct {
	buf *bytebufferpool.ByteBuffer
	ex  bool
}

func (p *printer) indent(n int) {
	for i := 0; i < n; i++ {
		p.buf.WriteByte('\t')
	}
}

func (p *printer) float(f float64) {
	p.buf.B = strconv.AppendFloat(p.buf.B, f, 'f', 2, 64)
}

// inline Echo 使用的行内形式
func (p *printer) inline(v core.Value) {
	switch x := v.(type) {
	case core.Int:
		p.buf.B = strconv.AppendInt(p.buf.B, int64(x), 10)
	case core.Float:
		p.float(float64(x))
	case *core.String:
		p.buf.Write(x.Bytes())
	case core.Bool:
		p.buf.B = strconv.AppendBool(p.buf.B, bool(x))
	case core.Null:
		p.buf.WriteString("null")
	case *core.Array:
		p.buf.WriteString("[Object Array]")
	case *core.Map:
		p.buf.WriteString("[Object Map]")
	default:
		p.buf.WriteString("[Object Object]")
	}
}

// value 打印 v；last 为外层容器，indent 为 v 所在层级
func (p *printer) value(v, last core.Value, indent int) {
	switch x := v.(type) {
	case core.Null:
		p.buf.WriteString("null\n")
	case core.Bool:
		p.buf.WriteString("bool(")
		p.buf.B = strconv.AppendBool(p.buf.B, bool(x))
		p.buf.WriteString(")\n")
	case core.Int:
		p.buf.WriteString("int(")
		p.buf.B = strconv.AppendInt(p.buf.B, int64(x), 10)
		p.buf.WriteString(")\n")
	case core.Float:
		p.buf.WriteString("float(")
		p.float(float64(x))
		p.buf.WriteString(")\n")
	case *core.String:
		p.buf.WriteString("string(")
		p.buf.B = strconv.AppendInt(p.buf.B, int64(x.Len()), 10)
		p.buf.WriteString(") ")
		if p.ex {
			fmt.Fprintf(p.buf, "%p\n", x.Bytes())
			return
		}
		p.buf.WriteByte('"')
		p.buf.Write(x.Bytes())
		p.buf.WriteString("\"\n")
	case core.Function:
		fmt.Fprintf(p.buf, "function(%#x)\n", x.Addr())
	case core.Pointer:
		fmt.Fprintf(p.buf, "pointer(%#x)\n", x.Addr())
	case *core.Array:
		p.header("array", x, x.Len())
		if p.reentry(x, last, indent) {
			return
		}
		x.Range(func(i int, e core.Value) bool {
			p.indent(indent + 1)
			p.buf.WriteByte('[')
			p.buf.B = strconv.AppendInt(p.buf.B, int64(i), 10)
			p.buf.WriteString("] => ")
			p.value(e, x, indent+1)
			return true
		})
		p.close(indent)
	case *core.Pair:
		p.header("pair", x, 2)
		if p.reentry(x, last, indent) {
			return
		}
		x.Range(func(i int, e core.Value) bool {
			p.indent(indent + 1)
			if i == 0 {
				p.buf.WriteString("[first] => ")
			} else {
				p.buf.WriteString("[second] => ")
			}
			p.value(e, x, indent+1)
			return true
		})
		p.close(indent)
	case *core.Map:
		p.header("map", x, x.Len())
		if l, ok := last.(*core.Map); ok && l == x {
			// 哈希表在第一个键之后标记重入
			x.RangeBytes(func(key []byte, _ core.Value) bool {
				p.indent(indent + 1)
				p.buf.Write(key)
				p.buf.WriteString(": **RECURSION**\n")
				return false
			})
			p.close(indent)
			return
		}
		x.RangeBytes(func(key []byte, e core.Value) bool {
			p.indent(indent + 1)
			p.buf.Write(key)
			p.buf.WriteString(": ")
			p.value(e, x, indent+1)
			return true
		})
		p.close(indent)
	default:
		p.buf.WriteString("[Object <none>]\n")
	}
}

// header 输出 "array(N) {"；DumpEx 模式下带上容器地址
func (p *printer) header(name string, id any, n int) {
	p.buf.WriteString(name)
	if p.ex {
		fmt.Fprintf(p.buf, " => %p", id)
	}
	p.buf.WriteByte('(')
	p.buf.B = strconv.AppendInt(p.buf.B, int64(n), 10)
	p.buf.WriteString(") {\n")
}

// reentry 数组/Pair 直接包含自身时输出 [Circular] 并闭合
func (p *printer) reentry(v, last core.Value, indent int) bool {
	if last == nil || !sameContainer(v, last) {
		return false
	}
	p.indent(indent + 1)
	p.buf.WriteString("[Circular]\n")
	p.close(indent)
	return true
}

func (p *printer) close(indent int) {
	p.indent(indent)
	p.buf.WriteString("}\n")
}

func sameContainer(v, last core.Value) bool {
	switch x := v.(type) {
	case *core.Array:
		l, ok := last.(*core.Array)
		return ok && l == x
	case *core.Pair:
		l, ok := last.(*core.Pair)
		return ok && l == x
	}
	return false
}
