package json

import (
	"sync"

	"github.com/uniyakcom/object/core"
	"github.com/uniyakcom/object/str"
)

// Writer JSON 编码器（追加到 str.Builder）
//
// 设计特点:
//   - 直接向 Builder 追加 JSON 字节
//   - 支持 pool 复用（AcquireWriter/ReleaseWriter）
//   - 递归编码 Array/Map，携带外层容器用于识别直接自引用
//   - 整数使用快速路径避免 strconv 开销
//
// 用法:
//
//	w := json.AcquireWriter()
//	defer json.ReleaseWriter(w)
//	w.SetOptions(json.Options{Pretty: true})
//	if err := w.Value(v); err != nil {
//	    return err
//	}
//	data := w.Bytes()
type Writer struct {
	sb      str.Builder
	opts    Options
	scratch [32]byte // 数字格式化缓冲（避免分配）
}

// ─── Pool ───

var writerPool = sync.Pool{
	New: func() any { return new(Writer) },
}

// AcquireWriter 从池中获取 Writer（默认紧凑输出）
func AcquireWriter() *Writer {
	w := writerPool.Get().(*Writer)
	w.sb.Reset()
	w.opts = Options{}
	return w
}

// ReleaseWriter 归还 Writer 到池中
func ReleaseWriter(w *Writer) {
	// 保留小 buffer，释放大 buffer（防内存泄漏）
	if w.sb.Cap() > 1<<16 {
		w.sb = str.Builder{}
	}
	writerPool.Put(w)
}

// ─── 结果获取 ───

// SetOptions 设置编码选项
func (w *Writer) SetOptions(o Options) { w.opts = o }

// Bytes 返回已生成的 JSON 字节（生命周期绑定到 Writer）
func (w *Writer) Bytes() []byte { return w.sb.Bytes() }

// String 返回已生成的 JSON 字符串
func (w *Writer) String() string { return w.sb.String() }

// Len 返回已写入的字节数
func (w *Writer) Len() int { return w.sb.Len() }

// Reset 重置 Writer 以复用（保留选项）
func (w *Writer) Reset() { w.sb.Reset() }

// AppendTo 将当前内容追加到外部 buffer
func (w *Writer) AppendTo(dst []byte) []byte {
	return append(dst, w.sb.Bytes()...)
}

// ─── 值编码 ───

// Value 追加 v 的 JSON 编码
//
// 出错时已写入的内容不完整，调用方应 Reset 后丢弃。
func (w *Writer) Value(v core.Value) error {
	return w.writeValue(v, nil, 0)
}

func (w *Writer) writeValue(v, parent core.Value, depth int) error {
	if depth > MaxDepth {
		return ErrMaxDepth
	}
	switch x := v.(type) {
	case core.Null:
		w.sb.AppendString("null")
	case core.Bool:
		if x {
			w.sb.AppendString("true")
		} else {
			w.sb.AppendString("false")
		}
	case core.Int:
		w.sb.Append(appendInt(w.scratch[:0], int64(x)))
	case core.Float:
		w.sb.Append(appendFloat(w.scratch[:0], float64(x)))
	case *core.String:
		w.writeString(x.Bytes())
	case *core.Array:
		if p, ok := parent.(*core.Array); ok && p == x {
			return ErrCircular
		}
		return w.writeArray(x, depth)
	case *core.Map:
		if p, ok := parent.(*core.Map); ok && p == x {
			return ErrCircular
		}
		return w.writeMap(x, depth)
	case nil:
		return ErrUnsupportedType
	default:
		return &UnsupportedTypeError{Kind: v.Kind()}
	}
	return nil
}

func (w *Writer) writeArray(a *core.Array, depth int) error {
	w.sb.AppendByte('[')
	if a.Len() == 0 {
		w.sb.AppendByte(']')
		return nil
	}
	var err error
	a.Range(func(i int, e core.Value) bool {
		if i > 0 {
			w.sb.AppendByte(',')
		}
		w.newline(depth + 1)
		err = w.writeValue(e, a, depth+1)
		return err == nil
	})
	if err != nil {
		return err
	}
	w.newline(depth)
	w.sb.AppendByte(']')
	return nil
}

func (w *Writer) writeMap(m *core.Map, depth int) error {
	w.sb.AppendByte('{')
	if m.Len() == 0 {
		w.sb.AppendByte('}')
		return nil
	}
	var err error
	first := true
	m.RangeBytes(func(key []byte, e core.Value) bool {
		if !first {
			w.sb.AppendByte(',')
		}
		first = false
		w.newline(depth + 1)
		w.writeString(key)
		w.sb.AppendByte(':')
		if w.opts.Pretty {
			w.sb.AppendByte(' ')
		}
		err = w.writeValue(e, m, depth+1)
		return err == nil
	})
	if err != nil {
		return err
	}
	w.newline(depth)
	w.sb.AppendByte('}')
	return nil
}

// newline 美化模式下换行并缩进到 depth 层
func (w *Writer) newline(depth int) {
	if !w.opts.Pretty {
		return
	}
	w.sb.AppendByte('\n')
	indent := w.opts.indent()
	for i := 0; i < depth; i++ {
		w.sb.AppendString(indent)
	}
}

// ─── 字符串 ───

// writeString 写入带引号的字符串，Escape 关闭时原样输出字节
func (w *Writer) writeString(b []byte) {
	w.sb.AppendByte('"')
	if !w.opts.Escape {
		w.sb.Append(b)
		w.sb.AppendByte('"')
		return
	}

	// 快速路径: 无需转义
	needsEscape := false
	for _, c := range b {
		if c < 0x20 || c == '"' || c == '\\' {
			needsEscape = true
			break
		}
	}
	if !needsEscape {
		w.sb.Append(b)
		w.sb.AppendByte('"')
		return
	}

	// 慢速路径: 逐字符转义
	for _, c := range b {
		switch {
		case c == '"':
			w.sb.AppendString(`\"`)
		case c == '\\':
			w.sb.AppendString(`\\`)
		case c == '\n':
			w.sb.AppendString(`\n`)
		case c == '\r':
			w.sb.AppendString(`\r`)
		case c == '\t':
			w.sb.AppendString(`\t`)
		case c < 0x20:
			// 控制字符: \u00XX
			w.sb.AppendString(`\u00`)
			w.sb.AppendByte(hexDigit[c>>4])
			w.sb.AppendByte(hexDigit[c&0xF])
		default:
			w.sb.AppendByte(c)
		}
	}
	w.sb.AppendByte('"')
}

var hexDigit = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}
