package json

import "github.com/uniyakcom/object/core"

// Encode 编码 v；pretty 为 true 时美化输出
//
// 编码失败时返回 nil 与错误，不返回部分结果。
func Encode(v core.Value, pretty bool) ([]byte, error) {
	return EncodeWith(v, Options{Pretty: pretty})
}

// EncodeWith 按 opts 编码 v，返回独立的字节切片
func EncodeWith(v core.Value, opts Options) ([]byte, error) {
	w := AcquireWriter()
	defer ReleaseWriter(w)
	w.SetOptions(opts)
	if err := w.Value(v); err != nil {
		return nil, err
	}
	out := make([]byte, w.Len())
	copy(out, w.Bytes())
	return out, nil
}

// Append 把 v 的编码追加到 dst
//
// 失败时返回原 dst 与错误。
func Append(dst []byte, v core.Value, opts Options) ([]byte, error) {
	w := AcquireWriter()
	defer ReleaseWriter(w)
	w.SetOptions(opts)
	if err := w.Value(v); err != nil {
		return dst, err
	}
	return w.AppendTo(dst), nil
}
