// Package json 把 core.Value 编码为 JSON 文本
//
// 设计原则:
//   - 追加式编码: Writer 直接向 str.Builder 追加字节，无中间 io.Writer 层
//   - 池化复用: Writer 通过 sync.Pool 复用，并发安全
//   - 顺序稳定: Map 按插入顺序输出，Array 按下标顺序输出
//   - 失败即中止: 遇到没有 JSON 表示的值（Pair/Function/Pointer）整个编码失败，不返回部分结果
//   - 字符串默认按原样输出字节，Options.Escape 打开 JSON 转义
//
// 用法:
//
//	arr := core.NewArray(2)
//	arr.Push(core.NewInt(1))
//	data, err := json.Encode(arr, false) // [1]
//
//	m := core.NewMap(2)
//	m.Insert("x", core.NewInt(1))
//	m.Insert("y", core.NewInt(2))
//	data, err = json.Encode(m, true)
//	// {
//	//   "x": 1,
//	//   "y": 2
//	// }
package json

// MaxDepth 编码最大嵌套深度（防栈溢出）
const MaxDepth = 1000

// DefaultIndent 美化输出每层缩进
const DefaultIndent = "  "

// Options 编码选项
type Options struct {
	// Pretty 美化输出：每个结构分隔符后换行，按深度缩进
	Pretty bool
	// Escape 对字符串做 JSON 转义（引号、反斜杠、控制字符）
	Escape bool
	// Indent 美化输出每层缩进，为空时使用 DefaultIndent
	Indent string
}

func (o Options) indent() string {
	if o.Indent == "" {
		return DefaultIndent
	}
	return o.Indent
}
