package str

// InitialBuilderCap Builder 初始容量
const InitialBuilderCap = 16

// Builder 可变字节缓冲（几何增长）
//
// 设计特点:
//   - 初始容量 16 字节，追加放不下（含结尾 NUL）时容量翻倍
//   - 任意追加之后 buf[n] 恒为 0，底层缓冲始终 NUL 结尾
//   - Reset 只把长度清零，保留已分配容量以便复用
//
// 零值可用，第一次追加时分配初始容量。
type Builder struct {
	buf []byte // len(buf) 即容量
	n   int    // 已写入字节数
}

// NewBuilder 创建初始容量为 InitialBuilderCap 的 Builder
func NewBuilder() *Builder {
	return &Builder{buf: make([]byte, InitialBuilderCap)}
}

// grow 确保还能追加 k 个字节（外加结尾 NUL）
func (b *Builder) grow(k int) {
	need := b.n + k + 1
	c := len(b.buf)
	if c == 0 {
		c = InitialBuilderCap
	}
	if need <= len(b.buf) {
		return
	}
	for c < need {
		c *= 2
	}
	buf := make([]byte, c)
	copy(buf, b.buf[:b.n])
	b.buf = buf
}

// AppendByte 追加单个字节
func (b *Builder) AppendByte(c byte) {
	b.grow(1)
	b.buf[b.n] = c
	b.n++
	b.buf[b.n] = 0
}

// AppendString 追加字符串
func (b *Builder) AppendString(s string) {
	b.grow(len(s))
	b.n += copy(b.buf[b.n:], s)
	b.buf[b.n] = 0
}

// Append 追加字节切片
func (b *Builder) Append(p []byte) {
	b.grow(len(p))
	b.n += copy(b.buf[b.n:], p)
	b.buf[b.n] = 0
}

// Write 实现 io.Writer（永不失败）
func (b *Builder) Write(p []byte) (int, error) {
	b.Append(p)
	return len(p), nil
}

// Len 返回已写入字节数
func (b *Builder) Len() int { return b.n }

// Cap 返回当前容量
func (b *Builder) Cap() int { return len(b.buf) }

// Reset 长度清零，保留容量
func (b *Builder) Reset() {
	b.n = 0
	if len(b.buf) > 0 {
		b.buf[0] = 0
	}
}

// Bytes 返回已写入内容（生命周期绑定到 Builder，下次追加或 Reset 后失效）
func (b *Builder) Bytes() []byte {
	return b.buf[:b.n:b.n]
}

// String 返回已写入内容的字符串拷贝
func (b *Builder) String() string {
	return string(b.buf[:b.n])
}

// ByteString 定稿：把当前内容拷贝成不可变的 ByteString（含哈希）
func (b *Builder) ByteString() *ByteString {
	return FromBytes(b.buf[:b.n])
}

// terminated 报告底层缓冲是否 NUL 结尾（测试用）
func (b *Builder) terminated() bool {
	return len(b.buf) > b.n && b.buf[b.n] == 0
}
