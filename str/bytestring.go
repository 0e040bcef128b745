package str

import "bytes"

// ByteString 不可变字节串
//
// 构造时拷贝输入并计算哈希，此后内容与哈希都不再变化。
// 相等判定依次比较 hash、长度、字节内容：哈希相同不代表内容相同。
type ByteString struct {
	data []byte
	hash uint32
}

// New 由字符串构造 ByteString（拷贝内容）
func New(s string) *ByteString {
	data := make([]byte, len(s))
	copy(data, s)
	return &ByteString{data: data, hash: Hash(data)}
}

// FromBytes 由字节切片构造 ByteString（拷贝内容，调用方可继续修改 b）
func FromBytes(b []byte) *ByteString {
	data := make([]byte, len(b))
	copy(data, b)
	return &ByteString{data: data, hash: Hash(data)}
}

// Len 返回字节长度
func (s *ByteString) Len() int {
	if s == nil {
		return 0
	}
	return len(s.data)
}

// Hash 返回构造时计算的哈希
func (s *ByteString) Hash() uint32 {
	if s == nil {
		return 0
	}
	return s.hash
}

// Bytes 返回内部字节（只读，调用方不得修改）
func (s *ByteString) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.data
}

// String 返回字符串形式
func (s *ByteString) String() string {
	if s == nil {
		return ""
	}
	return string(s.data)
}

// Clone 深拷贝：新缓冲，相同的字节、长度与哈希
func (s *ByteString) Clone() *ByteString {
	if s == nil {
		return nil
	}
	data := make([]byte, len(s.data))
	copy(data, s.data)
	return &ByteString{data: data, hash: s.hash}
}

// Equal 判断两个 ByteString 是否相等（hash + 长度 + 内容）
func (s *ByteString) Equal(o *ByteString) bool {
	if s == nil || o == nil {
		return s == o
	}
	return s.hash == o.hash && len(s.data) == len(o.data) && bytes.Equal(s.data, o.data)
}

// Match 判断是否与给定的 (hash, 内容) 匹配，供哈希表查找使用（避免重复计算哈希）
func (s *ByteString) Match(hash uint32, b []byte) bool {
	return s != nil && s.hash == hash && len(s.data) == len(b) && bytes.Equal(s.data, b)
}

// EqualString 判断内容是否等于 v
func (s *ByteString) EqualString(v string) bool {
	return s.Match(HashString(v), s2b(v))
}

// Compare 按字节序比较，返回 -1 / 0 / +1
func (s *ByteString) Compare(o *ByteString) int {
	return bytes.Compare(s.Bytes(), o.Bytes())
}
