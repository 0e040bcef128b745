// Package str 提供运行时的字节串基础类型
//
// 组成:
//   - ByteString: 不可变的带长度字节缓冲，构造时一次性计算 32 位内容哈希，
//     用作 Map 的键和 String 值的载荷
//   - Builder: 几何增长的可变字节缓冲（StringBuilder），用于拼接 Split 结果和 JSON 文本
//   - Hash: MurmurHash3 x86_32（seed=0），ByteString 与 Map 共用同一哈希函数
package str

import "unsafe"

// s2b 零拷贝 string → []byte（结果只读）
func s2b(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
