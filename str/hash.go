package str

import "github.com/spaolacci/murmur3"

// Seed 哈希种子（与 MurmurHash3_x86_32(..., 0, ...) 保持一致）
const Seed uint32 = 0

// Hash 计算字节内容的 32 位哈希
func Hash(b []byte) uint32 {
	return murmur3.Sum32WithSeed(b, Seed)
}

// HashString 计算字符串内容的 32 位哈希（零拷贝）
func HashString(s string) uint32 {
	return murmur3.Sum32WithSeed(s2b(s), Seed)
}
