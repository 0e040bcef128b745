// Package marshal 提供 core.Value 的序列化接口和实现。
//
// Codec 把 core.Value 转换为某种文本格式，用于导出和持久化。
// 内置 JSON 与 YAML 实现；其他格式可作为外部扩展。
package marshal

import (
	"strings"

	"github.com/uniyakcom/object/core"
)

// Codec 值编码器接口
type Codec interface {
	// Name 返回格式名（小写，如 "json"）。
	Name() string

	// Marshal 将值序列化为字节，失败时不返回部分结果。
	Marshal(v core.Value) ([]byte, error)
}

// ByName 按格式名查找内置 Codec（不区分大小写），"yml" 视为 "yaml"
func ByName(name string) (Codec, bool) {
	switch strings.ToLower(name) {
	case "json":
		return JSON{}, true
	case "yaml", "yml":
		return YAML{}, true
	}
	return nil, false
}
