package marshal

import (
	"github.com/uniyakcom/object/core"
	"github.com/uniyakcom/object/json"
)

// JSON JSON 编码器（委托给 json 包）
type JSON struct {
	Pretty bool
	Escape bool
}

// Name 返回 "json"
func (JSON) Name() string { return "json" }

// Marshal 将值序列化为 JSON。
func (j JSON) Marshal(v core.Value) ([]byte, error) {
	return json.EncodeWith(v, json.Options{Pretty: j.Pretty, Escape: j.Escape})
}
