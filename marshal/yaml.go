package marshal

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/uniyakcom/object/core"
	"github.com/uniyakcom/object/json"
)

// DefaultYAMLIndent YAML 默认缩进空格数
const DefaultYAMLIndent = 2

// YAML YAML 编码器
//
// 先把值转换为 yaml.Node 树再编码，Map 保持插入顺序。
// 与 JSON 相同，Pair/Function/Pointer 没有表示，返回 json.ErrUnsupportedType。
type YAML struct {
	// Indent 缩进空格数，<= 0 时使用 DefaultYAMLIndent
	Indent int
}

// Name 返回 "yaml"
func (YAML) Name() string { return "yaml" }

// Marshal 将值序列化为 YAML。
func (y YAML) Marshal(v core.Value) ([]byte, error) {
	node, err := toNode(v, nil, 0)
	if err != nil {
		return nil, err
	}
	indent := y.Indent
	if indent <= 0 {
		indent = DefaultYAMLIndent
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(node); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// toNode 转换为 yaml.Node；parent 为外层容器，用于识别直接自引用
func toNode(v, parent core.Value, depth int) (*yaml.Node, error) {
	if depth > json.MaxDepth {
		return nil, json.ErrMaxDepth
	}
	switch x := v.(type) {
	case core.Null:
		return scalar("!!null", "null"), nil
	case core.Bool:
		return scalar("!!bool", strconv.FormatBool(bool(x))), nil
	case core.Int:
		return scalar("!!int", strconv.FormatInt(int64(x), 10)), nil
	case core.Float:
		return scalar("!!float", formatFloat(float64(x))), nil
	case *core.String:
		return scalar("!!str", x.String()), nil
	case *core.Array:
		if p, ok := parent.(*core.Array); ok && p == x {
			return nil, json.ErrCircular
		}
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		var err error
		x.Range(func(_ int, e core.Value) bool {
			var c *yaml.Node
			if c, err = toNode(e, x, depth+1); err != nil {
				return false
			}
			n.Content = append(n.Content, c)
			return true
		})
		if err != nil {
			return nil, err
		}
		return n, nil
	case *core.Map:
		if p, ok := parent.(*core.Map); ok && p == x {
			return nil, json.ErrCircular
		}
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		var err error
		x.Range(func(key string, e core.Value) bool {
			var c *yaml.Node
			if c, err = toNode(e, x, depth+1); err != nil {
				return false
			}
			n.Content = append(n.Content, scalar("!!str", key), c)
			return true
		})
		if err != nil {
			return nil, err
		}
		return n, nil
	case nil:
		return nil, json.ErrUnsupportedType
	default:
		return nil, &json.UnsupportedTypeError{Kind: v.Kind()}
	}
}

// formatFloat YAML 浮点文本，整数值补 ".0" 以免被识别为整数
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
