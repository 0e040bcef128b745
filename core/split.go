package core

import "github.com/uniyakcom/object/str"

// splitInitialCap Split 结果数组的初始容量
const splitInitialCap = 4

// Split 按单字节分隔符切分，返回 String 数组
//
// 规则:
//   - 空输入返回空数组
//   - 位于开头的分隔符被吞掉，不产生空串
//   - 相邻分隔符之间产生空串，末尾分隔符之后也产生空串
//   - 最后一段总会被追加
//
// 例: Split("a,b,,c", ',') → ["a", "b", "", "c"]
func Split(source string, sep byte) (*Array, error) {
	arr := NewArray(splitInitialCap)
	if len(source) == 0 {
		return arr, nil
	}
	sb := str.NewBuilder()
	for i := 0; i < len(source); i++ {
		c := source[i]
		if c != sep {
			sb.AppendByte(c)
			continue
		}
		if i == 0 {
			continue
		}
		if _, err := arr.link(&String{bs: sb.ByteString()}); err != nil {
			destroy(arr, nil)
			return nil, err
		}
		sb.Reset()
	}
	if _, err := arr.link(&String{bs: sb.ByteString()}); err != nil {
		destroy(arr, nil)
		return nil, err
	}
	return arr, nil
}

// Cat 拼接两个 String，返回新 String
func Cat(a, b *String) *String {
	if a == nil || b == nil {
		contract(2, "Cat caught a nil String")
	}
	sb := str.NewBuilder()
	sb.Append(a.Bytes())
	sb.Append(b.Bytes())
	return &String{bs: sb.ByteString()}
}
