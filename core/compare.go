package core

// SameKind 判断两个值类型是否相同
func SameKind(a, b Value) bool {
	mustValue(a, "SameKind")
	mustValue(b, "SameKind")
	return a.Kind() == b.Kind()
}

// Equal 深度相等
//
// 类型不同即不相等（Int(1) 与 Float(1) 不相等）。
// Map 比较键集合与对应值，不要求插入顺序一致。
// Function 比较入口地址，Pointer 比较宿主值同一性。
func Equal(a, b Value) bool {
	mustValue(a, "Equal")
	mustValue(b, "Equal")
	return equal(a, b)
}

func equal(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case Null:
		return true
	case Bool:
		return x == b.(Bool)
	case Int:
		return x == b.(Int)
	case Float:
		return x == b.(Float)
	case *String:
		return x.bs.Equal(b.(*String).bs)
	case *Pair:
		y := b.(*Pair)
		if x == y {
			return true
		}
		return equalMember(x.first, y.first) && equalMember(x.second, y.second)
	case *Array:
		y := b.(*Array)
		if x == y {
			return true
		}
		if x.size != y.size {
			return false
		}
		for i := 0; i < x.size; i++ {
			if !equal(x.slots[i], y.slots[i]) {
				return false
			}
		}
		return true
	case *Map:
		y := b.(*Map)
		if x == y {
			return true
		}
		if x.size != y.size {
			return false
		}
		for e := x.head; e != nil; e = e.orderNext {
			o := y.lookup(e.key.Bytes(), e.hash)
			if o == nil || !equal(e.value, o.value) {
				return false
			}
		}
		return true
	case Function:
		return x.Addr() == b.(Function).Addr()
	case Pointer:
		return x.same(b.(Pointer))
	}
	return false
}

func equalMember(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return equal(a, b)
}

// Less 有序比较，仅对数值、字符串、布尔有定义
//
// Int 与 Float 之间按数值比较；String 按字节序；false < true。
// 其余组合一律返回 false。
func Less(a, b Value) bool {
	mustValue(a, "Less")
	mustValue(b, "Less")
	switch x := a.(type) {
	case Int:
		switch y := b.(type) {
		case Int:
			return x < y
		case Float:
			return float64(x) < float64(y)
		}
	case Float:
		switch y := b.(type) {
		case Int:
			return float64(x) < float64(y)
		case Float:
			return x < y
		}
	case *String:
		if y, ok := b.(*String); ok {
			return x.bs.Compare(y.bs) < 0
		}
	case Bool:
		if y, ok := b.(Bool); ok {
			return !bool(x) && bool(y)
		}
	}
	return false
}
