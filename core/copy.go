package core

// Copy 深拷贝 v，结果与 v 不共享任何可变内存
//
// 标量按值返回；String 复制字节；Array/Map 按原容量重建并逐个深拷贝元素，
// Map 保持插入顺序。容器直接包含自身时，重入位置拷贝为 Null。
func Copy(v Value) Value {
	mustValue(v, "Copy")
	return copyValue(v, nil)
}

// copyValue last 为正在拷贝的外层容器，用于识别直接自引用
func copyValue(v, last Value) Value {
	switch x := v.(type) {
	case *String:
		return &String{bs: x.bs.Clone()}
	case *Pair:
		if sameContainer(x, last) {
			return Null{}
		}
		return &Pair{first: copyMember(x.first, x), second: copyMember(x.second, x)}
	case *Array:
		if sameContainer(x, last) {
			return Null{}
		}
		c := &Array{slots: make([]Value, len(x.slots)), limit: x.limit}
		for i := 0; i < x.size; i++ {
			// 容量与源相同，不会触发增长
			_, _ = c.link(copyValue(x.slots[i], x))
		}
		return c
	case *Map:
		if sameContainer(x, last) {
			return Null{}
		}
		c := &Map{buckets: make([]*Bucket, len(x.buckets)), limit: x.limit}
		for b := x.head; b != nil; b = b.orderNext {
			_ = c.insert(b.key.Bytes(), copyValue(b.value, x), true)
		}
		return c
	default:
		// Null/Bool/Int/Float/Function/Pointer 是值类型
		return v
	}
}

func copyMember(v, last Value) Value {
	if v == nil {
		return nil
	}
	return copyValue(v, last)
}

// Destroy 递归释放 v 及其拥有的全部内存
//
// 释放后的容器长度为 0，不应再使用。标量为空操作。
// 容器直接包含自身时，在重入点停止，不会无限递归。
func Destroy(v Value) {
	if v == nil {
		return
	}
	destroy(v, nil)
}

// destroy last 为正在释放的外层容器
func destroy(v, last Value) {
	switch x := v.(type) {
	case *String:
		x.bs = nil
	case *Pair:
		if sameContainer(x, last) {
			return
		}
		if x.first != nil {
			destroy(x.first, x)
		}
		if x.second != nil {
			destroy(x.second, x)
		}
		x.first, x.second = nil, nil
	case *Array:
		if sameContainer(x, last) {
			return
		}
		for i := 0; i < x.size; i++ {
			destroy(x.slots[i], x)
		}
		x.slots = nil
		x.size = 0
		x.next = 0
	case *Map:
		if sameContainer(x, last) {
			return
		}
		for _, b := range x.buckets {
			for b != nil {
				next := b.chainNext
				destroy(b.value, x)
				*b = Bucket{}
				b = next
			}
		}
		x.buckets = nil
		x.head, x.tail = nil, nil
		x.size = 0
	}
}

// sameContainer 判断 v 与 last 是否为同一个容器
//
// 只比较容器指针，避免对 Function/Pointer 做接口相等比较。
func sameContainer(v, last Value) bool {
	if last == nil {
		return false
	}
	switch x := v.(type) {
	case *Array:
		l, ok := last.(*Array)
		return ok && l == x
	case *Map:
		l, ok := last.(*Map)
		return ok && l == x
	case *Pair:
		l, ok := last.(*Pair)
		return ok && l == x
	case *String:
		l, ok := last.(*String)
		return ok && l == x
	}
	return false
}
