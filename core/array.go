package core

import "fmt"

// Array 动态数组，持有元素的独立拷贝
//
// 设计特点:
//   - 容量满时翻倍增长，已有元素位置不变
//   - Push 深拷贝入参；增长失败时丢弃拷贝，数组保持原状
//   - Get 返回元素的深拷贝，调用方拿到的值与数组互不影响
//   - 容量翻倍不得超过 limit（默认 MaxCapacity）
type Array struct {
	slots []Value // len(slots) 即容量
	size  int
	next  int // 下一个写入位置，恒等于 size
	limit int
}

// NewArray 创建初始容量为 capacity 的数组，capacity 必须为正数
func NewArray(capacity int) *Array {
	if capacity <= 0 {
		contract(2, fmt.Sprintf("NewArray(%d): %s", capacity, ErrInvalidCapacity))
	}
	return &Array{slots: make([]Value, capacity), limit: MaxCapacity}
}

func (*Array) Kind() Kind { return KindArray }
func (*Array) sealed()    {}

// Len 元素个数
func (a *Array) Len() int { return a.size }

// Cap 当前容量
func (a *Array) Cap() int { return len(a.slots) }

// Limit 容量上限
func (a *Array) Limit() int { return a.limit }

// SetLimit 设置容量上限，n <= 0 恢复为 MaxCapacity
//
// 已有容量超过 n 时不会收缩，只是之后的增长都会失败。
func (a *Array) SetLimit(n int) {
	if n <= 0 {
		n = MaxCapacity
	}
	a.limit = n
}

// grow 容量翻倍
func (a *Array) grow() error {
	c := len(a.slots)
	if c > a.limit/2 {
		return fmt.Errorf("array grow from %d: %w", c, ErrCapacityOverflow)
	}
	n := c * 2
	if n == 0 {
		n = 1
	}
	slots := make([]Value, n)
	copy(slots, a.slots[:a.size])
	a.slots = slots
	return nil
}

// link 直接挂入 v（不拷贝），返回下标
func (a *Array) link(v Value) (int, error) {
	if a.size == len(a.slots) {
		if err := a.grow(); err != nil {
			return -1, err
		}
	}
	idx := a.next
	a.slots[idx] = v
	a.next++
	a.size++
	return idx, nil
}

// Push 追加 v 的深拷贝，返回其下标
func (a *Array) Push(v Value) (int, error) {
	mustValue(v, "Array.Push")
	cp := copyValue(v, nil)
	idx, err := a.link(cp)
	if err != nil {
		destroy(cp, nil)
		return -1, err
	}
	return idx, nil
}

// PushRef 把数组自身作为元素追加（不拷贝）
//
// v 必须是 a 本身，其他值一律违反契约：链入外部值会造成共享别名或多级环，
// 而遍历只识别直接自引用。遍历、释放、打印时会在重入点停下。
func (a *Array) PushRef(v Value) (int, error) {
	mustValue(v, "Array.PushRef")
	if x, ok := v.(*Array); !ok || x != a {
		contract(2, "Array.PushRef only links the array itself")
	}
	return a.link(v)
}

// Append 依次 Push 多个值，遇到第一个错误即返回
func (a *Array) Append(vs ...Value) error {
	for _, v := range vs {
		if _, err := a.Push(v); err != nil {
			return err
		}
	}
	return nil
}

// Get 返回下标 i 元素的深拷贝，越界返回 (nil, false)
func (a *Array) Get(i int) (Value, bool) {
	if i < 0 || i >= a.size {
		return nil, false
	}
	return Copy(a.slots[i]), true
}

// Range 借用遍历（不拷贝），fn 返回 false 时停止
//
// 遍历期间不得修改数组，fn 拿到的值在数组释放后失效。
func (a *Array) Range(fn func(i int, v Value) bool) {
	for i := 0; i < a.size; i++ {
		if !fn(i, a.slots[i]) {
			return
		}
	}
}
