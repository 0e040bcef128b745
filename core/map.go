package core

import (
	"fmt"

	"github.com/uniyakcom/object/str"
)

// Bucket 哈希表条目
//
// 同时挂在两条链上: chainNext 串起同一槽位的冲突条目，
// orderPrev/orderNext 串起全表的插入顺序。
type Bucket struct {
	key       *str.ByteString
	value     Value
	hash      uint32
	chainNext *Bucket
	orderNext *Bucket
	orderPrev *Bucket
}

// Key 键内容
func (b *Bucket) Key() string { return b.key.String() }

// Hash 键哈希
func (b *Bucket) Hash() uint32 { return b.hash }

// Value 借用值（不拷贝）
func (b *Bucket) Value() Value { return b.value }

// Next 同槽位冲突链上的下一个条目
func (b *Bucket) Next() *Bucket { return b.chainNext }

// Map 字符串键哈希表，保持插入顺序
//
// 设计特点:
//   - 槽位数组 + 冲突链，索引 = hash % capacity
//   - 插入前 size >= capacity 则容量翻倍并全量重散列
//   - 双向顺序链表，遍历按首次插入的顺序，更新已有键不改变位置
//   - 插入深拷贝值，查找返回深拷贝
type Map struct {
	buckets []*Bucket // len(buckets) 即容量
	size    int
	head    *Bucket
	tail    *Bucket
	limit   int
}

// NewMap 创建初始容量为 capacity 的哈希表，capacity 必须为正数
func NewMap(capacity int) *Map {
	if capacity <= 0 {
		contract(2, fmt.Sprintf("NewMap(%d): %s", capacity, ErrInvalidCapacity))
	}
	return &Map{buckets: make([]*Bucket, capacity), limit: MaxCapacity}
}

func (*Map) Kind() Kind { return KindMap }
func (*Map) sealed()    {}

// Len 条目数
func (m *Map) Len() int { return m.size }

// Cap 槽位数
func (m *Map) Cap() int { return len(m.buckets) }

// Limit 容量上限
func (m *Map) Limit() int { return m.limit }

// SetLimit 设置容量上限，n <= 0 恢复为 MaxCapacity
func (m *Map) SetLimit(n int) {
	if n <= 0 {
		n = MaxCapacity
	}
	m.limit = n
}

func (m *Map) index(hash uint32) int {
	return int(uint64(hash) % uint64(len(m.buckets)))
}

// resize 容量翻倍并按新容量重新散列全部条目（顺序链表不动）
func (m *Map) resize() error {
	c := len(m.buckets)
	if c > m.limit/2 {
		return fmt.Errorf("map resize from %d: %w", c, ErrCapacityOverflow)
	}
	n := c * 2
	if n == 0 {
		n = 1
	}
	table := make([]*Bucket, n)
	for _, b := range m.buckets {
		for b != nil {
			next := b.chainNext
			idx := int(uint64(b.hash) % uint64(n))
			b.chainNext = table[idx]
			table[idx] = b
			b = next
		}
	}
	m.buckets = table
	return nil
}

// lookup 定位键对应的条目
func (m *Map) lookup(key []byte, hash uint32) *Bucket {
	if len(m.buckets) == 0 {
		return nil
	}
	for b := m.buckets[m.index(hash)]; b != nil; b = b.chainNext {
		if b.key.Match(hash, key) {
			return b
		}
	}
	return nil
}

// insert 写入键值；owned 为 true 时直接接管 v，否则深拷贝
//
// 扩容失败时仍允许更新已有键，只有新增条目会返回错误。
func (m *Map) insert(key []byte, v Value, owned bool) error {
	var growErr error
	if m.size >= len(m.buckets) {
		growErr = m.resize()
	}

	hash := str.Hash(key)
	val := v
	if !owned {
		val = copyValue(v, nil)
	}

	if b := m.lookup(key, hash); b != nil {
		old := b.value
		b.value = val
		if !sameContainer(old, val) {
			destroy(old, nil)
		}
		return nil
	}

	if growErr != nil {
		if !owned {
			destroy(val, nil)
		}
		return growErr
	}

	idx := m.index(hash)
	b := &Bucket{
		key:       str.FromBytes(key),
		value:     val,
		hash:      hash,
		chainNext: m.buckets[idx],
	}
	m.buckets[idx] = b

	if m.tail == nil {
		m.head = b
	} else {
		m.tail.orderNext = b
		b.orderPrev = m.tail
	}
	m.tail = b
	m.size++
	return nil
}

// Insert 写入 key 对应的值（深拷贝 v）
//
// key 已存在时原值被释放，条目保持原有的顺序位置。
func (m *Map) Insert(key string, v Value) error {
	mustValue(v, "Map.Insert")
	return m.insert([]byte(key), v, false)
}

// InsertBytes 同 Insert，键为字节切片（内容被拷贝）
func (m *Map) InsertBytes(key []byte, v Value) error {
	mustValue(v, "Map.InsertBytes")
	return m.insert(key, v, false)
}

// InsertRef 把哈希表自身写入 key（不拷贝）
//
// v 必须是 m 本身，其他值一律违反契约，理由同 Array.PushRef。
func (m *Map) InsertRef(key string, v Value) error {
	mustValue(v, "Map.InsertRef")
	if x, ok := v.(*Map); !ok || x != m {
		contract(2, "Map.InsertRef only links the map itself")
	}
	return m.insert([]byte(key), v, true)
}

// Search 返回 key 对应值的深拷贝
func (m *Map) Search(key string) (Value, bool) {
	b := m.lookup([]byte(key), str.HashString(key))
	if b == nil {
		return nil, false
	}
	return Copy(b.value), true
}

// SearchBytes 同 Search，键为字节切片
func (m *Map) SearchBytes(key []byte) (Value, bool) {
	b := m.lookup(key, str.Hash(key))
	if b == nil {
		return nil, false
	}
	return Copy(b.value), true
}

// SearchRef 借用 key 对应的值（不拷贝）
func (m *Map) SearchRef(key string) (Value, bool) {
	b := m.lookup([]byte(key), str.HashString(key))
	if b == nil {
		return nil, false
	}
	return b.value, true
}

// Has 判断 key 是否存在
func (m *Map) Has(key string) bool {
	return m.lookup([]byte(key), str.HashString(key)) != nil
}

// GetByHash 返回冲突链上第一个哈希等于 hash 的值（深拷贝）
func (m *Map) GetByHash(hash uint32) (Value, bool) {
	if len(m.buckets) == 0 {
		return nil, false
	}
	for b := m.buckets[m.index(hash)]; b != nil; b = b.chainNext {
		if b.hash == hash {
			return Copy(b.value), true
		}
	}
	return nil, false
}

// Delete 删除 key 并释放其值，返回是否删除了条目
func (m *Map) Delete(key string) bool {
	if len(m.buckets) == 0 {
		return false
	}
	kb := []byte(key)
	hash := str.Hash(kb)
	idx := m.index(hash)
	var prev *Bucket
	for b := m.buckets[idx]; b != nil; prev, b = b, b.chainNext {
		if !b.key.Match(hash, kb) {
			continue
		}
		if prev == nil {
			m.buckets[idx] = b.chainNext
		} else {
			prev.chainNext = b.chainNext
		}
		if b.orderPrev == nil {
			m.head = b.orderNext
		} else {
			b.orderPrev.orderNext = b.orderNext
		}
		if b.orderNext == nil {
			m.tail = b.orderPrev
		} else {
			b.orderNext.orderPrev = b.orderPrev
		}
		destroy(b.value, m)
		*b = Bucket{}
		m.size--
		return true
	}
	return false
}

// BucketAt 返回第 i 个槽位的冲突链头，空槽或越界返回 nil
func (m *Map) BucketAt(i int) *Bucket {
	if i < 0 || i >= len(m.buckets) {
		return nil
	}
	return m.buckets[i]
}

// Range 按插入顺序借用遍历，fn 返回 false 时停止
//
// 遍历期间不得修改哈希表。
func (m *Map) Range(fn func(key string, v Value) bool) {
	for b := m.head; b != nil; b = b.orderNext {
		if !fn(b.key.String(), b.value) {
			return
		}
	}
}

// RangeBytes 同 Range，键以只读字节切片给出（不分配）
func (m *Map) RangeBytes(fn func(key []byte, v Value) bool) {
	for b := m.head; b != nil; b = b.orderNext {
		if !fn(b.key.Bytes(), b.value) {
			return
		}
	}
}

// Keys 按插入顺序返回全部键
func (m *Map) Keys() []string {
	keys := make([]string, 0, m.size)
	for b := m.head; b != nil; b = b.orderNext {
		keys = append(keys, b.key.String())
	}
	return keys
}
