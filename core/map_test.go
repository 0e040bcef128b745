package core

import (
	"errors"
	"fmt"
	"testing"
)

// TestMapGrowth 测试扩容后旧键依然可查（全量重散列）
func TestMapGrowth(t *testing.T) {
	m := NewMap(2)
	for i, k := range []string{"a", "b", "c"} {
		if err := m.Insert(k, NewInt(int64(i+1))); err != nil {
			t.Fatalf("Insert(%q): %v", k, err)
		}
	}
	if m.Cap() != 4 {
		t.Errorf("Cap() = %d, want 4", m.Cap())
	}
	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}
	for i, k := range []string{"a", "b", "c"} {
		v, ok := m.Search(k)
		if !ok || v != Int(i+1) {
			t.Errorf("Search(%q) = %v, %v; want %d", k, v, ok, i+1)
		}
	}

	// murmur3("a")%4 = 2，"b" 与 "c" 都落在槽位 3，新条目挂在链头
	if b := m.BucketAt(2); b == nil || b.Key() != "a" {
		t.Errorf("BucketAt(2) = %v, want a", b)
	}
	b := m.BucketAt(3)
	if b == nil || b.Key() != "c" || b.Next() == nil || b.Next().Key() != "b" {
		t.Error("slot 3 chain should be c -> b")
	}
	if m.BucketAt(0) != nil || m.BucketAt(4) != nil || m.BucketAt(-1) != nil {
		t.Error("empty or out of range slot should be nil")
	}
}

// TestMapManyKeys 测试多次扩容
func TestMapManyKeys(t *testing.T) {
	m := NewMap(1)
	const n = 1000
	for i := 0; i < n; i++ {
		if err := m.Insert(fmt.Sprintf("key-%d", i), NewInt(int64(i))); err != nil {
			t.Fatal(err)
		}
		if m.Len() > m.Cap() {
			t.Fatalf("size %d exceeds capacity %d", m.Len(), m.Cap())
		}
	}
	if m.Cap() != 1024 {
		t.Errorf("Cap() = %d, want 1024", m.Cap())
	}
	for i := 0; i < n; i++ {
		k := fmt.Sprintf("key-%d", i)
		if v, ok := m.Search(k); !ok || v != Int(i) {
			t.Fatalf("Search(%q) = %v, %v", k, v, ok)
		}
	}
}

// TestMapUpdateKeepsOrder 测试更新已有键不改变 size 与顺序
func TestMapUpdateKeepsOrder(t *testing.T) {
	m := NewMap(4)
	m.Insert("x", NewInt(1))
	m.Insert("y", NewInt(2))
	m.Insert("z", NewInt(3))
	m.Insert("x", NewString("updated"))

	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}
	keys := m.Keys()
	want := []string{"x", "y", "z"}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("Keys() = %v, want %v", keys, want)
		}
	}
	v, _ := m.Search("x")
	if s, ok := v.(*String); !ok || s.String() != "updated" {
		t.Errorf("Search(x) = %v, want updated", v)
	}
}

// TestMapRoundTrip 测试查找返回深拷贝
func TestMapRoundTrip(t *testing.T) {
	m := NewMap(2)
	in := NewString("Ryan")
	m.Insert("name", in)

	got, ok := m.Search("name")
	if !ok {
		t.Fatal("Search(name) not found")
	}
	if got == Value(in) {
		t.Error("Search must not return the inserted value itself")
	}
	if !Equal(got, in) {
		t.Errorf("Search(name) = %v, want Ryan", got)
	}
	ref, _ := m.SearchRef("name")
	if ref == got {
		t.Error("Search must not return the stored value itself")
	}
	if _, ok := m.SearchBytes([]byte("name")); !ok {
		t.Error("SearchBytes(name) not found")
	}
	if _, ok := m.Search("missing"); ok {
		t.Error("Search(missing) should miss")
	}
}

// TestMapDelete 测试删除（链头、链中、顺序链表首尾）
func TestMapDelete(t *testing.T) {
	m := NewMap(2)
	for _, k := range []string{"a", "b", "c", "d"} {
		m.Insert(k, NewString(k))
	}

	if m.Delete("missing") {
		t.Error("Delete(missing) should report false")
	}
	if m.Len() != 4 {
		t.Errorf("Len() = %d, want 4", m.Len())
	}

	for _, k := range []string{"c", "a", "d"} {
		n := m.Len()
		if !m.Delete(k) {
			t.Fatalf("Delete(%q) = false", k)
		}
		if m.Len() != n-1 {
			t.Errorf("Len() = %d, want %d", m.Len(), n-1)
		}
		if _, ok := m.Search(k); ok {
			t.Errorf("Search(%q) after Delete should miss", k)
		}
	}
	if keys := m.Keys(); len(keys) != 1 || keys[0] != "b" {
		t.Errorf("Keys() = %v, want [b]", keys)
	}
	if v, ok := m.Search("b"); !ok || v.(*String).String() != "b" {
		t.Errorf("Search(b) = %v, %v", v, ok)
	}

	// 删除后再插入排到末尾
	m.Insert("a", NewInt(1))
	if keys := m.Keys(); len(keys) != 2 || keys[1] != "a" {
		t.Errorf("Keys() = %v, want [b a]", keys)
	}
}

// TestMapGetByHash 测试按哈希查找
func TestMapGetByHash(t *testing.T) {
	m := NewMap(8)
	m.Insert("hello", NewInt(7))
	v, ok := m.GetByHash(0x248bfa47)
	if !ok || v != Int(7) {
		t.Errorf("GetByHash = %v, %v; want 7", v, ok)
	}
	if _, ok := m.GetByHash(1); ok {
		t.Error("GetByHash(1) should miss")
	}
}

// TestMapLimit 测试容量上限：新增失败，更新仍可进行
func TestMapLimit(t *testing.T) {
	m := NewMap(2)
	m.SetLimit(2)
	m.Insert("a", NewInt(1))
	m.Insert("b", NewInt(2))

	if err := m.Insert("c", NewInt(3)); !errors.Is(err, ErrCapacityOverflow) {
		t.Errorf("Insert(c) error = %v, want ErrCapacityOverflow", err)
	}
	if err := m.Insert("a", NewInt(10)); err != nil {
		t.Errorf("Insert(a) update error = %v", err)
	}
	if m.Len() != 2 || m.Cap() != 2 {
		t.Errorf("Len/Cap = %d/%d, want 2/2", m.Len(), m.Cap())
	}
	if v, _ := m.Search("a"); v != Int(10) {
		t.Errorf("Search(a) = %v, want 10", v)
	}
}

// TestMapRange 测试按插入顺序遍历
func TestMapRange(t *testing.T) {
	m := NewMap(1)
	m.Insert("one", NewInt(1))
	m.Insert("two", NewInt(2))
	m.Insert("three", NewInt(3))

	var got []string
	m.Range(func(k string, v Value) bool {
		got = append(got, fmt.Sprintf("%s=%d", k, v.(Int)))
		return true
	})
	if fmt.Sprint(got) != "[one=1 two=2 three=3]" {
		t.Errorf("Range = %v", got)
	}

	n := 0
	m.RangeBytes(func(k []byte, v Value) bool {
		n++
		return false
	})
	if n != 1 {
		t.Errorf("RangeBytes visited %d entries after stop, want 1", n)
	}
}

// TestMapInsertRef 测试只能写入哈希表自身
func TestMapInsertRef(t *testing.T) {
	m := NewMap(2)
	m.Insert("x", NewInt(1))
	if err := m.InsertRef("self", m); err != nil {
		t.Fatal(err)
	}
	ref, _ := m.SearchRef("self")
	if ref != Value(m) {
		t.Error("InsertRef must store the map itself")
	}
	// 同一个值再次写入不应释放自身
	m.InsertRef("self", m)
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
	if v, ok := m.Search("x"); !ok || v != Int(1) {
		t.Errorf("Search(x) = %v, %v", v, ok)
	}
}

// TestMapInsertRefForeign 测试写入其他值违反契约，两个容器不会共享同一个值
func TestMapInsertRefForeign(t *testing.T) {
	for _, v := range []Value{NewArray(1), NewMap(1), NewString("s"), NewInt(1)} {
		m := NewMap(1)
		func() {
			defer func() {
				ce, ok := recover().(*ContractError)
				if !ok {
					t.Fatalf("InsertRef(%s): want *ContractError", v.Kind())
				}
				if ce.File != "map_test.go" {
					t.Errorf("ContractError.File = %q, want %q", ce.File, "map_test.go")
				}
			}()
			m.InsertRef("v", v)
		}()
		if m.Len() != 0 {
			t.Errorf("InsertRef(%s) stored the value", v.Kind())
		}
	}
}

// TestMapDeleteChain 测试删除冲突链的非链头与链头
func TestMapDeleteChain(t *testing.T) {
	m := NewMap(2)
	for _, k := range []string{"a", "b", "c"} {
		m.Insert(k, NewString(k))
	}
	// 槽位 3: c -> b
	if !m.Delete("b") {
		t.Fatal("Delete(b) = false")
	}
	if b := m.BucketAt(3); b == nil || b.Key() != "c" || b.Next() != nil {
		t.Error("slot 3 chain should be c after deleting b")
	}
	if !m.Delete("c") {
		t.Fatal("Delete(c) = false")
	}
	if m.BucketAt(3) != nil {
		t.Error("slot 3 should be empty")
	}
	if keys := m.Keys(); len(keys) != 1 || keys[0] != "a" {
		t.Errorf("Keys() = %v, want [a]", keys)
	}
}

func BenchmarkMapInsert(b *testing.B) {
	keys := make([]string, 64)
	for i := range keys {
		keys[i] = fmt.Sprintf("k%d", i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m := NewMap(8)
		for _, k := range keys {
			m.Insert(k, Int(i))
		}
	}
}

func BenchmarkMapSearch(b *testing.B) {
	m := NewMap(64)
	for i := 0; i < 64; i++ {
		m.Insert(fmt.Sprintf("k%d", i), Int(i))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.SearchRef("k42")
	}
}
