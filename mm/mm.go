// Package mm 提供 core.Value 的跟踪与集中释放
//
// 设计：
//   - Track 把值挂到跟踪链表头部，同一容器重复 Track 只增加引用计数
//   - Node.DecRef 引用归零时立即释放值
//   - Run 释放所有引用已归零但尚未释放的值
//   - Run 同时把已释放的节点移出链表
//   - Free 释放仍持有的全部值并清空链表
//
// 节点一旦释放就不再复用：调用方手里过期的 *Node 上 IncRef/DecRef 是空操作，
// 不会波及之后跟踪的值。调用方只需在结束时调用一次 Free，不必逐个 Destroy。
package mm

import (
	"sync"

	"github.com/uniyakcom/object/core"
)

// Destructor 值释放函数
type Destructor func(core.Value)

// Node 跟踪节点
type Node struct {
	value core.Value
	refs  int
	freed bool
	free  Destructor
	next  *Node
}

// Value 被跟踪的值（释放后为 nil）
func (n *Node) Value() core.Value { return n.value }

// Refs 当前引用计数
func (n *Node) Refs() int { return n.refs }

// Freed 值是否已释放
func (n *Node) Freed() bool { return n.freed }

// IncRef 增加引用（已释放的节点为空操作）
func (n *Node) IncRef() {
	if n.freed {
		return
	}
	n.refs++
}

// DecRef 减少引用，归零时释放值（已释放的节点为空操作）
func (n *Node) DecRef() {
	if n.freed {
		return
	}
	n.refs--
	if n.refs <= 0 {
		n.release()
	}
}

func (n *Node) release() bool {
	if n.freed {
		return false
	}
	n.free(n.value)
	n.value = nil
	n.refs = 0
	n.freed = true
	return true
}

// ─── Tracker ─────────────────────────────────────────────────────────

// Tracker 值跟踪器
//
// 链表操作由互斥锁保护；Node 的引用计数不加锁，同一个 Node 不应跨 goroutine 使用。
type Tracker struct {
	mu   sync.Mutex
	head *Node
	size int
	free Destructor
}

// New 创建跟踪器，free 为 nil 时使用 core.Destroy
func New(free Destructor) *Tracker {
	if free == nil {
		free = core.Destroy
	}
	return &Tracker{free: free}
}

// Track 跟踪 v，返回其节点
//
// 同一个容器（同一指针）已被跟踪且尚未释放时，返回已有节点并增加引用计数。
// 标量按值传递，每次都会新建节点。
func (t *Tracker) Track(v core.Value) *Node {
	if v == nil {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if n := t.search(v); n != nil {
		n.refs++
		return n
	}
	n := &Node{value: v, refs: 1, free: t.free, next: t.head}
	t.head = n
	t.size++
	return n
}

// search 按容器同一性查找未释放的节点
func (t *Tracker) search(v core.Value) *Node {
	for n := t.head; n != nil; n = n.next {
		if !n.freed && sameRef(n.value, v) {
			return n
		}
	}
	return nil
}

// Len 链表中的节点数
//
// 经 DecRef 释放的节点在下一次 Run 或 Free 之前仍计入。
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.size
}

// Run 释放所有引用计数 <= 0 且尚未释放的值，并移除已释放的节点，返回释放个数
func (t *Tracker) Run() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	released := 0
	link := &t.head
	for n := *link; n != nil; n = *link {
		if n.refs <= 0 && n.release() {
			released++
		}
		if n.freed {
			*link = n.next
			n.next = nil
			t.size--
			continue
		}
		link = &n.next
	}
	return released
}

// Free 释放全部尚未释放的值并清空链表，返回释放个数
//
// 调用后之前返回的 Node 全部处于已释放状态。
func (t *Tracker) Free() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	released := 0
	n := t.head
	for n != nil {
		next := n.next
		if n.release() {
			released++
		}
		n.next = nil
		n = next
	}
	t.head = nil
	t.size = 0
	return released
}

func sameRef(a, b core.Value) bool {
	switch x := a.(type) {
	case *core.Array:
		y, ok := b.(*core.Array)
		return ok && x == y
	case *core.Map:
		y, ok := b.(*core.Map)
		return ok && x == y
	case *core.String:
		y, ok := b.(*core.String)
		return ok && x == y
	case *core.Pair:
		y, ok := b.(*core.Pair)
		return ok && x == y
	}
	return false
}

// ─── 全局便捷接口 ───────────────────────────────────────────────────

var global = New(nil)

// Track 全局跟踪
func Track(v core.Value) *Node { return global.Track(v) }

// Run 全局释放引用已归零的值
func Run() int { return global.Run() }

// Free 全局释放全部值
func Free() int { return global.Free() }

// Global 获取全局跟踪器引用
func Global() *Tracker { return global }
