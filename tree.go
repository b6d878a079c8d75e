package huffpack

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// Node is a node in a Huffman tree.  It is either a *Leaf or an *Internal.
type Node interface {
	// Weight is the total number of occurrences of every symbol under
	// this node.
	Weight() uint64

	isNode()
}

// Leaf is a Node that carries a single Symbol.
type Leaf struct {
	Symbol Symbol
	Count  uint64
}

// Internal is a Node with exactly two children.  Left is reached by a 0
// bit and Right by a 1 bit.
type Internal struct {
	Sum   uint64
	Left  Node
	Right Node
}

// Weight implements Node.
func (leaf *Leaf) Weight() uint64 { return leaf.Count }

// Weight implements Node.
func (in *Internal) Weight() uint64 { return in.Sum }

func (*Leaf) isNode()     {}
func (*Internal) isNode() {}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)

// BuildTree constructs a Huffman tree from the given frequencies by
// repeatedly merging the two lightest nodes.  It returns nil if freq is
// empty, and a lone *Leaf if freq holds exactly one symbol.
//
// Ties are broken deterministically: among nodes of equal weight, leaves
// come first in Symbol order, followed by internal nodes in the order they
// were created.  The first node popped in a merge becomes the left child.
//
func BuildTree(freq Frequencies) Node {
	symbols := freq.Symbols()
	if len(symbols) == 0 {
		return nil
	}

	// Step 1: build a minheap with one leaf per symbol.

	list := make([]weightedNode, 0, len(symbols))
	for _, symbol := range symbols {
		count := freq[symbol]
		assert.Assertf(count != 0, "symbol %d is present with a count of 0", symbol)
		list = append(list, weightedNode{
			node:  &Leaf{Symbol: symbol, Count: count},
			order: uint32(symbol),
		})
	}

	h := nodeHeap{list}
	h.Init()

	// Step 2: pop the two lightest nodes, merge them, and push the merged
	// node back until only the root is left.  Internal nodes get order
	// keys above every possible Symbol.

	nextOrder := uint32(NumSymbols)
	for h.Len() > 1 {
		a := heap.Pop(&h).(weightedNode)
		b := heap.Pop(&h).(weightedNode)

		sum := a.node.Weight() + b.node.Weight()
		assert.Assertf(sum >= a.node.Weight(), "weight overflow merging %d and %d", a.node.Weight(), b.node.Weight())

		heap.Push(&h, weightedNode{
			node:  &Internal{Sum: sum, Left: a.node, Right: b.node},
			order: nextOrder,
		})
		nextOrder++
	}

	root := heap.Pop(&h).(weightedNode)
	return root.node
}

// type weightedNode + type nodeHeap {{{

type weightedNode struct {
	node  Node
	order uint32
}

type nodeHeap struct {
	list []weightedNode
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	aw, bw := a.node.Weight(), b.node.Weight()
	if aw != bw {
		return aw < bw
	}
	return a.order < b.order
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(weightedNode))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = weightedNode{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
