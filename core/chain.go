package core

import (
	"errors"
	"fmt"
)

// ErrNotHead is returned when a block's parent does not identify the
// chain's current head (or, for an empty chain, when the block is not a
// genesis block).
var ErrNotHead = errors.New("block does not extend the current head")

// Chain is a singly-linked list of blocks, held by a single owner in a
// hash-keyed arena so that Block never needs a cyclic back-reference
// chasing through the process — only a PrevHashHex string plus, once
// inserted, a PrevBlock pointer the arena itself sets. Only head-extension
// is supported: no reorgs, no persistence (chain state lives in memory for
// the lifetime of the process).
type Chain struct {
	blocks map[string]*Block
	head   *Block
}

// NewChain returns an empty chain.
func NewChain() *Chain {
	return &Chain{blocks: make(map[string]*Block)}
}

// Head returns the current tip, or nil for an empty chain.
func (c *Chain) Head() *Block {
	return c.head
}

// GetBlock looks up a block by hash in the arena.
func (c *Chain) GetBlock(hash string) (*Block, bool) {
	b, ok := c.blocks[hash]
	return b, ok
}

// Length returns the number of blocks reachable from the head via
// PrevBlock.
func (c *Chain) Length() int {
	n := 0
	for b := c.head; b != nil; b = b.PrevBlock {
		n++
	}
	return n
}

// AddBlock appends block as the new head. The caller is responsible for
// having already run full validation (signature, contained transactions,
// expected validator); AddBlock only enforces head-extension linkage.
func (c *Chain) AddBlock(block *Block) error {
	if c.head == nil {
		if block.PrevHashHex != nil {
			return fmt.Errorf("%w: chain is empty, block is not genesis", ErrNotHead)
		}
	} else {
		if block.PrevHashHex == nil || *block.PrevHashHex != c.head.BlockHash {
			return fmt.Errorf("%w: got %v want %s", ErrNotHead, block.PrevHashHex, c.head.BlockHash)
		}
		block.PrevBlock = c.head
	}
	c.blocks[block.BlockHash] = block
	c.head = block
	return nil
}

// BlocksOldestFirst walks the chain from the head back to genesis and
// returns the blocks oldest-first, suitable for folding into an
// AccountMap or replaying for ValidateAll.
func (c *Chain) BlocksOldestFirst() []*Block {
	list := c.ToList()
	for i, j := 0, len(list)-1; i < j; i, j = i+1, j-1 {
		list[i], list[j] = list[j], list[i]
	}
	return list
}

// ToList returns the chain's blocks head-first, the wire shape returned by
// GET /blockchain.
func (c *Chain) ToList() []*Block {
	list := make([]*Block, 0, c.Length())
	for b := c.head; b != nil; b = b.PrevBlock {
		list = append(list, b)
	}
	return list
}

// ChainFromList rebuilds a Chain from a head-first block list (as received
// from a peer's GET /blockchain), restoring PrevBlock pointers as it links
// them oldest-first.
func ChainFromList(list []*Block) (*Chain, error) {
	chain := NewChain()
	for i := len(list) - 1; i >= 0; i-- {
		if err := chain.AddBlock(list[i]); err != nil {
			return nil, fmt.Errorf("link block at position %d: %w", i, err)
		}
	}
	return chain, nil
}
