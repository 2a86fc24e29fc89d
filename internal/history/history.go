// Package history provides the bounded, ordered container of command blocks
// with FIFO eviction and an id-keyed navigation cursor, plus the Manager
// facade the UI and CLI layers talk to.
package history

import (
	"strings"
	"sync"

	"github.com/zjrosen/blockdeck/internal/block"
)

const (
	// DefaultMaxSize is the default maximum number of blocks to keep.
	DefaultMaxSize = 100
	// MaxSize is the absolute maximum number of blocks allowed.
	MaxSize = 10000
)

// History is a bounded, oldest-first sequence of blocks with a navigation
// cursor. When the history is at capacity, adding a block evicts the oldest.
//
// The cursor is keyed by block ID rather than position, so it stays attached
// to the same block when an eviction shifts every position down by one. An
// empty cursor means the user is not navigating; NavigateUp then starts from
// the newest block.
//
// Access is serialized with a mutex so a background executor finalizing a
// block does not race a UI read, but the engine otherwise assumes one logical
// owner performing mutations.
type History struct {
	blocks   []*block.Block // Oldest first
	maxSize  int
	cursorID string // "" = not navigating
	mu       sync.RWMutex
}

// New creates a history bounded at maxSize blocks.
// If maxSize is 0 or negative, DefaultMaxSize is used.
// If maxSize exceeds MaxSize, it is clamped to MaxSize.
func New(maxSize int) *History {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	if maxSize > MaxSize {
		maxSize = MaxSize
	}

	return &History{
		blocks:  make([]*block.Block, 0, maxSize),
		maxSize: maxSize,
	}
}

// Add appends a block at the newest end. When the history is at capacity the
// oldest block is evicted first, so the length never exceeds the maximum.
// If the cursored block is the one evicted, the cursor moves to the oldest
// retained block; otherwise it keeps referencing the same block.
func (h *History) Add(b *block.Block) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.blocks) >= h.maxSize {
		evicted := h.blocks[0]
		copy(h.blocks, h.blocks[1:])
		h.blocks[len(h.blocks)-1] = b

		if h.cursorID == evicted.ID {
			h.cursorID = h.blocks[0].ID
		}
		return
	}

	h.blocks = append(h.blocks, b)
}

// Get returns the block with the given ID, or nil if it is not in history.
// The returned pointer is live: finalization and bookmark toggles through it
// are visible to subsequent reads.
func (h *History) Get(id string) *block.Block {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, b := range h.blocks {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// GetByPosition returns the block at index i (0 = oldest), or nil if i is out
// of bounds.
func (h *History) GetByPosition(i int) *block.Block {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if i < 0 || i >= len(h.blocks) {
		return nil
	}
	return h.blocks[i]
}

// NavigateUp moves the cursor one block toward the oldest entry and returns
// the block at the new cursor. If the user is not yet navigating, the cursor
// starts at the newest block. Returns nil if the history is empty or the
// cursor is already at the oldest block.
func (h *History) NavigateUp() *block.Block {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.blocks) == 0 {
		return nil
	}

	if h.cursorID == "" {
		newest := h.blocks[len(h.blocks)-1]
		h.cursorID = newest.ID
		return newest
	}

	pos := h.cursorPos()
	if pos == 0 {
		return nil
	}

	h.cursorID = h.blocks[pos-1].ID
	return h.blocks[pos-1]
}

// NavigateDown moves the cursor one block toward the newest entry and returns
// the block at the new cursor. Returns nil if the history is empty, the user
// is not navigating, or the cursor is already at the newest block.
func (h *History) NavigateDown() *block.Block {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.blocks) == 0 || h.cursorID == "" {
		return nil
	}

	pos := h.cursorPos()
	if pos >= len(h.blocks)-1 {
		return nil
	}

	h.cursorID = h.blocks[pos+1].ID
	return h.blocks[pos+1]
}

// cursorPos resolves the cursor ID to its current position. If the cursored
// block was evicted, the cursor snaps to the oldest retained block.
// Caller must hold the lock; history must be non-empty.
func (h *History) cursorPos() int {
	for i, b := range h.blocks {
		if b.ID == h.cursorID {
			return i
		}
	}
	h.cursorID = h.blocks[0].ID
	return 0
}

// Current returns the block under the cursor, or nil if the history is empty
// or the user is not navigating.
func (h *History) Current() *block.Block {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.blocks) == 0 || h.cursorID == "" {
		return nil
	}
	return h.blocks[h.cursorPos()]
}

// Search returns the blocks whose command contains query as a case-sensitive
// substring, in history order.
func (h *History) Search(query string) []*block.Block {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var matches []*block.Block
	for _, b := range h.blocks {
		if strings.Contains(b.Command, query) {
			matches = append(matches, b)
		}
	}
	return matches
}

// Bookmarked returns the bookmarked blocks in history order.
func (h *History) Bookmarked() []*block.Block {
	h.mu.RLock()
	defer h.mu.RUnlock()

	var marked []*block.Block
	for _, b := range h.blocks {
		if b.IsBookmarked() {
			marked = append(marked, b)
		}
	}
	return marked
}

// Clear removes all blocks and resets the cursor.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.blocks = make([]*block.Block, 0, h.maxSize)
	h.cursorID = ""
}

// Len returns the number of blocks currently in history.
func (h *History) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.blocks)
}

// IsEmpty reports whether the history holds no blocks.
func (h *History) IsEmpty() bool {
	return h.Len() == 0
}

// Blocks returns a snapshot of all blocks, oldest to newest. The slice is a
// copy; the blocks themselves are shared.
func (h *History) Blocks() []*block.Block {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]*block.Block, len(h.blocks))
	copy(out, h.blocks)
	return out
}
