package history

import (
	"errors"
	"fmt"

	"github.com/zjrosen/blockdeck/internal/block"
)

// ErrBlockNotFound is returned when an operation references a block ID that
// is not present in history.
var ErrBlockNotFound = errors.New("block not found")

// Manager is the facade the UI and CLI layers use to work with block history.
// It owns exactly one History and re-exposes its queries.
type Manager struct {
	history *History
}

// NewManager creates a manager owning a history bounded at maxSize blocks.
func NewManager(maxSize int) *Manager {
	return &Manager{history: New(maxSize)}
}

// AddBlock appends a block to history, evicting the oldest at capacity.
func (m *Manager) AddBlock(b *block.Block) {
	m.history.Add(b)
}

// Blocks returns a snapshot of all blocks, oldest to newest.
func (m *Manager) Blocks() []*block.Block {
	return m.history.Blocks()
}

// Get returns the block with the given ID, or nil if absent.
func (m *Manager) Get(id string) *block.Block {
	return m.history.Get(id)
}

// Search returns the blocks whose command contains query, in history order.
func (m *Manager) Search(query string) []*block.Block {
	return m.history.Search(query)
}

// Bookmarked returns the bookmarked blocks in history order.
func (m *Manager) Bookmarked() []*block.Block {
	return m.history.Bookmarked()
}

// ToggleBookmark flips the bookmark flag on the block with the given ID.
// Returns ErrBlockNotFound if the ID is absent; history is left unchanged.
func (m *Manager) ToggleBookmark(id string) error {
	b := m.history.Get(id)
	if b == nil {
		return fmt.Errorf("%w: %s", ErrBlockNotFound, id)
	}
	b.ToggleBookmark()
	return nil
}

// NavigateUp moves the cursor toward the oldest block.
func (m *Manager) NavigateUp() *block.Block {
	return m.history.NavigateUp()
}

// NavigateDown moves the cursor toward the newest block.
func (m *Manager) NavigateDown() *block.Block {
	return m.history.NavigateDown()
}

// History exposes the underlying history for direct access.
func (m *Manager) History() *History {
	return m.history
}
