package slot

import (
	"context"
	"sync"

	"item-matcher/core/reconcile"
)

// MemorySlot keeps the payload in process memory.
type MemorySlot struct {
	mu   sync.RWMutex
	data []byte
}

// NewMemorySlot creates an empty slot.
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{}
}

// Read implements reconcile.Slot.
func (s *MemorySlot) Read(ctx context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return nil, reconcile.ErrSlotEmpty
	}
	return append([]byte(nil), s.data...), nil
}

// Write implements reconcile.Slot.
func (s *MemorySlot) Write(ctx context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append(make([]byte, 0, len(data)), data...)
	return nil
}

// Clear implements reconcile.Slot.
func (s *MemorySlot) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	return nil
}
