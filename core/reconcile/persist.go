package reconcile

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrSlotEmpty is returned by Slot.Read when nothing has been persisted yet.
var ErrSlotEmpty = errors.New("ledger slot is empty")

// Slot is a durable key/value slot holding the serialized Ledger.
type Slot interface {
	// Read returns the stored payload, or ErrSlotEmpty.
	Read(ctx context.Context) ([]byte, error)

	// Write replaces the stored payload.
	Write(ctx context.Context, data []byte) error

	// Clear removes the stored payload. Clearing an empty slot is not an error.
	Clear(ctx context.Context) error
}

// LoadLedger reads the ledger from a slot. An empty slot yields an empty ledger. Unparsable
// content is treated as absent and logged, so a corrupt slot never prevents a session from
// starting. Read failures are returned.
func LoadLedger(ctx context.Context, slot Slot, logger *zap.Logger) (*Ledger, error) {
	data, err := slot.Read(ctx)
	if errors.Is(err, ErrSlotEmpty) {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger slot: %w", err)
	}

	ledger, err := UnmarshalLedger(data)
	if err != nil {
		logger.Warn("Ledger slot is corrupt, starting with an empty ledger", zap.Error(err))
		return NewLedger(), nil
	}
	return ledger, nil
}

// SaveLedger writes the ledger to a slot.
func SaveLedger(ctx context.Context, slot Slot, ledger *Ledger) error {
	data, err := MarshalLedger(ledger)
	if err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}
	if err := slot.Write(ctx, data); err != nil {
		return fmt.Errorf("failed to write ledger slot: %w", err)
	}
	return nil
}
