// Package slot provides the durable backends that hold the serialized Ledger.
//
// Every backend implements reconcile.Slot: a single named value that can be read,
// replaced and cleared. The payload is the exchange JSON produced by the reconcile package,
// so a slot can be moved between backends by exporting and importing it.
//
// # Backends
//
//   - FileSlot: a JSON file on local disk, replaced atomically through a temp file.
//   - DBSlot: a row in the ledger_slots table, through GORM (sqlite, mysql, postgres).
//   - ObjectSlot: an object in a MinIO/S3 bucket, through storage.Client.
//   - MemorySlot: process memory, for tests and throwaway sessions.
//
// # Usage
//
//	s, err := slot.New(cfg.Matcher.Slot, slot.Deps{DB: db, Storage: client, Bucket: cfg.Storage.Bucket})
//	engine, err := reconcile.Open(ctx, reconcile.Options{Slot: s, ...})
package slot
