// Package blobs provides the key/value slot store that holds the serialized
// QR history.
//
// # Contract
//
// A Repository stores opaque byte values by string key. Get returns (nil, nil)
// for an absent key, Set overwrites, Remove is idempotent. Each call is atomic
// for its key; there are no cross-key transactions.
//
// # Backends
//
//   - SQLiteRepository: local file database (modernc.org/sqlite), default
//   - PostgresRepository: shared database over the pgx stdlib driver
//   - S3Repository: one object per key in an S3/MinIO bucket
//   - MemoryRepository: process-local map, used by tests and -s memory
//
// SQL schemas are applied with goose from the embedded migrations.
//
// Typical Usage
//
//	repo, closeFn, err := blobs.Open(ctx, cfg, log)
//	defer closeFn()
//	_ = repo.Set(ctx, "qrHistory", data)
//	raw, _ := repo.Get(ctx, "qrHistory")
package blobs
