package services

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/qrkeeper/internal/blobs"
	"github.com/dmitrijs2005/qrkeeper/internal/logging"
	"github.com/dmitrijs2005/qrkeeper/internal/models"
	"github.com/dmitrijs2005/qrkeeper/internal/payload"
)

type HistoryService interface {
	Load(ctx context.Context) error
	Append(ctx context.Context, entry models.HistoryEntry) error
	AppendOrMergeIcBin(ctx context.Context, entry models.HistoryEntry) error
	Remove(ctx context.Context, match func(models.HistoryEntry) bool) (int, error)
	Delete(ctx context.Context, entry models.HistoryEntry) error
	Clear(ctx context.Context) error
	Purge(ctx context.Context) error
	Entries() []models.HistoryEntry
	NewEntry(source models.Source, label, data string) models.HistoryEntry
}

type historyService struct {
	repo blobs.Repository
	key  string
	log  logging.Logger
	now  func() time.Time

	mu      sync.Mutex
	entries []models.HistoryEntry
}

func NewHistoryService(repo blobs.Repository, key string, log logging.Logger) HistoryService {
	return &historyService{
		repo:    repo,
		key:     key,
		log:     log.With("component", "history", "key", key),
		now:     time.Now,
		entries: []models.HistoryEntry{},
	}
}

// Load replaces the in-memory list with the persisted one. A missing,
// unreadable or corrupt blob yields an empty history and a nil error.
func (s *historyService) Load(ctx context.Context) error {
	list := s.read(ctx)

	s.mu.Lock()
	s.entries = list
	s.mu.Unlock()

	s.log.Debug(ctx, "history loaded", "count", len(list))
	return nil
}

func (s *historyService) read(ctx context.Context) []models.HistoryEntry {
	raw, err := s.repo.Get(ctx, s.key)
	if err != nil {
		s.log.Warn(ctx, "history read failed, starting empty", "error", err)
		return []models.HistoryEntry{}
	}
	if raw == nil {
		return []models.HistoryEntry{}
	}

	var list []models.HistoryEntry
	if err := json.Unmarshal(raw, &list); err != nil {
		s.log.Warn(ctx, "history blob is corrupt, starting empty", "error", err)
		return []models.HistoryEntry{}
	}
	kept := make([]models.HistoryEntry, 0, len(list))
	for _, e := range list {
		if !e.Source.Valid() {
			s.log.Warn(ctx, "dropping stored entry with unknown source", "source", e.Source, "timestamp", e.Timestamp)
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

// NewEntry stamps a fresh entry with the service clock.
func (s *historyService) NewEntry(source models.Source, label, data string) models.HistoryEntry {
	return models.NewEntry(source, label, data, s.now())
}

// Append puts entry at the front of the list. IC-Bin entries go through
// AppendOrMergeIcBin so a lot is never listed twice.
func (s *historyService) Append(ctx context.Context, entry models.HistoryEntry) error {
	if entry.Source == models.SourceIcBin {
		return s.AppendOrMergeIcBin(ctx, entry)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = slices.Insert(s.entries, 0, entry)
	return s.persist(ctx, "append")
}

// AppendOrMergeIcBin moves an existing entry for the same (device, erp) lot
// to the front, replacing it with entry, or prepends entry when no such lot
// is listed. Other IC-Bin fields do not take part in the match.
func (s *historyService) AppendOrMergeIcBin(ctx context.Context, entry models.HistoryEntry) error {
	if _, err := payload.DecodeIcBin(entry.Data); err != nil {
		return fmt.Errorf("merge ic bin entry: %w", err)
	}
	device, erp, _ := payload.IcBinKey(entry.Data)

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.entries, func(e models.HistoryEntry) bool {
		if e.Source != models.SourceIcBin {
			return false
		}
		d, r, ok := payload.IcBinKey(e.Data)
		return ok && d == device && r == erp
	})

	op := "append"
	if idx >= 0 {
		s.entries = slices.Delete(s.entries, idx, idx+1)
		op = "merge"
		s.log.Debug(ctx, "ic bin entry merged", "device", device, "erp", erp, "previous_index", idx)
	}
	s.entries = slices.Insert(s.entries, 0, entry)

	return s.persist(ctx, op)
}

// Remove drops every entry for which match reports true and returns how many
// were dropped. Nothing is written when no entry matches.
func (s *historyService) Remove(ctx context.Context, match func(models.HistoryEntry) bool) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.entries)
	s.entries = slices.DeleteFunc(s.entries, match)
	removed := before - len(s.entries)
	if removed == 0 {
		return 0, nil
	}

	return removed, s.persist(ctx, "remove")
}

// Delete removes entries sharing entry's (timestamp, data) identity. Exact
// duplicates are indistinguishable and go together.
func (s *historyService) Delete(ctx context.Context, entry models.HistoryEntry) error {
	_, err := s.Remove(ctx, entry.SameAs)
	return err
}

// Clear empties the list and stores an empty array under the key.
func (s *historyService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = []models.HistoryEntry{}
	return s.persist(ctx, "clear")
}

// Purge empties the list and removes the key from the store.
func (s *historyService) Purge(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = []models.HistoryEntry{}
	if err := s.repo.Remove(ctx, s.key); err != nil {
		return s.warn(ctx, "purge", err)
	}
	return nil
}

// Entries returns a copy of the list, most recent first.
func (s *historyService) Entries() []models.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.entries)
}

// persist must be called with s.mu held.
func (s *historyService) persist(ctx context.Context, op string) error {
	raw, err := json.Marshal(s.entries)
	if err != nil {
		return s.warn(ctx, op, fmt.Errorf("encode history: %w", err))
	}
	if err := s.repo.Set(ctx, s.key, raw); err != nil {
		return s.warn(ctx, op, err)
	}
	return nil
}

func (s *historyService) warn(ctx context.Context, op string, err error) error {
	s.log.Warn(ctx, "history not persisted", "op", op, "error", err)
	return &PersistenceWarning{Op: op, Err: err}
}

// Search returns the Smart entries whose part number contains query, ignoring
// case. A blank query returns all entries; other sources never match a
// non-blank query.
func Search(entries []models.HistoryEntry, query string) []models.HistoryEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return slices.Clone(entries)
	}

	out := make([]models.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		if e.Source != models.SourceSmart {
			continue
		}
		part := payload.DecodeSmart(e.Data).PartNumber
		if strings.Contains(strings.ToLower(part), q) {
			out = append(out, e)
		}
	}
	return out
}
