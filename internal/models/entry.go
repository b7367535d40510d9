// Package models defines the history entry types shared by the codec, the
// history service and the CLI.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Source identifies which payload codec produced an entry's data.
type Source string

const (
	SourceText  Source = "gtext"
	SourceSmart Source = "gsmart"
	SourceIcBin Source = "icbin"
)

// Valid reports whether s is one of the known sources.
func (s Source) Valid() bool {
	switch s {
	case SourceText, SourceSmart, SourceIcBin:
		return true
	}
	return false
}

// Labels attached to entries by the generators and the scanner.
const (
	LabelText         = "Text QR"
	LabelSmart        = "Smart QR"
	LabelIcBin        = "IC BIN"
	LabelScannedText  = "QR scan"
	LabelScannedSmart = "Scanned Smart QR"
	LabelScannedIcBin = "Scanned IC BIN"
)

// TimestampLayout renders creation times the way the history list shows them.
const TimestampLayout = "1/2/2006, 3:04:05 PM"

// HistoryEntry is one generated or scanned QR event.
//
// Entries are never edited in place. Timestamp is a display string fixed at
// creation and, together with Data, is what identifies an entry for deletion.
type HistoryEntry struct {
	// ID is informational; matching never relies on it.
	ID        string `json:"id,omitempty"`
	Label     string `json:"label"`
	Data      string `json:"data"`
	Timestamp string `json:"timestamp"`
	Source    Source `json:"source"`
}

// NewEntry builds an entry stamped with now.
func NewEntry(source Source, label, data string, now time.Time) HistoryEntry {
	return HistoryEntry{
		ID:        uuid.NewString(),
		Label:     label,
		Data:      data,
		Timestamp: now.Format(TimestampLayout),
		Source:    source,
	}
}

// SameAs reports whether e and other share the (timestamp, data) identity.
func (e HistoryEntry) SameAs(other HistoryEntry) bool {
	return e.Timestamp == other.Timestamp && e.Data == other.Data
}
