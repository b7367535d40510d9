// Package services holds the history store: the ordered, most-recent-first
// list of generated and scanned codes mirrored to a single blob.
//
// The in-memory list is authoritative for the session. Every mutation
// rewrites the whole blob; a failed write comes back as a *PersistenceWarning
// after the list has already changed.
package services
