package services

import (
	"sync"

	"github.com/custodia-labs/vibeyf-cli/internal/core/domain"
)

// Transcript is the append-only conversation log of one run.
type Transcript struct {
	mu       sync.RWMutex
	entries  []domain.TranscriptEntry
	observer func(domain.TranscriptEntry)
}

// NewTranscript creates an empty transcript. The observer, if non-nil,
// is called with every appended entry.
func NewTranscript(observer func(domain.TranscriptEntry)) *Transcript {
	return &Transcript{observer: observer}
}

// Append adds an entry, assigning its sequence number.
func (t *Transcript) Append(entry domain.TranscriptEntry) domain.TranscriptEntry {
	t.mu.Lock()
	entry.Seq = len(t.entries)
	t.entries = append(t.entries, entry)
	observer := t.observer
	t.mu.Unlock()

	if observer != nil {
		observer(entry)
	}
	return entry
}

// AppendBot adds a bot message of the given kind.
func (t *Transcript) AppendBot(kind domain.EntryKind, text string) domain.TranscriptEntry {
	return t.Append(domain.TranscriptEntry{Origin: domain.OriginBot, Kind: kind, Text: text})
}

// AppendUser adds a user answer.
func (t *Transcript) AppendUser(text string) domain.TranscriptEntry {
	return t.Append(domain.TranscriptEntry{Origin: domain.OriginUser, Kind: domain.EntryAnswer, Text: text})
}

// Entries returns a copy of the log.
func (t *Transcript) Entries() []domain.TranscriptEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]domain.TranscriptEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of entries.
func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}
