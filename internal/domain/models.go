package domain

import (
	"time"
)

// ScoreRecord is one persisted submission. Rows are immutable once stored.
type ScoreRecord struct {
	ID          int64
	Initials    string
	Score       int64
	PlayerID    string
	SubmittedAt time.Time
}

// Submission carries the fields exactly as the client sent them. The raw
// timestamp text is kept because the digest is computed over it.
type Submission struct {
	Initials      string
	Score         int64
	PlayerID      string
	TimestampText string
	Digest        string
}

type LeaderboardEntry struct {
	Initials         string
	Score            int64
	DisplayTimestamp string
}

type RawLeaderboardEntry struct {
	Initials    string
	Score       int64
	SubmittedAt int64 // epoch seconds
}

// Page bounds a per-player query. A zero Limit means no bound.
type Page struct {
	Limit  int
	Offset int
}
