// Package leaderboard keeps a fixed-size ranking of the best runs.
//
// The board always holds exactly Capacity entries sorted by score,
// highest first. Empty slots are zero-score placeholders; they take part
// in ranking but are hidden by Visible.
package leaderboard

import "slices"

// Capacity is the number of slots on the board.
const Capacity = 10

// AnonymousName is used for runs finished without a player name.
const AnonymousName = "Anonymous"

// Entry is a single ranked score.
type Entry struct {
	Name  string
	Score int
}

// Leaderboard is a top-N ranking. It is not safe for concurrent use;
// every game world owns its own board.
type Leaderboard struct {
	entries []Entry
}

// New returns a board filled with zero-score placeholders.
func New() *Leaderboard {
	return &Leaderboard{entries: make([]Entry, Capacity)}
}

// AddScore ranks a new entry and evicts the lowest one.
//
// The entry goes after every existing entry with a score greater than or
// equal to its own, so ties keep insertion order. Negative scores are
// treated as zero. The returned rank is 1-based, or 0 when the entry did
// not make the board.
func (l *Leaderboard) AddScore(name string, score int) int {
	score = max(score, 0)

	pos := len(l.entries)
	for i, e := range l.entries {
		if e.Score < score {
			pos = i
			break
		}
	}
	if pos >= Capacity {
		return 0
	}

	l.entries = slices.Insert(l.entries, pos, Entry{Name: name, Score: score})
	l.entries = l.entries[:Capacity]
	return pos + 1
}

// Entries returns a copy of all slots, highest score first.
func (l *Leaderboard) Entries() []Entry {
	return slices.Clone(l.entries)
}

// Visible returns the entries worth showing: those with a positive score.
func (l *Leaderboard) Visible() []Entry {
	out := make([]Entry, 0, len(l.entries))
	for _, e := range l.entries {
		if e.Score > 0 {
			out = append(out, e)
		}
	}
	return out
}

// Len is always Capacity.
func (l *Leaderboard) Len() int {
	return len(l.entries)
}

// Top returns the best entry.
func (l *Leaderboard) Top() Entry {
	return l.entries[0]
}

// Min returns the lowest entry still on the board.
func (l *Leaderboard) Min() Entry {
	return l.entries[len(l.entries)-1]
}

// Seed rebuilds the board from previously recorded entries, in the order
// given. Anything beyond the capacity is ranked and evicted as usual.
func (l *Leaderboard) Seed(entries []Entry) {
	l.entries = make([]Entry, Capacity)
	for _, e := range entries {
		l.AddScore(e.Name, e.Score)
	}
}
