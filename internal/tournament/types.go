package tournament

import (
	"database/sql"
	"errors"
	"sync"

	"github.com/rcoelho/beachpro/internal/ranking"
)

// store handles all database operations for tournaments.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Tournament is the top-level container a group of players competes in.
type Tournament struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	CreatedBy     string           `json:"created_by"`
	CreatedByName string           `json:"created_by_name"`
	CreatedAt     int64            `json:"created_at"`
	FeeModel      ranking.FeeModel `json:"fee_model"`
	Rules         ranking.Rules    `json:"rules"`
}

// MatchInput carries the caller-supplied fields of a new match. The store
// fills in the ID, week key, registrar and creation timestamp.
type MatchInput struct {
	Date   string `json:"date"`
	P1A    string `json:"p1a"`
	P1B    string `json:"p1b,omitempty"`
	P2A    string `json:"p2a"`
	P2B    string `json:"p2b,omitempty"`
	Score1 int    `json:"score1"`
	Score2 int    `json:"score2"`
}

// Snapshot bundles everything needed to compute a tournament's views in a
// single consistent read.
type Snapshot struct {
	Tournament Tournament
	Members    []ranking.Member
	Matches    []ranking.Match
}

var (
	// ErrNotFound is returned when a tournament, member or match does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned when a write fails validation.
	ErrInvalidInput = errors.New("invalid input")
)
