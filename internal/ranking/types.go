package ranking

// Role controls what a member is allowed to mutate. Admins can mark
// payments, edit rules and promote other members.
type Role string

const (
	RolePlayer Role = "player"
	RoleAdmin  Role = "admin"
)

// FeeModel selects which qualification/fee generation a tournament runs on.
// Older tournaments carry a single paid flag and a flat amount per member;
// newer ones track payment per played week.
type FeeModel string

const (
	FeeModelPerWeek FeeModel = "per_week"
	FeeModelFlat    FeeModel = "flat"
)

// Member is a player enrolled in one tournament.
type Member struct {
	ID        string   `json:"id"`
	UserID    string   `json:"user_id"`
	Name      string   `json:"name"`
	Role      Role     `json:"role"`
	PaidWeeks []string `json:"paid_weeks"`
	// Legacy flat-fee fields, only meaningful when the tournament's
	// fee model is FeeModelFlat.
	Paid     bool    `json:"paid"`
	Amount   float64 `json:"amount"`
	JoinedAt int64   `json:"joined_at"`
}

// Match is one recorded result. Side A is P1A (+P1B for doubles),
// side B is P2A (+P2B). Scores are sets won. Matches are never mutated
// after creation.
type Match struct {
	ID           string `json:"id"`
	Date         string `json:"date"` // YYYY-MM-DD, may be empty on legacy rows
	P1A          string `json:"p1a"`
	P1B          string `json:"p1b,omitempty"`
	P2A          string `json:"p2a"`
	P2B          string `json:"p2b,omitempty"`
	Score1       int    `json:"score1"`
	Score2       int    `json:"score2"`
	WeekKey      string `json:"week_key"`
	RegisteredBy string `json:"registered_by"`
	CreatedAt    int64  `json:"created_at"`
}

// Rules holds the qualification thresholds for one tournament. A rules
// update is a full replace and applies retroactively to all past weeks.
type Rules struct {
	MinWins   int     `json:"min_wins"`
	MinGames  int     `json:"min_games"`
	WeeklyFee float64 `json:"weekly_fee"`
}

// DefaultRules applies when a tournament has never been configured.
var DefaultRules = Rules{MinWins: 3, MinGames: 5, WeeklyFee: 10}

// Side identifies which side of a match a player is on.
type Side int

const (
	SideNone Side = iota
	SideA
	SideB
)

// PlayerStats is the per-member aggregate derived from the full match
// list. It is recomputed on every read and never persisted.
type PlayerStats struct {
	Played      int      `json:"played"`
	Wins        int      `json:"wins"`
	WeeksPlayed []string `json:"weeks_played"`
	PaidWeeks   []string `json:"paid_weeks"`
	UnpaidWeeks []string `json:"unpaid_weeks"`
}

// Standing is one row of the ranking view-model.
type Standing struct {
	Member
	Stats     PlayerStats `json:"stats"`
	Qualified bool        `json:"qualified"`
	// Rank is 1..N over qualified members in sort order; 0 is the
	// placeholder for members that do not qualify.
	Rank int `json:"rank"`
	// Missing is the single highest-priority unmet requirement, empty
	// when qualified.
	Missing string `json:"missing,omitempty"`
}

// FinanceTotals is the tournament-wide fee summary.
type FinanceTotals struct {
	Collected float64 `json:"collected"`
	Pending   float64 `json:"pending"`
}
