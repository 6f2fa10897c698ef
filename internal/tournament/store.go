package tournament

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/rcoelho/beachpro/internal/ranking"
)

// New creates a new tournament Store.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

func (s *store) CreateTournament(name, creatorID, creatorName string) (Tournament, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" || creatorID == "" {
		return Tournament{}, fmt.Errorf("%w: tournament name and creator are required", ErrInvalidInput)
	}

	t := Tournament{
		ID:            uuid.NewString(),
		Name:          name,
		CreatedBy:     creatorID,
		CreatedByName: creatorName,
		CreatedAt:     time.Now().Unix(),
		FeeModel:      ranking.FeeModelPerWeek,
		Rules:         ranking.DefaultRules,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return Tournament{}, err
	}

	_, err = tx.Exec(`
		INSERT INTO tournaments (id, name, created_by, created_by_name, created_at, fee_model, min_wins, min_games, weekly_fee)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, t.ID, t.Name, t.CreatedBy, t.CreatedByName, t.CreatedAt, t.FeeModel, t.Rules.MinWins, t.Rules.MinGames, t.Rules.WeeklyFee)
	if err != nil {
		tx.Rollback()
		return Tournament{}, err
	}

	// The creator is enrolled immediately and administers the tournament.
	_, err = tx.Exec(`
		INSERT INTO members (id, tournament_id, user_id, name, role, paid_weeks_json, joined_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, uuid.NewString(), t.ID, creatorID, creatorName, ranking.RoleAdmin, "[]", t.CreatedAt)
	if err != nil {
		tx.Rollback()
		return Tournament{}, err
	}

	if err := tx.Commit(); err != nil {
		return Tournament{}, err
	}
	log.Info("Created tournament", "tournamentID", t.ID, "name", t.Name, "createdBy", creatorID)
	return t, nil
}

func (s *store) ListTournaments() ([]Tournament, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, name, created_by, created_by_name, created_at, fee_model, min_wins, min_games, weekly_fee
		FROM tournaments ORDER BY created_at
	`)
	if err != nil {
		log.Error("Failed to query tournaments", "error", err)
		return nil, err
	}
	defer rows.Close()

	var tournaments []Tournament
	for rows.Next() {
		t, err := scanTournament(rows)
		if err != nil {
			log.Error("Failed to scan tournament row", "error", err)
			continue
		}
		tournaments = append(tournaments, t)
	}
	return tournaments, nil
}

func (s *store) GetTournament(tournamentID string) (Tournament, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getTournamentLocked(tournamentID)
}

func (s *store) getTournamentLocked(tournamentID string) (Tournament, error) {
	row := s.db.QueryRow(`
		SELECT id, name, created_by, created_by_name, created_at, fee_model, min_wins, min_games, weekly_fee
		FROM tournaments WHERE id = ?
	`, tournamentID)
	t, err := scanTournament(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Tournament{}, fmt.Errorf("tournament %s: %w", tournamentID, ErrNotFound)
		}
		return Tournament{}, err
	}
	return t, nil
}

// JoinTournament enrolls a user as a player. Joining a tournament you are
// already a member of is a no-op and returns the existing membership.
func (s *store) JoinTournament(tournamentID, userID, displayName string) (ranking.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if userID == "" {
		return ranking.Member{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if _, err := s.getTournamentLocked(tournamentID); err != nil {
		return ranking.Member{}, err
	}

	existing, err := s.getMemberByUserLocked(tournamentID, userID)
	if err == nil {
		return existing, nil
	}

	m := ranking.Member{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      displayName,
		Role:      ranking.RolePlayer,
		PaidWeeks: []string{},
		JoinedAt:  time.Now().Unix(),
	}
	_, err = s.db.Exec(`
		INSERT INTO members (id, tournament_id, user_id, name, role, paid_weeks_json, joined_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, m.ID, tournamentID, m.UserID, m.Name, m.Role, "[]", m.JoinedAt)
	if err != nil {
		return ranking.Member{}, err
	}
	log.Info("Member joined tournament", "tournamentID", tournamentID, "memberID", m.ID, "name", m.Name)
	return m, nil
}

// ListMembers returns members in enrollment order, the tie-break order the
// ranking uses.
func (s *store) ListMembers(tournamentID string) ([]ranking.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listMembersLocked(tournamentID)
}

func (s *store) listMembersLocked(tournamentID string) ([]ranking.Member, error) {
	rows, err := s.db.Query(`
		SELECT id, user_id, name, role, paid, amount, paid_weeks_json, joined_at
		FROM members WHERE tournament_id = ? ORDER BY joined_at, id
	`, tournamentID)
	if err != nil {
		log.Error("Failed to query members", "error", err, "tournamentID", tournamentID)
		return nil, err
	}
	defer rows.Close()

	var members []ranking.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			log.Error("Failed to scan member row", "error", err)
			continue
		}
		members = append(members, m)
	}
	return members, nil
}

func (s *store) GetMember(tournamentID, memberID string) (ranking.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getMemberLocked(tournamentID, memberID)
}

func (s *store) getMemberLocked(tournamentID, memberID string) (ranking.Member, error) {
	row := s.db.QueryRow(`
		SELECT id, user_id, name, role, paid, amount, paid_weeks_json, joined_at
		FROM members WHERE tournament_id = ? AND id = ?
	`, tournamentID, memberID)
	m, err := scanMember(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return ranking.Member{}, fmt.Errorf("member %s: %w", memberID, ErrNotFound)
		}
		return ranking.Member{}, err
	}
	return m, nil
}

func (s *store) GetMemberByUser(tournamentID, userID string) (ranking.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getMemberByUserLocked(tournamentID, userID)
}

func (s *store) getMemberByUserLocked(tournamentID, userID string) (ranking.Member, error) {
	row := s.db.QueryRow(`
		SELECT id, user_id, name, role, paid, amount, paid_weeks_json, joined_at
		FROM members WHERE tournament_id = ? AND user_id = ?
	`, tournamentID, userID)
	m, err := scanMember(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return ranking.Member{}, fmt.Errorf("user %s: %w", userID, ErrNotFound)
		}
		return ranking.Member{}, err
	}
	return m, nil
}

// ListMatches returns matches ordered by effective date, oldest first.
func (s *store) ListMatches(tournamentID string) ([]ranking.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listMatchesLocked(tournamentID)
}

func (s *store) listMatchesLocked(tournamentID string) ([]ranking.Match, error) {
	rows, err := s.db.Query(`
		SELECT id, date, p1a, p1b, p2a, p2b, score1, score2, week_key, registered_by, created_at
		FROM matches WHERE tournament_id = ? ORDER BY COALESCE(NULLIF(date, ''), date(created_at, 'unixepoch')), created_at, id
	`, tournamentID)
	if err != nil {
		log.Error("Failed to query matches", "error", err, "tournamentID", tournamentID)
		return nil, err
	}
	defer rows.Close()

	var matches []ranking.Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			log.Error("Failed to scan match row", "error", err)
			continue
		}
		matches = append(matches, m)
	}
	return matches, nil
}

// AddMatch validates and persists a new match result. Matches are append
// only; there is no update or delete path.
func (s *store) AddMatch(tournamentID, registeredBy string, input MatchInput) (ranking.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validateMatchInput(input); err != nil {
		return ranking.Match{}, err
	}
	if _, err := s.getTournamentLocked(tournamentID); err != nil {
		return ranking.Match{}, err
	}

	m := ranking.Match{
		ID:           uuid.NewString(),
		Date:         input.Date,
		P1A:          strings.TrimSpace(input.P1A),
		P1B:          strings.TrimSpace(input.P1B),
		P2A:          strings.TrimSpace(input.P2A),
		P2B:          strings.TrimSpace(input.P2B),
		Score1:       input.Score1,
		Score2:       input.Score2,
		RegisteredBy: registeredBy,
		CreatedAt:    time.Now().Unix(),
	}
	m.WeekKey = ranking.WeekKeyFor(m.EffectiveDate())

	_, err := s.db.Exec(`
		INSERT INTO matches (id, tournament_id, date, p1a, p1b, p2a, p2b, score1, score2, week_key, registered_by, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, m.ID, tournamentID, m.Date, m.P1A, m.P1B, m.P2A, m.P2B, m.Score1, m.Score2, m.WeekKey, m.RegisteredBy, m.CreatedAt)
	if err != nil {
		return ranking.Match{}, err
	}
	log.Info("Registered match", "tournamentID", tournamentID, "matchID", m.ID, "weekKey", m.WeekKey)
	return m, nil
}

func validateMatchInput(input MatchInput) error {
	if strings.TrimSpace(input.P1A) == "" || strings.TrimSpace(input.P2A) == "" {
		return fmt.Errorf("%w: both sides need at least one player", ErrInvalidInput)
	}
	if input.Score1 < 0 || input.Score2 < 0 {
		return fmt.Errorf("%w: scores cannot be negative", ErrInvalidInput)
	}
	if input.Date != "" {
		if _, err := time.Parse(ranking.DateLayout, input.Date); err != nil {
			return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
		}
	}
	return nil
}

// ToggleWeekPaid flips one week's paid status for a member and returns the
// updated member.
func (s *store) ToggleWeekPaid(tournamentID, memberID, weekKey string) (ranking.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if weekKey == "" {
		return ranking.Member{}, fmt.Errorf("%w: week key is required", ErrInvalidInput)
	}

	m, err := s.getMemberLocked(tournamentID, memberID)
	if err != nil {
		return ranking.Member{}, err
	}

	m.PaidWeeks = ranking.ToggleWeek(m.PaidWeeks, weekKey)
	paidWeeksJSON, err := json.Marshal(m.PaidWeeks)
	if err != nil {
		return ranking.Member{}, err
	}

	_, err = s.db.Exec("UPDATE members SET paid_weeks_json = ? WHERE id = ?", string(paidWeeksJSON), m.ID)
	if err != nil {
		return ranking.Member{}, err
	}
	log.Info("Toggled week payment", "tournamentID", tournamentID, "memberID", memberID, "weekKey", weekKey)
	return m, nil
}

// SetRules replaces a tournament's qualification thresholds. The change
// applies retroactively to every week.
func (s *store) SetRules(tournamentID string, rules ranking.Rules) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rules.MinWins < 0 || rules.MinGames < 0 || rules.WeeklyFee < 0 {
		return fmt.Errorf("%w: rules values cannot be negative", ErrInvalidInput)
	}

	res, err := s.db.Exec(`
		UPDATE tournaments SET min_wins = ?, min_games = ?, weekly_fee = ? WHERE id = ?
	`, rules.MinWins, rules.MinGames, rules.WeeklyFee, tournamentID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("tournament %s: %w", tournamentID, ErrNotFound)
	}
	log.Info("Updated tournament rules", "tournamentID", tournamentID, "minWins", rules.MinWins, "minGames", rules.MinGames, "weeklyFee", rules.WeeklyFee)
	return nil
}

func (s *store) SetMemberRole(tournamentID, memberID string, role ranking.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if role != ranking.RolePlayer && role != ranking.RoleAdmin {
		return fmt.Errorf("%w: unknown role %q", ErrInvalidInput, role)
	}

	res, err := s.db.Exec("UPDATE members SET role = ? WHERE tournament_id = ? AND id = ?", role, tournamentID, memberID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("member %s: %w", memberID, ErrNotFound)
	}
	log.Info("Updated member role", "tournamentID", tournamentID, "memberID", memberID, "role", role)
	return nil
}

// Snapshot reads the tournament, its members and its matches under a single
// read lock so recomputation sees a consistent state.
func (s *store) Snapshot(tournamentID string) (Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, err := s.getTournamentLocked(tournamentID)
	if err != nil {
		return Snapshot{}, err
	}
	members, err := s.listMembersLocked(tournamentID)
	if err != nil {
		return Snapshot{}, err
	}
	matches, err := s.listMatchesLocked(tournamentID)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Tournament: t, Members: members, Matches: matches}, nil
}

func (s *store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		log.Error("Failed to begin transaction for clearing store", "error", err)
		return
	}

	for _, table := range []string{"matches", "members", "tournaments"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			log.Error("Failed to clear table", "error", err, "table", table)
			tx.Rollback()
			return
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("Failed to commit transaction for clearing store", "error", err)
	}
}

func scanTournament(scanner interface{ Scan(...any) error }) (Tournament, error) {
	var t Tournament
	err := scanner.Scan(
		&t.ID, &t.Name, &t.CreatedBy, &t.CreatedByName, &t.CreatedAt,
		&t.FeeModel, &t.Rules.MinWins, &t.Rules.MinGames, &t.Rules.WeeklyFee,
	)
	if err != nil {
		return Tournament{}, err
	}
	return t, nil
}

func scanMember(scanner interface{ Scan(...any) error }) (ranking.Member, error) {
	var m ranking.Member
	var paidWeeksJSON sql.NullString
	err := scanner.Scan(&m.ID, &m.UserID, &m.Name, &m.Role, &m.Paid, &m.Amount, &paidWeeksJSON, &m.JoinedAt)
	if err != nil {
		return ranking.Member{}, err
	}

	m.PaidWeeks = []string{}
	if paidWeeksJSON.Valid && paidWeeksJSON.String != "" {
		if err := json.Unmarshal([]byte(paidWeeksJSON.String), &m.PaidWeeks); err != nil {
			log.Error("Failed to unmarshal paid_weeks_json", "error", err, "memberID", m.ID)
		}
	}
	return m, nil
}

func scanMatch(scanner interface{ Scan(...any) error }) (ranking.Match, error) {
	var m ranking.Match
	var date, p1b, p2b sql.NullString
	err := scanner.Scan(
		&m.ID, &date, &m.P1A, &p1b, &m.P2A, &p2b,
		&m.Score1, &m.Score2, &m.WeekKey, &m.RegisteredBy, &m.CreatedAt,
	)
	if err != nil {
		return ranking.Match{}, err
	}
	m.Date = date.String
	m.P1B = p1b.String
	m.P2B = p2b.String
	return m, nil
}
