package http

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/rcoelho/beachpro/internal/auth"
	"github.com/rcoelho/beachpro/internal/pubsub"
	"github.com/rcoelho/beachpro/internal/ranking"
	"github.com/rcoelho/beachpro/internal/tournament"
	"github.com/slack-go/slack"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) ClearStoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to clear entire store")
		s.Store.Clear()
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Store cleared!")
		log.Info("Store cleared successfully")
	}
}

// TournamentsHandler lists tournaments on GET and creates one on POST.
func (s *Server) TournamentsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			tournaments, err := s.Store.ListTournaments()
			if err != nil {
				respondError(w, err, "Failed to list tournaments")
				return
			}
			respondJSON(w, http.StatusOK, tournaments)
		case http.MethodPost:
			user, _ := auth.FromContext(r.Context())
			var body struct {
				Name string `json:"name"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				http.Error(w, "Invalid JSON", http.StatusBadRequest)
				return
			}
			t, err := s.Store.CreateTournament(body.Name, user.ID, user.DisplayName)
			if err != nil {
				respondError(w, err, "Failed to create tournament")
				return
			}
			s.Metrics.IncStoreWrites()
			s.Engine.Invalidate(t.ID)
			respondJSON(w, http.StatusCreated, t)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

func (s *Server) JoinTournamentHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		user, _ := auth.FromContext(r.Context())
		var body struct {
			TournamentID string `json:"tournament_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		member, err := s.Store.JoinTournament(body.TournamentID, user.ID, user.DisplayName)
		if err != nil {
			respondError(w, err, "Failed to join tournament")
			return
		}
		s.Metrics.IncStoreWrites()
		s.Engine.Invalidate(body.TournamentID)
		respondJSON(w, http.StatusOK, member)
	}
}

func (s *Server) ListMembersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tournamentID := r.URL.Query().Get("tournament")
		members, err := s.Store.ListMembers(tournamentID)
		if err != nil {
			respondError(w, err, "Failed to get members")
			return
		}
		respondJSON(w, http.StatusOK, members)
	}
}

// MatchesHandler lists matches on GET and registers a new result on POST.
// A user can only have one registration in flight at a time; concurrent
// submits are rejected with 409 rather than queued.
func (s *Server) MatchesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			tournamentID := r.URL.Query().Get("tournament")
			matches, err := s.Store.ListMatches(tournamentID)
			if err != nil {
				respondError(w, err, "Failed to get matches")
				return
			}
			respondJSON(w, http.StatusOK, matches)
		case http.MethodPost:
			s.registerMatch(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

func (s *Server) registerMatch(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.FromContext(r.Context())

	s.submitMu.Lock()
	if s.inflight[user.ID] {
		s.submitMu.Unlock()
		log.Warn("Rejected concurrent match registration", "userID", user.ID)
		http.Error(w, "A registration is already in progress", http.StatusConflict)
		return
	}
	s.inflight[user.ID] = true
	s.submitMu.Unlock()
	defer func() {
		s.submitMu.Lock()
		delete(s.inflight, user.ID)
		s.submitMu.Unlock()
	}()

	var body struct {
		TournamentID string `json:"tournament_id"`
		tournament.MatchInput
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	match, err := s.Store.AddMatch(body.TournamentID, user.ID, body.MatchInput)
	if err != nil {
		respondError(w, err, "Failed to register match")
		return
	}

	s.Metrics.IncMatchesRegistered()
	s.Metrics.IncStoreWrites()
	if err := s.pubsub.SendMessage(pubsub.EventMatchAdded, pubsub.TournamentEvent{
		Type:         pubsub.EventMatchAdded,
		TournamentID: body.TournamentID,
		ActorID:      user.ID,
	}); err != nil {
		log.Error("Failed to publish match-added event", "error", err, "tournamentID", body.TournamentID)
	}
	s.Engine.Invalidate(body.TournamentID)
	respondJSON(w, http.StatusCreated, match)
}

func (s *Server) RankingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tournamentID := r.URL.Query().Get("tournament")
		view, err := s.Engine.Ranking(tournamentID)
		if err != nil {
			respondError(w, err, "Failed to compute ranking")
			return
		}
		respondJSON(w, http.StatusOK, view)
	}
}

func (s *Server) FinanceHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tournamentID := r.URL.Query().Get("tournament")
		view, err := s.Engine.Finance(tournamentID)
		if err != nil {
			respondError(w, err, "Failed to compute finance totals")
			return
		}
		respondJSON(w, http.StatusOK, view)
	}
}

// ToggleWeekPaidHandler flips one played week's payment flag for a member.
// Admin only.
func (s *Server) ToggleWeekPaidHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var body struct {
			TournamentID string `json:"tournament_id"`
			MemberID     string `json:"member_id"`
			WeekKey      string `json:"week_key"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		user, _ := auth.FromContext(r.Context())
		if !s.isAdmin(body.TournamentID, user.ID) {
			http.Error(w, "Admin role required", http.StatusForbidden)
			return
		}

		member, err := s.Store.ToggleWeekPaid(body.TournamentID, body.MemberID, body.WeekKey)
		if err != nil {
			respondError(w, err, "Failed to toggle week payment")
			return
		}
		s.Metrics.IncStoreWrites()
		if err := s.pubsub.SendMessage(pubsub.EventWeekPaidToggled, pubsub.TournamentEvent{
			Type:         pubsub.EventWeekPaidToggled,
			TournamentID: body.TournamentID,
			ActorID:      user.ID,
		}); err != nil {
			log.Error("Failed to publish week-paid-toggled event", "error", err, "tournamentID", body.TournamentID)
		}
		s.Engine.Invalidate(body.TournamentID)
		respondJSON(w, http.StatusOK, member)
	}
}

// RulesHandler returns a tournament's rules on GET and replaces them on
// POST. Updates are admin only and apply retroactively.
func (s *Server) RulesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			tournamentID := r.URL.Query().Get("tournament")
			t, err := s.Store.GetTournament(tournamentID)
			if err != nil {
				respondError(w, err, "Failed to get tournament")
				return
			}
			respondJSON(w, http.StatusOK, t.Rules)
		case http.MethodPost:
			var body struct {
				TournamentID string `json:"tournament_id"`
				ranking.Rules
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				http.Error(w, "Invalid JSON", http.StatusBadRequest)
				return
			}
			user, _ := auth.FromContext(r.Context())
			if !s.isAdmin(body.TournamentID, user.ID) {
				http.Error(w, "Admin role required", http.StatusForbidden)
				return
			}
			if err := s.Store.SetRules(body.TournamentID, body.Rules); err != nil {
				respondError(w, err, "Failed to update rules")
				return
			}
			s.Metrics.IncStoreWrites()
			if err := s.pubsub.SendMessage(pubsub.EventRulesUpdated, pubsub.TournamentEvent{
				Type:         pubsub.EventRulesUpdated,
				TournamentID: body.TournamentID,
				ActorID:      user.ID,
			}); err != nil {
				log.Error("Failed to publish rules-updated event", "error", err, "tournamentID", body.TournamentID)
			}
			s.Engine.Invalidate(body.TournamentID)
			respondJSON(w, http.StatusOK, body.Rules)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}
}

// MemberRoleHandler promotes or demotes a member. Admin only.
func (s *Server) MemberRoleHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var body struct {
			TournamentID string       `json:"tournament_id"`
			MemberID     string       `json:"member_id"`
			Role         ranking.Role `json:"role"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		user, _ := auth.FromContext(r.Context())
		if !s.isAdmin(body.TournamentID, user.ID) {
			http.Error(w, "Admin role required", http.StatusForbidden)
			return
		}
		if err := s.Store.SetMemberRole(body.TournamentID, body.MemberID, body.Role); err != nil {
			respondError(w, err, "Failed to update member role")
			return
		}
		s.Metrics.IncStoreWrites()
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	}
}

func (s *Server) NotifyRankingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tournamentID := r.URL.Query().Get("tournament")
		isDryRun := isDryRunFromContext(r)

		t, err := s.Store.GetTournament(tournamentID)
		if err != nil {
			respondError(w, err, "Failed to get tournament")
			return
		}
		view, err := s.Engine.Ranking(tournamentID)
		if err != nil {
			respondError(w, err, "Failed to compute ranking")
			return
		}
		if err := s.Notifier.SendRankingUpdate(t.Name, view.Standings, view.Rules, isDryRun); err != nil {
			respondError(w, err, "Failed to send ranking notification")
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "Ranking notification sent.")
	}
}

func (s *Server) NotifyRemindersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tournamentID := r.URL.Query().Get("tournament")
		isDryRun := isDryRunFromContext(r)

		t, err := s.Store.GetTournament(tournamentID)
		if err != nil {
			respondError(w, err, "Failed to get tournament")
			return
		}
		view, err := s.Engine.Ranking(tournamentID)
		if err != nil {
			respondError(w, err, "Failed to compute ranking")
			return
		}

		var debtors []ranking.Standing
		for _, st := range view.Standings {
			if len(st.Stats.UnpaidWeeks) > 0 {
				debtors = append(debtors, st)
			}
		}
		if err := s.Notifier.SendPaymentReminder(t.Name, debtors, view.Rules, isDryRun); err != nil {
			respondError(w, err, "Failed to send payment reminders")
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "Reminders sent for %d member(s).\n", len(debtors))
	}
}

// EventsHandler receives Pub/Sub push deliveries and schedules a
// recomputation for the tournament the event belongs to.
func (s *Server) EventsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		bodyBytes, err := io.ReadAll(r.Body)
		if err != nil {
			log.Error("Failed to read request body", "error", err)
			http.Error(w, "Failed to read request body", http.StatusInternalServerError)
			return
		}
		log.Debug("Received tournament event message", "body", string(bodyBytes))
		// Define a small struct to decode the incoming JSON's `data` field
		var pubsubMsg struct {
			Subscription string `json:"subscription"`
			Message      struct {
				Data string `json:"data"` // base64-encoded message payload
			} `json:"message"`
		}

		// Parse the outer JSON to get `data`
		if err := json.Unmarshal(bodyBytes, &pubsubMsg); err != nil {
			log.Error("Failed to unmarshal wrapper JSON", "error", err)
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		// Decode base64 to raw MessagePack bytes
		rawData, err := base64.StdEncoding.DecodeString(pubsubMsg.Message.Data)
		if err != nil {
			log.Error("Failed to decode base64 data", "error", err)
			http.Error(w, "Invalid base64 data", http.StatusBadRequest)
			return
		}
		event := pubsub.TournamentEvent{}
		if err := s.pubsub.ProcessMessage(rawData, &event); err != nil {
			log.Error("Failed to decode tournament event", "error", err)
			http.Error(w, "Invalid event payload", http.StatusBadRequest)
			return
		}
		if event.TournamentID != "" {
			s.Engine.Invalidate(event.TournamentID)
		}
		w.Write([]byte("OK"))
	}
}

// RankingCommandHandler returns a handler for the /ranking Slack command.
func (s *Server) RankingCommandHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Error parsing form", http.StatusBadRequest)
			return
		}
		tournamentID := r.FormValue("text")
		if tournamentID == "" {
			http.Error(w, "Tournament id is required.", http.StatusBadRequest)
			return
		}

		log.Info("Received ranking command", "tournamentID", tournamentID)

		t, err := s.Store.GetTournament(tournamentID)
		if err != nil {
			respondError(w, err, "Failed to get tournament")
			return
		}
		view, err := s.Engine.Ranking(tournamentID)
		if err != nil {
			respondError(w, err, "Failed to compute ranking")
			return
		}

		msg, err := s.Notifier.FormatRankingResponse(t.Name, view.Standings, view.Rules)
		if err != nil {
			http.Error(w, "Failed to format ranking", http.StatusInternalServerError)
			log.Error("Failed to format ranking", "error", err)
			return
		}

		slackMsg, ok := msg.(slack.Message)
		if !ok {
			http.Error(w, "Invalid message format for Slack", http.StatusInternalServerError)
			log.Error("Failed to cast message to slack.Message")
			return
		}
		respondWithSlackMsg(w, slackMsg)
	}
}

// isAdmin reports whether the user administers the given tournament.
func (s *Server) isAdmin(tournamentID, userID string) bool {
	member, err := s.Store.GetMemberByUser(tournamentID, userID)
	if err != nil {
		return false
	}
	return member.Role == ranking.RoleAdmin
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

// respondWithSlackMsg is a helper to format and write a Slack message as an HTTP response.
func respondWithSlackMsg(w http.ResponseWriter, msg slack.Message) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		log.Error("Failed to encode slack message to JSON", "error", err)
	}
}

// respondError maps store errors onto HTTP status codes.
func respondError(w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, tournament.ErrNotFound):
		http.Error(w, msg, http.StatusNotFound)
	case errors.Is(err, tournament.ErrInvalidInput):
		http.Error(w, fmt.Sprintf("%s: %v", msg, err), http.StatusBadRequest)
	default:
		http.Error(w, msg, http.StatusInternalServerError)
	}
	log.Error(msg, "error", err)
}
