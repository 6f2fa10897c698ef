package slack

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rcoelho/beachpro/internal/metrics"
	"github.com/rcoelho/beachpro/internal/notifier"
	"github.com/rcoelho/beachpro/internal/ranking"
	"github.com/slack-go/slack"
)

// slackClient is an interface that contains the methods from the slack.Client that we use.
// This allows for easy mocking in tests.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ notifier.Notifier = &Notifier{}

// Notifier handles sending notifications to Slack.
type Notifier struct {
	api       slackClient
	channelID string
	metrics   metrics.Metrics
}

// NewNotifier creates a new Notifier.
func NewNotifier(token, channelID string, metrics metrics.Metrics) *Notifier {
	api := slack.New(token)
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

// NewNotifierWithAPI creates a new Notifier with a specific slack.Client instance.
// Useful for tests that need to intercept API calls.
func NewNotifierWithAPI(api slackClient, channelID string, metrics metrics.Metrics) *Notifier {
	return &Notifier{
		api:       api,
		channelID: channelID,
		metrics:   metrics,
	}
}

func (s *Notifier) sendMessage(message slack.Message, dryRun bool) (string, string, error) {
	if dryRun {
		jsonMsg, _ := json.MarshalIndent(message, "", "  ")
		log.Info("[Dry Run] Would send Slack message", "channel", s.channelID, "message", string(jsonMsg))
		return "dry-run-ts", "dry-run-thread-ts", nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	channelID, timestamp, err := s.api.PostMessageContext(
		ctx,
		s.channelID,
		slack.MsgOptionBlocks(message.Blocks.BlockSet...),
		slack.MsgOptionAsUser(true),
	)

	if err != nil {
		s.metrics.IncSlackNotifFailed()
		log.Error("Failed to send Slack message", "error", err, "channel", channelID)
		return "", "", fmt.Errorf("failed to post message: %w", err)
	}

	s.metrics.IncSlackNotifSent()
	log.Info("Successfully sent Slack message", "channel", channelID, "timestamp", timestamp)
	return channelID, timestamp, nil
}

// Implement the Notifier interface
func (s *Notifier) SendRankingUpdate(tournamentName string, standings []ranking.Standing, rules ranking.Rules, dryRun bool) error {
	msg := s.formatRanking(tournamentName, standings, rules)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

func (s *Notifier) SendPaymentReminder(tournamentName string, debtors []ranking.Standing, rules ranking.Rules, dryRun bool) error {
	msg := s.formatPaymentReminder(tournamentName, debtors, rules)
	_, _, err := s.sendMessage(msg, dryRun)
	return err
}

// FormatRankingResponse formats a ranking message for a slash command response.
func (s *Notifier) FormatRankingResponse(tournamentName string, standings []ranking.Standing, rules ranking.Rules) (any, error) {
	return s.formatRanking(tournamentName, standings, rules), nil
}

// formatRanking creates a Slack message to display the tournament ranking using Block Kit.
func (s *Notifier) formatRanking(tournamentName string, standings []ranking.Standing, rules ranking.Rules) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header
	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("🏆 %s — Ranking 🏆", tournamentName), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(standings) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "No members yet. Go play some matches!", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	for _, st := range standings {
		var medal string
		switch st.Rank {
		case 1:
			medal = "🥇 "
		case 2:
			medal = "🥈 "
		case 3:
			medal = "🥉 "
		}

		// Unqualified members keep a placeholder instead of a rank number.
		position := "—"
		if st.Qualified {
			position = fmt.Sprintf("%d", st.Rank)
		}

		line := fmt.Sprintf("%s. %s%s\n> Wins: %d/%d | Played: %d/%d | Weeks: %d",
			position,
			medal,
			st.Name,
			st.Stats.Wins,
			rules.MinWins,
			st.Stats.Played,
			rules.MinGames,
			len(st.Stats.WeeksPlayed),
		)
		if st.Missing != "" {
			line += fmt.Sprintf(" | Needs: %s", st.Missing)
		}
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", line, true, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatPaymentReminder creates a Slack message listing members with unpaid weeks.
func (s *Notifier) formatPaymentReminder(tournamentName string, debtors []ranking.Standing, rules ranking.Rules) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", fmt.Sprintf("💸 %s — Weekly fee reminder", tournamentName), true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	if len(debtors) == 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", "Everyone is paid up. Nice!", true, false), nil, nil))
		return slack.NewBlockMessage(blocks...)
	}

	for _, st := range debtors {
		weeks := make([]string, 0, len(st.Stats.UnpaidWeeks))
		for _, wk := range st.Stats.UnpaidWeeks {
			weeks = append(weeks, ranking.FormatWeekRange(wk))
		}
		owed := float64(len(st.Stats.UnpaidWeeks)) * rules.WeeklyFee
		line := fmt.Sprintf("• %s owes %.2f for %d week(s):\n%s",
			st.Name,
			owed,
			len(st.Stats.UnpaidWeeks),
			strings.Join(weeks, "\n"),
		)
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", line, true, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}
