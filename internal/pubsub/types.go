package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client   *pubsub.Client
	teardown func()
}

// noop is used when no GCP project is configured; events are dropped.
type noop struct{}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventMatchAdded        EventType = "match-added"
	EventWeekPaidToggled   EventType = "week-paid-toggled"
	EventRulesUpdated      EventType = "rules-updated"
	EventRankingRecomputed EventType = "ranking-recomputed"
)

// TournamentEvent is the payload carried by every tournament topic.
type TournamentEvent struct {
	Type         EventType `msgpack:"type"`
	TournamentID string    `msgpack:"tournament_id"`
	ActorID      string    `msgpack:"actor_id,omitempty"`
}
