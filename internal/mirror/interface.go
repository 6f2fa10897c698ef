package mirror

import "context"

// Mirror pushes derived view documents to the remote real-time document
// store so subscribed clients receive them without polling. Writes are
// full-document replaces keyed by tournament id.
type Mirror interface {
	Publish(ctx context.Context, collection, tournamentID string, doc any) error
	Close() error
}

// Collections the mirror writes to.
const (
	CollectionRankings = "rankings"
	CollectionFinance  = "finance"
)
