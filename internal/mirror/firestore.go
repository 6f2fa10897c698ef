package mirror

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"github.com/charmbracelet/log"
	"google.golang.org/api/option"
)

// firestoreMirror publishes derived views to Cloud Firestore.
type firestoreMirror struct {
	client *firestore.Client
}

// NewFirestore connects to Firestore using raw service-account JSON
// credentials.
func NewFirestore(credentialsJSON string) (Mirror, error) {
	ctx := context.Background()

	opt := option.WithCredentialsJSON([]byte(credentialsJSON))
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firestore client: %w", err)
	}

	log.Info("Firestore mirror initialized")
	return &firestoreMirror{client: client}, nil
}

func (m *firestoreMirror) Publish(ctx context.Context, collection, tournamentID string, doc any) error {
	_, err := m.client.Collection(collection).Doc(tournamentID).Set(ctx, doc)
	if err != nil {
		log.Error("Failed to publish document to Firestore", "error", err, "collection", collection, "tournamentID", tournamentID)
		return fmt.Errorf("failed to publish %s/%s: %w", collection, tournamentID, err)
	}
	log.Debug("Published document to Firestore", "collection", collection, "tournamentID", tournamentID)
	return nil
}

func (m *firestoreMirror) Close() error {
	return m.client.Close()
}

// Noop is used when the mirror is not configured; publishes are dropped.
type Noop struct{}

func (Noop) Publish(ctx context.Context, collection, tournamentID string, doc any) error {
	return nil
}

func (Noop) Close() error { return nil }
