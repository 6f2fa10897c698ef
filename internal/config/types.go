package config

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	Turso         TursoConfig
	Slack         SlackConfig
	Firebase      FirebaseConfig
	// ProjectID enables the GCP Pub/Sub event fan-out when set.
	ProjectID string
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

type SlackConfig struct {
	Token     string
	ChannelID string
}

type FirebaseConfig struct {
	// CredentialsJSON is the raw service-account JSON; the Firestore
	// mirror is disabled when empty.
	CredentialsJSON string
}
