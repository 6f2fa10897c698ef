package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/rcoelho/beachpro/internal/database"
	"github.com/rcoelho/beachpro/internal/ranking"
	"github.com/rcoelho/beachpro/internal/tournament"
)

type seedPlayer struct {
	userID string
	name   string
}

func main() {
	log.Info("Starting database seeder...")

	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, reading from environment variables")
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "./beachpro.db"
	}
	migrationsDir := os.Getenv("MIGRATIONS_DIR")
	if migrationsDir == "" {
		migrationsDir = "./migrations"
	}

	db, teardown, err := database.InitDB(dbName, os.Getenv("TURSO_PRIMARY_URL"), os.Getenv("TURSO_AUTH_TOKEN"), migrationsDir)
	if err != nil {
		log.Fatalf("Failed to open database: %s", err)
	}
	defer teardown()
	defer db.Close()

	store := tournament.New(db)

	players := []seedPlayer{
		{"seed-user-1", "Ana"},
		{"seed-user-2", "Bruno"},
		{"seed-user-3", "Carla"},
		{"seed-user-4", "Diego"},
		{"seed-user-5", "Elena"},
		{"seed-user-6", "Fabio"},
	}

	tourn, err := store.CreateTournament("Beach Tennis Open", players[0].userID, players[0].name)
	if err != nil {
		log.Fatalf("Failed to create tournament: %s", err)
	}
	log.Info("Created tournament", "id", tourn.ID, "name", tourn.Name)

	members := make(map[string]ranking.Member)
	creator, err := store.GetMemberByUser(tourn.ID, players[0].userID)
	if err != nil {
		log.Fatalf("Failed to load creator member: %s", err)
	}
	members[players[0].name] = creator
	for _, p := range players[1:] {
		m, err := store.JoinTournament(tourn.ID, p.userID, p.name)
		if err != nil {
			log.Fatalf("Failed to enroll player %s: %s", p.name, err)
		}
		members[p.name] = m
	}
	log.Info("Enrolled players", "count", len(players))

	// Three weeks of doubles results, a handful of matches per week.
	startMonday := ranking.WeekKeyFor(time.Now().UTC().AddDate(0, 0, -21).Format(ranking.DateLayout))
	monday, err := time.Parse(ranking.DateLayout, startMonday)
	if err != nil {
		log.Fatalf("Failed to parse seed week: %s", err)
	}

	matchCount := 0
	for week := 0; week < 3; week++ {
		for i := 0; i < 6; i++ {
			day := monday.AddDate(0, 0, week*7+rand.Intn(6))
			pair := rand.Perm(len(players))
			s1, s2 := 6, rand.Intn(5)
			if rand.Intn(2) == 0 {
				s1, s2 = s2, s1
			}
			_, err := store.AddMatch(tourn.ID, players[pair[0]].userID, tournament.MatchInput{
				Date:   day.Format(ranking.DateLayout),
				P1A:    players[pair[0]].name,
				P1B:    players[pair[1]].name,
				P2A:    players[pair[2]].name,
				P2B:    players[pair[3]].name,
				Score1: s1,
				Score2: s2,
			})
			if err != nil {
				log.Fatalf("Failed to insert match: %s", err)
			}
			matchCount++
		}
	}
	log.Info("Inserted seed matches", "count", matchCount)

	// Mark the first two weeks paid for everyone, leaving the last week
	// outstanding so the finance view has something to report.
	for week := 0; week < 2; week++ {
		weekKey := monday.AddDate(0, 0, week*7).Format(ranking.DateLayout)
		for _, m := range members {
			if _, err := store.ToggleWeekPaid(tourn.ID, m.ID, weekKey); err != nil {
				log.Fatalf("Failed to mark week paid: %s", err)
			}
		}
	}

	log.Info("Seeding complete.", "tournamentID", tourn.ID)
}
