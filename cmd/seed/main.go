package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/tranquilify/tranquilify-api/config"
	"github.com/tranquilify/tranquilify-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@tranquilify.app"
	password := "password123"
	name := "Demo User"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, name, avatar_url)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET name=EXCLUDED.name
		RETURNING id
	`, email, hash, name, "").Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", id, email, password)

	habits := []struct {
		name, icon, color string
	}{
		{"Morning meditation", "🧘", "purple"},
		{"Evening walk", "🚶", "green"},
		{"Gratitude journal", "📓", "blue"},
	}
	for _, h := range habits {
		if _, err := db.Exec(`
			INSERT INTO habits (user_id, name, icon, color)
			SELECT $1, $2, $3, $4
			WHERE NOT EXISTS (SELECT 1 FROM habits WHERE user_id = $1 AND name = $2)
		`, id, h.name, h.icon, h.color); err != nil {
			log.Fatalf("failed to seed habit %q: %v", h.name, err)
		}
	}
	fmt.Printf("seeded %d habits\n", len(habits))

	blogs := []struct {
		title, content, author string
	}{
		{
			"Five-minute breathing exercises that actually help",
			"Box breathing is the simplest place to start: inhale for four counts, hold for four, exhale for four, hold for four. Repeat for five minutes.",
			"Tranquilify Team",
		},
		{
			"Why small habits beat big resolutions",
			"A two-minute daily habit you keep beats an hour-long routine you abandon. Streaks build identity, and identity sustains change.",
			"Tranquilify Team",
		},
	}
	for _, b := range blogs {
		if _, err := db.Exec(`
			INSERT INTO blogs (title, content, image_url, tags, author)
			SELECT $1, $2, '', '{}', $3
			WHERE NOT EXISTS (SELECT 1 FROM blogs WHERE title = $1)
		`, b.title, b.content, b.author); err != nil {
			log.Fatalf("failed to seed blog %q: %v", b.title, err)
		}
	}
	fmt.Printf("seeded %d blogs\n", len(blogs))
}
