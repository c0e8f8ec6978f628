package main

import (
	"database/sql"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

var locations = []string{"Goa", "Lonavala", "Alibaug", "Coorg"}
var tagPool = []string{"Pet-friendly", "Event-friendly", "Senior-friendly"}

const schema = `
CREATE TABLE IF NOT EXISTS villas (
	id SERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	location TEXT NOT NULL,
	rating FLOAT NOT NULL DEFAULT 4.5,
	review_count INT NOT NULL DEFAULT 20,
	tags TEXT[] NOT NULL DEFAULT '{}',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE TABLE IF NOT EXISTS villa_calendar (
	id SERIAL PRIMARY KEY,
	villa_id INT NOT NULL REFERENCES villas(id) ON DELETE CASCADE,
	date DATE NOT NULL,
	is_available BOOLEAN NOT NULL DEFAULT TRUE,
	rate INT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (villa_id, date)
);
CREATE INDEX IF NOT EXISTS idx_villa_calendar_villa_date ON villa_calendar (villa_id, date);
CREATE TABLE IF NOT EXISTS admins (
	id SERIAL PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL
);
`

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	if _, err := db.Exec(schema); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	var existing int
	if err := db.QueryRow(`SELECT COUNT(*) FROM villas`).Scan(&existing); err != nil {
		log.Fatalf("Failed to count villas: %v", err)
	}
	if existing > 0 {
		log.Println("Seed data already exists. Skipping seeding.")
		return
	}

	seedYear := time.Now().UTC().Year()
	if raw := os.Getenv("SEED_YEAR"); raw != "" {
		if y, err := strconv.Atoi(raw); err == nil {
			seedYear = y
		}
	}
	log.Printf("Seeding villas and availability for year %d...", seedYear)

	if err := seed(db, seedYear); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	if err := seedAdmin(db); err != nil {
		log.Fatalf("Admin bootstrap failed: %v", err)
	}
	log.Println("Seeding completed successfully.")
}

// seedAdmin creates the initial admin account when ADMIN_EMAIL and
// ADMIN_PASSWORD are configured.
func seedAdmin(db *sql.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin bootstrap.")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = db.Exec(`
		INSERT INTO admins (email, password_hash) VALUES ($1, $2)
		ON CONFLICT (email) DO NOTHING`, email, hash)
	return err
}

func seed(db *sql.DB, year int) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	insertDay, err := tx.Prepare(`
		INSERT INTO villa_calendar (villa_id, date, rate, is_available)
		VALUES ($1, $2, $3, $4)`)
	if err != nil {
		return err
	}
	defer insertDay.Close()

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	for i := 1; i <= 50; i++ {
		var villaID int
		err := tx.QueryRow(`
			INSERT INTO villas (name, location, rating, review_count, tags)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			fmt.Sprintf("Villa %d", i),
			locations[rand.Intn(len(locations))],
			4.0+rand.Float64(),
			10+rand.Intn(100),
			pq.Array(randomTags()),
		).Scan(&villaID)
		if err != nil {
			return fmt.Errorf("insert villa %d: %w", i, err)
		}

		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			rate := 30000 + rand.Intn(20001)
			available := rand.Float64() < 0.75
			if _, err := insertDay.Exec(villaID, day, rate, available); err != nil {
				return fmt.Errorf("insert calendar for villa %d on %s: %w", villaID, day.Format("2006-01-02"), err)
			}
		}
	}

	return tx.Commit()
}

func randomTags() []string {
	var tags []string
	for _, t := range tagPool {
		if rand.Float64() > 0.5 {
			tags = append(tags, t)
		}
	}
	return tags
}
