package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// Standalone bootstrapper: creates the schema and seeds an admin account
// plus an initial fleet so a fresh environment is usable immediately.

type Config struct {
	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Database string `yaml:"database"`
		SSLMode  string `yaml:"ssl_mode"`
	} `yaml:"database"`
}

type SeedUser struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

type SeedVehicle struct {
	Name         string `yaml:"name"`
	Model        string `yaml:"model"`
	Registration string `yaml:"registration"`
	DailyRate    int32  `yaml:"daily_rate_cents"`
}

type SeedData struct {
	ConfigFile string        `yaml:"config_file"`
	Users      []SeedUser    `yaml:"users"`
	Vehicles   []SeedVehicle `yaml:"vehicles"`
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id            SERIAL PRIMARY KEY,
	name          TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	role          TEXT NOT NULL DEFAULT 'customer',
	created_on    TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_on    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS vehicles (
	id               SERIAL PRIMARY KEY,
	name             TEXT NOT NULL,
	model            TEXT NOT NULL DEFAULT '',
	registration     TEXT NOT NULL UNIQUE,
	daily_rate_cents INTEGER NOT NULL,
	status           TEXT NOT NULL DEFAULT 'available',
	created_on       TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_on       TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS bookings (
	id                SERIAL PRIMARY KEY,
	customer_id       INTEGER NOT NULL REFERENCES users(id),
	vehicle_id        INTEGER NOT NULL REFERENCES vehicles(id),
	rent_start_date   DATE NOT NULL,
	rent_end_date     DATE NOT NULL,
	total_price_cents INTEGER NOT NULL,
	status            TEXT NOT NULL DEFAULT 'active',
	created_on        TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_on        TIMESTAMPTZ NOT NULL DEFAULT now(),
	CHECK (rent_end_date > rent_start_date)
);

CREATE INDEX IF NOT EXISTS idx_bookings_vehicle_status ON bookings (vehicle_id, status);
CREATE INDEX IF NOT EXISTS idx_bookings_customer ON bookings (customer_id);
`

func main() {
	seedFile := "cmd/data-setup/seed.yaml"
	if _, err := os.Stat(seedFile); os.IsNotExist(err) {
		seedFile = "seed.yaml"
	}

	seed, err := readSeedFile(seedFile)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}

	config, err := readConfig(resolveConfigPath(seed.ConfigFile))
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	db, err := connectDB(config)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := populate(db, seed); err != nil {
		log.Fatalf("Failed to populate data: %v", err)
	}

	log.Println("✅ Schema created and seed data populated!")
}

func readSeedFile(filename string) (*SeedData, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var seed SeedData
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, err
	}
	return &seed, nil
}

func resolveConfigPath(configPath string) string {
	if _, err := os.Stat(configPath); err == nil {
		return configPath
	}

	fullPath := filepath.Join(findProjectRoot(), configPath)
	if _, err := os.Stat(fullPath); err == nil {
		return fullPath
	}

	// Return original path and let it fail with a clear error
	return configPath
}

func findProjectRoot() string {
	// Look for go.mod to identify project root
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "."
}

func readConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

func connectDB(config *Config) (*sql.DB, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Database.Host,
		config.Database.Port,
		config.Database.User,
		config.Database.Password,
		config.Database.Database,
		config.Database.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("✓ Connected to database: %s@%s:%d/%s",
		config.Database.User,
		config.Database.Host,
		config.Database.Port,
		config.Database.Database)

	return db, nil
}

func populate(db *sql.DB, seed *SeedData) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	log.Println("✓ Schema is in place")

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, u := range seed.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		role := u.Role
		if role == "" {
			role = "customer"
		}

		log.Printf("Creating user: %s (%s)", u.Name, role)
		_, err = tx.Exec(`
			INSERT INTO users (name, email, password_hash, role)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (email) DO NOTHING
		`, u.Name, u.Email, string(hash), role)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", u.Email, err)
		}
	}

	for _, v := range seed.Vehicles {
		log.Printf("Creating vehicle: %s (%s)", v.Name, v.Registration)
		_, err = tx.Exec(`
			INSERT INTO vehicles (name, model, registration, daily_rate_cents)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (registration) DO NOTHING
		`, v.Name, v.Model, v.Registration, v.DailyRate)
		if err != nil {
			return fmt.Errorf("failed to create vehicle %s: %w", v.Registration, err)
		}
	}

	return tx.Commit()
}
