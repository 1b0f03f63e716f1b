package main

import (
	"database/sql"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/noah-isme/backend-resto/internal/auth"
	"github.com/noah-isme/backend-resto/internal/common"
	"github.com/noah-isme/backend-resto/internal/db"
	"github.com/noah-isme/backend-resto/internal/obs"
)

func main() {
	_ = godotenv.Load()
	logger := obs.NewLogger("console", "info").With().Str("component", "seeder").Logger()

	dbURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if dbURL == "" {
		logger.Fatal().Msg("DATABASE_URL is not set")
	}
	conn, err := sql.Open("postgres", dbURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("open database")
	}
	defer conn.Close()
	if err := conn.Ping(); err != nil {
		logger.Fatal().Err(err).Msg("ping database")
	}
	if err := db.RunMigrations(conn); err != nil {
		logger.Fatal().Err(err).Msg("apply migrations")
	}

	s := seeder{db: conn, logger: logger}
	s.admin(envOr("SEED_ADMIN_USERNAME", "admin"), envOr("SEED_ADMIN_PASSWORD", "admin123"))
	s.orderStatuses()
	stateID := s.tableStates()
	s.tables(stateID, 6)
	s.menu()
	logger.Info().Msg("seeding completed")
}

type seeder struct {
	db     *sql.DB
	logger zerolog.Logger
}

func (s seeder) admin(username, password string) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		s.logger.Fatal().Err(err).Msg("hash admin password")
	}
	res, err := s.db.Exec(`
		INSERT INTO users (username, email, password_hash, groups)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (username) DO NOTHING`,
		username, username+"@resto.local", hash, pq.Array([]string{common.GroupAdmin}))
	if err != nil {
		s.logger.Fatal().Err(err).Msg("seed admin")
	}
	if n, _ := res.RowsAffected(); n > 0 {
		s.logger.Info().Str("username", username).Msg("admin created")
	}
}

func (s seeder) orderStatuses() {
	for _, status := range []string{"preparación", "enviado", "entregado"} {
		if _, err := s.db.Exec(`
			INSERT INTO order_statuses (status)
			SELECT $1 WHERE NOT EXISTS (SELECT 1 FROM order_statuses WHERE status = $1)`, status); err != nil {
			s.logger.Fatal().Err(err).Str("status", status).Msg("seed order status")
		}
	}
}

// tableStates returns the id of the "Disponible" state.
func (s seeder) tableStates() string {
	for _, name := range []string{"Disponible", "Reservada"} {
		if _, err := s.db.Exec(`
			INSERT INTO table_states (name)
			SELECT $1 WHERE NOT EXISTS (SELECT 1 FROM table_states WHERE name = $1)`, name); err != nil {
			s.logger.Fatal().Err(err).Str("state", name).Msg("seed table state")
		}
	}
	var id string
	if err := s.db.QueryRow(`SELECT id FROM table_states WHERE name = 'Disponible' LIMIT 1`).Scan(&id); err != nil {
		s.logger.Fatal().Err(err).Msg("load table state")
	}
	return id
}

func (s seeder) tables(stateID string, count int) {
	for n := 1; n <= count; n++ {
		capacity := 2
		if n%2 == 0 {
			capacity = 4
		}
		if _, err := s.db.Exec(`
			INSERT INTO dining_tables (number, capacity, state_id)
			VALUES ($1, $2, $3)
			ON CONFLICT (number) DO NOTHING`, n, capacity, stateID); err != nil {
			s.logger.Fatal().Err(err).Int("number", n).Msg("seed table")
		}
	}
}

func (s seeder) menu() {
	var categoryID string
	err := s.db.QueryRow(`SELECT id FROM menu_categories WHERE name = 'Platos fuertes' LIMIT 1`).Scan(&categoryID)
	if err == sql.ErrNoRows {
		err = s.db.QueryRow(`
			INSERT INTO menu_categories (name, description)
			VALUES ('Platos fuertes', 'Platos principales de la casa')
			RETURNING id`).Scan(&categoryID)
	}
	if err != nil {
		s.logger.Fatal().Err(err).Msg("seed menu category")
	}

	items := []struct {
		name, description, price string
	}{
		{"Lomo saltado", "Res salteada con papas", "10.00"},
		{"Ceviche", "Pescado fresco marinado", "12.50"},
		{"Arroz con pollo", "Arroz verde con pollo", "8.75"},
	}
	for _, it := range items {
		if _, err := s.db.Exec(`
			INSERT INTO menu_items (name, description, price, category_id)
			SELECT $1, $2, $3::numeric, $4
			WHERE NOT EXISTS (SELECT 1 FROM menu_items WHERE name = $1)`,
			it.name, it.description, it.price, categoryID); err != nil {
			s.logger.Fatal().Err(err).Str("item", it.name).Msg("seed menu item")
		}
	}
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
