package seeder

import (
	"context"
	"os"
	"strings"

	"hr-registry/internal/database"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AdminSeeder creates the initial administrator account from ADMIN_EMAIL
// and ADMIN_PASSWORD. It does nothing when either is unset or when the
// account already exists.
type AdminSeeder struct{}

func (AdminSeeder) Name() string { return "admin" }

func (AdminSeeder) Run(ctx context.Context, db database.DB) error {
	email := strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	if err := EnsureTableColumns(ctx, db, "hr_admins", "admin_id", "email", "password_hash"); err != nil {
		return err
	}

	var exists bool
	row := db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM hr_admins WHERE email = $1)`, email)
	if err := row.Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx,
		`INSERT INTO hr_admins (admin_id, email, password_hash, created_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (email) DO NOTHING`,
		uuid.New(), email, string(hash),
	)
	return err
}
