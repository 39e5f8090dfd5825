package repository

import (
	"context"
	"errors"
	"time"

	"hr-registry/internal/database"

	"github.com/google/uuid"
)

var ErrAdminNotFound = errors.New("admin not found")

// Admin is an HR administrator account used only to gate skill approvals.
type Admin struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (Admin, error)
	Create(ctx context.Context, a Admin) (Admin, error)
}

type PostgresAdminRepository struct {
	db database.DB
}

func NewPostgresAdminRepository(db database.DB) *PostgresAdminRepository {
	return &PostgresAdminRepository{db: db}
}

func (r *PostgresAdminRepository) FindByEmail(ctx context.Context, email string) (Admin, error) {
	row := r.db.QueryRow(ctx,
		`SELECT admin_id, email, password_hash, created_at FROM hr_admins WHERE email = $1`,
		email,
	)

	var a Admin
	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt); err != nil {
		if isNoRows(err) {
			return Admin{}, ErrAdminNotFound
		}
		return Admin{}, err
	}
	return a, nil
}

func (r *PostgresAdminRepository) Create(ctx context.Context, a Admin) (Admin, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	row := r.db.QueryRow(ctx,
		`INSERT INTO hr_admins (admin_id, email, password_hash, created_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		 RETURNING admin_id, email, password_hash, created_at`,
		a.ID, a.Email, a.PasswordHash,
	)

	var created Admin
	if err := row.Scan(&created.ID, &created.Email, &created.PasswordHash, &created.CreatedAt); err != nil {
		return Admin{}, err
	}
	return created, nil
}
