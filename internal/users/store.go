// Package users is the identity boundary. Registration and password
// lifecycle live outside this service; what the core needs is "resolve the
// authenticated principal to a user row" plus a dev-mode credential check.
package users

import (
	"context"
	"database/sql"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrNotFound signals that no user exists for the requested id or username.
var ErrNotFound = errors.New("user not found")

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"` // "teacher" or "student"
}

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetByID(ctx context.Context, id string) (User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,username,name,role FROM users WHERE id=$1`, id)
	var u User
	err := row.Scan(&u.ID, &u.Username, &u.Name, &u.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	return u, nil
}

// Authenticate checks a username/password pair against the stored bcrypt
// hash and returns the user on success.
func (s *Store) Authenticate(ctx context.Context, username, password string) (User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,username,name,role,password_hash FROM users WHERE username=$1`, username)
	var u User
	var hash string
	err := row.Scan(&u.ID, &u.Username, &u.Name, &u.Role, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return User{}, errors.New("invalid credentials")
	}
	return u, nil
}

// Seed inserts demo accounts if the users table is empty. Dev/offline only.
func (s *Store) Seed(ctx context.Context) error {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM users`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	demo := []struct {
		id, username, name, role, password string
	}{
		{"t-1", "teacher", "Demo Teacher", "teacher", "teacher"},
		{"s-1", "student", "Demo Student", "student", "student"},
	}
	for _, d := range demo {
		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if _, err := s.db.ExecContext(ctx,
			`INSERT INTO users (id,username,name,role,password_hash) VALUES ($1,$2,$3,$4,$5)`,
			d.id, d.username, d.name, d.role, string(hash)); err != nil {
			return err
		}
	}
	return nil
}
