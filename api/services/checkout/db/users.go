package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SubscriptionStatus mirrors users.subscription_status.
type SubscriptionStatus string

const (
	StatusNone           SubscriptionStatus = "none"
	StatusActive         SubscriptionStatus = "active"
	StatusLifetimeActive SubscriptionStatus = "lifetime_active"
	StatusCancelled      SubscriptionStatus = "cancelled"
)

// User is the subset of a users row the checkout flow reads.
type User struct {
	Email              string
	SubscriptionStatus SubscriptionStatus
}

// UserStore looks up users by email. A missing user is reported through the
// found flag, never as an error.
type UserStore interface {
	FindUserByEmail(ctx context.Context, email string) (User, bool, error)
}

type postgresStore struct {
	db *sql.DB
}

// NewPostgresStore returns a UserStore backed by the users table.
func NewPostgresStore(db *sql.DB) UserStore { return postgresStore{db: db} }

const findUserByEmailQuery = `SELECT email, subscription_status FROM users WHERE email = $1 LIMIT 1`

func (s postgresStore) FindUserByEmail(ctx context.Context, email string) (User, bool, error) {
	var (
		u      User
		status sql.NullString
	)
	err := s.db.QueryRowContext(ctx, findUserByEmailQuery, email).Scan(&u.Email, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return User{}, false, nil
	}
	if err != nil {
		return User{}, false, fmt.Errorf("error querying user by email: %w", err)
	}
	u.SubscriptionStatus = StatusNone
	if status.Valid && status.String != "" {
		u.SubscriptionStatus = SubscriptionStatus(status.String)
	}
	return u, true, nil
}
