package seeder

import (
	"context"
	"fmt"

	"gigconnect/internal/database"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	DemoEmail    = "demo@gigconnect.com"
	demoPassword = "demo123"
)

// SeedDemoUser inserts the well-known demo account if it does not exist yet.
// Safe to call repeatedly.
func SeedDemoUser(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), 12)
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, role, first_name, last_name)
		 VALUES ($1, $2, $3, 'both', 'Demo', 'User')
		 ON CONFLICT (email) DO NOTHING`,
		uuid.New(), DemoEmail, string(hash),
	)
	return err
}
