package user

import "context"

// UserRepository defines data access methods for users.
type UserRepository interface {
	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (User, error)

	// GetByEmail retrieves a user by email
	GetByEmail(ctx context.Context, email string) (User, error)

	// List retrieves all users ordered by name
	List(ctx context.Context) ([]User, error)

	// Create creates a new user
	Create(ctx context.Context, u User) (User, error)

	// Update updates profile fields of an existing user
	Update(ctx context.Context, u User) (User, error)

	// Delete removes a user and, through cascading constraints, their records
	Delete(ctx context.Context, id string) error
}
