package user

import "context"

// UserService defines business logic for user management (admin surface)
type UserService interface {
	// List retrieves all users
	List(ctx context.Context) ([]UserResponse, error)

	// Get retrieves a single user by ID
	Get(ctx context.Context, id string) (UserResponse, error)

	// Create registers a new user with a bcrypt-hashed password
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)

	// Update changes profile fields of an existing user
	Update(ctx context.Context, req UpdateUserRequest) (UserResponse, error)

	// Delete removes a user and their attendance records
	Delete(ctx context.Context, id string) error
}
