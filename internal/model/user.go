package model

import "time"

// User is an admin panel account as stored in the `users` table. The
// password hash never leaves the repository layer; handlers respond with
// the sanitized projection below.
//
// Fields:
//  ID           – primary key identifier.
//  Name         – display name shown in the admin panel.
//  Email        – unique login email.
//  PasswordHash – bcrypt hashed password.
//  Role         – account role (currently always "admin").
//  IsActive     – deactivated accounts cannot authenticate.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type User struct {
	ID           uint64    // users.id
	Name         string    // users.name
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	Role         string    // users.role
	IsActive     bool      // users.is_active
	CreatedAt    time.Time // users.created_at
	UpdatedAt    time.Time // users.updated_at
}

// Public is the password-free projection of a user returned by the API.
type UserPublic struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Public strips credentials from u.
func (u User) Public() UserPublic {
	return UserPublic{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
