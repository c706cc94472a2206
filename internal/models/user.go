package models

// MainAdminID is the protected administrator row that can never be deleted.
const MainAdminID = 1

// User is a panel login stored in the users table.
type User struct {
	ID           int    `db:"user_id" json:"user_id"`
	Username     string `db:"username" json:"username"`
	PasswordHash string `db:"password_hash" json:"-"`
	FullName     string `db:"full_name" json:"full_name"`
	IsActive     bool   `db:"is_active" json:"is_active"`
}

// SessionIdentity is the minimal identity bound to a login session.
type SessionIdentity struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
}
