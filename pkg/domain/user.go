package domain

// UserID uniquely identifies an administrative account.
type UserID int64

// Credential is an administrative account. PasswordHash holds a salted
// one-way hash; the raw password is never stored.
type Credential struct {
	ID           UserID `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
