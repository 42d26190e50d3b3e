package models

// Registration is the sign-up form.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisteredUser is returned after a successful sign-up.
type RegisteredUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
