package auth

// User is the domain entity. Password always holds the bcrypt digest, never
// plaintext.
type User struct {
	ID        string
	Username  string
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Profile is the outward user shape; the password digest never leaves the
// service layer.
type Profile struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func (u *User) Profile() Profile {
	return Profile{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}
