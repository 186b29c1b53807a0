package entities

type User struct {
	ID           int64
	Email        string
	Name         string
	PasswordHash string
	IsAdmin      bool
}

type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

// Principal - аутентифицированный пользователь запроса.
type Principal struct {
	UserID  int64
	IsAdmin bool
}
