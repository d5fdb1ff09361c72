package storage

type Employee struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	PhoneNo string `json:"phone_no"`
}

// User is an API account. Role is one of auth.RoleAdmin / RoleUser.
type User struct {
	ID           int64
	Login        string
	PasswordHash string
	Role         string
}
