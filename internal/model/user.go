package model

// User is a reference to an account of the external identity system.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Superuser bool   `json:"is_superuser"`
	Oficina   string `json:"oficina,omitempty"`
}
