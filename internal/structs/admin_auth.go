package structs

type AdminLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AdminUser struct {
	Username string `json:"username"`
}

type AuthResponse struct {
	Token string    `json:"token"`
	User  AdminUser `json:"user"`
}
