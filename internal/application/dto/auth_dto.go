package dto

// LoginRequest credenciales del operador del PDA.
type LoginRequest struct {
	UserID   string `json:"userId" validate:"required,max=30"`
	Password string `json:"password" validate:"required"`
}

// UserResponse operador autenticado (sin hash).
type UserResponse struct {
	UserID   string `json:"userId"`
	Saupj    string `json:"saupj"`
	UserName string `json:"userName"`
	Role     string `json:"role"`
}

// LoginResponse token + datos del operador.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
