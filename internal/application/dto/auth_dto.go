package dto

// LoginRequest entrada para login. RememberMe pide un token de larga duración
// (el equivalente del storage persistente frente al de pestaña).
type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RegisterRequest entrada para registrar un usuario.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"` // mínimo 6 caracteres
	Role     string `json:"role"`    // admin | sales | purchasing | warehouse | route
}
