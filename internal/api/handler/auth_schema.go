package handler

// --- Request / Response types ---

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role"     validate:"required,oneof=admin supervisor nurse"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Response-only types owned by the transport layer. The password hash never
// appears here; these are the only fields the contract exposes.

type registerData struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type loginData struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}
