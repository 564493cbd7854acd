package contract

type SignupRequest struct {
	Firstname string `json:"firstname" validate:"required,min=3,max=50"`
	Lastname  string `json:"lastname" validate:"required,min=1,max=50"`
	Email     string `json:"email" validate:"required,email"`
	// The "password must not contain the registrant's name" rule is
	// cross-field and registered as a struct-level validation.
	Password string `json:"password" validate:"required,min=6,hasupper,haslower,hasdigit,hasspecial"`
}

type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse exposes public profile fields only; the password hash never
// leaves the service layer.
type UserResponse struct {
	ID        int    `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
}

type SignupResponse struct {
	Message string        `json:"message"`
	User    *UserResponse `json:"user"`
}

type SigninResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}
