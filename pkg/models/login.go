package models

// LoginForm is the sign-in form. No client accounts exist yet, so a valid
// submission still ends in the "account not found" notice.
type LoginForm struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// ForgotPasswordForm requests a reset link.
type ForgotPasswordForm struct {
	Email string `json:"email" form:"email" validate:"required,email"`
}
