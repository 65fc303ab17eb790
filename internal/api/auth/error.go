package auth

import "BudgetGolang/pkg/response"

var (
	ErrUserNotFound           = response.NewError(404, "user not found")
	ErrEmailAlreadyExists     = response.NewError(409, "email already in use")
	ErrInvalidEmailOrPassword = response.NewError(400, "invalid email or password")
)
