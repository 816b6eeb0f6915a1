package domain

import "errors"

// Credential and registration errors. All of these are expected,
// user-facing outcomes; none is fatal and none is retried.
var (
	ErrUserNotFound     = errors.New("User not exist")
	ErrWrongPassword    = errors.New("Wrong password")
	ErrPasswordMismatch = errors.New("Password and confirm password do not match")
	ErrUsernameExists   = errors.New("Username already exists")
)
