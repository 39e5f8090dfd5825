package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")

	ErrSkillNotFound    = errors.New("skill not found")
	ErrSkillNameTaken   = errors.New("skill name already exists")
	ErrSkillNotPending  = errors.New("skill not pending")
	ErrSkillNotApproved = errors.New("skill not approved")

	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailTaken       = errors.New("email already in use")

	ErrInvalidCredentials = errors.New("invalid credentials")
)
