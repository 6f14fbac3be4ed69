package apperrors

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNoConfig            = errors.New("no saved configuration")
	ErrAuth                = errors.New("authentication failed")
	ErrSchoolNotFound      = errors.New("school not found")
	ErrNoResponse          = errors.New("no response from server")
	ErrScheduleUnavailable = errors.New("schedule is not available yet")
)
