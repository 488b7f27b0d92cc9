package service

import "errors"

var (
	ErrValidation  = errors.New("validation")  // 400
	ErrNotFound    = errors.New("not found")   // 404
	ErrConflict    = errors.New("conflict")    // 409
	ErrNotEligible = errors.New("verified purchase required") // 403
)
