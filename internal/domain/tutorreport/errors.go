package tutorreport

import "errors"

// Tutor report domain errors
var (
	ErrShelterIDRequired = errors.New("shelter_id not found in token claims")
	ErrInvalidShelterID  = errors.New("shelter_id in token claims is not a valid UUID")
	ErrAdminOnly         = errors.New("only admins can perform this action")
	ErrInvalidToken      = errors.New("invalid or missing access token")
)
