package httperr

import (
	"errors"
	"net/http"
)

// Domain errors shared by the service and handler layers. Handlers map them
// to HTTP statuses with Status; the error text itself becomes the response
// message.
var (
	// ErrUserExists is returned when a registration email is already taken.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound is returned when no user matches an email or id.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidPassword is returned on a bcrypt mismatch during login.
	ErrInvalidPassword = errors.New("invalid password")
	// ErrInvalidID is returned when a path parameter is not a valid object id.
	ErrInvalidID = errors.New("invalid id")
	// ErrMissingFields is returned when a required request field is absent.
	ErrMissingFields = errors.New("missing required fields")
	// ErrArticleExists is returned when an article name is already taken.
	ErrArticleExists = errors.New("article already exists")
	// ErrArticleNotFound is returned when no article matches an id.
	ErrArticleNotFound = errors.New("article not found")
	// ErrNoAttachment is returned when an article has no stored attachment.
	ErrNoAttachment = errors.New("article has no attachment")
)

// Status maps a domain error to its HTTP status code. Unknown errors are
// internal failures and surface as 500 with the message passed through.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrInvalidID), errors.Is(err, ErrMissingFields),
		errors.Is(err, ErrUserExists), errors.Is(err, ErrArticleExists):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidPassword):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrArticleNotFound),
		errors.Is(err, ErrNoAttachment):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
