package apiError

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tokengate-project/tokengate/internal/args"
	"github.com/tokengate-project/tokengate/internal/logging"
)

var ErrApiBadRequest = errors.New("bad request")
var ErrApiUnsupportedMediaType = errors.New("unsupported media type")

var ErrApiNotFound = errors.New("not found")
var ErrApiAccountNotFound = fmt.Errorf("account not found: %w", ErrApiNotFound)

var ErrApiUnauthorized = errors.New("unauthorized")
var ErrApiTokenRevoked = fmt.Errorf("token has been revoked: %w", ErrApiUnauthorized)

func HandleHttpError(w http.ResponseWriter, err error) {
	var code int
	var message string

	switch {
	case errors.Is(err, ErrApiBadRequest):
		code = http.StatusBadRequest
		message = err.Error()

	case errors.Is(err, ErrApiNotFound):
		code = http.StatusNotFound
		message = err.Error()

	case errors.Is(err, ErrApiUnsupportedMediaType):
		code = http.StatusUnsupportedMediaType
		message = err.Error()

	case errors.Is(err, ErrApiUnauthorized):
		HandleUnauthorized(w, "invalid_token", err)
		return

	default:
		code = http.StatusInternalServerError
		if args.IsProduction() {
			message = "Internal Server Error"
		} else {
			message = err.Error()
		}
	}

	logging.Logger.Errorf("HTTP Error: %d %s", code, message)
	http.Error(w, message, code)
}

// HandleUnauthorized writes a 401 response carrying the RFC 6750 bearer
// challenge. The error code is "invalid_request" for requests that failed
// token resolution and "invalid_token" for tokens that failed verification.
func HandleUnauthorized(w http.ResponseWriter, errorCode string, err error) {
	challenge := "Bearer"
	message := http.StatusText(http.StatusUnauthorized)

	if err != nil {
		message = err.Error()
		challenge = fmt.Sprintf("Bearer error=%q, error_description=%q", errorCode, message)
	}

	logging.Logger.Infof("HTTP Error: %d %s", http.StatusUnauthorized, message)

	w.Header().Set("WWW-Authenticate", challenge)
	http.Error(w, message, http.StatusUnauthorized)
}
