package api

import "github.com/roadcare/pothole-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",
		1012: "validation failed",

		1100: "invalid email or password",
		1101: "admin not found or inactive",

		1200: store.ErrPotholeNotFound.Error(),
		1201: store.ErrPhotoNotFound.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorInvalidCredentials = errorJSON(1100)
	errorAdminNotFound      = errorJSON(1101)

	errorPotholeNotFound = errorJSON(1200)
	errorPhotoNotFound   = errorJSON(1201)
)

type ErrorResponse struct {
	Code       int64    `json:"code"`
	Message    string   `json:"message"`
	Violations []string `json:"violations,omitempty"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// errorValidation carries the complete list of violated constraints, never
// only the first one.
func errorValidation(violations []string) ErrorResponse {
	resp := errorJSON(1012)
	resp.Violations = violations
	return resp
}
