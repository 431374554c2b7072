package api

import "github.com/qanoon-assist/qanoon-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1000: "invalid username or password",
		1001: "invalid authorization format",
		1003: "invalid token",
		1004: "a refresh token is required",

		1010: "invalid parameters",
		1011: "cannot parse request",
		1012: "CNIC must be in format: XXXXX-XXXXXXX-X",

		1100: store.ErrUserTaken.Error(),
		1101: store.ErrUserNotFound.Error(),
		1102: "admin access required",
		1103: "only citizens can perform this action",
		1104: "only lawyers can perform this action",

		1200: store.ErrDuplicateCaseRequest.Error(),
		1201: store.ErrCaseRequestNotFound.Error(),
		1202: store.ErrNotAssignedLawyer.Error(),
		1203: store.ErrNotRequestingCitizen.Error(),
		1204: store.ErrRequestFinalized.Error(),
		1205: store.ErrStatsRoleUnsupported.Error(),

		1300: store.ErrCaseNotFound.Error(),
		1301: store.ErrNotCaseLawyer.Error(),

		1400: store.ErrThreadAccessDenied.Error(),

		1500: store.ErrLawyerNotFound.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidCredentials         = errorJSON(1000)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)
	errorNotRefreshToken            = errorJSON(1004)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)
	errorInvalidCNIC        = errorJSON(1012)

	errorUserTaken    = errorJSON(1100)
	errorUserNotFound = errorJSON(1101)
	errorAdminOnly    = errorJSON(1102)
	errorCitizenOnly  = errorJSON(1103)
	errorLawyerOnly   = errorJSON(1104)

	errorDuplicateRequest     = errorJSON(1200)
	errorRequestNotFound      = errorJSON(1201)
	errorNotAssignedLawyer    = errorJSON(1202)
	errorNotRequestingCitizen = errorJSON(1203)
	errorRequestFinalized     = errorJSON(1204)
	errorStatsUnsupported     = errorJSON(1205)

	errorCaseNotFound  = errorJSON(1300)
	errorNotCaseLawyer = errorJSON(1301)

	errorThreadAccessDenied = errorJSON(1400)

	errorLawyerNotFound = errorJSON(1500)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
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
