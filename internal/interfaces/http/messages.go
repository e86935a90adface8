package http

// Mensajes de respuesta expuestos al cliente.
const (
	msgFetched         = "Fetched successfully"
	msgLoggedIn        = "Logged in successfully"
	msgLoggedOut       = "Logged out successfully"
	msgRegistered      = "Registered successfully"
	msgVerified        = "Verified successfully"
	msgVerificationOut = "Verification email sent successfully"
	msgResetRequested  = "Password reset request sent successfully"
	msgResetDone       = "Password reset successful"
	msgPasswordChanged = "Password Changed"
	msgTokenRefreshed  = "Token refreshed successfully"

	msgInternal        = "Internal server error"
	msgUnauthorized    = "Unauthorized"
	msgNotFound        = "Not found"
	msgConflict        = "Conflict"
	msgValidation      = "Validation error"
	msgTooManyRequest  = "Too many requests"
	msgInvalidInput    = "Invalid input"
	msgRouteNotFound   = "route not found"
	msgEmployeeLimit   = "Employee limit reached for the current plan"
	msgAlreadyVerified = "Account already verified"

	msgWrongCredentials = "Wrong credentials"
	msgEmailInUse       = "Email already in use"
	msgInvalidToken     = "Invalid token"
	msgTokenExpired     = "Token expired"
	msgAccountLocked    = "Account is locked"
	msgUnauthenticated  = "Unauthenticated"

	msgAdminCreated = "Admin created"
	msgAdminUpdated = "Admin updated"
	msgAdminMissing = "Admin not found"

	msgCompanyCreated = "Company created"
	msgCompanyUpdated = "Company updated"
	msgCompanyDeleted = "Company deleted"
	msgCompanyMissing = "Company not found"

	msgEmployeeCreated = "Employee created"
	msgEmployeeUpdated = "Employee updated"
	msgEmployeeDeleted = "Employee deleted"
	msgEmployeeMissing = "Employee not found"

	msgIndividualUpdated = "Individual updated"
	msgIndividualDeleted = "Individual deleted"
	msgIndividualMissing = "Individual not found"

	msgInvitationFailed = ", but the invitation email could not be sent"
)
