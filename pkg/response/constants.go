package response

const (
	// MessageSuccess is the default message for successful responses.
	MessageSuccess = "Success"

	// InternalServerErrorCode is the error code for unexpected failures.
	InternalServerErrorCode = 500

	// DefaultErrorMessage hides internal details from API consumers.
	DefaultErrorMessage = "Something went wrong. Please try again later."

	// DateFormat renders Date values.
	DateFormat = "2006-01-02"

	// DateTimeFormat renders DateTime values.
	DateTimeFormat = "2006-01-02 15:04:05"
)
