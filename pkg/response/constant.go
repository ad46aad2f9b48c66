package response

const (
	// MessageSuccess is the message of every successful response.
	MessageSuccess = "Success"
	// DefaultErrorMessage hides internal error details from clients.
	DefaultErrorMessage = "Something went wrong"
	// InternalServerErrorCode is the error_code of 500 responses.
	InternalServerErrorCode = 500
	// BadRequestErrorCode is the error_code of 400 responses.
	BadRequestErrorCode = 1

	// DateTimeFormat is the layout used by DateTime.
	DateTimeFormat = "2006-01-02 15:04:05"
)
