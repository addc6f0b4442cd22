package errors

// ErrorCode represents a standardized error code used throughout the pipeline
type ErrorCode string

// Parser error codes (PARSER_*)
const (
	ParserUnsupportedBank   ErrorCode = "PARSER_001"
	ParserUnsupportedFormat ErrorCode = "PARSER_002"
	ParserMalformedRecord   ErrorCode = "PARSER_003"
	ParserEmptyStatement    ErrorCode = "PARSER_004"
)

// Categorizer error codes (CATEGORY_*)
const (
	CategoryInsufficientTrainingData ErrorCode = "CATEGORY_001"
	CategoryModelUnavailable         ErrorCode = "CATEGORY_002"
	CategoryTrainingInProgress       ErrorCode = "CATEGORY_003"
)

// Store error codes (STORE_*)
const (
	StoreUserNotFound        ErrorCode = "STORE_001"
	StoreTransactionNotFound ErrorCode = "STORE_002"
	StoreSaveFailed          ErrorCode = "STORE_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemConfigurationError ErrorCode = "SYSTEM_002"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	ParserUnsupportedBank:   "Unsupported bank dialect",
	ParserUnsupportedFormat: "Unsupported statement file format",
	ParserMalformedRecord:   "Statement record failed dialect parsing",
	ParserEmptyStatement:    "Statement contained no parseable records",

	CategoryInsufficientTrainingData: "Not enough labeled descriptions to train the classifier",
	CategoryModelUnavailable:         "Classifier artifacts are missing or corrupt",
	CategoryTrainingInProgress:       "A training run is already in progress",

	StoreUserNotFound:        "User not found",
	StoreTransactionNotFound: "Transaction not found",
	StoreSaveFailed:          "Failed to persist transactions",

	SystemInternalError:      "An unexpected error occurred",
	SystemConfigurationError: "System configuration error",
}

// GetErrorMessage returns the default message for a given error code.
// If the error code is not found, it returns a generic error message.
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
