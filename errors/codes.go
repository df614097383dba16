package errors

// ErrorCode identifies an application error class
type ErrorCode int32

// Error codes
const (
	ErrorCode_HTTP_OK             ErrorCode = 200
	ErrorCode_INTERNAL            ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT    ErrorCode = 1001
	ErrorCode_INVALID_PAYLOAD     ErrorCode = 1002
	ErrorCode_MISSING_TRANSCRIPT  ErrorCode = 2000
	ErrorCode_EXTRACTION_FAILED   ErrorCode = 2001
	ErrorCode_EXPORT_FAILED       ErrorCode = 3000
	ErrorCode_SERVICE_UNAVAILABLE ErrorCode = 4000
)

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	switch c {
	case ErrorCode_HTTP_OK:
		return "HTTP_OK"
	case ErrorCode_INTERNAL:
		return "INTERNAL"
	case ErrorCode_INVALID_ARGUMENT:
		return "INVALID_ARGUMENT"
	case ErrorCode_INVALID_PAYLOAD:
		return "INVALID_PAYLOAD"
	case ErrorCode_MISSING_TRANSCRIPT:
		return "MISSING_TRANSCRIPT"
	case ErrorCode_EXTRACTION_FAILED:
		return "EXTRACTION_FAILED"
	case ErrorCode_EXPORT_FAILED:
		return "EXPORT_FAILED"
	case ErrorCode_SERVICE_UNAVAILABLE:
		return "SERVICE_UNAVAILABLE"
	default:
		return "UNKNOWN"
	}
}
