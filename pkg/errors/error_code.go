package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInvalidPeriod        ErrorCode = 102
	ErrCodeInvalidWindow        ErrorCode = 103
	ErrCodeInvalidThreshold     ErrorCode = 104
	ErrCodeInvalidType          ErrorCode = 105
	ErrCodeMissingParameter     ErrorCode = 106
	ErrCodeInvalidDateRange     ErrorCode = 107
	ErrCodeInvalidVersion       ErrorCode = 108

	// Data integrity errors (200-299)
	ErrCodeDataIntegrity         ErrorCode = 200
	ErrCodeEmptySeries           ErrorCode = 201
	ErrCodeNonMonotonicTimestamp ErrorCode = 202
	ErrCodeDuplicateTimestamp    ErrorCode = 203
	ErrCodeNonPositiveClose      ErrorCode = 204

	// Indicator errors (300-399)
	ErrCodeIndicatorNotFound      ErrorCode = 300
	ErrCodeIndicatorAlreadyExists ErrorCode = 301
	ErrCodeInsufficientHistory    ErrorCode = 302

	// Strategy errors (400-499)
	ErrCodeUnsupportedStrategy  ErrorCode = 400
	ErrCodeStrategyConfigError  ErrorCode = 401
	ErrCodeStrategyRuntimeError ErrorCode = 402

	// Execution errors (500-599)
	ErrCodeOrderFailed     ErrorCode = 500
	ErrCodeOrderRejected   ErrorCode = 501
	ErrCodeInvalidQuantity ErrorCode = 502

	// Backtest errors (600-699)
	ErrCodeSignalLengthMismatch ErrorCode = 600
	ErrCodeBacktestConfigError  ErrorCode = 601

	// Market data errors (700-799)
	ErrCodeDataUnavailable       ErrorCode = 700
	ErrCodeMarketDataFetchFailed ErrorCode = 701
	ErrCodeMarketDataParseFailed ErrorCode = 702
	ErrCodeInvalidProvider       ErrorCode = 703
	ErrCodeStoreFailed           ErrorCode = 704
)
