package logger

// Exports for white-box testing.
var (
	CollectErrorMessages = collectErrorMessages
	FormatErrorChain     = formatErrorChain
)
