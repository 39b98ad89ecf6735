package common

const (
	// MaxSubmissionRequestBody limits JSON request bodies for the submission endpoint.
	MaxSubmissionRequestBody = 64 << 10
)
