package message

const (
	InvalidClient = "Invalid client credentials."
	InvalidInput  = "Invalid input."
	EnvErrFmt     = "environment variable is not set: %s"
)
