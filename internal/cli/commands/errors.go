package commands

// UsageError reports a missing or malformed command-line argument. Its
// message is shown to the user verbatim.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}
