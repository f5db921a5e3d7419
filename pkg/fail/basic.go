package fail

// Basic is a ready-made failure variant holding only a message and an
// optional cause. Callers that do not need a dedicated variant can use it
// directly, including as the build target of the attach helpers.
type Basic struct {
	message string
	cause   Cause
}

func NewBasic(message string, cause Cause) Basic {
	return Basic{message: message, cause: cause}
}

func (b Basic) FailMessage() string {
	return b.message
}

func (b Basic) FailCause() Cause {
	return b.cause
}

// Error lets Basic cross boundaries that expect a plain error.
func (b Basic) Error() string {
	return SimpleString(b)
}
