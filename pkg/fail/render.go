package fail

import "strings"

// DefaultJoiner separates rendered chain entries in PrettyString.
const DefaultJoiner = "\ncaused by "

type FailureRenderer func(f Failure) string

type ErrorRenderer func(err error) string

// RenderHandlers customizes PrettyStringWith. Nil handlers and an empty
// Joiner fall back to SimpleString, ErrorString and DefaultJoiner.
type RenderHandlers struct {
	OnFailure FailureRenderer
	OnError   ErrorRenderer
	Joiner    string
}

// SimpleString renders f as "<TypeName>: <message>". An absent (empty)
// message renders as <nil>.
func SimpleString(f Failure) string {
	if IsNil(f) {
		return "<nil>"
	}
	return TypeName(f) + ": " + messageOr(f.FailMessage())
}

// ErrorString renders a native error as "<TypeName>: <message>".
func ErrorString(err error) string {
	if IsNil(err) {
		return "<nil>"
	}
	return TypeName(err) + ": " + messageOr(err.Error())
}

// PrettyString renders f and its full causal chain with the default
// renderers and joiner, bounded by DefaultMaxDepth. It never fails,
// regardless of chain length or cyclic structure.
func PrettyString(f Failure) string {
	return PrettyStringWith(f, RenderHandlers{}, DefaultMaxDepth)
}

func PrettyStringWith(f Failure, handlers RenderHandlers, maxDepth int) string {
	if IsNil(f) {
		return "<nil>"
	}

	onFailure := handlers.OnFailure
	if onFailure == nil {
		onFailure = SimpleString
	}
	onError := handlers.OnError
	if onError == nil {
		onError = ErrorString
	}
	joiner := handlers.Joiner
	if joiner == "" {
		joiner = DefaultJoiner
	}

	chain := CausalChainDepth(f, maxDepth)

	var b strings.Builder
	b.WriteString(onFailure(f))

	for _, cause := range chain {
		b.WriteString(joiner)

		switch c := cause.(type) {
		case FailureCause:
			b.WriteString(onFailure(c.failure))
		case ThrowableCause:
			b.WriteString(onError(c.err))
		}
	}
	return b.String()
}

func messageOr(msg string) string {
	if msg == "" {
		return "<nil>"
	}
	return msg
}
