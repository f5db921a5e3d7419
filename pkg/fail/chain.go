package fail

import "errors"

// DefaultMaxDepth bounds chain traversal when no explicit depth is given.
const DefaultMaxDepth = 999

// CausalChain returns the causes of f from outermost to innermost, bounded
// by DefaultMaxDepth. The sequence never includes f itself.
func CausalChain(f Failure) []Cause {
	return CausalChainDepth(f, DefaultMaxDepth)
}

// CausalChainDepth walks the cause links of f iteratively and returns at
// most maxDepth causes. A FailureCause is followed through the wrapped
// failure's own cause; a ThrowableCause is followed through the native
// error's errors.Unwrap chain. The depth bound guarantees termination even
// on self-referential cause graphs.
func CausalChainDepth(f Failure, maxDepth int) []Cause {
	if IsNil(f) || maxDepth <= 0 {
		return nil
	}

	chain := make([]Cause, 0)
	current := f.FailCause()

	for current != nil && len(chain) < maxDepth {
		chain = append(chain, current)

		switch c := current.(type) {
		case FailureCause:
			if IsNil(c.failure) {
				current = nil
			} else {
				current = c.failure.FailCause()
			}
		case ThrowableCause:
			if next := errors.Unwrap(c.err); next != nil {
				current = CausedByError(next)
			} else {
				current = nil
			}
		default:
			current = nil
		}
	}
	return chain
}

// RootCause returns the deepest cause of f, or nil when f has no cause.
func RootCause(f Failure) Cause {
	return RootCauseDepth(f, DefaultMaxDepth)
}

func RootCauseDepth(f Failure, maxDepth int) Cause {
	chain := CausalChainDepth(f, maxDepth)
	if len(chain) == 0 {
		return nil
	}
	return chain[len(chain)-1]
}
