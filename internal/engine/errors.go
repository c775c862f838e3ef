package engine

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors surfaced by the orchestrator. These are the only
// calculation failures; the numeric components themselves are total.
var (
	// ErrEmptySourceText indicates that type-specific resolution produced
	// no non-whitespace raw text. This is a hard stop surfaced to the
	// caller as a validation condition; no silent zero-result is produced.
	ErrEmptySourceText = constError("empty source text")

	// ErrUnknownType indicates a request whose Type is not one of the six
	// calculation kinds.
	ErrUnknownType = constError("unknown calculation type")

	// ErrInvalidReference indicates a quran request whose surah/ayah pair
	// addresses no real verse.
	ErrInvalidReference = constError("invalid verse reference")

	// ErrNoVerseProvider indicates a quran request by reference with no
	// pasted text on an engine constructed without a verse provider.
	ErrNoVerseProvider = constError("no verse text provider configured")
)
