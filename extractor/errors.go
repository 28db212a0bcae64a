package extractor

// Kind classifies why extraction failed.
type Kind string

const (
	KindEmptyInput          Kind = "empty_input"
	KindUnsupportedFileType Kind = "unsupported_file_type"
	KindEmptyExtraction     Kind = "empty_extraction"
	KindInvalidURL          Kind = "invalid_url"
	KindNoTranscript        Kind = "no_transcript"
	KindNeedsManualInput    Kind = "needs_manual_input"
	KindInsufficientText    Kind = "insufficient_text"
	KindFetchFailed         Kind = "fetch_failed"
	KindNotFound            Kind = "not_found"
	KindInvalidInput        Kind = "invalid_input"
)

// ExtractionError is returned for every extraction failure. Message is safe
// to show to the user.
type ExtractionError struct {
	Kind             Kind
	Message          string
	Source           string
	NeedsManualInput bool
	Err              error
}

func (e *ExtractionError) Error() string {
	return e.Message
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

func fail(kind Kind, source, message string) *ExtractionError {
	return &ExtractionError{Kind: kind, Source: source, Message: message}
}

func failWith(kind Kind, source, message string, err error) *ExtractionError {
	return &ExtractionError{Kind: kind, Source: source, Message: message, Err: err}
}
