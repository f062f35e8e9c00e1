package logging

// Encoding determines how a logger renders its output: human-readable
// plain text, a key=value logfmt line, or a single JSON
// object per record.
type Encoding string

const (
	// EncodingPlain renders only the (capitalized) message, one line per record.
	EncodingPlain Encoding = "plain"
	// EncodingLogfmt renders key=value pairs, matching the classic logfmt convention.
	EncodingLogfmt Encoding = "logfmt"
	// EncodingJSON renders one JSON object per record.
	EncodingJSON Encoding = "json"
)
