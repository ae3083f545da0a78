package zap

import "strings"

// controlCharReplacer escapes control characters that can forge extra log
// lines (CWE-117). The JSON encoder escapes these on its own inside string
// values; the console encoder used by the local and development profiles
// does not, so messages and interface-path field values are escaped before
// they reach the encoder.
//
//nolint:gochecknoglobals
var controlCharReplacer = strings.NewReplacer(
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// sanitizeMessage escapes control characters in a log message.
func sanitizeMessage(msg string) string {
	return controlCharReplacer.Replace(msg)
}

// sanitizeValue escapes control characters in string field values.
// Non-string values pass through unchanged; the encoder handles them.
func sanitizeValue(value any) any {
	if s, ok := value.(string); ok {
		return controlCharReplacer.Replace(s)
	}

	return value
}
