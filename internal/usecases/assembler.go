package usecases

// AssembleReply composes the final user-facing text. Pure: same inputs,
// same output.
//
//   - out-of-domain: the fixed out-of-scope message, whatever the input
//   - completion failed: the fixed fallback, upstream detail never leaks
//   - otherwise: completion text + blank line + the verbatim disclaimer
func AssembleReply(inDomain bool, completion string, completionErr error) string {
	if !inDomain {
		return OutOfScopeMessage
	}
	if completionErr != nil {
		return FallbackMessage
	}
	return completion + "\n\n" + Disclaimer
}
