// Package corporation models the corporation-number field: its format rule,
// the outcome of a remote check, and the verification state shown to users.
package corporation

// NumberLength is the exact number of digits in a corporation number.
const NumberLength = 9

// IsWellFormed reports whether s is exactly NumberLength ASCII digits with no
// surrounding characters. Only well-formed numbers are sent for remote checks.
func IsWellFormed(s string) bool {
	if len(s) != NumberLength {
		return false
	}
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Outcome is the result of a remote corporation-number check. It is a tagged
// union: when Valid is true, Number echoes the confirmed number and Message
// is empty; when Valid is false, Message carries the rejection reason.
type Outcome struct {
	Valid   bool
	Number  string
	Message string
}

// Confirmed returns the Valid arm of Outcome.
func Confirmed(number string) Outcome {
	return Outcome{Valid: true, Number: number}
}

// Rejected returns the rejection arm of Outcome.
func Rejected(message string) Outcome {
	return Outcome{Message: message}
}
