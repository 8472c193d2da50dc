package corporation

// State is the verification state of a corporation-number field.
type State string

const (
	StateIdle      State = "idle"
	StateVerifying State = "verifying"
	StateValid     State = "valid"
	StateInvalid   State = "invalid"
)

// IsValid returns true if the state is one of the defined constants.
func (s State) IsValid() bool {
	switch s {
	case StateIdle, StateVerifying, StateValid, StateInvalid:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s State) String() string {
	return string(s)
}

// Verification pairs a State with its error message. Error is non-empty if
// and only if State is StateInvalid; use the constructors to keep that true.
type Verification struct {
	State State
	Error string
}

// Idle returns the initial verification, also entered on every edit.
func Idle() Verification {
	return Verification{State: StateIdle}
}

// Verifying returns the verification shown while a remote check runs.
func Verifying() Verification {
	return Verification{State: StateVerifying}
}

// Valid returns the verification for a confirmed number.
func Valid() Verification {
	return Verification{State: StateValid}
}

// Invalid returns a failed verification. An empty message is replaced by
// fallback so the invariant between State and Error holds.
func Invalid(message, fallback string) Verification {
	if message == "" {
		message = fallback
	}
	return Verification{State: StateInvalid, Error: message}
}
