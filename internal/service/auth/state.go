package auth

// State is the position of an attempt in the login pipeline.
type State int

const (
	// StateIdle means no step has run yet.
	StateIdle State = iota
	// StateKeyRequested means the RSA key was requested.
	StateKeyRequested
	// StatePasswordEncrypted means the password was encrypted.
	StatePasswordEncrypted
	// StateCodeReady means the two-factor code is known.
	StateCodeReady
	// StateLoginSubmitted means the login form was sent.
	StateLoginSubmitted
	// StateAuthenticated means session cookies were issued.
	StateAuthenticated
	// StateGuardRequired means Steam asked for a Steam Guard code.
	StateGuardRequired
	// StateCaptchaRequired means Steam asked for a captcha.
	StateCaptchaRequired
	// StateRejected means Steam refused the login.
	StateRejected
)

var stateNames = map[State]string{
	StateIdle:              "idle",
	StateKeyRequested:      "key requested",
	StatePasswordEncrypted: "password encrypted",
	StateCodeReady:         "code ready",
	StateLoginSubmitted:    "login submitted",
	StateAuthenticated:     "authenticated",
	StateGuardRequired:     "guard required",
	StateCaptchaRequired:   "captcha required",
	StateRejected:          "rejected",
}

// String returns a human-readable state name.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}

	return "unknown"
}

// IsTerminal reports whether the state ends an attempt.
func (s State) IsTerminal() bool {
	return s >= StateAuthenticated
}
