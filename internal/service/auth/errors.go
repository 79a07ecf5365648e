package auth

import (
	"errors"
	"fmt"

	"github.com/oshokin/steam-session/internal/totp"
)

// Static error definitions for better error handling.
var (
	// ErrAlreadyAuthenticated indicates that the session is already logged in.
	ErrAlreadyAuthenticated = errors.New("already logged in")
	// ErrInvalidParameters indicates missing credentials.
	ErrInvalidParameters = errors.New("authentication parameters are not valid")
	// ErrKeyFetchFailed indicates that Steam did not issue an RSA key.
	ErrKeyFetchFailed = errors.New("can't get RSA key")
	// ErrInvalidSecretEncoding indicates a shared secret that cannot be decoded.
	ErrInvalidSecretEncoding = totp.ErrInvalidSecretEncoding
	// ErrGuardRequired indicates that Steam asks for a Steam Guard code.
	ErrGuardRequired = errors.New("steam guard code required")
	// ErrCaptchaRequired indicates that Steam asks to solve a captcha.
	ErrCaptchaRequired = errors.New("captcha required")
	// ErrRejected indicates that Steam refused the login.
	ErrRejected = errors.New("login rejected")
	// ErrTransport indicates a network failure or an unexpected HTTP status.
	ErrTransport = errors.New("transport error")
	// ErrMalformedServerResponse indicates a response that cannot be interpreted.
	ErrMalformedServerResponse = errors.New("malformed server response")
)

// Stage names the step of an attempt at which it failed.
type Stage string

const (
	// StagePrecondition covers the checks run before any key is requested.
	StagePrecondition Stage = "precondition"
	// StageKeyFetch covers the RSA key request.
	StageKeyFetch Stage = "key fetch"
	// StagePasswordEncryption covers the RSA encryption of the password.
	StagePasswordEncryption Stage = "password encryption"
	// StageCodeGeneration covers the derivation of the two-factor code.
	StageCodeGeneration Stage = "code generation"
	// StageLoginSubmission covers the login request.
	StageLoginSubmission Stage = "login submission"
	// StageResponseParsing covers the interpretation of the login response.
	StageResponseParsing Stage = "response parsing"
)

// Error is returned by Authenticate for every failure.
type Error struct {
	// Stage is the step at which the attempt failed.
	Stage Stage
	// Err is the cause, matchable with errors.Is against the sentinels above.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("can't authenticate in Steam (%s): %v", e.Stage, e.Err)
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// GuardKind tells where a Steam Guard code is delivered.
type GuardKind string

const (
	// GuardEmail means the code was sent by email.
	GuardEmail GuardKind = "email"
	// GuardMobile means the code comes from the mobile authenticator.
	GuardMobile GuardKind = "mobile"
)

// GuardRequiredError reports that Steam wants a Steam Guard code.
type GuardRequiredError struct {
	// Kind is where the code is delivered.
	Kind GuardKind
	// EmailDomain is the domain the email was sent to, for GuardEmail.
	EmailDomain string
}

// Error implements the error interface.
func (e *GuardRequiredError) Error() string {
	if e.Kind == GuardEmail && e.EmailDomain != "" {
		return fmt.Sprintf("%s: %s (sent to @%s)", ErrGuardRequired, e.Kind, e.EmailDomain)
	}

	return fmt.Sprintf("%s: %s", ErrGuardRequired, e.Kind)
}

// Is makes the error match ErrGuardRequired.
func (e *GuardRequiredError) Is(target error) bool {
	return target == ErrGuardRequired
}

// RejectedError reports that Steam refused the login.
type RejectedError struct {
	// Reason is the message returned by Steam.
	Reason string
}

// Error implements the error interface.
func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrRejected, e.Reason)
}

// Is makes the error match ErrRejected.
func (e *RejectedError) Is(target error) bool {
	return target == ErrRejected
}

func stageError(stage Stage, err error) *Error {
	return &Error{Stage: stage, Err: err}
}
