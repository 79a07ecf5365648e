package http

import "time"

const (
	// DefaultTimeout is the default timeout duration for HTTP requests.
	DefaultTimeout = 60 * time.Second

	// DefaultUserAgent is the default User-Agent string used for HTTP requests.
	// Steam serves the login endpoints to browser-like clients only.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36" //nolint: lll

	// maxRedirects bounds redirect chains when a request opts into following them.
	maxRedirects = 10

	// maxResponseBodySize caps how much of a response body is read into memory.
	maxResponseBodySize = 16 << 20

	// contentTypeForm is the Content-Type of form-encoded request bodies.
	contentTypeForm = "application/x-www-form-urlencoded; charset=UTF-8"

	// redactedValue replaces secrets in debug dumps.
	redactedValue = "[redacted]"
)
