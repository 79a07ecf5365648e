package http

import (
	"errors"
	"io"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strings"
	"time"

	"github.com/oshokin/steam-session/internal/config"
	"github.com/oshokin/steam-session/internal/logger"
	"github.com/oshokin/steam-session/internal/utils"
)

// LogTransport is an http.RoundTripper that dumps requests and responses at debug level.
// Passwords, one-time codes and cookie values never reach the log.
type LogTransport struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// maxLogLength is the maximum length of a single dump.
	maxLogLength uint64
}

// Static error definitions for better error handling.
var (
	// ErrNilRequest indicates that the HTTP request is nil.
	ErrNilRequest = errors.New("request is nil")
)

// sensitiveFormFields lists form fields whose values are redacted in dumps.
//
//nolint:gochecknoglobals // Immutable lookup table.
var sensitiveFormFields = []string{"password", "twofactorcode", "emailauth"}

// sensitiveHeaders lists headers whose values are redacted in dumps.
//
//nolint:gochecknoglobals // Immutable lookup table.
var sensitiveHeaders = []string{"Cookie", "Set-Cookie", "Proxy-Authorization"}

// NewLogTransport creates and returns a new instance of LogTransport.
// A zero maxLogLength falls back to config.DefaultMaxLogLength.
func NewLogTransport(next http.RoundTripper, maxLogLength uint64) http.RoundTripper {
	if maxLogLength == 0 {
		maxLogLength = config.DefaultMaxLogLength
	}

	return &LogTransport{
		next:         next,
		maxLogLength: maxLogLength,
	}
}

// RoundTrip executes a single HTTP transaction and logs the request and response.
func (t *LogTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	if !logger.IsDebugLevel() {
		return t.next.RoundTrip(req)
	}

	ctx := req.Context()

	requestDump := t.dumpRequest(req)

	startTime := time.Now()

	resp, err := t.next.RoundTrip(req)

	duration := time.Since(startTime)

	if err != nil {
		logger.Debugf(ctx, "Request failed: %s %s | Error: %v", req.Method, req.URL.Redacted(), err)

		return nil, err
	}

	responseDump := t.dumpResponse(resp)

	logger.Debugf(ctx, "%s %s [%d] %s\nRequest: %s\nResponse: %s",
		req.Method, req.URL.Path, resp.StatusCode, duration, requestDump, responseDump)

	return resp, nil
}

func (t *LogTransport) dumpRequest(req *http.Request) string {
	// Headers are dumped from a clone so that redaction never touches the wire.
	clone := req.Clone(req.Context())
	redactHeaders(clone.Header)

	dump, err := httputil.DumpRequest(clone, false)
	if err != nil {
		return err.Error()
	}

	var builder strings.Builder

	builder.Write(dump)

	if req.GetBody != nil {
		body, bodyErr := req.GetBody()
		if bodyErr == nil {
			data, _ := io.ReadAll(body)
			_ = body.Close()

			builder.WriteString(redactForm(req.Header.Get("Content-Type"), string(data)))
		}
	}

	return t.truncate(builder.String())
}

func (t *LogTransport) dumpResponse(resp *http.Response) string {
	contentType := resp.Header.Get("Content-Type")

	dump, err := httputil.DumpResponse(resp, utils.IsTextContentType(contentType))
	if err != nil {
		return err.Error()
	}

	text := string(dump)
	for _, value := range resp.Header.Values("Set-Cookie") {
		text = strings.ReplaceAll(text, value, redactCookie(value))
	}

	return t.truncate(text)
}

func (t *LogTransport) truncate(data string) string {
	if uint64(len(data)) > t.maxLogLength {
		return data[:t.maxLogLength] + "... [truncated]"
	}

	return data
}

func redactHeaders(header http.Header) {
	for _, name := range sensitiveHeaders {
		if values := header.Values(name); len(values) > 0 {
			header.Set(name, redactedValue)
		}
	}
}

// redactCookie keeps the cookie name and attributes but hides its value.
func redactCookie(setCookie string) string {
	pair, attributes, hasAttributes := strings.Cut(setCookie, ";")

	name, _, _ := strings.Cut(pair, "=")

	redacted := name + "=" + redactedValue
	if hasAttributes {
		redacted += ";" + attributes
	}

	return redacted
}

func redactForm(contentType, body string) string {
	if !strings.HasPrefix(strings.ToLower(contentType), "application/x-www-form-urlencoded") {
		return body
	}

	values, err := url.ParseQuery(body)
	if err != nil {
		return body
	}

	for _, field := range sensitiveFormFields {
		if values.Get(field) != "" {
			values.Set(field, redactedValue)
		}
	}

	return values.Encode()
}
