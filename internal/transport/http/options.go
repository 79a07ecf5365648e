package http

import "context"

// requestOptions carries per-request transport switches through the context,
// so that round trippers and redirect policy shared by a client can honor them.
type requestOptions struct {
	followRedirects   bool
	skipCookies       bool
	discardSetCookies bool
}

type requestOptionsKey struct{}

func withRequestOptions(ctx context.Context, options requestOptions) context.Context {
	return context.WithValue(ctx, requestOptionsKey{}, options)
}

func optionsFromContext(ctx context.Context) requestOptions {
	options, _ := ctx.Value(requestOptionsKey{}).(requestOptions)

	return options
}
