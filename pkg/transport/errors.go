package transport

import "errors"

// ErrStreamingUnsupported is returned when a streaming exchange is requested
// from a transport that only implements unary request/response. The send
// fails fast; no peers are contacted.
var ErrStreamingUnsupported = errors.New("streaming responses are not supported")
