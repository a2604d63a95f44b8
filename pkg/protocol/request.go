// Package protocol defines the stub compute protocol the network speaks: a
// request carries a single integer input, and a serving peer is expected to
// answer with a deterministic transformation of it. Real subnets replace this
// with their own message shape and computation.
package protocol

// Request is a single protocol message. Output is left at its zero value
// until a peer answers; exchanges that time out never populate it.
type Request struct {
	Input  int64 `json:"Input"`
	Output int64 `json:"Output"`
}

func NewRequest(input int64) *Request {
	return &Request{Input: input}
}

// Clone returns a copy of the request. Transports operate on clones so that
// concurrent exchanges never mutate the caller's message.
func (r *Request) Clone() *Request {
	if r == nil {
		return &Request{}
	}
	clone := *r
	return &clone
}

// Transform is the computation a serving peer applies to a request input.
func Transform(input int64) int64 {
	return input * 2
}
