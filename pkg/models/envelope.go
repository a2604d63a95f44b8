package models

import "time"

// StatusCode classifies the outcome of a single request/response exchange.
type StatusCode int

const (
	StatusOK      StatusCode = 200
	StatusTimeout StatusCode = 408
)

const (
	StatusMessageOK      = "OK"
	StatusMessageTimeout = "Timeout"
)

// Envelope is the protocol metadata attached to one exchange with a peer:
// how the call was classified and how long the peer took to answer. Elapsed
// is recorded whether or not the call succeeded.
type Envelope struct {
	Status        StatusCode    `json:"Status"`
	StatusMessage string        `json:"StatusMessage"`
	Elapsed       time.Duration `json:"Elapsed"`
}

// Succeeded reports whether the exchange completed within its deadline.
func (e Envelope) Succeeded() bool {
	return e.Status == StatusOK
}
