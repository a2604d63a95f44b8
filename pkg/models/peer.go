package models

import "fmt"

// PeerID is the stable identifier of a network participant. IDs are unique
// and non-negative within a single registry snapshot.
type PeerID int64

func (id PeerID) String() string {
	return fmt.Sprintf("%d", int64(id))
}

// Address is the network endpoint a peer serves on.
type Address struct {
	Host string `json:"Host"`
	Port uint16 `json:"Port"`
}

func (a Address) String() string {
	return fmt.Sprintf("%s:%d", a.Host, a.Port)
}

// PeerInfo describes a single network participant as published to the
// registry: whether it is currently serving, whether it holds a validator
// permit, and how much stake it has bonded.
type PeerInfo struct {
	ID              PeerID  `json:"ID"`
	Serving         bool    `json:"Serving"`
	ValidatorPermit bool    `json:"ValidatorPermit"`
	Stake           float64 `json:"Stake"`
	Address         Address `json:"Address"`
}
