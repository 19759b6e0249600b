package event

import "fmt"

// A UniqueEvent is an event minted by a Bus. It equals no application event
// and no other UniqueEvent minted by the same bus. UniqueEvents from
// different buses may compare equal if their nonces coincide.
type UniqueEvent struct {
	nonce uint64
}

func (e UniqueEvent) String() string {
	return fmt.Sprintf("UniqueEvent(%d)", e.nonce)
}
