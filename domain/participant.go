// Package domain contains core concepts of the chat system.
// This file defines the Peer, the local actor of the network.
// No runtime, network, or UI logic should be added here.
package domain

// Peer is immutable after construction.
type Peer struct {
	PeerID   string
	Username string
}

func NewPeer(peerID, username string) Peer {
	return Peer{PeerID: peerID, Username: username}
}
