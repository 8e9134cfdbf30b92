// Package keystore holds the identity of the local peer: an Ed25519 key its
// peer id derives from, and a static X25519 key authenticated by it.
package keystore

import (
	"crypto/rand"
	"fmt"

	"github.com/libp2p/go-libp2p/core/crypto"
	"github.com/libp2p/go-libp2p/core/peer"
	"golang.org/x/crypto/curve25519"

	"github.com/shaddyshad/p2p-chat/errors"
)

const staticKeyPrefix = "noise-libp2p-static-key:"

type StaticKey struct {
	Private   []byte
	Public    []byte
	Signature []byte // identity signature over staticKeyPrefix + Public
}

// KeyStore is generated once per process and never mutated.
type KeyStore struct {
	identity crypto.PrivKey
	peerID   peer.ID
	static   StaticKey
}

// New generates fresh keys from the system entropy source.
func New() (*KeyStore, error) {
	identity, _, err := crypto.GenerateEd25519Key(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("identity key: %w", err)
	}
	peerID, err := peer.IDFromPrivateKey(identity)
	if err != nil {
		return nil, fmt.Errorf("peer id: %w", err)
	}

	private := make([]byte, curve25519.ScalarSize)
	if _, err := rand.Read(private); err != nil {
		return nil, fmt.Errorf("static key: %w", err)
	}
	public, err := curve25519.X25519(private, curve25519.Basepoint)
	if err != nil {
		return nil, fmt.Errorf("static key: %w", err)
	}
	signature, err := identity.Sign(signedPayload(public))
	if err != nil {
		return nil, fmt.Errorf("static key signature: %w", err)
	}

	return &KeyStore{
		identity: identity,
		peerID:   peerID,
		static:   StaticKey{Private: private, Public: public, Signature: signature},
	}, nil
}

func (k *KeyStore) PeerID() string {
	return k.peerID.String()
}

func (k *KeyStore) Identity() crypto.PrivKey {
	return k.identity
}

func (k *KeyStore) StaticKey() StaticKey {
	return k.static
}

// Verify checks that the static key is signed by the identity key.
func (k *KeyStore) Verify() error {
	ok, err := k.identity.GetPublic().Verify(signedPayload(k.static.Public), k.static.Signature)
	if err != nil || !ok {
		return errors.ErrInvalidStaticKey
	}
	return nil
}

func signedPayload(public []byte) []byte {
	return append([]byte(staticKeyPrefix), public...)
}
