package runtime

import (
	"slices"
	"sync"

	"github.com/samber/lo"
)

type Set map[string]struct{}

// Registry keeps track of which peers are subscribed to which topic.
type Registry struct {
	mu           sync.RWMutex
	topicMembers map[string]Set // map topic to peers
}

func NewRegistry() *Registry {
	return &Registry{topicMembers: make(map[string]Set)}
}

// Join adds a peer to a topic, creating the topic on the fly.
// Returns false if the peer was already a member.
func (r *Registry) Join(peerID, topic string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.topicMembers[topic]
	if !ok {
		members = make(Set)
		r.topicMembers[topic] = members
	}
	if _, already := members[peerID]; already {
		return false
	}
	members[peerID] = struct{}{}
	return true
}

// Leave removes a peer from a topic.
// No empty set is left behind once the last member leaves.
func (r *Registry) Leave(peerID, topic string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.leave(peerID, topic)
}

func (r *Registry) leave(peerID, topic string) bool {
	members, ok := r.topicMembers[topic]
	if !ok {
		return false
	}
	if _, in := members[peerID]; !in {
		return false
	}
	delete(members, peerID)
	if len(members) == 0 {
		delete(r.topicMembers, topic)
	}
	return true
}

// RemovePeer drops a peer from every topic, it returns the topics it left.
func (r *Registry) RemovePeer(peerID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var left []string
	for topic := range r.topicMembers {
		if r.leave(peerID, topic) {
			left = append(left, topic)
		}
	}
	slices.Sort(left)
	return left
}

// IsMember reports whether a peer is subscribed to a topic.
func (r *Registry) IsMember(peerID, topic string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.topicMembers[topic][peerID]
	return ok
}

// Members returns the peers of a topic, sorted. Nil if nobody is subscribed.
func (r *Registry) Members(topic string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.topicMembers[topic]
	if !ok {
		return nil
	}
	res := lo.Keys(members)
	slices.Sort(res)
	return res
}

// Topics returns every topic with at least one member, sorted.
func (r *Registry) Topics() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := lo.Keys(r.topicMembers)
	slices.Sort(res)
	return res
}
