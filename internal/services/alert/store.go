package alert

import (
	"sync"

	"github.com/moneyhiver/hiver/internal/models"
)

// SubscriberStore holds active alert subscriptions in memory, keyed by
// email address. One subscription per email; a new one replaces the old.
type SubscriberStore struct {
	mu   sync.RWMutex
	subs map[string]*models.AlertSubscription
}

// NewSubscriberStore creates an empty subscriber store.
func NewSubscriberStore() *SubscriberStore {
	return &SubscriberStore{
		subs: make(map[string]*models.AlertSubscription),
	}
}

// Put stores a subscription, replacing any existing one for the same email.
func (s *SubscriberStore) Put(sub *models.AlertSubscription) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs[sub.Email] = sub
}

// Delete removes the subscription for an email, reporting whether one existed.
func (s *SubscriberStore) Delete(email string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.subs[email]
	delete(s.subs, email)
	return ok
}

// All returns a snapshot of the active subscriptions.
func (s *SubscriberStore) All() []*models.AlertSubscription {
	s.mu.RLock()
	defer s.mu.RUnlock()
	subs := make([]*models.AlertSubscription, 0, len(s.subs))
	for _, sub := range s.subs {
		subs = append(subs, sub)
	}
	return subs
}

// Len returns the number of active subscriptions.
func (s *SubscriberStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subs)
}
