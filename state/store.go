// Package state holds shared application state observable by UI components.
package state

// Store owns the committed player name. There is exactly one writer path,
// SetUserName; reads are free. All access happens on the frame loop
// goroutine, so no locking is involved and a write is visible to the very
// next read.
type Store struct {
	userName  string
	observers []func()
}

// NewStore creates a store with the given initial committed name.
func NewStore(userName string) *Store {
	return &Store{userName: userName}
}

// SelectUserName returns the committed player name.
func (s *Store) SelectUserName() string {
	return s.userName
}

// SetUserName commits a new player name and notifies observers. Observers
// run synchronously, in subscription order, after the value is applied;
// nothing is queued, so ordering relative to the caller is exact.
func (s *Store) SetUserName(name string) {
	s.userName = name
	for _, observer := range s.observers {
		observer()
	}
}

// Subscribe registers an observer invoked after every committed write.
// Subscriptions last for the life of the store.
func (s *Store) Subscribe(observer func()) {
	s.observers = append(s.observers, observer)
}
