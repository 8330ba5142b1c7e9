package service

import "sync"

// LockerService serializes operations sharing a key, e.g. activations for
// the same store. Mutexes are created on first use and kept forever, the key
// space (store ids) is small enough for that.
type LockerService struct {
	locks sync.Map
}

func NewLockerService() *LockerService {
	return &LockerService{}
}

func (s *LockerService) Lock(key string) {
	m, _ := s.locks.LoadOrStore(key, &sync.Mutex{})
	m.(*sync.Mutex).Lock()
}

func (s *LockerService) Unlock(key string) {
	m, ok := s.locks.Load(key)
	if !ok {
		return
	}
	m.(*sync.Mutex).Unlock()
}
