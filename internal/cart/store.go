package cart

import "sync"

// Store owns every live cart, keyed by session: the authenticated user id, or
// the guest cookie id. Built once at bootstrap and injected into consumers,
// never a package-level singleton, so its lifetime and session scoping stay
// explicit.
type Store struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// getLocked returns the session's cart, creating it lazily.
// Caller must hold mu.
func (s *Store) getLocked(session string) *Cart {
	c, ok := s.carts[session]
	if !ok {
		c = New()
		s.carts[session] = c
	}
	return c
}

func (s *Store) AddLine(session string, line Line) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.getLocked(session)
	if err := c.AddLine(line.ProductID, line.Name, line.UnitPrice, line.Quantity, line.ImageURL); err != nil {
		return c.Snapshot(), err
	}
	return c.Snapshot(), nil
}

func (s *Store) RemoveLine(session string, productID int64) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.getLocked(session)
	c.RemoveLine(productID)
	return c.Snapshot()
}

func (s *Store) SetQuantity(session string, productID, quantity int64) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.getLocked(session)
	c.SetQuantity(productID, quantity)
	return c.Snapshot()
}

func (s *Store) Increment(session string, productID int64) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.getLocked(session)
	if err := c.Increment(productID); err != nil {
		return c.Snapshot(), err
	}
	return c.Snapshot(), nil
}

func (s *Store) Decrement(session string, productID int64) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.getLocked(session)
	if err := c.Decrement(productID); err != nil {
		return c.Snapshot(), err
	}
	return c.Snapshot(), nil
}

func (s *Store) Clear(session string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.carts[session]; ok {
		c.Clear()
	}
}

// Destroy drops the session's cart entirely. Called on logout so a later
// login on the same browser never inherits the previous user's cart.
func (s *Store) Destroy(session string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, session)
}

func (s *Store) Snapshot(session string) Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if c, ok := s.carts[session]; ok {
		return c.Snapshot()
	}
	return Snapshot{Lines: []Line{}}
}
