package store

// The auth token is a single opaque slot holding the logged-in admin's
// ID. Presence means authenticated; there is no expiry.

func (s *Store) SetAuthToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(keyAuthToken, token)
}

// GetAuthToken returns the stored token, or "" when logged out.
func (s *Store) GetAuthToken() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var token string
	if _, err := s.read(keyAuthToken, &token); err != nil {
		return "", err
	}
	return token, nil
}

func (s *Store) ClearAuthToken() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backend.Delete(keyAuthToken)
}

func (s *Store) IsAuthenticated() (bool, error) {
	token, err := s.GetAuthToken()
	if err != nil {
		return false, err
	}
	return token != "", nil
}
