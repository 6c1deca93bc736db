package cmd

// close shuts down every open session exactly once. Per-session close
// failures are logged, never returned, so cleanup is best-effort rather than
// transactional. State is cleared afterwards, making a second call a no-op.
func (a *fleetAgent) close() {
	if a.closed {
		return
	}
	for _, s := range a.sessions {
		if err := s.client.Close(); err != nil {
			log.WithField("host", s.addr).Warnf("error closing connection: %v", err)
		}
	}
	a.sessions = nil
	a.closed = true
}
