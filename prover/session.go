package prover

import (
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// State is the stage a session has reached.
type State int

const (
	Built State = iota
	Witnessed
	Proved
	Verified
	Failed
)

func (s State) String() string {
	switch s {
	case Built:
		return "built"
	case Witnessed:
		return "witnessed"
	case Proved:
		return "proved"
	case Verified:
		return "verified"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Session walks one input through Built -> Witnessed -> Proved -> Verified.
// Every step runs at most once; a failed step ends the session.
type Session struct {
	mu      sync.Mutex
	desc    *Description
	state   State
	witness *Witness
	proof   *Proof
}

// NewSession starts a session on d.
func (d *Description) NewSession() *Session {
	return &Session{desc: d, state: Built}
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Assign generates the witness for input.
func (s *Session) Assign(input []fr.Element) (*Witness, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.expect(Built); err != nil {
		return nil, err
	}
	w, err := Assign(s.desc, input)
	if err != nil {
		s.state = Failed
		return nil, err
	}
	s.witness, s.state = w, Witnessed
	return w, nil
}

// Prove proves the session's witness.
func (s *Session) Prove() (*Proof, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.expect(Witnessed); err != nil {
		return nil, err
	}
	p, err := s.desc.Prove(s.witness)
	if err != nil {
		s.state = Failed
		return nil, err
	}
	s.proof, s.state = p, Proved
	return p, nil
}

// Verify checks the session's proof against the witness' public part.
func (s *Session) Verify() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.expect(Proved); err != nil {
		return err
	}
	if err := s.desc.Verify(s.proof, s.witness.Public()); err != nil {
		s.state = Failed
		return err
	}
	s.state = Verified
	return nil
}

func (s *Session) expect(want State) error {
	if s.state != want {
		return failf(ErrInvalidTransition, "session is %s, want %s", s.state, want)
	}
	return nil
}
