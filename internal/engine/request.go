package engine

import (
	"fmt"

	"github.com/d2verb/pq-falcon-sigs/internal/falcon"
	"github.com/d2verb/pq-falcon-sigs/internal/input"
)

// Mode selects the operation of an invocation.
type Mode int

const (
	ModeKeygen Mode = iota + 1
	ModeSign
	ModeVerify
)

func (m Mode) String() string {
	switch m {
	case ModeKeygen:
		return "keygen"
	case ModeSign:
		return "sign"
	case ModeVerify:
		return "verify"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// State is a step of the engine state machine.
type State int

const (
	StateIdle State = iota
	StateKeygenRequested
	StateSignRequested
	StateVerifyRequested
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateKeygenRequested:
		return "keygen-requested"
	case StateSignRequested:
		return "sign-requested"
	case StateVerifyRequested:
		return "verify-requested"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// requested returns the state entered when m starts.
func (m Mode) requested() State {
	switch m {
	case ModeKeygen:
		return StateKeygenRequested
	case ModeSign:
		return StateSignRequested
	case ModeVerify:
		return StateVerifyRequested
	default:
		return StateIdle
	}
}

// Request describes one invocation.
type Request struct {
	Mode  Mode
	Level falcon.Level

	// PublicKeyBase64 takes precedence over the key store when verifying.
	PublicKeyBase64 string

	InputPath      string
	PositionalPath string
	OutputPath     string
	Force          bool
}

// Validate checks the request before any I/O happens.
func (r *Request) Validate() error {
	if r.Mode.requested() == StateIdle {
		return fmt.Errorf("unknown mode %v", r.Mode)
	}
	if !r.Level.Valid() {
		return fmt.Errorf("unsupported security level %d", int(r.Level))
	}
	return nil
}

// Result reports what an invocation did.
type Result struct {
	Mode  Mode
	Level falcon.Level
	State State

	// Origin is where sign/verify input came from.
	Origin input.Origin
	// Bytes is the size of the written output.
	Bytes int

	// Set by keygen.
	PublicKeyPath   string
	SecretKeyPath   string
	Fingerprint     string
	PublicKeyBase64 string
}
