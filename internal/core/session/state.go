package session

// State is the session lifecycle position.
type State int

const (
	// StateUnknown is the state before Hydrate has resolved.
	StateUnknown State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// HydrateOutcome classifies what Hydrate found in storage.
type HydrateOutcome string

const (
	HydrateRestored HydrateOutcome = "restored"
	HydrateAbsent   HydrateOutcome = "absent"
	HydrateCorrupt  HydrateOutcome = "corrupt"
)

// Observer receives lifecycle notifications, typically to feed metrics.
type Observer interface {
	Hydrated(outcome HydrateOutcome)
	LoginFinished(err error)
	LoggedOut()
}

type nopObserver struct{}

func (nopObserver) Hydrated(HydrateOutcome) {}
func (nopObserver) LoginFinished(error)     {}
func (nopObserver) LoggedOut()              {}
