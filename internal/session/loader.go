package session

// Phase is the lifecycle state of a loader.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseFailed
)

// String returns a log-friendly phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// Loader is the per-fetch state machine. Every issued request captures the
// generation returned by Begin; a response is only applied when its
// generation is still current. Reset also advances the generation, so a
// cascade reset invalidates every outstanding request without touching the
// wire (cancellation by staleness).
type Loader struct {
	phase Phase
	gen   uint64
	err   error
}

// Begin moves the loader to Loading and returns the generation token the
// request must carry back.
func (l *Loader) Begin() uint64 {
	l.gen++
	l.phase = PhaseLoading
	l.err = nil
	return l.gen
}

// Current reports whether gen is the latest issued generation.
func (l *Loader) Current(gen uint64) bool {
	return gen == l.gen
}

// Succeed applies a successful response. It returns false, without state
// change, when the response is stale.
func (l *Loader) Succeed(gen uint64) bool {
	if gen != l.gen {
		return false
	}
	l.phase = PhaseLoaded
	l.err = nil
	return true
}

// Fail applies a failed response: loading clears, the error is kept for the
// view. Stale failures are dropped like stale successes.
func (l *Loader) Fail(gen uint64, err error) bool {
	if gen != l.gen {
		return false
	}
	l.phase = PhaseFailed
	l.err = err
	return true
}

// Reset returns the loader to Idle and invalidates all in-flight requests.
func (l *Loader) Reset() {
	l.gen++
	l.phase = PhaseIdle
	l.err = nil
}

// Phase returns the current lifecycle phase.
func (l *Loader) Phase() Phase { return l.phase }

// Loading reports whether a request is in flight.
func (l *Loader) Loading() bool { return l.phase == PhaseLoading }

// Err returns the error of the last failed fetch, nil otherwise.
func (l *Loader) Err() error { return l.err }

// Generation returns the latest issued generation. Mostly useful in tests.
func (l *Loader) Generation() uint64 { return l.gen }
