// Package session holds the console's orchestration state: the active
// source system, the loader state machines with their staleness-discard
// generations, the drill-down navigation, and the derived search filter.
// It has no rendering or transport dependencies so every transition is
// testable on its own.
package session

import "fmt"

// SourceSystem identifies a logical backend data origin. Exactly one is
// active at any time; it is the implicit parameter of every fetch.
type SourceSystem string

const (
	SourceEON   SourceSystem = "eon"
	SourceSDP   SourceSystem = "sdp"
	SourceORION SourceSystem = "orion"
)

// SourceSystems lists all selectable systems in display order.
var SourceSystems = []SourceSystem{SourceEON, SourceSDP, SourceORION}

// ParseSourceSystem validates a wire/config value.
func ParseSourceSystem(s string) (SourceSystem, error) {
	switch SourceSystem(s) {
	case SourceEON, SourceSDP, SourceORION:
		return SourceSystem(s), nil
	}
	return "", fmt.Errorf("unknown source system %q (valid: eon, sdp, orion)", s)
}

// DisplayName returns the label shown in the source selector.
func (s SourceSystem) DisplayName() string {
	switch s {
	case SourceEON:
		return "EON System"
	case SourceSDP:
		return "SDP System"
	case SourceORION:
		return "ORION System"
	}
	return string(s)
}

// Next returns the system after s in selector order, wrapping around.
func (s SourceSystem) Next() SourceSystem {
	for i, sys := range SourceSystems {
		if sys == s {
			return SourceSystems[(i+1)%len(SourceSystems)]
		}
	}
	return SourceSystems[0]
}
