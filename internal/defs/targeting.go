package defs

import "fmt"

// TargetingMode selects how a tower reduces its candidate set to one target.
type TargetingMode int

const (
	// ModeAuto leaves the choice to the combat policy.
	ModeAuto TargetingMode = iota
	ModeNearest
	ModeLowestHP
	ModeHighestHP
	ModeFastest
	ModeSlowest
	ModeHighestValue
	ModeStrongest
	ModeFirstSeen
	ModeLastSeen
	ModeThreat
	TargetingModeCount
)

var targetingModeNames = [TargetingModeCount]string{
	ModeAuto:         "auto",
	ModeNearest:      "nearest",
	ModeLowestHP:     "lowest_hp",
	ModeHighestHP:    "highest_hp",
	ModeFastest:      "fastest",
	ModeSlowest:      "slowest",
	ModeHighestValue: "highest_value",
	ModeStrongest:    "strongest",
	ModeFirstSeen:    "first_seen",
	ModeLastSeen:     "last_seen",
	ModeThreat:       "threat",
}

func (m TargetingMode) String() string {
	if m < 0 || m >= TargetingModeCount {
		return fmt.Sprintf("mode(%d)", int(m))
	}
	return targetingModeNames[m]
}

// ParseTargetingMode maps a mode name to its value.
func ParseTargetingMode(name string) (TargetingMode, bool) {
	for m, n := range targetingModeNames {
		if n == name {
			return TargetingMode(m), true
		}
	}
	return ModeAuto, false
}
