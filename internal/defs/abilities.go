package defs

// AbilityID — закрытый набор способностей боссов.
type AbilityID int

const (
	AbilityUnknown AbilityID = iota
	AbilityCharge
	AbilityQuantumTunnel
	AbilityGroundSlam
	AbilityShieldRegen
	AbilityShockwave
	AbilitySummonSwarm
	AbilityCount
)

var abilityNames = [AbilityCount]string{
	AbilityUnknown:       "unknown",
	AbilityCharge:        "charge",
	AbilityQuantumTunnel: "quantum_tunnel",
	AbilityGroundSlam:    "ground_slam",
	AbilityShieldRegen:   "shield_regen",
	AbilityShockwave:     "shockwave",
	AbilitySummonSwarm:   "summon_swarm",
}

func (a AbilityID) String() string {
	if a <= AbilityUnknown || a >= AbilityCount {
		return abilityNames[AbilityUnknown]
	}
	return abilityNames[a]
}

// ParseAbility returns AbilityUnknown and false for names outside the set.
func ParseAbility(name string) (AbilityID, bool) {
	for a := AbilityUnknown + 1; a < AbilityCount; a++ {
		if abilityNames[a] == name {
			return a, true
		}
	}
	return AbilityUnknown, false
}
