package ranking

// SideOf reports which side of the match a player name appears on,
// checking both slots of each side. If a name somehow appears on both
// sides, side A wins; that anomaly is tolerated, not corrected.
func SideOf(m Match, name string) Side {
	if name == "" {
		return SideNone
	}
	if m.P1A == name || m.P1B == name {
		return SideA
	}
	if m.P2A == name || m.P2B == name {
		return SideB
	}
	return SideNone
}

// WonBy reports whether the player's side won the match outright. A tied
// score credits nobody, and a player absent from the match never wins.
func WonBy(m Match, name string) bool {
	switch SideOf(m, name) {
	case SideA:
		return m.Score1 > m.Score2
	case SideB:
		return m.Score2 > m.Score1
	default:
		return false
	}
}
