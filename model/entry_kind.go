package model

// EntryKind classifies activity feed items by their numeric type tag. The
// upstream feed mixes many item types; only the four kinds below are tracked
// and everything else maps to KIND_UNKNOWN.
type EntryKind int

const (
	KIND_UNKNOWN   EntryKind = 0
	KIND_SOLO_GAME EntryKind = 1
	KIND_CHALLENGE EntryKind = 2
	KIND_DUEL      EntryKind = 6
	KIND_TEAM_DUEL EntryKind = 7
)

func ParseEntryKind(tag int) EntryKind {
	switch tag {
	case 1:
		return KIND_SOLO_GAME
	case 2:
		return KIND_CHALLENGE
	case 6:
		return KIND_DUEL
	case 7:
		return KIND_TEAM_DUEL
	default:
		return KIND_UNKNOWN
	}
}

// IsSinglePlayer reports whether the kind produces a single player game record.
func (k EntryKind) IsSinglePlayer() bool {
	return k == KIND_SOLO_GAME || k == KIND_CHALLENGE
}

// IsMultiplayer reports whether the kind produces a multiplayer game record.
func (k EntryKind) IsMultiplayer() bool {
	return k == KIND_DUEL || k == KIND_TEAM_DUEL
}
