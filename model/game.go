package model

var (
	GameModeDuels     = "Duels"
	GameModeTeamDuels = "TeamDuels"
)

// MultiplayerGame is one competitive game from the activity feed. PlayerID is
// not part of the feed payload, it is filled in from the tracked player when
// the game is saved.
type MultiplayerGame struct {
	GameID              string
	PlayerID            string
	Time                string
	GameMode            string
	CompetitiveGameMode string
}

type SinglePlayerGame struct {
	GameToken string
	Time      string
	MapSlug   string
	MapName   string
	Points    int
	GameMode  string
}

// GameRef identifies a stored multiplayer game and is used to drive the
// duel-detail sync.
type GameRef struct {
	ID   string
	Mode string
}
