package geoguessr

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/chickenThug/geoguessr-analyzer/model"
)

// ErrMissingField marks a validation failure caused by a required field being
// absent from an upstream payload. It is fatal for the whole batch because it
// indicates a schema change upstream rather than expected feed noise.
var ErrMissingField = errors.New("missing required field")

// FeedEntry is one raw item from the private activity feed. Type is a pointer
// so an absent tag can be told apart from a zero one. Payload is kept raw
// because its shape varies by entry kind.
type FeedEntry struct {
	Time    string          `json:"time"`
	Type    *int            `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// feedItem is the shape of one game inside an entry payload. Payloads hold
// either a single item or a list of items.
type feedItem struct {
	Time    string          `json:"time"`
	Type    *int            `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// NormalizedFeed is the classifier output: two homogeneous record sets.
type NormalizedFeed struct {
	Multiplayer  []model.MultiplayerGame
	SinglePlayer []model.SinglePlayerGame
}

type transformFunc func(item feedItem, out *NormalizedFeed) error

var transforms = map[model.EntryKind]transformFunc{
	model.KIND_SOLO_GAME: transformSinglePlayer,
	model.KIND_CHALLENGE: transformSinglePlayer,
	model.KIND_DUEL:      transformMultiplayer,
	model.KIND_TEAM_DUEL: transformMultiplayer,
}

// Normalize classifies raw feed entries and transforms them into typed game
// records. Entries that cannot be decoded, or whose payload is neither an
// object nor a list, are logged and skipped. A missing type tag or a missing
// required field aborts the whole batch: that means the upstream schema
// changed and must not be silently absorbed.
func Normalize(entries []FeedEntry) (*NormalizedFeed, error) {
	out := &NormalizedFeed{
		Multiplayer:  make([]model.MultiplayerGame, 0, len(entries)),
		SinglePlayer: make([]model.SinglePlayerGame, 0, len(entries)),
	}

	for _, e := range entries {
		if e.Type == nil {
			return nil, fmt.Errorf("feed entry has no type tag: %w", ErrMissingField)
		}

		items, err := decodePayload(e.Payload)
		if err != nil {
			log.Printf("skipping feed entry that could not be decoded: %v", err)
			continue
		}
		if len(items) == 0 {
			log.Printf("skipping feed entry with no usable payload (type %d)", *e.Type)
			continue
		}

		for _, item := range items {
			if item.Type == nil {
				return nil, fmt.Errorf("feed item has no type tag: %w", ErrMissingField)
			}
			transform, ok := transforms[model.ParseEntryKind(*item.Type)]
			if !ok {
				// Unknown kinds are expected as the upstream adds new feed
				// item types. Skip without logging.
				continue
			}
			if err := transform(item, out); err != nil {
				return nil, fmt.Errorf("error normalizing feed item of type %d: %w", *item.Type, err)
			}
		}
	}

	return out, nil
}

// decodePayload resolves the two dynamic payload shapes in one place: a
// payload may be a JSON-encoded string that needs a second decode, and the
// decoded value may be a single item or a list of items. The result is always
// a list.
func decodePayload(raw json.RawMessage) ([]feedItem, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, nil
	}

	if raw[0] == '"' {
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err != nil {
			return nil, fmt.Errorf("error decoding string payload: %w", err)
		}
		raw = bytes.TrimSpace([]byte(encoded))
		if len(raw) == 0 {
			return nil, nil
		}
	}

	switch raw[0] {
	case '[':
		var items []feedItem
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("error decoding payload list: %w", err)
		}
		return items, nil
	case '{':
		var item feedItem
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, fmt.Errorf("error decoding payload object: %w", err)
		}
		return []feedItem{item}, nil
	default:
		return nil, fmt.Errorf("payload is neither an object nor a list: '%s'", raw)
	}
}

type multiplayerPayload struct {
	GameID              *string `json:"gameId"`
	GameMode            *string `json:"gameMode"`
	CompetitiveGameMode *string `json:"competitiveGameMode"`
}

func transformMultiplayer(item feedItem, out *NormalizedFeed) error {
	if item.Time == "" {
		return fmt.Errorf("time: %w", ErrMissingField)
	}

	var p multiplayerPayload
	if err := json.Unmarshal(item.Payload, &p); err != nil {
		return fmt.Errorf("error decoding multiplayer payload: %w", err)
	}
	if p.GameID == nil {
		return fmt.Errorf("payload.gameId: %w", ErrMissingField)
	}
	if p.GameMode == nil {
		return fmt.Errorf("payload.gameMode: %w", ErrMissingField)
	}
	if p.CompetitiveGameMode == nil {
		return fmt.Errorf("payload.competitiveGameMode: %w", ErrMissingField)
	}

	out.Multiplayer = append(out.Multiplayer, model.MultiplayerGame{
		GameID:              *p.GameID,
		Time:                item.Time,
		GameMode:            *p.GameMode,
		CompetitiveGameMode: *p.CompetitiveGameMode,
	})
	return nil
}

type singlePlayerPayload struct {
	MapSlug   *string `json:"mapSlug"`
	MapName   *string `json:"mapName"`
	Points    *int    `json:"points"`
	GameToken *string `json:"gameToken"`
	GameMode  *string `json:"gameMode"`
}

func transformSinglePlayer(item feedItem, out *NormalizedFeed) error {
	// The dispatch table and this transform must agree on what counts as a
	// single player item. Disagreement means the classification table was
	// edited without updating the transform.
	if !model.ParseEntryKind(*item.Type).IsSinglePlayer() {
		return fmt.Errorf("item type %d is not a single player kind: %w", *item.Type, ErrMissingField)
	}
	if item.Time == "" {
		return fmt.Errorf("time: %w", ErrMissingField)
	}

	var p singlePlayerPayload
	if err := json.Unmarshal(item.Payload, &p); err != nil {
		return fmt.Errorf("error decoding single player payload: %w", err)
	}
	if p.MapSlug == nil {
		return fmt.Errorf("payload.mapSlug: %w", ErrMissingField)
	}
	if p.MapName == nil {
		return fmt.Errorf("payload.mapName: %w", ErrMissingField)
	}
	if p.Points == nil {
		return fmt.Errorf("payload.points: %w", ErrMissingField)
	}
	if p.GameToken == nil {
		return fmt.Errorf("payload.gameToken: %w", ErrMissingField)
	}
	if p.GameMode == nil {
		return fmt.Errorf("payload.gameMode: %w", ErrMissingField)
	}

	out.SinglePlayer = append(out.SinglePlayer, model.SinglePlayerGame{
		GameToken: *p.GameToken,
		Time:      item.Time,
		MapSlug:   *p.MapSlug,
		MapName:   *p.MapName,
		Points:    *p.Points,
		GameMode:  *p.GameMode,
	})
	return nil
}
