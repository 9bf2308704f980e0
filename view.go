package main

import "time"

// RoomSnapshot is the filtered room state pushed to one recipient. Tile
// colors appear only for revealed tiles unless the recipient is a
// spymaster; the key card is present only in the spymaster variant.
type RoomSnapshot struct {
	RoomCode  string     `json:"roomCode"`
	CreatedAt time.Time  `json:"createdAt"`
	Phase     GamePhase  `json:"phase"`
	Players   []Player   `json:"players"`
	Board     []WordTile `json:"board"`
	Turn      TurnState  `json:"turn"`
	Winner    Team       `json:"winner,omitempty"`
	Revision  uint64     `json:"revision"`
	KeyCard   *KeyCard   `json:"keyCard,omitempty"`
}

// Snapshot builds the view the given player is permitted to see. It is
// recomputed per recipient on every broadcast; two players in the same
// room at the same revision can legitimately receive different output.
func (r *Room) Snapshot(playerID string) RoomSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return snapshotForRole(r, r.roleOfLocked(playerID))
}

func (r *Room) roleOfLocked(playerID string) Role {
	if p := r.playerLocked(playerID); p != nil {
		return p.Role
	}
	return ""
}

// snapshotForRole is a pure projection of room state; it copies every
// field it exposes so callers never alias the room's internals.
func snapshotForRole(r *Room, role Role) RoomSnapshot {
	spymaster := role == RoleSpymaster

	board := make([]WordTile, len(r.board))
	for i, tile := range r.board {
		out := WordTile{
			ID:         tile.ID,
			Word:       tile.Word,
			IsRevealed: tile.IsRevealed,
		}
		if tile.IsRevealed || spymaster {
			out.Color = tile.Color
		}
		board[i] = out
	}

	players := make([]Player, 0, len(r.players))
	for _, p := range r.players {
		players = append(players, *p)
	}

	snapshot := RoomSnapshot{
		RoomCode:  r.code,
		CreatedAt: r.createdAt,
		Phase:     r.phase,
		Players:   players,
		Board:     board,
		Turn:      r.turn,
		Winner:    r.winner,
		Revision:  r.revision,
	}

	if spymaster {
		key := KeyCard{
			Tiles:        append([]TileColor(nil), r.key.Tiles...),
			StartingTeam: r.key.StartingTeam,
		}
		snapshot.KeyCard = &key
	}

	return snapshot
}
