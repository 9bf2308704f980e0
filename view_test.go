package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countVisibleColors(snapshot RoomSnapshot) int {
	visible := 0
	for _, tile := range snapshot.Board {
		if tile.Color != "" {
			visible++
		}
	}
	return visible
}

func TestSpymasterSeesAllColorsAndKeyCard(t *testing.T) {
	room := startedRoom(t)

	snapshot := room.Snapshot(spymasterOf(room, TeamRed))

	assert.Equal(t, boardSize, countVisibleColors(snapshot))
	require.NotNil(t, snapshot.KeyCard)
	assert.Len(t, snapshot.KeyCard.Tiles, boardSize)
	assert.Equal(t, room.key.StartingTeam, snapshot.KeyCard.StartingTeam)
}

func TestGuesserSeesOnlyRevealedColors(t *testing.T) {
	room := startedRoom(t)
	active := room.Turn().Team
	guesser := guesserOf(room, active)

	snapshot := room.Snapshot(guesser)
	assert.Zero(t, countVisibleColors(snapshot), "no colors visible before any reveal")
	assert.Nil(t, snapshot.KeyCard)

	openGuessPhase(t, room, 3)
	_, err := room.Guess(guesser, unrevealedTile(t, room, TileColor(active)))
	require.NoError(t, err)

	snapshot = room.Snapshot(guesser)
	assert.Equal(t, 1, countVisibleColors(snapshot), "exactly the revealed subset")
	assert.Nil(t, snapshot.KeyCard)
}

func TestSnapshotDiffersPerRecipientAtSameRevision(t *testing.T) {
	room := startedRoom(t)

	spymasterView := room.Snapshot(spymasterOf(room, TeamRed))
	guesserView := room.Snapshot(guesserOf(room, TeamRed))

	assert.Equal(t, spymasterView.Revision, guesserView.Revision)
	assert.NotEqual(t, countVisibleColors(spymasterView), countVisibleColors(guesserView))
}

func TestUnknownPlayerGetsGuesserView(t *testing.T) {
	room := startedRoom(t)

	snapshot := room.Snapshot("stranger")

	assert.Zero(t, countVisibleColors(snapshot))
	assert.Nil(t, snapshot.KeyCard)
}

func TestSnapshotDoesNotAliasRoomState(t *testing.T) {
	room := startedRoom(t)

	original := room.key.Tiles[0]

	snapshot := room.Snapshot(spymasterOf(room, TeamRed))
	snapshot.Board[0].IsRevealed = true
	snapshot.Players[0].Name = "mutated"
	snapshot.KeyCard.Tiles[0] = "mutated"

	assert.False(t, room.board[0].IsRevealed)
	assert.Equal(t, "Host", room.players[0].Name)
	assert.Equal(t, original, room.key.Tiles[0])
}

func TestSnapshotCarriesRoomMetadata(t *testing.T) {
	room := startedRoom(t)

	snapshot := room.Snapshot(guesserOf(room, TeamBlue))

	assert.Equal(t, "TEST42", snapshot.RoomCode)
	assert.Equal(t, PhaseClue, snapshot.Phase)
	assert.Len(t, snapshot.Players, 4)
	assert.Equal(t, room.Revision(), snapshot.Revision)
	assert.Equal(t, room.Turn(), snapshot.Turn)
}
