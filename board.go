package main

import (
	"crypto/rand"
	"fmt"
)

type Team string

const (
	TeamRed  Team = "red"
	TeamBlue Team = "blue"
)

// Other returns the opposing team.
func (t Team) Other() Team {
	if t == TeamRed {
		return TeamBlue
	}
	return TeamRed
}

func (t Team) valid() bool {
	return t == TeamRed || t == TeamBlue
}

type TileColor string

const (
	ColorRed      TileColor = "red"
	ColorBlue     TileColor = "blue"
	ColorNeutral  TileColor = "neutral"
	ColorAssassin TileColor = "assassin"
)

const (
	boardSize         = 25
	startingTeamTiles = 9
	otherTeamTiles    = 8
	neutralTiles      = 7
	assassinTiles     = 1
)

// KeyCard is the hidden color layout for one game. Only spymasters ever
// see it before tiles are revealed.
type KeyCard struct {
	Tiles        []TileColor `json:"tiles"`
	StartingTeam Team        `json:"startingTeam"`
}

// WordTile is a single board cell. Color is the private assignment; the
// view filter decides per recipient whether to expose it.
type WordTile struct {
	ID         string    `json:"id"`
	Word       string    `json:"word"`
	IsRevealed bool      `json:"isRevealed"`
	Color      TileColor `json:"color,omitempty"`
}

// randIntn returns a uniform random int in [0, n) using crypto/rand with
// rejection sampling, so every shuffle permutation is equally likely.
func randIntn(n int) int {
	if n <= 0 {
		return 0
	}
	if n == 1 {
		return 0
	}

	max := uint32(4294967295 - (4294967296 % uint64(n)))
	buf := make([]byte, 4)

	for {
		if _, err := rand.Read(buf); err != nil {
			panic("crypto/rand failure: " + err.Error())
		}
		v := uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3])
		if v <= max {
			return int(v % uint32(n))
		}
	}
}

// generateKeyCard builds a shuffled 25-tile color assignment: 9 tiles for
// the starting team, 8 for the other, 7 neutral, and 1 assassin. Passing
// an empty team picks the starting team at random.
func generateKeyCard(startingTeam Team) KeyCard {
	if !startingTeam.valid() {
		if randIntn(2) == 0 {
			startingTeam = TeamRed
		} else {
			startingTeam = TeamBlue
		}
	}

	tiles := make([]TileColor, 0, boardSize)
	for i := 0; i < startingTeamTiles; i++ {
		tiles = append(tiles, TileColor(startingTeam))
	}
	for i := 0; i < otherTeamTiles; i++ {
		tiles = append(tiles, TileColor(startingTeam.Other()))
	}
	for i := 0; i < neutralTiles; i++ {
		tiles = append(tiles, ColorNeutral)
	}
	for i := 0; i < assassinTiles; i++ {
		tiles = append(tiles, ColorAssassin)
	}

	// Fisher-Yates
	for i := len(tiles) - 1; i > 0; i-- {
		j := randIntn(i + 1)
		tiles[i], tiles[j] = tiles[j], tiles[i]
	}

	return KeyCard{
		Tiles:        tiles,
		StartingTeam: startingTeam,
	}
}

// generateBoard draws labels and pairs them with a fresh key card.
func generateBoard(startingTeam Team) ([]WordTile, KeyCard) {
	key := generateKeyCard(startingTeam)
	words := randomWords(boardSize)

	board := make([]WordTile, boardSize)
	for i := range board {
		board[i] = WordTile{
			ID:    fmt.Sprintf("tile-%d", i),
			Word:  words[i],
			Color: key.Tiles[i],
		}
	}

	return board, key
}
