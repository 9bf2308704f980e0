package main

import (
	"errors"
	"log"
	"time"
)

// Rejection reasons surfaced verbatim to the initiating client. A rejected
// action never mutates room state and is never broadcast.
var (
	errNameRequired     = errors.New("name is required")
	errCodeRequired     = errors.New("room code is required")
	errRoomNotFound     = errors.New("room not found")
	errNotInRoom        = errors.New("not in a room")
	errPlayerNotFound   = errors.New("player not found")
	errNotHost          = errors.New("only the host can start the game")
	errGameFinished     = errors.New("game is over")
	errNotInLobby       = errors.New("teams and roles can only change in the lobby")
	errTeamsTooSmall    = errors.New("each team needs at least 2 players")
	errNeedSpymaster    = errors.New("each team needs exactly one spymaster")
	errNeedGuesser      = errors.New("each team needs at least one guesser")
	errNotSpymaster     = errors.New("only spymasters can give clues")
	errNotGuesser       = errors.New("only guessers can act on this turn")
	errNotYourTurn      = errors.New("not your team's turn")
	errNotCluePhase     = errors.New("not in clue phase")
	errNotGuessPhase    = errors.New("not in guess phase")
	errClueEmpty        = errors.New("clue cannot be empty")
	errClueNotLetters   = errors.New("clue must contain only letters")
	errClueOnBoard      = errors.New("clue cannot be a word on the board")
	errClueOverlapsWord = errors.New("clue cannot contain or be part of a board word")
	errClueBadCount     = errors.New("clue count cannot be negative")
	errTileNotFound     = errors.New("tile not found")
	errTileRevealed     = errors.New("tile already revealed")
	errInvalidTeam      = errors.New("unknown team")
	errInvalidRole      = errors.New("unknown role")
	errNoTeam           = errors.New("player has no team")
)

// errorCodes maps rejection reasons to stable wire codes.
var errorCodes = map[error]string{
	errNameRequired:     "name_required",
	errCodeRequired:     "code_required",
	errRoomNotFound:     "room_not_found",
	errNotInRoom:        "not_in_room",
	errPlayerNotFound:   "player_not_found",
	errNotHost:          "not_host",
	errGameFinished:     "game_finished",
	errNotInLobby:       "not_in_lobby",
	errTeamsTooSmall:    "teams_too_small",
	errNeedSpymaster:    "need_spymaster",
	errNeedGuesser:      "need_guesser",
	errNotSpymaster:     "not_spymaster",
	errNotGuesser:       "not_guesser",
	errNotYourTurn:      "not_your_turn",
	errNotCluePhase:     "not_clue_phase",
	errNotGuessPhase:    "not_guess_phase",
	errClueEmpty:        "clue_empty",
	errClueNotLetters:   "clue_not_letters",
	errClueOnBoard:      "clue_on_board",
	errClueOverlapsWord: "clue_overlaps_word",
	errClueBadCount:     "clue_bad_count",
	errTileNotFound:     "tile_not_found",
	errTileRevealed:     "tile_revealed",
	errInvalidTeam:      "invalid_team",
	errInvalidRole:      "invalid_role",
	errNoTeam:           "no_team",
}

func errorCode(err error) string {
	for sentinel, code := range errorCodes {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return "rejected"
}

func logf(cfg *Config, format string, args ...any) {
	if !cfg.verbose {
		return
	}

	log.Printf("%s | "+format, append([]any{time.Now().Format(logDate)}, args...)...)
}
