package main

// Client-to-server action kinds.
const (
	actionCreateRoom   = "create_room"
	actionJoinRoom     = "join_room"
	actionLeaveRoom    = "leave_room"
	actionSetTeam      = "set_team"
	actionSetRole      = "set_role"
	actionStartGame    = "start_game"
	actionSubmitClue   = "submit_clue"
	actionGuessWord    = "guess_word"
	actionEndTurn      = "end_turn"
	actionRequestState = "request_state"
	actionPing         = "ping"
)

// ClientMessage is the inbound envelope; each action kind reads only the
// fields it needs.
type ClientMessage struct {
	Type     string `json:"type"`
	Name     string `json:"name,omitempty"`     // create_room / join_room
	RoomCode string `json:"roomCode,omitempty"` // join_room
	PlayerID string `json:"playerId,omitempty"` // join_room (reconnect)
	Team     Team   `json:"team,omitempty"`     // set_team
	Role     Role   `json:"role,omitempty"`     // set_role
	Word     string `json:"word,omitempty"`     // submit_clue
	Count    int    `json:"count,omitempty"`    // submit_clue
	TileID   string `json:"tileId,omitempty"`   // guess_word
	Ts       int64  `json:"ts,omitempty"`       // ping
}

// Messages sent to clients

type RoomCreatedMessage struct {
	Type     string `json:"type"` // "room_created"
	RoomCode string `json:"roomCode"`
	PlayerID string `json:"playerId"`
}

type RoomJoinedMessage struct {
	Type     string `json:"type"` // "room_joined"
	RoomCode string `json:"roomCode"`
	PlayerID string `json:"playerId"`
}

type PlayerListMessage struct {
	Type    string   `json:"type"` // "player_list"
	Players []Player `json:"players"`
}

// StateUpdateMessage carries a per-role snapshot; the type tag tells the
// client whether it got the spymaster variant.
type StateUpdateMessage struct {
	Type  string       `json:"type"` // "state_update" or "state_update_spymaster"
	State RoomSnapshot `json:"state"`
}

type ClueAcceptedMessage struct {
	Type             string      `json:"type"` // "clue_accepted"
	Clue             Clue        `json:"clue"`
	GuessesRemaining GuessBudget `json:"guessesRemaining"`
}

type GuessResultMessage struct {
	Type    string    `json:"type"` // "guess_result"
	TileID  string    `json:"tileId"`
	Color   TileColor `json:"color"`
	Correct bool      `json:"correct"`
}

type TurnEndedMessage struct {
	Type     string `json:"type"` // "turn_ended"
	NextTeam Team   `json:"nextTeam"`
}

type GameOverMessage struct {
	Type   string `json:"type"` // "game_over"
	Winner Team   `json:"winner"`
	Reason string `json:"reason"` // "assassin" or "all_revealed"
}

type ErrorMessage struct {
	Type    string `json:"type"` // "error"
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type PongMessage struct {
	Type string `json:"type"` // "pong"
	Ts   int64  `json:"ts"`
}

func stateUpdateType(role Role) string {
	if role == RoleSpymaster {
		return "state_update_spymaster"
	}
	return "state_update"
}
