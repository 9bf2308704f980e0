package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dispatch(cfg *Config, reg *Registry, c *client, format string, args ...any) {
	handleMessage(cfg, reg, c, []byte(fmt.Sprintf(format, args...)))
}

// lobbyClients creates a room through the dispatcher with four members:
// red spymaster (host), red guesser, blue spymaster, blue guesser.
func lobbyClients(t *testing.T, cfg *Config, reg *Registry) (string, []*client) {
	t.Helper()

	host := newClient(nil)
	dispatch(cfg, reg, host, `{"type":"create_room","name":"Host"}`)

	msgs := drain(host)
	require.NotEmpty(t, msgs)
	created, ok := msgs[0].(RoomCreatedMessage)
	require.True(t, ok)
	code := created.RoomCode

	clients := []*client{host}
	for _, name := range []string{"Bea", "Cal", "Dee"} {
		c := newClient(nil)
		dispatch(cfg, reg, c, `{"type":"join_room","roomCode":%q,"name":%q}`, code, name)
		require.NotEmpty(t, c.playerID, "join must bind the connection")
		clients = append(clients, c)
	}

	dispatch(cfg, reg, clients[0], `{"type":"set_team","team":"red"}`)
	dispatch(cfg, reg, clients[1], `{"type":"set_team","team":"red"}`)
	dispatch(cfg, reg, clients[2], `{"type":"set_team","team":"blue"}`)
	dispatch(cfg, reg, clients[3], `{"type":"set_team","team":"blue"}`)
	dispatch(cfg, reg, clients[0], `{"type":"set_role","role":"spymaster"}`)
	dispatch(cfg, reg, clients[2], `{"type":"set_role","role":"spymaster"}`)

	for _, c := range clients {
		drain(c)
	}

	return code, clients
}

// byRole maps the four lobby clients onto the active team's seats.
func byRole(room *Room, clients []*client) (activeSpymaster, activeGuesser, idleGuesser *client) {
	active := room.Turn().Team
	for _, c := range clients {
		for _, p := range room.Players() {
			if p.ID != c.playerID {
				continue
			}
			switch {
			case p.Team == active && p.Role == RoleSpymaster:
				activeSpymaster = c
			case p.Team == active && p.Role == RoleGuesser:
				activeGuesser = c
			case p.Role == RoleGuesser:
				idleGuesser = c
			}
		}
	}
	return
}

func TestPingPong(t *testing.T) {
	cfg := &Config{}
	reg := newRegistry(cfg)
	c := newClient(nil)

	dispatch(cfg, reg, c, `{"type":"ping","ts":1234}`)

	msgs := drain(c)
	require.Len(t, msgs, 1)
	assert.Equal(t, PongMessage{Type: "pong", Ts: 1234}, msgs[0])
}

func TestMalformedAndUnknownMessages(t *testing.T) {
	cfg := &Config{}
	reg := newRegistry(cfg)
	c := newClient(nil)

	handleMessage(cfg, reg, c, []byte(`{not json`))
	handleMessage(cfg, reg, c, []byte(`{"type":"no_such_action"}`))

	msgs := drain(c)
	require.Len(t, msgs, 2)
	for _, m := range msgs {
		errMsg, ok := m.(ErrorMessage)
		require.True(t, ok)
		assert.Equal(t, "error", errMsg.Type)
	}
}

func TestActionsRequireRoomBinding(t *testing.T) {
	cfg := &Config{}
	reg := newRegistry(cfg)

	actions := []string{
		`{"type":"leave_room"}`,
		`{"type":"set_team","team":"red"}`,
		`{"type":"set_role","role":"guesser"}`,
		`{"type":"start_game"}`,
		`{"type":"submit_clue","word":"HINT","count":1}`,
		`{"type":"guess_word","tileId":"tile-0"}`,
		`{"type":"end_turn"}`,
		`{"type":"request_state"}`,
	}

	for _, action := range actions {
		c := newClient(nil)
		handleMessage(cfg, reg, c, []byte(action))

		msgs := drain(c)
		require.Len(t, msgs, 1, "action %s", action)
		errMsg, ok := msgs[0].(ErrorMessage)
		require.True(t, ok)
		assert.Equal(t, "not_in_room", errMsg.Code)
	}
}

func TestCreateRoomRequiresName(t *testing.T) {
	cfg := &Config{}
	reg := newRegistry(cfg)
	c := newClient(nil)

	dispatch(cfg, reg, c, `{"type":"create_room","name":"  "}`)

	msgs := drain(c)
	require.Len(t, msgs, 1)
	errMsg, ok := msgs[0].(ErrorMessage)
	require.True(t, ok)
	assert.Equal(t, "name_required", errMsg.Code)
}

func TestCreateRoomFlow(t *testing.T) {
	cfg := &Config{}
	reg := newRegistry(cfg)
	c := newClient(nil)

	dispatch(cfg, reg, c, `{"type":"create_room","name":"Host"}`)

	msgs := drain(c)
	require.Len(t, msgs, 2)

	created, ok := msgs[0].(RoomCreatedMessage)
	require.True(t, ok)
	assert.Len(t, created.RoomCode, roomCodeLength)
	assert.NotEmpty(t, created.PlayerID)

	roster, ok := msgs[1].(PlayerListMessage)
	require.True(t, ok)
	require.Len(t, roster.Players, 1)
	assert.Equal(t, "Host", roster.Players[0].Name)
	assert.True(t, roster.Players[0].IsHost)
}

func TestFullGameScenario(t *testing.T) {
	cfg := &Config{}
	reg := newRegistry(cfg)

	code, clients := lobbyClients(t, cfg, reg)
	room := reg.RoomByCode(code)
	require.NotNil(t, room)

	// Non-host cannot start.
	dispatch(cfg, reg, clients[1], `{"type":"start_game"}`)
	msgs := drain(clients[1])
	require.Len(t, msgs, 1)
	errMsg, ok := msgs[0].(ErrorMessage)
	require.True(t, ok)
	assert.Equal(t, "not_host", errMsg.Code)

	// Host starts; everyone gets their own snapshot.
	dispatch(cfg, reg, clients[0], `{"type":"start_game"}`)
	assert.Equal(t, PhaseClue, room.Phase())

	for i, c := range clients {
		msgs := drain(c)
		require.Len(t, msgs, 1, "client %d", i)
		update, ok := msgs[0].(StateUpdateMessage)
		require.True(t, ok)
		assert.Len(t, update.State.Board, boardSize)
	}

	activeSpymaster, activeGuesser, idleGuesser := byRole(room, clients)
	require.NotNil(t, activeSpymaster)
	require.NotNil(t, activeGuesser)
	require.NotNil(t, idleGuesser)

	// Clue HINT 2 allows three guesses.
	dispatch(cfg, reg, activeSpymaster, `{"type":"submit_clue","word":"HINT","count":2}`)

	msgs = drain(activeGuesser)
	require.Len(t, msgs, 2)
	accepted, ok := msgs[0].(ClueAcceptedMessage)
	require.True(t, ok)
	assert.Equal(t, "HINT", accepted.Clue.Word)
	assert.Equal(t, 3, accepted.GuessesRemaining.Remaining)
	for _, c := range clients {
		drain(c)
	}

	// A guess from the idle team is rejected, to the initiator only.
	dispatch(cfg, reg, idleGuesser, `{"type":"guess_word","tileId":"tile-0"}`)
	msgs = drain(idleGuesser)
	require.Len(t, msgs, 1)
	errMsg, ok = msgs[0].(ErrorMessage)
	require.True(t, ok)
	assert.Equal(t, "not_your_turn", errMsg.Code)
	assert.Empty(t, drain(activeGuesser), "rejections are never broadcast")

	// Correct guess: counter drops, phase stays.
	active := room.Turn().Team
	dispatch(cfg, reg, activeGuesser, `{"type":"guess_word","tileId":%q}`,
		unrevealedTile(t, room, TileColor(active)))

	msgs = drain(activeGuesser)
	require.Len(t, msgs, 2)
	result, ok := msgs[0].(GuessResultMessage)
	require.True(t, ok)
	assert.True(t, result.Correct)
	assert.Equal(t, 2, room.Turn().Guesses.Remaining)
	assert.Equal(t, PhaseGuess, room.Phase())
	for _, c := range clients {
		drain(c)
	}

	// Wrong guess: turn passes to the other team.
	dispatch(cfg, reg, activeGuesser, `{"type":"guess_word","tileId":%q}`,
		unrevealedTile(t, room, TileColor(active.Other())))

	msgs = drain(activeGuesser)
	require.Len(t, msgs, 3)
	result, ok = msgs[0].(GuessResultMessage)
	require.True(t, ok)
	assert.False(t, result.Correct)
	ended, ok := msgs[1].(TurnEndedMessage)
	require.True(t, ok)
	assert.Equal(t, active.Other(), ended.NextTeam)
	assert.Equal(t, PhaseClue, room.Phase())
	assert.Equal(t, active.Other(), room.Turn().Team)
}

func TestAssassinGameOverFlow(t *testing.T) {
	cfg := &Config{}
	reg := newRegistry(cfg)

	code, clients := lobbyClients(t, cfg, reg)
	room := reg.RoomByCode(code)
	require.NotNil(t, room)

	dispatch(cfg, reg, clients[0], `{"type":"start_game"}`)
	for _, c := range clients {
		drain(c)
	}

	activeSpymaster, activeGuesser, _ := byRole(room, clients)
	active := room.Turn().Team

	dispatch(cfg, reg, activeSpymaster, `{"type":"submit_clue","word":"HINT","count":1}`)
	for _, c := range clients {
		drain(c)
	}

	dispatch(cfg, reg, activeGuesser, `{"type":"guess_word","tileId":%q}`,
		unrevealedTile(t, room, ColorAssassin))

	msgs := drain(activeGuesser)
	require.Len(t, msgs, 3)

	over, ok := msgs[1].(GameOverMessage)
	require.True(t, ok)
	assert.Equal(t, active.Other(), over.Winner)
	assert.Equal(t, "assassin", over.Reason)
	assert.Equal(t, PhaseGameOver, room.Phase())
}

func TestEndTurnFlow(t *testing.T) {
	cfg := &Config{}
	reg := newRegistry(cfg)

	code, clients := lobbyClients(t, cfg, reg)
	room := reg.RoomByCode(code)
	require.NotNil(t, room)

	dispatch(cfg, reg, clients[0], `{"type":"start_game"}`)
	activeSpymaster, activeGuesser, _ := byRole(room, clients)
	active := room.Turn().Team

	dispatch(cfg, reg, activeSpymaster, `{"type":"submit_clue","word":"HINT","count":2}`)
	for _, c := range clients {
		drain(c)
	}

	dispatch(cfg, reg, activeGuesser, `{"type":"end_turn"}`)

	msgs := drain(activeGuesser)
	require.Len(t, msgs, 2)
	ended, ok := msgs[0].(TurnEndedMessage)
	require.True(t, ok)
	assert.Equal(t, active.Other(), ended.NextTeam)
	assert.Equal(t, PhaseClue, room.Phase())
}

func TestRequestStateReturnsOwnView(t *testing.T) {
	cfg := &Config{}
	reg := newRegistry(cfg)

	code, clients := lobbyClients(t, cfg, reg)
	room := reg.RoomByCode(code)
	require.NotNil(t, room)

	dispatch(cfg, reg, clients[0], `{"type":"start_game"}`)
	for _, c := range clients {
		drain(c)
	}

	activeSpymaster, activeGuesser, _ := byRole(room, clients)

	dispatch(cfg, reg, activeSpymaster, `{"type":"request_state"}`)
	msgs := drain(activeSpymaster)
	require.Len(t, msgs, 1)
	update, ok := msgs[0].(StateUpdateMessage)
	require.True(t, ok)
	assert.Equal(t, "state_update_spymaster", update.Type)
	assert.NotNil(t, update.State.KeyCard)

	dispatch(cfg, reg, activeGuesser, `{"type":"request_state"}`)
	msgs = drain(activeGuesser)
	require.Len(t, msgs, 1)
	update, ok = msgs[0].(StateUpdateMessage)
	require.True(t, ok)
	assert.Equal(t, "state_update", update.Type)
	assert.Nil(t, update.State.KeyCard)
}

func TestLeaveRoomFlow(t *testing.T) {
	cfg := &Config{}
	reg := newRegistry(cfg)

	code, clients := lobbyClients(t, cfg, reg)
	room := reg.RoomByCode(code)
	require.NotNil(t, room)

	leaverID := clients[1].playerID
	dispatch(cfg, reg, clients[1], `{"type":"leave_room"}`)

	assert.Empty(t, clients[1].playerID, "binding cleared on leave")
	assert.Nil(t, reg.RoomByPlayer(leaverID))

	msgs := drain(clients[0])
	require.NotEmpty(t, msgs)
	roster, ok := msgs[0].(PlayerListMessage)
	require.True(t, ok)

	for _, p := range roster.Players {
		if p.ID == leaverID {
			assert.False(t, p.IsConnected)
		}
	}
}

func TestReconnectFlow(t *testing.T) {
	cfg := &Config{}
	reg := newRegistry(cfg)

	code, clients := lobbyClients(t, cfg, reg)
	room := reg.RoomByCode(code)
	require.NotNil(t, room)

	gone := clients[1]
	goneID := gone.playerID
	reg.HandleDisconnect(goneID)

	fresh := newClient(nil)
	dispatch(cfg, reg, fresh, `{"type":"join_room","roomCode":%q,"name":"whatever","playerId":%q}`, code, goneID)

	assert.Equal(t, goneID, fresh.playerID)

	for _, p := range room.Players() {
		if p.ID == goneID {
			assert.True(t, p.IsConnected)
			assert.Equal(t, TeamRed, p.Team, "team survives the reconnect")
			assert.Equal(t, "Bea", p.Name, "name is not re-validated")
		}
	}
}
