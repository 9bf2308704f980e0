package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// client is one websocket connection plus its session binding. playerID
// and roomCode are empty until a create or join succeeds.
type client struct {
	conn *websocket.Conn

	mu     sync.Mutex
	send   chan any
	closed bool

	playerID string
	roomCode string
}

func newClient(conn *websocket.Conn) *client {
	return &client{
		conn: conn,
		send: make(chan any, 16),
	}
}

// trySend queues a message without blocking. A full buffer means a stuck
// consumer, so the connection is dropped instead of stalling the room.
func (c *client) trySend(msg any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}

	select {
	case c.send <- msg:
		return true
	default:
		c.closed = true
		close(c.send)
		return false
	}
}

func (c *client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

func (c *client) writePump() {
	defer func() {
		if c.conn != nil {
			_ = c.conn.Close()
		}
	}()

	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

func (c *client) readPump(cfg *Config, reg *Registry) {
	defer func() {
		c.close()
		_ = c.conn.Close()

		if c.playerID != "" {
			room := reg.HandleDisconnect(c.playerID)
			if room != nil {
				logf(cfg, "WS: Player %s disconnected from %s", c.playerID, c.roomCode)
				reg.BroadcastToRoom(room, PlayerListMessage{
					Type:    "player_list",
					Players: room.Players(),
				}, "")
				reg.BroadcastState(room)
			}
		}
	}()

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			return
		}
		handleMessage(cfg, reg, c, raw)
	}
}

func sendError(c *client, err error) {
	c.trySend(ErrorMessage{
		Type:    "error",
		Message: err.Error(),
		Code:    errorCode(err),
	})
}

// handleMessage routes one inbound action to the registry or the bound
// room. Rejections go back to the initiating client only; accepted
// mutations broadcast a fresh per-role snapshot to the whole room.
func handleMessage(cfg *Config, reg *Registry, c *client, raw []byte) {
	var msg ClientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		sendError(c, errors.New("invalid JSON"))
		return
	}

	switch msg.Type {
	case actionPing:
		c.trySend(PongMessage{Type: "pong", Ts: msg.Ts})

	case actionCreateRoom:
		handleCreateRoom(reg, c, msg)

	case actionJoinRoom:
		handleJoinRoom(reg, c, msg)

	case actionLeaveRoom:
		handleLeaveRoom(reg, c)

	case actionSetTeam:
		handleSetTeam(reg, c, msg)

	case actionSetRole:
		handleSetRole(reg, c, msg)

	case actionStartGame:
		handleStartGame(cfg, reg, c)

	case actionSubmitClue:
		handleSubmitClue(reg, c, msg)

	case actionGuessWord:
		handleGuessWord(reg, c, msg)

	case actionEndTurn:
		handleEndTurn(reg, c)

	case actionRequestState:
		handleRequestState(reg, c)

	default:
		sendError(c, errors.New("unknown message type"))
	}
}

func handleCreateRoom(reg *Registry, c *client, msg ClientMessage) {
	name := strings.TrimSpace(msg.Name)
	if name == "" {
		sendError(c, errNameRequired)
		return
	}

	code, playerID := reg.CreateRoom(name, c)
	c.trySend(RoomCreatedMessage{Type: "room_created", RoomCode: code, PlayerID: playerID})

	room := reg.RoomByCode(code)
	if room != nil {
		c.trySend(PlayerListMessage{Type: "player_list", Players: room.Players()})
	}
}

func handleJoinRoom(reg *Registry, c *client, msg ClientMessage) {
	code := strings.TrimSpace(msg.RoomCode)
	if code == "" {
		sendError(c, errCodeRequired)
		return
	}

	name := strings.TrimSpace(msg.Name)
	if name == "" {
		sendError(c, errNameRequired)
		return
	}

	playerID, err := reg.JoinRoom(code, name, msg.PlayerID, c)
	if err != nil {
		sendError(c, err)
		return
	}

	c.trySend(RoomJoinedMessage{
		Type:     "room_joined",
		RoomCode: strings.ToUpper(code),
		PlayerID: playerID,
	})

	room := reg.RoomByCode(code)
	if room == nil {
		return
	}

	reg.BroadcastToRoom(room, PlayerListMessage{Type: "player_list", Players: room.Players()}, "")
	reg.BroadcastState(room)
}

func handleLeaveRoom(reg *Registry, c *client) {
	if c.playerID == "" {
		sendError(c, errNotInRoom)
		return
	}

	room := reg.LeaveRoom(c.playerID)
	c.playerID = ""
	c.roomCode = ""

	if room == nil {
		return
	}

	reg.BroadcastToRoom(room, PlayerListMessage{Type: "player_list", Players: room.Players()}, "")
	reg.BroadcastState(room)
}

func handleSetTeam(reg *Registry, c *client, msg ClientMessage) {
	room := reg.RoomByPlayer(c.playerID)
	if c.playerID == "" || room == nil {
		sendError(c, errNotInRoom)
		return
	}

	if err := room.SetTeam(c.playerID, msg.Team); err != nil {
		sendError(c, err)
		return
	}

	reg.BroadcastToRoom(room, PlayerListMessage{Type: "player_list", Players: room.Players()}, "")
	reg.BroadcastState(room)
}

func handleSetRole(reg *Registry, c *client, msg ClientMessage) {
	room := reg.RoomByPlayer(c.playerID)
	if c.playerID == "" || room == nil {
		sendError(c, errNotInRoom)
		return
	}

	if err := room.SetRole(c.playerID, msg.Role); err != nil {
		sendError(c, err)
		return
	}

	reg.BroadcastToRoom(room, PlayerListMessage{Type: "player_list", Players: room.Players()}, "")
	reg.BroadcastState(room)
}

func handleStartGame(cfg *Config, reg *Registry, c *client) {
	room := reg.RoomByPlayer(c.playerID)
	if c.playerID == "" || room == nil {
		sendError(c, errNotInRoom)
		return
	}

	if err := room.Start(c.playerID); err != nil {
		sendError(c, err)
		return
	}

	logf(cfg, "GAMES: Started game in %s", room.Code())

	reg.BroadcastState(room)
}

func handleSubmitClue(reg *Registry, c *client, msg ClientMessage) {
	room := reg.RoomByPlayer(c.playerID)
	if c.playerID == "" || room == nil {
		sendError(c, errNotInRoom)
		return
	}

	clue, budget, err := room.SubmitClue(c.playerID, msg.Word, msg.Count)
	if err != nil {
		sendError(c, err)
		return
	}

	reg.BroadcastToRoom(room, ClueAcceptedMessage{
		Type:             "clue_accepted",
		Clue:             clue,
		GuessesRemaining: budget,
	}, "")
	reg.BroadcastState(room)
}

func handleGuessWord(reg *Registry, c *client, msg ClientMessage) {
	room := reg.RoomByPlayer(c.playerID)
	if c.playerID == "" || room == nil {
		sendError(c, errNotInRoom)
		return
	}

	result, err := room.Guess(c.playerID, msg.TileID)
	if err != nil {
		sendError(c, err)
		return
	}

	reg.BroadcastToRoom(room, GuessResultMessage{
		Type:    "guess_result",
		TileID:  result.TileID,
		Color:   result.Color,
		Correct: result.Correct,
	}, "")

	switch {
	case result.GameOver:
		reason := "all_revealed"
		if result.Color == ColorAssassin {
			reason = "assassin"
		}
		reg.BroadcastToRoom(room, GameOverMessage{
			Type:   "game_over",
			Winner: result.Winner,
			Reason: reason,
		}, "")

	case result.TurnEnded:
		reg.BroadcastToRoom(room, TurnEndedMessage{
			Type:     "turn_ended",
			NextTeam: result.NextTeam,
		}, "")
	}

	reg.BroadcastState(room)
}

func handleEndTurn(reg *Registry, c *client) {
	room := reg.RoomByPlayer(c.playerID)
	if c.playerID == "" || room == nil {
		sendError(c, errNotInRoom)
		return
	}

	nextTeam, err := room.Pass(c.playerID)
	if err != nil {
		sendError(c, err)
		return
	}

	reg.BroadcastToRoom(room, TurnEndedMessage{Type: "turn_ended", NextTeam: nextTeam}, "")
	reg.BroadcastState(room)
}

func handleRequestState(reg *Registry, c *client) {
	room := reg.RoomByPlayer(c.playerID)
	if c.playerID == "" || room == nil {
		sendError(c, errNotInRoom)
		return
	}

	var role Role
	for _, p := range room.Players() {
		if p.ID == c.playerID {
			role = p.Role
			break
		}
	}

	c.trySend(StateUpdateMessage{
		Type:  stateUpdateType(role),
		State: room.Snapshot(c.playerID),
	})
}

// serveWS upgrades the connection and runs the read loop until the client
// goes away.
func serveWS(cfg *Config, reg *Registry) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logf(cfg, "WS: Upgrade error: %v", err)
			return
		}

		c := newClient(conn)

		go c.writePump()
		c.readPump(cfg, reg)
	}
}

// qrHandler renders a PNG QR code pointing at the room's join URL.
func qrHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	code := ps.ByName("code")
	if code == "" {
		http.Error(w, "missing room code", http.StatusBadRequest)
		return
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	path := strings.TrimSuffix(r.URL.Path, "/qr")
	url := scheme + "://" + r.Host + path

	const qrSize = 320
	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		http.Error(w, "qr generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}
