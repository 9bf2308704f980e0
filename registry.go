package main

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// roomCodeAlphabet skips visually confusable characters (0/O, 1/I/L).
const roomCodeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const roomCodeLength = 6

// Registry is the process-wide session table: room codes to rooms, and
// players to their room and live connection. It is constructed explicitly
// and handed to every connection handler rather than living in a global.
type Registry struct {
	mu         sync.RWMutex
	rooms      map[string]*Room
	playerRoom map[string]string
	conns      map[string]*client

	cfg *Config
}

func newRegistry(cfg *Config) *Registry {
	return &Registry{
		rooms:      make(map[string]*Room),
		playerRoom: make(map[string]string),
		conns:      make(map[string]*client),
		cfg:        cfg,
	}
}

// newRoomCodeLocked generates a fresh 6-character code, retrying on the rare
// collision with a live room. Callers must hold reg.mu.
func (reg *Registry) newRoomCodeLocked() string {
	for {
		out := make([]byte, roomCodeLength)
		for i := range out {
			out[i] = roomCodeAlphabet[randIntn(len(roomCodeAlphabet))]
		}
		code := string(out)

		if _, exists := reg.rooms[code]; !exists {
			return code
		}
	}
}

// CreateRoom issues a fresh room code and host identity, instantiates the
// room, and binds the requesting connection.
func (reg *Registry) CreateRoom(hostName string, c *client) (string, string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	code := reg.newRoomCodeLocked()
	playerID := uuid.NewString()

	reg.rooms[code] = newRoom(code, playerID, hostName)
	reg.playerRoom[playerID] = code
	reg.conns[playerID] = c

	c.playerID = playerID
	c.roomCode = code

	logf(reg.cfg, "ROOMS: Created room %s for %q", code, hostName)

	return code, playerID
}

// JoinRoom binds a connection to an existing room, either as a brand-new
// player or by reconnecting a known player ID. Reconnection only flips the
// connectivity flag; name, team, and role are untouched. The registry lock
// is held across the lookup so a join can never race an empty-room
// removal: it finds the room or fails with room-not-found.
func (reg *Registry) JoinRoom(code, name, existingPlayerID string, c *client) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	reg.mu.Lock()
	defer reg.mu.Unlock()

	room, ok := reg.rooms[code]
	if !ok {
		return "", errRoomNotFound
	}

	if existingPlayerID != "" {
		if _, ok := room.Reconnect(existingPlayerID); ok {
			reg.playerRoom[existingPlayerID] = code
			reg.conns[existingPlayerID] = c
			c.playerID = existingPlayerID
			c.roomCode = code
			logf(reg.cfg, "ROOMS: Player %s reconnected to %s", existingPlayerID, code)
			return existingPlayerID, nil
		}
	}

	playerID := uuid.NewString()
	room.AddPlayer(playerID, name)

	reg.playerRoom[playerID] = code
	reg.conns[playerID] = c

	c.playerID = playerID
	c.roomCode = code

	logf(reg.cfg, "ROOMS: Player %q joined %s", name, code)

	return playerID, nil
}

// LeaveRoom unbinds a player on an explicit leave. The room survives as
// long as anyone is still connected; an empty room is removed immediately.
func (reg *Registry) LeaveRoom(playerID string) *Room {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	code, ok := reg.playerRoom[playerID]
	if !ok {
		return nil
	}

	room := reg.rooms[code]
	if room != nil {
		room.Disconnect(playerID)

		if len(room.ConnectedPlayers()) == 0 {
			delete(reg.rooms, code)
			logf(reg.cfg, "ROOMS: Removed empty room %s", code)
		}
	}

	delete(reg.playerRoom, playerID)
	delete(reg.conns, playerID)

	return room
}

// HandleDisconnect reacts to a transport-level closure. The player's room
// binding is kept so the same ID can reconnect and resume.
func (reg *Registry) HandleDisconnect(playerID string) *Room {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	code, ok := reg.playerRoom[playerID]
	if !ok {
		return nil
	}

	room := reg.rooms[code]
	if room != nil {
		room.Disconnect(playerID)
	}

	delete(reg.conns, playerID)

	return room
}

// RoomByCode looks up a room, normalizing the code.
func (reg *Registry) RoomByCode(code string) *Room {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return reg.rooms[strings.ToUpper(strings.TrimSpace(code))]
}

// RoomByPlayer resolves the room a player is bound to, if any.
func (reg *Registry) RoomByPlayer(playerID string) *Room {
	reg.mu.RLock()
	defer reg.mu.RUnlock()

	code, ok := reg.playerRoom[playerID]
	if !ok {
		return nil
	}
	return reg.rooms[code]
}

// SendToPlayer delivers one message to one bound connection, if up.
func (reg *Registry) SendToPlayer(playerID string, msg any) {
	reg.mu.RLock()
	c := reg.conns[playerID]
	reg.mu.RUnlock()

	if c != nil {
		c.trySend(msg)
	}
}

// BroadcastToRoom fans a message out to every connected member, with an
// optional exclusion.
func (reg *Registry) BroadcastToRoom(room *Room, msg any, excludePlayerID string) {
	for _, p := range room.ConnectedPlayers() {
		if p.ID == excludePlayerID {
			continue
		}

		reg.mu.RLock()
		c := reg.conns[p.ID]
		reg.mu.RUnlock()

		if c != nil {
			c.trySend(msg)
		}
	}
}

// BroadcastState recomputes and pushes the per-player filtered snapshot to
// every connected member. Snapshots are never shared across recipients: a
// spymaster and a guesser at the same revision see different boards.
func (reg *Registry) BroadcastState(room *Room) {
	for _, p := range room.ConnectedPlayers() {
		reg.mu.RLock()
		c := reg.conns[p.ID]
		reg.mu.RUnlock()

		if c == nil {
			continue
		}

		c.trySend(StateUpdateMessage{
			Type:  stateUpdateType(p.Role),
			State: room.Snapshot(p.ID),
		})
	}
}

// reaperLoop periodically removes rooms idle longer than the configured
// session timeout, disconnecting any stragglers.
func (reg *Registry) reaperLoop(ctx context.Context) {
	if reg.cfg.sessionTimeout <= 0 {
		return
	}

	ticker := time.NewTicker(reg.cfg.sessionTimeout / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			reg.reapIdleRooms(time.Now().Add(-reg.cfg.sessionTimeout))
		}
	}
}

func (reg *Registry) reapIdleRooms(cutoff time.Time) {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	for code, room := range reg.rooms {
		if !room.IdleSince(cutoff) {
			continue
		}

		delete(reg.rooms, code)
		logf(reg.cfg, "ROOMS: Reaped idle room %s", code)

		for _, p := range room.Players() {
			if c, ok := reg.conns[p.ID]; ok {
				c.close()
				delete(reg.conns, p.ID)
			}
			delete(reg.playerRoom, p.ID)
		}
	}
}
