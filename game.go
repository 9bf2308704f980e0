package main

import (
	"strings"
	"sync"
	"time"
)

type GamePhase string

const (
	PhaseLobby    GamePhase = "lobby"
	PhaseClue     GamePhase = "clue"
	PhaseGuess    GamePhase = "guess"
	PhaseGameOver GamePhase = "game_over"
)

type Role string

const (
	RoleSpymaster Role = "spymaster"
	RoleGuesser   Role = "guesser"
)

func (r Role) valid() bool {
	return r == RoleSpymaster || r == RoleGuesser
}

// Player is the server-side record for one room member. Disconnected
// players are kept so a reconnect can resume their identity and role.
type Player struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Team        Team   `json:"team,omitempty"`
	Role        Role   `json:"role,omitempty"`
	IsConnected bool   `json:"isConnected"`
	IsHost      bool   `json:"isHost"`
}

type Clue struct {
	Word    string    `json:"word"`
	Count   int       `json:"count"`
	GivenBy string    `json:"givenBy"`
	GivenAt time.Time `json:"givenAt"`
}

// GuessBudget tracks guesses left in a turn. A clue of count zero grants
// unlimited guesses, ended only by a wrong guess or an explicit pass.
type GuessBudget struct {
	Unlimited bool `json:"unlimited"`
	Remaining int  `json:"remaining,omitempty"`
}

func boundedGuesses(n int) GuessBudget {
	return GuessBudget{Remaining: n}
}

func unlimitedGuesses() GuessBudget {
	return GuessBudget{Unlimited: true}
}

// decrement spends one guess. Unlimited budgets never run out.
func (g GuessBudget) decrement() GuessBudget {
	if g.Unlimited {
		return g
	}
	if g.Remaining > 0 {
		g.Remaining--
	}
	return g
}

func (g GuessBudget) exhausted() bool {
	return !g.Unlimited && g.Remaining <= 0
}

type TurnState struct {
	Team    Team        `json:"team"`
	Phase   GamePhase   `json:"phase"`
	Guesses GuessBudget `json:"guesses"`
	Clue    *Clue       `json:"clue,omitempty"`
}

// GuessResult describes the outcome of one accepted guess.
type GuessResult struct {
	TileID    string
	Color     TileColor
	Correct   bool
	GameOver  bool
	Winner    Team
	TurnEnded bool
	NextTeam  Team
}

// Room owns one session's full state and its rules engine. Every mutating
// operation takes the write lock, validates, applies atomically, and bumps
// the revision; rejections leave state untouched. Rooms never share locks,
// so independent sessions proceed concurrently.
type Room struct {
	mu sync.RWMutex

	code      string
	createdAt time.Time
	phase     GamePhase
	players   []*Player
	board     []WordTile
	key       KeyCard
	turn      TurnState
	winner    Team

	revision   uint64
	lastActive time.Time
}

func newRoom(code, hostID, hostName string) *Room {
	now := time.Now()
	return &Room{
		code:      code,
		createdAt: now,
		phase:     PhaseLobby,
		players: []*Player{{
			ID:          hostID,
			Name:        hostName,
			IsConnected: true,
			IsHost:      true,
		}},
		turn: TurnState{
			Team:  TeamRed,
			Phase: PhaseLobby,
		},
		lastActive: now,
	}
}

func (r *Room) Code() string {
	return r.code
}

func (r *Room) Phase() GamePhase {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.phase
}

func (r *Room) Turn() TurnState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.turn
}

func (r *Room) Revision() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.revision
}

func (r *Room) touchLocked() {
	r.revision++
	r.lastActive = time.Now()
}

// IdleSince reports whether the room has seen no mutation since cutoff.
func (r *Room) IdleSince(cutoff time.Time) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastActive.Before(cutoff)
}

func (r *Room) playerLocked(id string) *Player {
	for _, p := range r.players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Players returns the roster in join order.
func (r *Room) Players() []Player {
	r.mu.RLock()
	defer r.mu.RUnlock()

	players := make([]Player, 0, len(r.players))
	for _, p := range r.players {
		players = append(players, *p)
	}
	return players
}

// ConnectedPlayers returns only members whose connection is up.
func (r *Room) ConnectedPlayers() []Player {
	r.mu.RLock()
	defer r.mu.RUnlock()

	players := make([]Player, 0, len(r.players))
	for _, p := range r.players {
		if p.IsConnected {
			players = append(players, *p)
		}
	}
	return players
}

// AddPlayer admits a new member, or resumes an existing one by ID. Late
// joiners during an active game hold no team or role until the next lobby.
func (r *Room) AddPlayer(id, name string) Player {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p := r.playerLocked(id); p != nil {
		p.IsConnected = true
		p.Name = name
		r.touchLocked()
		return *p
	}

	p := &Player{
		ID:          id,
		Name:        name,
		IsConnected: true,
	}
	r.players = append(r.players, p)
	r.touchLocked()
	return *p
}

// Reconnect flips the connectivity flag back on. Team, role, and name are
// left exactly as they were; only a host reassignment applied during the
// gap persists.
func (r *Room) Reconnect(id string) (Player, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.playerLocked(id)
	if p == nil {
		return Player{}, false
	}

	p.IsConnected = true
	r.touchLocked()
	return *p, true
}

// Disconnect marks a member as gone without deleting them. If they held
// host, the flag moves to the first remaining connected player in join
// order.
func (r *Room) Disconnect(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.playerLocked(id)
	if p == nil {
		return false
	}

	p.IsConnected = false
	r.touchLocked()

	if p.IsHost {
		for _, next := range r.players {
			if next.IsConnected {
				next.IsHost = true
				p.IsHost = false
				break
			}
		}
	}

	return true
}

func (r *Room) SetTeam(playerID string, team Team) error {
	if !team.valid() {
		return errInvalidTeam
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.playerLocked(playerID)
	if p == nil {
		return errPlayerNotFound
	}
	if r.phase != PhaseLobby {
		return errNotInLobby
	}

	p.Team = team
	if p.Role == "" {
		p.Role = RoleGuesser
	}
	r.touchLocked()
	return nil
}

func (r *Room) SetRole(playerID string, role Role) error {
	if !role.valid() {
		return errInvalidRole
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.playerLocked(playerID)
	if p == nil {
		return errPlayerNotFound
	}
	if r.phase != PhaseLobby {
		return errNotInLobby
	}

	p.Role = role
	r.touchLocked()
	return nil
}

// Start moves the room out of the lobby: host only, both teams staffed
// with exactly one spymaster and at least one guesser, at least two
// players each. The board is generated here and the key card's starting
// team takes the first turn.
func (r *Room) Start(playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.playerLocked(playerID)
	if p == nil {
		return errPlayerNotFound
	}
	if !p.IsHost {
		return errNotHost
	}
	if r.phase != PhaseLobby {
		return errNotInLobby
	}

	for _, team := range []Team{TeamRed, TeamBlue} {
		var size, spymasters, guessers int
		for _, member := range r.players {
			if member.Team != team {
				continue
			}
			size++
			switch member.Role {
			case RoleSpymaster:
				spymasters++
			case RoleGuesser:
				guessers++
			}
		}
		if size < 2 {
			return errTeamsTooSmall
		}
		if spymasters != 1 {
			return errNeedSpymaster
		}
		if guessers < 1 {
			return errNeedGuesser
		}
	}

	r.board, r.key = generateBoard("")
	r.turn = TurnState{
		Team:    r.key.StartingTeam,
		Phase:   PhaseClue,
		Guesses: boundedGuesses(0),
	}
	r.phase = PhaseClue
	r.touchLocked()
	return nil
}

// SubmitClue validates and stores the active spymaster's clue and opens
// the guess phase. A clue count of zero grants unlimited guesses; any
// other count allows count+1 guesses.
func (r *Room) SubmitClue(playerID, word string, count int) (Clue, GuessBudget, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.playerLocked(playerID)
	if p == nil {
		return Clue{}, GuessBudget{}, errPlayerNotFound
	}
	if r.phase == PhaseGameOver {
		return Clue{}, GuessBudget{}, errGameFinished
	}
	if p.Role != RoleSpymaster {
		return Clue{}, GuessBudget{}, errNotSpymaster
	}
	if p.Team == "" {
		return Clue{}, GuessBudget{}, errNoTeam
	}
	if p.Team != r.turn.Team {
		return Clue{}, GuessBudget{}, errNotYourTurn
	}
	if r.turn.Phase != PhaseClue {
		return Clue{}, GuessBudget{}, errNotCluePhase
	}
	if count < 0 {
		return Clue{}, GuessBudget{}, errClueBadCount
	}

	normalized, err := r.validateClueLocked(word)
	if err != nil {
		return Clue{}, GuessBudget{}, err
	}

	clue := Clue{
		Word:    normalized,
		Count:   count,
		GivenBy: p.Name,
		GivenAt: time.Now(),
	}

	budget := unlimitedGuesses()
	if count > 0 {
		budget = boundedGuesses(count + 1)
	}

	r.turn.Clue = &clue
	r.turn.Guesses = budget
	r.turn.Phase = PhaseGuess
	r.phase = PhaseGuess
	r.touchLocked()
	return clue, budget, nil
}

// validateClueLocked normalizes the clue and rejects anything that is a
// board word, contains one, or is contained by one. Exact matches are
// caught by the equality check before the substring comparison runs.
func (r *Room) validateClueLocked(word string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(word))
	if normalized == "" {
		return "", errClueEmpty
	}

	for _, c := range normalized {
		if c < 'A' || c > 'Z' {
			return "", errClueNotLetters
		}
	}

	for _, tile := range r.board {
		label := strings.ToUpper(tile.Word)
		if label == normalized {
			return "", errClueOnBoard
		}
		if strings.Contains(label, normalized) || strings.Contains(normalized, label) {
			return "", errClueOverlapsWord
		}
	}

	return normalized, nil
}

// Guess reveals a tile for an active guesser and applies the outcome in
// order: assassin loss first, then all-revealed win, then the guess
// counter and turn handoff.
func (r *Room) Guess(playerID, tileID string) (GuessResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.playerLocked(playerID)
	if p == nil {
		return GuessResult{}, errPlayerNotFound
	}
	if r.phase == PhaseGameOver {
		return GuessResult{}, errGameFinished
	}
	if p.Role != RoleGuesser {
		return GuessResult{}, errNotGuesser
	}
	if p.Team == "" {
		return GuessResult{}, errNoTeam
	}
	if p.Team != r.turn.Team {
		return GuessResult{}, errNotYourTurn
	}
	if r.turn.Phase != PhaseGuess {
		return GuessResult{}, errNotGuessPhase
	}

	var tile *WordTile
	for i := range r.board {
		if r.board[i].ID == tileID {
			tile = &r.board[i]
			break
		}
	}
	if tile == nil {
		return GuessResult{}, errTileNotFound
	}
	if tile.IsRevealed {
		return GuessResult{}, errTileRevealed
	}

	tile.IsRevealed = true
	r.touchLocked()

	team := r.turn.Team
	result := GuessResult{
		TileID:  tileID,
		Color:   tile.Color,
		Correct: tile.Color == TileColor(team),
	}

	if tile.Color == ColorAssassin {
		r.endGameLocked(team.Other())
		result.GameOver = true
		result.Winner = team.Other()
		return result, nil
	}

	if winner, done := r.revealWinnerLocked(); done {
		r.endGameLocked(winner)
		result.GameOver = true
		result.Winner = winner
		return result, nil
	}

	if result.Correct {
		r.turn.Guesses = r.turn.Guesses.decrement()
	}

	if !result.Correct || r.turn.Guesses.exhausted() {
		r.endTurnLocked()
		result.TurnEnded = true
		result.NextTeam = r.turn.Team
	}

	return result, nil
}

// Pass ends the active team's turn on an explicit request from one of its
// guessers.
func (r *Room) Pass(playerID string) (Team, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := r.playerLocked(playerID)
	if p == nil {
		return "", errPlayerNotFound
	}
	if r.phase == PhaseGameOver {
		return "", errGameFinished
	}
	if p.Role != RoleGuesser {
		return "", errNotGuesser
	}
	if p.Team == "" {
		return "", errNoTeam
	}
	if p.Team != r.turn.Team {
		return "", errNotYourTurn
	}
	if r.turn.Phase != PhaseGuess {
		return "", errNotGuessPhase
	}

	r.endTurnLocked()
	r.touchLocked()
	return r.turn.Team, nil
}

// revealWinnerLocked reports whether either team has all of its tiles
// revealed. Revealing the opposing team's last tile hands them the win.
func (r *Room) revealWinnerLocked() (Team, bool) {
	for _, team := range []Team{TeamRed, TeamBlue} {
		remaining := 0
		for _, tile := range r.board {
			if tile.Color == TileColor(team) && !tile.IsRevealed {
				remaining++
			}
		}
		if remaining == 0 {
			return team, true
		}
	}
	return "", false
}

func (r *Room) endTurnLocked() {
	r.turn = TurnState{
		Team:    r.turn.Team.Other(),
		Phase:   PhaseClue,
		Guesses: boundedGuesses(0),
	}
	r.phase = PhaseClue
}

func (r *Room) endGameLocked(winner Team) {
	r.phase = PhaseGameOver
	r.turn.Phase = PhaseGameOver
	r.winner = winner
}
