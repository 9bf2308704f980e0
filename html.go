package main

// Minimal inline client for quick manual testing; the real UI is a
// separate frontend speaking the same websocket protocol.
const indexHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Codenames</title>
<style>
  body { font-family: system-ui, -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif; margin: 2rem; }
  #status { margin-bottom: 1rem; font-size: 0.9rem; }
  #board { display: grid; grid-template-columns: repeat(5, 8rem); gap: 0.4rem; margin-top: 1rem; }
  .tile { padding: 0.8rem 0.2rem; text-align: center; border: 1px solid #999; cursor: pointer; }
  .tile.red { background: #e88; }
  .tile.blue { background: #88e; }
  .tile.neutral { background: #ddb; }
  .tile.assassin { background: #333; color: #fff; }
  .tile.revealed { opacity: 0.6; cursor: default; }
  #players { margin-top: 1rem; }
  #log { margin-top: 1rem; font-size: 0.8rem; white-space: pre-wrap; }
</style>
</head>
<body>
<h1>Codenames</h1>
<div id="status">Connecting…</div>
<div>
  <button id="create">Create room</button>
  <button id="join">Join room</button>
  <button id="red">Red</button>
  <button id="blue">Blue</button>
  <button id="spymaster">Spymaster</button>
  <button id="guesser">Guesser</button>
  <button id="start">Start</button>
  <button id="clue">Clue</button>
  <button id="pass">End turn</button>
</div>
<div id="players"></div>
<div id="board"></div>
<div id="log"></div>

<script>
(function() {
  const statusEl = document.getElementById('status');
  const boardEl = document.getElementById('board');
  const playersEl = document.getElementById('players');
  const logEl = document.getElementById('log');

  let playerId = sessionStorage.getItem('codenames_player_id') || '';
  let roomCode = '';

  const proto = (location.protocol === 'https:') ? 'wss://' : 'ws://';
  const ws = new WebSocket(proto + location.host + '/ws');

  function send(msg) { ws.send(JSON.stringify(msg)); }
  function log(text) { logEl.textContent = text + '\n' + logEl.textContent; }

  function renderBoard(board) {
    boardEl.innerHTML = '';
    board.forEach(function(tile) {
      const div = document.createElement('div');
      div.className = 'tile'
        + (tile.color ? ' ' + tile.color : '')
        + (tile.isRevealed ? ' revealed' : '');
      div.textContent = tile.word;
      div.onclick = function() {
        if (!tile.isRevealed) send({ type: 'guess_word', tileId: tile.id });
      };
      boardEl.appendChild(div);
    });
  }

  function renderPlayers(players) {
    playersEl.textContent = players.map(function(p) {
      return p.name
        + (p.isHost ? ' [host]' : '')
        + (p.team ? ' (' + p.team + ' ' + (p.role || '') + ')' : '')
        + (p.isConnected ? '' : ' [gone]');
    }).join(' | ');
  }

  ws.onopen = function() { statusEl.textContent = 'Connected.'; };
  ws.onclose = function() { statusEl.textContent = 'Disconnected.'; };

  ws.onmessage = function(event) {
    const msg = JSON.parse(event.data);

    switch (msg.type) {
    case 'room_created':
    case 'room_joined':
      roomCode = msg.roomCode;
      playerId = msg.playerId;
      sessionStorage.setItem('codenames_player_id', playerId);
      statusEl.textContent = 'Room ' + roomCode;
      history.replaceState(null, '', '/room/' + roomCode);
      break;
    case 'player_list':
      renderPlayers(msg.players);
      break;
    case 'state_update':
    case 'state_update_spymaster':
      renderBoard(msg.state.board);
      renderPlayers(msg.state.players);
      if (msg.state.winner) statusEl.textContent = msg.state.winner + ' wins!';
      break;
    case 'clue_accepted':
      log('Clue: ' + msg.clue.word + ' ' + msg.clue.count);
      break;
    case 'guess_result':
      log('Guess ' + msg.tileId + ': ' + msg.color + (msg.correct ? ' ✓' : ' ✗'));
      break;
    case 'turn_ended':
      log('Turn passes to ' + msg.nextTeam);
      break;
    case 'game_over':
      log('Game over: ' + msg.winner + ' wins (' + msg.reason + ')');
      break;
    case 'error':
      log('Error: ' + msg.message);
      break;
    }
  };

  document.getElementById('create').onclick = function() {
    send({ type: 'create_room', name: prompt('Your name:') || '' });
  };
  document.getElementById('join').onclick = function() {
    const code = location.pathname.startsWith('/room/')
      ? location.pathname.split('/')[2]
      : prompt('Room code:') || '';
    send({ type: 'join_room', roomCode: code, name: prompt('Your name:') || '', playerId: playerId });
  };
  document.getElementById('red').onclick = function() { send({ type: 'set_team', team: 'red' }); };
  document.getElementById('blue').onclick = function() { send({ type: 'set_team', team: 'blue' }); };
  document.getElementById('spymaster').onclick = function() { send({ type: 'set_role', role: 'spymaster' }); };
  document.getElementById('guesser').onclick = function() { send({ type: 'set_role', role: 'guesser' }); };
  document.getElementById('start').onclick = function() { send({ type: 'start_game' }); };
  document.getElementById('clue').onclick = function() {
    send({ type: 'submit_clue', word: prompt('Clue word:') || '', count: parseInt(prompt('Count:') || '0', 10) });
  };
  document.getElementById('pass').onclick = function() { send({ type: 'end_turn' }); };
})();
</script>
</body>
</html>
`
