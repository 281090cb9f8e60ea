package main

import (
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/oshadapramod/snake-game/pkg/config"
	"github.com/oshadapramod/snake-game/pkg/game"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// Global map to track active IP connections
var activeIPs sync.Map

// GameServer owns one session per websocket connection. The mutex serializes
// the read goroutine's intents against the tick loop; the session itself is
// single-threaded.
type GameServer struct {
	mu        sync.Mutex
	sess      *game.Session
	events    *game.CollectSink
	recorder  *game.Recorder
	store     *game.Store
	sessionID string
	startedAt time.Time
	step      int64
	last      time.Time
}

// ServerMessage is the frame sent to clients each tick.
type ServerMessage struct {
	Type   string            `json:"type"`
	Config *game.BoardConfig `json:"config,omitempty"`
	State  *game.Snapshot    `json:"state,omitempty"`
	Events []game.Event      `json:"events,omitempty"`
}

// ClientMessage carries one input intent from the browser.
type ClientMessage struct {
	Action string `json:"action"`
}

func NewGameServer(store *game.Store) *GameServer {
	events := &game.CollectSink{}
	return &GameServer{
		sess:      game.NewSession(time.Now().UnixNano(), events),
		events:    events,
		store:     store,
		sessionID: fmt.Sprintf("%08x", rand.Uint32()),
		last:      time.Now(),
	}
}

func (gs *GameServer) handleAction(action string) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	var dir game.Point
	isDirection := true
	switch action {
	case "up":
		dir = game.DirUp
	case "down":
		dir = game.DirDown
	case "left":
		dir = game.DirLeft
	case "right":
		dir = game.DirRight
	default:
		isDirection = false
	}

	if isDirection {
		if gs.sess.Phase() == game.PhaseNotStarted {
			gs.startRun()
		}
		gs.sess.SetDirection(dir)
		return
	}

	switch {
	case action == "start":
		gs.startRun()
	case action == "pause":
		gs.sess.TogglePause()
	case action == "restart":
		gs.finishRun()
		gs.sess.Restart()
		gs.beginRecording()
	case action == "quit":
		// Snapshot the run before Quit resets it.
		if p := gs.sess.Phase(); p == game.PhasePaused || p == game.PhaseGameOver {
			gs.finishRun()
			gs.sess.Quit()
		}
	case action == "diff_1":
		gs.sess.SelectDifficulty(game.DifficultyEasy)
	case action == "diff_2":
		gs.sess.SelectDifficulty(game.DifficultyNormal)
	case action == "diff_3":
		gs.sess.SelectDifficulty(game.DifficultyHard)
	case strings.HasPrefix(action, "skin_"):
		gs.sess.SelectSkin(game.Skin(strings.TrimPrefix(action, "skin_")))
	}
}

func (gs *GameServer) startRun() {
	if gs.sess.Start() {
		gs.beginRecording()
	}
}

func (gs *GameServer) beginRecording() {
	rec, err := game.NewRecorder("records", gs.sessionID)
	if err != nil {
		log.Println("recorder disabled:", err)
		return
	}
	gs.recorder = rec
	gs.startedAt = time.Now()
	gs.step = 0
}

// finishRun closes the active recording and persists the run. Safe to call
// when no run is active.
func (gs *GameServer) finishRun() {
	if gs.recorder == nil {
		return
	}
	file := gs.recorder.Filename()
	gs.recorder.Close()
	gs.recorder = nil

	snap := gs.sess.Snapshot()
	if gs.store == nil {
		return
	}
	_, err := gs.store.SaveSession(game.SessionRecord{
		StartedAt:  gs.startedAt,
		EndedAt:    time.Now(),
		Score:      snap.Score,
		Difficulty: snap.Difficulty,
		Skin:       snap.Skin,
		Length:     len(snap.Snake),
		RecordFile: file,
	})
	if err != nil {
		log.Println("failed to save session:", err)
	}
}

// update advances the simulation by the real elapsed time and returns the
// tick's snapshot and drained events.
func (gs *GameServer) update(now time.Time) (game.Snapshot, []game.Event) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	dt := now.Sub(gs.last).Seconds()
	gs.last = now

	wasPlaying := gs.sess.Phase() == game.PhasePlaying
	gs.sess.Advance(dt)
	snap := gs.sess.Snapshot()
	events := gs.events.Drain()

	if gs.recorder != nil {
		gs.step++
		gs.recorder.Record(game.StepRecord{Step: gs.step, State: snap, Events: events})
	}
	if wasPlaying && gs.sess.Phase() == game.PhaseGameOver {
		gs.finishRun()
	}

	return snap, events
}

func (gs *GameServer) snapshot() game.Snapshot {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.sess.Snapshot()
}

func (gs *GameServer) close() {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.finishRun()
}

func handleWebSocket(store *game.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("Upgrade error:", err)
			return
		}
		defer conn.Close()

		log.Println("New WebSocket connection from:", r.RemoteAddr)

		// Get base IP address (remove port)
		ip := r.RemoteAddr
		if i := strings.LastIndex(ip, ":"); i >= 0 {
			ip = ip[:i]
		}

		// One game per IP
		if _, loaded := activeIPs.LoadOrStore(ip, true); loaded {
			log.Printf("Connection rejected: IP %s is already connected\n", ip)
			conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "Already connected"))
			return
		}
		defer activeIPs.Delete(ip)

		gs := NewGameServer(store)
		defer gs.close()

		// Mutex to protect concurrent writes to the WebSocket connection
		var writeMu sync.Mutex
		safeWriteJSON := func(v interface{}) error {
			writeMu.Lock()
			defer writeMu.Unlock()
			return conn.WriteJSON(v)
		}

		// Send initial config and state
		board := game.Board()
		safeWriteJSON(ServerMessage{Type: "config", Config: &board})
		initial := gs.snapshot()
		safeWriteJSON(ServerMessage{Type: "state", State: &initial})

		// Input handling goroutine
		go func() {
			for {
				var msg ClientMessage
				if err := conn.ReadJSON(&msg); err != nil {
					log.Println("Read error:", err)
					return
				}
				gs.handleAction(msg.Action)
				// Trigger immediate state update for UI responsiveness
				state := gs.snapshot()
				safeWriteJSON(ServerMessage{Type: "state", State: &state})
			}
		}()

		ticker := time.NewTicker(config.BaseTick)
		defer ticker.Stop()

		// Game loop
		for now := range ticker.C {
			state, events := gs.update(now)
			if err := safeWriteJSON(ServerMessage{Type: "state", State: &state, Events: events}); err != nil {
				log.Println("Write error:", err)
				return
			}
		}
	}
}

func main() {
	store, err := game.OpenStore("data/sessions.db")
	if err != nil {
		log.Fatal("Failed to open session store:", err)
	}
	defer store.Close()

	// Serve static files
	fs := http.FileServer(http.Dir("web/static"))
	http.Handle("/", fs)

	// WebSocket endpoint
	http.HandleFunc("/ws", handleWebSocket(store))

	port := ":8080"
	fmt.Printf("🚀 Snake Web Server starting on http://localhost%s\n", port)

	log.Fatal(http.ListenAndServe(port, nil))
}
