package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/oshadapramod/snake-game/pkg/game"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ReplayServer serves the replay library and streams recorded games.
type ReplayServer struct {
	addr      string
	recordDir string
	store     *game.Store
}

func main() {
	store, err := game.OpenStore("data/sessions.db")
	if err != nil {
		log.Println("session store unavailable:", err)
	}

	server := &ReplayServer{
		addr:      ":8081",
		recordDir: "records",
		store:     store,
	}

	// Serve static files (reuses web/static from the game server)
	fs := http.FileServer(http.Dir("web/static"))
	http.Handle("/static/", http.StripPrefix("/static/", fs))

	http.HandleFunc("/", server.handleIndex)
	http.HandleFunc("/view", server.handleView)
	http.HandleFunc("/ws/replay", server.handleReplayWS)

	fmt.Printf("📼 Snake Replay Tool starting on http://localhost%s\n", server.addr)
	log.Fatal(http.ListenAndServe(server.addr, nil))
}

type RecordFile struct {
	Name      string
	Size      int64
	Time      time.Time
	SessionID string
}

type indexData struct {
	Records  []RecordFile
	Sessions []game.SessionRecord
}

var indexTmpl = template.Must(template.New("index").Parse(`
<!DOCTYPE html>
<html>
<head>
    <title>Snake Replays</title>
    <style>
        body { font-family: monospace; background: #1a202c; color: #fff; padding: 2rem; }
        h1, h2 { color: #48bb78; }
        .file-list { display: grid; gap: 1rem; }
        .file-item {
            background: #2d3748; padding: 1rem; border-radius: 8px;
            display: flex; justify-content: space-between; align-items: center;
        }
        .file-item:hover { background: #4a5568; }
        a { color: #63b3ed; text-decoration: none; font-weight: bold; }
        .meta { color: #a0aec0; font-size: 0.9em; }
        table { border-collapse: collapse; margin-bottom: 2rem; }
        td, th { padding: 0.3rem 1rem; border-bottom: 1px solid #4a5568; }
    </style>
</head>
<body>
    <h1>📼 Replay Library</h1>
    {{if .Sessions}}
    <h2>Recent games</h2>
    <table>
        <tr><th>Ended</th><th>Score</th><th>Level</th><th>Skin</th><th>Length</th><th></th></tr>
        {{range .Sessions}}
        <tr>
            <td>{{.EndedAt.Format "2006-01-02 15:04:05"}}</td>
            <td>{{.Score}}</td>
            <td>{{.Difficulty}}</td>
            <td>{{.Skin}}</td>
            <td>{{.Length}}</td>
            <td>{{if .RecordFile}}<a href="/view?file={{.RecordFile}}">WATCH ▶</a>{{end}}</td>
        </tr>
        {{end}}
    </table>
    {{end}}
    <div class="file-list">
        {{range .Records}}
        <div class="file-item">
            <div>
                <div class="name">{{.Name}}</div>
                <div class="meta">Session: {{.SessionID}} | Size: {{.Size}} bytes | {{.Time.Format "2006-01-02 15:04:05"}}</div>
            </div>
            <a href="/view?file={{.Name}}">WATCH REPLAY ▶</a>
        </div>
        {{else}}
        <p>No recordings found in ./records/</p>
        {{end}}
    </div>
</body>
</html>`))

func (s *ReplayServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	files, err := os.ReadDir(s.recordDir)
	if err != nil {
		os.MkdirAll(s.recordDir, 0755)
		files = []os.DirEntry{}
	}

	var records []RecordFile
	for _, f := range files {
		if filepath.Ext(f.Name()) != ".jsonl" {
			continue
		}
		info, err := f.Info()
		if err != nil {
			continue
		}
		// expecting format: game_{sessionID}_{timestamp}.jsonl
		parts := strings.Split(f.Name(), "_")
		sessID := ""
		if len(parts) >= 2 {
			sessID = parts[1]
		}
		records = append(records, RecordFile{
			Name:      f.Name(),
			Size:      info.Size(),
			Time:      info.ModTime(),
			SessionID: sessID,
		})
	}

	// Sort by time desc
	sort.Slice(records, func(i, j int) bool {
		return records[i].Time.After(records[j].Time)
	})

	data := indexData{Records: records}
	if s.store != nil {
		if sessions, err := s.store.RecentSessions(20); err == nil {
			data.Sessions = sessions
		} else {
			log.Println("failed to list sessions:", err)
		}
	}

	indexTmpl.Execute(w, data)
}

func (s *ReplayServer) handleView(w http.ResponseWriter, r *http.Request) {
	filename := r.URL.Query().Get("file")
	if filename == "" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/static/replay.html?file="+filename, http.StatusFound)
}

func (s *ReplayServer) handleReplayWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	filename := filepath.Base(r.URL.Query().Get("file"))
	file, err := os.Open(filepath.Join(s.recordDir, filename))
	if err != nil {
		log.Println("Failed to open record:", err)
		return
	}
	defer file.Close()

	// Board geometry is fixed at build time, so the current config matches
	// whatever the recording was played on.
	board := game.Board()
	if err := conn.WriteJSON(struct {
		Type   string            `json:"type"`
		Config *game.BoardConfig `json:"config"`
	}{Type: "config", Config: &board}); err != nil {
		return
	}

	// Playback controls
	paused := make(chan bool, 1)

	go func() {
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var cmd struct {
				Command string `json:"command"`
			}
			json.Unmarshal(msg, &cmd)
			switch cmd.Command {
			case "pause":
				select {
				case paused <- true:
				default:
				}
			case "resume":
				select {
				case paused <- false:
				default:
				}
			}
		}
	}()

	isPaused := false
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var rec game.StepRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			log.Println("JSON parse error:", err)
			continue
		}

		for {
			select {
			case isPaused = <-paused:
			default:
			}
			if !isPaused {
				break
			}
			time.Sleep(100 * time.Millisecond)
		}
		time.Sleep(100 * time.Millisecond) // Fixed 10fps playback

		msg := struct {
			Type   string         `json:"type"`
			State  game.Snapshot  `json:"state"`
			Events []game.Event   `json:"events,omitempty"`
			Meta   map[string]any `json:"meta"`
		}{
			Type:   "state",
			State:  rec.State,
			Events: rec.Events,
			Meta:   map[string]any{"step": rec.Step},
		}

		if err := conn.WriteJSON(msg); err != nil {
			break
		}
	}
}
