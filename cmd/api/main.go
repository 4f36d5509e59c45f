package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/joho/godotenv"

	"github.com/Astreocclu/arc-citadel-sub001/internal/api"
	"github.com/Astreocclu/arc-citadel-sub001/internal/battle"
	"github.com/Astreocclu/arc-citadel-sub001/internal/combat"
	"github.com/Astreocclu/arc-citadel-sub001/internal/config"
	"github.com/Astreocclu/arc-citadel-sub001/internal/stats"
	"github.com/Astreocclu/arc-citadel-sub001/internal/store"
)

type server struct {
	cfg      config.Config
	db       *store.Store
	upgrader websocket.Upgrader
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"error":   http.StatusText(code),
		"message": msg,
		"status":  code,
	})
}

// simple CORS for GET/POST/OPTIONS
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

// penetrationRow is one cell of the edge vs rigidity matrix, with and
// without the piercing shift applied.
type penetrationRow struct {
	Edge     string `json:"edge"`
	Rigidity string `json:"rigidity"`
	Result   string `json:"result"`
	Piercing string `json:"piercing"`
}

func (s *server) handlePenetrationTable(w http.ResponseWriter, r *http.Request) {
	rows := make([]penetrationRow, 0, len(combat.Edges())*len(combat.Rigidities()))
	for _, e := range combat.Edges() {
		for _, rig := range combat.Rigidities() {
			rows = append(rows, penetrationRow{
				Edge:     e.String(),
				Rigidity: rig.String(),
				Result:   combat.ResolvePenetration(e, rig, false).String(),
				Piercing: combat.ResolvePenetration(e, rig, true).String(),
			})
		}
	}
	writeJSON(w, rows)
}

type traumaRow struct {
	Mass    string `json:"mass"`
	Padding string `json:"padding"`
	Result  string `json:"result"`
}

func (s *server) handleTraumaTable(w http.ResponseWriter, r *http.Request) {
	rows := make([]traumaRow, 0, len(combat.Masses())*len(combat.Paddings()))
	for _, m := range combat.Masses() {
		for _, p := range combat.Paddings() {
			rows = append(rows, traumaRow{
				Mass:    m.String(),
				Padding: p.String(),
				Result:  combat.ResolveTrauma(m, p).String(),
			})
		}
	}
	writeJSON(w, rows)
}

func (s *server) handleResolveExchange(w http.ResponseWriter, r *http.Request) {
	var req api.ExchangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	attState, err := req.Attacker.CombatState()
	if err != nil {
		writeError(w, http.StatusBadRequest, "attacker: "+err.Error())
		return
	}
	defState, err := req.Defender.CombatState()
	if err != nil {
		writeError(w, http.StatusBadRequest, "defender: "+err.Error())
		return
	}
	attacker := attState.Combatant()
	defender := defState.Combatant()
	result := combat.ResolveExchange(&attacker, &defender)
	writeJSON(w, api.ExchangeResponse{
		Attacker: req.Attacker.Name,
		Defender: req.Defender.Name,
		Result:   result,
	})
}

// runDuel builds both sides, runs the duel, and folds the outcome into
// the aggregate counters.
func (s *server) runDuel(req api.DuelRequest) (battle.Report, error) {
	a, err := req.A.CombatState()
	if err != nil {
		return battle.Report{}, err
	}
	b, err := req.B.CombatState()
	if err != nil {
		return battle.Report{}, err
	}
	nameA := req.A.Name
	if nameA == "" {
		nameA = "a"
	}
	nameB := req.B.Name
	if nameB == "" {
		nameB = "b"
	}
	maxTicks := req.MaxTicks
	if maxTicks <= 0 {
		maxTicks = s.cfg.MaxDuelTicks
	}
	rep := battle.Duel(nameA, nameB, a, b, battle.Options{MaxTicks: maxTicks})
	recordDuel(rep)
	return rep, nil
}

func recordDuel(rep battle.Report) {
	stats.RecordDuel(rep.Exchanges)
	wounds := 0
	for _, sr := range []battle.SideReport{rep.A, rep.B} {
		for _, wd := range sr.Wounds {
			stats.RecordWound(wd.Severity.String())
			wounds++
		}
		if sr.Dead {
			stats.RecordDeath()
		}
	}
	if rep.Outcome == "morale_broken" {
		stats.RecordBreak()
	}
	if rep.Winner != "" {
		stats.SaveDailyMax(stats.DuelRecord{Winner: rep.Winner, Wounds: wounds, Ticks: rep.Ticks})
	}
}

func (s *server) handleDuel(w http.ResponseWriter, r *http.Request) {
	var req api.DuelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	rep, err := s.runDuel(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	id, err := s.db.SaveReport(r.Context(), rep)
	if err != nil {
		log.Printf("save report: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to store report")
		return
	}
	writeJSON(w, api.DuelResponse{ID: id, Report: rep})
}

func (s *server) handleListReports(w http.ResponseWriter, r *http.Request) {
	limit := s.cfg.ReportLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	rows, err := s.db.ListReports(r.Context(), limit)
	if err != nil {
		log.Printf("list reports: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list reports")
		return
	}
	writeJSON(w, rows)
}

func (s *server) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid report id")
		return
	}
	row, err := s.db.GetReport(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "report not found")
		return
	}
	if err != nil {
		log.Printf("get report: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load report")
		return
	}
	writeJSON(w, row)
}

func (s *server) handleStatsSummary(w http.ResponseWriter, r *http.Request) {
	summary := stats.GetSummary()
	out := map[string]any{"summary": summary}
	if rec, ok := stats.GetDailyMax(); ok {
		out["daily_max"] = rec
	}
	writeJSON(w, out)
}

// handleDuelWS streams a duel over a websocket: the client sends one
// DuelRequest, the server replies with each log line as a text frame
// and closes with the final report as a JSON frame.
func (s *server) handleDuelWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade: %v", err)
		return
	}
	defer conn.Close()

	var req api.DuelRequest
	if err := conn.ReadJSON(&req); err != nil {
		_ = conn.WriteMessage(websocket.TextMessage, []byte("error: invalid request"))
		return
	}
	rep, err := s.runDuel(req)
	if err != nil {
		_ = conn.WriteMessage(websocket.TextMessage, []byte("error: "+err.Error()))
		return
	}
	for _, line := range rep.Logs {
		if err := conn.WriteMessage(websocket.TextMessage, []byte(line)); err != nil {
			return
		}
	}
	id, err := s.db.SaveReport(r.Context(), rep)
	if err != nil {
		log.Printf("save report: %v", err)
		return
	}
	_ = conn.WriteJSON(api.DuelResponse{ID: id, Report: rep})
}

func (s *server) routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/healthz", s.handleHealthz).Methods(http.MethodGet)
	r.HandleFunc("/api/tables/penetration", s.handlePenetrationTable).Methods(http.MethodGet)
	r.HandleFunc("/api/tables/trauma", s.handleTraumaTable).Methods(http.MethodGet)
	r.HandleFunc("/api/resolve/exchange", s.handleResolveExchange).Methods(http.MethodPost)
	r.HandleFunc("/api/duel", s.handleDuel).Methods(http.MethodPost)
	r.HandleFunc("/api/reports", s.handleListReports).Methods(http.MethodGet)
	r.HandleFunc("/api/reports/{id:[0-9]+}", s.handleGetReport).Methods(http.MethodGet)
	r.HandleFunc("/api/stats/summary", s.handleStatsSummary).Methods(http.MethodGet)
	r.HandleFunc("/ws/duel", s.handleDuelWS)
	return r
}

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	db, err := store.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer db.Close()

	s := &server{
		cfg: cfg,
		db:  db,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}

	addr := ":" + cfg.Port
	log.Printf("combat API listening on %s", addr)
	log.Fatal(http.ListenAndServe(addr, withCORS(s.routes())))
}
