// Package api serves read-only world state over HTTP for the presentation
// layer. GET endpoints are public; the speed/pause controls require a
// bearer token. Nothing here mutates simulation entities directly; the
// control endpoints go through the simulation's own setters.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/talgya/hegemony/internal/chronicle"
	"github.com/talgya/hegemony/internal/engine"
	"github.com/talgya/hegemony/internal/world"
)

// Server serves the world state over HTTP.
type Server struct {
	Sim      *engine.Simulation
	Hub      *Hub
	DB       *chronicle.DB // optional; /events falls back to the in-memory ring
	Port     int
	AdminKey string // bearer token for control endpoints; empty disables them
}

// Start begins serving in a goroutine.
func (s *Server) Start() {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/status", s.handleStatus)
	mux.HandleFunc("/api/v1/countries", s.handleCountries)
	mux.HandleFunc("/api/v1/provinces", s.handleProvinces)
	mux.HandleFunc("/api/v1/units", s.handleUnits)
	mux.HandleFunc("/api/v1/battles", s.handleBattles)
	mux.HandleFunc("/api/v1/wars", s.handleWars)
	mux.HandleFunc("/api/v1/treaties", s.handleTreaties)
	mux.HandleFunc("/api/v1/events", s.handleEvents)

	if s.Hub != nil {
		mux.HandleFunc("/ws", s.Hub.ServeWS)
	}

	mux.HandleFunc("/api/v1/speed", s.adminOnly(s.handleSpeed))
	mux.HandleFunc("/api/v1/pause", s.adminOnly(s.handlePause))

	addr := fmt.Sprintf(":%d", s.Port)
	slog.Info("HTTP API starting", "addr", addr, "admin_auth", s.AdminKey != "")

	go func() {
		if err := http.ListenAndServe(addr, corsMiddleware(mux)); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	s.Sim.Read(func() {
		payload = map[string]any{
			"game_time": s.Sim.GameTime,
			"date":      s.Sim.CurrentDate(),
			"speed":     s.Sim.Speed,
			"paused":    s.Sim.Paused,
			"player":    s.Sim.PlayerCountry,
			"countries": s.Sim.Countries.Count(),
			"provinces": s.Sim.Provinces.Count(),
			"units":     len(s.Sim.Military.Units()),
			"battles":   len(s.Sim.Combat.Battles()),
		}
	})
	writeJSON(w, payload)
}

func (s *Server) handleCountries(w http.ResponseWriter, r *http.Request) {
	type countryView struct {
		Code      string         `json:"code"`
		Name      string         `json:"name"`
		Money     float64        `json:"money"`
		Manpower  int            `json:"manpower"`
		Provinces int            `json:"provinces"`
		Units     int            `json:"units"`
		AtWarWith []string       `json:"at_war_with"`
		WarScores map[string]int `json:"war_scores"`
	}

	var payload []countryView
	s.Sim.Read(func() {
		for _, c := range s.Sim.Countries.All() {
			scores := make(map[string]int, len(c.WarScores))
			for k, v := range c.WarScores {
				scores[k] = v
			}
			payload = append(payload, countryView{
				Code:      c.Code,
				Name:      c.Name,
				Money:     c.Money,
				Manpower:  c.Manpower,
				Provinces: len(s.Sim.Provinces.ByOwner(c.Code)),
				Units:     len(s.Sim.Military.UnitsOf(c.Code)),
				AtWarWith: append([]string(nil), c.AtWarWith...),
				WarScores: scores,
			})
		}
	})
	writeJSON(w, payload)
}

func (s *Server) handleProvinces(w http.ResponseWriter, r *http.Request) {
	type provinceView struct {
		ID          world.ProvinceID `json:"id"`
		Name        string           `json:"name"`
		Terrain     string           `json:"terrain"`
		Development int              `json:"development"`
		Population  int              `json:"population"`
		Owner       string           `json:"owner"`
		Income      float64          `json:"income"`
		IsCapital   bool             `json:"is_capital"`
		IsCoastal   bool             `json:"is_coastal"`
	}

	var payload []provinceView
	s.Sim.Read(func() {
		for _, p := range s.Sim.Provinces.All() {
			payload = append(payload, provinceView{
				ID:          p.ID,
				Name:        p.Name,
				Terrain:     world.TerrainName(p.Terrain),
				Development: p.Development,
				Population:  p.Population,
				Owner:       p.Owner,
				Income:      p.Income(),
				IsCapital:   p.IsCapital,
				IsCoastal:   p.IsCoastal,
			})
		}
	})
	writeJSON(w, payload)
}

func (s *Server) handleUnits(w http.ResponseWriter, r *http.Request) {
	var payload []any
	s.Sim.Read(func() {
		for _, u := range s.Sim.Military.Units() {
			payload = append(payload, u)
		}
	})
	writeJSON(w, payload)
}

func (s *Server) handleBattles(w http.ResponseWriter, r *http.Request) {
	var payload []any
	s.Sim.Read(func() {
		for _, b := range s.Sim.Combat.Battles() {
			payload = append(payload, b)
		}
	})
	writeJSON(w, payload)
}

func (s *Server) handleWars(w http.ResponseWriter, r *http.Request) {
	type warView struct {
		A      string `json:"a"`
		B      string `json:"b"`
		ScoreA int    `json:"score_a"` // A's score against B
		ScoreB int    `json:"score_b"`
	}

	var payload []warView
	s.Sim.Read(func() {
		seen := make(map[string]bool)
		for _, c := range s.Sim.Countries.All() {
			for _, enemy := range c.AtWarWith {
				key := c.Code + ":" + enemy
				if enemy < c.Code {
					key = enemy + ":" + c.Code
				}
				if seen[key] {
					continue
				}
				seen[key] = true

				scoreB := 0
				if e := s.Sim.Countries.Get(enemy); e != nil {
					scoreB = e.WarScores[c.Code]
				}
				payload = append(payload, warView{
					A:      c.Code,
					B:      enemy,
					ScoreA: c.WarScores[enemy],
					ScoreB: scoreB,
				})
			}
		}
	})
	writeJSON(w, payload)
}

func (s *Server) handleTreaties(w http.ResponseWriter, r *http.Request) {
	var payload []any
	s.Sim.Read(func() {
		for _, t := range s.Sim.Diplomacy.Pending() {
			payload = append(payload, t)
		}
	})
	writeJSON(w, payload)
}

func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 500 {
			limit = n
		}
	}

	if s.DB != nil {
		events, err := s.DB.Recent(limit)
		if err == nil {
			writeJSON(w, events)
			return
		}
		slog.Warn("journal read failed, serving ring", "error", err)
	}

	var payload []engine.Event
	s.Sim.Read(func() {
		events := s.Sim.Events
		if len(events) > limit {
			events = events[len(events)-limit:]
		}
		payload = append(payload, events...)
	})
	writeJSON(w, payload)
}

func (s *Server) handleSpeed(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	speed, err := strconv.ParseFloat(r.URL.Query().Get("value"), 64)
	if err != nil || speed < 0 {
		http.Error(w, "bad speed", http.StatusBadRequest)
		return
	}
	s.Sim.SetSpeed(speed)
	writeJSON(w, map[string]any{"speed": speed})
}

func (s *Server) handlePause(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	paused := s.Sim.TogglePause()
	writeJSON(w, map[string]any{"paused": paused})
}

// adminOnly gates control endpoints behind the bearer token.
func (s *Server) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.AdminKey == "" {
			http.Error(w, "admin endpoints disabled", http.StatusForbidden)
			return
		}
		auth := r.Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") || strings.TrimPrefix(auth, "Bearer ") != s.AdminKey {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if v == nil {
		w.Write([]byte("[]"))
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("response encode failed", "error", err)
	}
}
