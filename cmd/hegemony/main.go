// Command hegemony runs the grand-strategy simulation core headless, with
// a read-only HTTP/WebSocket observation surface.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dustin/go-humanize"

	"github.com/talgya/hegemony/internal/api"
	"github.com/talgya/hegemony/internal/chronicle"
	"github.com/talgya/hegemony/internal/engine"
	"github.com/talgya/hegemony/internal/entropy"
	"github.com/talgya/hegemony/internal/military"
	"github.com/talgya/hegemony/internal/nation"
	"github.com/talgya/hegemony/internal/scenario"
	"github.com/talgya/hegemony/internal/world"
)

func main() {
	scenarioPath := flag.String("scenario", "", "YAML scenario file (empty = built-in sample world)")
	generate := flag.Int("generate", 0, "generate a demo map with N provinces instead of a scenario")
	nations := flag.Int("nations", 4, "number of nations on a generated map")
	seed := flag.Uint64("seed", 42, "simulation randomness seed")
	player := flag.String("player", "", "player-controlled country code (empty = scenario default)")
	speed := flag.Float64("speed", 1.0, "initial time multiplier")
	dbPath := flag.String("db", "data/chronicle.db", "event journal path (empty = disabled)")
	port := flag.Int("port", 8080, "HTTP API port")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	slog.Info("hegemony simulation core starting")

	// ── Starting world ───────────────────────────────────────────────
	var sc *scenario.Scenario
	switch {
	case *scenarioPath != "":
		var err error
		sc, err = scenario.Load(*scenarioPath)
		if err != nil {
			slog.Error("failed to load scenario", "path", *scenarioPath, "error", err)
			os.Exit(1)
		}
		slog.Info("scenario loaded", "path", *scenarioPath)
	case *generate > 0:
		sc = generatedScenario(*generate, *nations, int64(*seed))
		slog.Info("demo map generated", "provinces", *generate, "nations", *nations, "seed", *seed)
	default:
		sc = scenario.Sample()
		slog.Info("using built-in sample world")
	}

	// ── Simulation ───────────────────────────────────────────────────
	rng := entropy.NewSource(*seed)
	sim := engine.NewSimulation(sc.Provinces, sc.Countries, military.DefaultCatalog(), rng)
	sim.Speed = *speed

	playerCode := sc.Player
	if *player != "" {
		playerCode = *player
	}
	sim.SetPlayerCountry(playerCode)

	for _, c := range sim.Countries.All() {
		slog.Info("nation ready",
			"code", c.Code,
			"name", c.Name,
			"provinces", len(sim.Provinces.ByOwner(c.Code)),
			"money", humanize.CommafWithDigits(c.Money, 0),
			"manpower", humanize.Comma(int64(c.Manpower)),
		)
	}

	// ── Event journal ────────────────────────────────────────────────
	var db *chronicle.DB
	if *dbPath != "" {
		os.MkdirAll(filepath.Dir(*dbPath), 0755)
		var err error
		db, err = chronicle.Open(*dbPath)
		if err != nil {
			slog.Error("failed to open journal", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		sim.Journal = db
		slog.Info("journal opened", "path", *dbPath)
	}

	// ── Observation surface ──────────────────────────────────────────
	hub := api.NewHub()
	go hub.Run()

	sim.OnDay = func(day int) {
		// Runs inside the tick; read fields directly.
		hub.Broadcast(map[string]any{
			"day":     day,
			"date":    sim.CurrentDate(),
			"units":   len(sim.Military.Units()),
			"battles": len(sim.Combat.Battles()),
		})
	}

	server := &api.Server{
		Sim:      sim,
		Hub:      hub,
		DB:       db,
		Port:     *port,
		AdminKey: os.Getenv("HEGEMONY_ADMIN_KEY"),
	}
	server.Start()

	// ── Run ──────────────────────────────────────────────────────────
	clock := engine.NewClock(sim)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, shutting down", "signal", sig)
		clock.Stop()
	}()

	fmt.Printf("\n%d nations across %d provinces. Player: %s\n",
		sim.Countries.Count(), sim.Provinces.Count(), sim.PlayerCountry)
	fmt.Printf("API: http://localhost:%d/api/v1/status\n", *port)
	fmt.Println("Starting simulation... (Ctrl+C to stop)")

	clock.Run()

	fmt.Println("Simulation stopped.")
}

// generatedScenario builds a demo world: noise-generated provinces divided
// evenly among fabricated nations, capital first.
func generatedScenario(provinceCount, nationCount int, seed int64) *scenario.Scenario {
	provinces := world.Generate(world.GenConfig{Provinces: provinceCount, Seed: seed})
	countries := nation.NewRegistry()

	names := []struct {
		code, name string
		color      [3]uint8
	}{
		{"ALD", "Aldoria", [3]uint8{180, 40, 40}},
		{"BRE", "Brennia", [3]uint8{40, 90, 180}},
		{"CAS", "Castavia", [3]uint8{50, 150, 60}},
		{"DRA", "Dravemark", [3]uint8{170, 140, 30}},
		{"ELY", "Elysta", [3]uint8{120, 60, 160}},
		{"FEN", "Fenwyck", [3]uint8{80, 80, 80}},
	}
	if nationCount > len(names) {
		nationCount = len(names)
	}
	if nationCount < 1 {
		nationCount = 1
	}

	all := provinces.All()
	share := len(all) / nationCount

	for i := 0; i < nationCount; i++ {
		def := names[i]
		owned := all[i*share : (i+1)*share]
		if len(owned) == 0 {
			continue
		}

		c := &nation.Country{
			Code:              def.code,
			Name:              def.name,
			Color:             def.color,
			Capital:           owned[0].ID,
			Money:             1000,
			Manpower:          10000,
			MilitaryFactories: 10,
			CivilianFactories: 10,
			WarScores:         make(map[string]int),
		}
		countries.Add(c)

		for _, p := range owned {
			p.Owner = def.code
		}
		owned[0].IsCapital = true
	}

	return &scenario.Scenario{Provinces: provinces, Countries: countries}
}
