// Package engine provides the simulation clock and the five systems it
// drives. The clock owns wall time; the simulation owns game time.
package engine

import (
	"log/slog"
	"time"
)

// DefaultHoursPerSecond maps one real second to one game hour at speed 1.
const DefaultHoursPerSecond = 1.0

// Clock drives Simulation.Advance from wall time. It knows nothing about
// provinces or wars, only elapsed time.
type Clock struct {
	Sim            *Simulation
	Interval       time.Duration // loop resolution
	HoursPerSecond float64       // game hours per real second at speed 1
	Running        bool
}

// NewClock creates a clock with default settings.
func NewClock(sim *Simulation) *Clock {
	return &Clock{
		Sim:            sim,
		Interval:       250 * time.Millisecond,
		HoursPerSecond: DefaultHoursPerSecond,
	}
}

// Run starts the loop. Blocks until Stop is called. Every iteration feeds
// the actually elapsed wall time into the simulation, so a slow tick does
// not lose game time.
func (c *Clock) Run() {
	c.Running = true
	slog.Info("simulation clock started", "interval", c.Interval, "hours_per_second", c.HoursPerSecond)

	last := time.Now()
	for c.Running {
		time.Sleep(c.Interval)

		now := time.Now()
		dt := now.Sub(last).Seconds() * c.HoursPerSecond
		last = now

		c.Sim.Advance(dt)
	}

	slog.Info("simulation clock stopped", "game_time", c.Sim.GameTime)
}

// Stop halts the loop after the current iteration.
func (c *Clock) Stop() {
	c.Running = false
}
