// cmd/coursesim/sim.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

import (
	"fmt"
	"log/slog"

	"github.com/avc-rover/waypoint/log"
	"github.com/avc-rover/waypoint/math"
	"github.com/avc-rover/waypoint/waypoint"
)

// Rover is a crude vehicle model: it turns toward its target at a fixed
// maximum rate and always drives at the same speed.
type Rover struct {
	Position [2]float32 // meters east and north in the steering frame
	Heading  float32    // degrees clockwise from north
	SpeedMS  float32
	TurnRate float32 // degrees per second
}

// Step advances the rover by dt seconds while steering toward target.
func (r *Rover) Step(target [2]float32, dt float32) {
	want := math.Heading2f(r.Position, target)
	maxTurn := r.TurnRate * dt
	turn := math.Clamp(math.HeadingSignedTurn(r.Heading, want), -maxTurn, maxTurn)
	r.Heading = math.NormalizeHeading(r.Heading + turn)
	r.Position = math.Add2f(r.Position, math.Scale2f(math.HeadingVector(r.Heading), r.SpeedMS*dt))
}

type Stats struct {
	Steps     int
	Reached   int
	DistanceM float32
}

// Simulate drives the rover along g until every waypoint has been
// reached. It gives up after maxSteps steps of dt seconds.
func Simulate(g waypoint.Generator, r *Rover, dt float32, maxSteps int, lg *log.Logger) (Stats, error) {
	var s Stats
	for !g.Done() {
		x, y := r.Position[0], r.Position[1]
		if g.Reached(x, y) {
			lg.Info("reached waypoint", slog.Int("n", s.Reached),
				slog.String("waypoint", g.CurrentRawWaypoint(x, y).String()),
				slog.Float64("elapsed", float64(float32(s.Steps)*dt)))
			g.Advance()
			s.Reached++
			continue
		}

		if s.Steps == maxSteps {
			return s, fmt.Errorf("gave up after %d steps heading for %s", s.Steps,
				g.CurrentRawWaypoint(x, y))
		}

		target := g.CurrentWaypoint(x, y)
		r.Step(target, dt)
		s.Steps++
		s.DistanceM += r.SpeedMS * dt

		lg.Debug("step", slog.Any("position", r.Position), slog.Any("target", target),
			slog.Float64("heading", float64(r.Heading)))
	}
	return s, nil
}
