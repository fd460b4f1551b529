// cmd/coursesim/main.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// coursesim drives a simulated rover around a course, for checking a
// course file or tuning the arrival tolerance before going out to the
// field.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/avc-rover/waypoint/log"
	"github.com/avc-rover/waypoint/math"
	"github.com/avc-rover/waypoint/waypoint"
)

var (
	logLevel  = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir    = flag.String("logdir", "", "log file directory")
	polygon   = flag.Int("polygon", 0, "drive a regular polygon with this many sides instead of a course file")
	side      = flag.Float64("side", 10, "polygon side length in meters")
	originStr = flag.String("origin", "", "latitude,longitude of the polygon start and of the steering frame (default: first waypoint)")
	tolerance = flag.Float64("tolerance", 1.5, "arrival tolerance in meters")
	speed     = flag.Float64("speed", 2, "rover speed in meters per second")
	turnRate  = flag.Float64("turnrate", 90, "rover turn rate in degrees per second")
	dt        = flag.Float64("dt", 0.1, "simulation time step in seconds")
	maxTime   = flag.Duration("maxtime", time.Hour, "maximum simulated time per lap")
	laps      = flag.Int("laps", 1, "number of laps to drive")
	simplify  = flag.Float64("simplify", 0, "Douglas-Peucker tolerance in degrees for thinning routes (0 to disable)")
)

// course is a Generator that can report on the whole route.
type course interface {
	waypoint.Generator
	Waypoints() []waypoint.Waypoint
	Length() float32
	Clone() *waypoint.Route
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: coursesim [flags] [course.kmz|course.route.zst|course.geojson]\nwhere [flags] may be:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	lg := log.New(*logLevel, *logDir)

	var path string
	if *polygon == 0 {
		if len(flag.Args()) != 1 {
			flag.Usage()
			os.Exit(1)
		}
		path = flag.Arg(0)
	}

	var origin *waypoint.Waypoint
	if *originStr != "" {
		wp, err := parseOrigin(*originStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", *originStr, err)
			os.Exit(1)
		}
		origin = &wp
	}

	lib := waypoint.NewLibrary(4, time.Hour)
	load := func(opts ...waypoint.Option) (course, error) {
		opts = append([]waypoint.Option{waypoint.WithLogger(lg), waypoint.WithSimplify(*simplify)}, opts...)

		switch {
		case *polygon != 0:
			if origin == nil {
				return nil, errors.New("-origin must be given with -polygon")
			}
			return waypoint.NewPolygonGenerator(*origin, float32(*side), *polygon, opts...)
		case strings.HasSuffix(path, waypoint.CompiledRouteExtension):
			return waypoint.NewCompiledGenerator(path, opts...)
		case strings.HasSuffix(strings.ToLower(path), ".geojson"):
			return waypoint.NewGeoJSONGenerator(path, opts...)
		default:
			return lib.Open(context.Background(), path, opts...)
		}
	}

	if origin == nil {
		// Steer relative to the start of the course.
		c, err := load()
		if err != nil {
			fail(lg, err)
		}
		origin = &c.Waypoints()[0]
	}
	frame := math.MakeLocalFrame(origin.Point2LL())

	for lap := range *laps {
		// Reloading is cheap for KMZ files since the Library caches them.
		c, err := load(waypoint.WithProjection(frame), waypoint.WithTolerance(float32(*tolerance)))
		if err != nil {
			fail(lg, err)
		}
		if lap == 0 {
			fmt.Printf("%d waypoints, %.1fm\n", len(c.Waypoints()), c.Length())
			printTurns(c)
		}

		rover := &Rover{SpeedMS: float32(*speed), TurnRate: float32(*turnRate)}
		maxSteps := int(maxTime.Seconds() / *dt)
		s, err := Simulate(c, rover, float32(*dt), maxSteps, lg.With("lap", lap))
		if err != nil {
			fail(lg, err)
		}

		elapsed := time.Duration(float64(s.Steps) * *dt * float64(time.Second))
		fmt.Printf("lap %d: reached %d waypoints in %s, drove %.1fm\n", lap+1, s.Reached,
			elapsed.Round(100*time.Millisecond), s.DistanceM)
	}
}

// printTurns reports the heading change at each waypoint by looking ahead
// along a copy of the route.
func printTurns(c course) {
	look := c.Clone()
	var prev [2]float32
	first := true
	for !look.Done() {
		cur := look.CurrentWaypoint(0, 0)
		wp := look.CurrentRawWaypoint(0, 0)
		look.Advance()
		if look.Done() {
			break
		}
		next := look.CurrentWaypoint(0, 0)

		if !first {
			in, out := math.Heading2f(prev, cur), math.Heading2f(cur, next)
			fmt.Printf("    %s: turn %+.0f degrees\n", wp, math.HeadingSignedTurn(in, out))
		}
		prev, first = cur, false
	}
}

func parseOrigin(s string) (waypoint.Waypoint, error) {
	lat, lon, ok := strings.Cut(s, ",")
	if !ok {
		return waypoint.Waypoint{}, errors.New("expected latitude,longitude")
	}
	la, err := strconv.ParseFloat(strings.TrimSpace(lat), 32)
	if err != nil {
		return waypoint.Waypoint{}, err
	}
	lo, err := strconv.ParseFloat(strings.TrimSpace(lon), 32)
	if err != nil {
		return waypoint.Waypoint{}, err
	}

	wp := waypoint.Waypoint{Latitude: float32(la), Longitude: float32(lo)}
	if !wp.Point2LL().Valid() {
		return waypoint.Waypoint{}, errors.New("coordinate out of range")
	}
	return wp, nil
}

func fail(lg *log.Logger, err error) {
	lg.Error("coursesim failed", "error", err)
	fmt.Fprintf(os.Stderr, "%v\n", err)
	os.Exit(1)
}
