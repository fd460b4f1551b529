// cmd/kmzinfo/main.go
// Copyright(c) 2022-2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// kmzinfo loads KMZ course files the way the rover does and reports on
// them. It can also check them for likely mistakes and compile them for
// faster loading.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/avc-rover/waypoint/log"
	"github.com/avc-rover/waypoint/util"
	"github.com/avc-rover/waypoint/waypoint"

	"github.com/goforj/godump"
	"golang.org/x/sync/errgroup"
)

var (
	logLevel  = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir    = flag.String("logdir", "", "log file directory")
	nWorkers  = flag.Int("nworkers", 8, "number of files to process concurrently")
	unzipPath = flag.String("unzip", "", "unzip binary to use; if empty, archives are unpacked in-process")
	scratch   = flag.String("scratch", waypoint.DefaultScratchDir, "directory to unpack archives under")
	timeout   = flag.Duration("timeout", waypoint.DefaultExtractTimeout, "maximum time to spend unpacking each archive")
	simplify  = flag.Float64("simplify", 0, "Douglas-Peucker tolerance in degrees for thinning routes (0 to disable)")
	maxLeg    = flag.Float64("maxleg", 0, "report legs longer than this many meters (0 to disable)")
	validate  = flag.Bool("validate", false, "check courses for likely mistakes")
	dump      = flag.Bool("dump", false, "dump the waypoints of each course")
	compile   = flag.Bool("compile", false, "write a compiled "+waypoint.CompiledRouteExtension+" file next to each course")
)

type report struct {
	path      string
	waypoints []waypoint.Waypoint
	length    float32
	elapsed   time.Duration
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: kmzinfo [flags] course.kmz...\nwhere [flags] may be:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if len(flag.Args()) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	lg := log.New(*logLevel, *logDir)

	scratchDirs := util.MakeScratchDirs(*scratch, lg)
	defer scratchDirs.RemoveAll()

	var archiver waypoint.Archiver = waypoint.ZipArchiver{}
	if *unzipPath != "" {
		archiver = waypoint.UnzipCommand{Path: *unzipPath}
	}

	reports := make([]report, len(flag.Args()))
	var eg errgroup.Group
	eg.SetLimit(*nWorkers)
	for i, path := range flag.Args() {
		eg.Go(func() error {
			// Each archive gets its own scratch directory; they would
			// otherwise overwrite each other's doc.kml.
			dir, err := scratchDirs.New(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			ex := &waypoint.DocumentExtractor{
				ScratchDir: dir,
				Timeout:    *timeout,
				Archiver:   archiver,
				Logger:     lg,
			}

			start := time.Now()
			g, err := waypoint.NewFileGenerator(context.Background(), path,
				waypoint.WithExtractor(ex), waypoint.WithLogger(lg), waypoint.WithSimplify(*simplify))
			if err != nil {
				return err
			}

			reports[i] = report{
				path:      path,
				waypoints: g.Waypoints(),
				length:    g.Length(),
				elapsed:   time.Since(start),
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		lg.Error("failed to load course", "error", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	var e util.ErrorLogger
	for _, r := range reports {
		printReport(r)

		if *validate {
			e.Push(r.path)
			waypoint.Validate(r.waypoints, float32(*maxLeg), &e)
			e.Pop()
		}

		if *dump {
			godump.Dump(r.waypoints)
		}

		if *compile {
			if err := compileRoute(r); err != nil {
				e.Push(r.path)
				e.Error(err)
				e.Pop()
			}
		}
	}

	if e.HaveErrors() {
		e.PrintErrors(os.Stderr, lg)
		os.Exit(1)
	}
}

func printReport(r report) {
	fmt.Printf("%s: %d waypoints, %.1fm, loaded in %s\n", r.path, len(r.waypoints), r.length,
		r.elapsed.Round(time.Millisecond))
	fmt.Printf("    first %s\n", r.waypoints[0])
	fmt.Printf("    last  %s\n", r.waypoints[len(r.waypoints)-1])
}

func compileRoute(r report) error {
	path := strings.TrimSuffix(r.path, filepath.Ext(r.path)) + waypoint.CompiledRouteExtension

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	cr := waypoint.CompiledRoute{Source: filepath.Base(r.path), Waypoints: r.waypoints}
	if err := cr.Save(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Printf("    wrote %s\n", path)
	return nil
}
