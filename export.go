package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"towergen/pkg/game/batch"
	"towergen/pkg/game/config"
	"towergen/pkg/game/devtools"
	"towergen/pkg/game/generator"
	"towergen/pkg/game/tower"
	"towergen/pkg/game/verify"
)

var timeNow = time.Now

// exportTower generates o.count floors in parallel and writes one level file
// per floor into o.iniDir.
func exportTower(p config.Params, o options) error {
	ramp := tower.Ramp{}
	if o.ramp {
		ramp = tower.DefaultRamp
	}
	floors, err := tower.Plan(p, o.count, ramp)
	if err != nil {
		return err
	}
	gen, err := generator.ForLayout(p.Layout)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := timeNow()
	levels, err := batch.GenerateAll(ctx, gen, tower.Params(floors), o.width, o.height, o.workers)
	if err != nil {
		return err
	}

	now := timeNow()
	for i, f := range floors {
		lvl := levels[i]
		logWarnings(lvl)
		if rep := verify.Check(lvl.Grid); !rep.OK() {
			return fmt.Errorf("%s: %w", floorLabel(f), rep.Err())
		}

		path, err := devtools.SaveLevelINI(lvl, o.iniDir, f.Level, now)
		if err != nil {
			return fmt.Errorf("%s: %w", floorLabel(f), err)
		}
		log.Printf("Exported %s to %s", floorLabel(f), path)
	}
	log.Printf("Exported %d floors in %s", len(floors), time.Since(start).Round(time.Millisecond))
	return nil
}

// floorLabel names a floor for log output
func floorLabel(f tower.Floor) string {
	label := fmt.Sprintf("floor %d (%s, seed %d)", f.Level, f.Band, f.Params.Seed)
	if f.IsTop() {
		label += " top"
	}
	return label
}

// checkFiles verifies each level file and logs the outcome. It returns the
// number of files that failed.
func checkFiles(paths []string) (failed int) {
	for _, path := range paths {
		if err := checkFile(path); err != nil {
			log.Printf("FAIL %s: %v", path, err)
			failed++
		}
	}
	return failed
}

func checkFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	lf, err := devtools.ReadLevelINI(f)
	if err != nil {
		return err
	}
	rep := verify.Check(lf.Grid)
	if !rep.OK() {
		return rep.Err()
	}
	log.Printf("ok   %s: spawn (%d,%d) exit (%d,%d) distance %d",
		path, rep.Spawn.X, rep.Spawn.Z, rep.Exit.X, rep.Exit.Z, rep.Distance)
	return nil
}
