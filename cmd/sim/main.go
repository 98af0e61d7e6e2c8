// Command sim runs a headless simulation of a level: it loads the
// physics spec and the level file, builds the world, and steps it at a
// fixed rate, logging where every body settles. With -watch, edits to
// the spec files under prefabs/ retune the running simulation.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/milk9111/platformkit/level"
	"github.com/milk9111/platformkit/obj"
	"github.com/milk9111/platformkit/physics"
	"github.com/milk9111/platformkit/prefabs"
)

func main() {
	var (
		levelPath = flag.String("level", "levels/demo.json", "level JSON file to simulate")
		ticks     = flag.Int("ticks", 600, "number of ticks to run, 0 to run forever")
		rate      = flag.Duration("rate", 0, "delay between ticks, 0 to run flat out")
		watch     = flag.Bool("watch", false, "hot-reload physics.yaml while running")
		logEvery  = flag.Int("log-every", 60, "ticks between body position logs")
	)
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "sim: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(logger, *levelPath, *ticks, *rate, *watch, *logEvery); err != nil {
		logger.Fatal("sim failed", zap.Error(err))
	}
}

func run(logger *zap.Logger, levelPath string, ticks int, rate time.Duration, watch bool, logEvery int) error {
	spec, err := prefabs.LoadPhysicsSpec()
	if err != nil {
		return err
	}
	cfg := spec.Config()

	lvl, err := level.Load(levelPath)
	if err != nil {
		return err
	}

	world, err := obj.NewWorld(cfg, lvl)
	if err != nil {
		return err
	}

	logger.Info("world built",
		zap.String("level", levelPath),
		zap.Int("blocks", len(world.Blocks)),
		zap.Int("ramps", len(world.Ramps)),
		zap.Int("elevators", len(world.Elevators)),
		zap.Int("crates", len(world.Crates)),
		zap.Int("walkers", len(world.Walkers)),
	)

	var reload <-chan string
	if watch {
		watcher, err := prefabs.NewWatcher("prefabs")
		if err != nil {
			return fmt.Errorf("watch prefabs: %w", err)
		}
		defer watcher.Close()
		reload = watcher.Events
		go func() {
			for err := range watcher.Errors {
				logger.Warn("watcher error", zap.Error(err))
			}
		}()
	}

	for tick := 0; ticks == 0 || tick < ticks; tick++ {
		select {
		case changed, ok := <-reload:
			if ok {
				reloadConfig(logger, world, changed)
			}
		default:
		}

		world.Step(physics.Vector{})

		if logEvery > 0 && tick%logEvery == 0 {
			logBodies(logger, world, tick)
		}

		if rate > 0 {
			time.Sleep(rate)
		}
	}

	logBodies(logger, world, ticks)
	return nil
}

func reloadConfig(logger *zap.Logger, world *obj.World, changed string) {
	spec, err := prefabs.LoadPhysicsSpec()
	if err != nil {
		logger.Warn("spec reload failed", zap.String("file", changed), zap.Error(err))
		return
	}
	world.SetConfig(spec.Config())
	logger.Info("physics spec reloaded",
		zap.String("file", changed),
		zap.Float64("gravity_y", world.Config().Gravity.Y),
	)
}

func logBodies(logger *zap.Logger, world *obj.World, tick int) {
	logger.Info("player",
		zap.Int("tick", tick),
		zap.Float64("x", world.Player.Pos.X),
		zap.Float64("y", world.Player.Pos.Y),
		zap.Bool("grounded", world.Player.Contacts.Bottom != nil),
	)
	for _, e := range world.Elevators {
		logger.Info("elevator",
			zap.Int("tick", tick),
			zap.String("name", e.Name),
			zap.Float64("x", e.Body.Pos.X),
			zap.Float64("y", e.Body.Pos.Y),
			zap.Int("waypoint", e.Body.CycleIndex()),
		)
	}
	for _, c := range world.Crates {
		logger.Info("crate",
			zap.Int("tick", tick),
			zap.String("name", c.Name),
			zap.Float64("x", c.Body.Pos.X),
			zap.Float64("y", c.Body.Pos.Y),
		)
	}
	for _, wk := range world.Walkers {
		logger.Info("walker",
			zap.Int("tick", tick),
			zap.String("name", wk.Name),
			zap.Float64("x", wk.Body.Pos.X),
			zap.Float64("y", wk.Body.Pos.Y),
			zap.Int("facing", wk.Facing()),
		)
	}
}
