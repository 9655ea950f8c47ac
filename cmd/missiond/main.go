package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zerohour/missiond/internal/condition"
	"github.com/zerohour/missiond/internal/config"
	"github.com/zerohour/missiond/internal/core/event"
	coresys "github.com/zerohour/missiond/internal/core/system"
	"github.com/zerohour/missiond/internal/data"
	"github.com/zerohour/missiond/internal/partition"
	"github.com/zerohour/missiond/internal/persist"
	"github.com/zerohour/missiond/internal/script"
	"github.com/zerohour/missiond/internal/scripting"
	"github.com/zerohour/missiond/internal/system"
	"github.com/zerohour/missiond/internal/world"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config
	cfgPath := "config/missiond.toml"
	if p := os.Getenv("MISSIOND_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	// 3. Build the world from templates and scenario
	clock := &world.Clock{}
	ws := world.NewState(clock, cfg.Engine.CellSize)

	templates, err := data.LoadTemplates(cfg.Mission.Templates)
	if err != nil {
		return fmt.Errorf("templates: %w", err)
	}
	if err := data.RegisterTemplates(ws, templates); err != nil {
		return fmt.Errorf("templates: %w", err)
	}
	scenario, err := data.LoadScenario(cfg.Mission.Scenario)
	if err != nil {
		return fmt.Errorf("scenario: %w", err)
	}
	if err := scenario.Build(ws); err != nil {
		return fmt.Errorf("scenario: %w", err)
	}
	log.Info("scenario loaded",
		zap.Int("templates", len(templates)),
		zap.Int("players", len(ws.Players())),
		zap.Int("objects", ws.ObjectCount()),
		zap.Int("timeline_steps", len(scenario.Timeline)))

	// 4. Script engine: bookkeeping, lua predicates, condition evaluator
	bus := event.NewBus()
	book := script.NewBookkeeping(clock)
	book.Subscribe(bus)

	lua, err := scripting.NewEngine(cfg.Mission.LuaDir, book, ws, log)
	if err != nil {
		return fmt.Errorf("lua: %w", err)
	}
	defer lua.Close()

	eval, err := condition.NewEvaluator(condition.Options{
		Registry:   ws,
		Clock:      clock,
		Space:      partition.NewManager(ws, cfg.Engine.IteratorPoolSize, cfg.Engine.Strict, log),
		Events:     book,
		Predicates: lua,
		Strict:     cfg.Engine.Strict,
		Log:        log,
	})
	if err != nil {
		return fmt.Errorf("evaluator: %w", err)
	}

	mission, err := data.LoadMission(cfg.Mission.Script, ws)
	if err != nil {
		return fmt.Errorf("mission: %w", err)
	}
	engine := script.NewEngine(book, eval, clock, log)
	if err := engine.Load(mission.Scripts); err != nil {
		return fmt.Errorf("mission: %w", err)
	}

	// 5. Optional PostgreSQL store
	runner := coresys.NewRunner()
	timeline := system.NewTimelineSystem(ws, bus, data.NewTimeline(scenario.Timeline), log)
	runner.Register(timeline)
	runner.Register(system.NewEventDispatchSystem(bus))
	runner.Register(system.NewTriggerSystem(ws))
	scripts := system.NewScriptSystem(engine)
	runner.Register(scripts)

	var saver *system.PersistenceSystem
	if cfg.Database.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		db, err := persist.NewDB(ctx, cfg.Database, log)
		if err != nil {
			return fmt.Errorf("database: %w", err)
		}
		defer db.Close()
		if err := persist.RunMigrations(ctx, db.Pool, log); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}

		states := persist.NewMissionStateRepo(db)
		prev, err := states.Load(ctx, cfg.Mission.Name)
		if err != nil {
			return fmt.Errorf("restore mission: %w", err)
		}
		if prev != nil {
			book.Restore(prev.Book)
			ws.RememberNames(prev.Names)
			log.Info("mission state restored",
				zap.String("mission", prev.Mission),
				zap.Uint32("saved_frame", prev.Frame),
				zap.Int("attempts", prev.Book.Attempts))
		}

		saveTicks := 1
		if fd := cfg.Engine.FrameDuration(); fd > 0 {
			saveTicks = int(cfg.Engine.SaveInterval / fd)
		}
		saver = system.NewPersistenceSystem(ws, book, states, persist.NewFiringLogRepo(db), cfg.Mission.Name, log, saveTicks)
		engine.OnFire = saver.Record
		runner.Register(saver)
	} else {
		engine.OnFire = func(s *script.Script, frame uint32) {
			log.Info("script fired", zap.String("script", s.Name), zap.Uint32("frame", frame))
		}
	}
	runner.Register(system.NewCleanupSystem(ws))

	attempts := book.IncrementAttempts()
	log.Info("mission started",
		zap.String("mission", mission.Name),
		zap.Int("scripts", len(mission.Scripts)),
		zap.Int("attempt", attempts))

	// 6. Frame loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	dt := cfg.Engine.FrameDuration()
	var tick <-chan time.Time
	if cfg.Engine.Realtime && dt > 0 {
		ticker := time.NewTicker(dt)
		defer ticker.Stop()
		tick = ticker.C
	}

	stop := func(reason string) error {
		if saver != nil {
			saver.Save()
		}
		log.Info("mission stopped",
			zap.String("reason", reason),
			zap.Uint32("frame", clock.Frame()),
			zap.Int("fired", scripts.Fired()),
			zap.Int("steps", timeline.Applied()))
		return nil
	}

	for {
		runner.Tick(dt)

		switch {
		case cfg.Engine.MaxFrames > 0 && clock.Frame()+1 >= cfg.Engine.MaxFrames:
			return stop("max frames")
		case cfg.Engine.MaxFrames == 0 && timeline.Done():
			return stop("timeline exhausted")
		}
		clock.Advance()

		if tick != nil {
			select {
			case <-tick:
			case sig := <-shutdownCh:
				return stop(sig.String())
			}
			continue
		}
		select {
		case sig := <-shutdownCh:
			return stop(sig.String())
		default:
		}
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
