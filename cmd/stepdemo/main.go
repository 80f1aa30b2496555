package main

import (
	"os"
	"time"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/getsentry/sentry-go"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/loags/stepheight/entity"
	"github.com/loags/stepheight/game"
	"github.com/loags/stepheight/phys"
	"github.com/loags/stepheight/player"
	"github.com/loags/stepheight/step"
)

type config struct {
	Step struct {
		Height         float32 `toml:"height"`
		SmoothFactor   float32 `toml:"smooth_factor"`
		AngleThreshold float32 `toml:"angle_threshold"`
	} `toml:"step"`
	Demo struct {
		Ticks     int    `toml:"ticks"`
		TickRate  int    `toml:"tick_rate"`
		Debug     bool   `toml:"debug"`
		SentryDSN string `toml:"sentry_dsn"`
	} `toml:"demo"`
}

func main() {
	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true}
	log.Level = logrus.InfoLevel

	cfg, err := readConfig()
	if err != nil {
		log.Fatalf("error reading config: %v", err)
	}
	if cfg.Demo.Debug {
		log.Level = logrus.DebugLevel
	}

	if cfg.Demo.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Demo.SentryDSN}); err != nil {
			log.Warnf("sentry init failed: %v", err)
		} else {
			defer sentry.Flush(2 * time.Second)
			defer sentry.Recover()
		}
	}

	world := buildCourse()
	body := entity.NewKinematicBody(world, mgl32.Vec3{}, 0.6, 1.8)

	stepCfg := step.DefaultConfig()
	stepCfg.StepHeight = cfg.Step.Height
	stepCfg.StepSmoothFactor = cfg.Step.SmoothFactor
	stepCfg.StepAngleThreshold = cfg.Step.AngleThreshold
	stepCfg.Debugf = log.Debugf

	ctrl := player.NewController(world, body, stepCfg, log)

	log.Infof("walking the staircase course for %d ticks at %dhz", cfg.Demo.Ticks, cfg.Demo.TickRate)
	dt := 1 / float32(cfg.Demo.TickRate)
	input := player.Input{Move: mgl32.Vec2{1, 0}}
	for tick := 0; tick < cfg.Demo.Ticks; tick++ {
		ctrl.Tick(dt, input)
		if tick%cfg.Demo.TickRate == 0 {
			pos := body.Position()
			log.Infof("t=%.1fs x=%v y=%v z=%v grounded=%v step=%v",
				float32(tick)*dt, game.Round32(pos.X(), 2), game.Round32(pos.Y(), 2), game.Round32(pos.Z(), 2),
				ctrl.Grounded(), ctrl.Step().State())
		}
	}
	log.Infof("course finished at %v", body.Position())
}

// buildCourse lays out a flat floor, a three-step staircase the controller
// can climb, and a wall past it that is too tall to step onto.
func buildCourse() *phys.World {
	w := phys.NewWorld()
	w.Add(phys.NewCollider("floor", cube.Box(-10, -1, -10, 20, 0, 10), phys.LayerDefault))
	w.Add(phys.NewCollider("stair_1", cube.Box(2.0, 0, -2, 6, 0.3, 2), phys.LayerDefault))
	w.Add(phys.NewCollider("stair_2", cube.Box(2.6, 0, -2, 6, 0.6, 2), phys.LayerDefault))
	w.Add(phys.NewCollider("stair_3", cube.Box(3.2, 0, -2, 6, 0.9, 2), phys.LayerDefault))
	w.Add(phys.NewCollider("wall", cube.Box(8, 0, -10, 8.5, 3, 10), phys.LayerDefault))
	w.Add(phys.NewCollider("checkpoint", cube.Box(4, 0.9, -2, 4.5, 1.0, 2), phys.LayerDefault).SetTrigger(true))
	return w
}

func readConfig() (config, error) {
	var c config
	c.Step.Height = 0.4
	c.Step.SmoothFactor = 5
	c.Step.AngleThreshold = 65
	c.Demo.Ticks = 600
	c.Demo.TickRate = 60

	data, err := os.ReadFile("config.toml")
	if os.IsNotExist(err) {
		out, err := toml.Marshal(c)
		if err != nil {
			return c, errors.Wrap(err, "encode default config")
		}
		return c, errors.Wrap(os.WriteFile("config.toml", out, 0644), "write default config")
	}
	if err != nil {
		return c, errors.Wrap(err, "read config")
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return c, errors.Wrap(err, "parse config")
	}
	return c, nil
}
