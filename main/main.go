package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adammck/crawler"
	"github.com/adammck/crawler/components/controller"
	"github.com/adammck/crawler/components/footing"
	"github.com/adammck/crawler/components/legs"
	"github.com/adammck/crawler/components/limb"
	"github.com/adammck/crawler/config"
	"github.com/adammck/crawler/math3d"
	"github.com/adammck/crawler/terrain"
	"github.com/go-gl/mathgl/mgl64"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var (
	configPath  = flag.String("config", "crawler.yaml", "the config file path")
	terrainPath = flag.String("terrain", "", "the terrain layout path (default: flat ground)")
	fps         = flag.Int("fps", 60, "ticks per second")
	walk        = flag.Float64("walk", 1, "forwards input, from -1 to 1")
	strafe      = flag.Float64("strafe", 0, "sideways input, from -1 to 1")
	ticks       = flag.Int("ticks", 0, "stop after this many ticks (default: run until interrupted)")
	debug       = flag.Bool("debug", false, "log every leg transition")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		log.Errorf("%s", err)
		os.Exit(1)
	}
}

func run() error {
	if *fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", *fps)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	lvl, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	if *debug {
		lvl = log.DebugLevel
	}
	log.SetLevel(lvl)

	var ground terrain.Query
	if *terrainPath == "" {
		ground = terrain.Flat(0, 1000)
	} else {
		w, err := terrain.Load(*terrainPath)
		if err != nil {
			return err
		}
		ground = w
	}

	c := crawler.New(math3d.MakePose(mgl64.Vec3{0, 1, 0}, math3d.IdentityOrientation))
	ctrl := controller.New(c, controller.Fixed{X: *strafe, Z: *walk})

	log.Info("creating components...")
	l, err := legs.New(c, ground, ctrl, cfg)
	if err != nil {
		return err
	}

	reach := cfg.LegDistanceFromBody + cfg.MaxLegLag + cfg.MaxClimbHeight
	for i, leg := range l.Legs {
		l.Attach(i, limb.New(leg.Name, c, leg.Offset, reach))
	}

	// The body moves first, then the legs catch up with it.
	c.Add(ctrl)
	c.Add(l)
	c.Add(footing.New(l, cfg.LegsPerSide))

	log.Info("booting components...")
	if err := c.Boot(); err != nil {
		return err
	}

	// Catch both SIGINT (ctrl+c) and SIGTERM (kill/systemd), to stop between
	// ticks rather than in the middle of one.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer stop()
		return loop(ctx, c, l, *fps, *ticks)
	})

	return g.Wait()
}

// loop ticks the crawler fps times per second until the context is done or a
// component sets Shutdown. A positive limit also stops it after that many
// ticks. Components run on this goroutine, so Shutdown needs no lock.
func loop(ctx context.Context, c *crawler.Crawler, l *legs.Legs, fps, limit int) error {
	dt := time.Second / time.Duration(fps)
	t := time.NewTicker(dt)
	defer t.Stop()

	log.Infof("starting loop at %d fps...", fps)
	n := 0

	for {
		select {
		case <-ctx.Done():
			log.Info("caught signal, shutting down...")
			return nil

		case <-t.C:
			if err := c.Tick(dt); err != nil {
				return err
			}

			n += 1
			if n%fps == 0 {
				log.WithField("swinging", l.Swinging()).Infof("tick=%d body=%s", n, c.Body)
			}

			if c.Shutdown || (limit > 0 && n >= limit) {
				log.Infof("stopping after %d ticks", n)
				return nil
			}
		}
	}
}
