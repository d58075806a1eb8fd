package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli"

	"github.com/frametick/go-frametick/frametick"
	"github.com/frametick/go-frametick/frametick/clock"
)

func main() {
	app := cli.NewApp()
	app.Name = "frametick"
	app.Description = "Frame timing demo: runs a paced loop and reports frame statistics"
	app.Usage = "frametick [options]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.Float64Flag{
			Name:  "rate",
			Usage: "Target frame rate in fps",
			Value: 60,
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run (0 = run until interrupted)",
			Value: 0,
		},
		cli.DurationFlag{
			Name:  "workload",
			Usage: "Simulated per-frame workload duration",
			Value: 10 * time.Millisecond,
		},
		cli.StringFlag{
			Name:  "limiter",
			Usage: "Pacing strategy: none, spin, sleep or ticker",
			Value: "sleep",
		},
		cli.DurationFlag{
			Name:  "interval",
			Usage: "How often to log frame statistics",
			Value: time.Second,
		},
		cli.BoolFlag{
			Name:  "dashboard",
			Usage: "Show a live terminal dashboard instead of logging",
		},
	}
	app.Action = runLoop

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Error running frame loop", "error", err)
		os.Exit(1)
	}
}

func runLoop(c *cli.Context) error {
	counter := frametick.Default()

	limiter, err := buildLimiter(c.String("limiter"), counter, c.Float64("rate"))
	if err != nil {
		return err
	}

	if c.Bool("dashboard") {
		return runDashboard(counter, limiter, loopConfig{
			frames:   c.Int("frames"),
			workload: c.Duration("workload"),
		})
	}

	slog.Info("Starting frame loop",
		"clock", clock.Source(),
		"rate", c.Float64("rate"),
		"limiter", c.String("limiter"))

	frames := c.Int("frames")
	workload := c.Duration("workload")
	interval := c.Duration("interval")
	lastReport := time.Now()

	for i := 0; frames == 0 || i < frames; i++ {
		counter.Tick()

		dummyWorkload(workload)

		limiter.WaitForNextFrame()

		if time.Since(lastReport) >= interval {
			slog.Info("fps stats",
				"avg_fps", fmt.Sprintf("%.2f", counter.AvgFrameRate()),
				"avg_frame_time", counter.AvgFrameTime(),
				"fps", fmt.Sprintf("%.2f", counter.FrameRate()),
				"frame_time", counter.FrameTime(),
				"frames", counter.TotalFrames())
			lastReport = time.Now()
		}
	}

	fmt.Println(counter)
	return nil
}

func buildLimiter(name string, counter *frametick.FrameCounter, rate float64) (frametick.Limiter, error) {
	switch name {
	case "none":
		return frametick.NewNoOpLimiter(), nil
	case "spin":
		return frametick.NewSpinLimiter(counter, rate)
	case "sleep":
		return frametick.NewSleepLimiter(counter, rate)
	case "ticker":
		return frametick.NewTickerLimiter(rate)
	default:
		return nil, fmt.Errorf("unknown limiter %q (want none, spin, sleep or ticker)", name)
	}
}

func dummyWorkload(d time.Duration) {
	time.Sleep(d)
}
