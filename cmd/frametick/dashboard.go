package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/frametick/go-frametick/frametick"
	"github.com/frametick/go-frametick/frametick/clock"
)

type loopConfig struct {
	frames   int
	workload time.Duration
}

// runDashboard drives the frame loop while rendering live statistics to
// the terminal. Quits on q, Esc or Ctrl-C, or after cfg.frames frames.
func runDashboard(counter *frametick.FrameCounter, limiter frametick.Limiter, cfg loopConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %v", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.Clear()

	quit := make(chan struct{})
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					close(quit)
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	for i := 0; cfg.frames == 0 || i < cfg.frames; i++ {
		select {
		case <-quit:
			return nil
		default:
		}

		counter.Tick()

		dummyWorkload(cfg.workload)

		limiter.WaitForNextFrame()

		drawStats(screen, counter)
	}

	return nil
}

func drawStats(screen tcell.Screen, counter *frametick.FrameCounter) {
	screen.Clear()

	bold := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)

	drawText(screen, 0, 0, bold, "frametick")
	drawText(screen, 0, 1, dim, fmt.Sprintf("clock: %s", clock.Source()))
	drawText(screen, 0, 3, tcell.StyleDefault, fmt.Sprintf("avg:     %8.2f fps  (%v)", counter.AvgFrameRate(), counter.AvgFrameTime()))
	drawText(screen, 0, 4, tcell.StyleDefault, fmt.Sprintf("current: %8.2f fps  (%v)", counter.FrameRate(), counter.FrameTime()))
	drawText(screen, 0, 5, tcell.StyleDefault, fmt.Sprintf("frames:  %d", counter.TotalFrames()))
	drawText(screen, 0, 7, dim, "press q to quit")

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
