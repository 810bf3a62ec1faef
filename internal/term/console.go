// Package term drives a plain ANSI terminal view of the universe, for
// terminals where the interactive TUI is unwanted.
package term

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/logrusorgru/aurora"

	"github.com/gilhooleyd/wasm-game-of-life/internal/stats"
	"github.com/gilhooleyd/wasm-game-of-life/pkg/life"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

var (
	liveFiller = aurora.Green("█").BgBrightGreen().String()
	deadFiller = "░"

	statusRunning = aurora.Colorize("running", aurora.CyanFg).String()
	statusStill   = aurora.Colorize("still", aurora.BlueFg).String()
	statusExtinct = aurora.Colorize("extinct", aurora.RedFg).String()
	statusDone    = aurora.Colorize("done", aurora.GreenFg).String()
)

// Watch redraws the universe on stdout at the given rate until it goes
// extinct or stagnates, the generation limit is reached, or the process is
// interrupted.
func Watch(u *life.Universe, generations, tps int) error {
	return watch(os.Stdout, u, generations, tps)
}

func watch(out io.Writer, u *life.Universe, generations, tps int) error {
	if tps <= 0 {
		tps = 30
	}
	interval := time.Second / time.Duration(tps)

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigc)

	fmt.Fprint(out, hideCursor)
	defer fmt.Fprint(out, showCursor)

	st := stats.New()
	detector := life.NewCycleDetector(12)
	lastFrame := time.Now()

	for gen := 0; ; gen++ {
		pop := u.Population()
		density := float64(pop) / float64(u.Width()*u.Height()) * 100

		status := statusRunning
		done := false
		switch {
		case pop == 0:
			status = statusExtinct
			done = true
		case generations > 0 && gen >= generations:
			status = statusDone
			done = true
		case detector.Stagnant(u):
			status = statusStill
			done = true
		}

		fmt.Fprint(out, clearScreen)
		fmt.Fprintf(out, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
			gen, pop, density, status)
		fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n\n",
			st.GenerationsPerSecond, st.AveragePopulation, st.Runtime().Seconds())
		fmt.Fprintln(out, renderField(u))

		if done {
			return nil
		}
		detector.Observe(u)

		select {
		case <-sigc:
			fmt.Fprintln(out)
			return nil
		case <-time.After(interval):
		}

		u.Tick()
		now := time.Now()
		st.Update(gen+1, u.Population(), now.Sub(lastFrame))
		lastFrame = now
	}
}

func renderField(u *life.Universe) string {
	var b bytes.Buffer
	for row := 0; row < u.Height(); row++ {
		if row != 0 {
			b.WriteByte(10)
		}
		for col := 0; col < u.Width(); col++ {
			if u.Get(row, col) == life.Alive {
				b.WriteString(liveFiller)
			} else {
				b.WriteString(deadFiller)
			}
		}
	}
	return b.String()
}
