package main

import (
	"fmt"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/onamkulam/interiors/internal/scroll"
)

// simWindow is an in-memory document scrolled by the simulation.
type simWindow struct {
	mu sync.Mutex
	y  float64
}

func (w *simWindow) ScrollY() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.y
}

func (w *simWindow) ScrollTo(y float64) {
	w.mu.Lock()
	w.y = y
	w.mu.Unlock()
}

func newSimulateCmd() *cobra.Command {
	var (
		viewport float64
		from     float64
		every    time.Duration
	)
	cmd := &cobra.Command{
		Use:   "simulate <target>",
		Short: "Simulate a nav scroll and print sampled frames",
		Long: `Simulates clicking a navigation control. target is one of home, about,
projects, contact, cta, begin-story or explore. Frames run at 60Hz on a
simulated clock; one line is printed per --every interval.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			win := &simWindow{y: from}
			frames := scroll.NewManualFrames(time.Time{})

			var changes []string
			engine := scroll.NewEngine(1280, viewport, func(prev, next scroll.Label) {
				changes = append(changes, fmt.Sprintf("%s -> %s", prev, next))
			})
			scroller := scroll.NewScroller(win, frames)
			engine.AttachScroller(scroller)
			engine.Step(win.ScrollY())

			var started bool
			switch args[0] {
			case "begin-story":
				started = engine.BeginStory()
			case "explore":
				started = engine.Explore()
			default:
				if _, ok := engine.Plan().Targets.Lookup(strings.ToLower(args[0])); !ok {
					return fmt.Errorf("unknown target %q", args[0])
				}
				started = engine.NavigateTo(args[0])
			}

			out := cmd.OutOrStdout()
			if !started {
				fmt.Fprintf(out, "already at %s (scrollY %.0f); nothing to do\n", args[0], win.ScrollY())
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "T(ms)\tSCROLLY\tACTIVE")
			var elapsed, lastPrint time.Duration
			printRow := func() {
				f := engine.Step(win.ScrollY())
				fmt.Fprintf(w, "%d\t%.1f\t%s\n", elapsed.Milliseconds(), f.ScrollY, f.Active)
			}
			printRow()
			for scroller.Animating() {
				frames.Advance(scroll.DefaultFrameInterval)
				elapsed += scroll.DefaultFrameInterval
				if elapsed-lastPrint >= every || !scroller.Animating() {
					printRow()
					lastPrint = elapsed
				}
			}
			if err := w.Flush(); err != nil {
				return err
			}
			for _, c := range changes {
				fmt.Fprintf(out, "active: %s\n", c)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&viewport, "viewport", scroll.DefaultBase, "viewport height in pixels")
	cmd.Flags().Float64Var(&from, "from", 0, "starting scroll offset")
	cmd.Flags().DurationVar(&every, "every", 250*time.Millisecond, "print interval")
	return cmd
}
