// Command pensool builds a small drawing, lets a simulated pointer come to
// rest on it and renders the result, focus feedback and handle menu
// included, to a PNG file.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/pensool/pensool"
	"github.com/pensool/pensool/damage"
	"github.com/pensool/pensool/interact"
	"github.com/pensool/pensool/internal/config"
	_ "github.com/pensool/pensool/recording" // registers the "recording" surface
	"github.com/pensool/pensool/render"
	"github.com/pensool/pensool/scene"
	"github.com/pensool/pensool/surface"
)

func main() {
	var (
		cfgPath = flag.String("config", "", "TOML configuration file")
		output  = flag.String("out", "", "output file, overrides the configuration")
		watch   = flag.Bool("watch", false, "re-render whenever the configuration file changes")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *output != "" {
		cfg.Output = *output
	}
	setupLogger(cfg)

	if err := renderDrawing(cfg); err != nil {
		pensool.Logger().Error("render failed", "err", err)
		os.Exit(1)
	}

	if !*watch || *cfgPath == "" {
		return
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err = config.Watch(ctx, *cfgPath, func(next *config.Config) {
		if *output != "" {
			next.Output = *output
		}
		setupLogger(next)
		if err := renderDrawing(next); err != nil {
			pensool.Logger().Error("render failed", "err", err)
		}
	})
	if err != nil {
		pensool.Logger().Error("watch failed", "err", err)
		os.Exit(1)
	}
}

func setupLogger(cfg *config.Config) {
	level, _ := cfg.Level()
	pensool.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// renderDrawing builds the demo drawing and writes it to cfg.Output.
func renderDrawing(cfg *config.Config) error {
	tr := damage.NewTracker(cfg.Width, cfg.Height)
	view := scene.NewView(
		scene.WithSink(tr),
		scene.WithPickPenWidth(cfg.PickPenWidth),
		scene.WithZoomRate(cfg.ZoomRate),
	)
	buildScene(view.Root(), cfg.PenWidth)

	ic := interact.NewInteractionContext(view, tr, interact.Settings{
		FadeTime:         cfg.FadeTime(),
		PopupTime:        cfg.MovingPopupTime(),
		SlowingThreshold: cfg.SlowingThreshold,
		ItemSize:         cfg.ItemSize,
		OffAxisPixels:    cfg.OffAxisPixels,
	})

	target, err := surface.NewSurfaceByName(cfg.Surface, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	defer target.Close()

	// A first pass retains the transforms that picking relies on.
	target.Clear(color.White)
	ic.Draw(render.NewCanvas(target))

	restPointer(ic, pensool.V2(140, 60), cfg.MovingPopupTime())
	pensool.Logger().Info("pointer rested",
		"operand", ic.Feedback().Operand(),
		"menu", ic.Menu().IsOpen(),
		"repaint", tr.Region().Extent())

	target.Clear(color.White)
	drawn := ic.Draw(render.NewCanvas(target))
	if err := target.Flush(); err != nil {
		return err
	}

	if err := savePNG(cfg.Output, target); err != nil {
		return err
	}
	pensool.Logger().Info("drawing saved",
		"path", cfg.Output,
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"ink", drawn)
	return nil
}

func buildScene(root *scene.Node, pen float64) {
	rect := scene.NewRect()
	root.Append(rect)
	rect.SetFromRect(60, 60, 160, 100)

	circle := scene.NewCircle()
	root.Append(circle)
	circle.SetFromRect(240, 200, 100, 100)
	circle.SetColor(pensool.RGB(0.1, 0.3, 0.8))

	line := scene.NewLine()
	root.Append(line)
	line.SetTransform(pensool.V2(40, 320), pensool.V2(160, 160), -0.4)

	label := scene.NewText("pensool", 18)
	root.Append(label)
	label.MoveAbsolute(pensool.V2(60, 40))

	for _, n := range root.Children() {
		n.SetPenWidth(pen)
	}
}

// restPointer feeds a short approach to p followed by a pause long enough
// for the popup timer to fire.
func restPointer(ic *interact.InteractionContext, p pensool.Vec2, popup time.Duration) {
	start := p.Add(pensool.V2(-40, -40))
	const steps = 8
	for i := 0; i <= steps; i++ {
		at := start.Lerp(p, float64(i)/steps)
		ic.PointerMoved(interact.PointerEvent{Pos: at, Time: time.Duration(i) * 10 * time.Millisecond})
	}
	ic.PointerMoved(interact.PointerEvent{Pos: p, Time: (steps + 1) * 10 * time.Millisecond})
	ic.Advance(popup)
}

func savePNG(path string, s surface.Surface) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, s.Snapshot()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
