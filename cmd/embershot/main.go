// Command embershot renders a demo widget scene headlessly for a
// configured number of frames and writes the final framebuffer as a
// PNG. It exists to exercise the full software pipeline (rasterizer,
// tessellator, widgets) without a windowing backend, and doubles as a
// quick visual smoke test. Configuration comes from an optional
// ember.yaml in the working directory.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-ember/ember/cmd/embershot/internal/config"
	"github.com/go-ember/ember/pkg/headless"
	"github.com/go-ember/ember/pkg/ui"
)

func main() {
	dir := flag.String("dir", ".", "directory containing ember.yaml")
	output := flag.String("o", "", "output PNG path (overrides config)")
	flag.Parse()

	if err := run(*dir, *output); err != nil {
		fmt.Fprintf(os.Stderr, "embershot: %v\n", err)
		os.Exit(1)
	}
}

func run(dir, outputOverride string) error {
	cfg, err := config.Resolve(dir)
	if err != nil {
		return err
	}
	if outputOverride != "" {
		cfg.Output = outputOverride
	}

	port, err := headless.New(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	palette := ui.DefaultPalette()
	palette.Primary = cfg.Primary
	palette.SurfaceContainer = cfg.Surface
	palette.OnSurface = cfg.OnSurface

	ctx := ui.New(port, ui.Config{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Text:       port,
		Palette:    palette,
		FontHeight: port.FontHeight(),
	})

	scene := demoScene{volume: 30, selected: 1}
	scene.search.SetText("ember")

	for frame := 0; frame < cfg.Frames; frame++ {
		// Sweep the pointer across the surface so hover and drag states
		// show up in the snapshot.
		t := float32(frame) / float32(cfg.Frames)
		ctx.SetPointer(t*float32(cfg.Width), float32(cfg.Height)/2)
		ctx.PointerButton(ui.MouseLeft, frame%24 < 12)

		port.Clear(cfg.Background)
		ctx.BeginFrame(cfg.Delta)
		scene.build(ctx)
		ctx.EndFrame()
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", cfg.Output, err)
	}
	defer f.Close()

	if err := port.EncodePNG(f); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "embershot: wrote %s (%dx%d, %d frames, %d pixels drawn)\n",
		cfg.Output, cfg.Width, cfg.Height, cfg.Frames, port.Raster().PixelsDrawn)
	return nil
}

// demoScene is the widget set rendered every frame.
type demoScene struct {
	volume   float32
	selected int
	search   ui.EditState
}

func (s *demoScene) build(ctx *ui.Context) {
	ctx.Segmented([]string{"Overview", "Detail", "Settings"}, &s.selected)

	s.volume = ctx.SliderEx(s.volume, 0, 100, 1, &ui.SliderOptions{
		StartText:          "Volume",
		ShowValueIndicator: true,
	})

	ctx.TextField(&s.search, &ui.TextFieldOptions{Placeholder: "Search"})

	ctx.ButtonStyled("Apply", ui.AlignLeft, ui.ButtonFilled)
	ctx.ButtonStyled("Reset", ui.AlignRight, ui.ButtonOutlined)
}
