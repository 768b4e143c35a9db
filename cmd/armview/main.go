// Command armview is a terminal viewer demonstrating the camera controller:
// a wireframe robot scene rendered through the controllable camera at a fixed
// 30 Hz tick, with the widget surface on the HUD.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"
	"unicode"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/armview/camctl"
	"github.com/lixenwraith/armview/config"
	"github.com/lixenwraith/armview/input"
	"github.com/lixenwraith/armview/logger"
	"github.com/lixenwraith/armview/scene"
	"github.com/lixenwraith/armview/ui"
	"github.com/lixenwraith/armview/vmath"
)

const (
	frameRate   = 30 // Hz, fixed animation-rate clamp
	framePeriod = time.Second / frameRate
)

type appState struct {
	scene  *scene.Scene
	grid   *scene.Grid
	robots []*Robot
	panel  *ui.Panel
}

func (a *appState) title() string {
	if a.scene.Title != "" {
		return a.scene.Title
	}
	return "armview"
}

// viewerControls applies widget callbacks to the scene
type viewerControls struct {
	app *appState
}

func (c *viewerControls) OnRobotSelect(name string) {
	logger.L().Debug("robot selected", "name", name)
}

func (c *viewerControls) OnReferenceFrameToggle(visible bool) {
	for _, f := range c.app.scene.Frames {
		f.SetVisible(visible)
	}
}

func (c *viewerControls) OnRobotVisibilityToggle(visible bool) {
	logger.L().Debug("robot visibility", "visible", visible)
}

func (c *viewerControls) OnOpacityChange(opacity float64) {
	logger.L().Debug("opacity", "value", opacity)
}

func main() {
	configPath := flag.String("config", "", "path to YAML config")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	logger.Init(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})

	bindings := input.DefaultBindings()
	if err := bindings.ApplyOverrides(cfg.Keymap); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	s, grid := scene.Init(scene.Canvas{
		Height:  cfg.Canvas.Height,
		Width:   cfg.Canvas.Width,
		Title:   cfg.Canvas.Title,
		Caption: cfg.Canvas.Caption,
		Grid:    cfg.Canvas.GridVisible(),
	})

	app := &appState{scene: s, grid: grid}
	app.robots = []*Robot{
		newRobot("r1", vmath.Vec3{X: -1.5}, scene.RGB{R: 40, G: 180, B: 255}, 0),
		newRobot("r2", vmath.Vec3{X: 1.5}, scene.RGB{R: 255, G: 60, B: 120}, 2.1),
	}
	for _, r := range app.robots {
		for _, f := range r.Frames() {
			s.AddFrame(f)
		}
	}

	audio := initAudio()
	defer audio.close()

	app.panel = ui.NewPanel([]string{"r1", "r2"}, &viewerControls{app: app}, func() {
		s.ResetCamera()
		audio.playReset()
	})

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "terminal init: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal init: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault)

	logger.L().Info("viewer started",
		"canvas", fmt.Sprintf("%dx%d", cfg.Canvas.Width, cfg.Canvas.Height),
		"grid", grid.Visible())

	run(screen, app, bindings, *configPath)
}

func run(screen tcell.Screen, app *appState, bindings input.Bindings, configPath string) {
	eventCh := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(eventCh)
				return
			}
			eventCh <- ev
		}
	}()

	keymapCh := watchKeymap(configPath)

	tracker := input.NewTracker()
	controller := camctl.New(app.scene)

	ticker := time.NewTicker(framePeriod)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case ev, ok := <-eventCh:
			if !ok {
				return
			}
			if !handleEvent(ev, app, tracker) {
				return
			}

		case kb := <-keymapCh:
			bindings = kb

		case <-ticker.C:
			now := time.Now()
			held := bindings.Resolve(tracker.Snapshot(now))
			controller.Step(held)

			elapsed := now.Sub(start).Seconds()
			for _, r := range app.robots {
				r.Update(elapsed)
			}

			renderFrame(screen, app)
		}
	}
}

// handleEvent feeds one tcell event into the UI panel or the key tracker.
// Returns false to quit
func handleEvent(ev tcell.Event, app *appState, tracker *input.Tracker) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyTab:
		app.panel.FocusNext()
		return true
	case tcell.KeyEnter:
		app.panel.Activate()
		return true
	}

	now := time.Now()

	// Modifier presses ride along with whatever key carried them. Terminals
	// never report a bare modifier, so shift/ctrl are only seen combined
	if key.Modifiers()&tcell.ModCtrl != 0 {
		tracker.Press(input.KeyCtrl, now)
	}
	if key.Modifiers()&tcell.ModShift != 0 {
		tracker.Press(input.KeyShift, now)
	}

	switch key.Key() {
	case tcell.KeyUp:
		tracker.Press(input.KeyUp, now)
	case tcell.KeyDown:
		tracker.Press(input.KeyDown, now)
	case tcell.KeyLeft:
		tracker.Press(input.KeyLeft, now)
	case tcell.KeyRight:
		tracker.Press(input.KeyRight, now)
	case tcell.KeyRune:
		r := key.Rune()
		switch {
		case r == ' ':
			tracker.Press(input.KeySpace, now)
		case r == '[':
			app.panel.Adjust(-1)
		case r == ']':
			app.panel.Adjust(1)
		default:
			// Uppercase means shift was held with the letter
			if unicode.IsUpper(r) {
				tracker.Press(input.KeyShift, now)
				r = unicode.ToLower(r)
			}
			tracker.Press(input.Key(string(r)), now)
		}
	}
	return true
}

// watchKeymap reloads keymap overrides when the config file changes.
// Returns a nil channel (never ready) when no config file is in use or the
// watcher cannot start
func watchKeymap(configPath string) <-chan input.Bindings {
	if configPath == "" {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.L().Warn("config watch unavailable", "error", err)
		return nil
	}
	if err := watcher.Add(configPath); err != nil {
		logger.L().Warn("config watch failed", "path", configPath, "error", err)
		watcher.Close()
		return nil
	}

	ch := make(chan input.Bindings, 1)
	go func() {
		defer watcher.Close()
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				cfg, err := config.Load(configPath)
				if err != nil {
					logger.L().Warn("config reload failed", "error", err)
					continue
				}
				bindings := input.DefaultBindings()
				if err := bindings.ApplyOverrides(cfg.Keymap); err != nil {
					logger.L().Warn("keymap reload failed", "error", err)
					continue
				}
				select {
				case ch <- bindings:
				default:
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return ch
}
