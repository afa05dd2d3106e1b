package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/hollowdrift/hollowdrift/common"
	"github.com/hollowdrift/hollowdrift/ecs"
	"github.com/hollowdrift/hollowdrift/ecs/system"
	"github.com/hollowdrift/hollowdrift/input"
	"github.com/hollowdrift/hollowdrift/levels"
	"github.com/hollowdrift/hollowdrift/prefabs"
)

const (
	gameplayContext = "gameplay"
	menuContext     = "menu"
)

type Game struct {
	frames int
	debug  bool

	backend  *input.Backend
	mgr      *input.Manager
	contexts map[string]*input.Context

	world   *ecs.World
	scripts *system.ScriptSystem
	level   *levels.Level

	watcher *prefabs.Watcher
	pauseUI *ebitenui.UI
	paused  bool
	quit    bool
}

func NewGame(levelName string, debug bool) (*Game, error) {
	lvl, err := levels.Load(levelName)
	if err != nil {
		return nil, err
	}

	mgr := input.NewManager()
	contexts, err := prefabs.LoadInputContexts()
	if err != nil {
		return nil, err
	}
	gameplay, ok := contexts[gameplayContext]
	if !ok {
		return nil, fmt.Errorf("game: input.yaml defines no %q context", gameplayContext)
	}
	mgr.Enable(gameplay)

	world := ecs.NewWorld()
	pw := ecs.NewPhysicsWorld()
	world.SetPhysicsWorld(pw)
	for _, run := range lvl.SolidRuns() {
		pw.AddStaticBox(run[0], run[1], run[2], run[3])
	}

	scripts := system.NewScriptSystem(prefabs.LoadScript)
	world.AddSystem(system.NewIntentSystem(mgr))
	world.AddSystem(system.NewPlayerControllerSystem())
	world.AddSystem(system.NewPhysicsSystem())
	world.AddSystem(scripts)
	world.AddSystem(system.NewPickupSystem())
	world.AddSystem(system.NewCameraSystem())
	world.AddSystem(system.NewLevelRenderSystem(lvl))
	world.AddSystem(system.NewRenderSystem())

	player, err := spawnPlayer(world, lvl)
	if err != nil {
		return nil, fmt.Errorf("game: spawn player: %w", err)
	}
	if err := spawnCamera(world, player); err != nil {
		return nil, fmt.Errorf("game: spawn camera: %w", err)
	}
	if err := spawnProps(world, lvl); err != nil {
		return nil, fmt.Errorf("game: spawn props: %w", err)
	}

	g := &Game{
		debug:    debug,
		backend:  input.NewBackend(mgr.Sampler()),
		mgr:      mgr,
		contexts: contexts,
		world:    world,
		scripts:  scripts,
		level:    lvl,
	}
	g.pauseUI = NewPauseUI(g)

	// Editing specs or scripts while the game runs rebuilds them live.
	// A dev convenience only; the game works fine without the watcher.
	watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
	if err != nil {
		log.Printf("game: hot reload disabled: %v", err)
	} else {
		g.watcher = watcher
	}
	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.frames++
	g.drainReloads()

	g.backend.Poll()
	g.mgr.Tick()

	if g.mgr.WasButtonPressed(system.ActionPause) {
		g.togglePause()
	}

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.world.Update()
	return nil
}

func (g *Game) togglePause() {
	g.paused = !g.paused
	if g.paused {
		if menu, ok := g.contexts[menuContext]; ok {
			g.mgr.Enable(menu)
		}
	} else {
		g.mgr.Disable(menuContext)
	}
}

// drainReloads applies pending watcher events at the tick boundary so a
// reload never swaps contexts mid-resolve.
func (g *Game) drainReloads() {
	if g.watcher == nil {
		return
	}

	var specs, scripts bool
loop:
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if strings.HasSuffix(path, ".tengo") {
				scripts = true
			} else {
				specs = true
			}
		case err := <-g.watcher.Errors:
			log.Printf("game: watch: %v", err)
		default:
			break loop
		}
	}

	if scripts {
		g.scripts.Invalidate()
		log.Printf("game: reaction scripts invalidated")
	}
	if specs {
		g.reloadInput()
	}
}

// reloadInput rebuilds contexts from input.yaml. A file that fails
// validation is rejected wholesale and the running contexts stay live.
func (g *Game) reloadInput() {
	contexts, err := prefabs.LoadInputContexts()
	if err != nil {
		log.Printf("game: input reload rejected: %v", err)
		return
	}
	for name := range g.contexts {
		if !g.mgr.Enabled(name) {
			continue
		}
		g.mgr.Disable(name)
		if ctx, ok := contexts[name]; ok {
			g.mgr.Enable(ctx)
		}
	}
	g.contexts = contexts
	log.Printf("game: input contexts reloaded")
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.world.Draw(screen)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
	if g.debug {
		g.drawDebug(screen)
	}
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	mx, my := g.mgr.GetAxis2D(system.ActionMove)
	dx, dy := g.mgr.GetMouseDelta()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.1f  frames: %d\nMove: (%.2f, %.2f)  Jump: %v\nMouse delta: (%.0f, %.0f)",
		ebiten.ActualFPS(), g.frames, mx, my, g.mgr.GetButton(system.ActionJump), dx, dy,
	))
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
