// inputprobe opens a bare window and prints the live resolved state of
// every action in every enabled context. Useful for checking bindings,
// deadzones, and consumption without launching the game.
package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/hollowdrift/hollowdrift/input"
	"github.com/hollowdrift/hollowdrift/prefabs"
)

type probe struct {
	backend  *input.Backend
	mgr      *input.Manager
	contexts map[string]*input.Context
	names    []string
}

func newProbe(enable []string) (*probe, error) {
	mgr := input.NewManager()
	contexts, err := prefabs.LoadInputContexts()
	if err != nil {
		return nil, err
	}

	var names []string
	for _, name := range enable {
		ctx, ok := contexts[name]
		if !ok {
			return nil, fmt.Errorf("no context %q in input.yaml", name)
		}
		mgr.Enable(ctx)
		names = append(names, name)
	}
	sort.Strings(names)

	return &probe{
		backend:  input.NewBackend(mgr.Sampler()),
		mgr:      mgr,
		contexts: contexts,
		names:    names,
	}, nil
}

func (p *probe) Update() error {
	p.backend.Poll()
	p.mgr.Tick()
	return nil
}

func (p *probe) Draw(screen *ebiten.Image) {
	var b strings.Builder
	dx, dy := p.mgr.GetMouseDelta()
	fmt.Fprintf(&b, "mouse delta: (%.0f, %.0f)\n", dx, dy)

	for _, name := range p.names {
		ctx := p.contexts[name]
		fmt.Fprintf(&b, "\n[%s] priority=%d consume=%v\n", ctx.Name, ctx.Priority, ctx.ConsumeInput)
		for _, action := range ctx.Actions {
			state, ok := p.mgr.ContextAction(ctx.Name, action.Name)
			if !ok {
				fmt.Fprintf(&b, "  %-10s suppressed\n", action.Name)
				continue
			}
			marks := ""
			if state.JustPressed {
				marks += " +pressed"
			}
			if state.JustReleased {
				marks += " +released"
			}
			fmt.Fprintf(&b, "  %-10s (%6.2f, %6.2f) down=%-5v%s\n",
				action.Name, state.Value.X, state.Value.Y, state.Value.Pressed, marks)
		}
	}
	ebitenutil.DebugPrint(screen, b.String())
}

func (p *probe) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 640, 480
}

func main() {
	contexts := flag.String("contexts", "gameplay", "comma-separated context names to enable")
	flag.Parse()

	p, err := newProbe(strings.Split(*contexts, ","))
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(960, 720)
	ebiten.SetWindowTitle("inputprobe")
	if err := ebiten.RunGame(p); err != nil {
		log.Fatal(err)
	}
}
