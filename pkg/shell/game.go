// Package shell is the windowed front of the board: ebiten calls Update once
// per frame, which is where the board gets its Tick.
package shell

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-neon-task/pb"
	"github.com/lao-tseu-is-alive/go-neon-task/pkg/motion"
	"github.com/lao-tseu-is-alive/go-neon-task/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-neon-task/pkg/ui"
	golog "github.com/tochemey/goakt/v3/log"
)

const (
	// CardSize is the drawn side of an item, the layout margins keep a
	// 20px gutter on top of it.
	CardSize = 180
	panelW   = 240
)

var (
	colorBackground = color.RGBA{R: 8, G: 6, B: 20, A: 255}
	colorCard       = color.RGBA{R: 20, G: 14, B: 44, A: 235}
	colorSafeRect   = color.RGBA{R: 40, G: 40, B: 70, A: 255}
)

type Game struct {
	ctx        context.Context
	client     *simulation.Client
	snapshotCh <-chan *pb.BoardSnapshot
	lastState  *pb.BoardSnapshot
	logger     golog.Logger

	panel          *ui.Panel
	minDistance    *ui.Slider
	bounceStrength *ui.Slider
	pause          *ui.Checkbox
	tuningDirty    bool

	selected string
	added    int
	width    int
	height   int

	// Timing instrumentation
	updateAvg float64 // Rolling average in ms
}

func NewGame(ctx context.Context, client *simulation.Client, snapshotCh <-chan *pb.BoardSnapshot, cfg *simulation.Config, logger golog.Logger) *Game {
	g := &Game{
		ctx:        ctx,
		client:     client,
		snapshotCh: snapshotCh,
		lastState:  &pb.BoardSnapshot{}, // Avoid nil pointer
		logger:     logger,
	}

	panel := ui.NewPanel("Neon Task", 10, 10, panelW, 300)
	panel.AddSection("Todos")
	panel.AddButton("+ Add todo", g.addTodo)
	panel.AddButton("Toggle done", g.toggleSelected)
	panel.AddButton("Remove selected", g.removeSelected)
	panel.AddSection("Motion")
	g.minDistance = panel.AddSlider("Min distance", 40, 320, cfg.MinDistance)
	g.bounceStrength = panel.AddSlider("Bounce strength", 0.1, 3, cfg.BounceStrength)
	g.pause = panel.AddCheckbox("Pause (space)", false)
	panel.Height = panel.ContentHeight()

	markDirty := func(float64) { g.tuningDirty = true }
	g.minDistance.OnChange = markDirty
	g.bounceStrength.OnChange = markDirty
	g.panel = panel
	return g
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.updateAvg = g.updateAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	// 1. Update UI Panel and keyboard shortcuts
	g.panel.Update()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.pause.Value = !g.pause.Value
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.addTodo()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if !g.overPanel(float64(mx), float64(my)) {
			g.selected = cardAt(g.lastState, float64(mx), float64(my))
		}
	}

	// 2. Retrieve Latest State (Non-blocking)
	select {
	case snap := <-g.snapshotCh:
		g.lastState = snap
	default:
		// Use previous state if new one isn't ready
	}

	if g.tuningDirty {
		if err := g.client.Tune(g.ctx, motion.Params{
			MinDistance:    g.minDistance.Value,
			BounceStrength: g.bounceStrength.Value,
		}); err != nil {
			return err
		}
		g.tuningDirty = false
	}

	// 3. Trigger Simulation Step
	if !g.pause.Value {
		if err := g.client.Tick(g.ctx); err != nil {
			return fmt.Errorf("tick: %w", err)
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	if b := g.lastState.GetBounds(); b != nil {
		r := simulation.BoundsFromProto(b)
		vector.StrokeRect(screen,
			float32(r.MinX), float32(r.MinY),
			float32(r.Width()+CardSize), float32(r.Height()+CardSize),
			1, colorSafeRect, true)
	}

	for _, item := range g.lastState.GetItems() {
		g.drawCard(screen, item)
	}

	g.panel.Draw(screen)

	status := "running"
	if g.pause.Value {
		status = "paused"
	}
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Frame %d | Todos %d | %s | TPS %.0f | Update %.2fms",
			g.lastState.GetFrame(), len(g.lastState.GetItems()), status, ebiten.ActualTPS(), g.updateAvg),
		10, g.height-20)
}

func (g *Game) drawCard(screen *ebiten.Image, item *pb.Item) {
	pos := simulation.VectorFromProto(item.GetPosition())
	border := ui.ColorNeonCyan
	switch {
	case item.GetId() == g.selected:
		border = ui.ColorNeonMagenta
	case item.GetTodo().GetDone():
		border = ui.ColorNeonGreen
	}

	vector.FillRect(screen, float32(pos.X), float32(pos.Y), CardSize, CardSize, colorCard, true)
	vector.StrokeRect(screen, float32(pos.X), float32(pos.Y), CardSize, CardSize, 2, border, true)

	todo := item.GetTodo()
	mark := "[ ]"
	if todo.GetDone() {
		mark = "[x]"
	}
	ebitenutil.DebugPrintAt(screen, mark+" "+clip(todo.GetTitle(), 22), int(pos.X+8), int(pos.Y+8))
	ebitenutil.DebugPrintAt(screen, clip(todo.GetDescription(), 26), int(pos.X+8), int(pos.Y+28))
}

// Layout follows the window size, every change resizes the board's safe rectangle.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		if err := g.client.Resize(g.ctx, float64(outsideWidth), float64(outsideHeight)); err != nil {
			g.logger.Warnf("resize to %dx%d: %v", outsideWidth, outsideHeight, err)
		}
	}
	return outsideWidth, outsideHeight
}

func (g *Game) overPanel(mx, my float64) bool {
	p := g.panel
	return mx >= p.X && mx <= p.X+p.Width && my >= p.Y && my <= p.Y+p.Height
}

func (g *Game) addTodo() {
	g.added++
	item, err := g.client.Add(g.ctx, "", &pb.Todo{
		Title:       fmt.Sprintf("New todo #%d", g.added),
		Description: "added " + time.Now().Format(time.Kitchen),
	})
	if err != nil {
		g.logger.Warnf("add todo: %v", err)
		return
	}
	g.selected = item.GetId()
}

func (g *Game) toggleSelected() {
	item := findItem(g.lastState, g.selected)
	if item == nil {
		return
	}
	todo := &pb.Todo{
		Title:       item.GetTodo().GetTitle(),
		Description: item.GetTodo().GetDescription(),
		Done:        !item.GetTodo().GetDone(),
	}
	if err := g.client.Replace(g.ctx, item.GetId(), todo); err != nil {
		g.logger.Warnf("toggle %s: %v", item.GetId(), err)
	}
}

func (g *Game) removeSelected() {
	if g.selected == "" {
		return
	}
	if err := g.client.Remove(g.ctx, g.selected); err != nil {
		g.logger.Warnf("remove %s: %v", g.selected, err)
	}
	g.selected = ""
}

// cardAt returns the id of the topmost card under (mx, my), "" if none.
// Later items are drawn last, so they are on top.
func cardAt(snap *pb.BoardSnapshot, mx, my float64) string {
	items := snap.GetItems()
	for i := len(items) - 1; i >= 0; i-- {
		pos := simulation.VectorFromProto(items[i].GetPosition())
		if mx >= pos.X && mx <= pos.X+CardSize && my >= pos.Y && my <= pos.Y+CardSize {
			return items[i].GetId()
		}
	}
	return ""
}

func findItem(snap *pb.BoardSnapshot, id string) *pb.Item {
	if id == "" {
		return nil
	}
	for _, item := range snap.GetItems() {
		if item.GetId() == id {
			return item
		}
	}
	return nil
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
