// Package tui is the terminal front end: a 3D chain pane over a tabbed dashboard.
package tui

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/dashboard"
	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/model"
	"github.com/goodnatureofminers/blockinsight7000-chainviz/internal/scene"
)

const (
	// CellAspect is the height/width ratio of a terminal cell.
	CellAspect = 2.0
	// PanStep is the screen-space delta of one arrow key press.
	PanStep = 40.0

	minSceneRows = 3
	chromeRows   = 4
	helpText     = "1-5 tab r reload n new s select b balance o all t send m mine a trace q quit"
)

var (
	styleTab    = tcell.StyleDefault.Reverse(true)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleInfo   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleError  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleTitle  = tcell.StyleDefault.Bold(true)
)

// prompt collects one or more text fields before submitting them.
type prompt struct {
	labels []string
	values []string
	input  []rune
	submit func(values []string)
}

func (p *prompt) label() string { return p.labels[len(p.values)] }

// App draws the dashboard and the chain pane on a tcell screen. It implements
// dashboard.View and the chain view's renderer. Apart from Run, its methods must be
// called on the UI thread.
type App struct {
	screen tcell.Screen
	loop   Loop
	logger *zap.Logger

	canvas *Canvas
	view   Visualizer
	ctrl   Controller

	ctx  context.Context
	quit context.CancelFunc

	width     int
	height    int
	sceneRows int

	tab     dashboard.Tab
	panels  map[dashboard.Tab][]string
	scroll  int
	detail  []string
	status  string
	notice  dashboard.Notice
	prompt  *prompt
	pressed bool
}

// NewApp returns an app drawing on screen. The screen must be initialized.
func NewApp(screen tcell.Screen, loop Loop, logger *zap.Logger) *App {
	return &App{
		screen: screen,
		loop:   loop,
		logger: logger.Named("tui"),
		canvas: NewCanvas(),
		ctx:    context.Background(),
		quit:   func() {},
		tab:    dashboard.TabBlockchain,
		panels: map[dashboard.Tab][]string{
			dashboard.TabMining: MiningLines(nil, false),
			dashboard.TabTrace:  {"Press a to trace an asset"},
		},
	}
}

// Attach connects the chain view and the dashboard controller.
func (a *App) Attach(view Visualizer, ctrl Controller) {
	a.view = view
	a.ctrl = ctrl
}

// Run shows the app until ctx is done or the user quits. It runs the UI loop on the
// calling goroutine and restores the terminal before returning.
func (a *App) Run(ctx context.Context, fps int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	a.ctx, a.quit = ctx, cancel

	a.loop.Post(a.start)
	go a.pump()
	go func() {
		if err := a.view.Run(ctx, fps); err != nil && !errors.Is(err, context.Canceled) {
			a.logger.Error("animation stopped", zap.Error(err))
		}
	}()

	err := a.loop.Run(ctx)
	a.stop()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (a *App) start() {
	a.layout(a.screen.Size())
	a.view.Mount(a.viewport())
	a.ctrl.Attach(a.ctx)
	a.ctrl.SwitchTab(a.ctx, dashboard.TabBlockchain)
	a.logger.Info("started", zap.Int("width", a.width), zap.Int("height", a.height))
	a.draw()
}

func (a *App) stop() {
	a.ctrl.Close()
	a.view.Unmount()
	a.screen.Fini()
	a.logger.Info("stopped")
}

// pump forwards terminal events to the UI thread until the screen is finalized.
func (a *App) pump() {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		if !a.loop.Post(func() { a.HandleEvent(ev) }) {
			return
		}
	}
}

func (a *App) layout(width, height int) {
	a.width, a.height = width, height
	a.sceneRows = max(height*3/5, minSceneRows)
}

func (a *App) viewport() scene.Viewport {
	return scene.Viewport{Width: a.width, Height: a.sceneRows, CellAspect: CellAspect}
}

// HandleEvent reacts to one terminal event.
func (a *App) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		a.layout(ev.Size())
		a.view.OnResize(a.viewport())
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventKey:
		a.handleKey(ev)
	}
	a.draw()
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	fx, fy := float64(x)+0.5, float64(y)+0.5
	down := ev.Buttons()&tcell.Button1 != 0
	switch {
	case down && !a.pressed:
		if y >= a.sceneRows {
			return
		}
		a.pressed = true
		a.view.PointerDown(fx, fy)
	case down:
		a.view.PointerMove(fx, fy)
	case a.pressed:
		a.pressed = false
		a.view.PointerUp(fx, fy)
	}
}

func (a *App) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC {
		a.quit()
		return
	}
	if a.prompt != nil {
		a.editPrompt(ev)
		return
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		if a.detail != nil {
			a.detail = nil
			a.ctrl.CloseDetail()
		}
		return
	case tcell.KeyLeft:
		a.view.Pan(PanStep)
		return
	case tcell.KeyRight:
		a.view.Pan(-PanStep)
		return
	case tcell.KeyPgDn:
		a.scroll++
		return
	case tcell.KeyPgUp:
		a.scroll = max(a.scroll-1, 0)
		return
	case tcell.KeyRune:
	default:
		return
	}

	r := ev.Rune()
	if r >= '1' && int(r-'1') < len(dashboard.Tabs) {
		a.switchTab(dashboard.Tabs[r-'1'])
		return
	}
	switch r {
	case 'q':
		a.quit()
	case 'r':
		a.switchTab(a.tab)
	case 'n':
		a.ask([]string{"New wallet name"}, func(v []string) {
			a.rejected(a.ctrl.CreateWallet(a.ctx, v[0]))
		})
	case 's':
		a.ask([]string{"Select wallet"}, func(v []string) {
			a.rejected(a.ctrl.SelectWallet(a.ctx, v[0]))
		})
	case 'b':
		a.ask([]string{"Balance of wallet (empty for selected)"}, func(v []string) {
			a.switchTab(dashboard.TabWallets)
			a.ctrl.CheckBalance(a.ctx, v[0])
		})
	case 'o':
		a.switchTab(dashboard.TabWallets)
		a.ctrl.LoadWalletBalances(a.ctx)
	case 't':
		a.ask([]string{"Recipient public key hash", "Asset ID", "Portion (1-100)"}, func(v []string) {
			portion, _ := strconv.Atoi(strings.TrimSpace(v[2]))
			a.rejected(a.ctrl.CreateTransaction(a.ctx, model.TransferRequest{
				ToPubKeyHash: v[0],
				AssetID:      v[1],
				Portion:      portion,
			}))
		})
	case 'm':
		a.switchTab(dashboard.TabMining)
		a.rejected(a.ctrl.StartMining(a.ctx))
	case 'a':
		a.ask([]string{"Asset ID"}, func(v []string) {
			a.switchTab(dashboard.TabTrace)
			a.rejected(a.ctrl.TraceAsset(a.ctx, v[0]))
		})
	}
}

// rejected logs an action the controller refused. The controller has already shown
// the reason as a notice.
func (a *App) rejected(err error) {
	if err != nil {
		a.logger.Debug("action rejected", zap.Error(err))
	}
}

func (a *App) switchTab(tab dashboard.Tab) {
	a.ctrl.SwitchTab(a.ctx, tab)
}

func (a *App) ask(labels []string, submit func(values []string)) {
	a.prompt = &prompt{labels: labels, submit: submit}
}

func (a *App) editPrompt(ev *tcell.EventKey) {
	p := a.prompt
	switch ev.Key() {
	case tcell.KeyEscape:
		a.prompt = nil
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(p.input) > 0 {
			p.input = p.input[:len(p.input)-1]
		}
	case tcell.KeyEnter:
		p.values = append(p.values, string(p.input))
		p.input = nil
		if len(p.values) == len(p.labels) {
			a.prompt = nil
			p.submit(p.values)
		}
	case tcell.KeyRune:
		p.input = append(p.input, ev.Rune())
	}
}

// SetSize implements the chain view renderer.
func (a *App) SetSize(width, height int) {
	a.canvas.SetSize(width, height)
}

// Render implements the chain view renderer.
func (a *App) Render(sc *scene.Scene, cam *scene.Camera) {
	a.canvas.Render(sc, cam)
	a.draw()
}

// ShowTab implements dashboard.View.
func (a *App) ShowTab(tab dashboard.Tab) {
	if tab != a.tab {
		a.scroll = 0
	}
	a.tab = tab
	a.draw()
}

func (a *App) show(tab dashboard.Tab, lines []string) {
	a.panels[tab] = lines
	if tab == a.tab {
		a.scroll = 0
	}
	a.draw()
}

// ShowWallets implements dashboard.View.
func (a *App) ShowWallets(wallets []model.WalletSummary) {
	a.show(dashboard.TabWallets, WalletLines(wallets))
}

// ShowWalletBalances implements dashboard.View.
func (a *App) ShowWalletBalances(rows []dashboard.WalletBalance) {
	a.show(dashboard.TabWallets, WalletBalanceLines(rows))
}

// ShowBalance implements dashboard.View.
func (a *App) ShowBalance(balance model.Balance) {
	a.show(dashboard.TabWallets, BalanceLines(balance))
}

// ShowChain implements dashboard.View.
func (a *App) ShowChain(blocks []model.BlockRecord) {
	a.show(dashboard.TabBlockchain, ChainLines(blocks))
}

// ShowBlockDetail implements dashboard.View.
func (a *App) ShowBlockDetail(block model.BlockRecord) {
	a.detail = DetailLines(block)
	a.draw()
}

// ShowPending implements dashboard.View.
func (a *App) ShowPending(txs []model.TxView) {
	a.show(dashboard.TabTransactions, PendingLines(txs))
}

// ShowMiningLog implements dashboard.View.
func (a *App) ShowMiningLog(lines []string, active bool) {
	a.show(dashboard.TabMining, MiningLines(lines, active))
}

// ShowTrace implements dashboard.View.
func (a *App) ShowTrace(assetID string, entries []model.TraceEntry) {
	a.show(dashboard.TabTrace, TraceLines(assetID, entries))
}

// SetStatus implements dashboard.View.
func (a *App) SetStatus(text string) {
	a.status = text
	a.draw()
}

// Notify implements dashboard.View.
func (a *App) Notify(n dashboard.Notice) {
	a.notice = n
	a.draw()
}

func (a *App) draw() {
	if a.width == 0 || a.height == 0 {
		return
	}
	a.screen.Clear()
	a.drawScene()

	row := a.sceneRows
	a.drawTabs(row)
	row++

	contentRows := a.height - row - chromeRows + 1
	lines := a.panels[a.tab]
	if a.detail != nil {
		lines = a.detail
	}
	a.drawLines(row, contentRows, lines)

	a.text(0, a.height-3, a.status, styleStatus)
	if a.notice.Text != "" {
		style := styleInfo
		if a.notice.Level == dashboard.LevelError {
			style = styleError
		}
		a.text(0, a.height-2, a.notice.Text, style)
	}
	if a.prompt != nil {
		a.text(0, a.height-1, a.prompt.label()+": "+string(a.prompt.input), styleTitle)
		a.screen.ShowCursor(len([]rune(a.prompt.label()))+2+len(a.prompt.input), a.height-1)
	} else {
		a.screen.HideCursor()
		a.text(0, a.height-1, helpText, styleStatus)
	}
	a.screen.Show()
}

func (a *App) drawScene() {
	w, h := a.canvas.Size()
	for y := 0; y < min(h, a.sceneRows); y++ {
		for x := 0; x < min(w, a.width); x++ {
			c := a.canvas.At(x, y)
			if !c.Set {
				continue
			}
			style := tcell.StyleDefault.Foreground(tcell.NewHexColor(int32(c.Color)))
			a.screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
}

func (a *App) drawTabs(row int) {
	x := 0
	for i, tab := range dashboard.Tabs {
		label := " " + strconv.Itoa(i+1) + " " + tab.String() + " "
		style := tcell.StyleDefault
		if tab == a.tab {
			style = styleTab
		}
		x = a.text(x, row, label, style)
	}
}

func (a *App) drawLines(row, rows int, lines []string) {
	if rows <= 0 {
		return
	}
	start := min(a.scroll, max(len(lines)-1, 0))
	if a.tab == dashboard.TabMining && a.detail == nil && len(lines) > rows {
		start = len(lines) - rows
	}
	for i := 0; i < rows && start+i < len(lines); i++ {
		a.text(1, row+i, lines[start+i], tcell.StyleDefault)
	}
}

// text draws s at (x, y), clipped to the screen, and returns the column after it.
func (a *App) text(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		if x >= a.width {
			break
		}
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
