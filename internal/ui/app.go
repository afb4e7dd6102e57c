package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"worldmonitor/internal/dashboard"
	"worldmonitor/internal/geo"
	"worldmonitor/internal/layout"
	"worldmonitor/internal/refresh"
	"worldmonitor/internal/ui/panels"
)

// App is the root Bubble Tea model.
type App struct {
	ctx   context.Context
	dash  *dashboard.Dashboard
	sched *refresh.Scheduler

	Panels     map[string]panels.Panel
	KeyHandler *KeyHandler
	Overlays   OverlayStack
	Focus      FocusManager

	width, height int
	scroll        int
	now           time.Time
	clock         func() time.Time

	Status        string
	StatusIsError bool
	events        []refresh.Event

	// pending counts fetches started but not yet applied; the header
	// spinner runs while it is positive.
	pending  int
	spinning bool
	spinner  spinner.Model
}

var _ tea.Model = (*App)(nil)

// New builds the app around a dashboard and the scheduler whose sources it
// polls. Fetches run under ctx.
func New(ctx context.Context, dash *dashboard.Dashboard, sched *refresh.Scheduler) *App {
	a := &App{
		ctx:    ctx,
		dash:   dash,
		sched:  sched,
		Panels: panels.NewSet(layout.Definitions()),
		clock:  time.Now,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(Styles.Title),
		),
	}
	a.now = a.clock()
	a.KeyHandler = NewKeyHandler(a.bindings())
	a.syncFocusOrder()
	a.syncPanels()
	return a
}

// bindings registers every keyboard command.
func (a *App) bindings() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")

	reg.Bind("tab", send(FocusMsg{Delta: 1}))
	reg.Bind("shift+tab", send(FocusMsg{Delta: -1}))
	reg.Bind("up", send(NavigateMsg{DY: -1}))
	reg.Bind("down", send(NavigateMsg{DY: 1}))
	reg.Bind("left", send(NavigateMsg{DX: -1}))
	reg.Bind("right", send(NavigateMsg{DX: 1}))
	reg.Bind("K", send(MovePanelMsg{Delta: -1}))
	reg.Bind("J", send(MovePanelMsg{Delta: 1}))
	reg.Bind("+", send(ZoomMsg{Delta: 1}))
	reg.Bind("=", send(ZoomMsg{Delta: 1}))
	reg.Bind("-", send(ZoomMsg{Delta: -1}))
	reg.Bind("[", send(MapHeightMsg{Delta: -2}))
	reg.Bind("]", send(MapHeightMsg{Delta: 2}))
	reg.Bind("r", send(RefreshMsg{}))
	reg.Bind("s", send(ShowSettingsMsg{}))
	reg.Bind("m", send(ShowAddMonitorMsg{}))
	reg.Bind("e", send(ShowEditMonitorMsg{}))
	reg.Bind("d", send(ShowDeleteMonitorMsg{}))
	for i, v := range geo.Views() {
		reg.Bind(string(rune('1'+i)), send(SetViewMsg{View: v.Key}))
	}

	reg.BindWithDesc("SPC r", send(RefreshMsg{}), "Refresh all")
	reg.BindWithDesc("SPC s", send(ShowStatusMsg{}), "Refresh log")
	reg.BindWithDesc("SPC p", send(ShowSettingsMsg{}), "Panels & layers")
	reg.BindWithDesc("SPC f", send(MapHeightMsg{Fit: true}), "Fit map")

	reg.Submenu("SPC l", "Layers")
	for k, layer := range map[string]string{
		"h": geo.LayerHotspots,
		"e": geo.LayerEarthquakes,
		"c": geo.LayerConflicts,
		"b": geo.LayerBases,
		"u": geo.LayerCables,
		"n": geo.LayerNuclear,
		"s": geo.LayerSanctions,
	} {
		reg.BindWithDesc("SPC l "+k, send(ToggleLayerMsg{Layer: layer}), layer)
	}

	reg.Submenu("SPC v", "View")
	reg.BindWithDesc("SPC v g", send(SetViewMsg{View: geo.ViewGlobal}), "Global")
	reg.BindWithDesc("SPC v u", send(SetViewMsg{View: geo.ViewUS}), "United States")
	reg.BindWithDesc("SPC v m", send(SetViewMsg{View: geo.ViewMENA}), "Middle East")

	reg.Submenu("SPC m", "Monitors")
	reg.BindWithDesc("SPC m a", send(ShowAddMonitorMsg{}), "Add")
	reg.BindWithDesc("SPC m e", send(ShowEditMonitorMsg{}), "Edit")
	reg.BindWithDesc("SPC m d", send(ShowDeleteMonitorMsg{}), "Delete")
	return reg
}

// send wraps a message as a command.
func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// Init starts the clock and the first refresh of every group.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{clockCmd()}
	for _, g := range refresh.Groups() {
		cmds = append(cmds, a.runGroup(g), a.scheduleGroup(g))
	}
	cmds = append(cmds, a.startSpinner())
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.dash.FitMapHeight(a.height)
		a.ensureFocusVisible()
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd
	case clockMsg:
		a.now = time.Time(msg)
		return a, clockCmd()
	case groupTickMsg:
		return a, tea.Batch(a.runGroup(msg.Group), a.scheduleGroup(msg.Group), a.startSpinner())
	case spinner.TickMsg:
		if a.pending <= 0 {
			a.spinning = false
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	case resultMsg:
		a.apply(msg.Result)
		return a, nil
	case newsStepMsg:
		return a, a.handleNewsStep(msg)
	case tea.MouseMsg:
		return a, a.handleMouse(msg)
	case tea.KeyMsg:
		return a, a.handleKey(msg)

	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case RefreshMsg:
		return a, a.handleRefresh()
	case SetViewMsg:
		a.handleSetView(msg)
		return a, nil
	case ZoomMsg:
		a.handleZoom(msg)
		return a, nil
	case NavigateMsg:
		a.handleNavigate(msg)
		return a, nil
	case FocusMsg:
		a.handleFocus(msg)
		return a, nil
	case MovePanelMsg:
		a.handleMovePanel(msg)
		return a, nil
	case MapHeightMsg:
		a.handleMapHeight(msg)
		return a, nil
	case ToggleLayerMsg:
		a.handleToggleLayer(msg)
		return a, nil
	case TogglePanelMsg:
		a.handleTogglePanel(msg)
		return a, nil
	case ShowSettingsMsg:
		return a, a.push(NewSettingsModal(a.dash.PanelSettings(), a.dash.Layers()))
	case ShowStatusMsg:
		w := NewStatusWindow()
		w.SetData(a.dash.Status(), a.events)
		cmd := a.push(w)
		if a.width > 0 {
			w.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
		}
		return a, cmd
	case ShowAddMonitorMsg:
		return a, a.handleShowAddMonitor()
	case ShowEditMonitorMsg:
		return a, a.handleShowEditMonitor()
	case ShowDeleteMonitorMsg:
		return a, a.handleShowDeleteMonitor()
	case SaveMonitorMsg:
		a.handleSaveMonitor(msg)
		return a, nil
	case DeleteMonitorMsg:
		a.handleDeleteMonitor(msg)
		return a, nil
	}

	// Anything else (cursor blink, viewport ticks) belongs to the top modal.
	cmd, _ := a.Overlays.UpdateTop(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	if a.Overlays.Len() > 0 {
		cmd, _ := a.Overlays.UpdateTop(msg)
		return cmd
	}
	if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
		return cmd
	}
	return nil
}

// push opens v as a modal dismissed with esc.
func (a *App) push(v View) tea.Cmd {
	a.Overlays.Push(Overlay{View: v, Dismiss: "esc"})
	return v.Init()
}

// Dashboard returns the state the app renders.
func (a *App) Dashboard() *dashboard.Dashboard {
	return a.dash
}

// Events returns the refresh log, oldest first.
func (a *App) Events() []refresh.Event {
	return a.events
}
