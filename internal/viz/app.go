package viz

import (
	"fmt"
	"io"
	"log"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/gradviz/internal/surface"
)

const (
	frameRate   = 60
	springFreq  = 6.0
	springDamp  = 1.0
	orbitStep   = 0.15
	tiltStep    = 0.1
	panelWidth  = 46
	sliderWidth = 21
	settleEps   = 1e-4
)

type TickMsg time.Time

// Options are the inputs the interactive view starts from and resets to.
type Options struct {
	Variant   surface.Variant
	Point     surface.Point
	Theme     string
	Azimuth   float64
	Elevation float64
	Zoom      float64
	Logger    *log.Logger
}

// App is the Bubble Tea model of the interactive visualizer. Every input
// change re-evaluates the surface from scratch; only the camera and theme
// persist between frames.
type App struct {
	opts    Options
	variant surface.Variant
	point   surface.Point
	result  *surface.Result
	scene   *Scene
	err     error

	camera        *Camera
	targetAz      float64
	targetEl      float64
	azVel, elVel  float64
	spring        harmonica.Spring
	theme         Theme
	styles        Styles
	width, height int
	showHelp      bool
	logger        *log.Logger
}

func NewApp(opts Options) App {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	theme, _ := GetTheme(opts.Theme)
	cam := NewCamera(opts.Azimuth, opts.Elevation, opts.Zoom)
	a := App{
		opts:     opts,
		variant:  opts.Variant,
		point:    opts.Point.Snap().Clamp(),
		camera:   cam,
		targetAz: cam.Azimuth,
		targetEl: cam.Elevation,
		spring:   harmonica.NewSpring(harmonica.FPS(frameRate), springFreq, springDamp),
		theme:    theme,
		styles:   NewStyles(theme),
		width:    120,
		height:   36,
		logger:   logger,
	}
	a.evaluate()
	return a
}

// Variant, Point and Result expose the current inputs and evaluation.
func (a App) Variant() surface.Variant { return a.variant }
func (a App) Point() surface.Point     { return a.point }
func (a App) Result() *surface.Result  { return a.result }
func (a App) Theme() Theme             { return a.theme }
func (a App) Camera() Camera           { return *a.camera }

func (a *App) evaluate() {
	r, err := surface.Evaluate(a.variant, a.point)
	if err != nil {
		a.err = err
		a.logger.Printf("evaluate %v at %v: %v", a.variant, a.point, err)
		return
	}
	a.err = nil
	a.result = r
	a.scene = BuildScene(r)
	a.logger.Printf("evaluate %v at %v: z=%.4f grad=%v", a.variant, a.point, r.Z, r.Gradient)
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (a App) Init() tea.Cmd { return tick() }

// Update handles input events and eases the camera toward its target.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
	case TickMsg:
		a.stepCamera()
		return a, tick()
	}
	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (App, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit
	case "tab", "v":
		a.selectVariant(a.variant.Next())
	case "shift+tab", "V":
		a.selectVariant(a.variant.Next().Next())
	case "1", "2", "3":
		a.selectVariant(surface.Variants[int(msg.String()[0]-'1')])
	case "left", "h":
		a.movePoint(-1, 0)
	case "right", "l":
		a.movePoint(1, 0)
	case "down", "j":
		a.movePoint(0, -1)
	case "up", "k":
		a.movePoint(0, 1)
	case "x":
		a.targetEl = math.Min(math.Pi/2, a.targetEl+tiltStep)
	case "X":
		a.targetEl = math.Max(-math.Pi/2, a.targetEl-tiltStep)
	case "z":
		a.targetAz += orbitStep
	case "Z":
		a.targetAz -= orbitStep
	case "+", "=":
		a.camera.ZoomIn()
	case "-", "_":
		a.camera.ZoomOut()
	case "t":
		a.theme = NextTheme(a.theme.Name)
		a.styles = NewStyles(a.theme)
	case "r":
		a.reset()
	case "?":
		a.showHelp = !a.showHelp
	}
	return a, nil
}

func (a *App) selectVariant(v surface.Variant) {
	if v == a.variant {
		return
	}
	a.variant = v
	a.evaluate()
}

func (a *App) movePoint(dx, dy int) {
	next := a.point.Nudge(dx, dy)
	if next == a.point {
		return
	}
	a.point = next
	a.evaluate()
}

func (a *App) reset() {
	a.variant = a.opts.Variant
	a.point = a.opts.Point.Snap().Clamp()
	*a.camera = *NewCamera(a.opts.Azimuth, a.opts.Elevation, a.opts.Zoom)
	a.targetAz, a.targetEl = a.camera.Azimuth, a.camera.Elevation
	a.azVel, a.elVel = 0, 0
	a.evaluate()
}

// stepCamera advances the camera springs by one frame.
func (a *App) stepCamera() {
	if a.Settled() {
		return
	}
	az, azVel := a.spring.Update(a.camera.Azimuth, a.azVel, a.targetAz)
	el, elVel := a.spring.Update(a.camera.Elevation, a.elVel, a.targetEl)
	a.camera.Azimuth, a.azVel = az, azVel
	a.camera.SetElevation(el)
	a.elVel = elVel
}

// Settled reports whether the camera has reached its target orientation.
func (a App) Settled() bool {
	return math.Abs(a.camera.Azimuth-a.targetAz) < settleEps &&
		math.Abs(a.camera.Elevation-a.targetEl) < settleEps &&
		math.Abs(a.azVel) < settleEps && math.Abs(a.elVel) < settleEps
}

func (a App) View() string {
	st := a.styles
	title := st.Title.Render("GRADVIZ") + "  " + st.Muted.Render("gradient & steepest ascent visualizer")

	left := lipgloss.JoinVertical(lipgloss.Left, a.viewControls(), a.viewPanel())
	cw, ch := a.canvasSize()
	var right string
	if a.scene != nil {
		canvas := RenderScene(a.scene, a.camera, cw, ch)
		right = canvas.Render(a.theme) + a.theme.Legend(
			surface.Fixed2(a.scene.ZMin), surface.Fixed2(a.scene.ZMax))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	footer := st.KeyHints("tab", "function", "h/l", "x", "j/k", "y", "z/Z", "orbit", "x/X", "tilt", "+/-", "zoom", "t", "theme", "?", "help", "q", "quit")
	if a.showHelp {
		footer = a.viewHelp()
	}
	return "\n " + title + "\n\n" + body + "\n " + footer + "\n"
}

func (a App) canvasSize() (int, int) {
	w := a.width - panelWidth - 6
	h := a.height - 8
	if w < 24 {
		w = 24
	}
	if h < 10 {
		h = 10
	}
	return w, h
}

func (a App) viewControls() string {
	st := a.styles
	var b strings.Builder
	b.WriteString(st.Header.Render("1. Select Function & Parameters") + "\n")
	for i, v := range surface.Variants {
		line := fmt.Sprintf("%d %s", i+1, v.Label())
		if v == a.variant {
			b.WriteString(st.Key.Render("▸ ") + st.Value.Render(line) + "\n")
		} else {
			b.WriteString("  " + st.Muted.Render(line) + "\n")
		}
	}
	b.WriteString("\n" + st.Header.Render("2. Move Point P(x, y)") + "\n")
	b.WriteString(a.viewSlider("X Coordinate", a.point.X) + "\n")
	b.WriteString(a.viewSlider("Y Coordinate", a.point.Y) + "\n")
	return lipgloss.NewStyle().Width(panelWidth).Padding(0, 1).Render(b.String())
}

func (a App) viewSlider(label string, v float64) string {
	st := a.styles
	return fmt.Sprintf("%s %s %s",
		st.Label.Render(fmt.Sprintf("%-12s", label)),
		st.Muted.Render(Slider(v, surface.PointMin, surface.PointMax, sliderWidth)),
		st.Value.Render(fmt.Sprintf("%5.1f", v)))
}

func (a App) viewPanel() string {
	if a.err != nil {
		return a.styles.Error.Render(a.err.Error())
	}
	return Panel(a.result, a.styles, panelWidth)
}

func (a App) viewHelp() string {
	st := a.styles
	return st.KeyHints(
		"tab/v", "next function", "1-3", "pick function",
		"h/l ←/→", "x ∓0.1", "j/k ↓/↑", "y ∓0.1",
		"z/Z", "orbit", "x/X", "tilt", "+/-", "zoom",
		"t", "theme ("+a.theme.Name+")", "r", "reset", "q", "quit",
	)
}

// Slider draws a horizontal track with a knob at v.
func Slider(v, lo, hi float64, width int) string {
	if width < 2 {
		width = 2
	}
	pos := int(math.Round((v - lo) / (hi - lo) * float64(width-1)))
	if pos < 0 {
		pos = 0
	}
	if pos > width-1 {
		pos = width - 1
	}
	return strings.Repeat("─", pos) + "●" + strings.Repeat("─", width-1-pos)
}

// Frame renders a static scene and the calculations side by side. With
// color off the output is plain text.
func Frame(r *surface.Result, cam *Camera, th Theme, w, h int, color bool) string {
	scene := BuildScene(r)
	canvas := RenderScene(scene, cam, w, h)
	if !color {
		return canvas.String() + "\n" + strings.Join(PanelLines(r), "\n") + "\n"
	}
	plot := canvas.Render(th) + th.Legend(surface.Fixed2(scene.ZMin), surface.Fixed2(scene.ZMax))
	return lipgloss.JoinHorizontal(lipgloss.Top, Panel(r, NewStyles(th), panelWidth), "  ", plot) + "\n"
}

// Run starts the interactive view and blocks until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(NewApp(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
