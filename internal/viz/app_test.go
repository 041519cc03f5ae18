package viz

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/gradviz/internal/surface"
)

func newTestApp() App {
	return NewApp(Options{
		Variant:   surface.Paraboloid,
		Point:     surface.DefaultPoint(),
		Theme:     "viridis",
		Azimuth:   -0.6,
		Elevation: 0.5,
		Zoom:      1,
	})
}

func press(a App, keys ...string) App {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ := a.Update(msg)
		a = m.(App)
	}
	return a
}

func TestAppInitialState(t *testing.T) {
	a := newTestApp()
	r := a.Result()
	if r == nil {
		t.Fatal("no initial evaluation")
	}
	if r.Z != 2 || r.Gradient != (surface.Gradient{X: 2, Y: 2}) {
		t.Errorf("initial result z=%v grad=%v", r.Z, r.Gradient)
	}
}

func TestAppMovePoint(t *testing.T) {
	tests := []struct {
		keys []string
		want surface.Point
	}{
		{[]string{"l"}, surface.Point{X: 1.1, Y: 1}},
		{[]string{"h", "h"}, surface.Point{X: 0.8, Y: 1}},
		{[]string{"k"}, surface.Point{X: 1, Y: 1.1}},
		{[]string{"j", "j", "j"}, surface.Point{X: 1, Y: 0.7}},
		{strings.Split(strings.Repeat("l", 15), ""), surface.Point{X: 2, Y: 1}},
		{strings.Split(strings.Repeat("h", 40), ""), surface.Point{X: -2, Y: 1}},
	}
	for _, tt := range tests {
		a := press(newTestApp(), tt.keys...)
		if a.Point() != tt.want {
			t.Errorf("%v: point = %v, want %v", tt.keys, a.Point(), tt.want)
		}
		if a.Result().Point != a.Point() {
			t.Errorf("%v: result not re-evaluated", tt.keys)
		}
	}
}

func TestAppVariantCycle(t *testing.T) {
	a := newTestApp()
	want := []surface.Variant{surface.Saddle, surface.Wave, surface.Paraboloid}
	for _, v := range want {
		a = press(a, "tab")
		if a.Variant() != v || a.Result().Variant != v {
			t.Fatalf("variant = %v, want %v", a.Variant(), v)
		}
	}
	a = press(a, "3")
	if a.Variant() != surface.Wave {
		t.Errorf("key 3 selected %v", a.Variant())
	}
	if a.Point() != surface.DefaultPoint() {
		t.Error("switching functions moved P")
	}
}

func TestAppSaddleAfterSwitch(t *testing.T) {
	a := press(newTestApp(), "v")
	if g := a.Result().Gradient; g != (surface.Gradient{X: 2, Y: -2}) {
		t.Errorf("saddle gradient at (1, 1) = %v", g)
	}
}

func TestAppReset(t *testing.T) {
	a := press(newTestApp(), "tab", "l", "l", "k", "z", "+")
	a = press(a, "r")
	if a.Variant() != surface.Paraboloid || a.Point() != surface.DefaultPoint() {
		t.Errorf("reset left %v at %v", a.Variant(), a.Point())
	}
	cam := a.Camera()
	if cam.Azimuth != -0.6 || cam.Zoom != 1 {
		t.Errorf("reset camera = %+v", cam)
	}
	if !a.Settled() {
		t.Error("camera should be settled after reset")
	}
}

func TestAppThemeCycle(t *testing.T) {
	a := press(newTestApp(), "t")
	if a.Theme().Name != Themes[1].Name {
		t.Errorf("theme = %s, want %s", a.Theme().Name, Themes[1].Name)
	}
}

func TestAppCameraEases(t *testing.T) {
	a := press(newTestApp(), "z")
	if a.Settled() {
		t.Fatal("orbit key should move the camera target")
	}
	start := a.Camera().Azimuth
	for i := 0; i < 10*frameRate && !a.Settled(); i++ {
		m, _ := a.Update(TickMsg{})
		a = m.(App)
	}
	az := a.Camera().Azimuth
	if az <= start || az-(-0.6+orbitStep) > 1e-3 || az-(-0.6+orbitStep) < -1e-3 {
		t.Errorf("azimuth = %v, want about %v", az, -0.6+orbitStep)
	}
}

func TestAppQuit(t *testing.T) {
	_, cmd := newTestApp().Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestAppView(t *testing.T) {
	m, _ := newTestApp().Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	view := m.View()
	for _, w := range []string{"GRADVIZ", "Paraboloid (Simple): x^2 + y^2", "v = [2.00, 2.00]"} {
		if !strings.Contains(view, w) {
			t.Errorf("view missing %q", w)
		}
	}
}

func TestSlider(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{-2, "●────"},
		{0, "──●──"},
		{2, "────●"},
		{9, "────●"},
	}
	for _, tt := range tests {
		if got := Slider(tt.v, -2, 2, 5); got != tt.want {
			t.Errorf("Slider(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestFramePlain(t *testing.T) {
	r := evaluate(t, surface.Wave, 0, 0)
	out := Frame(r, NewCamera(-0.6, 0.5, 1), ThemeViridis, 40, 12, false)
	if !strings.Contains(out, "v = [1.00, 0.00]") {
		t.Errorf("frame missing gradient:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("plain frame contains escape codes")
	}
}
