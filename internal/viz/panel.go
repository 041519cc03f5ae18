package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/gradviz/internal/surface"
)

const (
	GradientFormula = "∇f = [∂f/∂x, ∂f/∂y]"

	descentText  = "Gradient descent walks the other way, along -∇f, to find a minimum."
	criticalText = "∇f vanishes here: P is a critical point with no uphill direction."

	observationText = "The RED arrow represents the gradient vector. " +
		"Notice how it always points 'uphill' in the steepest direction from the red dot."
)

// GradientVector formats the gradient as shown on the panel.
func GradientVector(g surface.Gradient) string {
	return "v = " + g.String()
}

// PanelLines is the plain-text content of the calculations panel.
func PanelLines(r *surface.Result) []string {
	g := r.Gradient
	lines := []string{
		"Calculations",
		"Current Point: " + r.Point.String(),
		r.Variant.Equation(),
		"f(P) = " + surface.Fixed2(r.Z),
		"The Gradient Vector formula:",
		GradientFormula,
		"Calculated Gradient Vector at P:",
		GradientVector(g),
		fmt.Sprintf("|∇f| = %.2f", g.Magnitude()),
	}
	if g.IsCritical() {
		lines = append(lines, criticalText)
	} else {
		lines = append(lines, "Observation: "+observationText)
	}
	return append(lines, fmt.Sprintf("%s -∇f = %s", descentText, g.Descent()))
}

// Panel renders the calculations panel for r at the given width.
func Panel(r *surface.Result, st Styles, width int) string {
	g := r.Gradient
	inner := width - 6
	if inner < 20 {
		inner = 20
	}
	wrap := lipgloss.NewStyle().Width(inner)

	var b strings.Builder
	b.WriteString(st.Header.Render("Calculations") + "\n\n")
	b.WriteString(st.Info.Width(inner).Render("Current Point: "+r.Point.String()) + "\n\n")
	b.WriteString(st.Label.Render(r.Variant.Label()) + "\n")
	b.WriteString(st.Value.Render(r.Variant.Equation()) + "\n")
	b.WriteString(st.Label.Render("f(P) = ") + st.Value.Render(surface.Fixed2(r.Z)) + "\n\n")
	b.WriteString(st.Label.Render("The Gradient Vector formula:") + "\n")
	b.WriteString(st.Value.Render(GradientFormula) + "\n\n")
	b.WriteString(st.Label.Render("Calculated Gradient Vector at P:") + "\n")
	b.WriteString(st.Vector.Render(GradientVector(g)) + "\n")
	b.WriteString(st.Label.Render("|∇f| = ") + st.Value.Render(fmt.Sprintf("%.2f", g.Magnitude())) + "\n\n")

	note := "Observation:\n" + observationText
	if g.IsCritical() {
		note = criticalText
	}
	b.WriteString(st.Note.Width(inner).Render(note) + "\n\n")
	b.WriteString(wrap.Render(st.Hint.Render(descentText)))
	return st.Panel.Width(width).Render(b.String())
}
