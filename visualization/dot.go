// Package visualization renders traffic light phase graphs
package visualization

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/anggasct/trafficlight"
)

// TransitionCounter reports how often a transition was observed.
// observers.MetricsObserver satisfies it.
type TransitionCounter interface {
	TransitionCount(from, to trafficlight.Phase) int
}

// DOTGenerator generates Graphviz DOT format representations of a light
type DOTGenerator struct {
	light   *trafficlight.TrafficLight
	options DOTOptions
}

// DOTOptions configures the DOT generation
type DOTOptions struct {
	ShowCycleRange bool
	RankDirection  string // "TB", "LR", "BT", "RL"
	NodeShape      string

	// Counter adds observed transition counts to edge labels when set
	Counter TransitionCounter
}

// DefaultDOTOptions returns sensible default options for DOT generation
func DefaultDOTOptions() DOTOptions {
	return DOTOptions{
		ShowCycleRange: true,
		RankDirection:  "LR",
		NodeShape:      "circle",
	}
}

// NewDOTGenerator creates a new DOT generator for the given light
func NewDOTGenerator(light *trafficlight.TrafficLight, options ...DOTOptions) *DOTGenerator {
	opts := DefaultDOTOptions()
	if len(options) > 0 {
		opts = options[0]
	}

	return &DOTGenerator{
		light:   light,
		options: opts,
	}
}

// Generate creates a DOT representation of the light's phase cycle
func (g *DOTGenerator) Generate() (string, error) {
	if g.light == nil {
		return "", trafficlight.NewConfigurationError("DOTGenerator", "no light to render")
	}

	var dot strings.Builder

	// DOT header
	dot.WriteString("digraph TrafficLight {\n")
	dot.WriteString(fmt.Sprintf("  rankdir=%s;\n", g.options.RankDirection))
	dot.WriteString(fmt.Sprintf("  label=\"light %s\";\n", g.light.ID()))
	dot.WriteString("  edge [fontsize=10];\n\n")

	g.generatePhases(&dot)

	if err := g.generateTransitions(&dot); err != nil {
		return "", fmt.Errorf("failed to generate transitions: %w", err)
	}

	// DOT footer
	dot.WriteString("}\n")

	return dot.String(), nil
}

// generatePhases generates DOT nodes for all phases
func (g *DOTGenerator) generatePhases(dot *strings.Builder) {
	current := g.light.CurrentPhase()

	dot.WriteString("  // Phases\n")
	for i, phase := range trafficlight.Phases() {
		label := phase.String()
		if i == 0 {
			label += "\\n(initial)"
		}
		peripheries := 1
		if phase == current {
			peripheries = 2
		}
		dot.WriteString(fmt.Sprintf("  \"%s\" [shape=%s style=\"filled\" fillcolor=%s peripheries=%d label=\"%s\"];\n",
			phase, g.options.NodeShape, fillColor(phase), peripheries, label))
	}
	dot.WriteString("\n")
}

// generateTransitions generates DOT edges for all transitions
func (g *DOTGenerator) generateTransitions(dot *strings.Builder) error {
	dot.WriteString("  // Transitions\n")

	min, max := g.light.CycleRange()
	for _, from := range trafficlight.Phases() {
		to, err := from.Next()
		if err != nil {
			return err
		}

		var labels []string
		if g.options.ShowCycleRange {
			labels = append(labels, fmt.Sprintf("after %s-%s", formatDuration(min), formatDuration(max)))
		}
		if g.options.Counter != nil {
			labels = append(labels, fmt.Sprintf("x%d", g.options.Counter.TransitionCount(from, to)))
		}

		if len(labels) == 0 {
			dot.WriteString(fmt.Sprintf("  \"%s\" -> \"%s\";\n", from, to))
		} else {
			dot.WriteString(fmt.Sprintf("  \"%s\" -> \"%s\" [label=\"%s\"];\n", from, to, strings.Join(labels, "\\n")))
		}
	}

	return nil
}

func fillColor(phase trafficlight.Phase) string {
	switch phase {
	case trafficlight.Green:
		return "palegreen"
	case trafficlight.Red:
		return "lightcoral"
	default:
		return "lightgray"
	}
}

func formatDuration(d time.Duration) string {
	if d%time.Second == 0 {
		return fmt.Sprintf("%ds", int64(d/time.Second))
	}
	return d.String()
}

// GenerateToFile writes the DOT representation to a file
func (g *DOTGenerator) GenerateToFile(filename string) error {
	content, err := g.Generate()
	if err != nil {
		return err
	}

	return os.WriteFile(filename, []byte(content), 0644)
}

// GenerateSVG converts the DOT representation to SVG by calling Graphviz
func (g *DOTGenerator) GenerateSVG() (string, error) {
	dotContent, err := g.Generate()
	if err != nil {
		return "", err
	}

	cmd := exec.Command("dot", "-Tsvg")
	cmd.Stdin = strings.NewReader(dotContent)

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to execute dot command: %w (make sure Graphviz is installed)", err)
	}

	return out.String(), nil
}
