package status

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stefan-k/cobald/internal/application"
)

type RenderOptions struct {
	Now    time.Time
	MaxAge time.Duration
}

func renderView(report application.StatusReport, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Negotiator Concurrency Limits"),
		s.header.Render(headerLine(report, opts)),
	}

	if len(report.Resources) == 0 {
		lines = append(lines, s.empty.Render("No concurrency limits reported."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	width := 0
	for _, resource := range report.Resources {
		width = max(width, len(resource.Resource))
	}

	rows := make([]string, 0, len(report.Resources))
	for _, resource := range report.Resources {
		rows = append(rows, resourceLine(resource, width, s))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
	lines = append(lines, s.section.Render(totalLine(report.Total, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func headerLine(report application.StatusReport, opts RenderOptions) string {
	pool := report.Pool
	if pool == "" {
		pool = "local"
	}

	parts := []string{
		fmt.Sprintf("pool: %s", pool),
		fmt.Sprintf("resources: %d", len(report.Resources)),
	}
	if !opts.Now.IsZero() {
		parts = append(parts, fmt.Sprintf("as of %s", opts.Now.Format("15:04:05")))
	}
	if opts.MaxAge > 0 {
		parts = append(parts, fmt.Sprintf("max age %s", opts.MaxAge))
	}

	return strings.Join(parts, "  ")
}

func resourceLine(resource application.ResourceStatus, width int, s styles) string {
	label := s.resource.Render(fmt.Sprintf("%-*s", width, resource.Resource))

	if resource.Unlimited {
		return lipgloss.JoinHorizontal(
			lipgloss.Top,
			label,
			" ",
			s.detail.Render(fmt.Sprintf("unlimited (%s running)", formatValue(resource.Usage))),
		)
	}

	usedPercent := resource.Utilisation * 100
	percentStyle := lipgloss.NewStyle().Foreground(utilisationColor(resource.Utilisation))
	line := lipgloss.JoinHorizontal(
		lipgloss.Top,
		label,
		" ",
		renderProgressBar(usedPercent, 24, s),
		" ",
		s.limitMeta.Render(fmt.Sprintf("%s/%s", formatValue(resource.Usage), formatValue(resource.Limit))),
		" ",
		percentStyle.Render(fmt.Sprintf("(%.0f%% used)", usedPercent)),
	)

	if resource.Usage > resource.Limit {
		line += " " + s.warning.Render("[over limit]")
	}

	return line
}

func totalLine(total application.TotalStatus, s styles) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.limitKey.Render("total:"),
		" ",
		s.detail.Render(fmt.Sprintf(
			"supply %s, demand %s, %.0f%% utilised, %.0f%% allocated",
			formatValue(total.Supply),
			formatValue(total.Demand),
			clampPercent(total.Utilisation*100),
			clampPercent(total.Allocation*100),
		)),
	)
}

func renderProgressBar(usedPercent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	used := clampPercent(usedPercent)
	filled := int(math.Round(float64(width) * used / 100.0))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	empty := width - filled
	fillSegment := s.barFill.Render(strings.Repeat("=", filled))
	emptySegment := s.barEmpty.Render(strings.Repeat("-", empty))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		fillSegment,
		emptySegment,
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// formatValue drops the fraction for whole numbers, which is how limits are enforced.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func utilisationColor(fraction float64) lipgloss.Color {
	switch {
	case fraction >= 1:
		return lipgloss.Color("203")
	case fraction >= 0.8:
		return lipgloss.Color("214")
	default:
		return interpolateColor(fraction, 0, 0.8)
	}
}

func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	// ANSI 256 greyscale ramp from faded (240) to bright white (255).
	baseColor := 240.0
	targetColor := 255.0

	colorCode := int(baseColor + (targetColor-baseColor)*normalized)
	return lipgloss.Color(fmt.Sprintf("%d", colorCode))
}
