// Package console renders decisions and batch summaries for the
// terminal. It consumes result fields only and never feeds back into
// the pipeline.
package console

import (
	"fmt"
	"strings"

	"github.com/danielpatrickdp/chaos-oracle/internal/oracle"
	"github.com/danielpatrickdp/chaos-oracle/internal/stats"
)

// #region renderer

// Renderer formats results for the terminal. With color disabled it
// falls back to plain text so output stays pipeable.
type Renderer struct {
	color bool
}

// NewRenderer creates a renderer.
func NewRenderer(color bool) *Renderer { return &Renderer{color: color} }

// #endregion renderer

// #region render

// Render draws one decision; verbose adds the pipeline details.
func (r *Renderer) Render(res oracle.Result, verbose bool) string {
	if !r.color {
		if verbose {
			return fmt.Sprintf("%s (raw value %.6f, %d chaos iterations, %d entropy sources)",
				res.Answer, res.RawValue, res.ChaosIterations, res.EntropySources)
		}
		return res.Answer
	}

	answer := noStyle.Render(res.Answer)
	if res.Decision == 1 {
		answer = yesStyle.Render(res.Answer)
	}

	lines := []string{titleStyle.Render("The oracle says"), "", answer}
	if verbose {
		lines = append(lines, "",
			labelStyle.Render(fmt.Sprintf("raw value        %.6f", res.RawValue)),
			labelStyle.Render(fmt.Sprintf("chaos iterations %d", res.ChaosIterations)),
			labelStyle.Render(fmt.Sprintf("entropy sources  %d", res.EntropySources)),
		)
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}

// RenderSummary draws the batch summary.
func (r *Renderer) RenderSummary(s stats.Summary) string {
	body := fmt.Sprintf("runs           %d\nyes            %d\nno             %d\nyes fraction   %.4f\nmean raw value %.4f",
		s.Total, s.Yes, s.No, s.YesFraction, s.MeanRawValue)
	if !r.color {
		return body
	}
	return boxStyle.Render(titleStyle.Render("Summary") + "\n\n" + body)
}

// #endregion render
