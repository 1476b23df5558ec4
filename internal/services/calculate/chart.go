package calculate

import (
	"bytes"
	"context"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/moneyhiver/hiver/internal/calc"
)

// DividendChart renders the year-by-year cumulative dividend income as a
// PNG line chart. Returns raw PNG bytes.
func (s *Service) DividendChart(ctx context.Context, input calc.DividendInput) ([]byte, error) {
	points, err := calc.ProjectDividendSeries(input)
	if err != nil {
		return nil, err
	}
	if len(points) < 2 {
		return nil, fmt.Errorf("need at least 2 years to chart, got %d", len(points))
	}

	xValues := make([]float64, len(points))
	yValues := make([]float64, len(points))
	for i, p := range points {
		xValues[i] = float64(p.Year)
		yValues[i] = p.CumulativeIncome
	}

	incomeSeries := chart.ContinuousSeries{
		Name: "Cumulative Dividend Income",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2563eb"), // blue-600
			StrokeWidth: 2.5,
		},
		XValues: xValues,
		YValues: yValues,
	}

	graph := chart.Chart{
		Title:  "Dividend Income Projection",
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("Year %.0f", f)
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.2f %s", f, input.Currency)
				}
				return ""
			},
		},
		Series: []chart.Series{
			incomeSeries,
		},
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	s.logger.Debug().
		Int("years", len(points)).
		Int("bytes", buf.Len()).
		Msg("Rendered dividend chart")

	return buf.Bytes(), nil
}
