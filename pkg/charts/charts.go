package charts

import (
	"context"
	"fmt"
	"net/http"
)

// BuildPieSpec builds a pie chart spec from one labeled series.
func BuildPieSpec(title string, labels []string, values []int64) Spec {
	return Spec{
		Type:   TypePie,
		Title:  title,
		Labels: labels,
		Datasets: []Dataset{
			{Label: title, Values: values},
		},
		Colors: Palette,
	}
}

// BuildBarSpec builds a bar chart spec. Multiple datasets render as grouped
// bars (used for cross-tabulated rankings).
func BuildBarSpec(title, xLabel, yLabel string, labels []string, datasets []Dataset) Spec {
	return Spec{
		Type:     TypeBar,
		Title:    title,
		Labels:   labels,
		Datasets: datasets,
		XLabel:   xLabel,
		YLabel:   yLabel,
		Colors:   Palette,
	}
}

// Render posts the spec to the chart service and returns the image bytes.
func (c *chartsImpl) Render(ctx context.Context, spec Spec) ([]byte, error) {
	width := c.config.Width
	if width <= 0 {
		width = DefaultWidth
	}
	height := c.config.Height
	if height <= 0 {
		height = DefaultHeight
	}

	payload := map[string]interface{}{
		"chart":  spec,
		"width":  width,
		"height": height,
		"format": "png",
	}

	body, status, err := c.httpClient.Post(ctx, c.config.BaseURL+"/chart", payload, nil)
	if err != nil {
		return nil, fmt.Errorf("chart render request failed: %w", err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("chart service returned status %d", status)
	}
	return body, nil
}
