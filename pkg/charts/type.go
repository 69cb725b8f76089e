package charts

import pkghttp "report-srv/pkg/http"

// Config holds the chart service configuration.
type Config struct {
	BaseURL string
	Width   int
	Height  int
}

// Spec is the declarative chart specification accepted by the rendering
// service.
type Spec struct {
	Type     string    `json:"type"`
	Title    string    `json:"title"`
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
	XLabel   string    `json:"x_label,omitempty"`
	YLabel   string    `json:"y_label,omitempty"`
	Colors   []string  `json:"colors"`
}

// Dataset is one labeled series.
type Dataset struct {
	Label  string  `json:"label"`
	Values []int64 `json:"values"`
}

type chartsImpl struct {
	config     Config
	httpClient pkghttp.IClient
}
