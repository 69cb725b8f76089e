package charts

const (
	TypePie = "pie"
	TypeBar = "bar"

	DefaultWidth  = 640
	DefaultHeight = 360
)

// Palette is the fixed 7-color theme applied to every chart.
var Palette = []string{
	"#4E79A7",
	"#F28E2B",
	"#E15759",
	"#76B7B2",
	"#59A14F",
	"#EDC948",
	"#B07AA1",
}
