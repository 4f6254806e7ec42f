package train

import (
	"fmt"
	"io"
	"strconv"

	"github.com/born-ml/linreg/internal/chart"
)

// Chart geometry of the prediction plot.
const (
	ChartWidth  = 120
	ChartHeight = 40
	ChartXMin   = 0.0
	ChartXMax   = 100.0
)

// Reporter writes the program's user-facing output.
type Reporter struct {
	w io.Writer
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Epoch writes a progress line such as "Epoch 100: Loss = 3978.78".
func (r *Reporter) Epoch(epoch int, loss float32) error {
	_, err := fmt.Fprintf(r.w, "Epoch %d: Loss = %s\n", epoch, formatLoss(loss))
	return err
}

// Predictions writes a blank line, the "Final Model Predictions:" header
// and a line chart of points.
func (r *Reporter) Predictions(points []chart.Point) error {
	if _, err := io.WriteString(r.w, "\nFinal Model Predictions:\n"); err != nil {
		return err
	}
	return chart.New(ChartWidth, ChartHeight, ChartXMin, ChartXMax).LinePlot(points).Render(r.w)
}

// formatLoss prints the shortest decimal that round-trips the float32,
// without exponent notation.
func formatLoss(loss float32) string {
	return strconv.FormatFloat(float64(loss), 'f', -1, 32)
}
