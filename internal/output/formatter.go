package output

import (
	"io"

	"github.com/vanboefer/lint-ii/analysis"
)

// Formatter defines the interface for outputting readability reports.
type Formatter interface {
	Format(w io.Writer, report analysis.Report) error
}
