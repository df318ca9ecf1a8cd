package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ja7ad/govbench/pkg/consumption"
	"github.com/ja7ad/govbench/pkg/types"
	"github.com/ja7ad/govbench/pkg/util"
)

// PrintSummary writes one line per governor with total energy, mean power
// and efficiency statistics.
func PrintSummary(w io.Writer, sums []consumption.GovernorSummary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "GOVERNOR\tCELLS\tENERGY\tP_soc\tP_ca57\tP_total\tEFF mean\tEFF geomean\tBEST")
	fmt.Fprintln(tw, "--------\t-----\t------\t-----\t------\t-------\t--------\t-----------\t----")
	for _, s := range sums {
		best := "-"
		if s.HasEfficiency {
			best = fmt.Sprintf("%s c%s", s.BestEfficiency.CPUSet, s.BestEfficiency.Threads)
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			s.Governor, s.Cells, types.Joules(s.EnergyJ).Humanized(),
			types.Watts(s.Averages.PSOC).Humanized(),
			types.Watts(s.Averages.PCA57).Humanized(),
			types.Watts(s.Averages.PTotal).Humanized(),
			util.FmtSig(s.MeanEfficiency, sigDigits),
			util.FmtSig(s.GeoMeanEfficiency, sigDigits),
			best,
		)
	}
	return tw.Flush()
}
