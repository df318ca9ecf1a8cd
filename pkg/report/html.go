package report

import (
	"bytes"
	"html/template"
	"io"

	"github.com/ja7ad/govbench/pkg/consumption"
	"github.com/ja7ad/govbench/pkg/types"
	"github.com/ja7ad/govbench/pkg/util"
)

// WriteHTML renders rows and per-governor summaries as a standalone page.
func WriteHTML(w io.Writer, root string, rows []Row, sums []consumption.GovernorSummary) error {
	type view struct {
		Root        string
		Rows        []Row
		Summaries   []consumption.GovernorSummary
		Placeholder string
	}

	var buf bytes.Buffer
	data := view{
		Root:        root,
		Rows:        rows,
		Summaries:   sums,
		Placeholder: Placeholder,
	}
	if err := tpl.Execute(&buf, data); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

var tpl = template.Must(template.New("rep").Funcs(template.FuncMap{
	"sig":    func(v float64) string { return util.FmtSig(v, sigDigits) },
	"num":    util.FmtFloat,
	"joules": func(v float64) string { return types.Joules(v).Humanized() },
	"watts":  func(v float64) string { return types.Watts(v).Humanized() },
}).Parse(`<!doctype html>
<html lang="en"><meta charset="utf-8">
<title>Governor Benchmark Report</title>
<style>
body{font-family:system-ui,Segoe UI,Roboto,Helvetica,Arial,sans-serif;margin:20px}
h1,h2{margin:0 0 8px}
table{border-collapse:collapse;width:100%;font-size:14px;margin-bottom:14px}
th,td{border:1px solid #ddd;padding:6px 8px;text-align:right}
th:nth-child(-n+3),td:nth-child(-n+3){text-align:left}
.small{color:#555}
</style>

<h1>Governor Benchmark Report</h1>

<p class="small">
Source: <code>{{.Root}}</code> &nbsp;|&nbsp; Cells: {{len .Rows}}
</p>

<h2>Summary</h2>
<table>
<thead>
<tr>
<th>governor</th><th>cells</th><th>energy</th>
<th>P_soc</th><th>P_ca57</th><th>P_total</th><th>eff mean (mJ/cycle)</th><th>eff geomean (mJ/cycle)</th>
</tr>
</thead>
<tbody>
{{range .Summaries}}
<tr>
<td>{{.Governor}}</td>
<td>{{.Cells}}</td>
<td>{{joules .EnergyJ}}</td>
<td>{{watts .Averages.PSOC}}</td>
<td>{{watts .Averages.PCA57}}</td>
<td>{{watts .Averages.PTotal}}</td>
<td>{{sig .MeanEfficiency}}</td>
<td>{{sig .GeoMeanEfficiency}}</td>
</tr>
{{end}}
</tbody>
</table>

<h2>Cells</h2>
<table>
<thead>
<tr>
<th>governor</th><th>cpus</th><th>thrds</th>
<th>SOC, J</th><th>CA57, J</th><th>Total J</th><th>Eff J/cycle</th>
<th>SOC, W</th><th>CA57, W</th><th>cycles</th>
</tr>
</thead>
<tbody>
{{range .Rows}}
<tr>
<td>{{.Governor}}</td>
<td>{{.CPUs}}</td>
<td>{{.Threads}}</td>
<td>{{num .SOCEnergy}}</td>
<td>{{num .CA57Energy}}</td>
<td>{{sig .Total}}</td>
<td>{{if .Efficiency}}{{sig .Efficiency}}{{else}}{{$.Placeholder}}{{end}}</td>
<td>{{num .SOCPower}}</td>
<td>{{num .CA57Power}}</td>
<td>{{if .Cycles}}{{.Cycles}}{{else}}-{{end}}</td>
</tr>
{{end}}
</tbody>
</table>
</html>`))
