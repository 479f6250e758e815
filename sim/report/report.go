// Package report renders simulation results as plain-text or Markdown tables.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/cpu-sched-sim/cpu-sched-sim/sim"
	"github.com/cpu-sched-sim/cpu-sched-sim/sim/backend"
)

// IdleLabel marks CPU idle gaps in a Gantt chart.
const IdleLabel = "idle"

var metricsHeader = []string{"ID", "Name", "Start", "Finish", "Turnaround", "Weighted", "Response", "Waiting"}

// ganttSlice is one bar of the Gantt chart; idle gaps get their own bar.
type ganttSlice struct {
	label      string
	start, end int64
}

func ganttSlices(timeline []sim.TimelineEntry) []ganttSlice {
	slices := make([]ganttSlice, 0, len(timeline))
	var clock int64
	for _, e := range timeline {
		if e.Start > clock {
			slices = append(slices, ganttSlice{label: IdleLabel, start: clock, end: e.Start})
		}
		slices = append(slices, ganttSlice{label: e.ProcessID, start: e.Start, end: e.End})
		clock = e.End
	}
	return slices
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, timeline []sim.TimelineEntry) {
	slices := ganttSlices(timeline)
	_, _ = fmt.Fprint(w, "|")
	for _, s := range slices {
		padding := strings.Repeat(" ", max(8-len(s.label), 0)/2)
		_, _ = fmt.Fprint(w, padding, s.label, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, s := range slices {
		_, _ = fmt.Fprint(w, s.start, "\t")
		if i == len(slices)-1 {
			_, _ = fmt.Fprint(w, s.end)
		}
	}
	_, _ = fmt.Fprintln(w)
}

func metricRows(res *sim.Result) [][]string {
	rows := make([][]string, len(res.Metrics))
	for i, m := range res.Metrics {
		rows[i] = []string{
			m.ID,
			m.Name,
			strconv.FormatInt(m.StartTime, 10),
			strconv.FormatInt(m.FinishTime, 10),
			strconv.FormatInt(m.TurnaroundTime, 10),
			fmt.Sprintf("%.2f", m.WeightedTurnaroundTime),
			strconv.FormatInt(m.ResponseTime, 10),
			strconv.FormatInt(m.WaitingTime, 10),
		}
	}
	return rows
}

func turnaroundPercentiles(res *sim.Result) (p50, p90 float64) {
	values := make([]int64, len(res.Metrics))
	for i, m := range res.Metrics {
		values[i] = m.TurnaroundTime
	}
	return sim.CalculatePercentile(values, 50), sim.CalculatePercentile(values, 90)
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader(header)
	return table
}

// WriteText writes a titled Gantt chart, the per-process metrics table with an
// averages footer, and a run summary.
func WriteText(w io.Writer, res *sim.Result) error {
	outputTitle(w, sim.AlgorithmLabel(res.Algorithm))

	_, _ = fmt.Fprintln(w, "Gantt schedule")
	outputGantt(w, res.Timeline)
	_, _ = fmt.Fprintln(w)

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := newTable(w, metricsHeader)
	table.AppendBulk(metricRows(res))
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", res.AverageTurnaroundTime),
		fmt.Sprintf("Average\n%.2f", res.AverageWeightedTurnaroundTime),
		fmt.Sprintf("Average\n%.2f", res.AverageResponseTime),
		fmt.Sprintf("Average\n%.2f", res.AverageWaitingTime)})
	table.Render()

	p50, p90 := turnaroundPercentiles(res)
	_, err := fmt.Fprintf(w, "\nTotal time: %s  Idle: %s  Throughput: %.3f/t  CPU utilization: %.1f%%\nTurnaround p50: %.2f  p90: %.2f\n",
		humanize.Comma(res.TotalTime), humanize.Comma(res.IdleTime), res.Throughput, res.CPUUtilization*100, p50, p90)
	return err
}

func markdownTable(w io.Writer, header []string, rows [][]string) {
	table := newTable(w, header)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.AppendBulk(rows)
	table.Render()
}

// WriteMarkdown writes the same content as WriteText as GitHub-flavored Markdown.
func WriteMarkdown(w io.Writer, res *sim.Result) error {
	_, _ = fmt.Fprintf(w, "## %s\n\n", sim.AlgorithmLabel(res.Algorithm))

	_, _ = fmt.Fprintln(w, "```")
	outputGantt(w, res.Timeline)
	_, _ = fmt.Fprint(w, "```\n\n")

	markdownTable(w, metricsHeader, metricRows(res))

	p50, p90 := turnaroundPercentiles(res)
	_, err := fmt.Fprintf(w, "\n"+
		"- Average turnaround: %.2f\n"+
		"- Average weighted turnaround: %.2f\n"+
		"- Average response: %.2f\n"+
		"- Average waiting: %.2f\n"+
		"- Turnaround p50 / p90: %.2f / %.2f\n"+
		"- Throughput: %.3f per tick\n"+
		"- CPU utilization: %.1f%%\n"+
		"- Idle time: %d of %d\n",
		res.AverageTurnaroundTime, res.AverageWeightedTurnaroundTime, res.AverageResponseTime,
		res.AverageWaitingTime, p50, p90, res.Throughput, res.CPUUtilization*100, res.IdleTime, res.TotalTime)
	return err
}

var comparisonHeader = []string{"Algorithm", "Backend", "Avg turnaround", "Avg weighted", "Avg response", "Avg waiting", "Throughput", "Utilization", "Total time"}

func comparisonRows(responses []backend.Response) [][]string {
	rows := make([][]string, 0, len(responses))
	for _, r := range responses {
		if r.Result == nil {
			continue
		}
		res := r.Result
		rows = append(rows, []string{
			sim.AlgorithmLabel(res.Algorithm),
			r.Backend,
			fmt.Sprintf("%.2f", res.AverageTurnaroundTime),
			fmt.Sprintf("%.2f", res.AverageWeightedTurnaroundTime),
			fmt.Sprintf("%.2f", res.AverageResponseTime),
			fmt.Sprintf("%.2f", res.AverageWaitingTime),
			fmt.Sprintf("%.3f", res.Throughput),
			fmt.Sprintf("%.1f%%", res.CPUUtilization*100),
			humanize.Comma(res.TotalTime),
		})
	}
	return rows
}

// WriteComparison writes one row of aggregates per response, side by side.
// markdown selects Markdown borders.
func WriteComparison(w io.Writer, responses []backend.Response, markdown bool) error {
	rows := comparisonRows(responses)
	if markdown {
		markdownTable(w, comparisonHeader, rows)
		return nil
	}
	table := newTable(w, comparisonHeader)
	table.AppendBulk(rows)
	table.Render()
	return nil
}
