package render

import (
	"bytes"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/swath/sw"
)

// Summary renders a compact table of res: one row per alignment with its
// ordinal, score and the 1-based ranges it covers on both sequences, plus
// a total in the footer. A truncated result gets an explicit notice line,
// so a capped enumeration is never mistaken for a complete one.
func Summary(w io.Writer, res *sw.Result) error {
	if res == nil {
		return ErrNilResult
	}

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"#", "Score", "Query", "Subject"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	for _, a := range res.Alignments {
		table.Append([]string{
			fmt.Sprintf("%d", a.Ordinal),
			fmt.Sprintf("%g", a.Score),
			fmt.Sprintf("%d-%d", a.QueryStart, a.QueryEnd),
			fmt.Sprintf("%d-%d", a.SubjectStart, a.SubjectEnd),
		})
	}
	table.SetFooter([]string{
		"Total",
		fmt.Sprintf("%d", len(res.Alignments)),
		"",
		"",
	})
	table.Render()

	if res.Truncated {
		fmt.Fprintf(&buf, "\ntruncated: only the first %d co-optimal alignments are listed\n", len(res.Alignments))
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
