package nn

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// Summary writes a layer table for the model followed by its parameter total.
//
// One row per distinct layer: name and kind, the output shape of its first
// call in this model, its parameter count, and the layers it was called on.
func (m *Model) Summary(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Model: %q\n", m.name); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Layer (type)", "Output Shape", "Param #", "Connected to"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(m.summaryRows())
	table.Render()

	_, err := fmt.Fprintf(w, "Total params: %d\n", m.CountParams())
	return err
}

func (m *Model) summaryRows() [][]string {
	rows := make([][]string, 0, len(m.layers))
	for _, l := range m.layers {
		var shape string
		var inbound []string
		for _, n := range m.nodes {
			if n.layer != l {
				continue
			}
			if shape == "" {
				shape = n.shape.Batched()
			}
			for _, in := range n.inputs {
				inbound = append(inbound, in.layer.Name())
			}
		}
		rows = append(rows, []string{
			fmt.Sprintf("%s (%s)", l.Name(), l.Kind()),
			shape,
			strconv.Itoa(countParams(l.Parameters())),
			strings.Join(inbound, ", "),
		})
	}
	return rows
}
