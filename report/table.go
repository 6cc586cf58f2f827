// SPDX-License-Identifier: MIT

package report

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/graphz/core"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// DetailsTable renders the vertex detail view as a bordered table.
func DetailsTable[K comparable, V any](g *core.Graph[K, V]) string {
	t := newTable("ID", "Value", "Neighbors")
	for _, d := range g.Details() {
		t.Row(fmt.Sprint(d.ID), fmt.Sprint(d.Value), formatNeighbors(d.Neighbors))
	}

	return t.String()
}

// EdgesTable renders the edge catalog as a bordered table.
func EdgesTable[K comparable, V any](g *core.Graph[K, V]) string {
	t := newTable("A", "B", "Cost")
	for _, e := range g.Edges() {
		t.Row(fmt.Sprint(e.A), fmt.Sprint(e.B), FormatCost(e.Cost))
	}

	return t.String()
}
