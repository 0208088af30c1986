package tuiapp

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/micutio/navkit/internal"
)

// Error types

var errColumnMismatch = errors.New("number of columns does not match number of format columns")

// Automated Table Formatting

type tableColumnSizingOption int

const (
	// fixed column width, regardless of table width.
	fixed tableColumnSizingOption = iota
	// relative column with, given as percentage of the total table width.
	relative
	// fill columns receive any remaining table space, evenly distributed.
	fill
)

type columnFormat struct {
	option tableColumnSizingOption
	value  float32
}

type tableFormat struct {
	columnSizes        []columnFormat
	fixedWidth         int     // fixedWidth is the total space taken up by all fixed-width columns.
	fillWidthCount     int     // fillWidthCount indicates how many columns have fill width.
	totalRelativeWidth float32 // how much width is taken by relative columns.
}

func newTableFormat(items ...columnFormat) tableFormat {
	var totalRelativeWidth float32
	fixedWidth := 0
	fillWidthCount := 0

	for _, item := range items {
		switch item.option {
		case relative:
			totalRelativeWidth += item.value
		case fixed:
			fixedWidth += int(item.value)
		case fill:
			fillWidthCount++
		}
	}

	return tableFormat{
		columnSizes:        items,
		fixedWidth:         fixedWidth,
		fillWidthCount:     fillWidthCount,
		totalRelativeWidth: totalRelativeWidth,
	}
}

// Integrated Formatted Table Type

type autoFormatTable struct {
	table  table.Model
	format tableFormat
}

// resize distributes newWidth over the columns. One cell of padding per column and the border
// are taken off first.
func (aft *autoFormatTable) resize(newWidth int) error {
	columns := aft.table.Columns()
	columnCount := len(columns)
	if columnCount != len(aft.format.columnSizes) {
		return fmt.Errorf(
			"table.resize: %w -> %d in table, %d in tableFormat",
			errColumnMismatch,
			columnCount,
			len(aft.format.columnSizes))
	}

	adjustedWidth := max(newWidth-1-columnCount, 0)
	aft.table.SetWidth(adjustedWidth)
	totalRelativeWidth := int(float32(adjustedWidth) * aft.format.totalRelativeWidth)
	totalFillWidth := adjustedWidth - totalRelativeWidth - aft.format.fixedWidth

	fillPerColumn := 0
	if aft.format.fillWidthCount > 0 {
		fillPerColumn = max(totalFillWidth/aft.format.fillWidthCount, 0)
	}

	resized := make([]table.Column, columnCount)
	copy(resized, columns)

	for idx := 0; idx < columnCount; idx++ {
		format := aft.format.columnSizes[idx]
		switch format.option {
		case fixed:
			resized[idx].Width = int(format.value)
		case relative:
			resized[idx].Width = int(format.value * float32(adjustedWidth))
		case fill:
			resized[idx].Width = fillPerColumn
		}
	}

	aft.table.SetColumns(resized)

	return nil
}

func (aft *autoFormatTable) SetHeight(height int) {
	aft.table.SetHeight(height)
}

func newRouteDescriptionTable(tableStyle table.Styles) autoFormatTable {
	indexLen := 4
	iconLen := 3
	distanceLen := 9
	initialTableHeight := 10
	format := newTableFormat(
		columnFormat{fixed, float32(indexLen)},
		columnFormat{fixed, float32(iconLen)},
		columnFormat{fill, 0.0},
		columnFormat{fixed, float32(distanceLen)},
	)

	routeTbl := table.New(
		// table header
		table.WithColumns(
			[]table.Column{
				{Title: "#", Width: indexLen},
				{Title: "", Width: iconLen},
				{Title: "Instruction", Width: 0},
				{Title: "Distance", Width: distanceLen},
			},
		),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
		table.WithHeight(initialTableHeight),
		table.WithStyles(tableStyle),
	)

	return autoFormatTable{
		table:  routeTbl,
		format: format,
	}
}

func newRoadTable(tableStyle table.Styles) autoFormatTable {
	distanceLen := 10
	roadNameLen := 12
	initialTableHeight := 5
	format := newTableFormat(
		columnFormat{fixed, float32(distanceLen)},
		columnFormat{fill, float32(roadNameLen)},
	)

	roadTbl := table.New(
		// table header
		table.WithColumns(
			[]table.Column{
				{Title: "Meters", Width: distanceLen},
				{Title: "Road", Width: roadNameLen},
			},
		),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
		table.WithHeight(initialTableHeight),
		table.WithStyles(tableStyle),
	)

	return autoFormatTable{
		table:  roadTbl,
		format: format,
	}
}

func itemToRow(item internal.RouteDescriptionItem) table.Row {
	return table.Row{
		fmt.Sprintf("%3d", item.Index+1),
		glyph(item.Icon),
		item.Instruction,
		item.Distance,
	}
}

func roadShareToRow(share internal.RoadShare) table.Row {
	return table.Row{fmt.Sprintf("%9d", share.Meters), share.Road}
}
