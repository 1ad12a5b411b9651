package walk

import (
	"docwalk/host"
	"docwalk/markup"
)

type tableInfo struct {
	rowCount     int
	columnCount  int
	nestingLevel int
}

// fetchTableInfo reads table geometry. Tables with disabled borders are
// layout tables and are skipped unless explicitly included.
func fetchTableInfo(table host.Table, includeLayoutTables bool) (tableInfo, bool) {
	var info tableInfo
	if !includeLayoutTables {
		if enabled, err := table.BordersEnabled(); err == nil && !enabled {
			return info, false
		}
	}
	if v, err := table.RowCount(); err == nil {
		info.rowCount = v
	}
	if v, err := table.ColumnCount(); err == nil {
		info.columnCount = v
	}
	if v, err := table.NestingLevel(); err == nil {
		info.nestingLevel = v
	}
	return info, true
}

// openTableTags opens table and cell scopes when the range sits inside a
// table. Returns the number of control tags opened (0 or 2).
func openTableTags(rng host.Range, includeLayoutTables bool, startOffset, endOffset int, b *markup.Builder) int {
	tables, err := rng.Tables()
	if err != nil || tables == nil {
		return 0
	}
	table, err := tables.Item(1)
	if err != nil || table == nil {
		return 0
	}
	info, ok := fetchTableInfo(table, includeLayoutTables)
	if !ok {
		return 0
	}

	var (
		inTableCell            bool
		rowNumber, colNumber   int
		startOfCell, endOfCell bool
	)
	if cells, err := rng.Cells(); err == nil && cells != nil {
		if cell, err := cells.Item(1); err == nil && cell != nil {
			if v, err := cell.RowIndex(); err == nil {
				rowNumber = v
			}
			if v, err := cell.ColumnIndex(); err == nil {
				colNumber = v
			}
			if cellRange, err := cell.Range(); err == nil && cellRange != nil {
				if v, err := cellRange.Start(); err == nil && v >= startOffset {
					startOfCell = true
				}
				if v, err := cellRange.End(); err == nil && v <= endOffset {
					endOfCell = true
				}
			}
			inTableCell = true
		}
	}
	if !inTableCell {
		// A collapsed range at a cell boundary has no cells collection;
		// fall back to positional queries.
		if v, err := rng.Information(host.InfoStartOfRangeRowNumber); err == nil && v > 0 {
			rowNumber = v
			inTableCell = true
		}
		if v, err := rng.Information(host.InfoStartOfRangeColumnNumb); err == nil && v > 0 {
			colNumber = v
			inTableCell = true
		}
	}
	if !inTableCell {
		return 0
	}

	tableAttrs := []markup.Attr{
		{Key: "role", Value: "table"},
		markup.Int("table-id", 1),
		markup.Int("table-rowcount", info.rowCount),
		markup.Int("table-columncount", info.columnCount),
		markup.Int("level", info.nestingLevel),
	}
	if title, err := table.Title(); err == nil && title != "" {
		tableAttrs = append(tableAttrs, markup.Flag("alwaysReportName"), markup.Attr{Key: "name", Value: title})
	}
	if descr, err := table.Description(); err == nil && descr != "" {
		tableAttrs = append(tableAttrs, markup.Attr{Key: "longdescription", Value: descr})
	}
	if tableRange, err := table.Range(); err == nil && tableRange != nil {
		if v, err := tableRange.Start(); err == nil && v >= startOffset {
			tableAttrs = append(tableAttrs, markup.Flag("_startOfNode"))
		}
		if v, err := tableRange.End(); err == nil && v <= endOffset {
			tableAttrs = append(tableAttrs, markup.Flag("_endOfNode"))
		}
	}
	b.OpenControl(tableAttrs...)

	cellAttrs := []markup.Attr{
		{Key: "role", Value: "tableCell"},
		markup.Int("table-id", 1),
		markup.Int("table-rownumber", rowNumber),
		markup.Int("table-columnnumber", colNumber),
	}
	if startOfCell {
		cellAttrs = append(cellAttrs, markup.Flag("_startOfNode"))
	}
	if endOfCell {
		cellAttrs = append(cellAttrs, markup.Flag("_endOfNode"))
	}
	b.OpenControl(cellAttrs...)
	return 2
}
