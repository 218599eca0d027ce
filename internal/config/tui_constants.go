package config

// Layout constants.
const (
	// CellWidth is the rendered width of one grid cell.
	CellWidth = 4

	// WeekColumnWidth is the width of the ISO week column.
	WeekColumnWidth = 4

	// FieldWidth is the width of a year/month/day selector.
	FieldWidth = 8

	// CompactModeThreshold drops the help line below this width.
	CompactModeThreshold = 36
)

// Grid navigation.
const (
	// DaysPerWeek is the vertical step in the grid.
	DaysPerWeek = 7
)

// PDF export.
const (
	// PDFCellHeight is the height of one grid row on the month sheet, in mm.
	PDFCellHeight = 22
)
