package booking

// Weekdays are the grid column headers, Sunday first.
var Weekdays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Cell is one square of the month grid.
type Cell struct {
	Day      int
	Date     Day
	Blank    bool // leading padding before day 1
	Disabled bool
	Today    bool
	Selected bool
}

// Selectable reports whether the cell accepts a click.
func (c Cell) Selectable() bool { return !c.Blank && !c.Disabled }

// MonthView is the derived calendar for one displayed month.
type MonthView struct {
	Cursor   Month
	Label    string
	Weekdays []string
	Leading  int
	Cells    []Cell
	Prev     Month
	Next     Month
}

// BuildMonth lays out cursor as a Sunday-first grid. Leading blank cells pad
// the first week up to day 1; days strictly before today are disabled.
func BuildMonth(cursor Month, today, selected Day) MonthView {
	leading := int(cursor.First().Weekday())
	days := cursor.Days()

	cells := make([]Cell, 0, leading+days)
	for i := 0; i < leading; i++ {
		cells = append(cells, Cell{Blank: true, Disabled: true})
	}
	for d := 1; d <= days; d++ {
		date := Day{Year: cursor.Year, Month: cursor.Month, Day: d}
		cell := Cell{Day: d, Date: date}
		if date.Before(today) {
			cell.Disabled = true
		} else {
			cell.Today = date == today
			cell.Selected = date == selected
		}
		cells = append(cells, cell)
	}

	return MonthView{
		Cursor:   cursor,
		Label:    cursor.Label(),
		Weekdays: Weekdays,
		Leading:  leading,
		Cells:    cells,
		Prev:     cursor.Prev(),
		Next:     cursor.Next(),
	}
}
