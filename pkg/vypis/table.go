package vypis

// Logical table names. These key the extracted table-set and double as
// the default sheet names in spreadsheet output.
const (
	TableEntity     = "zakladni_udaje"
	TableBoard      = "statutarni_organ"
	TableCommittee  = "dozorci_rada"
	TableActivities = "predmet_podnikani"
)

// TableNames lists the logical table names in output order.
var TableNames = []string{TableEntity, TableBoard, TableCommittee, TableActivities}

// Table is a fixed-column, row-ordered extraction result. Every row has
// exactly len(Columns) cells; absent fields hold the Missing marker. A
// table with zero rows has no columns either.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Empty reports whether the table has no rows.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// TableSet is the composed result of one extraction run: four
// independent tables keyed by the fixed logical names. Any subset of
// them may be empty.
type TableSet struct {
	Entity     Table
	Board      Table
	Committee  Table
	Activities Table
}

// NamedTable pairs a table with its logical name.
type NamedTable struct {
	Name  string
	Table Table
}

// Sheets returns the four tables in their fixed output order.
func (ts TableSet) Sheets() []NamedTable {
	return []NamedTable{
		{TableEntity, ts.Entity},
		{TableBoard, ts.Board},
		{TableCommittee, ts.Committee},
		{TableActivities, ts.Activities},
	}
}

// Empty reports whether every table in the set has zero rows.
func (ts TableSet) Empty() bool {
	for _, s := range ts.Sheets() {
		if !s.Table.Empty() {
			return false
		}
	}
	return true
}
