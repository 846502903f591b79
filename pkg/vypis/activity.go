package vypis

import "github.com/prozkosny/pydata-zdenka/internal/xmldoc"

// ActivityColumns is the single-column shape of the business-activity
// table.
var ActivityColumns = []string{"text"}

// ExtractActivities builds one row per declared business-activity text
// leaf, preserving document order.
func ExtractActivities(doc *xmldoc.Document) Table {
	texts := doc.All(doc.Root(), "v:Vypis/v:PredmetPodnikani/v:Cinnost/v:Text")
	if len(texts) == 0 {
		return Table{}
	}

	rows := make([][]string, 0, len(texts))
	for _, n := range texts {
		rows = append(rows, []string{xmldoc.Text(n)})
	}

	return Table{Columns: ActivityColumns, Rows: rows}
}
