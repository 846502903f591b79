package vypis

import "github.com/prozkosny/pydata-zdenka/internal/xmldoc"

// CommitteeColumns is the fixed column set of the oversight-committee
// table. The registry records committee members with a reduced field
// set: a single membership-start attribute, function name and arose
// date only, no citizenship, and the address collapsed to its full-text
// form.
var CommitteeColumns = []string{
	"clenstvi_od",
	"funkce_nazev",
	"vznik_funkce",
	"jmeno",
	"prijmeni",
	"titul_pred",
	"titul_za",
	"datum_narozeni",
	"rodne_cislo",
	"adresa_textem",
}

// ExtractCommittee builds one row per Clen node under the "other body"
// section, in document order, with the same absent-field normalization
// as the statutory-body extractor.
func ExtractCommittee(doc *xmldoc.Document) Table {
	members := doc.All(doc.Root(), "v:Vypis/v:DozorciRada/v:Clen")
	if len(members) == 0 {
		return Table{}
	}

	rows := make([][]string, 0, len(members))
	for _, clen := range members {
		funkce := doc.First(clen, "v:Funkce")
		osoba := doc.First(clen, "v:Osoba")
		adresa := doc.First(osoba, "v:Adresa")

		rows = append(rows, []string{
			xmldoc.Attr(clen, "dza"),
			doc.ChildText(funkce, "v:Nazev"),
			doc.ChildText(funkce, "v:VznikFunkce"),
			doc.ChildText(osoba, "v:Jmeno"),
			doc.ChildText(osoba, "v:Prijmeni"),
			doc.ChildText(osoba, "v:TitulPred"),
			doc.ChildText(osoba, "v:TitulZa"),
			doc.ChildText(osoba, "v:DatumNarozeni"),
			doc.ChildText(osoba, "v:RodneCislo"),
			doc.ChildText(adresa, "v:AdresaTextem"),
		})
	}

	return Table{Columns: CommitteeColumns, Rows: rows}
}
