package vypis

import "github.com/prozkosny/pydata-zdenka/internal/xmldoc"

// BoardColumns is the fixed column superset of the statutory-body
// table. Individual members populate whichever fields their sub-nodes
// carry; the rest normalize to the Missing marker.
var BoardColumns = []string{
	"clenstvi_od",
	"clenstvi_do",
	"funkce_nazev",
	"funkce_od",
	"funkce_do",
	"vznik_funkce",
	"zanik_funkce",
	"jmeno",
	"prijmeni",
	"titul_pred",
	"titul_za",
	"datum_narozeni",
	"rodne_cislo",
	"statni_prislusnost",
	"ulice",
	"cislo_domu",
	"cislo_or",
	"psc",
	"obec",
	"cast_obce",
	"adresa_textem",
	"vznik_clenstvi",
	"zanik_clenstvi",
}

// ExtractBoard builds one row per Clen node under the statutory-body
// section, in document order. A person serving multiple membership
// periods appears once per period; rows are never deduplicated, and no
// field (the national identifier included) is assumed unique. That
// preserves historical turnover.
func ExtractBoard(doc *xmldoc.Document) Table {
	members := doc.All(doc.Root(), "v:Vypis/v:StatutarniOrgan/v:Clen")
	if len(members) == 0 {
		return Table{}
	}

	rows := make([][]string, 0, len(members))
	for _, clen := range members {
		funkce := doc.First(clen, "v:Funkce")
		osoba := doc.First(clen, "v:Osoba")
		adresa := doc.First(osoba, "v:Adresa")
		clenstvi := doc.First(clen, "v:Clenstvi")

		// Membership timing lives in attributes on the Clen node
		// itself; everything else comes from optional sub-nodes. Both
		// kinds of absence resolve to the same Missing marker.
		rows = append(rows, []string{
			xmldoc.Attr(clen, "dza"),
			xmldoc.Attr(clen, "dvy"),
			doc.ChildText(funkce, "v:Nazev"),
			xmldoc.Attr(funkce, "dza"),
			xmldoc.Attr(funkce, "dvy"),
			doc.ChildText(funkce, "v:VznikFunkce"),
			doc.ChildText(funkce, "v:ZanikFunkce"),
			doc.ChildText(osoba, "v:Jmeno"),
			doc.ChildText(osoba, "v:Prijmeni"),
			doc.ChildText(osoba, "v:TitulPred"),
			doc.ChildText(osoba, "v:TitulZa"),
			doc.ChildText(osoba, "v:DatumNarozeni"),
			doc.ChildText(osoba, "v:RodneCislo"),
			doc.ChildText(osoba, "v:StatniPrislusnost"),
			doc.ChildText(adresa, "v:Ulice"),
			doc.ChildText(adresa, "v:CisloDomu"),
			doc.ChildText(adresa, "v:CisloOr"),
			doc.ChildText(adresa, "v:PSC"),
			doc.ChildText(adresa, "v:Obec"),
			doc.ChildText(adresa, "v:CastObce"),
			doc.ChildText(adresa, "v:AdresaTextem"),
			doc.ChildText(clenstvi, "v:VznikClenstvi"),
			doc.ChildText(clenstvi, "v:ZanikClenstvi"),
		})
	}

	return Table{Columns: BoardColumns, Rows: rows}
}
