package vypis

import "github.com/prozkosny/pydata-zdenka/internal/xmldoc"

// EntityColumns is the fixed column order of the basic-info table.
// Downstream consumers rely on this order; do not reorder.
var EntityColumns = []string{
	"ico",
	"obchodni_firma",
	"pravni_forma_kod",
	"pravni_forma",
	"datum_zapisu",
	"ulice",
	"cislo_domu",
	"cislo_or",
	"psc",
	"obec",
	"cast_obce",
	"adresa_textem",
}

// ExtractEntity builds the one-row basic-info table from the
// ZakladniUdaje section. A document without that section yields an
// empty table. Field values pass through as raw text; no date or
// identifier format is validated here.
func ExtractEntity(doc *xmldoc.Document) Table {
	sec := doc.First(doc.Root(), "v:Vypis/v:ZakladniUdaje")
	if sec == nil {
		return Table{}
	}

	pravniForma := doc.First(sec, "v:PravniForma")
	sidlo := doc.First(sec, "v:Sidlo")

	row := []string{
		doc.ChildText(sec, "v:ICO"),
		doc.ChildText(sec, "v:ObchodniFirma"),
		xmldoc.Attr(pravniForma, "kod"),
		xmldoc.Text(pravniForma),
		doc.ChildText(sec, "v:DatumZapisu"),
		doc.ChildText(sidlo, "v:Ulice"),
		doc.ChildText(sidlo, "v:CisloDomu"),
		doc.ChildText(sidlo, "v:CisloOr"),
		doc.ChildText(sidlo, "v:PSC"),
		doc.ChildText(sidlo, "v:Obec"),
		doc.ChildText(sidlo, "v:CastObce"),
		doc.ChildText(sidlo, "v:AdresaTextem"),
	}

	return Table{Columns: EntityColumns, Rows: [][]string{row}}
}
