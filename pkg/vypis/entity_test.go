package vypis

import "testing"

func TestExtractEntity_MissingSection(t *testing.T) {
	doc := mustParse(t, wrap(`<StatutarniOrgan/>`))

	tbl := ExtractEntity(doc)
	if !tbl.Empty() {
		t.Errorf("rows = %d, want 0", len(tbl.Rows))
	}
	if tbl.Columns != nil {
		t.Errorf("columns = %v, want none", tbl.Columns)
	}
}

func TestExtractEntity_AllFields(t *testing.T) {
	doc := mustParse(t, endToEndDoc)

	tbl := ExtractEntity(doc)
	if len(tbl.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(tbl.Rows))
	}
	if len(tbl.Rows[0]) != len(EntityColumns) {
		t.Fatalf("row width = %d, want %d", len(tbl.Rows[0]), len(EntityColumns))
	}

	want := map[string]string{
		"ico":              "00039276",
		"obchodni_firma":   "Test s.r.o.",
		"pravni_forma_kod": "112",
		"pravni_forma":     "Společnost s ručením omezeným",
		"datum_zapisu":     "1992-07-01",
		"ulice":            "Dlouhá",
		"cislo_domu":       "12",
		"cislo_or":         "3",
		"psc":              "11000",
		"obec":             "Praha",
		"cast_obce":        "Staré Město",
		"adresa_textem":    "Dlouhá 12/3, Staré Město, 110 00 Praha",
	}
	for column, value := range want {
		if got := field(t, tbl, 0, column); got != value {
			t.Errorf("%s = %q, want %q", column, got, value)
		}
	}
}

func TestExtractEntity_PartialSection(t *testing.T) {
	// Section present but the address block absent: one row, address
	// fields normalized to the Missing marker. No format validation
	// happens, so a nonsense date passes through raw.
	doc := mustParse(t, wrap(`<ZakladniUdaje>
		<ICO>12345678</ICO>
		<DatumZapisu>not-a-date</DatumZapisu>
	</ZakladniUdaje>`))

	tbl := ExtractEntity(doc)
	if len(tbl.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(tbl.Rows))
	}
	if got := field(t, tbl, 0, "ico"); got != "12345678" {
		t.Errorf("ico = %q, want %q", got, "12345678")
	}
	if got := field(t, tbl, 0, "datum_zapisu"); got != "not-a-date" {
		t.Errorf("datum_zapisu = %q, want raw passthrough", got)
	}
	for _, column := range []string{"obchodni_firma", "ulice", "psc", "adresa_textem"} {
		if got := field(t, tbl, 0, column); got != Missing {
			t.Errorf("%s = %q, want Missing", column, got)
		}
	}
}
