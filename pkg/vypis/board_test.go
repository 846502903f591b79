package vypis

import "testing"

func TestExtractBoard_EmptyMemberList(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no section", `<ZakladniUdaje/>`},
		{"section with no members", `<StatutarniOrgan/>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := ExtractBoard(mustParse(t, wrap(tt.body)))
			if !tbl.Empty() {
				t.Errorf("rows = %d, want 0", len(tbl.Rows))
			}
			if tbl.Columns != nil {
				t.Errorf("columns = %v, want none", tbl.Columns)
			}
		})
	}
}

func TestExtractBoard_OneRowPerMember_DocumentOrder(t *testing.T) {
	doc := mustParse(t, wrap(`<StatutarniOrgan>
		<Clen><Osoba><Prijmeni>První</Prijmeni></Osoba></Clen>
		<Clen><Osoba><Prijmeni>Druhý</Prijmeni></Osoba></Clen>
		<Clen><Osoba><Prijmeni>Třetí</Prijmeni></Osoba></Clen>
	</StatutarniOrgan>`))

	tbl := ExtractBoard(doc)
	if len(tbl.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(tbl.Rows))
	}
	want := []string{"První", "Druhý", "Třetí"}
	for i, name := range want {
		if got := field(t, tbl, i, "prijmeni"); got != name {
			t.Errorf("row %d prijmeni = %q, want %q", i, got, name)
		}
	}
}

func TestExtractBoard_MissingExerciseAttribute(t *testing.T) {
	doc := mustParse(t, wrap(`<StatutarniOrgan>
		<Clen dza="2010-01-01"/>
	</StatutarniOrgan>`))

	tbl := ExtractBoard(doc)
	if got := field(t, tbl, 0, "clenstvi_od"); got != "2010-01-01" {
		t.Errorf("clenstvi_od = %q, want %q", got, "2010-01-01")
	}
	// Absent attribute is the Missing marker, never an empty string
	if got := field(t, tbl, 0, "clenstvi_do"); got != Missing {
		t.Errorf("clenstvi_do = %q, want Missing", got)
	}
}

func TestExtractBoard_NoFunctionSubNode(t *testing.T) {
	doc := mustParse(t, wrap(`<StatutarniOrgan>
		<Clen dza="2010-01-01">
			<Osoba><Jmeno>Jana</Jmeno><Prijmeni>Nováková</Prijmeni></Osoba>
		</Clen>
	</StatutarniOrgan>`))

	tbl := ExtractBoard(doc)
	if len(tbl.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(tbl.Rows))
	}
	// All five function fields normalize to the Missing marker
	for _, column := range []string{"funkce_nazev", "funkce_od", "funkce_do", "vznik_funkce", "zanik_funkce"} {
		if got := field(t, tbl, 0, column); got != Missing {
			t.Errorf("%s = %q, want Missing", column, got)
		}
	}
}

func TestExtractBoard_NoPersonSubNode(t *testing.T) {
	// Timing-only member still gets a row.
	doc := mustParse(t, wrap(`<StatutarniOrgan>
		<Clen dza="2001-06-15" dvy="2003-09-30"/>
	</StatutarniOrgan>`))

	tbl := ExtractBoard(doc)
	if len(tbl.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(tbl.Rows))
	}
	if got := field(t, tbl, 0, "clenstvi_od"); got != "2001-06-15" {
		t.Errorf("clenstvi_od = %q, want %q", got, "2001-06-15")
	}
	for _, column := range []string{"jmeno", "prijmeni", "rodne_cislo", "adresa_textem"} {
		if got := field(t, tbl, 0, column); got != Missing {
			t.Errorf("%s = %q, want Missing", column, got)
		}
	}
}

func TestExtractBoard_PersonAddress(t *testing.T) {
	doc := mustParse(t, wrap(`<StatutarniOrgan>
		<Clen>
			<Osoba>
				<Jmeno>Karel</Jmeno>
				<Prijmeni>Dvořák</Prijmeni>
				<TitulPred>Ing.</TitulPred>
				<Adresa>
					<Ulice>Krátká</Ulice>
					<CisloDomu>5</CisloDomu>
					<PSC>60200</PSC>
					<Obec>Brno</Obec>
					<AdresaTextem>Krátká 5, 602 00 Brno</AdresaTextem>
				</Adresa>
			</Osoba>
		</Clen>
	</StatutarniOrgan>`))

	tbl := ExtractBoard(doc)
	if got := field(t, tbl, 0, "titul_pred"); got != "Ing." {
		t.Errorf("titul_pred = %q, want %q", got, "Ing.")
	}
	if got := field(t, tbl, 0, "ulice"); got != "Krátká" {
		t.Errorf("ulice = %q, want %q", got, "Krátká")
	}
	// Orientation number absent within a present address block
	if got := field(t, tbl, 0, "cislo_or"); got != Missing {
		t.Errorf("cislo_or = %q, want Missing", got)
	}
}

func TestExtractBoard_RepeatedPersonNotDeduplicated(t *testing.T) {
	// The same person serving two membership periods is two rows; the
	// national identifier repeats and that is intentional history.
	doc := mustParse(t, wrap(`<StatutarniOrgan>
		<Clen dza="1995-01-01" dvy="2000-12-31">
			<Osoba><Prijmeni>Svoboda</Prijmeni><RodneCislo>601102/5678</RodneCislo></Osoba>
		</Clen>
		<Clen dza="2005-01-10">
			<Osoba><Prijmeni>Svoboda</Prijmeni><RodneCislo>601102/5678</RodneCislo></Osoba>
		</Clen>
	</StatutarniOrgan>`))

	tbl := ExtractBoard(doc)
	if len(tbl.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(tbl.Rows))
	}
	for i := range 2 {
		if got := field(t, tbl, i, "rodne_cislo"); got != "601102/5678" {
			t.Errorf("row %d rodne_cislo = %q, want repeated identifier", i, got)
		}
	}
}

func TestExtractBoard_RowWidth(t *testing.T) {
	tbl := ExtractBoard(mustParse(t, endToEndDoc))
	for i, row := range tbl.Rows {
		if len(row) != len(BoardColumns) {
			t.Errorf("row %d width = %d, want %d", i, len(row), len(BoardColumns))
		}
	}
}
