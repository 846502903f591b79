package vypis

import "testing"

func TestExtractActivities_Empty(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no section", `<ZakladniUdaje/>`},
		{"section with no items", `<PredmetPodnikani/>`},
		{"item with no text leaf", `<PredmetPodnikani><Cinnost/></PredmetPodnikani>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := ExtractActivities(mustParse(t, wrap(tt.body)))
			if !tbl.Empty() {
				t.Errorf("rows = %d, want 0", len(tbl.Rows))
			}
		})
	}
}

func TestExtractActivities_DocumentOrder(t *testing.T) {
	doc := mustParse(t, wrap(`<PredmetPodnikani>
		<Cinnost><Text>Výroba, obchod a služby</Text></Cinnost>
		<Cinnost><Text>Hostinská činnost</Text></Cinnost>
		<Cinnost><Text>Silniční motorová doprava</Text></Cinnost>
	</PredmetPodnikani>`))

	tbl := ExtractActivities(doc)
	if len(tbl.Rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(tbl.Rows))
	}
	want := []string{"Výroba, obchod a služby", "Hostinská činnost", "Silniční motorová doprava"}
	for i, text := range want {
		if got := tbl.Rows[i][0]; got != text {
			t.Errorf("row %d = %q, want %q", i, got, text)
		}
	}
}
