package category

import (
	"regexp"
	"strings"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want Category
	}{
		{"createProjektzeitRequest", Projektzeit},
		{"readMitarbeiterResponse", Mitarbeiter},
		{"KommtGehtBuchung", Zeiterfassung},
		{"XmlString", BasisTypen},
		{"Foobar", Sonstige},
		{"", Sonstige},

		// request/response table
		{"readProjekteRequest", Projekt},
		{"readProjektmitarbeiterRequest", Mitarbeiter},
		{"readVorgangmitarbeiterResponse", Mitarbeiter},
		{"readKundeRequest", Kunde},
		{"readTicketResponse", Ticket},
		{"updateVorgangRequest", Vorgang},
		{"createBelegRequest", Beleg},
		{"readRechnungResponse", Rechnung},
		{"readAbteilungRequest", Abteilung},
		{"readKategorieResponse", Stammdaten},
		{"readTaetigkeitRequest", Stammdaten},
		{"readEinplanungResponse", Einplanung},
		{"createKommtGehtRequest", Zeiterfassung},
		{"RequestHeaderType", Sonstige},
		{"ResponseHeaderType", Sonstige},
		{"readAnsprechpartnerRequest", Sonstige},
		{"readSchlagwortRequest", Sonstige},
		{"readTeilaufgabeResponse", Sonstige},
		{"READPROJEKTZEITENREQUEST", Projektzeit},

		// entity table
		{"ProjektzeitType", Projektzeit},
		{"ProjektmitarbeiterType", Projekt},
		{"VorgangmitarbeiterType", Projekt},
		{"ProjektType", Projekt},
		{"MitarbeiterType", Mitarbeiter},
		{"KundeType", Kunde},
		{"AnsprechpartnerType", Kunde},
		{"AdresseType", Kunde},
		{"TicketType", Ticket},
		{"TeilaufgabeType", Ticket},
		{"VorgangType", Vorgang},
		{"BelegType", Beleg},
		{"RechnungType", Rechnung},
		{"AbteilungType", Abteilung},
		{"KategorieType", Stammdaten},
		{"TaetigkeitType", Stammdaten},
		{"SchlagwortType", Stammdaten},
		{"EinplanungType", Einplanung},
		{"GehtType", Zeiterfassung},
		{"XmlDecimal", BasisTypen},
		{"XmlDate", BasisTypen},
		{"XmlTime", BasisTypen},
		{"Iso4217", BasisTypen},
		{"Printer", BasisTypen},
		{"HeaderType", Allgemein},
		{"AttributesType", Allgemein},
		{"PersonenListe", Sonstige},
		{"MitarbeiterListeType", Mitarbeiter},
	}
	for _, tt := range tests {
		if got := Classify(tt.name); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestClassifyTotal(t *testing.T) {
	words := []string{"", "request", "response", "projekt", "mitarbeiter",
		"liste", "header", "int", "kunde", "geht", "xyz", "Ticket", "beleg"}
	for _, a := range words {
		for _, b := range words {
			for _, c := range words {
				name := a + b + c
				got := Classify(name)
				if !got.Valid() {
					t.Fatalf("Classify(%q) = %q, not a valid category", name, got)
				}
				if again := Classify(name); again != got {
					t.Fatalf("Classify(%q) not deterministic: %s then %s", name, got, again)
				}
			}
		}
	}
}

func TestClassifier(t *testing.T) {
	c := &Classifier{Overrides: []Override{
		{regexp.MustCompile(`^RequestHeader`), Allgemein},
		{regexp.MustCompile(`(?i)kontakt`), Kunde},
	}}
	tests := map[string]Category{
		"RequestHeaderType":  Allgemein,
		"readKontaktRequest": Kunde,
		"ProjektType":        Projekt,
		"Foobar":             Sonstige,
	}
	for name, want := range tests {
		if got := c.Classify(name); got != want {
			t.Errorf("Classify(%q) = %s, want %s", name, got, want)
		}
	}

	var zero *Classifier
	if got := zero.Classify("RequestHeaderType"); got != Sonstige {
		t.Errorf("nil Classifier: got %s, want %s", got, Sonstige)
	}
}

func TestInfo(t *testing.T) {
	if len(All) != 15 {
		t.Fatalf("got %d categories, want 15", len(All))
	}
	files := make(map[string]Category)
	for _, c := range All {
		info := c.Info()
		if info.File == "" || info.Title == "" || info.Description == "" || info.Summary == "" {
			t.Errorf("%s: incomplete info %#v", c, info)
		}
		if !strings.HasSuffix(info.File, ".md") || info.File[2] != '-' {
			t.Errorf("%s: file name %q does not follow NN-slug.md", c, info.File)
		}
		if prev, ok := files[info.File]; ok {
			t.Errorf("%s and %s share file %s", prev, c, info.File)
		}
		files[info.File] = c
	}
	for i := 1; i < len(All); i++ {
		if All[i-1].Info().File >= All[i].Info().File {
			t.Errorf("index order: %s listed before %s", All[i-1].Info().File, All[i].Info().File)
		}
	}
	if got := BasisTypen.Info().File; got != "02-basis-typen.md" {
		t.Errorf("BasisTypen file = %q", got)
	}
	if got := Category("nope").Info(); got != (Info{}) {
		t.Errorf("invalid category info = %#v", got)
	}
}

func TestParse(t *testing.T) {
	for _, c := range All {
		got, err := Parse(string(c))
		if err != nil || got != c {
			t.Errorf("Parse(%q) = %q, %v", c, got, err)
		}
	}
	for _, s := range []string{"", "Projekt", "basis-typen", "misc"} {
		if _, err := Parse(s); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", s)
		}
	}
}
