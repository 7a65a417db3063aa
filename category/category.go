// Package category assigns WSDL declarations to documentation
// categories.
//
// Every simple type, complex type and operation of a service
// description is filed under exactly one of a fixed set of business
// domains, such as Projekt or Mitarbeiter, based solely on its name.
// Each category corresponds to one Markdown file of the generated
// documentation.
package category // import "github.com/CognitoIQ/wsdlmd/category"

import "fmt"

// A Category is one of the fixed documentation domains. The zero
// value is not a valid Category.
type Category string

// The complete set of categories.
const (
	Allgemein     Category = "allgemein"
	BasisTypen    Category = "basis_typen"
	Mitarbeiter   Category = "mitarbeiter"
	Kunde         Category = "kunde"
	Projekt       Category = "projekt"
	Vorgang       Category = "vorgang"
	Projektzeit   Category = "projektzeit"
	Ticket        Category = "ticket"
	Beleg         Category = "beleg"
	Rechnung      Category = "rechnung"
	Abteilung     Category = "abteilung"
	Stammdaten    Category = "stammdaten"
	Einplanung    Category = "einplanung"
	Zeiterfassung Category = "zeiterfassung"
	Sonstige      Category = "sonstige"
)

// All lists every Category in the order their files appear in the
// documentation index.
var All = []Category{
	Allgemein,
	BasisTypen,
	Mitarbeiter,
	Kunde,
	Projekt,
	Vorgang,
	Projektzeit,
	Ticket,
	Beleg,
	Rechnung,
	Abteilung,
	Stammdaten,
	Einplanung,
	Zeiterfassung,
	Sonstige,
}

// Info describes the documentation file of a Category.
type Info struct {
	// Output file name, e.g. "05-projekt.md".
	File string
	// Heading of the category document.
	Title string
	// Introductory sentence of the category document.
	Description string
	// Short description shown in the index table.
	Summary string
}

var info = map[Category]Info{
	Allgemein:     {"01-allgemein.md", "Allgemeine Typen", "Request/Response Header und allgemeine Hilfstypen", "Request/Response Header, Attribute"},
	BasisTypen:    {"02-basis-typen.md", "Basis-Datentypen", "Grundlegende Datentypen wie Strings, Zahlen und Datumsformate", "String, Decimal, Date, Time Typen"},
	Mitarbeiter:   {"03-mitarbeiter.md", "Mitarbeiter-API", "Operationen und Typen für die Verwaltung von Mitarbeitern", "CRUD für Mitarbeiter, Beschäftigungszeiten"},
	Kunde:         {"04-kunde.md", "Kunden-API", "Operationen und Typen für die Verwaltung von Kunden und Ansprechpartnern", "CRUD für Kunden, Ansprechpartner, Adressen"},
	Projekt:       {"05-projekt.md", "Projekt-API", "Operationen und Typen für die Projektverwaltung", "CRUD für Projekte, Projektmitarbeiter"},
	Vorgang:       {"06-vorgang.md", "Vorgang-API", "Operationen und Typen für die Vorgangsverwaltung", "CRUD für Vorgänge (Arbeitspakete)"},
	Projektzeit:   {"07-projektzeit.md", "Projektzeit-API", "Operationen und Typen für Zeitbuchungen", "Zeitbuchungen erstellen, lesen, ändern"},
	Ticket:        {"08-ticket.md", "Ticket-API", "Operationen und Typen für das Ticket-System", "Ticket-System, Teilaufgaben"},
	Beleg:         {"09-beleg.md", "Beleg-API", "Operationen und Typen für Belege und Reisekosten", "Belege, Reisekosten, Spesen"},
	Rechnung:      {"10-rechnung.md", "Rechnungs-API", "Operationen und Typen für die Rechnungsverwaltung", "Rechnungen lesen"},
	Abteilung:     {"11-abteilung.md", "Abteilungs-API", "Operationen und Typen für die Abteilungsverwaltung", "Organisationsstruktur"},
	Stammdaten:    {"12-stammdaten.md", "Stammdaten-API", "Kategorien, Tätigkeiten, Schlagworte und andere Stammdaten", "Kategorien, Tätigkeiten, Schlagworte"},
	Einplanung:    {"13-einplanung.md", "Einplanungs-API", "Operationen und Typen für die Ressourcenplanung", "Ressourcenplanung"},
	Zeiterfassung: {"14-zeiterfassung.md", "Zeiterfassungs-API", "Kommt/Geht-Buchungen und Anwesenheitserfassung", "Kommt/Geht-Buchungen"},
	Sonstige:      {"99-sonstige.md", "Sonstige Typen", "Weitere Typen und Hilfsstrukturen", "Weitere Hilfstypen"},
}

// Info returns the file name, title and descriptions of c. The
// zero Info is returned for an invalid Category.
func (c Category) Info() Info {
	return info[c]
}

// Valid reports whether c is one of the categories in All.
func (c Category) Valid() bool {
	_, ok := info[c]
	return ok
}

func (c Category) String() string {
	return string(c)
}

// Parse converts the name of a category, such as "projektzeit", to
// a Category.
func Parse(name string) (Category, error) {
	if c := Category(name); c.Valid() {
		return c, nil
	}
	return "", fmt.Errorf("unknown category %q", name)
}
