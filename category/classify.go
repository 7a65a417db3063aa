package category

import (
	"regexp"
	"strings"
)

// A rule files a name under a category if the lower-cased name
// contains any of its keywords and none of its exclusions.
type rule struct {
	any    []string
	except []string
	to     Category
}

func (r rule) match(name string) bool {
	for _, s := range r.except {
		if strings.Contains(name, s) {
			return false
		}
	}
	for _, s := range r.any {
		if strings.Contains(name, s) {
			return true
		}
	}
	return false
}

func first(rules []rule, name string) (Category, bool) {
	for _, r := range rules {
		if r.match(name) {
			return r.to, true
		}
	}
	return "", false
}

// Rules for request and response wrapper names. They differ from
// entityRules in order and coverage; both tables decide which file
// existing names are documented in, so neither may be changed
// without moving types between files.
var messageRules = []rule{
	{any: []string{"projektzeit"}, to: Projektzeit},
	{any: []string{"projekt"}, except: []string{"mitarbeiter"}, to: Projekt},
	{any: []string{"mitarbeiter"}, to: Mitarbeiter},
	{any: []string{"kunde"}, to: Kunde},
	{any: []string{"ticket"}, to: Ticket},
	{any: []string{"vorgang"}, to: Vorgang},
	{any: []string{"beleg"}, to: Beleg},
	{any: []string{"rechnung"}, to: Rechnung},
	{any: []string{"abteilung"}, to: Abteilung},
	{any: []string{"kategorie"}, to: Stammdaten},
	{any: []string{"taetigkeit"}, to: Stammdaten},
	{any: []string{"einplanung"}, to: Einplanung},
	{any: []string{"kommt", "geht"}, to: Zeiterfassung},
}

// Rules for everything that is not a request or response.
var entityRules = []rule{
	{any: []string{"projektzeit"}, to: Projektzeit},
	{any: []string{"projektmitarbeiter", "vorgangmitarbeiter"}, to: Projekt},
	{any: []string{"projekt"}, to: Projekt},
	{any: []string{"mitarbeiter"}, to: Mitarbeiter},
	{any: []string{"kunde", "ansprechpartner", "adress"}, to: Kunde},
	{any: []string{"ticket", "teilaufgabe"}, to: Ticket},
	{any: []string{"vorgang"}, to: Vorgang},
	{any: []string{"beleg"}, to: Beleg},
	{any: []string{"rechnung"}, to: Rechnung},
	{any: []string{"abteilung"}, to: Abteilung},
	{any: []string{"kategorie", "taetigkeit", "schlagwort"}, to: Stammdaten},
	{any: []string{"einplanung"}, to: Einplanung},
	{any: []string{"kommt", "geht"}, to: Zeiterfassung},
	{any: []string{"string", "decimal", "int", "iso", "date", "time"}, to: BasisTypen},
	{any: []string{"header", "attribute"}, to: Allgemein},
}

// Names containing "liste" that fall through entityRules are
// checked against this reduced table.
var listRules = []rule{
	{any: []string{"projektzeit"}, to: Projektzeit},
	{any: []string{"projekt"}, to: Projekt},
	{any: []string{"mitarbeiter"}, to: Mitarbeiter},
	{any: []string{"kunde"}, to: Kunde},
	{any: []string{"ticket"}, to: Ticket},
	{any: []string{"vorgang"}, to: Vorgang},
	{any: []string{"beleg"}, to: Beleg},
}

// Classify returns the category of a type or operation name. Matching
// is case-insensitive and based on substrings; the first matching
// rule wins. Names matching no rule, including the empty name, are
// filed under Sonstige. Classify is a pure function of name.
func Classify(name string) Category {
	name = strings.ToLower(name)

	if strings.Contains(name, "request") || strings.Contains(name, "response") {
		if c, ok := first(messageRules, name); ok {
			return c
		}
		return Sonstige
	}
	if c, ok := first(entityRules, name); ok {
		return c
	}
	if strings.Contains(name, "liste") {
		if c, ok := first(listRules, name); ok {
			return c
		}
	}
	return Sonstige
}

// An Override files every name matching Pattern under Category,
// ahead of the built-in rules.
type Override struct {
	Pattern  *regexp.Regexp
	Category Category
}

// A Classifier applies a list of Overrides before falling back to
// Classify. The zero Classifier behaves exactly like Classify.
type Classifier struct {
	Overrides []Override
}

// Classify returns the category of name. The first Override whose
// Pattern matches name decides; otherwise the built-in rules apply.
func (c *Classifier) Classify(name string) Category {
	if c != nil {
		for _, o := range c.Overrides {
			if o.Pattern.MatchString(name) {
				return o.Category
			}
		}
	}
	return Classify(name)
}
