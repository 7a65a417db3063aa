package commandline

import (
	"flag"
	"testing"
)

func TestRuleList(t *testing.T) {
	var rules RuleList
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&rules, "r", "rule")
	err := fs.Parse([]string{"-r", "^Request.* -> allgemein", "-r", "(?i)kontakt->kunde"})
	if err != nil {
		t.Fatal(err)
	}
	if len(rules) != 2 {
		t.Fatalf("got %d rules, want 2", len(rules))
	}
	if rules[0].To != "allgemein" || !rules[0].From.MatchString("RequestHeaderType") {
		t.Errorf("first rule parsed as %s -> %s", rules[0].From, rules[0].To)
	}
	if rules[1].To != "kunde" || !rules[1].From.MatchString("readKONTAKTRequest") {
		t.Errorf("second rule parsed as %s -> %s", rules[1].From, rules[1].To)
	}
	if s := rules.String(); s != "^Request.* -> allgemein\n(?i)kontakt -> kunde\n" {
		t.Errorf("String() = %q", s)
	}
}

func TestRuleListInvalid(t *testing.T) {
	for _, s := range []string{
		"no arrow",
		"[ -> kunde",
		"Foo ->",
	} {
		var rules RuleList
		if err := rules.Set(s); err == nil {
			t.Errorf("Set(%q) succeeded, want error", s)
		}
	}
}
