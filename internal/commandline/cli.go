// Package commandline contains helper types for collecting
// command-line arguments.
package commandline // import "github.com/CognitoIQ/wsdlmd/internal/commandline"

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
)

// A Rule maps a pattern to a target name. On the command line,
// Rules are provided as strings separated by "->".
type Rule struct {
	From *regexp.Regexp
	To   string
}

// A RuleList is used to collect multiple rules from the command
// line.
type RuleList []Rule

func (r *RuleList) String() string {
	var buf bytes.Buffer
	for _, item := range *r {
		fmt.Fprintf(&buf, "%s -> %s\n", item.From, item.To)
	}
	return buf.String()
}

// Set adds a rule to the RuleList, in the order provided on the
// command line.
func (r *RuleList) Set(s string) error {
	parts := strings.SplitN(s, "->", 2)
	if len(parts) != 2 {
		return fmt.Errorf("invalid rule %q. must be \"regex -> target\"", s)
	}
	parts[0] = strings.TrimSpace(parts[0])
	parts[1] = strings.TrimSpace(parts[1])
	if parts[1] == "" {
		return fmt.Errorf("invalid rule %q: empty target", s)
	}
	reg, err := regexp.Compile(parts[0])
	if err != nil {
		return fmt.Errorf("invalid regex %q: %v", parts[0], err)
	}
	*r = append(*r, Rule{reg, parts[1]})
	return nil
}
