package rounds

import (
	"fmt"
	"strings"
)

// Validate inspects a round table and returns warnings and errors describing
// defects a dispatch registry must not have: duplicate keys, empty design
// lists, blank identifiers, and identifiers the viewer would read as flags.
// It says nothing about whether the named designs exist; that is the viewer's
// business.
func Validate(rs []Round) (warnings []string, errors []string) {
	seen := map[string]bool{}
	for _, r := range rs {
		key := strings.TrimSpace(r.Key)
		if key == "" {
			errors = append(errors, "round with a blank key")
			continue
		}
		if seen[key] {
			errors = append(errors, fmt.Sprintf("round '%s' defined more than once", key))
		}
		seen[key] = true
		if len(r.Designs) == 0 {
			errors = append(errors, fmt.Sprintf("round '%s' has no designs", key))
		}
		inRound := map[string]bool{}
		for i, d := range r.Designs {
			switch {
			case strings.TrimSpace(d) == "":
				errors = append(errors, fmt.Sprintf("round '%s' design %d is blank", key, i))
			case strings.HasPrefix(d, "-"):
				errors = append(errors, fmt.Sprintf("round '%s' design %q would be parsed as a viewer flag", key, d))
			}
			if inRound[d] {
				warnings = append(warnings, fmt.Sprintf("round '%s' lists %q more than once", key, d))
			}
			inRound[d] = true
		}
		if r.Disabled {
			warnings = append(warnings, fmt.Sprintf("round '%s' is disabled", key))
		}
	}
	return warnings, errors
}
