package rounds

import (
	"strings"
	"testing"
)

func TestTableIsValid(t *testing.T) {
	warnings, errors := Validate(All())
	if len(errors) != 0 {
		t.Fatalf("table has errors: %v", errors)
	}
	// the only expected warning is the disabled round
	if len(warnings) != 1 || !strings.Contains(warnings[0], "round '4' is disabled") {
		t.Fatalf("warnings=%v", warnings)
	}
}

func TestValidateReportsDefects(t *testing.T) {
	bad := []Round{
		{Key: "1", Designs: []string{"us/0/0"}},
		{Key: "1", Designs: []string{"us/0/1"}},
		{Key: "2"},
		{Key: "3", Designs: []string{"", "-v", "nx/0", "nx/0"}},
		{Key: "  "},
	}
	warnings, errors := Validate(bad)
	wantErrs := []string{
		"round '1' defined more than once",
		"round '2' has no designs",
		"round '3' design 0 is blank",
		`round '3' design "-v" would be parsed as a viewer flag`,
		"round with a blank key",
	}
	for _, want := range wantErrs {
		found := false
		for _, e := range errors {
			if e == want {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("missing error %q in %v", want, errors)
		}
	}
	if len(errors) != len(wantErrs) {
		t.Fatalf("errors=%v want %d entries", errors, len(wantErrs))
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], `lists "nx/0" more than once`) {
		t.Fatalf("warnings=%v", warnings)
	}
}
