package rounds

import (
	"errors"
	"reflect"
	"testing"
)

func TestLookupPinnedRounds(t *testing.T) {
	cases := []struct {
		key  string
		want []string
	}{
		{"1", []string{"us/0/0", "us/0/1", "us/0/2", "us/0/3"}},
		{"5", []string{"fh/1/0", "fh/2/0", "sb/2", "sb/5", "sb/8", "sl", "slx", "sh/5", "sh/7", "cb", "cl", "ch/4"}},
		{"7", []string{"sb/6/wo", "slx/mo", "slx/bo", "sh/5/wx", "cb/wo2", "cl/mo", "cl/bo"}},
	}
	for _, tc := range cases {
		r, ok := Lookup(tc.key)
		if !ok {
			t.Fatalf("round %s not found", tc.key)
		}
		if !reflect.DeepEqual(r.Designs, tc.want) {
			t.Fatalf("round %s designs=%v want %v", tc.key, r.Designs, tc.want)
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("99"); ok {
		t.Fatalf("round 99 should not exist")
	}
}

func TestResolveUnknown(t *testing.T) {
	_, err := Resolve("99")
	if !errors.Is(err, ErrUnknownRound) {
		t.Fatalf("err=%v, want ErrUnknownRound", err)
	}
	if got := err.Error(); got != "round '99' not yet defined" {
		t.Fatalf("message=%q", got)
	}
}

func TestResolveDisabled(t *testing.T) {
	_, err := Resolve("4")
	if !errors.Is(err, ErrRoundDisabled) {
		t.Fatalf("err=%v, want ErrRoundDisabled", err)
	}
	if got := err.Error(); got != "round '4' is disabled" {
		t.Fatalf("message=%q", got)
	}
}

func TestDisabledRoundStillListed(t *testing.T) {
	r, ok := Lookup("4")
	if !ok {
		t.Fatalf("round 4 should stay in the table")
	}
	if !r.Disabled {
		t.Fatalf("round 4 should be disabled")
	}
	if len(r.Designs) == 0 {
		t.Fatalf("round 4 should keep its designs on record")
	}
}

func TestArgvAppendsPassthrough(t *testing.T) {
	r, _ := Lookup("1")
	got := r.Argv([]string{"-x", "-y"})
	want := []string{"us/0/0", "us/0/1", "us/0/2", "us/0/3", "-x", "-y"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("argv=%v want %v", got, want)
	}
	if got := r.Argv(nil); !reflect.DeepEqual(got, r.Designs) {
		t.Fatalf("argv=%v want bare designs", got)
	}
}

func TestArgvIsFresh(t *testing.T) {
	r, _ := Lookup("1")
	first := r.Argv([]string{"-x"})
	first[0] = "clobbered"
	second := r.Argv([]string{"-x"})
	if second[0] != "us/0/0" {
		t.Fatalf("argv shares state across calls: %v", second)
	}
}

func TestAllPreservesOrder(t *testing.T) {
	all := All()
	if len(all) != 11 {
		t.Fatalf("rounds=%d want 11", len(all))
	}
	if all[0].Key != "0" || all[len(all)-1].Key != "10" {
		t.Fatalf("order: first=%s last=%s", all[0].Key, all[len(all)-1].Key)
	}
}
