package list

import (
	"testing"

	"github.com/kalekundert/sgrna-sensor-scripts/cli/roundctl/internal/rounds"
)

func TestFormat(t *testing.T) {
	rd := rounds.Round{Key: "1", Note: "upper stem insertion scan", Cost: "4 gBlocks, about $360", Designs: []string{"us/0/0", "us/0/1"}}
	got := format(rd)
	want := "1    2 designs  upper stem insertion scan (4 gBlocks, about $360)"
	if got != want {
		t.Fatalf("format=%q want %q", got, want)
	}
}

func TestFormatDisabled(t *testing.T) {
	rd := rounds.Round{Key: "4", Note: "doubly swapped nexus follow-up", Disabled: true, Designs: []string{"nxx/2/2/0/2"}}
	got := format(rd)
	want := "4    1 designs  doubly swapped nexus follow-up [disabled]"
	if got != want {
		t.Fatalf("format=%q want %q", got, want)
	}
}
