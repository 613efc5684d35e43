package rounds

// table is the dispatch registry, one entry per screening round. Entry order
// is display order; design order within a round is forwarded verbatim.
//
// Cost annotations reflect what the round cost to synthesize (gBlocks ran
// about $90 per design) and exist purely for the listing output.
var table = []Round{
	{
		Key:     "0",
		Note:    "scaffold controls",
		Designs: []string{"wt", "dead"},
	},
	{
		Key:  "1",
		Note: "upper stem insertion scan",
		Cost: "4 gBlocks, about $360",
		Designs: []string{
			"us/0/0",
			"us/0/1",
			"us/0/2",
			"us/0/3",
		},
	},
	{
		Key:  "2",
		Note: "nexus and hairpin replacements",
		Designs: []string{
			"nx/0",
			"nx/1",
			"nx/2",
			"hp/17",
			"hp/18",
			"hp/33",
		},
	},
	{
		Key:  "3",
		Note: "lower stem and induced dimerization variants",
		Designs: []string{
			"ls/6/2",
			"ls/7/3",
			"id/5/0",
			"id/5/1",
			"id/3/0",
			"id/3/1",
		},
	},
	{
		// Round 4 never made it to the sorter. Kept so the numbering stays
		// contiguous and the designs stay on record; dispatch refuses it.
		Key:      "4",
		Note:     "doubly swapped nexus follow-up",
		Disabled: true,
		Designs: []string{
			"nxx/2/2/0/2",
			"nxx/2/3/0/2",
			"nxx/3/3/0/3",
			"nxx/4/4/0/4",
		},
	},
	{
		Key:  "5",
		Note: "strand displacement round",
		Cost: "12 gBlocks, about $1080",
		Designs: []string{
			"fh/1/0",
			"fh/2/0",
			"sb/2",
			"sb/5",
			"sb/8",
			"sl",
			"slx",
			"sh/5",
			"sh/7",
			"cb",
			"cl",
			"ch/4",
		},
	},
	{
		Key:  "6",
		Note: "stem length tuning",
		Designs: []string{
			"sl/6",
			"sl/7",
			"slx/8",
			"sh/4",
			"sh/6",
			"us/4/4",
		},
	},
	{
		Key:  "7",
		Note: "rationally designed follow-ups",
		Designs: []string{
			"sb/6/wo",
			"slx/mo",
			"slx/bo",
			"sh/5/wx",
			"cb/wo2",
			"cl/mo",
			"cl/bo",
		},
	},
	{
		Key:  "8",
		Note: "communication module recombinations",
		Designs: []string{
			"cbc/wo/wo",
			"cbc/wo/mo",
			"cbc/mo/bo",
			"cbc/bo/bo",
			"cb/wo2",
			"ch/4/mo",
		},
	},
	{
		Key:  "9",
		Note: "hammerhead scaffold round",
		Designs: []string{
			"hu/4",
			"hu/5",
			"hx/2",
			"hx/3",
			"hh/7",
			"hh/8",
		},
	},
	{
		Key:  "10",
		Note: "final validation batch",
		Cost: "ordered as a 24-member oligo pool",
		Designs: []string{
			"wt",
			"dead",
			"us/0/0",
			"us/0/2",
			"nx/2",
			"hp/17",
			"ls/7/3",
			"id/5/1",
			"fh/2/0",
			"sb/5",
			"sb/8",
			"sl",
			"slx",
			"sh/5",
			"sh/7",
			"cb",
			"cl",
			"ch/4",
			"sb/6/wo",
			"slx/bo",
			"cl/mo",
			"cbc/wo/mo",
			"hu/5",
			"hh/7",
		},
	},
}
