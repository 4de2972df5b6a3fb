package core

import "maps"

// fallbackSource is substituted when the configured source is unreachable or
// empty, so the application stays usable with a few representative records.
var fallbackSource = []RawRecord{
	{
		"Target name": "VEGF165", "Target type": "Protein", "Gene_Symbol": "VEGFA",
		"Year": "2010", "Level": "P", "pKd": 9.2, "Affinity": "0.6 nM",
		"Sequence ID": "V7t1", "Aptamer sequence": "CCGGTGGGTGGGTGGGGGGGTGCGG",
		"Best": true, "Article title": "Mock Article 1", "Journal": "JACS",
	},
	{
		"Target name": "Thrombin", "Target type": "Protein", "Gene_Symbol": "F2",
		"Year": "1992", "Level": "P", "pKd": 9.0, "Affinity": "1 nM",
		"Sequence ID": "TBA", "Aptamer sequence": "GGTTGGTGTGGTTGG",
		"Best": true, "Article title": "Thrombin Binding Aptamer", "Journal": "Nature",
	},
	{
		"Target name": "ATP", "Target type": "Small Molecule",
		"Year": "1995", "Level": "P", "pKd": 6.0, "Affinity": "1 uM",
		"Sequence ID": "ATP-40", "Aptamer sequence": "ACCTGGGGGAGTAT",
		"Best": true, "Article title": "Classic ATP", "Journal": "Chemistry",
	},
}

// FallbackRecords returns a copy of the built-in sample set.
func FallbackRecords() []RawRecord {
	out := make([]RawRecord, len(fallbackSource))
	for i, raw := range fallbackSource {
		out[i] = maps.Clone(raw)
	}
	return out
}
