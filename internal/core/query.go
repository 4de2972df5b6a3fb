package core

import (
	"sort"
	"strings"
)

// Preview sizes per tier.
const (
	PreviewLimitQuantitative = 5 // P and A tiers
	PreviewLimitQualitative  = 3 // BC tier
)

// NormalizeQuery trims and lowercases a search query.
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// Matches reports whether r matches an already normalized query.
// The query must be a substring of the target name, gene symbol,
// sequence, or sequence label, ignoring case.
func (r Record) Matches(normalized string) bool {
	return strings.Contains(strings.ToLower(r.TargetName), normalized) ||
		strings.Contains(strings.ToLower(r.GeneSymbol), normalized) ||
		strings.Contains(strings.ToLower(r.Sequence), normalized) ||
		strings.Contains(strings.ToLower(r.SequenceID), normalized)
}

// Search filters records by query and groups the matches by target name.
//
// A blank query means no search was performed and yields no groups.
// Groups are ordered by descending record count; ties keep the order in
// which each target first appeared.
func Search(records []Record, query string) []TargetGroup {
	q := NormalizeQuery(query)
	if q == "" {
		return []TargetGroup{}
	}

	var order []string
	members := make(map[string][]Record)
	for _, r := range records {
		if !r.Matches(q) {
			continue
		}
		if _, seen := members[r.TargetName]; !seen {
			order = append(order, r.TargetName)
		}
		members[r.TargetName] = append(members[r.TargetName], r)
	}

	groups := make([]TargetGroup, 0, len(order))
	for _, name := range order {
		g := aggregate(name, members[name])
		g.PreviewType, g.PreviewRecords = selectPreview(members[name])
		groups = append(groups, g)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].TotalAptamers > groups[j].TotalAptamers
	})
	return groups
}

// BuildTargetGroup collects every record whose target name equals name
// exactly (case-sensitive). The preview is left empty: detail views list
// all records themselves. Returns false when no record matches.
func BuildTargetGroup(records []Record, name string) (TargetGroup, bool) {
	var recs []Record
	for _, r := range records {
		if r.TargetName == name {
			recs = append(recs, r)
		}
	}
	if len(recs) == 0 {
		return TargetGroup{}, false
	}

	g := aggregate(name, recs)
	g.PreviewType = PreviewBC
	g.PreviewRecords = []Record{}
	return g, true
}

// FindRecord returns the record with the given ID.
func FindRecord(records []Record, id string) (Record, bool) {
	for _, r := range records {
		if r.ID == id {
			return r, true
		}
	}
	return Record{}, false
}

// aggregate computes counts and the year range for one target's records.
// Type and gene symbol come from the first record.
func aggregate(name string, recs []Record) TargetGroup {
	g := TargetGroup{
		TargetName:    name,
		TotalAptamers: len(recs),
		Records:       recs,
	}
	if len(recs) > 0 {
		g.TargetType = recs[0].TargetType
		g.GeneSymbol = recs[0].GeneSymbol
	}

	for _, r := range recs {
		switch r.Level {
		case LevelP:
			g.CountP++
		case LevelA:
			g.CountA++
		case LevelB:
			g.CountB++
		default:
			g.CountC++
		}

		if r.Year <= 0 {
			continue
		}
		if g.YearMin == 0 || r.Year < g.YearMin {
			g.YearMin = r.Year
		}
		if r.Year > g.YearMax {
			g.YearMax = r.Year
		}
	}
	return g
}

// selectPreview picks the preview tier and records for one group.
// The first tier with any records wins: P, then A, then B and C together.
func selectPreview(recs []Record) (PreviewTier, []Record) {
	if p := filterLevels(recs, LevelP); len(p) > 0 {
		sortByPKd(p)
		return PreviewP, head(p, PreviewLimitQuantitative)
	}
	if a := filterLevels(recs, LevelA); len(a) > 0 {
		sortByPKd(a)
		return PreviewA, head(a, PreviewLimitQuantitative)
	}
	bc := filterLevels(recs, LevelB, LevelC)
	sortByYear(bc)
	return PreviewBC, head(bc, PreviewLimitQualitative)
}

// filterLevels returns a new slice with the records at any of the levels.
func filterLevels(recs []Record, levels ...Level) []Record {
	out := make([]Record, 0, len(recs))
	for _, r := range recs {
		for _, l := range levels {
			if r.Level == l {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// sortByPKd orders records by descending pKd; a missing pKd counts as 0.
func sortByPKd(recs []Record) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].pKdOrZero() > recs[j].pKdOrZero()
	})
}

// sortByYear orders records by descending year.
func sortByYear(recs []Record) {
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Year > recs[j].Year
	})
}

func head[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
