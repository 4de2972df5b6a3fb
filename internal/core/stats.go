package core

import (
	"sort"
	"strings"
)

// DatasetStats summarizes the loaded records for the landing page.
type DatasetStats struct {
	Records           int           `json:"records"`
	Sequences         int           `json:"sequences"`         // Distinct sequences, case-insensitive
	Targets           int           `json:"targets"`           // Distinct target names
	AffinityValidated int           `json:"affinityValidated"` // Records with a pKd
	YearMin           int           `json:"yearMin"`
	YearMax           int           `json:"yearMax"`
	ByLevel           map[Level]int `json:"byLevel"`
}

// Summarize computes dataset statistics in one pass.
func Summarize(records []Record) DatasetStats {
	st := DatasetStats{
		Records: len(records),
		ByLevel: make(map[Level]int, len(Levels)),
	}
	seqs := make(map[string]struct{})
	targets := make(map[string]struct{})

	for _, r := range records {
		st.ByLevel[r.Level]++
		if r.PKd != nil {
			st.AffinityValidated++
		}
		if r.Sequence != "" {
			seqs[strings.ToUpper(r.Sequence)] = struct{}{}
		}
		targets[r.TargetName] = struct{}{}

		if r.Year <= 0 {
			continue
		}
		if st.YearMin == 0 || r.Year < st.YearMin {
			st.YearMin = r.Year
		}
		if r.Year > st.YearMax {
			st.YearMax = r.Year
		}
	}

	st.Sequences = len(seqs)
	st.Targets = len(targets)
	return st
}

// TopTargets returns up to n target names with the most records.
// Ties keep the order in which targets first appear.
func TopTargets(records []Record, n int) []string {
	if n <= 0 {
		return nil
	}
	var order []string
	counts := make(map[string]int)
	for _, r := range records {
		if _, ok := counts[r.TargetName]; !ok {
			order = append(order, r.TargetName)
		}
		counts[r.TargetName]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	return head(order, n)
}
