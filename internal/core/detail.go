package core

import "strings"

// Tab selects which records of a target group the detail view lists.
type Tab string

const (
	TabAll Tab = "All"
	TabP   Tab = "P"
	TabA   Tab = "A"
	TabB   Tab = "B"
	TabC   Tab = "C"
)

// Tabs lists every tab in display order.
var Tabs = []Tab{TabAll, TabP, TabA, TabB, TabC}

// ParseTab converts a query value to a Tab. ok is false for unknown values.
func ParseTab(s string) (Tab, bool) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, string(TabAll)) {
		return TabAll, true
	}
	switch Tab(strings.ToUpper(s)) {
	case TabP:
		return TabP, true
	case TabA:
		return TabA, true
	case TabB:
		return TabB, true
	case TabC:
		return TabC, true
	}
	return "", false
}

// Level returns the level a non-All tab filters on.
func (t Tab) Level() (Level, bool) {
	switch t {
	case TabP, TabA, TabB, TabC:
		return Level(t), true
	default:
		return "", false
	}
}

// DefaultTab picks the tab a detail view opens on: the best level present,
// or All when the group has no quantitative records.
func DefaultTab(g TargetGroup) Tab {
	switch {
	case g.CountP > 0:
		return TabP
	case g.CountA > 0:
		return TabA
	default:
		return TabAll
	}
}

// VisibleTabs returns All plus every level tab that has records.
func VisibleTabs(g TargetGroup) []Tab {
	tabs := []Tab{TabAll}
	for _, t := range Tabs[1:] {
		l, _ := t.Level()
		if g.Count(l) > 0 {
			tabs = append(tabs, t)
		}
	}
	return tabs
}

// TabRecords returns the group's records for a tab as a new slice.
//
// Every level tab matches its level exactly; B and C are never merged here.
// P and A tabs are ordered by descending pKd, All, B, and C by descending year.
func TabRecords(g TargetGroup, tab Tab) []Record {
	var out []Record
	if l, ok := tab.Level(); ok {
		out = filterLevels(g.Records, l)
	} else {
		out = append(make([]Record, 0, len(g.Records)), g.Records...)
	}

	if tab == TabP || tab == TabA {
		sortByPKd(out)
	} else {
		sortByYear(out)
	}
	return out
}
