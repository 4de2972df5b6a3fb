package core

import "strings"

// Level is the quality tag of a record. P is the highest confidence.
type Level string

const (
	LevelP Level = "P" // quantitative, highest confidence
	LevelA Level = "A" // verified quantitative
	LevelB Level = "B" // qualitative
	LevelC Level = "C" // reported only
)

// Levels lists all quality levels from best to worst.
var Levels = []Level{LevelP, LevelA, LevelB, LevelC}

// ParseLevel converts a raw level tag to a Level.
// Matching is case-insensitive; anything unrecognized is LevelC.
func ParseLevel(s string) Level {
	switch Level(strings.ToUpper(strings.TrimSpace(s))) {
	case LevelP:
		return LevelP
	case LevelA:
		return LevelA
	case LevelB:
		return LevelB
	default:
		return LevelC
	}
}

// PreviewTier identifies which records a group preview was drawn from.
type PreviewTier string

const (
	PreviewP  PreviewTier = "P"
	PreviewA  PreviewTier = "A"
	PreviewBC PreviewTier = "BC"
)

// Record is one observation linking a publication, a target, and an aptamer.
// Records are created once at load time and never modified afterwards.
type Record struct {
	ID string `json:"internal_id"` // Assigned at load time, stable for the process lifetime only

	// Article
	ArticleTitle string `json:"article_title"`
	Year         int    `json:"year"` // 0 when unknown
	Journal      string `json:"journal"`
	DOI          string `json:"doi"`

	// Target
	TargetName   string `json:"target_name"`
	TargetType   string `json:"target_type"`
	GeneSymbol   string `json:"gene_symbol"`
	ExternalID   string `json:"external_id,omitempty"`
	ExternalName string `json:"external_name,omitempty"`
	IDType       string `json:"id_type,omitempty"`

	// Aptamer
	SequenceID string `json:"sequence_id"` // Author's label for the sequence
	Sequence   string `json:"aptamer_sequence"`

	// Affinity
	PKd             *float64 `json:"pKd,omitempty"`
	Affinity        string   `json:"affinity"` // Original display string, e.g. "50 nM"
	BufferCondition string   `json:"buffer_condition"`
	Best            bool     `json:"best"`

	Level Level `json:"level"`
}

// pKdOrZero returns the record's pKd, treating a missing value as 0.
func (r Record) pKdOrZero() float64 {
	if r.PKd == nil {
		return 0
	}
	return *r.PKd
}

// TargetGroup aggregates every record that shares one target name.
type TargetGroup struct {
	TargetName string `json:"target_name"`
	TargetType string `json:"target_type"`
	GeneSymbol string `json:"gene_symbol"`

	TotalAptamers int `json:"total_aptamers"`
	CountP        int `json:"count_P"`
	CountA        int `json:"count_A"`
	CountB        int `json:"count_B"`
	CountC        int `json:"count_C"`
	YearMin       int `json:"year_min"`
	YearMax       int `json:"year_max"`

	Records        []Record    `json:"records"`
	PreviewRecords []Record    `json:"preview_records"`
	PreviewType    PreviewTier `json:"preview_type"`
}

// Count returns the number of member records at the given level.
func (g TargetGroup) Count(l Level) int {
	switch l {
	case LevelP:
		return g.CountP
	case LevelA:
		return g.CountA
	case LevelB:
		return g.CountB
	case LevelC:
		return g.CountC
	default:
		return 0
	}
}

// RawRecord is one decoded source object, keyed by source field names
// such as "Target name" or "Aptamer sequence".
type RawRecord map[string]any
