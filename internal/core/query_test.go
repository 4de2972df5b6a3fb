package core

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pkd(v float64) *float64 { return &v }

// rec builds a record for one target with the fields queries look at.
func rec(id, target string, level Level, pKd *float64, year int) Record {
	return Record{
		ID:         id,
		TargetName: target,
		TargetType: "Protein",
		SequenceID: "seq-" + id,
		Sequence:   "ACGT",
		PKd:        pKd,
		Year:       year,
		Level:      level,
	}
}

func fallbackRecords(t *testing.T) []Record {
	t.Helper()
	s := NewStore(nil, WithLogger(quietLogger()))
	recs, err := s.Load(context.Background())
	require.NoError(t, err)
	return recs
}

func TestSearch_FallbackThrombin(t *testing.T) {
	groups := Search(fallbackRecords(t), "thrombin")

	require.Len(t, groups, 1)
	g := groups[0]
	assert.Equal(t, "Thrombin", g.TargetName)
	assert.Equal(t, "F2", g.GeneSymbol)
	assert.Equal(t, 1, g.TotalAptamers)
	assert.Equal(t, 1, g.CountP)
	assert.Equal(t, 1992, g.YearMin)
	assert.Equal(t, 1992, g.YearMax)
	assert.Equal(t, PreviewP, g.PreviewType)
	require.Len(t, g.PreviewRecords, 1)
	assert.Equal(t, "TBA", g.PreviewRecords[0].SequenceID)
}

func TestSearch_MatchesEveryField(t *testing.T) {
	recs := fallbackRecords(t)

	tests := []struct {
		query  string
		target string
	}{
		{query: "  VEGF  ", target: "VEGF165"},
		{query: "f2", target: "Thrombin"},
		{query: "ggttggtgtggttgg", target: "Thrombin"},
		{query: "atp-40", target: "ATP"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			groups := Search(recs, tt.query)
			require.Len(t, groups, 1)
			assert.Equal(t, tt.target, groups[0].TargetName)
		})
	}
}

func TestSearch_NoMatchAndBlank(t *testing.T) {
	recs := fallbackRecords(t)

	for _, q := range []string{"zzz-no-match", "", "   \t"} {
		groups := Search(recs, q)
		assert.NotNil(t, groups, "query %q", q)
		assert.Empty(t, groups, "query %q", q)
	}
}

func TestSearch_GroupOrderAndCounts(t *testing.T) {
	recs := []Record{
		rec("1", "Lysozyme", LevelC, nil, 2001),
		rec("2", "Thrombin", LevelP, pkd(9), 1992),
		rec("3", "Thrombin", LevelB, nil, 2005),
		rec("4", "Lysozyme", LevelA, pkd(7), 2010),
		rec("5", "Thrombin", LevelC, nil, 0),
		rec("6", "Cocaine", LevelB, nil, 2012),
		rec("7", "Insulin", LevelB, nil, 2003),
	}

	groups := Search(recs, "seq")
	require.Len(t, groups, 4)
	assert.Equal(t, "Thrombin", groups[0].TargetName)
	assert.Equal(t, "Lysozyme", groups[1].TargetName)
	// Equal counts keep first-appearance order.
	assert.Equal(t, "Cocaine", groups[2].TargetName)
	assert.Equal(t, "Insulin", groups[3].TargetName)

	for _, g := range groups {
		assert.Equal(t, g.TotalAptamers, g.CountP+g.CountA+g.CountB+g.CountC, g.TargetName)
		assert.Len(t, g.Records, g.TotalAptamers, g.TargetName)
	}

	thrombin := groups[0]
	assert.Equal(t, 1992, thrombin.YearMin, "unknown years are ignored")
	assert.Equal(t, 2005, thrombin.YearMax)
}

func TestSearch_PreviewP(t *testing.T) {
	var recs []Record
	values := []*float64{pkd(7.1), nil, pkd(9.5), pkd(8.2), pkd(6.0), pkd(8.9), pkd(5.5)}
	for i, v := range values {
		recs = append(recs, rec(fmt.Sprint(i), "VEGF165", LevelP, v, 2000+i))
	}
	recs = append(recs, rec("a", "VEGF165", LevelA, pkd(10), 2020))

	groups := Search(recs, "vegf")
	require.Len(t, groups, 1)
	g := groups[0]

	assert.Equal(t, PreviewP, g.PreviewType)
	require.Len(t, g.PreviewRecords, PreviewLimitQuantitative)
	var got []float64
	for _, r := range g.PreviewRecords {
		require.Equal(t, LevelP, r.Level)
		got = append(got, *r.PKd)
	}
	assert.Equal(t, []float64{9.5, 8.9, 8.2, 7.1, 6.0}, got)
}

func TestSearch_PreviewNilPKdLast(t *testing.T) {
	recs := []Record{
		rec("1", "ATP", LevelA, nil, 2001),
		rec("2", "ATP", LevelA, pkd(6.5), 2002),
	}

	g := Search(recs, "atp")[0]
	assert.Equal(t, PreviewA, g.PreviewType)
	require.Len(t, g.PreviewRecords, 2)
	assert.Equal(t, "2", g.PreviewRecords[0].ID)
	assert.Equal(t, "1", g.PreviewRecords[1].ID)
}

func TestSearch_PreviewBC(t *testing.T) {
	recs := []Record{
		rec("1", "Cocaine", LevelB, nil, 2001),
		rec("2", "Cocaine", LevelC, nil, 2015),
		rec("3", "Cocaine", LevelC, nil, 1999),
		rec("4", "Cocaine", LevelB, nil, 2010),
	}

	g := Search(recs, "cocaine")[0]
	assert.Equal(t, PreviewBC, g.PreviewType)
	require.Len(t, g.PreviewRecords, PreviewLimitQualitative)
	assert.Equal(t, 2015, g.PreviewRecords[0].Year)
	assert.Equal(t, 2010, g.PreviewRecords[1].Year)
	assert.Equal(t, 2001, g.PreviewRecords[2].Year)
}

func TestSearch_DoesNotReorderInput(t *testing.T) {
	recs := []Record{
		rec("1", "ATP", LevelP, pkd(5), 2001),
		rec("2", "ATP", LevelP, pkd(9), 2002),
	}

	Search(recs, "atp")
	assert.Equal(t, "1", recs[0].ID)
	assert.Equal(t, "2", recs[1].ID)
}

func TestBuildTargetGroup(t *testing.T) {
	recs := fallbackRecords(t)

	g, ok := BuildTargetGroup(recs, "Thrombin")
	require.True(t, ok)
	assert.Equal(t, 1, g.TotalAptamers)
	assert.Equal(t, PreviewBC, g.PreviewType)
	assert.NotNil(t, g.PreviewRecords)
	assert.Empty(t, g.PreviewRecords)

	_, ok = BuildTargetGroup(recs, "thrombin")
	assert.False(t, ok, "target names match case-sensitively")

	_, ok = BuildTargetGroup(recs, "Nope")
	assert.False(t, ok)
}

func TestFindRecord(t *testing.T) {
	recs := fallbackRecords(t)

	r, ok := FindRecord(recs, recs[1].ID)
	require.True(t, ok)
	assert.Equal(t, "Thrombin", r.TargetName)

	_, ok = FindRecord(recs, "missing")
	assert.False(t, ok)
}

func TestService_NotFound(t *testing.T) {
	svc := NewService(NewStore(nil, WithLogger(quietLogger())))
	ctx := context.Background()

	_, err := svc.TargetGroup(ctx, "Nope")
	assert.ErrorIs(t, err, ErrTargetNotFound)
	assert.Equal(t, "TGT001", MapError(err).Code)

	_, err = svc.RecordByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.Equal(t, "REC001", MapError(err).Code)
}
