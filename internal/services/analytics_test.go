package services_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sidimedmar/profeleve/internal/models"
	"github.com/sidimedmar/profeleve/internal/services"
	"github.com/sidimedmar/profeleve/internal/store"
)

func submissionAt(name string, percentage float64, ts time.Time) models.Submission {
	return models.Submission{
		ID:           "sub-" + name,
		StudentName:  name,
		StudentPhone: "33001122",
		Score:        int(percentage / 10),
		TotalPoints:  10,
		Percentage:   percentage,
		Timestamp:    ts,
	}
}

func TestSummaryEmpty(t *testing.T) {
	analytics := services.NewAnalyticsService(store.NewStore())

	sum := analytics.Summary()
	require.Equal(t, 0, sum.TotalSubmissions)
	require.Equal(t, 0.0, sum.Average)
	require.Equal(t, 0.0, sum.High)
	require.Equal(t, 0.0, sum.Low)
}

func TestSummarySingleSubmission(t *testing.T) {
	st := store.NewStore()
	st.AddSubmission(submissionAt("Aya", 60, time.Now()))
	analytics := services.NewAnalyticsService(st)

	sum := analytics.Summary()
	require.Equal(t, 1, sum.TotalSubmissions)
	require.Equal(t, 60.0, sum.Average)
	require.Equal(t, 60.0, sum.High)
	require.Equal(t, 60.0, sum.Low)
}

func TestSummaryAggregates(t *testing.T) {
	st := store.NewStore()
	now := time.Now()
	st.AddSubmission(submissionAt("Aya", 100, now))
	st.AddSubmission(submissionAt("Bilal", 40, now))
	st.AddSubmission(submissionAt("Chems", 70, now))
	analytics := services.NewAnalyticsService(st)

	sum := analytics.Summary()
	require.Equal(t, 3, sum.TotalSubmissions)
	require.Equal(t, 70.0, sum.Average)
	require.Equal(t, 100.0, sum.High)
	require.Equal(t, 40.0, sum.Low)
}

func TestDistributionBoundaries(t *testing.T) {
	st := store.NewStore()
	now := time.Now()
	for _, p := range []float64{0, 20, 20.000001, 40, 41, 100} {
		st.AddSubmission(submissionAt("s", p, now))
	}
	analytics := services.NewAnalyticsService(st)

	buckets := analytics.Distribution()
	require.Len(t, buckets, 5)
	require.Equal(t, "0-20%", buckets[0].Label)
	require.Equal(t, "81-100%", buckets[4].Label)

	// 0 and 20 land in the first bucket, anything above 20 in the second.
	require.Equal(t, 2, buckets[0].Count)
	require.Equal(t, 2, buckets[1].Count)
	require.Equal(t, 1, buckets[2].Count)
	require.Equal(t, 0, buckets[3].Count)
	require.Equal(t, 1, buckets[4].Count)

	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	require.Equal(t, st.SubmissionCount(), total)
}

func TestDistributionEmpty(t *testing.T) {
	analytics := services.NewAnalyticsService(store.NewStore())

	buckets := analytics.Distribution()
	require.Len(t, buckets, 5)
	for _, b := range buckets {
		require.Equal(t, 0, b.Count)
	}
}

func TestTimelineGroupsByMinute(t *testing.T) {
	st := store.NewStore()
	base := time.Date(2026, 3, 14, 9, 5, 0, 0, time.Local)
	st.AddSubmission(submissionAt("Aya", 80, base))
	st.AddSubmission(submissionAt("Bilal", 60, base.Add(20*time.Second)))
	st.AddSubmission(submissionAt("Chems", 40, base.Add(2*time.Minute)))
	analytics := services.NewAnalyticsService(st)

	points := analytics.Timeline()
	require.Equal(t, []services.TimelinePoint{
		{Time: "09:05", Count: 2},
		{Time: "09:07", Count: 1},
	}, points)
}

func TestStudentSeriesUsesFirstNameToken(t *testing.T) {
	st := store.NewStore()
	now := time.Now()
	st.AddSubmission(submissionAt("Amina Sow", 90, now))
	st.AddSubmission(submissionAt("  ", 50, now))
	st.AddSubmission(submissionAt("Karim", 70, now))
	analytics := services.NewAnalyticsService(st)

	series := analytics.StudentSeries()
	require.Len(t, series, 3)
	require.Equal(t, "Amina", series[0].Name)
	require.Equal(t, 90.0, series[0].Percentage)
	require.Equal(t, "  ", series[1].Name)
	require.Equal(t, "Karim", series[2].Name)
}

func TestWriteCSVHeaderOnly(t *testing.T) {
	analytics := services.NewAnalyticsService(store.NewStore())

	var buf bytes.Buffer
	require.NoError(t, analytics.WriteCSV(&buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Equal(t, [][]string{{"Name", "Phone", "Score", "Total", "Percentage", "Time"}}, rows)
}

func TestWriteCSVRowFormat(t *testing.T) {
	st := store.NewStore()
	ts := time.Date(2026, 3, 14, 9, 5, 30, 0, time.Local)
	st.AddSubmission(models.Submission{
		ID:           "sub-1",
		StudentName:  "Amina Sow",
		StudentPhone: "33001122",
		Score:        5,
		TotalPoints:  6,
		Percentage:   83.333333,
		Timestamp:    ts,
	})
	analytics := services.NewAnalyticsService(st)

	var buf bytes.Buffer
	require.NoError(t, analytics.WriteCSV(&buf))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, []string{
		"Amina Sow", "33001122", "5", "6", "83.33%", "2026-03-14 09:05:30",
	}, rows[1])
}
