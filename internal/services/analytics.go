package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/sidimedmar/profeleve/internal/models"
	"github.com/sidimedmar/profeleve/internal/store"
)

// AnalyticsService derives dashboard views from the submission collection.
// Every method recomputes from scratch on demand; there are no running
// counters to drift out of sync.
type AnalyticsService struct {
	store *store.Store
}

func NewAnalyticsService(st *store.Store) *AnalyticsService {
	return &AnalyticsService{store: st}
}

type Summary struct {
	TotalSubmissions int     `json:"total_submissions"`
	Average          float64 `json:"average"`
	High             float64 `json:"high"`
	Low              float64 `json:"low"`
}

// Summary returns mean, max and min percentage over all submissions. An
// empty collection yields zeros, not NaN.
func (s *AnalyticsService) Summary() Summary {
	subs := s.store.Submissions()
	out := Summary{TotalSubmissions: len(subs)}
	if len(subs) == 0 {
		return out
	}

	out.High = subs[0].Percentage
	out.Low = subs[0].Percentage
	sum := 0.0
	for _, sub := range subs {
		sum += sub.Percentage
		if sub.Percentage > out.High {
			out.High = sub.Percentage
		}
		if sub.Percentage < out.Low {
			out.Low = sub.Percentage
		}
	}
	out.Average = sum / float64(len(subs))
	return out
}

type DistributionBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

var distributionLabels = [5]string{"0-20%", "21-40%", "41-60%", "61-80%", "81-100%"}

// Distribution buckets submissions by percentage into five fixed ranges.
// Boundary ownership: exactly 20 belongs to the first bucket, anything above
// 20 up to and including 40 to the second, and so on, so the counts always
// sum to the number of submissions.
func (s *AnalyticsService) Distribution() []DistributionBucket {
	buckets := make([]DistributionBucket, len(distributionLabels))
	for i, label := range distributionLabels {
		buckets[i] = DistributionBucket{Label: label}
	}
	for _, sub := range s.store.Submissions() {
		buckets[bucketIndex(sub.Percentage)].Count++
	}
	return buckets
}

func bucketIndex(percentage float64) int {
	switch {
	case percentage <= 20:
		return 0
	case percentage <= 40:
		return 1
	case percentage <= 60:
		return 2
	case percentage <= 80:
		return 3
	default:
		return 4
	}
}

type TimelinePoint struct {
	Time  string `json:"time"`
	Count int    `json:"count"`
}

// Timeline groups submissions by the hour:minute of their local timestamp,
// truncated, and sorts the keys lexicographically. That ordering is
// chronological only within a single day; a collection spanning midnight
// wraps around, which the dashboard accepts.
func (s *AnalyticsService) Timeline() []TimelinePoint {
	counts := make(map[string]int)
	for _, sub := range s.store.Submissions() {
		counts[sub.Timestamp.Local().Format("15:04")]++
	}

	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	points := make([]TimelinePoint, len(keys))
	for i, key := range keys {
		points[i] = TimelinePoint{Time: key, Count: counts[key]}
	}
	return points
}

type StudentScore struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

// StudentSeries returns one point per submission in submission order,
// labeled with the first whitespace-delimited token of the student's name
// for compact chart labels. The full name stays on the submission record.
func (s *AnalyticsService) StudentSeries() []StudentScore {
	subs := s.store.Submissions()
	series := make([]StudentScore, len(subs))
	for i, sub := range subs {
		name := sub.StudentName
		if fields := strings.Fields(name); len(fields) > 0 {
			name = fields[0]
		}
		series[i] = StudentScore{Name: name, Percentage: sub.Percentage}
	}
	return series
}

// Submissions exposes the raw records for the dashboard detail table.
func (s *AnalyticsService) Submissions() []models.Submission {
	return s.store.Submissions()
}

var csvHeader = []string{"Name", "Phone", "Score", "Total", "Percentage", "Time"}

// WriteCSV writes the full-fidelity export: the fixed header row followed by
// one row per submission. The header is emitted even when there are no
// submissions.
func (s *AnalyticsService) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, sub := range s.store.Submissions() {
		row := []string{
			sub.StudentName,
			sub.StudentPhone,
			strconv.Itoa(sub.Score),
			strconv.Itoa(sub.TotalPoints),
			fmt.Sprintf("%.2f%%", sub.Percentage),
			sub.Timestamp.Local().Format("2006-01-02 15:04:05"),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
