package services

import (
	"IntakeKiosk/models"

	"context"
	"sort"
)

const TopReasons = 10

type Bucket struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type Summary struct {
	Total           int      `json:"total"`
	BySource        []Bucket `json:"bySource"`
	ByVisitType     []Bucket `json:"byVisitType"`
	ByAdAttribution []Bucket `json:"byAdAttribution"`
	ByCategory      []Bucket `json:"byCategory"`
	TopReasons      []Bucket `json:"topReasons"`
}

type DashboardService struct {
	patients *PatientService
}

func NewDashboardService(patients *PatientService) *DashboardService {
	return &DashboardService{patients: patients}
}

func (s *DashboardService) Summary(ctx context.Context) (Summary, error) {
	records, err := s.patients.FetchAll(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Aggregate(records), nil
}

// Aggregate recomputes every chart projection from scratch.
func Aggregate(records []models.PatientRecord) Summary {
	return Summary{
		Total: len(records),
		BySource: countBy(records, func(r models.PatientRecord) string {
			return orDefault(r.LeadSource, "Unknown")
		}),
		ByVisitType: countBy(records, func(r models.PatientRecord) string {
			return orDefault(string(r.VisitType), "Unknown")
		}),
		ByAdAttribution: countBy(records, func(r models.PatientRecord) string {
			return string(r.AdAttribution)
		}),
		ByCategory: countBy(records, func(r models.PatientRecord) string {
			return orDefault(r.SelectedCategory, "Uncategorized")
		}),
		TopReasons: top(countBy(records, func(r models.PatientRecord) string {
			return r.Reason
		}), TopReasons),
	}
}

/*
* Count records per key, an empty key is not counted
* Sort by count descending, equal counts keep first-seen order
 */
func countBy(records []models.PatientRecord, key func(models.PatientRecord) string) []Bucket {
	buckets := []Bucket{}
	index := map[string]int{}
	for _, r := range records {
		k := key(r)
		if k == "" {
			continue
		}
		if i, ok := index[k]; ok {
			buckets[i].Value++
			continue
		}
		index[k] = len(buckets)
		buckets = append(buckets, Bucket{Name: k, Value: 1})
	}
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Value > buckets[j].Value
	})
	return buckets
}

func top(buckets []Bucket, n int) []Bucket {
	if len(buckets) > n {
		return buckets[:n]
	}
	return buckets
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
