// Package stats derives per-category usage statistics from the conversion
// history. It holds no state of its own: everything is recomputed from the
// records it is handed.
package stats

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/runnerr0/unshorts/internal/history"
)

// CategoryStats summarizes one link category.
type CategoryStats struct {
	TopDay     string  `json:"top_day"`
	MaxCount   int     `json:"max_count"`
	DailyAvg   float64 `json:"daily_avg"`
	WeeklyAvg  float64 `json:"weekly_avg"`
	MonthlyAvg float64 `json:"monthly_avg"`
}

// Compute aggregates the records of one category. Records whose date does
// not parse are skipped; if none remain, Compute returns nil. TopDay is the
// date with the most records, ties broken by earliest date.
func Compute(records []history.Record, category string) *CategoryStats {
	byDay := map[string]int{}
	weeks := map[[2]int]bool{}
	months := map[[2]int]bool{}
	total := 0

	for _, r := range records {
		if r.Type != category {
			continue
		}
		dt, err := time.Parse(history.DateFormat, r.Date)
		if err != nil {
			continue
		}
		total++
		byDay[r.Date]++
		y, w := dt.ISOWeek()
		weeks[[2]int{y, w}] = true
		months[[2]int{dt.Year(), int(dt.Month())}] = true
	}

	if total == 0 {
		return nil
	}

	topDay := ""
	maxCount := 0
	for day, n := range byDay {
		if n > maxCount || (n == maxCount && day < topDay) {
			topDay = day
			maxCount = n
		}
	}

	return &CategoryStats{
		TopDay:     topDay,
		MaxCount:   maxCount,
		DailyAvg:   round2(float64(total) / float64(len(byDay))),
		WeeklyAvg:  round2(float64(total) / float64(len(weeks))),
		MonthlyAvg: round2(float64(total) / float64(len(months))),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// placeholder is written for a category with no valid records.
type placeholder struct {
	Message string `json:"message"`
}

// Document builds the stats-file document for both categories. Empty
// categories get a placeholder message instead of a stats object.
func Document(records []history.Record) map[string]interface{} {
	doc := map[string]interface{}{}
	for _, category := range []string{history.TypeShorts, history.TypeRegular} {
		if cs := Compute(records, category); cs != nil {
			doc[category] = cs
		} else {
			doc[category] = placeholder{Message: fmt.Sprintf("No %s conversions yet.", category)}
		}
	}
	return doc
}

// WriteFile recomputes both categories and rewrites the stats file. The file
// is write-only from this tool's perspective; it is never read back.
func WriteFile(path string, records []history.Record) error {
	data, err := json.MarshalIndent(Document(records), "", "    ")
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write stats file: %w", err)
	}
	return nil
}
