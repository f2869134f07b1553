// Package tally groups ledger entries and splits shares of a total.
package tally

import (
	"sort"

	"github.com/SscSPs/alsabqon_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// tenthsOfWhole is 100.0 expressed in tenths of a percent.
const tenthsOfWhole = 1000

// Percentages splits 100.0 across counts in tenths of a percent using the
// largest-remainder method. Every value is within 0.1 of 100*count/total and
// the values sum to exactly 100.0 whenever the total is positive. Ties on the
// remainder go to the smaller key.
func Percentages(counts map[int]int) map[int]decimal.Decimal {
	res := make(map[int]decimal.Decimal, len(counts))
	total := 0
	for _, c := range counts {
		total += c
	}
	if total <= 0 {
		for id := range counts {
			res[id] = decimal.Zero
		}
		return res
	}

	type share struct {
		id        int
		tenths    int64
		remainder int64
	}
	shares := make([]share, 0, len(counts))
	var allocated int64
	for id, c := range counts {
		scaled := int64(c) * tenthsOfWhole
		s := share{id: id, tenths: scaled / int64(total), remainder: scaled % int64(total)}
		allocated += s.tenths
		shares = append(shares, s)
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].remainder != shares[j].remainder {
			return shares[i].remainder > shares[j].remainder
		}
		return shares[i].id < shares[j].id
	})
	for i := int64(0); i < tenthsOfWhole-allocated; i++ {
		shares[i].tenths++
	}

	for _, s := range shares {
		res[s.id] = decimal.New(s.tenths, -1)
	}
	return res
}

// Summarise groups entries by category and attaches their share of the total count.
func Summarise(startDate, endDate string, entries []domain.PracticeEntry) *domain.PracticeSummary {
	summary := &domain.PracticeSummary{
		StartDate:  startDate,
		EndDate:    endDate,
		ByCategory: make(map[int]domain.CategorySummary),
		Entries:    entries,
	}
	if summary.Entries == nil {
		summary.Entries = []domain.PracticeEntry{}
	}

	counts := make(map[int]int)
	sessions := make(map[int]int)
	for _, e := range entries {
		counts[e.CategoryID] += e.Count
		sessions[e.CategoryID]++
		summary.Total += e.Count
	}

	for id, pct := range Percentages(counts) {
		summary.ByCategory[id] = domain.CategorySummary{
			Count:      counts[id],
			Sessions:   sessions[id],
			Percentage: pct,
		}
	}
	return summary
}
