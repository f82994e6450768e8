package domain

import (
	"context"
	"sync"

	"github.com/niklaus3016/gaoqianleme/internal/client"
	"github.com/niklaus3016/gaoqianleme/pkg/xcontext"
)

// earningCategories are the record types that count toward earnings. The
// backend only exposes per-type totals, so period sums are assembled from one
// query per type.
var earningCategories = []string{"income", "bonus", "other"}

// sumCategoryTotals queries every earning category for the period
// concurrently and sums the results. A category whose query fails or comes
// back empty contributes zero rather than failing the whole sum.
func sumCategoryTotals(
	ctx context.Context, recordCaller client.RecordCaller, startDate, endDate string,
) float64 {
	totals := make([]float64, len(earningCategories))

	var wg sync.WaitGroup
	for i, category := range earningCategories {
		wg.Add(1)
		go func(i int, category string) {
			defer wg.Done()

			total, err := recordCaller.Total(ctx, client.TotalFilter{
				StartDate: startDate,
				EndDate:   endDate,
				Type:      category,
			})
			if err != nil {
				xcontext.Logger(ctx).Warnf(
					"Cannot get %s total of [%s, %s]: %v", category, startDate, endDate, err)
				return
			}

			if total != nil {
				totals[i] = total.Total
			}
		}(i, category)
	}
	wg.Wait()

	var sum float64
	for _, total := range totals {
		sum += total
	}

	return sum
}
