package analyzer

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"seoscan-go/pkg/seo"
)

// BatchResult is the outcome of one site analysis within a batch run.
type BatchResult struct {
	SiteURL  string              `json:"site_url"`
	Result   *seo.AnalysisResult `json:"result,omitempty"`
	Error    string              `json:"error,omitempty"`
	Success  bool                `json:"success"`
	Duration time.Duration       `json:"duration"`
}

// AnalyzeSites analyzes multiple websites concurrently under a bounded
// worker pool. Runs are fully independent, so the only shared state is
// the metrics cache, which is internally synchronized. Results come back
// in input order; one failing site never aborts the others. A panic in
// a single analysis is recovered and reported as that site's failure.
func (a *Analyzer) AnalyzeSites(ctx context.Context, siteURLs []string, workers int) []BatchResult {
	if workers <= 0 {
		workers = 4
	}
	if workers > len(siteURLs) {
		workers = len(siteURLs)
	}

	results := make([]BatchResult, len(siteURLs))
	jobs := make(chan int)
	var wg sync.WaitGroup
	var completed uint64

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = a.runOne(ctx, siteURLs[idx])
				atomic.AddUint64(&completed, 1)
			}
		}()
	}

	for idx := range siteURLs {
		select {
		case <-ctx.Done():
			// Mark unscheduled sites as cancelled and stop feeding.
			for rest := idx; rest < len(siteURLs); rest++ {
				results[rest] = BatchResult{SiteURL: siteURLs[rest], Error: ctx.Err().Error()}
			}
			close(jobs)
			wg.Wait()
			return results
		case jobs <- idx:
		}
	}
	close(jobs)
	wg.Wait()

	a.log.WithFields(map[string]interface{}{
		"sites":     len(siteURLs),
		"completed": atomic.LoadUint64(&completed),
		"workers":   workers,
	}).Info("Batch analysis finished")
	return results
}

func (a *Analyzer) runOne(ctx context.Context, siteURL string) (res BatchResult) {
	start := time.Now()
	res = BatchResult{SiteURL: siteURL}
	defer func() {
		if r := recover(); r != nil {
			res.Success = false
			res.Error = fmt.Sprintf("analysis panic recovered: %v", r)
			a.log.WithField("panic", r).Error("Panic during site analysis")
		}
		res.Duration = time.Since(start)
	}()

	result, err := a.AnalyzeSite(ctx, siteURL)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Result = result
	res.Success = true
	return res
}
