package orchestrator

import (
	"context"
	"sort"
	"time"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"

	"github.com/sadakatsu/go-performance-quality/pkg/katago/engine"
	"github.com/sadakatsu/go-performance-quality/pkg/katago/response"
)

// pollInterval is the cooperative sleep between next_response polls
// (spec.md §5 "cooperative sleep of ~1 s").
const pollInterval = time.Second

// collectSearchResponses drains positionCount SuccessResponses for the
// deep search query, logging progress, and returns them ordered by
// turnNumber. Grounded on composeanalysis/get_search_responses.py.
func collectSearchResponses(ctx context.Context, driver *engine.Driver, searchID string, positionCount int, start time.Time) ([]response.SuccessResponse, error) {
	responses := make([]response.SuccessResponse, 0, positionCount)

	done := 0
	for done < positionCount {
		if contextx.IsCancelled(ctx) {
			return nil, ctx.Err()
		}

		result, ok := driver.NextResponse(searchID)
		if !ok {
			time.Sleep(pollInterval)
			continue
		}

		responses = append(responses, result)
		done++

		elapsed := time.Since(start).Seconds()
		logw.Infof(ctx, "%v positions analyzed. Position #%v completed; %.3f seconds elapsed; %.3f SPP.",
			done, result.TurnNumber, elapsed, elapsed/float64(done))
	}

	sort.Slice(responses, func(i, j int) bool { return responses[i].TurnNumber < responses[j].TurnNumber })
	return responses, nil
}
