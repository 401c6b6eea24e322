package orchestrator

import (
	"context"
	"time"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"

	"github.com/sadakatsu/go-performance-quality/pkg/katago/engine"
	"github.com/sadakatsu/go-performance-quality/pkg/katago/humanprofile"
)

// collectHumanPolicies drains one human_policy response per (profile,
// position) pair across every profile's shallow query, returning
// turn_number -> profile -> label->prior policy map. Grounded on
// composeanalysis/get_human_policies.py; the deep search's own query id is
// not polled here (it was already fully drained by
// collectSearchResponses, so polling it again would only ever find an
// empty queue -- see DESIGN.md).
func collectHumanPolicies(
	ctx context.Context,
	driver *engine.Driver,
	queryIDs map[humanprofile.Profile]string,
	positionCount int,
	size int,
) (map[int]map[humanprofile.Profile]map[string]float64, error) {
	result := map[int]map[humanprofile.Profile]map[string]float64{}

	total := len(queryIDs) * (positionCount - 1)
	complete := 0

	for complete < total {
		if contextx.IsCancelled(ctx) {
			return nil, ctx.Err()
		}

		found := false
		for profile, queryID := range queryIDs {
			r, ok := driver.NextResponse(queryID)
			if !ok {
				continue
			}

			complete++
			found = true

			turnProfiles, ok := result[r.TurnNumber]
			if !ok {
				turnProfiles = map[humanprofile.Profile]map[string]float64{}
				result[r.TurnNumber] = turnProfiles
			}
			turnProfiles[profile] = convertToPolicyMap(size, r.HumanPolicy)
		}

		if found {
			logw.Infof(ctx, "%v / %v profiles complete...", complete, total)
		} else {
			select {
			case <-time.After(pollInterval):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	return result, nil
}
