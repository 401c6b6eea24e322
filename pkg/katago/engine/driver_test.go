package engine_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sadakatsu/go-performance-quality/pkg/domain"
	"github.com/sadakatsu/go-performance-quality/pkg/katago/engine"
	"github.com/sadakatsu/go-performance-quality/pkg/katago/query"
)

// fakeEngineScript stands in for the real executable: it ignores argv
// entirely, announces a version and readiness on stderr the way katago's
// analysis engine does, then echoes back one canned SuccessResponse per
// line of stdin it reads, reusing the request's own id.
const fakeEngineScript = `#!/bin/sh
echo 'KataGo v1.9.9' 1>&2
echo 'Some other line, Started, ready to begin handling requests' 1>&2
while read -r line; do
  id=$(echo "$line" | sed -n 's/.*"id":"\([^"]*\)".*/\1/p')
  printf '{"id":"%s","isDuringSearch":false,"turnNumber":0,"rootInfo":{"currentPlayer":"B"},"moveInfos":[]}\n' "$id"
done
`

func waitUntil(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func launchFakeEngine(t *testing.T) *engine.Driver {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fake-katago.sh")
	require.NoError(t, os.WriteFile(path, []byte(fakeEngineScript), 0o755))

	d, err := engine.Launch(context.Background(), engine.LaunchConfig{
		Executable:  path,
		Config:      "analysis.cfg",
		SearchModel: "search.bin.gz",
		HumanModel:  "human.bin.gz",
	})
	require.NoError(t, err)

	t.Cleanup(func() { _ = d.Kill(context.Background()) })
	return d
}

func TestDriverObservesVersionAndReadiness(t *testing.T) {
	d := launchFakeEngine(t)

	waitUntil(t, 5*time.Second, d.Ready)

	v, ok := d.Version()
	assert.True(t, ok)
	assert.Equal(t, "1.9.9", v)
}

func TestDriverWriteQueryAndNextResponse(t *testing.T) {
	d := launchFakeEngine(t)
	waitUntil(t, 5*time.Second, d.Ready)

	q := &query.Query{BoardXSize: 9, BoardYSize: 9, Rules: "chinese"}
	id, err := d.WriteQuery(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, id, q.ID)

	var found bool
	waitUntil(t, 5*time.Second, func() bool {
		_, ok := d.NextResponse(id)
		found = ok
		return ok
	})
	assert.True(t, found)

	_, ok := d.NextResponse(id)
	assert.False(t, ok, "NextResponse must drain its queue")
}

func TestDriverWriteQueryBeforeReadyFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake-katago-slow.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\nsleep 5\n"), 0o755))

	d, err := engine.Launch(context.Background(), engine.LaunchConfig{Executable: path})
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Kill(context.Background()) })

	_, err = d.WriteQuery(context.Background(), &query.Query{})
	assert.ErrorIs(t, err, domain.ErrNotReady)
}

func TestDriverKillIsIdempotentAndBlocksFurtherQueries(t *testing.T) {
	d := launchFakeEngine(t)
	waitUntil(t, 5*time.Second, d.Ready)

	require.NoError(t, d.Kill(context.Background()))
	require.NoError(t, d.Kill(context.Background()))

	_, err := d.WriteQuery(context.Background(), &query.Query{})
	assert.ErrorIs(t, err, domain.ErrNotReady)
}
