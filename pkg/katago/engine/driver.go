package engine

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"

	"github.com/sadakatsu/go-performance-quality/pkg/domain"
	"github.com/sadakatsu/go-performance-quality/pkg/katago/query"
	"github.com/sadakatsu/go-performance-quality/pkg/katago/response"
)

var version = build.NewVersion(0, 1, 0)

const (
	versionLinePrefix = "KataGo v"
	readySentinel      = "Started, ready to begin handling requests"
)

// Driver owns one external engine subprocess: it writes Query lines to its
// stdin, and two reader goroutines demultiplex stdout SuccessResponse
// lines into a per-id queue and watch stderr for the version and
// readiness sentinels (spec.md §4.G, §5). Grounded on katago/engine.py's
// Engine class; os/exec replaces subprocess.Popen, an argv slice replaces
// the shell-quoted launch_script (see DESIGN.md).
type Driver struct {
	cmd   *exec.Cmd
	stdin io.WriteCloser

	ready   atomic.Bool
	version atomic.Pointer[string]

	mu        sync.Mutex
	responses map[string][]response.SuccessResponse

	closed iox.AsyncCloser
}

// Launch starts the engine subprocess per config and begins reading its
// stdout/stderr in the background. The returned Driver is not ready to
// accept queries until its stderr reader observes the readiness sentinel.
func Launch(ctx context.Context, config LaunchConfig) (*Driver, error) {
	cmd := exec.Command(config.Executable, config.Args()...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: stdin pipe: %v", domain.ErrEngineLaunch, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: stdout pipe: %v", domain.ErrEngineLaunch, err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: stderr pipe: %v", domain.ErrEngineLaunch, err)
	}

	logw.Infof(ctx, "Engine driver %v launching: %v %v", version, config.Executable, strings.Join(config.Args(), " "))

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEngineLaunch, err)
	}

	d := &Driver{
		cmd:       cmd,
		stdin:     stdin,
		responses: map[string][]response.SuccessResponse{},
		closed:    iox.NewAsyncCloser(),
	}

	go d.readStderr(ctx, stderr)
	go d.readStdout(ctx, stdout)

	logw.Infof(ctx, "Engine launched, waiting for readiness sentinel")
	return d, nil
}

// Version returns the engine's self-reported version and true, or "" and
// false if the version line has not yet been observed.
func (d *Driver) Version() (string, bool) {
	if v := d.version.Load(); v != nil {
		return *v, true
	}
	return "", false
}

// Ready reports whether the readiness sentinel has been observed.
func (d *Driver) Ready() bool {
	return d.ready.Load()
}

func (d *Driver) readStderr(ctx context.Context, stderr io.Reader) {
	scanner := bufio.NewScanner(stderr)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()

		if d.version.Load() == nil && strings.HasPrefix(line, versionLinePrefix) {
			v := strings.TrimSpace(strings.TrimPrefix(line, versionLinePrefix))
			d.version.Store(&v)
			logw.Infof(ctx, "Engine version: %v", v)
			continue
		}
		if !d.ready.Load() && strings.HasSuffix(line, readySentinel) {
			d.ready.Store(true)
			logw.Infof(ctx, "Engine ready")
			continue
		}
		logw.Debugf(ctx, "Engine stderr: %v", line)
	}
}

func (d *Driver) readStdout(ctx context.Context, stdout io.Reader) {
	defer d.closed.Close()

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		var r response.SuccessResponse
		if err := json.Unmarshal([]byte(line), &r); err != nil {
			logw.Errorf(ctx, "%v: undecodable engine response line: %v", domain.ErrEngineProtocol, err)
			continue
		}

		d.mu.Lock()
		d.responses[r.ID] = append(d.responses[r.ID], r)
		d.mu.Unlock()
	}
}

// WriteQuery assigns q a fresh id, writes it as a single JSON line to the
// engine's stdin, and returns the assigned id. Fails with ErrNotReady
// before the readiness sentinel is observed or after Kill.
func (d *Driver) WriteQuery(ctx context.Context, q *query.Query) (string, error) {
	if d.closed.IsClosed() {
		return "", fmt.Errorf("%w: engine has been killed", domain.ErrNotReady)
	}
	if !d.ready.Load() {
		return "", fmt.Errorf("%w: engine has not signaled readiness", domain.ErrNotReady)
	}

	q.ID = uuid.NewString()

	encoded, err := json.Marshal(q)
	if err != nil {
		return "", fmt.Errorf("%w: encoding query: %v", domain.ErrEngineProtocol, err)
	}

	if _, err := d.stdin.Write(append(encoded, '\n')); err != nil {
		return "", fmt.Errorf("%w: writing query: %v", domain.ErrNotReady, err)
	}

	logw.Debugf(ctx, "Wrote query %v: %v", q.ID, string(encoded))
	return q.ID, nil
}

// NextResponse pops the oldest queued SuccessResponse for queryID, if any,
// non-blockingly.
func (d *Driver) NextResponse(queryID string) (response.SuccessResponse, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	queue, ok := d.responses[queryID]
	if !ok || len(queue) == 0 {
		return response.SuccessResponse{}, false
	}

	next := queue[0]
	d.responses[queryID] = queue[1:]
	return next, true
}

// Kill terminates the engine subprocess unconditionally. Idempotent.
// After Kill, WriteQuery always fails with ErrNotReady.
func (d *Driver) Kill(ctx context.Context) error {
	if d.closed.IsClosed() {
		return nil
	}
	logw.Infof(ctx, "Killing engine")
	err := d.cmd.Process.Kill()
	d.closed.Close()
	return err
}

// Closed returns a channel closed once Kill is called or the stdout reader
// has observed EOF (the engine process has exited and been fully drained),
// whichever comes first.
func (d *Driver) Closed() <-chan struct{} {
	return d.closed.Closed()
}
