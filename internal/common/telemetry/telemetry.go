// File path: internal/common/telemetry/telemetry.go
package telemetry

import (
	"context"
	"expvar"
	"strings"
	"sync"
	"time"

	"github.com/invoiceworks/edicheck/internal/common"
)

type spanKey struct{}

type span struct {
	name  string
	start time.Time
}

var (
	initOnce sync.Once

	parseTotal     *expvar.Map
	parseLatencyMS *expvar.Map

	compareTotal     *expvar.Int
	compareInvalid   *expvar.Int
	compareLatencyMS *expvar.Int

	uploadBytesTotal *expvar.Int
)

func ensureInit() {
	initOnce.Do(func() {
		parseTotal = expvar.NewMap("edicheck_parse_total")
		parseLatencyMS = expvar.NewMap("edicheck_parse_latency_ms")

		compareTotal = expvar.NewInt("edicheck_compare_total")
		compareInvalid = expvar.NewInt("edicheck_compare_invalid_total")
		compareLatencyMS = expvar.NewInt("edicheck_compare_latency_ms")

		uploadBytesTotal = expvar.NewInt("edicheck_upload_bytes_total")
	})
}

// StartSpan records a named span for debug tracing. The returned func closes
// the span and logs its duration together with any extra attributes.
func StartSpan(ctx context.Context, name string) (context.Context, func(attrs ...interface{})) {
	ensureInit()
	sp := &span{name: name, start: time.Now()}
	ctx = context.WithValue(ctx, spanKey{}, sp)
	logger := common.Logger()
	logger.Debug("trace: start", "span", name)
	return ctx, func(attrs ...interface{}) {
		duration := time.Since(sp.start)
		logger.Debug("trace: end", append([]interface{}{"span", name, "dur", duration}, attrs...)...)
	}
}

// RecordParse counts one parse request of the given kind ("edi" or "spec").
func RecordParse(kind string, size int, duration time.Duration) {
	ensureInit()
	key := strings.TrimSpace(strings.ToLower(kind))
	if key == "" {
		key = "unknown"
	}
	parseTotal.Add(key, 1)
	if duration > 0 {
		parseLatencyMS.Add(key, duration.Milliseconds())
	}
	if size > 0 {
		uploadBytesTotal.Add(int64(size))
	}
}

// RecordCompare counts one comparison run and whether it failed validation.
func RecordCompare(valid bool, duration time.Duration) {
	ensureInit()
	compareTotal.Add(1)
	if !valid {
		compareInvalid.Add(1)
	}
	if duration > 0 {
		compareLatencyMS.Add(duration.Milliseconds())
	}
}

// SpanDuration reports how long the span attached to ctx has been running.
func SpanDuration(ctx context.Context) time.Duration {
	sp, _ := ctx.Value(spanKey{}).(*span)
	if sp == nil {
		return 0
	}
	return time.Since(sp.start)
}
