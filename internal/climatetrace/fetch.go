package climatetrace

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"carbontradle.org/internal/logging"
)

// DefaultBatchSize is the number of countries sent per request.
const DefaultBatchSize = 50

// Query selects the emissions to retrieve. Empty filters are omitted from
// the request.
type Query struct {
	Countries  []string
	Sectors    []string
	Subsectors []string
	Year       int
	BatchSize  int
}

// ChunkResult reports the outcome of one request.
type ChunkResult struct {
	Index     int
	Countries []string
	Units     int
	Err       error
}

// OK reports whether the chunk was retrieved.
func (r ChunkResult) OK() bool {
	return r.Err == nil
}

// FetchResult collects the response units of every successful chunk along
// with a per-chunk outcome.
type FetchResult struct {
	Units  []RawUnit
	Chunks []ChunkResult
}

// Failed returns the chunks whose request failed.
func (r *FetchResult) Failed() []ChunkResult {
	var failed []ChunkResult
	for _, c := range r.Chunks {
		if !c.OK() {
			failed = append(failed, c)
		}
	}
	return failed
}

// Complete reports whether every chunk succeeded.
func (r *FetchResult) Complete() bool {
	return len(r.Failed()) == 0
}

// ChunkCountries splits codes into contiguous chunks of at most size codes.
// A non-positive size uses DefaultBatchSize.
func ChunkCountries(codes []string, size int) [][]string {
	if size <= 0 {
		size = DefaultBatchSize
	}

	chunks := make([][]string, 0, (len(codes)+size-1)/size)
	for start := 0; start < len(codes); start += size {
		end := min(start+size, len(codes))
		chunks = append(chunks, codes[start:end])
	}
	return chunks
}

func (q Query) commonParams() url.Values {
	params := url.Values{}
	if len(q.Sectors) > 0 {
		params.Set("sectors", strings.Join(q.Sectors, ","))
	}
	if len(q.Subsectors) > 0 {
		params.Set("subsectors", strings.Join(q.Subsectors, ","))
	}
	if q.Year != 0 {
		params.Set("years", strconv.Itoa(q.Year))
	}
	return params
}

// FetchEmissions requests emissions for q, one chunk of countries at a time.
// A chunk that fails is logged and recorded in the result; the remaining
// chunks are still requested. The returned error is non-nil only when ctx
// ends the run early, in which case the partial result is still returned.
func (c *Client) FetchEmissions(ctx context.Context, q Query) (*FetchResult, error) {
	start := time.Now()
	common := q.commonParams()

	chunks := ChunkCountries(q.Countries, q.BatchSize)
	if len(chunks) == 0 {
		chunks = [][]string{nil}
	}

	result := &FetchResult{}
	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		params := url.Values{}
		for k, v := range common {
			params[k] = v
		}
		if len(chunk) > 0 {
			params.Set("countries", strings.Join(chunk, ","))
		}

		c.logger.Info("requesting chunk",
			slog.Int("chunk", i+1),
			slog.Int("chunks", len(chunks)),
			slog.Int("countries", len(chunk)))

		units, err := c.fetchChunk(ctx, params)
		result.Chunks = append(result.Chunks, ChunkResult{
			Index:     i,
			Countries: chunk,
			Units:     len(units),
			Err:       err,
		})
		c.metrics.ObserveChunk(err == nil, len(units))

		if err != nil {
			if ctx.Err() != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
				return result, ctx.Err()
			}
			logging.LogError(c.logger, "chunk request failed", err,
				slog.Int("chunk", i+1),
				slog.String("countries", strings.Join(chunk, ",")))
			continue
		}

		result.Units = append(result.Units, units...)
	}

	logging.LogOperation(c.logger, "emissions_fetched",
		slog.Int("chunks", len(result.Chunks)),
		slog.Int("failed_chunks", len(result.Failed())),
		slog.Int("units", len(result.Units)),
		slog.Duration("duration", time.Since(start)))

	return result, nil
}

func (c *Client) fetchChunk(ctx context.Context, params url.Values) ([]RawUnit, error) {
	body, err := c.get(ctx, emissionsPath, params)
	if err != nil {
		return nil, err
	}
	return splitUnits(body)
}
