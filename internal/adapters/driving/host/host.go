// Package host implements the browser extension messaging endpoint using
// the Chrome native-messaging protocol: length-prefixed JSON frames over
// stdio, one response per request.
package host

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/keyscout-cli/internal/core/domain"
	"github.com/custodia-labs/keyscout-cli/internal/core/ports/driving"
	"github.com/custodia-labs/keyscout-cli/internal/logger"
)

// Request actions understood by the host.
const (
	actionExtract = "extractTranslationData"
	actionSearch  = "search"
	actionResolve = "resolveElementText"
)

// Ports aggregates the driving port interfaces the host needs.
type Ports struct {
	// Extraction turns the captured page state into translation records.
	Extraction driving.ExtractionService

	// Search ranks records against query text.
	Search driving.KeySearchService

	// Resolver extracts display text from HTML fragments.
	Resolver driving.TextResolver
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Extraction == nil {
		return errors.New("extraction service is required")
	}
	if p.Search == nil {
		return errors.New("search service is required")
	}
	if p.Resolver == nil {
		return errors.New("resolver service is required")
	}
	return nil
}

// Host serves extension requests over a frame stream.
type Host struct {
	ports   *Ports
	in      io.Reader
	out     io.Writer
	limiter *rate.Limiter
}

// NewHost creates a host reading requests from in and writing responses
// to out.
func NewHost(ports *Ports, in io.Reader, out io.Writer) (*Host, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}
	return &Host{
		ports: ports,
		in:    in,
		out:   out,
		// Extension requests are user-driven; a small burst covers rapid
		// typing in the search box.
		limiter: rate.NewLimiter(rate.Limit(20), 10),
	}, nil
}

// request is one framed message from the extension.
type request struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// searchPayload is the payload of a search request.
type searchPayload struct {
	Query   string `json:"query"`
	Options struct {
		Limit        int     `json:"limit"`
		Threshold    float64 `json:"threshold"`
		MinRelevance int     `json:"minRelevance"`
	} `json:"options"`
}

// resolvePayload is the payload of a resolveElementText request.
type resolvePayload struct {
	HTML string `json:"html"`
}

// recordJSON is the wire shape of one translation record.
type recordJSON struct {
	Key string `json:"key"`
	Val string `json:"val"`
}

// resultJSON is the wire shape of one search result.
type resultJSON struct {
	Item  recordJSON `json:"item"`
	Score float64    `json:"score"`
}

// errorResponse is the failure envelope shared by every action.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// extractResponse is the success envelope for extractTranslationData.
type extractResponse struct {
	Success    bool         `json:"success"`
	Data       []recordJSON `json:"data"`
	DataSource string       `json:"dataSource"`
	Strategy   string       `json:"strategy"`
	Count      int          `json:"count"`
}

// searchResponse is the success envelope for search.
type searchResponse struct {
	Success bool         `json:"success"`
	Results []resultJSON `json:"results"`
}

// resolveResponse is the success envelope for resolveElementText.
type resolveResponse struct {
	Success bool   `json:"success"`
	Text    string `json:"text"`
}

// Run serves requests until the input stream closes or the context is
// cancelled. A clean EOF is not an error: the browser closing the pipe is
// how a native-messaging session ends.
func (h *Host) Run(ctx context.Context) error {
	logger.Info("Host listening on stdio")

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		frame, err := readFrame(h.in)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading request: %w", err)
		}

		if err := h.limiter.Wait(ctx); err != nil {
			return err
		}

		response := h.handle(ctx, frame)
		if err := writeFrame(h.out, response); err != nil {
			return fmt.Errorf("writing response: %w", err)
		}
	}
}

// handle dispatches one request and always produces a response envelope.
func (h *Host) handle(ctx context.Context, frame []byte) any {
	var req request
	if err := json.Unmarshal(frame, &req); err != nil {
		return errorResponse{Error: fmt.Sprintf("malformed request: %v", err)}
	}

	logger.Debug("Host request: %s", req.Action)

	switch req.Action {
	case actionExtract:
		return h.handleExtract(ctx)
	case actionSearch:
		return h.handleSearch(ctx, req.Payload)
	case actionResolve:
		return h.handleResolve(req.Payload)
	default:
		return errorResponse{Error: fmt.Sprintf("unknown action %q", req.Action)}
	}
}

func (h *Host) handleExtract(ctx context.Context) any {
	batch, err := h.ports.Extraction.Extract(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNoTranslationData) {
			// The dictionary may simply not have loaded yet; schedule one
			// delayed pass so a later search can hit the cache.
			h.ports.Extraction.ExtractLater(ctx)
			return errorResponse{Error: "no translation data found"}
		}
		return errorResponse{Error: err.Error()}
	}

	data := make([]recordJSON, 0, len(batch.Records))
	for _, r := range batch.Records {
		data = append(data, recordJSON{Key: r.Key(), Val: r.Value()})
	}
	return extractResponse{
		Success:    true,
		Data:       data,
		DataSource: batch.SourceLabel,
		Strategy:   batch.Strategy.String(),
		Count:      len(data),
	}
}

func (h *Host) handleSearch(ctx context.Context, payload json.RawMessage) any {
	var p searchPayload
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &p); err != nil {
			return errorResponse{Error: fmt.Sprintf("malformed search payload: %v", err)}
		}
	}

	batch, ok := h.ports.Extraction.Current()
	if !ok {
		var err error
		batch, err = h.ports.Extraction.Extract(ctx)
		if err != nil {
			return errorResponse{Error: "no translation data found"}
		}
	}

	opts := domain.SearchOptions{
		Limit:               p.Options.Limit,
		MinRelevancePercent: p.Options.MinRelevance,
		Fuzzy:               p.Options.Threshold > 0,
	}
	results, err := h.ports.Search.Search(batch.Records, p.Query, opts)
	if err != nil {
		return errorResponse{Error: err.Error()}
	}

	out := make([]resultJSON, 0, len(results))
	for _, r := range results {
		out = append(out, resultJSON{
			Item:  recordJSON{Key: r.Record().Key(), Val: r.Record().Value()},
			Score: r.Score(),
		})
	}
	return searchResponse{Success: true, Results: out}
}

func (h *Host) handleResolve(payload json.RawMessage) any {
	var p resolvePayload
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &p); err != nil {
			return errorResponse{Error: fmt.Sprintf("malformed resolve payload: %v", err)}
		}
	}

	text, err := h.ports.Resolver.ResolveText(p.HTML)
	if err != nil {
		return errorResponse{Error: err.Error()}
	}
	if text == "" {
		return errorResponse{Error: "no text found"}
	}
	return resolveResponse{Success: true, Text: text}
}
