package llm

import (
	"context"
	"time"
)

// LoggingProvider is a decorator that logs one line per LLM request.
type LoggingProvider struct {
	inner Provider
	logf  Logf
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider, logf Logf) Provider {
	return &LoggingProvider{inner: p, logf: logf}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)
	latency := time.Since(start)

	if l.logf != nil {
		if err != nil {
			l.logf("llm: model=%s latency=%s error=%v", l.inner.ModelID(), latency.Round(time.Millisecond), err)
		} else {
			l.logf("llm: model=%s latency=%s tokens=%d/%d",
				resp.Model, latency.Round(time.Millisecond),
				resp.Usage.InputTokens, resp.Usage.OutputTokens)
		}
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
