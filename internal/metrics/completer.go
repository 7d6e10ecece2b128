package metrics

import (
	"context"
	"time"

	"github.com/park285/fakespotter-server-go/internal/llm"
)

// InstrumentedCompleter: llm.Completer 호출마다 지연/토큰/실패를 기록합니다.
type InstrumentedCompleter struct {
	inner    llm.Completer
	provider string
	store    *Store
}

var _ llm.Completer = (*InstrumentedCompleter)(nil)

// Instrument: Completer 를 메트릭 기록용으로 감쌉니다.
func Instrument(inner llm.Completer, provider string, store *Store) *InstrumentedCompleter {
	return &InstrumentedCompleter{inner: inner, provider: provider, store: store}
}

// Complete: 내부 Completer 를 호출하고 결과를 집계합니다.
func (c *InstrumentedCompleter) Complete(ctx context.Context, req llm.Request) (llm.Result, error) {
	start := time.Now()
	result, err := c.inner.Complete(ctx, req)
	if c.store == nil {
		return result, err
	}
	if err != nil {
		c.store.RecordError(c.provider, req.Task, time.Since(start))
		return result, err
	}
	c.store.RecordSuccess(c.provider, req.Task, time.Since(start), result.Usage)
	return result, nil
}
