package condition

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/zerohour/missiond/internal/condition"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

type instruments struct {
	evaluated metric.Int64Counter
	scans     metric.Int64Counter
	hits      metric.Int64Counter
	failures  metric.Int64Counter
	kindAttrs [kindCount]metric.AddOption
}

// newInstruments uses the global meter provider, a no-op until an SDK is
// installed.
func newInstruments() (*instruments, error) {
	m := meter()
	ins := &instruments{}
	var err error

	ins.evaluated, err = m.Int64Counter(
		"missiond.conditions.evaluated",
		metric.WithDescription("Condition evaluations by kind"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating evaluated counter: %w", err)
	}
	ins.scans, err = m.Int64Counter(
		"missiond.conditions.scans",
		metric.WithDescription("Population scans performed by counting conditions"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating scans counter: %w", err)
	}
	ins.hits, err = m.Int64Counter(
		"missiond.conditions.cache_hits",
		metric.WithDescription("Counting conditions answered from the cached verdict"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating cache hit counter: %w", err)
	}
	ins.failures, err = m.Int64Counter(
		"missiond.conditions.failures",
		metric.WithDescription("Evaluations that failed and reported false"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating failure counter: %w", err)
	}
	for k := KindInvalid; k < kindCount; k++ {
		ins.kindAttrs[k] = metric.WithAttributes(attribute.String("kind", k.String()))
	}
	return ins, nil
}

func (ins *instruments) kindAttr(k Kind) metric.AddOption {
	if k < KindInvalid || k >= kindCount {
		k = KindInvalid
	}
	return ins.kindAttrs[k]
}

func (ins *instruments) evaluation(k Kind) {
	ins.evaluated.Add(context.Background(), 1, ins.kindAttr(k))
}

func (ins *instruments) scan(k Kind) {
	ins.scans.Add(context.Background(), 1, ins.kindAttr(k))
}

func (ins *instruments) hit(k Kind) {
	ins.hits.Add(context.Background(), 1, ins.kindAttr(k))
}

func (ins *instruments) failure(k Kind) {
	ins.failures.Add(context.Background(), 1, ins.kindAttr(k))
}
