package metrics

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// TotalsSource counts the entities behind the business gauges
type TotalsSource interface {
	CountActiveBooths(ctx context.Context) (int64, error)
	CountParticipants(ctx context.Context) (int64, error)
	CountCheckIns(ctx context.Context) (int64, error)
	CountLearningRecords(ctx context.Context) (int64, error)
}

// BusinessMetricsCollector refreshes the entity gauges periodically
type BusinessMetricsCollector struct {
	source   TotalsSource
	metrics  *Metrics
	logger   *zap.Logger
	interval time.Duration
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewBusinessMetricsCollector creates a new collector
func NewBusinessMetricsCollector(source TotalsSource, metrics *Metrics, logger *zap.Logger, interval time.Duration) *BusinessMetricsCollector {
	return &BusinessMetricsCollector{
		source:   source,
		metrics:  metrics,
		logger:   logger,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start collects once immediately, then on every interval
func (c *BusinessMetricsCollector) Start() {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		c.collect()
		for {
			select {
			case <-ticker.C:
				c.collect()
			case <-c.done:
				return
			}
		}
	}()
}

// Stop ends collection and waits for the goroutine. Safe to call more than once.
func (c *BusinessMetricsCollector) Stop() {
	c.stopOnce.Do(func() { close(c.done) })
	c.wg.Wait()
}

func (c *BusinessMetricsCollector) collect() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic in business metrics collection", zap.Any("panic", r))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	booths, err := c.source.CountActiveBooths(ctx)
	if err != nil {
		c.logger.Error("Failed to count booths", zap.Error(err))
		return
	}
	participants, err := c.source.CountParticipants(ctx)
	if err != nil {
		c.logger.Error("Failed to count participants", zap.Error(err))
		return
	}
	checkIns, err := c.source.CountCheckIns(ctx)
	if err != nil {
		c.logger.Error("Failed to count check-ins", zap.Error(err))
		return
	}
	records, err := c.source.CountLearningRecords(ctx)
	if err != nil {
		c.logger.Error("Failed to count learning records", zap.Error(err))
		return
	}

	c.metrics.SetTotals(booths, participants, checkIns, records)
}
