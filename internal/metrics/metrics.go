package metrics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"domainsearch/internal/models"
)

var (
	cachedRecordsDesc = prometheus.NewDesc(
		"domainsearch_cached_records",
		"Number of cached search records currently stored",
		nil,
		nil,
	)

	suffixLookupDesc = prometheus.NewDesc(
		"domainsearch_suffix_lookups_total",
		"Total persisted candidate checks by suffix and outcome",
		[]string{"suffix", "outcome"},
		nil,
	)

	domainChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "domainsearch_domain_checks_total",
			Help: "Total candidate domain checks by outcome",
		},
		[]string{"outcome"},
	)

	whoisLookupDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "domainsearch_whois_lookup_duration_seconds",
			Help:    "Remote WHOIS lookup duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"provider", "status"},
	)

	evictedRecordsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "domainsearch_evicted_records_total",
			Help: "Total cached records removed by eviction passes",
		},
	)
)

// RecordCounter reports the number of cached records.
type RecordCounter interface {
	CountSearches(ctx context.Context) (int64, error)
}

// CacheCollector is a custom Prometheus collector that reads the cached
// record count from the database on each scrape.
type CacheCollector struct {
	store RecordCounter
}

// NewCacheCollector creates a collector backed by store.
func NewCacheCollector(store RecordCounter) *CacheCollector {
	return &CacheCollector{store: store}
}

// Describe sends the metric descriptor to the channel.
func (c *CacheCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- cachedRecordsDesc
}

// Collect queries the record count and emits it as a gauge.
func (c *CacheCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := c.store.CountSearches(ctx)
	if err != nil {
		slog.Error("failed to collect cached record metrics", "error", err)
		return
	}
	ch <- prometheus.MustNewConstMetric(cachedRecordsDesc, prometheus.GaugeValue, float64(count))
}

// LookupStore persists suffix lookup counts.
type LookupStore interface {
	IncrementSuffixLookup(ctx context.Context, suffix, outcome string) error
	GetAllSuffixLookups(ctx context.Context) ([]models.SuffixLookup, error)
}

// LookupCollector reads suffix lookup counts from the database on each scrape.
type LookupCollector struct {
	store LookupStore
}

// NewLookupCollector creates a collector backed by store.
func NewLookupCollector(store LookupStore) *LookupCollector {
	return &LookupCollector{store: store}
}

func (c *LookupCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- suffixLookupDesc
}

func (c *LookupCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	lookups, err := c.store.GetAllSuffixLookups(ctx)
	if err != nil {
		slog.Error("failed to collect suffix lookup metrics", "error", err)
		return
	}
	for _, l := range lookups {
		ch <- prometheus.MustNewConstMetric(
			suffixLookupDesc,
			prometheus.CounterValue,
			float64(l.Count),
			l.Suffix,
			l.Outcome,
		)
	}
}

// Store is everything the metrics package reads from or writes to the database.
type Store interface {
	RecordCounter
	LookupStore
}

// Recorder provides async suffix lookup recording.
type Recorder struct {
	store LookupStore
	wg    sync.WaitGroup
}

// Record upserts one lookup in the background.
func (r *Recorder) Record(suffix, outcome string) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := r.store.IncrementSuffixLookup(ctx, suffix, outcome); err != nil {
			slog.Error("failed to record suffix lookup", "suffix", suffix, "outcome", outcome, "error", err)
		}
	}()
}

// Wait blocks until pending recordings have finished.
func (r *Recorder) Wait() {
	r.wg.Wait()
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the custom collectors and initializes the recorder.
// Must be called once at startup; later calls are no-ops.
func Init(store Store) {
	recorderOnce.Do(func() {
		recorder = &Recorder{store: store}
		prometheus.MustRegister(NewCacheCollector(store), NewLookupCollector(store))
	})
}

// Flush waits for outstanding lookup recordings. Call it during shutdown.
func Flush() {
	if recorder != nil {
		recorder.Wait()
	}
}

// RecordCheck counts one candidate check by outcome and, once Init has run,
// persists it against the candidate's suffix.
func RecordCheck(suffix, outcome string) {
	domainChecksTotal.WithLabelValues(outcome).Inc()
	if recorder != nil {
		recorder.Record(suffix, outcome)
	}
}

// RecordLookup observes one remote WHOIS call.
func RecordLookup(provider string, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "error"
	}
	whoisLookupDuration.WithLabelValues(provider, status).Observe(duration.Seconds())
}

// RecordEviction adds the number of rows removed by an eviction pass.
func RecordEviction(deleted int64) {
	if deleted > 0 {
		evictedRecordsTotal.Add(float64(deleted))
	}
}
