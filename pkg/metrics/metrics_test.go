package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestRegistryIsDefaultRegisterer(t *testing.T) {
	if Registry == nil {
		t.Fatal("Registry is nil")
	}
	if Registry != prometheus.DefaultRegisterer {
		t.Error("Registry should alias the default Prometheus registerer")
	}
}

// The hydrate_* metrics in the catalog are registered via promauto in
// their own packages and scraped off the default registry; a metric
// registered through Registry must therefore reach the default gatherer.
func TestRegistryFeedsDefaultGatherer(t *testing.T) {
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "hydrate_registry_selftest_total",
		Help: "Self-test counter for registry wiring",
	})
	if err := Registry.Register(counter); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	defer prometheus.Unregister(counter)

	counter.Add(3)

	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}

	for _, fam := range families {
		if fam.GetName() != "hydrate_registry_selftest_total" {
			continue
		}
		if got := fam.GetMetric()[0].GetCounter().GetValue(); got != 3 {
			t.Errorf("counter value = %v, want 3", got)
		}
		return
	}
	t.Error("hydrate_registry_selftest_total not found in gathered metrics")
}
