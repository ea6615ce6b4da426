package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Operations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "adcustody_operations_total", Help: "Ledger operations by kind and result code.",
	}, []string{"operation", "result"})

	LamportsMoved = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "adcustody_lamports_moved_total", Help: "Lamports moved into or out of vaults by committed operations.",
	}, []string{"operation"})

	ClicksBilled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "adcustody_clicks_billed_total", Help: "Clicks paid out to publishers.",
	})
)
