package guard

import "github.com/prometheus/client_golang/prometheus"

const (
	stageAuthenticate = "authenticate"
	stageAdmin        = "admin"
	stageSelf         = "self"

	outcomeAllow = "allow"
	outcomeDeny  = "deny"
	outcomeError = "error"
)

var decisionsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bistro_guard_decisions_total",
		Help: "Access decisions made by the guard.",
	},
	[]string{"stage", "outcome"},
)

func init() {
	prometheus.MustRegister(decisionsTotal)
}

func observe(stage string, err error) {
	outcome := outcomeAllow
	switch {
	case err == nil:
	case isDenial(err):
		outcome = outcomeDeny
	default:
		outcome = outcomeError
	}
	decisionsTotal.WithLabelValues(stage, outcome).Inc()
}
