package core

import "github.com/prometheus/client_golang/prometheus"

const prometheusNamespace = "personal"

var RpcCallsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: prometheusNamespace,
	Name:      "rpc_calls_total",
	Help:      "Number of personal_* RPC calls made",
}, []string{"method", "status"})

var ErrorsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: prometheusNamespace,
	Name:      "errors_total",
	Help:      "Personal RPC client errors counter",
}, []string{"method", "error"})
