package rules

// AlertRules returns a PrometheusRule CR containing alert rules for udam
// operational monitoring.
func AlertRules() PrometheusRule {
	return newRule("udam-alerts", "udam-alerts", []Rule{
		alert("UdamDown", `absent(up{job="udam"})`, "2m", "critical",
			"UDAM is down",
			"The udam job has been absent for more than 2 minutes."),
		alert("UdamNotReady", `udam_ready == 0`, "2m", "critical",
			"UDAM cannot reach its datastore",
			"The readiness check has reported the datastore unreachable for more than 2 minutes."),
		alert("UdamHighErrorRate", `udam:http_errors:rate5m / udam:http_requests:rate5m > 0.05`, "5m", "warning",
			"High HTTP error rate on UDAM",
			"More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes."),
		alert("UdamSweepStalled", `time() - udam_scheduler_next_sweep_timestamp > 900`, "5m", "critical",
			"Window expiry sweep is overdue",
			"The scheduled sweep is more than 15 minutes late. Elapsed dispute and counter windows are only applied on access."),
		alert("UdamSweepSlow", `udam:window_sweep_duration:p95_5m > 10`, "10m", "warning",
			"Window expiry sweeps are slow",
			"The p95 sweep duration has exceeded 10 seconds for 10 minutes."),
		alert("UdamVersionConflicts", `sum(rate(udam_order_version_conflicts_total[5m])) > 1`, "10m", "warning",
			"Frequent concurrent order updates",
			"More than one optimistic version conflict per second has been retried for 10 minutes."),
		alert("UdamReservationFailures", `udam:reservation_failures:rate5m > 0.5`, "15m", "info",
			"Orders are failing on insufficient inventory",
			"Buyers have been hitting sold-out listings at more than 0.5/s for 15 minutes."),
		alert("UdamNotificationFailures", `increase(udam_notification_failures_total[5m]) > 0`, "1m", "warning",
			"Notification delivery failures detected",
			"One or more participant notifications (Discord webhooks) have failed to send."),
	})
}
