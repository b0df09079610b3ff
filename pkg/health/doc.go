// Package health provides HTTP handlers for health probes.
//
// [LivenessHandler] always answers 200 while the process is serving.
// [ReadinessHandler] runs a set of named [Checks] in parallel under a shared
// timeout and answers 503 if any of them fails.
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "resend": sender.Healthcheck(),
//	}, health.WithLogger(log)))
//
// Both answer JSON shaped like the service's response envelope:
//
//	{
//	  "ok": false,
//	  "status": "unhealthy",
//	  "checks": {
//	    "resend": {"status": "unhealthy", "error": "resend: api key is not configured"}
//	  }
//	}
//
// A check that does not return before the timeout is reported with
// [ErrCheckTimeout].
package health
