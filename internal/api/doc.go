// Package api exposes user agent detection over HTTP.
//
// Routes:
//
//	GET  /v1/detect        classify the calling client
//	POST /v1/detect        classify {"user_agent", "platform", "max_touch_points", "ms_stream"}
//	POST /v1/detect/batch  classify {"items": [...]}, at most 100 items by default
//	GET  /v1/stats         parser cache statistics
//	GET  /health/live
//	GET  /health/ready
//
// Responses use the envelope {"data": ..., "error": {"code", "message"}}.
package api
