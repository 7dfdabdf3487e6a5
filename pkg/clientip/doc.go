// Package clientip resolves the client address of HTTP requests behind
// proxies and CDNs.
//
// Forwarding headers are only honored when the peer address belongs to a
// configured trusted proxy; any other client could set them to whatever it
// likes. For trusted peers the sources are checked in order:
// CF-Connecting-IP, DO-Connecting-IP, X-Forwarded-For and X-Real-IP, falling
// back to RemoteAddr. Invalid values are skipped.
//
//	res, err := clientip.NewResolver("10.0.0.0/8", "192.0.2.1")
//	if err != nil {
//	    return err
//	}
//	r.Use(res.Middleware)
//	ip := clientip.FromContext(r.Context())
package clientip
