package clientip

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/netip"
	"slices"
	"strings"
)

// forwardingHeaders are consulted in order when the request comes from a
// trusted proxy.
var forwardingHeaders = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// Config lists the proxies allowed to report the client address. Entries are
// CIDR ranges or single addresses.
type Config struct {
	TrustedProxies []string `env:"CLIENT_IP_TRUSTED_PROXIES" envSeparator:","`
}

// Resolver determines the client address of requests. The zero value trusts
// no proxy and always answers with the peer address.
type Resolver struct {
	trusted []netip.Prefix
}

// NewResolver returns a Resolver honoring forwarding headers only on
// requests whose peer address lies in one of trustedProxies.
func NewResolver(trustedProxies ...string) (*Resolver, error) {
	res := &Resolver{}
	for _, s := range trustedProxies {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		prefix, err := parsePrefix(s)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidProxy, s, err)
		}
		res.trusted = append(res.trusted, prefix)
	}
	return res, nil
}

// NewFromConfig is NewResolver(cfg.TrustedProxies...).
func NewFromConfig(cfg Config) (*Resolver, error) {
	return NewResolver(cfg.TrustedProxies...)
}

func parsePrefix(s string) (netip.Prefix, error) {
	if strings.Contains(s, "/") {
		p, err := netip.ParsePrefix(s)
		if err != nil {
			return netip.Prefix{}, err
		}
		return p.Masked(), nil
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Prefix{}, err
	}
	addr = addr.Unmap().WithZone("")
	return netip.PrefixFrom(addr, addr.BitLen()), nil
}

func (res *Resolver) trusts(addr netip.Addr) bool {
	if res == nil {
		return false
	}
	return slices.ContainsFunc(res.trusted, func(p netip.Prefix) bool {
		return p.Contains(addr)
	})
}

// FromRequest returns the normalized client IP of r, or "" when it has no
// valid peer address.
//
// Requests from untrusted peers are identified by RemoteAddr alone. For
// trusted peers the forwarding headers are checked in order; in
// X-Forwarded-For the rightmost hop that is not itself a trusted proxy is
// the client.
func (res *Resolver) FromRequest(r *http.Request) string {
	peer, ok := remoteAddr(r.RemoteAddr)
	if !ok {
		return ""
	}
	if !res.trusts(peer) {
		return peer.String()
	}

	for _, h := range forwardingHeaders {
		v := r.Header.Get(h)
		if v == "" {
			continue
		}
		if ip, ok := res.fromHops(v); ok {
			return ip.String()
		}
	}
	return peer.String()
}

func (res *Resolver) fromHops(v string) (netip.Addr, bool) {
	var hops []netip.Addr
	for candidate := range strings.SplitSeq(v, ",") {
		if addr, ok := normalize(candidate); ok {
			hops = append(hops, addr)
		}
	}
	if len(hops) == 0 {
		return netip.Addr{}, false
	}
	for _, hop := range slices.Backward(hops) {
		if !res.trusts(hop) {
			return hop, true
		}
	}
	return hops[0], true
}

func remoteAddr(s string) (netip.Addr, bool) {
	host, _, err := net.SplitHostPort(s)
	if err != nil {
		return normalize(s)
	}
	return normalize(host)
}

// normalize parses s as an IP address, unmapping IPv4-in-IPv6 and dropping
// any zone.
func normalize(s string) (netip.Addr, bool) {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.Unmap().WithZone(""), true
}

type contextKey struct{}

// WithContext stores ip in ctx.
func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

// FromContext returns the ip stored by WithContext or Middleware.
func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}

// Middleware stores the client IP of every request in its context.
func (res *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), res.FromRequest(r))))
	})
}

// LoggerExtractor adds the client IP to log records.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if ip := FromContext(ctx); ip != "" {
			return slog.String("client_ip", ip), true
		}
		return slog.Attr{}, false
	}
}
