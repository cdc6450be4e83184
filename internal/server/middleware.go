package server

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimit caps requests per client IP at perSecond with an equal burst.
// A non-positive limit disables the middleware.
func rateLimit(perSecond int, next http.Handler) http.Handler {
	if perSecond <= 0 {
		return next
	}

	var (
		mu      sync.Mutex
		clients = make(map[string]*clientLimiter)
	)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)

		mu.Lock()
		client, exists := clients[ip]
		if !exists {
			client = &clientLimiter{
				limiter: rate.NewLimiter(rate.Every(time.Second/time.Duration(perSecond)), perSecond),
			}
			clients[ip] = client
		}
		client.lastSeen = time.Now()
		allowed := client.limiter.Allow()
		for addr, c := range clients {
			if time.Since(c.lastSeen) > 10*time.Minute {
				delete(clients, addr)
			}
		}
		mu.Unlock()

		if !allowed {
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP keys the limiter on the connection's remote address. Forwarding
// headers are client-controlled and would let a caller mint fresh limiters
// per request, so they are ignored.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
