package server

import (
	"net"
	"net/http"
	"strings"
)

// Find the address of the client, preferring the first X-Forwarded-For entry when behind a proxy
func clientIP(req *http.Request) string {
	forwarded := req.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if req.RemoteAddr == "" {
		return "unknown"
	}
	host, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return req.RemoteAddr
	}
	return host
}
