package setup

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"
)

func isPortBusy(host string, port int) (bool, string) {
	// Try connecting; if succeeds, someone is listening.
	conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, strconv.Itoa(port)), 200*time.Millisecond)
	if err == nil {
		_ = conn.Close()
		return true, "tcp listener detected"
	}
	return false, ""
}

// serverHostPort extracts the dial target from the backend URL.
func serverHostPort(raw string) (string, int, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", 0, fmt.Errorf("parse server url: %w", err)
	}
	host := u.Hostname()
	if host == "" {
		return "", 0, fmt.Errorf("server url %q has no host", raw)
	}
	p := u.Port()
	if p == "" {
		switch u.Scheme {
		case "https":
			return host, 443, nil
		default:
			return host, 80, nil
		}
	}
	n, err := strconv.Atoi(p)
	if err != nil {
		return "", 0, fmt.Errorf("server url port %q: %w", p, err)
	}
	return host, n, nil
}
