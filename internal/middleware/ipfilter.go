package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// IPFilterMiddleware blocks requests from any address in the blocklist.
// Entries are CIDR ranges or single addresses.
func IPFilterMiddleware(blocklist []string) gin.HandlerFunc {
	blockedCIDRs := ParseBlocklist(blocklist)

	return func(c *gin.Context) {
		clientIP := net.ParseIP(c.ClientIP())
		if clientIP == nil {
			c.AbortWithStatus(403)
			return
		}

		for _, ipNet := range blockedCIDRs {
			if ipNet.Contains(clientIP) {
				c.AbortWithStatus(403)
				return
			}
		}

		c.Next()
	}
}

// ParseBlocklist turns blocklist entries into networks, skipping invalid ones
func ParseBlocklist(entries []string) []*net.IPNet {
	nets := make([]*net.IPNet, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if !strings.Contains(entry, "/") {
			ip := net.ParseIP(entry)
			if ip == nil {
				continue
			}
			if ip.To4() != nil {
				entry += "/32"
			} else {
				entry += "/128"
			}
		}
		if _, ipNet, err := net.ParseCIDR(entry); err == nil {
			nets = append(nets, ipNet)
		}
	}
	return nets
}
