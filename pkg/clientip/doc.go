// Package clientip extracts the client IP address from an HTTP request.
//
// Proxy headers are checked in this order, and the first one holding a
// valid address wins:
//  1. CF-Connecting-IP (Cloudflare)
//  2. DO-Connecting-IP (DigitalOcean)
//  3. X-Forwarded-For (leftmost entry)
//  4. X-Real-IP
//  5. RemoteAddr
//
// Addresses are normalized with net.IP.String, and 0.0.0.0 / :: are
// rejected. When nothing parses, the raw RemoteAddr is returned.
//
//	key := "login:" + clientip.GetIP(r)
//
// Only trust these headers when the service sits behind a proxy that
// overwrites them; otherwise clients can choose their own key.
package clientip
