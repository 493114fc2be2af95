// Package server runs an http.Handler with sane timeouts and graceful shutdown.
//
//	srv, err := server.NewFromConfig(cfg, server.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(srv.Run(ctx, handler))
//	return g.Wait()
//
// Run serves until ctx is canceled, then calls Stop, which waits up to the
// shutdown timeout for in-flight requests.
//
// # Configuration
//
//	SERVER_ADDR=:8080
//	SERVER_READ_TIMEOUT=15s
//	SERVER_READ_HEADER_TIMEOUT=5s
//	SERVER_WRITE_TIMEOUT=15s
//	SERVER_IDLE_TIMEOUT=60s
//	SERVER_SHUTDOWN_TIMEOUT=30s
//	SERVER_MAX_HEADER_BYTES=1048576
//	SERVER_TLS_CERT_FILE=/path/cert.pem
//	SERVER_TLS_KEY_FILE=/path/key.pem
//
// With both TLS files set the server speaks HTTPS only.
package server
