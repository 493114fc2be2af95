// Package session implements stateless cookie sessions.
//
// The whole session lives in a signed token (see pkg/token) stored in a
// single cookie. There is no server-side store: logging out clears the
// cookie and nothing else.
//
// # Capabilities
//
// Reading a session needs only a cookie.Jar, so it works from any page
// render. Login, Logout and Refresh take a *cookie.MutableJar, which only
// form actions and the refresh middleware are handed.
//
// # Usage
//
//	sc, _ := token.NewSigningContext(secret)
//	auth, _ := session.NewStaticAuthenticator("admin", "password", "Admin", 0)
//	mgr := session.NewManager(token.NewCodec(sc), auth,
//		session.WithTTL(10*time.Minute),
//		session.WithRefreshThreshold(2*time.Minute),
//		session.WithSecure(isProduction),
//	)
//
//	// in a form action
//	err := mgr.Login(ctx, jar, session.Credentials{Username: u, Password: p})
//	if errors.Is(err, session.ErrInvalidCredentials) {
//		// show the form again
//	}
//
//	// anywhere
//	if p := mgr.Get(jar); p != nil {
//		fmt.Println(p.User.Name)
//	}
//
// # Refresh
//
// Refresh runs once per request. When the incoming token is valid and has
// less than the threshold left, a new token with a full TTL is written.
// Tokens that already expired are never refreshed. Concurrent requests may
// each refresh; the last cookie written wins, and every candidate only
// extends the session.
//
// # Configuration
//
//	SESSION_SECRET=...
//	SESSION_PREVIOUS_SECRETS=old1,old2
//	SESSION_TTL=10m
//	SESSION_REFRESH_THRESHOLD=2m
//	SESSION_COOKIE_NAME=session
//	AUTH_USERNAME=admin
//	AUTH_PASSWORD=password
//	AUTH_PASSWORD_HASH=   # bcrypt, takes precedence over AUTH_PASSWORD
//	AUTH_DISPLAY_NAME=Admin
package session
