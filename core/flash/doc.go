// Package flash keeps short notification messages in a cookie between a
// form action and the page it redirects to.
//
// The list is stored as a JSON array of strings, capped at 10 entries with
// the oldest dropped first, and expires after 60 seconds. The cookie is not
// HttpOnly so client script may display and clear it.
//
//	f := flash.New(flash.WithSecure(isProduction))
//
//	// in a form action
//	_ = f.Append(jar, "Saved at "+time.Now().Format("15:04:05"))
//
//	// in a page
//	for _, msg := range f.Read(jar) {
//		...
//	}
//
// Read never clears the list. A cookie holding a plain string from an
// older format is read as a single message.
package flash
