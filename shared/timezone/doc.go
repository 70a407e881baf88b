// Package timezone pins every timestamp the site writes or prints to the resort's local zone.
//
// The zone comes from APP_TIMEZONE (an IANA name such as "Africa/Lagos") and is loaded when the
// package is first imported. An unknown name falls back to UTC with an error log.
//
//	now := timezone.Now()
//	label := timezone.Format(event.EventDate, "2006-01-02")
//	day, err := timezone.Parse("2006-01-02", "2026-12-31")
package timezone
