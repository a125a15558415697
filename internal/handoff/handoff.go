package handoff

import (
	"fmt"
	"net/url"
)

// URL builds the messaging link that hands a rendered order summary to
// the external messaging client. The navigation is fire-and-forget:
// the URL is returned to the caller and never fetched by this service.
func URL(recipient, summary string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", recipient, url.QueryEscape(summary))
}
