package deeplink

import "regexp"

// Classifier decides whether a request comes from a mobile browser.
// It is injectable so dispatch logic stays testable without a real
// user agent.
type Classifier interface {
	Mobile(userAgent string) bool
}

var mobilePattern = regexp.MustCompile(`(?i)android|iphone|ipad|ipod|windows phone|opera mini|mobile`)

// UAClassifier sniffs the User-Agent header the same way the catalog
// frontend did: any of the common mobile markers counts as mobile.
type UAClassifier struct{}

func (UAClassifier) Mobile(userAgent string) bool {
	return mobilePattern.MatchString(userAgent)
}

var _ Classifier = UAClassifier{}
