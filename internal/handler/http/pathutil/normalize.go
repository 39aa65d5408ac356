// Package pathutil maps request paths onto route templates for metric labels.
package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern pairs a path regex with its template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// Segments match any value, not only digits, so malformed ids
// still collapse onto the route template.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/questions/[^/]+$`), Template: "/questions/:qid"},
	{Pattern: regexp.MustCompile(`^/questions/[^/]+/answers$`), Template: "/questions/:qid/answers"},
	{Pattern: regexp.MustCompile(`^/questions/[^/]+/answers/[^/]+$`), Template: "/questions/:qid/answers/:aid"},
	{Pattern: regexp.MustCompile(`^/questions/[^/]+/comments$`), Template: "/questions/:qid/comments"},
	{Pattern: regexp.MustCompile(`^/questions/[^/]+/comments/[^/]+$`), Template: "/questions/:qid/comments/:cid"},
	{Pattern: regexp.MustCompile(`^/questions/[^/]+/answers/[^/]+/comments$`), Template: "/questions/:qid/answers/:aid/comments"},
	{Pattern: regexp.MustCompile(`^/questions/[^/]+/answers/[^/]+/comments/[^/]+$`), Template: "/questions/:qid/answers/:aid/comments/:cid"},
}

var staticPaths = map[string]struct{}{
	"/":          {},
	"/questions": {},
	"/health":    {},
	"/ready":     {},
	"/live":      {},
	"/metrics":   {},
}

// OtherPath labels every path that is neither static nor a known template.
const OtherPath = "other"

// NormalizePath converts a request path to its route template.
//
//	NormalizePath("/questions/12")                  // "/questions/:qid"
//	NormalizePath("/questions/1/answers/2/comments") // "/questions/:qid/answers/:aid/comments"
//	NormalizePath("/questions/")                    // "/questions"
//	NormalizePath("/wp-admin")                      // "other"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	if _, ok := staticPaths[path]; ok {
		return path
	}
	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}
	return OtherPath
}

// GetExpectedCardinality returns the number of distinct labels NormalizePath can produce.
func GetExpectedCardinality() int {
	return len(pathPatterns) + len(staticPaths) + 1
}
