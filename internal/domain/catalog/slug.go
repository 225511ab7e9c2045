package catalog

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slugify derives a framework slug from its title: lower-cased with every
// whitespace run collapsed to a single hyphen. The same derivation is used
// at creation time and at lookup time so that lookup-by-slug round-trips.
// An empty title yields an empty slug, which never matches a lookup and
// surfaces as not-found rather than an error.
func Slugify(title string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(title), "-")
}

// VariantID derives a variant id from a human-readable flavor tag. It is
// applied identically wherever a tag is turned into an id, including
// component variant-membership lists, so that membership matches the
// framework's variant list by id rather than by display string.
func VariantID(tag string) string {
	return "variant-" + strings.ToLower(tag)
}
