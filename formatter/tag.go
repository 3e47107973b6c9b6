package formatter

import (
	"strings"
	"unicode/utf8"
)

// TagWidth is the fixed width of a rendered caller tag
const TagWidth = 12

// Tag renders name to exactly TagWidth runes: longer names are cut,
// shorter ones are right-padded with dots.
func Tag(name string) string {
	n := utf8.RuneCountInString(name)
	if n == TagWidth {
		return name
	}
	if n > TagWidth {
		return string([]rune(name)[:TagWidth])
	}
	return name + strings.Repeat(".", TagWidth-n)
}
