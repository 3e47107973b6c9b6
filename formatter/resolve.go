package formatter

import (
	"fmt"
	"strconv"
	"strings"
)

// Lookup is the read side of a message catalog
type Lookup interface {
	Resolve(key string) (string, bool)
}

// Resolver turns a catalog key and positional arguments into a message body
type Resolver struct {
	lookup Lookup
}

// NewResolver creates a resolver over the given catalog. A nil lookup
// treats every key as absent.
func NewResolver(l Lookup) *Resolver {
	return &Resolver{lookup: l}
}

// Resolve renders key with args.
//
// With arguments, the catalog template for key is substituted with args;
// an unknown key is used as the template itself. Without arguments, the
// catalog template is returned as is, or the key verbatim when it is not
// in the catalog.
func (r *Resolver) Resolve(key string, args []any) string {
	tmpl, ok := r.find(key)
	if !ok {
		tmpl = key
	}
	if len(args) == 0 {
		return tmpl
	}
	return Substitute(tmpl, args)
}

func (r *Resolver) find(key string) (string, bool) {
	if r == nil || r.lookup == nil {
		return "", false
	}
	return r.lookup.Resolve(key)
}

// Substitute replaces {0}, {1}, ... in template with the matching entry
// of args, following MessageFormat quoting: two single quotes render as
// one, and text between single quotes is copied without substitution.
// Placeholders without a matching argument, and braces that do not
// enclose an index, are left as they are.
func Substitute(template string, args []any) string {
	if len(args) == 0 || !strings.ContainsAny(template, "{'") {
		return template
	}

	var b strings.Builder
	b.Grow(len(template) + 16*len(args))

	quoted := false
	for i := 0; i < len(template); {
		c := template[i]
		switch {
		case c == '\'':
			if i+1 < len(template) && template[i+1] == '\'' {
				b.WriteByte('\'')
				i += 2
				continue
			}
			// an unterminated quote runs to the end of the template
			quoted = !quoted
			i++
		case c == '{' && !quoted:
			if end := strings.IndexByte(template[i:], '}'); end > 0 {
				if idx, ok := argIndex(template[i+1:i+end], len(args)); ok {
					b.WriteString(fmt.Sprint(args[idx]))
					i += end + 1
					continue
				}
			}
			// not a usable placeholder; emit the brace and rescan after it
			b.WriteByte('{')
			i++
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// argIndex parses an unsigned placeholder index below n
func argIndex(s string, n int) (int, bool) {
	if s == "" || s[0] == '+' || s[0] == '-' {
		return 0, false
	}
	idx, err := strconv.Atoi(s)
	if err != nil || idx >= n {
		return 0, false
	}
	return idx, true
}
