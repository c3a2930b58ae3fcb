package route

import (
	"fmt"
	"regexp"
	"strings"
)

type segmentKind uint8

const (
	staticSegment segmentKind = iota
	paramSegment
)

// A segment is one slash-delimited part of a pattern.
// value holds the literal text of a static segment or the name of a parameter.
type segment struct {
	kind  segmentKind
	value string
}

// A pattern is the parsed form of a Definition's Path.
type pattern struct {
	raw      string
	segments []segment
	params   int
}

var paramNameRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// parsePattern validates and normalizes raw into a pattern.
func parsePattern(raw string) (pattern, error) {
	if raw == "" {
		return pattern{}, fmt.Errorf("%w: empty path", ErrMalformedPattern)
	}

	if !strings.HasPrefix(raw, "/") {
		return pattern{}, fmt.Errorf("%w: %q must begin with /", ErrMalformedPattern, raw)
	}

	for _, bad := range []string{"?", "#", "*"} {
		if strings.Contains(raw, bad) {
			return pattern{}, fmt.Errorf("%w: %q cannot contain %q", ErrMalformedPattern, raw, bad)
		}
	}

	p := pattern{raw: trimTrailingSlash(raw)}
	if p.raw == "/" {
		return p, nil
	}

	seen := make(map[string]struct{})
	for _, part := range strings.Split(p.raw[1:], "/") {
		switch {
		case part == "":
			return pattern{}, fmt.Errorf("%w: %q has an empty segment", ErrMalformedPattern, raw)

		case part == "." || part == "..":
			return pattern{}, fmt.Errorf("%w: %q cannot contain relative segments", ErrMalformedPattern, raw)

		case strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}"):
			name := part[1 : len(part)-1]
			if !paramNameRegexp.MatchString(name) {
				return pattern{}, fmt.Errorf("%w: %q has invalid parameter name %q", ErrMalformedPattern, raw, name)
			}

			if _, ok := seen[name]; ok {
				return pattern{}, fmt.Errorf("%w: %q repeats parameter %q", ErrMalformedPattern, raw, name)
			}

			seen[name] = struct{}{}
			p.segments = append(p.segments, segment{kind: paramSegment, value: name})
			p.params++

		case strings.ContainsAny(part, "{}"):
			return pattern{}, fmt.Errorf("%w: %q: a parameter must span a whole segment", ErrMalformedPattern, raw)

		default:
			p.segments = append(p.segments, segment{kind: staticSegment, value: part})
		}
	}

	return p, nil
}

// isLiteral asserts whether the pattern has no parameters.
func (p pattern) isLiteral() bool { return p.params == 0 }

// shape renders the pattern with parameter names erased.
// Two patterns with the same shape match exactly the same concrete paths.
func (p pattern) shape() string {
	if len(p.segments) == 0 {
		return "/"
	}

	var b strings.Builder
	for _, seg := range p.segments {
		b.WriteByte('/')
		if seg.kind == paramSegment {
			b.WriteString("{}")
			continue
		}

		b.WriteString(seg.value)
	}

	return b.String()
}

// overlaps asserts whether some concrete path exists that both patterns match.
func (p pattern) overlaps(other pattern) bool {
	if len(p.segments) != len(other.segments) {
		return false
	}

	for i, seg := range p.segments {
		o := other.segments[i]
		if seg.kind == staticSegment && o.kind == staticSegment && seg.value != o.value {
			return false
		}
	}

	return true
}

// moreSpecific asserts whether p should win over other when both match a path.
// Reading left to right, the first segment where the two differ in kind decides:
// a static segment beats a parameter.
func (p pattern) moreSpecific(other pattern) bool {
	for i, seg := range p.segments {
		if i >= len(other.segments) {
			return false
		}

		if o := other.segments[i]; seg.kind != o.kind {
			return seg.kind == staticSegment
		}
	}

	return false
}

// match binds parts against the pattern, returning the parameters it extracted.
func (p pattern) match(parts []string) (Params, bool) {
	if len(parts) != len(p.segments) {
		return nil, false
	}

	params := make(Params, 0, p.params)
	for i, seg := range p.segments {
		part := parts[i]
		switch seg.kind {
		case staticSegment:
			if part != seg.value {
				return nil, false
			}

		case paramSegment:
			if part == "" {
				return nil, false
			}

			params = append(params, Param{Key: seg.value, Value: part})
		}
	}

	return params, true
}

// trimTrailingSlash removes any trailing slashes, leaving the root path intact.
func trimTrailingSlash(p string) string {
	p = strings.TrimRight(p, "/")
	if p == "" {
		return "/"
	}

	return p
}

// splitPath breaks a normalized path into its segments.
func splitPath(p string) []string {
	if p == "/" {
		return nil
	}

	return strings.Split(p[1:], "/")
}
