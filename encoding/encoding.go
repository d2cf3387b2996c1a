package encoding

import "strings"

// Encoding is a runtime type-encoding descriptor.
type Encoding string

// qualifiers are the method qualifier markers stripped before classification.
const qualifiers = "rnNoORV"

func (e Encoding) String() string {
	return string(e)
}

// stripped returns the descriptor with leading qualifiers removed.
func (e Encoding) stripped() string {
	return strings.TrimLeft(string(e), qualifiers)
}

// Category classifies the descriptor into its semantic category. An empty
// or unrecognized descriptor classifies as CatUnknown; callers surface that
// as an error, classification itself never fails.
func (e Encoding) Category() Category {
	s := e.stripped()
	if s == "" {
		return CatUnknown
	}

	switch s[0] {
	case '@', '#':
		return CatObject
	case ':', '*':
		return CatPointer
	case '^':
		if s == "^v" {
			return CatVoidPointer
		}
		if len(s) > 1 {
			return CatPointer
		}
		return CatUnknown
	case 'B':
		return CatBool
	case 'c':
		return CatS8
	case 'C':
		return CatU8
	case 's':
		return CatS16
	case 'S':
		return CatU16
	case 'i', 'l':
		return CatS32
	case 'I', 'L':
		return CatU32
	case 'q':
		return CatS64
	case 'Q':
		return CatU64
	case 'f':
		return CatF32
	case 'd':
		return CatF64
	case '{':
		if strings.HasSuffix(s, "}") {
			return CatStruct
		}
		return CatUnknown
	default:
		return CatUnknown
	}
}

// members splits a struct descriptor's member list into individual member
// descriptors. The descriptor must already classify as CatStruct. A struct
// with a malformed member yields ok=false.
func (e Encoding) members() ([]Encoding, bool) {
	s := e.stripped()
	if len(s) < 2 || s[0] != '{' || s[len(s)-1] != '}' {
		return nil, false
	}
	body := s[1 : len(s)-1]

	// Anonymous layouts use '?' in place of the name. The member list
	// follows the first '=' at struct-body depth zero. A bare name like
	// {CGPoint} carries no layout to interpret.
	idx := structBodyIndex(body)
	if idx < 0 {
		return nil, false
	}
	body = body[idx+1:]

	var out []Encoding
	for body != "" {
		tok, rest, ok := nextToken(body)
		if !ok {
			return nil, false
		}
		out = append(out, Encoding(tok))
		body = rest
	}
	return out, true
}

// structBodyIndex finds the '=' separating a struct's name from its member
// layout, ignoring '=' inside nested struct descriptors.
func structBodyIndex(body string) int {
	depth := 0
	for i := 0; i < len(body); i++ {
		switch body[i] {
		case '{':
			depth++
		case '}':
			depth--
		case '=':
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// nextToken scans one member descriptor off the front of a struct body.
func nextToken(s string) (tok, rest string, ok bool) {
	i := 0
	for i < len(s) && strings.IndexByte(qualifiers, s[i]) >= 0 {
		i++
	}
	if i == len(s) {
		return "", "", false
	}

	switch s[i] {
	case '{':
		depth := 0
		for j := i; j < len(s); j++ {
			switch s[j] {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					return s[:j+1], s[j+1:], true
				}
			}
		}
		return "", "", false

	case '^':
		inner, rest, ok := nextToken(s[i+1:])
		if !ok {
			return "", "", false
		}
		return s[:i+1] + inner, rest, true

	case '@':
		// Blocks encode as @? and typed references as @"Name".
		j := i + 1
		if j < len(s) && s[j] == '?' {
			j++
		} else if j < len(s) && s[j] == '"' {
			end := strings.IndexByte(s[j+1:], '"')
			if end < 0 {
				return "", "", false
			}
			j += end + 2
		}
		return s[:j], s[j:], true

	default:
		return s[:i+1], s[i+1:], true
	}
}

// canonical rewrites a descriptor to its layout-only form: qualifiers
// dropped, struct names replaced with '?', and object class annotations
// removed. Structurally identical descriptors canonicalize identically.
func (e Encoding) canonical() string {
	s := e.stripped()
	if s == "" {
		return s
	}

	switch s[0] {
	case '{':
		mem, ok := e.members()
		if !ok {
			return s
		}
		var b strings.Builder
		b.WriteString("{?=")
		for _, m := range mem {
			b.WriteString(m.canonical())
		}
		b.WriteByte('}')
		return b.String()
	case '^':
		if len(s) > 1 {
			return "^" + Encoding(s[1:]).canonical()
		}
		return s
	case '@':
		return "@"
	case '#':
		return "#"
	case 'l':
		return "i"
	case 'L':
		return "I"
	default:
		return s
	}
}
