package json

import (
	"io"
	"strconv"
	"strings"

	"github.com/joshuapare/doctree/pkg/types"
)

type objState int

const (
	objExpectKeyOrEnd objState = iota
	objExpectValue
	objExpectCommaOrEnd
)

type arrState int

const (
	arrExpectValueOrEnd arrState = iota
	arrExpectCommaOrEnd
)

type frame struct {
	isObject bool
	obj      objState
	arr      arrState
}

// Scanner is a pull-style tokenizer over raw JSON text: each call to
// Next produces exactly one Event, using an explicit frame stack in
// place of recursion so the event source can be driven one token at a
// time by the builder.
type Scanner struct {
	data    []byte
	pos     int
	stack   []frame
	started bool
}

// NewScanner wraps data for event-driven scanning.
func NewScanner(data []byte) *Scanner {
	return &Scanner{data: data}
}

// Next returns the next event, io.EOF once the root value (and any
// nested structure) has been fully consumed, or a parse error on
// malformed input.
func (s *Scanner) Next() (Event, error) {
	for {
		if len(s.stack) == 0 {
			if s.started {
				return Event{}, io.EOF
			}
			s.started = true
			return s.startValue()
		}
		top := &s.stack[len(s.stack)-1]
		if top.isObject {
			switch top.obj {
			case objExpectKeyOrEnd:
				s.skipWS()
				c, ok := s.peek()
				if !ok {
					return Event{}, errUnexpectedEOF
				}
				if c == '}' {
					s.pos++
					s.stack = s.stack[:len(s.stack)-1]
					return Event{Kind: EndObject}, nil
				}
				key, err := s.readString()
				if err != nil {
					return Event{}, err
				}
				s.skipWS()
				if err := s.expect(':'); err != nil {
					return Event{}, err
				}
				s.skipWS()
				top.obj = objExpectValue
				return Event{Kind: Key, Str: key}, nil
			case objExpectValue:
				top.obj = objExpectCommaOrEnd
				return s.startValue()
			case objExpectCommaOrEnd:
				s.skipWS()
				c, ok := s.peek()
				if !ok {
					return Event{}, errUnexpectedEOF
				}
				if c == '}' {
					s.pos++
					s.stack = s.stack[:len(s.stack)-1]
					return Event{Kind: EndObject}, nil
				}
				if c != ',' {
					return Event{}, errExpectedCommaOrEnd
				}
				s.pos++
				s.skipWS()
				top.obj = objExpectKeyOrEnd
				continue
			}
		} else {
			switch top.arr {
			case arrExpectValueOrEnd:
				s.skipWS()
				c, ok := s.peek()
				if !ok {
					return Event{}, errUnexpectedEOF
				}
				if c == ']' {
					s.pos++
					s.stack = s.stack[:len(s.stack)-1]
					return Event{Kind: EndArray}, nil
				}
				top.arr = arrExpectCommaOrEnd
				return s.startValue()
			case arrExpectCommaOrEnd:
				s.skipWS()
				c, ok := s.peek()
				if !ok {
					return Event{}, errUnexpectedEOF
				}
				if c == ']' {
					s.pos++
					s.stack = s.stack[:len(s.stack)-1]
					return Event{Kind: EndArray}, nil
				}
				if c != ',' {
					return Event{}, errExpectedCommaOrEnd
				}
				s.pos++
				s.skipWS()
				top.arr = arrExpectValueOrEnd
				continue
			}
		}
	}
}

// startValue consumes whatever value starts at the current position: a
// scalar is returned directly; an aggregate pushes a new frame and
// returns its Start event, deferring the rest to subsequent Next calls.
func (s *Scanner) startValue() (Event, error) {
	s.skipWS()
	c, ok := s.peek()
	if !ok {
		return Event{}, errUnexpectedEOF
	}
	switch {
	case c == '{':
		s.pos++
		s.stack = append(s.stack, frame{isObject: true, obj: objExpectKeyOrEnd})
		if len(s.stack) > types.MaxDepth {
			return Event{}, errTooDeep
		}
		return Event{Kind: StartObject}, nil
	case c == '[':
		s.pos++
		s.stack = append(s.stack, frame{isObject: false, arr: arrExpectValueOrEnd})
		if len(s.stack) > types.MaxDepth {
			return Event{}, errTooDeep
		}
		return Event{Kind: StartArray}, nil
	case c == '"':
		str, err := s.readString()
		if err != nil {
			return Event{}, err
		}
		return Event{Kind: String, Str: str}, nil
	case c == 't':
		if err := s.expectLiteral("true"); err != nil {
			return Event{}, err
		}
		return Event{Kind: Bool, BoolV: true}, nil
	case c == 'f':
		if err := s.expectLiteral("false"); err != nil {
			return Event{}, err
		}
		return Event{Kind: Bool, BoolV: false}, nil
	case c == 'n':
		if err := s.expectLiteral("null"); err != nil {
			return Event{}, err
		}
		return Event{Kind: Null}, nil
	case c == '-' || (c >= '0' && c <= '9'):
		return s.readNumber()
	default:
		return Event{}, errUnexpectedChar
	}
}

func (s *Scanner) peek() (byte, bool) {
	if s.pos >= len(s.data) {
		return 0, false
	}
	return s.data[s.pos], true
}

func (s *Scanner) skipWS() {
	for s.pos < len(s.data) {
		switch s.data[s.pos] {
		case ' ', '\t', '\n', '\r':
			s.pos++
		default:
			return
		}
	}
}

func (s *Scanner) expect(c byte) error {
	got, ok := s.peek()
	if !ok || got != c {
		return errUnexpectedChar
	}
	s.pos++
	return nil
}

func (s *Scanner) expectLiteral(lit string) error {
	if s.pos+len(lit) > len(s.data) || string(s.data[s.pos:s.pos+len(lit)]) != lit {
		return errUnexpectedChar
	}
	s.pos += len(lit)
	return nil
}

func (s *Scanner) readString() (string, error) {
	if err := s.expect('"'); err != nil {
		return "", err
	}
	var sb strings.Builder
	for {
		c, ok := s.peek()
		if !ok {
			return "", errUnexpectedEOF
		}
		if c == '"' {
			s.pos++
			return sb.String(), nil
		}
		if c == '\\' {
			s.pos++
			esc, ok := s.peek()
			if !ok {
				return "", errUnexpectedEOF
			}
			s.pos++
			switch esc {
			case '"':
				sb.WriteByte('"')
			case '\\':
				sb.WriteByte('\\')
			case '/':
				sb.WriteByte('/')
			case 'b':
				sb.WriteByte('\b')
			case 'f':
				sb.WriteByte('\f')
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			case 'u':
				if s.pos+4 > len(s.data) {
					return "", errUnexpectedEOF
				}
				code, err := strconv.ParseUint(string(s.data[s.pos:s.pos+4]), 16, 32)
				if err != nil {
					return "", errUnexpectedChar
				}
				sb.WriteRune(rune(code))
				s.pos += 4
			default:
				return "", errUnexpectedChar
			}
			continue
		}
		sb.WriteByte(c)
		s.pos++
	}
}

func (s *Scanner) readNumber() (Event, error) {
	start := s.pos
	if c, ok := s.peek(); ok && c == '-' {
		s.pos++
	}
	for {
		c, ok := s.peek()
		if !ok || c < '0' || c > '9' {
			break
		}
		s.pos++
	}
	isFloat := false
	if c, ok := s.peek(); ok && c == '.' {
		isFloat = true
		s.pos++
		for {
			c, ok := s.peek()
			if !ok || c < '0' || c > '9' {
				break
			}
			s.pos++
		}
	}
	if c, ok := s.peek(); ok && (c == 'e' || c == 'E') {
		isFloat = true
		s.pos++
		if c, ok := s.peek(); ok && (c == '+' || c == '-') {
			s.pos++
		}
		for {
			c, ok := s.peek()
			if !ok || c < '0' || c > '9' {
				break
			}
			s.pos++
		}
	}
	lit := string(s.data[start:s.pos])
	if lit == "" || lit == "-" {
		return Event{}, errUnexpectedChar
	}
	if isFloat {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return Event{}, errUnexpectedChar
		}
		return Event{Kind: Double, Double: f}, nil
	}
	if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
		return Event{Kind: Int, IntV: i}, nil
	}
	if u, err := strconv.ParseUint(lit, 10, 64); err == nil {
		return Event{Kind: Uint, UintV: u}, nil
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return Event{}, errUnexpectedChar
	}
	return Event{Kind: Double, Double: f}, nil
}
