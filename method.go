package interpolation

import (
	"fmt"
	"strings"
)

type Method int

const (
	MethodLagrange       Method = 0
	MethodNewtonForward  Method = 1
	MethodNewtonBackward Method = 2
	MethodNewtonDivided  Method = 3
)

type methodInfo struct {
	tag, name, description string
}

var methodTable = [...]methodInfo{
	MethodLagrange:       {"lagrange", "Lagrange", "Polynomial interpolation through all points"},
	MethodNewtonForward:  {"newton-forward", "Newton's Forward", "Forward difference formula (equally spaced)"},
	MethodNewtonBackward: {"newton-backward", "Newton's Backward", "Backward difference formula (equally spaced)"},
	MethodNewtonDivided:  {"newton-divided", "Newton's Divided", "Divided difference for any spacing"},
}

// Methods lists every supported method in display order.
func Methods() []Method {
	return []Method{MethodLagrange, MethodNewtonForward, MethodNewtonBackward, MethodNewtonDivided}
}

func (m Method) valid() bool {
	return m >= 0 && int(m) < len(methodTable)
}

// String returns the wire tag, e.g. "newton-forward".
func (m Method) String() string {
	if !m.valid() {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodTable[m].tag
}

// Name is the human readable label.
func (m Method) Name() string {
	if !m.valid() {
		return m.String()
	}
	return methodTable[m].name
}

func (m Method) Description() string {
	if !m.valid() {
		return ""
	}
	return methodTable[m].description
}

// ParseMethod accepts the wire tag in any case. The camel case keys used by
// older front ends ("newtonForward") are accepted too.
func ParseMethod(s string) (Method, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, info := range methodTable {
		if key == info.tag || key == strings.ReplaceAll(info.tag, "-", "") {
			return Method(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// ParseMethods parses every entry of tags. An empty list yields all methods.
func ParseMethods(tags []string) ([]Method, error) {
	if len(tags) == 0 {
		return Methods(), nil
	}
	ms := make([]Method, 0, len(tags))
	for _, t := range tags {
		m, err := ParseMethod(t)
		if err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	return ms, nil
}

func (m Method) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}
	return []byte(m.String()), nil
}

func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
