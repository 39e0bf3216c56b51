package mapping

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse failures for a single rule line.
var (
	ErrMalformedLine     = errors.New("line must have a keys group and a values group separated by whitespace")
	ErrEmptyKey          = errors.New("empty key fragment")
	ErrUnknownType       = errors.New("unknown animation type code")
	ErrMissingOutputName = errors.New("values group needs an output name and at least one type code")
	ErrInconsistentType  = errors.New("type codes within one rule must agree")
)

// LineError ties a parse failure to its 1-based line number.
type LineError struct {
	Line int
	Err  error
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e LineError) Unwrap() error { return e.Err }

// Report collects the per-line failures from one ExpandAll pass.
type Report []LineError

// ParseLine parses one mapping rule. The keys group is everything before the
// final whitespace run so key fragments may carry spaces after commas; the
// values group is the last whitespace-separated token.
func ParseLine(line string) (Rule, error) {
	keysGroup, valuesGroup, ok := splitGroups(line)
	if !ok {
		return Rule{}, ErrMalformedLine
	}

	keys := strings.Split(keysGroup, ",")
	for i, key := range keys {
		keys[i] = strings.TrimSpace(key)
		if keys[i] == "" {
			return Rule{}, ErrEmptyKey
		}
	}

	values := strings.Split(valuesGroup, ",")
	if len(values) < 2 {
		return Rule{}, ErrMissingOutputName
	}
	outputBase := strings.TrimSpace(values[0])
	if outputBase == "" {
		return Rule{}, ErrMissingOutputName
	}

	// The editor convention repeats the type code once per source key. The
	// repetition is display symmetry, not per-key typing: the first token is
	// authoritative and any divergence is rejected.
	first, err := ParseType(values[1])
	if err != nil {
		return Rule{}, err
	}
	for _, token := range values[2:] {
		t, err := ParseType(token)
		if err != nil {
			return Rule{}, err
		}
		if t != first {
			return Rule{}, fmt.Errorf("%w: %s vs %s", ErrInconsistentType, first, t)
		}
	}

	return Rule{SourceKeys: keys, OutputBase: outputBase, Type: first}, nil
}

// Expand produces the binding record for a rule under the shared asset
// prefix. Pure string assembly; it cannot fail for a valid rule.
func Expand(rule Rule, prefix string) Binding {
	sources := make([]string, len(rule.SourceKeys))
	for i, key := range rule.SourceKeys {
		sources[i] = prefix + "_" + key
	}
	return Binding{
		SourceNames: sources,
		OutputName:  prefix + "_" + rule.OutputBase,
		Type:        rule.Type,
	}
}

// ExpandAll parses and expands every line independently and in order. Blank
// lines and '#' comments are skipped; a failing line is recorded in the
// report and excluded from the output without stopping the batch.
func ExpandAll(lines []string, prefix string) ([]Binding, Report) {
	var (
		bindings []Binding
		report   Report
	)
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		rule, err := ParseLine(trimmed)
		if err != nil {
			report = append(report, LineError{Line: i + 1, Err: err})
			continue
		}
		bindings = append(bindings, Expand(rule, prefix))
	}
	return bindings, report
}

// splitGroups cuts a line at its last whitespace run. Key fragments may
// contain spaces after commas, so only the trailing values group is
// whitespace-free.
func splitGroups(line string) (keys, values string, ok bool) {
	trimmed := strings.TrimSpace(line)
	idx := strings.LastIndexFunc(trimmed, unicode.IsSpace)
	if idx < 0 {
		return "", "", false
	}
	keys = strings.TrimSpace(trimmed[:idx])
	values = strings.TrimSpace(trimmed[idx+1:])
	if keys == "" || values == "" {
		return "", "", false
	}
	return keys, values, true
}
