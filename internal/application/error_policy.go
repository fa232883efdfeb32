package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

const DefaultStandardErrorMessage = "PayPal is currently unavailable. Please transfer the amount as described in the email we just sent you."

// ErrorPolicy decides how much of a processor failure reaches the caller.
// In sandbox or debug mode the full diagnostic text is returned; otherwise only the
// standard message. The upstream cause is always kept on the GatewayError for logging.
type ErrorPolicy struct {
	Sandbox         bool
	Debug           bool
	StandardMessage string
}

func NewErrorPolicy(sandbox, debug bool, standardMessage string) *ErrorPolicy {
	if standardMessage == "" {
		standardMessage = DefaultStandardErrorMessage
	}
	return &ErrorPolicy{
		Sandbox:         sandbox,
		Debug:           debug,
		StandardMessage: standardMessage,
	}
}

func (p *ErrorPolicy) Verbose() bool {
	return p.Sandbox || p.Debug
}

// HandleError never returns nil.
func (p *ErrorPolicy) HandleError(message string) error {
	return p.wrap(message, 0, errors.New(message))
}

// HandleGatewayError turns any error from a Gateway call into a *GatewayError.
func (p *ErrorPolicy) HandleGatewayError(err error) error {
	if err == nil {
		err = errors.New("unknown gateway failure")
	}

	statusCode := 0
	message := err.Error()
	if procErr, ok := IsProcessorError(err); ok {
		statusCode = procErr.StatusCode
		message = procErr.Message
	}

	return p.wrap(DescribeFailure(statusCode, message), statusCode, err)
}

func (p *ErrorPolicy) wrap(message string, statusCode int, cause error) *GatewayError {
	msg := p.StandardMessage
	if p.Verbose() {
		msg = message
	}
	return &GatewayError{
		Message:    msg,
		StatusCode: statusCode,
		Err:        cause,
	}
}

// DescribeFailure renders the diagnostic text for a failed processor call.
// A zero status code is printed as n/a.
func DescribeFailure(statusCode int, message string) string {
	code := "n/a"
	if statusCode > 0 {
		code = strconv.Itoa(statusCode)
	}
	return fmt.Sprintf("StatusCode: %s Error: %s", code, DumpJSON(message))
}

// DumpJSON pretty prints message when it looks like a JSON document, one key per line
// with nested values indented and keys sorted. Anything that does not decode is
// returned unchanged.
func DumpJSON(message string) string {
	if !strings.Contains(message, "{") {
		return message
	}

	var v any
	if err := json.Unmarshal([]byte(message), &v); err != nil {
		return message
	}

	var b strings.Builder
	writeValue(&b, v, 0)
	return strings.TrimRight(b.String(), "\n")
}

func writeValue(b *strings.Builder, v any, depth int) {
	switch t := v.(type) {
	case map[string]any:
		for _, k := range slices.Sorted(maps.Keys(t)) {
			writeEntry(b, k, t[k], depth)
		}
	case []any:
		for i, e := range t {
			writeEntry(b, fmt.Sprintf("[%d]", i), e, depth)
		}
	default:
		b.WriteString(strings.Repeat("  ", depth) + scalar(t) + "\n")
	}
}

func writeEntry(b *strings.Builder, key string, v any, depth int) {
	indent := strings.Repeat("  ", depth)
	switch v.(type) {
	case map[string]any, []any:
		fmt.Fprintf(b, "%s%s:\n", indent, key)
		writeValue(b, v, depth+1)
	default:
		fmt.Fprintf(b, "%s%s: %s\n", indent, key, scalar(v))
	}
}

func scalar(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return fmt.Sprint(t)
	}
}
