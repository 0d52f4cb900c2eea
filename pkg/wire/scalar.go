package wire

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// timeLayouts are tried in order when decoding timestamps.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05 -0700",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FormatAmount renders a currency amount as dollars with exactly two
// decimal places, no symbol, no grouping and a leading minus for negatives.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// ParseInt decodes an integer, returning 0 when text is not a number.
// Decimal text is truncated toward zero.
func ParseInt(text string) int {
	v := ParseInt64(text)
	if v > math.MaxInt || v < math.MinInt {
		return 0
	}

	return int(v)
}

var (
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
	minInt64 = decimal.NewFromInt(math.MinInt64)
)

// ParseInt64 decodes an integer, returning 0 when text is not a number or
// does not fit in an int64.
func ParseInt64(text string) int64 {
	text = strings.TrimSpace(text)

	v, err := strconv.ParseInt(text, 10, 64)
	if err == nil {
		return v
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return 0
	}

	whole := d.Truncate(0)
	if whole.GreaterThan(maxInt64) || whole.LessThan(minInt64) {
		return 0
	}

	return whole.IntPart()
}

// ParseDecimal decodes a decimal, tolerating a leading "$" and thousands
// separators. Unparseable input yields zero. Equal values always decode to
// identical representations, whatever their textual scale.
func ParseDecimal(text string) decimal.Decimal {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "$")
	text = strings.ReplaceAll(text, ",", "")

	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}
	}

	return canonicalDecimal(d)
}

func canonicalDecimal(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Decimal{}
	}

	return decimal.RequireFromString(d.String())
}

// ParseBool decodes a boolean; anything unrecognised is false.
func ParseBool(text string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(text))

	return err == nil && v
}

// ParseTime decodes a timestamp in UTC; unparseable input yields the zero time.
func ParseTime(text string) time.Time {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}
	}

	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, text)
		if err == nil {
			return t.UTC()
		}
	}

	return time.Time{}
}

// XMLString returns the text of a leaf element.
func XMLString(n *Node) string {
	if n.IsNil() || !n.IsLeaf() {
		return ""
	}

	return n.Text
}

// XMLInt decodes an integer leaf.
func XMLInt(n *Node) int { return ParseInt(XMLString(n)) }

// XMLInt64 decodes an integer leaf.
func XMLInt64(n *Node) int64 { return ParseInt64(XMLString(n)) }

// XMLDecimal decodes a decimal leaf.
func XMLDecimal(n *Node) decimal.Decimal { return ParseDecimal(XMLString(n)) }

// XMLBool decodes a boolean leaf.
func XMLBool(n *Node) bool { return ParseBool(XMLString(n)) }

// XMLTime decodes a timestamp leaf.
func XMLTime(n *Node) time.Time { return ParseTime(XMLString(n)) }

// JSONString returns the textual form of a JSON scalar. Objects, arrays and
// null yield "".
func JSONString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

// JSONInt decodes a JSON number or numeric string.
func JSONInt(v any) int { return ParseInt(JSONString(v)) }

// JSONInt64 decodes a JSON number or numeric string.
func JSONInt64(v any) int64 { return ParseInt64(JSONString(v)) }

// JSONDecimal decodes a JSON number or formatted decimal string.
func JSONDecimal(v any) decimal.Decimal { return ParseDecimal(JSONString(v)) }

// JSONBool decodes a JSON boolean or boolean string.
func JSONBool(v any) bool {
	if b, ok := v.(bool); ok {
		return b
	}

	return ParseBool(JSONString(v))
}

// JSONTime decodes a timestamp string.
func JSONTime(v any) time.Time { return ParseTime(JSONString(v)) }
