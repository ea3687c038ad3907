package translate

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/leapstack-labs/leapquery/pkg/core"
)

// constant renders a constant as a placeholder, or as a literal when
// inline constants are enabled. NULL is always written literally.
func (t *Translator) constant(c *core.ConstantExpression) {
	if c.IsNull() {
		t.sink.Write("NULL")
		return
	}
	if !t.opts.inline {
		t.sink.Write(t.sink.AddParam(c.Value))
		return
	}
	t.sink.Write(t.literal(c.Value))
}

// literal formats v as an SQL literal. Negative numbers are parenthesized
// so they can follow any operator.
func (t *Translator) literal(v any) string {
	var s string
	switch x := v.(type) {
	case bool:
		if x {
			return t.cfg.TrueLiteral
		}
		return t.cfg.FalseLiteral
	case string:
		return quoteString(x)
	case []byte:
		return "X'" + strings.ToUpper(hex.EncodeToString(x)) + "'"
	case time.Time:
		return quoteString(x.Format("2006-01-02 15:04:05"))
	case int:
		s = strconv.FormatInt(int64(x), 10)
	case int8:
		s = strconv.FormatInt(int64(x), 10)
	case int16:
		s = strconv.FormatInt(int64(x), 10)
	case int32:
		s = strconv.FormatInt(int64(x), 10)
	case int64:
		s = strconv.FormatInt(x, 10)
	case uint:
		s = strconv.FormatUint(uint64(x), 10)
	case uint8:
		s = strconv.FormatUint(uint64(x), 10)
	case uint16:
		s = strconv.FormatUint(uint64(x), 10)
	case uint32:
		s = strconv.FormatUint(uint64(x), 10)
	case uint64:
		s = strconv.FormatUint(x, 10)
	case float32:
		s = strconv.FormatFloat(float64(x), 'g', -1, 32)
	case float64:
		s = strconv.FormatFloat(x, 'g', -1, 64)
	case fmt.Stringer:
		return quoteString(x.String())
	default:
		return quoteString(fmt.Sprint(x))
	}
	if strings.HasPrefix(s, "-") {
		return "(" + s + ")"
	}
	return s
}

func quoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
