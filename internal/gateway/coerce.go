package gateway

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/unclebandit/influencer-admin/internal/model"
)

// Form is a submitted form: field name to raw text as typed.
type Form map[string]string

// Coerce converts a form into the JSON payload sent to the record store.
// Every editable field of the entity is present; anything else in the form,
// including the id, is dropped. Numbers that are empty or unparsable become
// 0 and dates become "YYYY-MM-DD" or null.
func Coerce(entity model.Entity, form Form) map[string]any {
	fields := entity.Fields()
	out := make(map[string]any, len(fields))
	for _, f := range fields {
		raw := strings.TrimSpace(form[f.Name])
		switch f.Kind {
		case model.KindInt, model.KindRef:
			out[f.Name] = parseInt(raw)
		case model.KindRate:
			out[f.Name] = parseNumber(raw)
		case model.KindMoney:
			out[f.Name] = parseMoney(raw)
		case model.KindDate:
			out[f.Name] = normalizeDate(raw)
		default:
			out[f.Name] = raw
		}
	}
	return out
}

// parseNumber treats NaN and infinities like any other invalid input.
func parseNumber(raw string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// parseInt truncates toward zero. Values outside the int64 range become 0.
func parseInt(raw string) int64 {
	v := parseNumber(raw)
	if v >= math.MaxInt64 || v < math.MinInt64 {
		return 0
	}
	return int64(v)
}

func parseMoney(raw string) model.Money {
	raw = strings.TrimPrefix(strings.ReplaceAll(raw, ",", ""), "$")
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return model.Money{}
	}
	return model.MoneyFromDecimal(d)
}

// normalizeDate returns nil for empty or unparsable input.
func normalizeDate(raw string) any {
	d, err := model.ParseDate(raw)
	if err != nil || d.IsZero() {
		return nil
	}
	return d.String()
}
