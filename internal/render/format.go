package render

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/unclebandit/influencer-admin/internal/model"
)

const notAvailable = "N/A"

// Formatter groups digits the way an en-US reader expects.
type Formatter struct {
	p *message.Printer
}

func NewFormatter() Formatter {
	return Formatter{p: message.NewPrinter(language.AmericanEnglish)}
}

// Currency renders whole amounts without cents ("$15,000") and anything
// fractional with two decimals.
func (f Formatter) Currency(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	if d.Equal(d.Truncate(0)) {
		return sign + "$" + f.p.Sprintf("%d", d.IntPart())
	}
	v, _ := d.Round(2).Float64()
	return sign + "$" + f.p.Sprintf("%.2f", v)
}

func (f Formatter) Count(n int64) string {
	return f.p.Sprintf("%d", n)
}

// Percent renders a 0..1 rate as "6.54%".
func (f Formatter) Percent(rate float64) string {
	return f.p.Sprintf("%.2f%%", rate*100)
}

func Date(d model.Date) string {
	if d.IsZero() {
		return notAvailable
	}
	return d.String()
}

func DatePtr(d *model.Date) string {
	if d == nil {
		return notAvailable
	}
	return Date(*d)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}
	return s
}
