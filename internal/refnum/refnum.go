// Package refnum derives reference numbers of the form "<yyyy>-<nnn>".
package refnum

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dshills/outreg/internal/schema"
)

var (
	trailingDigits = regexp.MustCompile(`(\d+)$`)
	// Pattern is the accepted shape of a reference number.
	Pattern = regexp.MustCompile(`^\d{4}-\d{3,}$`)
)

// Next returns the next reference number for the year of now: one more than
// the highest trailing sequence among the surviving records of that year,
// zero-padded to three digits. There is no persistent counter.
func Next(records []schema.Record, now time.Time) string {
	year := strconv.Itoa(now.Year())
	prefix := year + "-"
	highest := 0
	for _, r := range records {
		if !strings.HasPrefix(r.ReferenceNumber, prefix) {
			continue
		}
		m := trailingDigits.FindString(r.ReferenceNumber)
		if m == "" {
			continue
		}
		n, err := strconv.Atoi(m)
		if err != nil {
			continue
		}
		if n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("%s-%03d", year, highest+1)
}

// Valid reports whether ref has the "<yyyy>-<nnn>" shape.
func Valid(ref string) bool {
	return Pattern.MatchString(ref)
}
