package utils

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

func ReplaceQueryParams(namedQuery string, params map[string]interface{}) (string, []interface{}) {
	var (
		i    int = 1
		args []interface{}
	)

	for k, v := range params {
		if k != "" {
			namedQuery = strings.ReplaceAll(namedQuery, ":"+k, "$"+strconv.Itoa(i))

			args = append(args, v)
			i++
		}
	}

	return namedQuery, args
}

// FCurrency renders a price for chat messages: thousands separated, at most
// two decimals, no trailing ".00".
func FCurrency(n float64) string {
	rounded := math.Round(n*100) / 100
	return humanize.CommafWithDigits(rounded, 2)
}

func StrEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}
