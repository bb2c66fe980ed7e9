package callback

import (
	"log/slog"
	"strings"
)

const (
	queryPrefix = "query:"
	valueSep    = " , value:"
)

// CallbackData is the payload packed into an inline button. Value may be
// empty for navigation buttons that carry no argument.
type CallbackData struct {
	Query string `json:"query"`
	Value string `json:"value"`
}

func (cd CallbackData) String() string {
	return queryPrefix + cd.Query + valueSep + cd.Value
}

func parse(data string) (CallbackData, bool) {
	rest, ok := strings.CutPrefix(data, queryPrefix)
	if !ok {
		return CallbackData{}, false
	}

	query, value, ok := strings.Cut(rest, valueSep)
	if !ok {
		return CallbackData{}, false
	}

	return CallbackData{Query: query, Value: value}, true
}

func Query(data string) string {
	cd, ok := parse(data)
	if !ok {
		slog.Error("failed to parse callback data", "data", data)
		return ""
	}

	return cd.Query
}

func Value(data string) string {
	cd, ok := parse(data)
	if !ok {
		slog.Error("failed to parse callback data", "data", data)
		return ""
	}

	return cd.Value
}
