package common

import (
	"net/url"
	"slices"
	"strings"
)

// Parameter is a single query string pair.
type Parameter struct {
	Key   string
	Value string
}

// Parameters is an ordered list of query string pairs. Unlike
// url.Values, encoding preserves insertion order.
type Parameters []Parameter

// ParametersFromMap converts a map into Parameters ordered by key, so
// the encoded form is deterministic.
func ParametersFromMap(values map[string]string) Parameters {
	if len(values) == 0 {
		return nil
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	parameters := make(Parameters, 0, len(values))
	for _, key := range keys {
		parameters = append(parameters, Parameter{Key: key, Value: values[key]})
	}

	return parameters
}

// Add appends a pair and returns the extended list.
func (parameters Parameters) Add(key, value string) Parameters {
	return append(parameters, Parameter{Key: key, Value: value})
}

// Encode renders the parameters as "?key=value&key=value" with both
// sides escaped. An empty list encodes to the empty string.
func (parameters Parameters) Encode() string {
	if len(parameters) == 0 {
		return ""
	}

	var sb strings.Builder

	sb.WriteByte('?')

	for i, parameter := range parameters {
		if i > 0 {
			sb.WriteByte('&')
		}

		sb.WriteString(url.QueryEscape(parameter.Key))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(parameter.Value))
	}

	return sb.String()
}
