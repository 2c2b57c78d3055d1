package httpclientx

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/url"
	"reflect"
	"strconv"
)

// ErrQueryNotObject indicates that a GET payload does not serialize to a
// JSON object and therefore cannot become query parameters.
var ErrQueryNotObject = errors.New("httpclientx: GET payload must be a JSON object")

// encodeQuery flattens a JSON-serializable payload into query parameters.
//
// Null fields are skipped, arrays become repeated keys, and objects are
// encoded as JSON strings. A nil payload yields an empty query and any payload that is not
// an object yields [ErrQueryNotObject].
func encodeQuery(payload any) (url.Values, error) {
	if isNil(payload) {
		return nil, nil
	}
	rawpayload, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	rawpayload = bytes.TrimSpace(rawpayload)
	if bytes.Equal(rawpayload, []byte("null")) {
		return nil, nil
	}
	if len(rawpayload) <= 0 || rawpayload[0] != '{' {
		return nil, ErrQueryNotObject
	}
	var fields map[string]any
	decoder := json.NewDecoder(bytes.NewReader(rawpayload))
	decoder.UseNumber()
	if err := decoder.Decode(&fields); err != nil {
		return nil, err
	}
	query := url.Values{}
	for key, value := range fields {
		switch value := value.(type) {
		case nil:
			// nothing
		case []any:
			for _, entry := range value {
				if entry == nil {
					continue
				}
				query.Add(key, queryValue(entry))
			}
		default:
			query.Set(key, queryValue(value))
		}
	}
	return query, nil
}

func queryValue(value any) string {
	switch value := value.(type) {
	case string:
		return value
	case json.Number:
		return value.String()
	case bool:
		return strconv.FormatBool(value)
	default:
		data, _ := json.Marshal(value) // we just decoded it, cannot fail
		return string(data)
	}
}

// isNil returns true for a nil interface and for nil maps, pointers, and slices.
func isNil(value any) bool {
	if value == nil {
		return true
	}
	switch rv := reflect.ValueOf(value); rv.Kind() {
	case reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
