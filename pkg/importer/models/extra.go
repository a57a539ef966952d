package models

import (
	"encoding/json"
	"reflect"
	"strings"
)

// decodeWithExtra decodes data into dst and returns the object members that
// no json-tagged field of dst consumed.
func decodeWithExtra(data []byte, dst any) (map[string]json.RawMessage, error) {
	if err := json.Unmarshal(data, dst); err != nil {
		return nil, err
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for _, key := range jsonKeys(reflect.TypeOf(dst).Elem()) {
		delete(all, key)
	}
	if len(all) == 0 {
		return nil, nil
	}
	return all, nil
}

// encodeWithExtra encodes src and merges extra members back in. Known fields
// win over extra members with the same key.
func encodeWithExtra(src any, extra map[string]json.RawMessage) ([]byte, error) {
	data, err := json.Marshal(src)
	if err != nil || len(extra) == 0 {
		return data, err
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	for key, value := range extra {
		if _, ok := all[key]; !ok {
			all[key] = value
		}
	}
	return json.Marshal(all)
}

func jsonKeys(t reflect.Type) []string {
	var keys []string
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("json")
		name, _, _ := strings.Cut(tag, ",")
		if name == "" || name == "-" {
			continue
		}
		keys = append(keys, name)
	}
	return keys
}
