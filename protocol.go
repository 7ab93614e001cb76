package mr

// Typed marshaling helpers for mapper/reducer authors who want to move
// structured Go values through Emit/GetNext's string-only wire
// contract. The engine itself never calls these; they are a
// convenience layer callers opt into.
//
// Kept on encoding/json + reflect (stdlib) rather than a third-party
// codec: reflect-driven (de)serialization of an arbitrary caller
// struct isn't a need a schema-first codec (protobuf, msgpack, ...) is
// positioned to replace without forcing a schema on every caller —
// see DESIGN.md.

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// KeyValue is a structured stand-in for the (reduceKey, sortKey,
// value) triple a Protocol marshals to and from the strings Emit and
// GetNext actually carry. SortKey is carried for callers layering a
// secondary sort on top of Emit's primary-key ordering; the core
// engine's partition ordering (partition.go) only ever looks at
// ReduceKey.
type KeyValue struct {
	ReduceKey string
	SortKey   string
	Value     string
}

// Protocol marshals and unmarshals key/value pairs between their
// caller-defined Go types and the strings the engine traffics in.
type Protocol interface {
	// Marshal turns a (reduceKey, sortKey, value) triple into a
	// KeyValue ready for Emit.
	Marshal(reduceKey, sortKey, value interface{}) *KeyValue

	// UnmarshalKVs turns a key and its collected values back into the
	// caller's destination types. k and vs must be pointers.
	UnmarshalKVs(key string, values []string, k interface{}, vs interface{})
}

// JSONProtocol marshals every field as a JSON string.
type JSONProtocol struct{}

func (JSONProtocol) Marshal(reduceKey, sortKey, value interface{}) *KeyValue {
	r, _ := json.Marshal(reduceKey)
	s, _ := json.Marshal(sortKey)
	v, _ := json.Marshal(value)
	return &KeyValue{string(r), string(s), string(v)}
}

func (JSONProtocol) UnmarshalKVs(key string, values []string, k interface{}, vs interface{}) {
	json.Unmarshal([]byte(key), k) //nolint:errcheck

	vsPtr := reflect.ValueOf(vs)
	elemType := reflect.TypeOf(vs).Elem()
	out := reflect.MakeSlice(elemType, len(values), len(values))

	for i, raw := range values {
		if err := json.Unmarshal([]byte(raw), out.Index(i).Addr().Interface()); err != nil {
			continue
		}
	}
	vsPtr.Elem().Set(out)
}

// TSVProtocol renders struct/slice/primitive values as tab-separated
// fields.
type TSVProtocol struct{}

func (TSVProtocol) Marshal(reduceKey, sortKey, value interface{}) *KeyValue {
	vType := reflect.TypeOf(value)
	vVal := reflect.ValueOf(value)

	var fields []string
	switch {
	case vType.Kind() == reflect.Struct:
		fields = make([]string, vType.NumField())
		for i := 0; i < vType.NumField(); i++ {
			fields[i] = primitiveToString(vVal.Field(i))
		}
	case isPrimitive(vType.Kind()):
		fields = append(fields, primitiveToString(vVal))
	case vType.Kind() == reflect.Array || vType.Kind() == reflect.Slice:
		fields = make([]string, vVal.Len())
		for i := 0; i < vVal.Len(); i++ {
			fields[i] = primitiveToString(vVal.Index(i))
		}
	}

	return &KeyValue{
		ReduceKey: primitiveToString(reflect.ValueOf(reduceKey)),
		SortKey:   primitiveToString(reflect.ValueOf(sortKey)),
		Value:     strings.Join(fields, "\t"),
	}
}

func (TSVProtocol) UnmarshalKVs(key string, values []string, k interface{}, vs interface{}) {
	fmt.Sscan(key, k) //nolint:errcheck

	vsPtr := reflect.ValueOf(vs)
	elemType := reflect.TypeOf(vs).Elem()
	itemType := elemType.Elem()
	out := reflect.MakeSlice(elemType, len(values), len(values))

	for i, raw := range values {
		fields := strings.Split(raw, "\t")
		item := out.Index(i)

		switch {
		case itemType.Kind() == reflect.Struct:
			for j := 0; j < itemType.NumField() && j < len(fields); j++ {
				fmt.Sscan(fields[j], item.Field(j).Addr().Interface()) //nolint:errcheck
			}
		case itemType.Kind() == reflect.Array:
			for j := 0; j < itemType.Len() && j < len(fields); j++ {
				fmt.Sscan(fields[j], item.Index(j).Addr().Interface()) //nolint:errcheck
			}
		case isPrimitive(itemType.Kind()):
			if len(fields) > 0 {
				fmt.Sscan(fields[0], item.Addr().Interface()) //nolint:errcheck
			}
		}
	}
	vsPtr.Elem().Set(out)
}

func isPrimitive(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64,
		reflect.String:
		return true
	}
	return false
}

func primitiveToString(v reflect.Value) string {
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return "1"
		}
		return "0"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', 5, 64)
	case reflect.String:
		return v.String()
	default:
		return fmt.Sprintf("(unsupported type %s)", v.Kind())
	}
}
