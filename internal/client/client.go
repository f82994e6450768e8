// Package client holds the typed facades over the backend resources. Every
// facade translates its calls into requests through an api.Generator and
// normalizes the {code, message, data} envelope into either a typed value or
// an error whose message can be shown to the user.
package client

import (
	"fmt"
	"strconv"

	"github.com/fatih/structs"
	"github.com/mitchellh/mapstructure"
	"github.com/niklaus3016/gaoqianleme/pkg/api"
	"github.com/niklaus3016/gaoqianleme/pkg/errorx"
)

// decodeData maps a loose envelope data object onto a typed model struct.
// Field names come from json tags; numeric widening is allowed since the
// backend emits every number as a JSON float.
func decodeData(data api.JSON, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return errorx.New(errorx.Internal, "cannot build decoder: %v", err)
	}

	if err := decoder.Decode(map[string]any(data)); err != nil {
		return errorx.New(errorx.BadResponse, "网络请求失败")
	}

	return nil
}

// decodeSlice maps an array field of the data object onto a typed slice. A
// missing or null field leaves the slice empty.
func decodeSlice(data api.JSON, key string, out any) error {
	raw, ok := data[key]
	if !ok || raw == nil {
		return nil
	}

	value, ok := raw.([]any)
	if !ok {
		return errorx.New(errorx.BadResponse, "网络请求失败")
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return errorx.New(errorx.Internal, "cannot build decoder: %v", err)
	}

	if err := decoder.Decode([]any(value)); err != nil {
		return errorx.New(errorx.BadResponse, "网络请求失败")
	}

	return nil
}

// decodeList maps a data array onto a typed slice.
func decodeList(list api.Array, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return errorx.New(errorx.Internal, "cannot build decoder: %v", err)
	}

	if err := decoder.Decode([]any(list)); err != nil {
		return errorx.New(errorx.BadResponse, "网络请求失败")
	}

	return nil
}

// queryParams flattens a filter struct into query parameters. Zero-valued
// fields are dropped entirely so absent filters never reach the backend as
// empty strings.
func queryParams(filter any) api.Parameter {
	params := api.Parameter{}
	for key, value := range structs.Map(filter) {
		switch v := value.(type) {
		case string:
			if v != "" {
				params[key] = v
			}
		case int:
			if v != 0 {
				params[key] = strconv.Itoa(v)
			}
		case float64:
			if v != 0 {
				params[key] = strconv.FormatFloat(v, 'f', -1, 64)
			}
		case bool:
			if v {
				params[key] = "true"
			}
		default:
			params[key] = fmt.Sprintf("%v", v)
		}
	}

	return params
}
