package api

import (
	"net/http"

	"github.com/niklaus3016/gaoqianleme/pkg/errorx"
)

// The backend wraps every payload as {code, message, data}; code 200 is the
// only success value regardless of the HTTP status.
const envelopeSuccess = 200

// ParseEnvelope unwraps the response envelope and returns the data object.
// A transport-level failure, a non-JSON body, an unexpected shape, or a
// business code other than 200 all come back as an error carrying the server
// message when one exists. A null or absent data field yields an empty
// object.
func ParseEnvelope(resp *Response) (JSON, error) {
	body, err := checkEnvelope(resp)
	if err != nil {
		return nil, err
	}

	value, ok := body["data"]
	if !ok || value == nil {
		return JSON{}, nil
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return nil, errorx.New(errorx.BadResponse, "网络请求失败")
	}

	return JSON(obj), nil
}

// ParseEnvelopeList unwraps an envelope whose data field holds the list
// itself rather than an object. A null or absent data field yields an empty
// list.
func ParseEnvelopeList(resp *Response) (Array, error) {
	body, err := checkEnvelope(resp)
	if err != nil {
		return nil, err
	}

	value, ok := body["data"]
	if !ok || value == nil {
		return Array{}, nil
	}

	list, ok := value.([]any)
	if !ok {
		return nil, errorx.New(errorx.BadResponse, "网络请求失败")
	}

	return Array(list), nil
}

func checkEnvelope(resp *Response) (JSON, error) {
	body, ok := resp.Body.(JSON)
	if !ok {
		return nil, errorx.New(errorx.BadResponse, "网络请求失败")
	}

	if resp.Code < http.StatusOK || resp.Code >= http.StatusMultipleChoices {
		if message, err := body.GetString("message"); err == nil && message != "" {
			return nil, errorx.New(errorx.Unavailable, "%s", message)
		}

		return nil, errorx.New(errorx.BadResponse, "网络请求失败 (HTTP %d)", resp.Code)
	}

	code, err := body.GetInt("code")
	if err != nil {
		return nil, errorx.New(errorx.BadResponse, "网络请求失败")
	}

	if code != envelopeSuccess {
		if message, err := body.GetString("message"); err == nil && message != "" {
			return nil, errorx.New(errorx.Unavailable, "%s", message)
		}

		return nil, errorx.Unknown
	}

	return body, nil
}
