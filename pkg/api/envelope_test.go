package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/niklaus3016/gaoqianleme/pkg/errorx"
)

func Test_ParseEnvelope(t *testing.T) {
	data, err := ParseEnvelope(&Response{
		Code: http.StatusOK,
		Body: JSON{
			"code":    float64(200),
			"message": "ok",
			"data":    map[string]any{"totalGold": float64(1200)},
		},
	})
	require.NoError(t, err)

	total, err := data.GetFloat64("totalGold")
	require.NoError(t, err)
	require.Equal(t, float64(1200), total)
}

func Test_ParseEnvelope_NullData(t *testing.T) {
	data, err := ParseEnvelope(&Response{
		Code: http.StatusOK,
		Body: JSON{"code": float64(200), "message": "ok", "data": nil},
	})
	require.NoError(t, err)
	require.Empty(t, data)
}

func Test_ParseEnvelope_BusinessError(t *testing.T) {
	_, err := ParseEnvelope(&Response{
		Code: http.StatusOK,
		Body: JSON{"code": float64(400), "message": "金币不足"},
	})
	require.Error(t, err)
	require.Equal(t, "金币不足", err.Error())
}

func Test_ParseEnvelope_BusinessErrorWithoutMessage(t *testing.T) {
	_, err := ParseEnvelope(&Response{
		Code: http.StatusOK,
		Body: JSON{"code": float64(500)},
	})
	require.Error(t, err)
	require.Equal(t, errorx.Unknown.Error(), err.Error())
}

func Test_ParseEnvelope_HTTPError(t *testing.T) {
	_, err := ParseEnvelope(&Response{
		Code: http.StatusBadGateway,
		Body: JSON{},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "网络请求失败")
}

func Test_ParseEnvelope_NonJSONBody(t *testing.T) {
	_, err := ParseEnvelope(&Response{
		Code: http.StatusOK,
		Body: Array{"unexpected"},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "网络请求失败")
}

func Test_ParseEnvelopeList(t *testing.T) {
	list, err := ParseEnvelopeList(&Response{
		Code: http.StatusOK,
		Body: JSON{
			"code": float64(200),
			"data": []any{
				map[string]any{"amount": float64(10)},
				map[string]any{"amount": float64(20)},
			},
		},
	})
	require.NoError(t, err)
	require.Len(t, list, 2)
}

func Test_ParseEnvelopeList_AbsentData(t *testing.T) {
	list, err := ParseEnvelopeList(&Response{
		Code: http.StatusOK,
		Body: JSON{"code": float64(200)},
	})
	require.NoError(t, err)
	require.Empty(t, list)
}
