package restapi

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cairometro/internal/appconf"
	"cairometro/internal/planner"
)

func routeQuery(from, to string) string {
	q := url.Values{}
	q.Set("key", "TEST")
	q.Set("from", from)
	q.Set("to", to)
	return q.Encode()
}

func TestStationsHandler(t *testing.T) {
	api, resp, model := serveAndRetrieveEndpoint(t, "/api/metro/stations.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.StatusOK, model.Code)
	assert.Equal(t, "OK", model.Text)

	list := listOf(t, model)
	require.Len(t, list, 78)

	stations := api.Planner.Stations()
	first := list[0].(map[string]interface{})
	assert.Equal(t, string(stations[0].ID), first["id"])

	junctions := 0
	for _, item := range list {
		if item.(map[string]interface{})["junction"].(bool) {
			junctions++
		}
	}
	assert.Equal(t, 4, junctions)

	refs := model.Data.(map[string]interface{})["references"].(map[string]interface{})
	assert.Len(t, refs["lines"], 3)
}

func TestLinesHandler(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/metro/lines.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	list := listOf(t, model)
	require.Len(t, list, 3)

	l2 := list[1].(map[string]interface{})
	assert.Equal(t, "L2", l2["id"])
	assert.Equal(t, "الخط الثاني", l2["name"])
	assert.Len(t, l2["stationIds"], 20)
}

func TestLineHandler(t *testing.T) {
	t.Run("known line", func(t *testing.T) {
		_, resp, model := serveAndRetrieveEndpoint(t, "/api/metro/line/L3.json?key=TEST")
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		entry := entryOf(t, model)
		assert.Equal(t, "L3", entry["id"])
		assert.Len(t, entry["stationIds"], 28)
	})

	t.Run("unknown line", func(t *testing.T) {
		_, resp, model := serveAndRetrieveEndpoint(t, "/api/metro/line/L9?key=TEST")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "resource not found", model.Text)
	})
}

func TestStationHandler(t *testing.T) {
	t.Run("junction station", func(t *testing.T) {
		_, resp, model := serveAndRetrieveEndpoint(t, "/api/metro/station/"+url.PathEscape("العتبة")+".json?key=TEST")

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		entry := entryOf(t, model)
		assert.Equal(t, "العتبة", entry["id"])
		assert.Equal(t, []interface{}{"L2", "L3"}, entry["lineIds"])
		assert.Equal(t, true, entry["junction"])

		refs := model.Data.(map[string]interface{})["references"].(map[string]interface{})
		assert.Len(t, refs["lines"], 2)
	})

	t.Run("unknown station", func(t *testing.T) {
		_, resp, model := serveAndRetrieveEndpoint(t, "/api/metro/station/"+url.PathEscape("الزمالك")+"?key=TEST")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, http.StatusNotFound, model.Code)
	})

	t.Run("invalid name", func(t *testing.T) {
		api := createTestApi(t)
		resp, body := serveApiAndRetrieveBody(t, api, "/api/metro/station/"+url.PathEscape("a<b>")+"?key=TEST")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, string(body), "fieldErrors")
	})
}

func TestRouteHandler(t *testing.T) {
	t.Run("transfer route", func(t *testing.T) {
		_, resp, model := serveAndRetrieveEndpoint(t, "/api/metro/route.json?"+routeQuery("المرج", "العتبة"))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		entry := entryOf(t, model)
		assert.Equal(t, "المرج", entry["from"])
		assert.Equal(t, "العتبة", entry["to"])
		assert.Equal(t, float64(13), entry["stops"])
		assert.Equal(t, float64(1), entry["transfers"])
		assert.Equal(t, false, entry["direct"])
		assert.Len(t, entry["segments"], 2)
		assert.Equal(t, 2, strings.Count(entry["description"].(string), "🚇 اركب"))
	})

	t.Run("direct route", func(t *testing.T) {
		_, resp, model := serveAndRetrieveEndpoint(t, "/api/metro/route.json?"+routeQuery("السادات", "السيدة زينب"))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		entry := entryOf(t, model)
		assert.Equal(t, true, entry["direct"])
		assert.Equal(t, []interface{}{"السادات", "سعد زغلول", "السيدة زينب"}, entry["stationIds"])
		assert.Equal(t, "🚇 اركب الخط الأول من السادات إلى السيدة زينب:\nسعد زغلول ← السيدة زينب", entry["description"])
	})

	t.Run("markup around a name is stripped", func(t *testing.T) {
		_, resp, model := serveAndRetrieveEndpoint(t, "/api/metro/route.json?"+routeQuery(" <b>السادات</b>", "السيدة زينب"))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		entry := entryOf(t, model)
		assert.Equal(t, "السادات", entry["from"])
		assert.Equal(t, true, entry["direct"])
	})

	t.Run("same station", func(t *testing.T) {
		_, resp, model := serveAndRetrieveEndpoint(t, "/api/metro/route.json?"+routeQuery("ناصر", "ناصر"))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		entry := entryOf(t, model)
		assert.Equal(t, true, entry["sameStation"])
		assert.Equal(t, planner.MessageSameStation, entry["description"])
	})

	t.Run("unknown destination", func(t *testing.T) {
		api := createTestApi(t)
		resp, body := serveApiAndRetrieveBody(t, api, "/api/metro/route.json?"+routeQuery("المرج", "الزمالك"))

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var payload struct {
			FieldErrors map[string][]string `json:"fieldErrors"`
		}
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, []string{"❓ المحطة غير معروفة: الزمالك"}, payload.FieldErrors["to"])
		assert.NotContains(t, payload.FieldErrors, "from")
	})

	t.Run("missing parameters", func(t *testing.T) {
		api := createTestApi(t)
		resp, body := serveApiAndRetrieveBody(t, api, "/api/metro/route.json?key=TEST")

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var payload struct {
			FieldErrors map[string][]string `json:"fieldErrors"`
		}
		require.NoError(t, json.Unmarshal(body, &payload))
		assert.Contains(t, payload.FieldErrors, "from")
		assert.Contains(t, payload.FieldErrors, "to")
	})

	t.Run("requires api key", func(t *testing.T) {
		_, resp, model := serveAndRetrieveEndpoint(t, "/api/metro/route.json?from=a&to=b")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "permission denied", model.Text)
	})
}

func TestRouteHandlerWithoutConfiguredKeys(t *testing.T) {
	api := createTestApiWithConfig(t, appconf.Config{RateLimit: 10})

	resp, model := serveApiAndRetrieveEndpoint(t, api, "/api/metro/lines.json")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.StatusOK, model.Code)
}

func TestRouteSVGHandler(t *testing.T) {
	t.Run("highlights the path", func(t *testing.T) {
		api := createTestApi(t)
		resp, body := serveApiAndRetrieveBody(t, api, "/api/metro/route.svg?"+routeQuery("السادات", "السيدة زينب"))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "image/svg+xml; charset=utf-8", resp.Header.Get("Content-Type"))
		svg := string(body)
		assert.Contains(t, svg, "<svg ")
		assert.Contains(t, svg, "مسار المترو")
		assert.Equal(t, 3, strings.Count(svg, `fill="lightblue"`))
	})

	t.Run("unknown station returns json error", func(t *testing.T) {
		api := createTestApi(t)
		resp, _ := serveApiAndRetrieveBody(t, api, "/api/metro/route.svg?"+routeQuery("x", "ناصر"))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	})
}

func TestNetworkSVGHandler(t *testing.T) {
	api := createTestApi(t)
	resp, body := serveApiAndRetrieveBody(t, api, "/api/metro/network.svg?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	svg := string(body)
	assert.Equal(t, 78, strings.Count(svg, "<circle"))
	assert.NotContains(t, svg, `fill="lightblue"`)
}

func TestUnknownEndpoint(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/metro/nope.json?key=TEST")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "resource not found", model.Text)
}
