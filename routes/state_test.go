package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/victorjacobs/go-ensy/bridge"
	"github.com/victorjacobs/go-ensy/config"
	"github.com/victorjacobs/go-ensy/ensy"
)

func TestStateBeforeFirstReport(t *testing.T) {
	ensyClient := ensy.New("00:00:00:00:00:00", false)
	t.Cleanup(ensyClient.Stop)

	b := bridge.New(&config.Configuration{}, ensyClient)

	router := httprouter.New()
	router.GET("/state", State(b))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/state", nil))

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}
