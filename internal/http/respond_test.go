package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/therajusah/Ecommerce-app/internal/store"
)

func TestHandleError_LogsUnhandledToInjectedLogger(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	rs := responder{logger: zap.New(core)}

	recorder := httptest.NewRecorder()
	rs.handleError(recorder, errors.New("disk on fire"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	var response ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "internal_error", response.Code)

	entries := logs.FilterMessage("unhandled error").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "disk on fire", entries[0].ContextMap()["error"])
}

func TestHandleError_MappedErrorsAreNotLogged(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	rs := responder{logger: zap.New(core)}

	recorder := httptest.NewRecorder()
	rs.handleError(recorder, fmt.Errorf("%w: ORD-1", store.ErrOrderNotFound))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Zero(t, logs.Len())
}

func TestRespondJSON_LogsEncodeFailure(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	rs := responder{logger: zap.New(core)}

	rs.respondJSON(httptest.NewRecorder(), http.StatusOK, map[string]any{"bad": make(chan int)})

	assert.Equal(t, 1, logs.FilterMessage("failed to encode response").Len())
}
