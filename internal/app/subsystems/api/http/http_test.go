package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/bingohq/rng/internal/api"
	"github.com/bingohq/rng/internal/metrics"
	"github.com/bingohq/rng/internal/rng"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
)

type httpTest struct {
	subsystem api.Subsystem
	errors    chan error
	client    *http.Client
	addr      string
}

func setup() *httpTest {
	sampler := rng.New(rng.NewEntropySource())
	a := api.New(sampler, metrics.New(prometheus.NewRegistry()))

	errors := make(chan error)
	subsystem := New(a, &Config{
		Addr:    "127.0.0.1:8890",
		Timeout: 1 * time.Second,
	})

	// start http server
	go subsystem.Start(errors)
	time.Sleep(100 * time.Millisecond)

	return &httpTest{
		subsystem: subsystem,
		errors:    errors,
		client:    &http.Client{Timeout: 1 * time.Second},
		addr:      "127.0.0.1:8890",
	}
}

func (t *httpTest) teardown() error {
	defer close(t.errors)
	defer t.client.CloseIdleConnections()
	return t.subsystem.Stop()
}

func (t *httpTest) get(path string) (int, []byte, error) {
	res, err := t.client.Get(fmt.Sprintf("http://%s/%s", t.addr, path))
	if err != nil {
		return 0, nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return 0, nil, err
	}

	return res.StatusCode, body, nil
}

func TestHttpRandom(t *testing.T) {
	httpTest := setup()

	for _, tc := range []struct {
		name   string
		path   string
		status int
		low    int64
		high   int64
	}{
		{
			name:   "Defaults",
			path:   "random",
			status: 200,
			low:    1,
			high:   90,
		},
		{
			name:   "ExplicitRange",
			path:   "random?x=10&y=20",
			status: 200,
			low:    10,
			high:   20,
		},
		{
			name:   "DefaultLow",
			path:   "random?y=5",
			status: 200,
			low:    1,
			high:   5,
		},
		{
			name:   "DegenerateRange",
			path:   "random?x=5&y=5",
			status: 200,
			low:    5,
			high:   5,
		},
		{
			name:   "One",
			path:   "random?x=1&y=1",
			status: 200,
			low:    1,
			high:   1,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			status, body, err := httpTest.get(tc.path)
			assert.Nil(t, err)
			assert.Equal(t, tc.status, status)

			v, err := strconv.ParseInt(string(body), 10, 64)
			assert.Nil(t, err)
			assert.GreaterOrEqual(t, v, tc.low)
			assert.LessOrEqual(t, v, tc.high)
		})
	}

	assert.Nil(t, httpTest.teardown())
}

func TestHttpRandomInvalidRange(t *testing.T) {
	httpTest := setup()

	for _, tc := range []struct {
		name string
		path string
		err  string
	}{
		{
			name: "LowZero",
			path: "random?x=0",
			err:  "Both x and y must be positive numbers.",
		},
		{
			name: "HighZero",
			path: "random?y=0",
			err:  "Both x and y must be positive numbers.",
		},
		{
			name: "LowNegative",
			path: "random?x=-1",
			err:  "Both x and y must be positive numbers.",
		},
		{
			name: "Inverted",
			path: "random?x=20&y=10",
			err:  "Invalid range: x must be less than or equal to y.",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			status, body, err := httpTest.get(tc.path)
			assert.Nil(t, err)
			assert.Equal(t, 400, status)

			var res struct {
				Error string `json:"error"`
			}
			assert.Nil(t, json.Unmarshal(body, &res))
			assert.Equal(t, tc.err, res.Error)
		})
	}

	assert.Nil(t, httpTest.teardown())
}

func TestHttpRandomMalformedParams(t *testing.T) {
	httpTest := setup()

	for _, path := range []string{
		"random?x=abc",
		"random?y=abc",
		"random?x=1.5",
	} {
		status, _, err := httpTest.get(path)
		assert.Nil(t, err)
		assert.Equal(t, 400, status)
	}

	assert.Nil(t, httpTest.teardown())
}

func TestHttpRandomConcurrent(t *testing.T) {
	httpTest := setup()

	const requests = 50

	var wg sync.WaitGroup
	failures := make(chan string, requests)

	for i := 0; i < requests; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			status, body, err := httpTest.get("random")
			if err != nil || status != 200 {
				failures <- fmt.Sprintf("status %d: %v", status, err)
				return
			}

			v, err := strconv.ParseInt(string(body), 10, 64)
			if err != nil || v < 1 || v > 90 {
				failures <- string(body)
			}
		}()
	}

	wg.Wait()
	close(failures)

	assert.Empty(t, failures)

	assert.Nil(t, httpTest.teardown())
}
