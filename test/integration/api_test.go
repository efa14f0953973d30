// Package integration runs the full API (container, router, middleware and hash stack)
// behind a real HTTP listener for every supported algorithm and encoding.
package integration

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/selfhash/internal/app"
	"github.com/allisson/selfhash/internal/config"
	hashidDomain "github.com/allisson/selfhash/internal/hashid/domain"
	"github.com/allisson/selfhash/internal/hashid/http/dto"
)

type integrationTestContext struct {
	container *app.Container
	server    *httptest.Server
	cancel    context.CancelFunc
}

func (ctx *integrationTestContext) makeRequest(
	t *testing.T,
	method, path string,
	body interface{},
) (*http.Response, []byte) {
	t.Helper()

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		require.NoError(t, err)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequest(method, ctx.server.URL+path, bodyReader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	require.NoError(t, err)

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	return resp, respBody
}

func setupIntegrationTest(t *testing.T, profile hashidDomain.Profile) *integrationTestContext {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		ServerHost:       "127.0.0.1",
		ServerPort:       8080,
		LogLevel:         "error",
		HashPrefix:       profile.Prefix,
		HashAlgorithm:    profile.Algorithm.String(),
		HashEncoding:     profile.Encoding.String(),
		HashCrcLength:    profile.CrcLength,
		MetricsEnabled:   true,
		MetricsNamespace: "integration",
		MetricsPort:      8081,
		ShutdownTimeout:  time.Second,
	}
	require.NoError(t, cfg.Validate())

	routerCtx, cancel := context.WithCancel(context.Background())
	container := app.NewContainer(cfg)
	server, err := container.HTTPServer(routerCtx)
	require.NoError(t, err)

	ctx := &integrationTestContext{
		container: container,
		server:    httptest.NewServer(server.GetHandler()),
		cancel:    cancel,
	}
	t.Cleanup(func() { teardownIntegrationTest(t, ctx) })
	return ctx
}

func teardownIntegrationTest(t *testing.T, ctx *integrationTestContext) {
	t.Helper()
	ctx.server.Close()
	ctx.cancel()
	assert.NoError(t, ctx.container.Shutdown(context.Background()))
}

func TestIntegration_Health(t *testing.T) {
	ctx := setupIntegrationTest(t, hashidDomain.Profile{
		Algorithm: hashidDomain.AlgorithmSHA256,
		Encoding:  hashidDomain.EncodingHex,
	})

	resp, _ := ctx.makeRequest(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = ctx.makeRequest(t, http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestIntegration_CompleteFlow(t *testing.T) {
	for _, algorithm := range hashidDomain.Algorithms {
		for _, encoding := range hashidDomain.Encodings {
			for _, crcLength := range []int{0, 4} {
				name := fmt.Sprintf("%s/%s/crc%d", algorithm, encoding, crcLength)
				t.Run(name, func(t *testing.T) {
					runCompleteFlow(t, hashidDomain.Profile{
						Prefix:    "it_",
						Algorithm: algorithm,
						Encoding:  encoding,
						CrcLength: crcLength,
					})
				})
			}
		}
	}
}

func runCompleteFlow(t *testing.T, profile hashidDomain.Profile) {
	ctx := setupIntegrationTest(t, profile)
	data := base64.StdEncoding.EncodeToString([]byte("integration payload"))

	// profile
	resp, body := ctx.makeRequest(t, http.MethodGet, "/v1/hashes/profile", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var info dto.ProfileResponse
	require.NoError(t, json.Unmarshal(body, &info))
	if profile.CrcLength > 0 {
		assert.Equal(t, profile.CrcLength, info.ChecksumLength)
	}

	// plain hash
	resp, body = ctx.makeRequest(t, http.MethodPost, "/v1/hashes", map[string]string{"data": data})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var plain dto.HashResponse
	require.NoError(t, json.Unmarshal(body, &plain))
	assert.Len(t, plain.Hash, info.DigestLength)

	resp, body = ctx.makeRequest(t, http.MethodPost, "/v1/hashes/verify",
		map[string]string{"data": data, "hash": plain.Hash})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"valid":true}`, string(body))

	// self-validating hash embeds the plain hash and the checksum
	resp, body = ctx.makeRequest(t, http.MethodPost, "/v1/hashes/self-validating", map[string]string{"data": data})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var issued dto.HashResponse
	require.NoError(t, json.Unmarshal(body, &issued))
	assert.Len(t, issued.Hash, info.DigestLength+info.ChecksumLength)
	assert.Equal(t, plain.Hash, issued.Hash[:info.DigestLength])

	resp, body = ctx.makeRequest(t, http.MethodPost, "/v1/hashes/crc", map[string]string{"data": data})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var crc dto.CrcResponse
	require.NoError(t, json.Unmarshal(body, &crc))
	assert.Equal(t, issued.Hash[info.DigestLength:], crc.Crc[:info.ChecksumLength])

	resp, body = ctx.makeRequest(t, http.MethodPost, "/v1/hashes/self-validating/verify",
		map[string]string{"hash": issued.Hash})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"valid":true}`, string(body))

	// dropping the last character breaks the split point
	resp, body = ctx.makeRequest(t, http.MethodPost, "/v1/hashes/self-validating/verify",
		map[string]string{"hash": issued.Hash[:len(issued.Hash)-1]})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"valid":false}`, string(body))

	resp, body = ctx.makeRequest(t, http.MethodPost, "/v1/hashes/inspect", map[string]string{"hash": issued.Hash})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var inspection dto.InspectResponse
	require.NoError(t, json.Unmarshal(body, &inspection))
	assert.Equal(t, plain.Hash, inspection.MainHash)
	assert.True(t, inspection.Valid)

	// random tokens verify on their own
	resp, body = ctx.makeRequest(t, http.MethodPost, "/v1/hashes/self-validating/random", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var random dto.HashResponse
	require.NoError(t, json.Unmarshal(body, &random))
	assert.NotEqual(t, issued.Hash, random.Hash)

	resp, body = ctx.makeRequest(t, http.MethodPost, "/v1/hashes/self-validating/verify",
		map[string]string{"hash": random.Hash})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"valid":true}`, string(body))
}
