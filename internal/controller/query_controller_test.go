package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sql-workbench-be/internal/dto"
	"sql-workbench-be/internal/pkg/serverutils"
	"sql-workbench-be/pkg/rowset"
	"sql-workbench-be/pkg/sqlguard"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

// stubQueryService answers the controller with canned data; the request
// path semantics themselves are covered by the service tests.
type stubQueryService struct {
	knownRecord uuid.UUID
}

func (s *stubQueryService) Execute(ctx context.Context, userId uuid.UUID, req *dto.ExecuteQueryRequest) (*dto.ExecuteQueryResponse, error) {
	verdict := sqlguard.Classify(req.Query)
	if !verdict.Allowed {
		return nil, serverutils.NewBadRequestError(verdict.Reason)
	}
	return &dto.ExecuteQueryResponse{
		Message: "Query executed successfully",
		Result:  []rowset.Row{{"id": 1}},
	}, nil
}

func (s *stubQueryService) History(ctx context.Context, userId uuid.UUID) (*dto.QueryHistoryResponse, error) {
	return &dto.QueryHistoryResponse{
		Message: "Query history retrieved successfully",
		History: []dto.QueryHistoryItem{},
	}, nil
}

func (s *stubQueryService) ToggleFavorite(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ToggleFavoriteResponse, error) {
	if id != s.knownRecord {
		return nil, serverutils.NewNotFoundError("Query not found")
	}
	return &dto.ToggleFavoriteResponse{Message: "Query added to favorites", IsFavorite: true}, nil
}

func (s *stubQueryService) RenameFavorite(ctx context.Context, userId uuid.UUID, id uuid.UUID, req *dto.RenameFavoriteRequest) error {
	if id != s.knownRecord {
		return serverutils.NewNotFoundError("Query not found")
	}
	return nil
}

func (s *stubQueryService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	if id != s.knownRecord {
		return serverutils.NewNotFoundError("Query not found")
	}
	return nil
}

func (s *stubQueryService) Download(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.DownloadQueryResponse, error) {
	if id != s.knownRecord {
		return nil, serverutils.NewNotFoundError("Query not found")
	}
	return &dto.DownloadQueryResponse{
		Filename: "query-" + id.String() + ".csv",
		Content:  []byte("a,b\n1,\"x,y\"\n"),
	}, nil
}

func newTestApp(svc *stubQueryService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())

	api := app.Group("/api")
	NewQueryController(svc).RegisterRoutes(api, serverutils.JwtMiddleware(testSecret))
	return app
}

func bearerToken(t *testing.T, userId uuid.UUID) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userId.String(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return "Bearer " + signed
}

func doRequest(t *testing.T, app *fiber.App, method, path, body, auth string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestRoutesRequireToken(t *testing.T) {
	app := newTestApp(&stubQueryService{})

	paths := []struct {
		method string
		path   string
	}{
		{fiber.MethodPost, "/api/queries/v1/execute"},
		{fiber.MethodGet, "/api/queries/v1/history"},
		{fiber.MethodPut, "/api/queries/v1/" + uuid.NewString() + "/favorite"},
		{fiber.MethodDelete, "/api/queries/v1/" + uuid.NewString()},
		{fiber.MethodGet, "/api/queries/v1/" + uuid.NewString() + "/download"},
	}

	for _, p := range paths {
		resp := doRequest(t, app, p.method, p.path, "", "")
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "%s %s", p.method, p.path)
	}
}

func TestInvalidTokenRejected(t *testing.T) {
	app := newTestApp(&stubQueryService{})

	resp := doRequest(t, app, fiber.MethodGet, "/api/queries/v1/history", "", "Bearer not-a-token")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestExecuteSuccess(t *testing.T) {
	app := newTestApp(&stubQueryService{})
	auth := bearerToken(t, uuid.New())

	resp := doRequest(t, app, fiber.MethodPost, "/api/queries/v1/execute",
		`{"query":"SELECT * FROM customers"}`, auth)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.ExecuteQueryResponse
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Query executed successfully", body.Message)
	assert.Len(t, body.Result, 1)
}

func TestExecuteRejectedQuery(t *testing.T) {
	app := newTestApp(&stubQueryService{})
	auth := bearerToken(t, uuid.New())

	tests := []struct {
		name string
		body string
	}{
		{"empty query", `{"query":""}`},
		{"write statement", `{"query":"DELETE FROM users"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doRequest(t, app, fiber.MethodPost, "/api/queries/v1/execute", tt.body, auth)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestToggleFavoriteUnknownRecordIs404(t *testing.T) {
	app := newTestApp(&stubQueryService{knownRecord: uuid.New()})
	auth := bearerToken(t, uuid.New())

	resp := doRequest(t, app, fiber.MethodPut, "/api/queries/v1/"+uuid.NewString()+"/favorite", "", auth)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body map[string]string
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Query not found", body["message"])
}

func TestRenameFavoriteRequiresName(t *testing.T) {
	recordId := uuid.New()
	app := newTestApp(&stubQueryService{knownRecord: recordId})
	auth := bearerToken(t, uuid.New())

	resp := doRequest(t, app, fiber.MethodPut, "/api/queries/v1/"+recordId.String()+"/favorite/name",
		`{"name":""}`, auth)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doRequest(t, app, fiber.MethodPut, "/api/queries/v1/"+recordId.String()+"/favorite/name",
		`{"name":"weekly report"}`, auth)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestDownloadSetsCsvHeaders(t *testing.T) {
	recordId := uuid.New()
	app := newTestApp(&stubQueryService{knownRecord: recordId})
	auth := bearerToken(t, uuid.New())

	resp := doRequest(t, app, fiber.MethodGet, "/api/queries/v1/"+recordId.String()+"/download", "", auth)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `attachment; filename="query-`+recordId.String()+`.csv"`,
		resp.Header.Get(fiber.HeaderContentDisposition))

	content, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.Equal(t, "a,b\n1,\"x,y\"\n", string(content))
}
