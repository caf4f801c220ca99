package be_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	be "user_center/be"
	"user_center/be/biz/config"
	"user_center/be/biz/db"
	"user_center/be/biz/db/gormdb"
	redisdb "user_center/be/biz/db/redis"
	"user_center/be/biz/model/dto"
	"user_center/be/biz/model/errs"
	"user_center/be/biz/model/storage"
	"user_center/be/biz/service/user"

	"github.com/alicebob/miniredis/v2"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/test/assert"
	"github.com/cloudwego/hertz/pkg/common/ut"
)

const findLimit = 50

var testEngine *server.Hertz

func TestMain(t *testing.M) {
	mr, err := miniredis.Run()
	if err != nil {
		panic(err)
	}
	dir, err := os.MkdirTemp("", "user_center_test_conf_*")
	if err != nil {
		panic(err)
	}
	confPath := filepath.Join(dir, "deploy.test.yml")
	confStr := `server:
  addr: "127.0.0.1:0"

storage:
  driver: "sqlite"

sqlite:
  path: ":memory:"

redis:
  ip: "` + mr.Host() + `"
  port: ` + mr.Port() + `
  password: ""
  db: 0

cors:
  allow_origins:
    - "*"
  allow_methods:
    - "POST"
  allow_headers:
    - "Origin"
    - "Content-Type"
  max_age: 600

rate_limit:
  - path: "/users/find"
    window_seconds: 60
    limit: 50

hash:
  cost: 4
`
	if err := os.WriteFile(confPath, []byte(confStr), 0600); err != nil {
		panic(err)
	}
	conf, err := config.Load(confPath)
	if err != nil {
		panic(err)
	}
	if err := db.Init(context.Background(), conf); err != nil {
		panic(err)
	}

	testEngine = be.NewEngine(conf, user.NewDefault(conf))
	code := t.Run()

	db.Close(context.Background())
	mr.Close()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func newTestServer(t *testing.T) *server.Hertz {
	t.Helper()
	redisdb.GetRedisClient().FlushAll(context.Background())
	gormdb.GetDbConn().Unscoped().Where("1 = 1").Delete(&storage.UserRecord{})
	return testEngine
}

func perform(h *server.Hertz, method, url string, body string, headers ...ut.Header) *ut.ResponseRecorder {
	var b *ut.Body
	if body != "" {
		b = &ut.Body{Body: bytes.NewBufferString(body), Len: len(body)}
	}
	allHeaders := append([]ut.Header{{Key: "Content-Type", Value: "application/json"}}, headers...)
	return ut.PerformRequest(h.Engine, method, url, b, allHeaders...)
}

func decodeCommonResp(t *testing.T, respBody []byte) dto.CommonResp {
	t.Helper()
	var r dto.CommonResp
	err := json.Unmarshal(respBody, &r)
	assert.Nil(t, err)
	return r
}

func decodeUser(t *testing.T, r dto.CommonResp) dto.UserResp {
	t.Helper()
	dataBytes, err := json.Marshal(r.Data)
	assert.Nil(t, err)
	var u dto.UserResp
	err = json.Unmarshal(dataBytes, &u)
	assert.Nil(t, err)
	return u
}

func TestUserLifecycle(t *testing.T) {
	h := newTestServer(t)

	// create
	w := perform(h, http.MethodPost, "/users", `{"name":"John","email":"john@example.com","password":"secret12"}`)
	resp := w.Result()
	assert.DeepEqual(t, http.StatusCreated, resp.StatusCode())
	assert.False(t, strings.Contains(string(resp.Body()), "secret12"))
	assert.False(t, strings.Contains(string(resp.Body()), "$2a$"))

	r := decodeCommonResp(t, resp.Body())
	assert.True(t, r.Success)
	created := decodeUser(t, r)
	assert.True(t, created.UserID != "")
	assert.DeepEqual(t, "John", created.Name)
	assert.DeepEqual(t, "john@example.com", created.Email)

	// the stored password is a bcrypt digest, never the clear text
	var rec storage.UserRecord
	err := gormdb.GetDbConn().Where("email = ?", "john@example.com").First(&rec).Error
	assert.Nil(t, err)
	assert.True(t, strings.HasPrefix(rec.Password, "$2a$04$"))
	assert.True(t, rec.Password != "secret12")

	// duplicated email
	w = perform(h, http.MethodPost, "/users", `{"name":"Jane","email":"john@example.com","password":"other123"}`)
	resp = w.Result()
	assert.DeepEqual(t, http.StatusConflict, resp.StatusCode())
	r = decodeCommonResp(t, resp.Body())
	assert.False(t, r.Success)
	assert.DeepEqual(t, int(errs.EmailAlreadyInUse.Code()), r.Code)

	// find with the right password, twice
	for i := 0; i < 2; i++ {
		w = perform(h, http.MethodPost, "/users/find", `{"email":"john@example.com","password":"secret12"}`)
		resp = w.Result()
		assert.DeepEqual(t, http.StatusOK, resp.StatusCode())
		found := decodeUser(t, decodeCommonResp(t, resp.Body()))
		assert.DeepEqual(t, created.UserID, found.UserID)
		assert.DeepEqual(t, "John", found.Name)
		assert.False(t, strings.Contains(string(resp.Body()), "$2a$"))
	}

	// wrong password
	w = perform(h, http.MethodPost, "/users/find", `{"email":"john@example.com","password":"wrong"}`)
	resp = w.Result()
	assert.DeepEqual(t, http.StatusUnauthorized, resp.StatusCode())
	r = decodeCommonResp(t, resp.Body())
	assert.DeepEqual(t, int(errs.WrongPassword.Code()), r.Code)

	// no lockout after a failure
	w = perform(h, http.MethodPost, "/users/find", `{"email":"john@example.com","password":"secret12"}`)
	assert.DeepEqual(t, http.StatusOK, w.Result().StatusCode())

	// unknown email
	w = perform(h, http.MethodPost, "/users/find", `{"email":"nobody@example.com","password":"x"}`)
	resp = w.Result()
	assert.DeepEqual(t, http.StatusNotFound, resp.StatusCode())
	r = decodeCommonResp(t, resp.Body())
	assert.DeepEqual(t, int(errs.UserNotFound.Code()), r.Code)
}

func TestCreateUser_ParamError(t *testing.T) {
	h := newTestServer(t)

	bodies := []string{
		"{",
		`{"email":"john@example.com","password":"secret12"}`,
		`{"name":"John","password":"secret12"}`,
		`{"name":"John","email":"john@example.com"}`,
		`{"name":"John","email":"a@b","password":"secret12"}`,
		`{"name":"John","email":"john@example.com","password":"secret"}`,
		`{"name":"John","email":"john@example.com","password":"secretpw"}`,
		`{"name":"` + strings.Repeat("n", 65) + `","email":"john@example.com","password":"secret12"}`,
		`{"name":"John","email":"john@example.com","password":"1` + strings.Repeat("p", 72) + `"}`,
	}
	for _, body := range bodies {
		w := perform(h, http.MethodPost, "/users", body)
		resp := w.Result()
		assert.DeepEqual(t, http.StatusBadRequest, resp.StatusCode())

		r := decodeCommonResp(t, resp.Body())
		assert.False(t, r.Success)
		assert.DeepEqual(t, int(errs.ParamError.Code()), r.Code)
	}

	var count int64
	gormdb.GetDbConn().Model(&storage.UserRecord{}).Count(&count)
	assert.DeepEqual(t, int64(0), count)
}

func TestCreateUser_EmailBoundary(t *testing.T) {
	h := newTestServer(t)

	w := perform(h, http.MethodPost, "/users", `{"name":"A","email":"a@b.c","password":"secret12"}`)
	assert.DeepEqual(t, http.StatusCreated, w.Result().StatusCode())

	w = perform(h, http.MethodPost, "/users/find", `{"email":"a@b.c","password":"secret12"}`)
	assert.DeepEqual(t, http.StatusOK, w.Result().StatusCode())
}

func TestFindUser_ParamError(t *testing.T) {
	h := newTestServer(t)

	for _, body := range []string{"{", `{"email":"john","password":"x"}`, `{"email":"john@example.com"}`} {
		w := perform(h, http.MethodPost, "/users/find", body)
		resp := w.Result()
		assert.DeepEqual(t, http.StatusBadRequest, resp.StatusCode())
		assert.DeepEqual(t, int(errs.ParamError.Code()), decodeCommonResp(t, resp.Body()).Code)
	}
}

func TestFindUser_RateLimited(t *testing.T) {
	h := newTestServer(t)

	for i := 0; i < findLimit; i++ {
		w := perform(h, http.MethodPost, "/users/find", "{")
		assert.DeepEqual(t, http.StatusBadRequest, w.Result().StatusCode())
	}

	w := perform(h, http.MethodPost, "/users/find", "{")
	resp := w.Result()
	assert.DeepEqual(t, http.StatusTooManyRequests, resp.StatusCode())
	assert.DeepEqual(t, int(errs.TooManyRequest.Code()), decodeCommonResp(t, resp.Body()).Code)

	// other paths are not limited
	w = perform(h, http.MethodPost, "/users", "{")
	assert.DeepEqual(t, http.StatusBadRequest, w.Result().StatusCode())
}

func TestLogIdHeader(t *testing.T) {
	h := newTestServer(t)

	w := perform(h, http.MethodPost, "/users/find", `{"email":"nobody@example.com","password":"x"}`)
	assert.True(t, len(w.Result().Header.Get("X-Log-ID")) > 0)
}
