package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kai468/chupochess/session"
)

func newTestServer(t *testing.T) (*session.Service, http.Handler) {
	t.Helper()
	s := session.NewService()
	return s, NewServer(s)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeGame(t *testing.T, rr *httptest.ResponseRecorder) gameJSON {
	t.Helper()
	var g gameJSON
	if err := json.Unmarshal(rr.Body.Bytes(), &g); err != nil {
		t.Fatalf("decode %q: %v", rr.Body.String(), err)
	}
	return g
}

func TestCreateGame(t *testing.T) {
	_, h := newTestServer(t)
	rr := do(t, h, "POST", "/games", "")
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rr.Code)
	}
	g := decodeGame(t, rr)
	if g.ID == "" || g.ToMove != "white" || g.State != "running" || len(g.Board) != 32 {
		t.Fatalf("unexpected game %+v", g)
	}
	if loc := rr.Header().Get("Location"); loc != "/games/"+g.ID {
		t.Fatalf("location: got %q", loc)
	}
	if rr.Header().Get("ETag") == "" {
		t.Fatalf("missing ETag")
	}
}

func TestCreateFromFEN(t *testing.T) {
	_, h := newTestServer(t)
	rr := do(t, h, "POST", "/games", `{"fen":"4k3/8/8/8/8/8/8/4K3 w - - 0 1"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rr.Code)
	}
	if g := decodeGame(t, rr); g.State != "draw" {
		t.Fatalf("bare kings: got state %q", g.State)
	}
	if rr := do(t, h, "POST", "/games", `{"fen":"8/8 w"}`); rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("bad fen: expected 422, got %d", rr.Code)
	}
	if rr := do(t, h, "POST", "/games", `{"fen":"4k3/8/8/8/8/8/8/4R1K1 w - - 0 1"}`); rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("king capturable: expected 422, got %d", rr.Code)
	}
	if rr := do(t, h, "POST", "/games", `{`); rr.Code != http.StatusBadRequest {
		t.Fatalf("bad json: expected 400, got %d", rr.Code)
	}
}

func TestViewAndETag(t *testing.T) {
	svc, h := newTestServer(t)
	g := svc.Create()

	rr := do(t, h, "GET", "/games/"+g.ID, "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	tag := rr.Header().Get("ETag")

	req := httptest.NewRequest("GET", "/games/"+g.ID, nil)
	req.Header.Set("If-None-Match", tag)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotModified {
		t.Fatalf("expected 304, got %d", rr.Code)
	}

	if rr := do(t, h, "GET", "/games/nope", ""); rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestListMoves(t *testing.T) {
	svc, h := newTestServer(t)
	g := svc.Create()

	rr := do(t, h, "GET", "/games/"+g.ID+"/moves?from=e2", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var m movesJSON
	if err := json.Unmarshal(rr.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if m.From != "E2" || strings.Join(m.To, ",") != "E3,E4" {
		t.Fatalf("moves: got %+v", m)
	}
	if rr := do(t, h, "GET", "/games/"+g.ID+"/moves?from=z9", ""); rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("bad square: expected 422, got %d", rr.Code)
	}
	if rr := do(t, h, "GET", "/games/nope/moves?from=e2", ""); rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestPlayMoves(t *testing.T) {
	svc, h := newTestServer(t)
	g := svc.Create()
	path := "/games/" + g.ID + "/moves"

	rr := do(t, h, "POST", path, `{"from":"E2","to":"E4"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	after := decodeGame(t, rr)
	if after.ToMove != "black" || after.Board["E4"] != "wP" {
		t.Fatalf("after e4: %+v", after)
	}

	cases := []struct {
		name string
		body string
		want int
	}{
		{"wrong side", `{"from":"D2","to":"D4"}`, http.StatusConflict},
		{"illegal", `{"from":"E7","to":"E3"}`, http.StatusUnprocessableEntity},
		{"empty square", `{"from":"E5","to":"E4"}`, http.StatusUnprocessableEntity},
		{"malformed", `{"move":"e7"}`, http.StatusUnprocessableEntity},
		{"bad json", `{"from":`, http.StatusBadRequest},
	}
	for _, tc := range cases {
		if rr := do(t, h, "POST", path, tc.body); rr.Code != tc.want {
			t.Fatalf("%s: got %d want %d", tc.name, rr.Code, tc.want)
		}
	}

	rr = do(t, h, "POST", path, `{"move":"e7e5"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("move notation: expected 200, got %d", rr.Code)
	}
	if g := decodeGame(t, rr); g.Moves != 2 || g.ToMove != "white" {
		t.Fatalf("after e5: %+v", g)
	}
}

func TestPlayAfterMate(t *testing.T) {
	svc, h := newTestServer(t)
	g, err := svc.CreateFromFEN("6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	if err != nil {
		t.Fatalf("fen: %v", err)
	}
	path := "/games/" + g.ID + "/moves"
	rr := do(t, h, "POST", path, `{"from":"A1","to":"A8"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if g := decodeGame(t, rr); g.State != "white wins" || !g.Check {
		t.Fatalf("after mate: %+v", g)
	}
	if rr := do(t, h, "POST", path, `{"from":"G8","to":"H8"}`); rr.Code != http.StatusConflict {
		t.Fatalf("game over: expected 409, got %d", rr.Code)
	}
}

func TestETagChangesWhenPositionRepeats(t *testing.T) {
	svc, h := newTestServer(t)
	g := svc.Create()
	path := "/games/" + g.ID

	first := do(t, h, "GET", path, "").Header().Get("ETag")
	for _, m := range []string{"g1f3", "g8f6", "f3g1", "f6g8"} {
		if rr := do(t, h, "POST", path+"/moves", `{"move":"`+m+`"}`); rr.Code != http.StatusOK {
			t.Fatalf("move %s: expected 200, got %d", m, rr.Code)
		}
	}

	req := httptest.NewRequest("GET", path, nil)
	req.Header.Set("If-None-Match", first)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("stale ETag after repeated position: expected 200, got %d", rr.Code)
	}
	if got := decodeGame(t, rr); got.Moves != 4 {
		t.Fatalf("moves: got %d want 4", got.Moves)
	}
	if rr.Header().Get("ETag") == first {
		t.Fatalf("ETag unchanged after four moves")
	}
}
