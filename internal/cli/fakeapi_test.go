package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// fakeAPI is an in-memory resource API server.
type fakeAPI struct {
	srv *httptest.Server

	mu         sync.Mutex
	tokens     map[string]string // token -> username
	admins     map[string]bool
	data       map[string][]map[string]any
	nextID     int64
	seen       []string // "METHOD /path" of every request
	rejectWith string   // ErrMessage returned for mutations when set
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	api := &fakeAPI{
		tokens: map[string]string{},
		admins: map[string]bool{},
		data:   map[string][]map[string]any{},
		nextID: 1000,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/authenticate", api.authenticate)
	mux.HandleFunc("POST /auth/register", api.register(false))
	mux.HandleFunc("POST /auth/register/admin", api.register(true))
	mux.HandleFunc("POST /auth/checkToken", api.authed(func(w http.ResponseWriter, r *http.Request, user string) {
		w.WriteHeader(http.StatusOK)
	}))
	mux.HandleFunc("POST /auth/checkAdmin", api.authed(func(w http.ResponseWriter, r *http.Request, user string) {
		if !api.admins[user] {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	mux.HandleFunc("GET /auth/user", api.authed(func(w http.ResponseWriter, r *http.Request, user string) {
		reply(w, http.StatusOK, map[string]any{"id": 1, "username": user})
	}))
	mux.HandleFunc("PUT /auth/user", api.authed(func(w http.ResponseWriter, r *http.Request, user string) {
		var cred map[string]string
		_ = json.NewDecoder(r.Body).Decode(&cred)
		reply(w, http.StatusOK, map[string]string{"token": api.issue(cred["username"])})
	}))
	mux.HandleFunc("GET /auth/register/accept", api.authed(func(w http.ResponseWriter, r *http.Request, user string) {
		reply(w, http.StatusOK, api.data["requests"])
	}))
	mux.HandleFunc("POST /auth/register/accept/{id}", api.authed(func(w http.ResponseWriter, r *http.Request, user string) {
		for _, rec := range api.data["requests"] {
			if idOf(rec) == r.PathValue("id") {
				rec["reviewerId"] = 1
				w.WriteHeader(http.StatusOK)
				return
			}
		}
		w.Header().Set("ErrMessage", "Request not found")
		w.WriteHeader(http.StatusNotFound)
	}))
	mux.HandleFunc("GET /api/{entity}", api.authed(func(w http.ResponseWriter, r *http.Request, user string) {
		recs := api.data[r.PathValue("entity")]
		if recs == nil {
			recs = []map[string]any{}
		}
		reply(w, http.StatusOK, recs)
	}))
	mux.HandleFunc("POST /api/{entity}", api.authed(api.mutation(func(entity, _ string, body map[string]any) bool {
		api.nextID++
		body["id"] = api.nextID
		body["creatorId"] = 1
		api.data[entity] = append(api.data[entity], body)
		return true
	})))
	mux.HandleFunc("PUT /api/{entity}/{id}", api.authed(api.mutation(func(entity, id string, body map[string]any) bool {
		for i, rec := range api.data[entity] {
			if idOf(rec) == id {
				body["creatorId"] = rec["creatorId"]
				api.data[entity][i] = body
				return true
			}
		}
		return false
	})))
	mux.HandleFunc("DELETE /api/{entity}/{id}", api.authed(api.mutation(func(entity, id string, _ map[string]any) bool {
		for i, rec := range api.data[entity] {
			if idOf(rec) == id {
				api.data[entity] = append(api.data[entity][:i], api.data[entity][i+1:]...)
				return true
			}
		}
		return false
	})))

	api.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		api.seen = append(api.seen, r.Method+" "+r.URL.Path)
		api.mu.Unlock()
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(api.srv.Close)
	return api
}

func (api *fakeAPI) URL() string { return api.srv.URL }

func (api *fakeAPI) issue(user string) string {
	tok := "tok-" + user + "-" + strconv.Itoa(len(api.tokens))
	api.tokens[tok] = user
	return tok
}

// revokeAll invalidates every issued token.
func (api *fakeAPI) revokeAll() {
	api.mu.Lock()
	defer api.mu.Unlock()
	api.tokens = map[string]string{}
}

// reject makes every later mutation fail with msg in the ErrMessage header.
func (api *fakeAPI) reject(msg string) {
	api.mu.Lock()
	defer api.mu.Unlock()
	api.rejectWith = msg
}

func (api *fakeAPI) set(entity string, recs []map[string]any) {
	api.mu.Lock()
	defer api.mu.Unlock()
	api.data[entity] = recs
}

func (api *fakeAPI) get(entity string) []map[string]any {
	api.mu.Lock()
	defer api.mu.Unlock()
	return append([]map[string]any(nil), api.data[entity]...)
}

func (api *fakeAPI) requests() []string {
	api.mu.Lock()
	defer api.mu.Unlock()
	return append([]string(nil), api.seen...)
}

func (api *fakeAPI) authenticate(w http.ResponseWriter, r *http.Request) {
	var cred map[string]string
	_ = json.NewDecoder(r.Body).Decode(&cred)
	api.mu.Lock()
	defer api.mu.Unlock()
	if cred["password"] == "wrongpass1" {
		w.WriteHeader(http.StatusForbidden)
		return
	}
	reply(w, http.StatusOK, map[string]string{"token": api.issue(cred["username"])})
}

func (api *fakeAPI) register(admin bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var cred map[string]string
		_ = json.NewDecoder(r.Body).Decode(&cred)
		api.mu.Lock()
		defer api.mu.Unlock()
		if admin && strings.HasPrefix(cred["username"], "pending") {
			w.WriteHeader(http.StatusAccepted)
			return
		}
		if admin {
			api.admins[cred["username"]] = true
		}
		reply(w, http.StatusOK, map[string]string{"token": api.issue(cred["username"])})
	}
}

// authed rejects requests without a known bearer token. The handler runs
// with api.mu held.
func (api *fakeAPI) authed(h func(w http.ResponseWriter, r *http.Request, user string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		api.mu.Lock()
		defer api.mu.Unlock()
		user, ok := api.tokens[strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")]
		if !ok {
			w.Header().Set("ErrMessage", "Token is expired")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		h(w, r, user)
	}
}

func (api *fakeAPI) mutation(apply func(entity, id string, body map[string]any) bool) func(http.ResponseWriter, *http.Request, string) {
	return func(w http.ResponseWriter, r *http.Request, _ string) {
		if api.rejectWith != "" {
			w.Header().Set("ErrMessage", api.rejectWith)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if !apply(r.PathValue("entity"), r.PathValue("id"), body) {
			w.Header().Set("ErrMessage", "Object not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}
}

func reply(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func idOf(rec map[string]any) string {
	switch id := rec["id"].(type) {
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case int:
		return strconv.Itoa(id)
	case int64:
		return strconv.FormatInt(id, 10)
	default:
		return ""
	}
}
