// Package apitest runs an in-process SecureNote backend for tests, in the
// spirit of net/http/httptest. It implements the five endpoints the client
// uses, hashes passwords with bcrypt, issues HS256 JWTs and answers every
// failed verification with the same message whether the note exists or not.
package apitest

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"
)

// Messages returned by the fake backend.
const (
	MsgRequiredFields     = "All fields are required"
	MsgUserExists         = "User already exists"
	MsgInvalidCredentials = "Invalid credentials"
	MsgInvalidToken       = "Token is not valid"
	MsgNoteFieldsRequired = "Title, content and password are required"
	MsgInvalidPassword    = "Invalid password"
)

type user struct {
	id    string
	name  string
	email string
	hash  []byte
}

type note struct {
	id      string
	owner   string
	title   string
	content string
	hash    []byte
}

type override struct {
	status int
	body   string
}

type Server struct {
	*httptest.Server

	mu       sync.Mutex
	secret   []byte
	tokenTTL time.Duration
	users    map[string]*user // by email
	byID     map[string]*user
	notes    map[string]*note

	createCalls int
	verifyCalls int

	verifyStarted chan struct{}
	verifyGate    chan struct{}

	overrides map[string]override
}

// NewServer starts the backend. Callers must Close it.
func NewServer() *Server {
	s := &Server{
		secret:    []byte(uuid.NewString()),
		tokenTTL:  time.Hour,
		users:     make(map[string]*user),
		byID:      make(map[string]*user),
		notes:     make(map[string]*note),
		overrides: make(map[string]override),
	}
	s.Server = httptest.NewServer(s.router())
	return s
}

// BaseURL is the API root the client should be pointed at.
func (s *Server) BaseURL() string {
	return s.Server.URL + "/api"
}

func (s *Server) router() http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.Use(s.overrideMiddleware)

	api.HandleFunc("/auth/register", s.handleRegister).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", s.handleLogin).Methods(http.MethodPost)
	api.Handle("/profile/me", s.requireAuth(s.handleProfile)).Methods(http.MethodGet)
	api.Handle("/notes/create", s.requireAuth(s.handleCreateNote)).Methods(http.MethodPost)
	api.HandleFunc("/notes/{id}/verify", s.handleVerify).Methods(http.MethodPost)
	return r
}

// Respond makes every request to path (relative to BaseURL) answer with the
// given status and raw body, regardless of input.
func (s *Server) Respond(path string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides["/api"+path] = override{status: status, body: body}
}

func (s *Server) overrideMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		o, ok := s.overrides[r.URL.Path]
		s.mu.Unlock()
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(o.status)
		_, _ = w.Write([]byte(o.body))
	})
}

// BlockVerify holds every verify request until release is called. started
// receives one value per request that reached the handler.
func (s *Server) BlockVerify() (started <-chan struct{}, release func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.verifyStarted = make(chan struct{}, 16)
	s.verifyGate = make(chan struct{})
	gate := s.verifyGate
	var once sync.Once
	return s.verifyStarted, func() { once.Do(func() { close(gate) }) }
}

func (s *Server) VerifyCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.verifyCalls
}

func (s *Server) CreateCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createCalls
}

// SetTokenTTL changes the lifetime of tokens issued from now on.
func (s *Server) SetTokenTTL(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokenTTL = d
}

// SeedUser registers an account directly and returns its id and a token.
func (s *Server) SeedUser(name, email, password string) (id, token string) {
	u := s.addUser(name, email, password)
	tok, err := s.issueToken(u.id)
	if err != nil {
		panic(err)
	}
	return u.id, tok
}

// SeedNote stores a note owned by nobody and returns its id.
func (s *Server) SeedNote(title, content, password string) string {
	return s.addNote("", title, content, password).id
}

func newID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func hash(password string) []byte {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return h
}

func (s *Server) addUser(name, email, password string) *user {
	u := &user{id: newID(), name: name, email: email, hash: hash(password)}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[email] = u
	s.byID[u.id] = u
	return u
}

func (s *Server) addNote(owner, title, content, password string) *note {
	n := &note{id: newID(), owner: owner, title: title, content: content, hash: hash(password)}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes[n.id] = n
	return n
}

func (s *Server) issueToken(userID string) (string, error) {
	s.mu.Lock()
	ttl := s.tokenTTL
	s.mu.Unlock()

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Server) userFromToken(raw string) (*user, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.byID[claims.Subject]
	if !ok {
		return nil, errors.New("unknown subject")
	}
	return u, nil
}

type userJSON struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u *user) json() userJSON {
	return userJSON{ID: u.id, Name: u.name, Email: u.email}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMsg(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"msg": msg})
}
