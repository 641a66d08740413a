package apitest

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"
)

type ctxKey struct{}

func (s *Server) requireAuth(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || raw == "" {
			writeMsg(w, http.StatusUnauthorized, MsgInvalidToken)
			return
		}
		u, err := s.userFromToken(raw)
		if err != nil {
			writeMsg(w, http.StatusUnauthorized, MsgInvalidToken)
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, u)))
	})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Name == "" || in.Email == "" || in.Password == "" {
		writeMsg(w, http.StatusBadRequest, MsgRequiredFields)
		return
	}

	s.mu.Lock()
	_, exists := s.users[in.Email]
	s.mu.Unlock()
	if exists {
		writeMsg(w, http.StatusBadRequest, MsgUserExists)
		return
	}

	u := s.addUser(in.Name, in.Email, in.Password)
	s.writeAuth(w, http.StatusCreated, u)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMsg(w, http.StatusBadRequest, MsgRequiredFields)
		return
	}

	s.mu.Lock()
	u, ok := s.users[in.Email]
	s.mu.Unlock()
	if !ok || bcrypt.CompareHashAndPassword(u.hash, []byte(in.Password)) != nil {
		writeMsg(w, http.StatusBadRequest, MsgInvalidCredentials)
		return
	}
	s.writeAuth(w, http.StatusOK, u)
}

func (s *Server) writeAuth(w http.ResponseWriter, status int, u *user) {
	tok, err := s.issueToken(u.id)
	if err != nil {
		writeMsg(w, http.StatusInternalServerError, "Server error")
		return
	}
	writeJSON(w, status, map[string]any{"token": tok, "user": u.json()})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	u := r.Context().Value(ctxKey{}).(*user)
	writeJSON(w, http.StatusOK, u.json())
}

func (s *Server) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.createCalls++
	s.mu.Unlock()

	u := r.Context().Value(ctxKey{}).(*user)
	var in struct {
		Title    string `json:"title"`
		Content  string `json:"content"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Title == "" || in.Content == "" || in.Password == "" {
		writeMsg(w, http.StatusBadRequest, MsgNoteFieldsRequired)
		return
	}

	n := s.addNote(u.id, in.Title, in.Content, in.Password)
	writeJSON(w, http.StatusCreated, map[string]any{
		"_id":     n.id,
		"title":   n.title,
		"content": n.content,
		"owner":   n.owner,
	})
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.verifyCalls++
	started, gate := s.verifyStarted, s.verifyGate
	s.mu.Unlock()

	if gate != nil {
		started <- struct{}{}
		select {
		case <-gate:
		case <-r.Context().Done():
			return
		}
	}

	var in struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeMsg(w, http.StatusBadRequest, MsgRequiredFields)
		return
	}

	s.mu.Lock()
	n, ok := s.notes[mux.Vars(r)["id"]]
	s.mu.Unlock()

	// Unknown ids and wrong passwords must be indistinguishable.
	if !ok || bcrypt.CompareHashAndPassword(n.hash, []byte(in.Password)) != nil {
		writeMsg(w, http.StatusUnauthorized, MsgInvalidPassword)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"title": n.title, "content": n.content})
}
