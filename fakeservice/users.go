package fakeservice

import (
	"net/http"

	"github.com/coursesqa/courses-api-tests/schema"

	"github.com/go-chi/chi/v5"
)

func (s *Service) createUser(w http.ResponseWriter, r *http.Request) {
	request, ok := decodeBody[schema.CreateUserRequest](w, r)
	if !ok {
		return
	}
	if !checkEmail(request.Email) {
		writeValidationErrors(w, invalidEmail(request.Email))
		return
	}
	if request.Password == "" {
		writeValidationErrors(w, stringTooShort([]string{"body", "password"}, "", 1))
		return
	}
	user, err := s.AddUser(request)
	if err != nil {
		writeDetail(w, http.StatusConflict, "User already exists")
		return
	}
	writeJSON(w, http.StatusOK, schema.CreateUserResponse{User: user})
}

func (s *Service) getUserMe(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	u := s.findUser(userIDFrom(r.Context()))
	s.mu.Unlock()
	if u == nil {
		writeNotFound(w, "User")
		return
	}
	writeJSON(w, http.StatusOK, schema.GetUserResponse{User: u.user})
}

func (s *Service) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, "user_id", chi.URLParam(r, "user_id"))
	if !ok {
		return
	}
	s.mu.Lock()
	u := s.findUser(id)
	s.mu.Unlock()
	if u == nil {
		writeNotFound(w, "User")
		return
	}
	writeJSON(w, http.StatusOK, schema.GetUserResponse{User: u.user})
}

func (s *Service) updateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, "user_id", chi.URLParam(r, "user_id"))
	if !ok {
		return
	}
	request, ok := decodeBody[schema.UpdateUserRequest](w, r)
	if !ok {
		return
	}
	if email, defined := request.Email.Get(); defined && !checkEmail(email) {
		writeValidationErrors(w, invalidEmail(email))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	u := s.findUser(id)
	if u == nil {
		writeNotFound(w, "User")
		return
	}
	if email, defined := request.Email.Get(); defined {
		if other := s.findUserByEmail(email); other != nil && other != u {
			writeDetail(w, http.StatusConflict, "User already exists")
			return
		}
		u.user.Email = email
	}
	setIfDefined(&u.user.LastName, request.LastName)
	setIfDefined(&u.user.FirstName, request.FirstName)
	setIfDefined(&u.user.MiddleName, request.MiddleName)
	writeJSON(w, http.StatusOK, schema.UpdateUserResponse{User: u.user})
}

func (s *Service) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, "user_id", chi.URLParam(r, "user_id"))
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.user.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			w.WriteHeader(http.StatusOK)
			return
		}
	}
	writeNotFound(w, "User")
}
