package fakeservice

import (
	"net/http"

	"github.com/coursesqa/courses-api-tests/schema"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (s *Service) getExercises(w http.ResponseWriter, r *http.Request) {
	courseID, ok := queryID(w, r, "courseId")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	exercises := []schema.Exercise{}
	for _, e := range s.exercises {
		if e.CourseID == courseID {
			exercises = append(exercises, *e)
		}
	}
	writeJSON(w, http.StatusOK, schema.GetExercisesResponse{Exercises: exercises})
}

func (s *Service) getExercise(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, "exercise_id", chi.URLParam(r, "exercise_id"))
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.findExercise(id)
	if e == nil {
		writeNotFound(w, "Exercise")
		return
	}
	writeJSON(w, http.StatusOK, schema.GetExerciseResponse{Exercise: *e})
}

func (s *Service) createExercise(w http.ResponseWriter, r *http.Request) {
	request, ok := decodeBody[schema.CreateExerciseRequest](w, r)
	if !ok {
		return
	}
	if request.Title == "" {
		writeValidationErrors(w, stringTooShort([]string{"body", "title"}, "", 1))
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findCourse(request.CourseID) == nil {
		writeNotFound(w, "Course")
		return
	}
	e := &schema.Exercise{
		ID:            uuid.NewString(),
		Title:         request.Title,
		CourseID:      request.CourseID,
		MaxScore:      request.MaxScore,
		MinScore:      request.MinScore,
		OrderIndex:    request.OrderIndex,
		Description:   request.Description,
		EstimatedTime: request.EstimatedTime,
	}
	s.exercises = append(s.exercises, e)
	writeJSON(w, http.StatusOK, schema.CreateExerciseResponse{Exercise: *e})
}

func (s *Service) updateExercise(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, "exercise_id", chi.URLParam(r, "exercise_id"))
	if !ok {
		return
	}
	request, ok := decodeBody[schema.UpdateExerciseRequest](w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e := s.findExercise(id)
	if e == nil {
		writeNotFound(w, "Exercise")
		return
	}
	setIfDefined(&e.Title, request.Title)
	setIntIfDefined(&e.MaxScore, request.MaxScore)
	setIntIfDefined(&e.MinScore, request.MinScore)
	setIntIfDefined(&e.OrderIndex, request.OrderIndex)
	setIfDefined(&e.Description, request.Description)
	setIfDefined(&e.EstimatedTime, request.EstimatedTime)
	writeJSON(w, http.StatusOK, schema.UpdateExerciseResponse{Exercise: *e})
}

func (s *Service) deleteExercise(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, "exercise_id", chi.URLParam(r, "exercise_id"))
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.exercises {
		if e.ID == id {
			s.exercises = append(s.exercises[:i], s.exercises[i+1:]...)
			w.WriteHeader(http.StatusOK)
			return
		}
	}
	writeNotFound(w, "Exercise")
}
