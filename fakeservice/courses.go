package fakeservice

import (
	"net/http"

	"github.com/coursesqa/courses-api-tests/schema"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func setIfDefined(target *string, value ldvalue.OptionalString) {
	if v, ok := value.Get(); ok {
		*target = v
	}
}

func setIntIfDefined(target *int, value ldvalue.OptionalInt) {
	if v, ok := value.Get(); ok {
		*target = v
	}
}

// queryID reads a required UUID query parameter. On failure it writes a 422 response and
// returns false.
func queryID(w http.ResponseWriter, r *http.Request, key string) (string, bool) {
	values, present := r.URL.Query()[key]
	if !present || len(values) == 0 {
		writeValidationErrors(w, schema.ValidationError{
			Type: "missing", Input: ldvalue.Null(), Message: "Field required", Location: []string{"query", key},
		})
		return "", false
	}
	id, err := uuid.Parse(values[0])
	if err != nil {
		reason := uuidParsingReason(values[0])
		writeValidationErrors(w, schema.ValidationError{
			Type:     "uuid_parsing",
			Input:    ldvalue.String(values[0]),
			Context:  map[string]ldvalue.Value{"error": ldvalue.String(reason)},
			Message:  "Input should be a valid UUID, " + reason,
			Location: []string{"query", key},
		})
		return "", false
	}
	return id.String(), true
}

// courseView refreshes the embedded file and author from the current records. A deleted
// file or author keeps the snapshot taken at creation.
func (s *Service) courseView(c *courseRecord) schema.Course {
	course := c.course
	if f := s.findFile(c.previewFileID); f != nil {
		course.PreviewFile = f.file
	}
	if u := s.findUser(c.createdByID); u != nil {
		course.CreatedByUser = u.user
	}
	return course
}

func (s *Service) getCourses(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryID(w, r, "userId")
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	courses := []schema.Course{}
	for _, c := range s.courses {
		if c.createdByID == userID {
			courses = append(courses, s.courseView(c))
		}
	}
	writeJSON(w, http.StatusOK, schema.GetCoursesResponse{Courses: courses})
}

func (s *Service) getCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, "course_id", chi.URLParam(r, "course_id"))
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.findCourse(id)
	if c == nil {
		writeNotFound(w, "Course")
		return
	}
	writeJSON(w, http.StatusOK, schema.GetCourseResponse{Course: s.courseView(c)})
}

func (s *Service) createCourse(w http.ResponseWriter, r *http.Request) {
	request, ok := decodeBody[schema.CreateCourseRequest](w, r)
	if !ok {
		return
	}
	if request.Title == "" {
		writeValidationErrors(w, stringTooShort([]string{"body", "title"}, "", 1))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.findFile(request.PreviewFileID)
	if f == nil {
		writeNotFound(w, "File")
		return
	}
	u := s.findUser(request.CreatedByUserID)
	if u == nil {
		writeNotFound(w, "User")
		return
	}
	c := &courseRecord{
		course: schema.Course{
			ID:            uuid.NewString(),
			Title:         request.Title,
			MaxScore:      request.MaxScore,
			MinScore:      request.MinScore,
			Description:   request.Description,
			PreviewFile:   f.file,
			EstimatedTime: request.EstimatedTime,
			CreatedByUser: u.user,
		},
		previewFileID: f.file.ID,
		createdByID:   u.user.ID,
	}
	s.courses = append(s.courses, c)
	writeJSON(w, http.StatusOK, schema.CreateCourseResponse{Course: s.courseView(c)})
}

func (s *Service) updateCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, "course_id", chi.URLParam(r, "course_id"))
	if !ok {
		return
	}
	request, ok := decodeBody[schema.UpdateCourseRequest](w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.findCourse(id)
	if c == nil {
		writeNotFound(w, "Course")
		return
	}
	setIfDefined(&c.course.Title, request.Title)
	setIntIfDefined(&c.course.MaxScore, request.MaxScore)
	setIntIfDefined(&c.course.MinScore, request.MinScore)
	setIfDefined(&c.course.Description, request.Description)
	setIfDefined(&c.course.EstimatedTime, request.EstimatedTime)
	writeJSON(w, http.StatusOK, schema.UpdateCourseResponse{Course: s.courseView(c)})
}

// deleteCourse also removes the course's exercises.
func (s *Service) deleteCourse(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, "course_id", chi.URLParam(r, "course_id"))
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.courses {
		if c.course.ID == id {
			s.courses = append(s.courses[:i], s.courses[i+1:]...)
			kept := s.exercises[:0]
			for _, e := range s.exercises {
				if e.CourseID != id {
					kept = append(kept, e)
				}
			}
			s.exercises = kept
			w.WriteHeader(http.StatusOK)
			return
		}
	}
	writeNotFound(w, "Course")
}
