// Package fakeservice is an in-memory implementation of the courses service. It exists so
// the client, assertion and suite packages can be exercised end to end without a live
// server; it is not a reference implementation.
package fakeservice

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/coursesqa/courses-api-tests/schema"
	"github.com/coursesqa/courses-api-tests/servicedef"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultTokenLifetime   = 30 * time.Minute
	defaultRefreshLifetime = 24 * time.Hour
)

type Options struct {
	// Secret signs access and refresh tokens. A random secret is used if it is empty.
	Secret string

	TokenLifetime   time.Duration
	RefreshLifetime time.Duration

	Logger *zap.Logger
}

type userRecord struct {
	user     schema.User
	password string
}

type fileRecord struct {
	file    schema.File
	content []byte
}

type courseRecord struct {
	course        schema.Course
	previewFileID string
	createdByID   string
}

// Service holds all state in memory. It is safe for concurrent use.
type Service struct {
	secret          []byte
	tokenLifetime   time.Duration
	refreshLifetime time.Duration
	logger          *zap.Logger
	now             func() time.Time

	mu        sync.Mutex
	users     []*userRecord
	files     []*fileRecord
	courses   []*courseRecord
	exercises []*schema.Exercise
}

func New(opts Options) *Service {
	s := &Service{
		secret:          []byte(opts.Secret),
		tokenLifetime:   opts.TokenLifetime,
		refreshLifetime: opts.RefreshLifetime,
		logger:          opts.Logger,
		now:             time.Now,
	}
	if len(s.secret) == 0 {
		s.secret = []byte(uuid.NewString() + uuid.NewString())
	}
	if s.tokenLifetime == 0 {
		s.tokenLifetime = defaultTokenLifetime
	}
	if s.refreshLifetime == 0 {
		s.refreshLifetime = defaultRefreshLifetime
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

var errEmailTaken = errors.New("user with this email already exists")

// AddUser registers a user directly, bypassing HTTP. It is how a run's login user is
// seeded.
func (s *Service) AddUser(request schema.CreateUserRequest) (schema.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addUserLocked(request)
}

func (s *Service) addUserLocked(request schema.CreateUserRequest) (schema.User, error) {
	if s.findUserByEmail(request.Email) != nil {
		return schema.User{}, errEmailTaken
	}
	u := &userRecord{
		user: schema.User{
			ID:         uuid.NewString(),
			Email:      request.Email,
			LastName:   request.LastName,
			FirstName:  request.FirstName,
			MiddleName: request.MiddleName,
		},
		password: request.Password,
	}
	s.users = append(s.users, u)
	return u.user, nil
}

// Handler returns the service's routes. Everything under /api/v1 except user creation and
// the authentication endpoints requires a bearer access token.
func (s *Service) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/static/*", s.serveStatic)

	r.Post(servicedef.RouteUsers, s.createUser)
	r.Post(servicedef.RouteLogin, s.login)
	r.Post(servicedef.RouteRefreshToken, s.refresh)

	r.Group(func(r chi.Router) {
		r.Use(s.authenticate)

		r.Get(servicedef.RouteUsersMe, s.getUserMe)
		r.Get(servicedef.RouteUser, s.getUser)
		r.Patch(servicedef.RouteUser, s.updateUser)
		r.Delete(servicedef.RouteUser, s.deleteUser)

		r.Post(servicedef.RouteFiles, s.createFile)
		r.Get(servicedef.RouteFile, s.getFile)
		r.Delete(servicedef.RouteFile, s.deleteFile)

		r.Get(servicedef.RouteCourses, s.getCourses)
		r.Post(servicedef.RouteCourses, s.createCourse)
		r.Get(servicedef.RouteCourse, s.getCourse)
		r.Patch(servicedef.RouteCourse, s.updateCourse)
		r.Delete(servicedef.RouteCourse, s.deleteCourse)

		r.Get(servicedef.RouteExercises, s.getExercises)
		r.Post(servicedef.RouteExercises, s.createExercise)
		r.Get(servicedef.RouteExercise, s.getExercise)
		r.Patch(servicedef.RouteExercise, s.updateExercise)
		r.Delete(servicedef.RouteExercise, s.deleteExercise)
	})
	return r
}

func (s *Service) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("handled request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}

func (s *Service) serveStatic(w http.ResponseWriter, r *http.Request) {
	rest := chi.URLParam(r, "*")
	i := strings.LastIndexByte(rest, '/')
	if i < 0 {
		writeDetail(w, http.StatusNotFound, "Not Found")
		return
	}
	directory, filename := rest[:i], rest[i+1:]

	s.mu.Lock()
	var found *fileRecord
	for _, f := range s.files {
		if f.file.Directory == directory && f.file.Filename == filename {
			found = f
		}
	}
	s.mu.Unlock()

	if found == nil {
		writeDetail(w, http.StatusNotFound, "Not Found")
		return
	}
	w.Header().Set("Content-Type", http.DetectContentType(found.content))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(found.content)
}

func (s *Service) findUser(id string) *userRecord {
	for _, u := range s.users {
		if u.user.ID == id {
			return u
		}
	}
	return nil
}

func (s *Service) findUserByEmail(email string) *userRecord {
	for _, u := range s.users {
		if strings.EqualFold(u.user.Email, email) {
			return u
		}
	}
	return nil
}

func (s *Service) findFile(id string) *fileRecord {
	for _, f := range s.files {
		if f.file.ID == id {
			return f
		}
	}
	return nil
}

func (s *Service) findCourse(id string) *courseRecord {
	for _, c := range s.courses {
		if c.course.ID == id {
			return c
		}
	}
	return nil
}

func (s *Service) findExercise(id string) *schema.Exercise {
	for _, e := range s.exercises {
		if e.ID == id {
			return e
		}
	}
	return nil
}
