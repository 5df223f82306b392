// Package servicedef describes the REST surface of the courses service: route templates and
// their path parameters.
package servicedef

import (
	"net/url"
	"strings"
)

const APIPrefix = "/api/v1"

// Route templates. Path parameters are written as {name}; coverage is recorded per template,
// not per concrete path.
const (
	RouteUsers        = APIPrefix + "/users"
	RouteUsersMe      = RouteUsers + "/me"
	RouteUser         = RouteUsers + "/{user_id}"
	RouteFiles        = APIPrefix + "/files"
	RouteFile         = RouteFiles + "/{file_id}"
	RouteCourses      = APIPrefix + "/courses"
	RouteCourse       = RouteCourses + "/{course_id}"
	RouteExercises    = APIPrefix + "/exercises"
	RouteExercise     = RouteExercises + "/{exercise_id}"
	RouteLogin        = APIPrefix + "/authentication/login"
	RouteRefreshToken = APIPrefix + "/authentication/refresh"
)

// Endpoint is one method and route template pair.
type Endpoint struct {
	Method string
	Route  string
}

// Endpoints lists every operation the service exposes, in a stable order.
var Endpoints = []Endpoint{
	{"POST", RouteUsers},
	{"GET", RouteUsersMe},
	{"GET", RouteUser},
	{"PATCH", RouteUser},
	{"DELETE", RouteUser},
	{"POST", RouteFiles},
	{"GET", RouteFile},
	{"DELETE", RouteFile},
	{"GET", RouteCourses},
	{"POST", RouteCourses},
	{"GET", RouteCourse},
	{"PATCH", RouteCourse},
	{"DELETE", RouteCourse},
	{"GET", RouteExercises},
	{"POST", RouteExercises},
	{"GET", RouteExercise},
	{"PATCH", RouteExercise},
	{"DELETE", RouteExercise},
	{"POST", RouteLogin},
	{"POST", RouteRefreshToken},
}

// Expand substitutes path parameters into a route template. Parameters are consumed in
// order of appearance and escaped, so an id cannot change the path or add a query.
func Expand(route string, params ...string) string {
	var b strings.Builder
	rest := route
	for _, p := range params {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			break
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			break
		}
		b.WriteString(rest[:open])
		b.WriteString(url.PathEscape(p))
		rest = rest[open+end+1:]
	}
	b.WriteString(rest)
	return b.String()
}
