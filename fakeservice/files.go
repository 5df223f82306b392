package fakeservice

import (
	"errors"
	"io"
	"net/http"

	"github.com/coursesqa/courses-api-tests/client"
	"github.com/coursesqa/courses-api-tests/schema"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const maxUploadSize = 32 << 20

func (s *Service) createFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeDetail(w, http.StatusBadRequest, "There was an error parsing the body")
		return
	}

	var problems []schema.ValidationError
	form := r.MultipartForm.Value
	filename, hasFilename := formValue(form, "filename")
	directory, hasDirectory := formValue(form, "directory")
	for _, field := range []struct {
		name    string
		value   string
		present bool
	}{
		{"filename", filename, hasFilename},
		{"directory", directory, hasDirectory},
	} {
		switch {
		case !field.present:
			problems = append(problems, missingFormField(field.name))
		case field.value == "":
			problems = append(problems, stringTooShort([]string{"body", field.name}, "", 1))
		}
	}

	upload, _, err := r.FormFile(client.UploadFileField)
	var content []byte
	switch {
	case errors.Is(err, http.ErrMissingFile):
		problems = append(problems, missingFormField(client.UploadFileField))
	case err != nil:
		writeDetail(w, http.StatusBadRequest, "There was an error parsing the body")
		return
	default:
		content, err = io.ReadAll(upload)
		upload.Close()
		if err != nil {
			writeDetail(w, http.StatusBadRequest, "There was an error parsing the body")
			return
		}
	}
	if len(problems) > 0 {
		writeValidationErrors(w, problems...)
		return
	}

	f := &fileRecord{
		file: schema.File{
			ID:        uuid.NewString(),
			URL:       staticURL(r, directory, filename),
			Filename:  filename,
			Directory: directory,
		},
		content: content,
	}
	s.mu.Lock()
	s.files = append(s.files, f)
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, schema.CreateFileResponse{File: f.file})
}

func formValue(form map[string][]string, key string) (string, bool) {
	values, ok := form[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

func missingFormField(name string) schema.ValidationError {
	return schema.ValidationError{
		Type: "missing", Input: ldvalue.Null(), Message: "Field required", Location: []string{"body", name},
	}
}

func staticURL(r *http.Request, directory, filename string) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + "/static/" + directory + "/" + filename
}

func (s *Service) getFile(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, "file_id", chi.URLParam(r, "file_id"))
	if !ok {
		return
	}
	s.mu.Lock()
	f := s.findFile(id)
	s.mu.Unlock()
	if f == nil {
		writeNotFound(w, "File")
		return
	}
	writeJSON(w, http.StatusOK, schema.GetFileResponse{File: f.file})
}

func (s *Service) deleteFile(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, "file_id", chi.URLParam(r, "file_id"))
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, f := range s.files {
		if f.file.ID == id {
			s.files = append(s.files[:i], s.files[i+1:]...)
			w.WriteHeader(http.StatusOK)
			return
		}
	}
	writeNotFound(w, "File")
}
