package schema

import (
	"github.com/coursesqa/courses-api-tests/fakers"
)

// File is the file representation returned by /api/v1/files and embedded in courses.
type File struct {
	ID        string `json:"id" validate:"uuid"`
	URL       string `json:"url" validate:"url"`
	Filename  string `json:"filename" validate:"min=1"`
	Directory string `json:"directory" validate:"min=1"`
}

var fileFields = CamelFields("id", "url", "filename", "directory")

func (File) Fields() Fields { return fileFields }

func (f *File) UnmarshalJSON(data []byte) error {
	type plain File
	return decodeObject(data, fileFields, (*plain)(f))
}

// CreateFileRequest describes a multipart upload to POST /api/v1/files. Filename and
// Directory travel as form fields; UploadFile is the local path of the content and is
// never serialized.
type CreateFileRequest struct {
	Filename   string `json:"filename"`
	Directory  string `json:"directory"`
	UploadFile string `json:"-"`
}

var createFileRequestFields = CamelFields("filename", "directory")

func (CreateFileRequest) Fields() Fields { return createFileRequestFields }

func (r *CreateFileRequest) UnmarshalJSON(data []byte) error {
	type plain CreateFileRequest
	return decodeObject(data, createFileRequestFields, (*plain)(r))
}

// NewCreateFileRequest fills an empty filename with "<uuid>.png" and an empty directory
// with "tests". The upload path has no generated default.
func NewCreateFileRequest(fake *fakers.Fake, overrides CreateFileRequest) (CreateFileRequest, error) {
	r := overrides
	fill(&r.Filename, func() string { return fake.UUID4() + ".png" })
	fill(&r.Directory, func() string { return "tests" })
	if err := Validate(&r); err != nil {
		return r, err
	}
	return r, nil
}

type CreateFileResponse struct {
	File File `json:"file"`
}

var fileEnvelopeFields = CamelFields("file")

func (CreateFileResponse) Fields() Fields { return fileEnvelopeFields }

func (r *CreateFileResponse) UnmarshalJSON(data []byte) error {
	type plain CreateFileResponse
	return decodeObject(data, fileEnvelopeFields, (*plain)(r))
}

type GetFileResponse struct {
	File File `json:"file"`
}

func (GetFileResponse) Fields() Fields { return fileEnvelopeFields }

func (r *GetFileResponse) UnmarshalJSON(data []byte) error {
	type plain GetFileResponse
	return decodeObject(data, fileEnvelopeFields, (*plain)(r))
}
