package assertions

import (
	"github.com/coursesqa/courses-api-tests/schema"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// AssertCreateFileResponse also checks that the file is served from
// "<clientURL>static/<directory>/<filename>".
func AssertCreateFileResponse(t TestingT, request schema.CreateFileRequest, response schema.CreateFileResponse, clientURL string) {
	step(t, "Check create file response", func() {
		expectedURL := clientURL + "static/" + request.Directory + "/" + request.Filename
		AssertEqual(t, response.File.URL, expectedURL, "url")
		AssertEqual(t, response.File.Filename, request.Filename, "filename")
		AssertEqual(t, response.File.Directory, request.Directory, "directory")
	})
}

func AssertFile(t TestingT, actual, expected schema.File) {
	step(t, "Check file", func() {
		AssertEqual(t, actual.ID, expected.ID, "id")
		AssertEqual(t, actual.URL, expected.URL, "url")
		AssertEqual(t, actual.Filename, expected.Filename, "filename")
		AssertEqual(t, actual.Directory, expected.Directory, "directory")
	})
}

func AssertGetFileResponse(t TestingT, getFileResponse schema.GetFileResponse, createFileResponse schema.CreateFileResponse) {
	step(t, "Check get file response", func() {
		AssertFile(t, getFileResponse.File, createFileResponse.File)
	})
}

func emptyStringError(field string) schema.ValidationErrorResponse {
	return schema.ValidationErrorResponse{Details: []schema.ValidationError{{
		Type:     "string_too_short",
		Input:    ldvalue.String(""),
		Context:  map[string]ldvalue.Value{"min_length": ldvalue.Int(1)},
		Message:  "String should have at least 1 character",
		Location: []string{"body", field},
	}}}
}

func AssertCreateFileWithEmptyFilenameResponse(t TestingT, actual schema.ValidationErrorResponse) {
	step(t, "Check create file with empty filename response", func() {
		AssertValidationErrorResponse(t, actual, emptyStringError("filename"))
	})
}

func AssertCreateFileWithEmptyDirectoryResponse(t TestingT, actual schema.ValidationErrorResponse) {
	step(t, "Check create file with empty directory response", func() {
		AssertValidationErrorResponse(t, actual, emptyStringError("directory"))
	})
}

func AssertFileNotFoundResponse(t TestingT, actual schema.InternalErrorResponse) {
	step(t, "Check file not found response", func() {
		AssertInternalErrorResponse(t, actual, schema.InternalErrorResponse{Details: "File not found"})
	})
}

const uuidParsingError = "invalid character: expected an optional prefix of `urn:uuid:` followed by " +
	"[0-9a-fA-F-], found `i` at 1"

func AssertGetFileWithIncorrectFileIDResponse(t TestingT, actual schema.ValidationErrorResponse) {
	step(t, "Check get file with incorrect file id response", func() {
		expected := schema.ValidationErrorResponse{Details: []schema.ValidationError{{
			Type:     "uuid_parsing",
			Input:    ldvalue.String("incorrect-file-id"),
			Context:  map[string]ldvalue.Value{"error": ldvalue.String(uuidParsingError)},
			Message:  "Input should be a valid UUID, " + uuidParsingError,
			Location: []string{"path", "file_id"},
		}}}
		AssertValidationErrorResponse(t, actual, expected)
	})
}
