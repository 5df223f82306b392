package apitests

import (
	"net/http"

	a "github.com/coursesqa/courses-api-tests/assertions"
	"github.com/coursesqa/courses-api-tests/schema"
)

func DoFilesTests(t *T) {
	t.Run("create file", func(t *T) {
		t.Labels(FeatureFiles, StoryCreateEntity)
		request, err := schema.NewCreateFileRequest(t.Fake(), schema.CreateFileRequest{
			UploadFile: t.Env().Config.TestData.ImagePNGFile,
		})
		a.RequireNoError(t, err)

		response, err := t.FilesClient().CreateFileAPI(t.Context(), request)
		a.RequireNoError(t, err)
		a.AssertStatusCode(t, response.StatusCode, http.StatusOK)
		created := a.AssertSchema[schema.CreateFileResponse](t, response.Body)
		a.AssertCreateFileResponse(t, request, created, t.Env().Config.HTTPClient.ClientURL())
		t.Defer(func() { t.cleanup("file", t.FilesClient().DeleteFileAPI, created.File.ID) })
	})

	t.Run("get file", func(t *T) {
		t.Labels(FeatureFiles, StoryGetEntity)
		file := t.FunctionFile()

		response, err := t.FilesClient().GetFileAPI(t.Context(), file.ID())
		a.RequireNoError(t, err)
		a.AssertStatusCode(t, response.StatusCode, http.StatusOK)
		got := a.AssertSchema[schema.GetFileResponse](t, response.Body)
		a.AssertGetFileResponse(t, got, file.Response)
	})

	t.Run("create file with empty filename", func(t *T) {
		t.Labels(FeatureFiles, StoryValidateEntity)
		request, err := schema.NewCreateFileRequest(t.Fake(), schema.CreateFileRequest{
			UploadFile: t.Env().Config.TestData.ImagePNGFile,
		})
		a.RequireNoError(t, err)
		request.Filename = ""

		response, err := t.FilesClient().CreateFileAPI(t.Context(), request)
		a.RequireNoError(t, err)
		a.AssertStatusCode(t, response.StatusCode, http.StatusUnprocessableEntity)
		body := a.AssertSchema[schema.ValidationErrorResponse](t, response.Body)
		a.AssertCreateFileWithEmptyFilenameResponse(t, body)
	})

	t.Run("create file with empty directory", func(t *T) {
		t.Labels(FeatureFiles, StoryValidateEntity)
		request, err := schema.NewCreateFileRequest(t.Fake(), schema.CreateFileRequest{
			UploadFile: t.Env().Config.TestData.ImagePNGFile,
		})
		a.RequireNoError(t, err)
		request.Directory = ""

		response, err := t.FilesClient().CreateFileAPI(t.Context(), request)
		a.RequireNoError(t, err)
		a.AssertStatusCode(t, response.StatusCode, http.StatusUnprocessableEntity)
		body := a.AssertSchema[schema.ValidationErrorResponse](t, response.Body)
		a.AssertCreateFileWithEmptyDirectoryResponse(t, body)
	})

	t.Run("delete file", func(t *T) {
		t.Labels(FeatureFiles, StoryDeleteEntity)
		file := t.FunctionFile()

		response, err := t.FilesClient().DeleteFileAPI(t.Context(), file.ID())
		a.RequireNoError(t, err)
		a.AssertStatusCode(t, response.StatusCode, http.StatusOK)

		get, err := t.FilesClient().GetFileAPI(t.Context(), file.ID())
		a.RequireNoError(t, err)
		a.AssertStatusCode(t, get.StatusCode, http.StatusNotFound)
		body := a.AssertSchema[schema.InternalErrorResponse](t, get.Body)
		a.AssertFileNotFoundResponse(t, body)
	})

	t.Run("get file with incorrect file id", func(t *T) {
		t.Labels(FeatureFiles, StoryValidateEntity)

		response, err := t.FilesClient().GetFileAPI(t.Context(), "incorrect-file-id")
		a.RequireNoError(t, err)
		a.AssertStatusCode(t, response.StatusCode, http.StatusUnprocessableEntity)
		body := a.AssertSchema[schema.ValidationErrorResponse](t, response.Body)
		a.AssertGetFileWithIncorrectFileIDResponse(t, body)
	})
}
