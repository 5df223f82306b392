package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/coursesqa/courses-api-tests/schema"
	"github.com/coursesqa/courses-api-tests/servicedef"
)

// UploadFileField is the multipart part that carries the file content.
const UploadFileField = "uploadFile"

type FilesClient struct {
	transport *Transport
}

func NewFilesClient(t *Transport) *FilesClient {
	return &FilesClient{transport: t}
}

// CreateFileAPI uploads request.UploadFile as multipart form data, with the filename and
// directory as form fields.
func (c *FilesClient) CreateFileAPI(ctx context.Context, request schema.CreateFileRequest) (*Response, error) {
	body, contentType, err := encodeMultipart(request)
	if err != nil {
		return nil, err
	}
	return c.transport.PostForm(ctx, "Create file", servicedef.RouteFiles, body, contentType)
}

func (c *FilesClient) CreateFile(ctx context.Context, request schema.CreateFileRequest) (schema.CreateFileResponse, error) {
	return decode[schema.CreateFileResponse](c.CreateFileAPI(ctx, request))
}

func (c *FilesClient) GetFileAPI(ctx context.Context, fileID string) (*Response, error) {
	return c.transport.Get(ctx, "Get file", servicedef.RouteFile, nil, fileID)
}

func (c *FilesClient) GetFile(ctx context.Context, fileID string) (schema.GetFileResponse, error) {
	return decode[schema.GetFileResponse](c.GetFileAPI(ctx, fileID))
}

func (c *FilesClient) DeleteFileAPI(ctx context.Context, fileID string) (*Response, error) {
	return c.transport.Delete(ctx, "Delete file", servicedef.RouteFile, fileID)
}

func encodeMultipart(request schema.CreateFileRequest) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fields := request.Fields()
	for _, f := range []struct{ name, value string }{
		{"filename", request.Filename},
		{"directory", request.Directory},
	} {
		key, _ := fields.Wire(f.name)
		if err := w.WriteField(key, f.value); err != nil {
			return nil, "", err
		}
	}
	if request.UploadFile != "" {
		src, err := os.Open(request.UploadFile)
		if err != nil {
			return nil, "", fmt.Errorf("failed to open upload file: %w", err)
		}
		defer src.Close()
		part, err := w.CreateFormFile(UploadFileField, filepath.Base(request.UploadFile))
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, src); err != nil {
			return nil, "", fmt.Errorf("failed to read upload file: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
