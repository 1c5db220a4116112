// File: internal/filestorage/service_test.go
package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) *Service {
	svc, err := NewService(t.TempDir(), "/uploads", zap.NewNop())
	require.NoError(t, err)
	return svc
}

func uploadHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

func TestSaveAndDelete(t *testing.T) {
	svc := newTestService(t)

	relPath, err := svc.Save(uploadHeader(t, "proof.jpg", "fake image bytes"), "proofs")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(relPath, "proofs/"))
	assert.True(t, strings.HasSuffix(relPath, ".jpg"))

	fullPath := filepath.Join(svc.StoragePath(), relPath)
	data, err := os.ReadFile(fullPath)
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))

	assert.Equal(t, "/uploads/"+relPath, svc.URL(relPath))

	require.NoError(t, svc.Delete(relPath))
	_, err = os.Stat(fullPath)
	assert.True(t, os.IsNotExist(err))

	// deleting again is a no-op
	assert.NoError(t, svc.Delete(relPath))
}

func TestSave_RejectsUnsupportedExtension(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.Save(uploadHeader(t, "payload.exe", "nope"), "proofs")
	assert.Error(t, err)
}

func TestDelete_RejectsPathTraversal(t *testing.T) {
	svc := newTestService(t)
	err := svc.Delete("../outside.txt")
	assert.Error(t, err)
}
