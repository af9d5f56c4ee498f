package transport

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/KianJanloo/burger-cafe-back/internal/media"
	"github.com/KianJanloo/burger-cafe-back/internal/middleware"
)

// imageUploader stores the multipart "image" field of a request.
type imageUploader struct {
	disk   media.Disk
	logger *zap.Logger
}

// save writes the uploaded image under prefix and returns its URL. On
// failure the response has been written and ok is false.
func (u imageUploader) save(w http.ResponseWriter, r *http.Request, prefix string) (url string, ok bool) {
	r.Body = http.MaxBytesReader(w, r.Body, media.MaxUploadSize)
	if err := r.ParseMultipartForm(media.MaxUploadSize); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "file too large or not a multipart form")
		return "", false
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "image file is required")
		return "", false
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !media.Allowed(contentType) {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid file type, only JPEG, PNG, GIF and WebP are allowed")
		return "", false
	}

	url, err = u.disk.Put(r.Context(), media.ObjectKey(prefix, header.Filename, contentType), file, contentType)
	if err != nil {
		u.logger.Error("Failed to store image", zap.String("prefix", prefix), zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to store image")
		return "", false
	}
	return url, true
}
