package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"velora_back_office/internal/database"
)

// UploadFiles pousse les fichiers vers MinIO et retourne les URLs relatives
// dans l'ordre d'envoi. Le premier échec interrompt la série : le dashboard
// réessaie la soumission entière, pas fichier par fichier.
func UploadFiles(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, 0, len(files))

	for _, header := range files {
		f, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("ouverture fichier %s: %v", header.Filename, err)
		}

		// Nom d'objet unique, l'extension d'origine est conservée
		ext := filepath.Ext(header.Filename)
		objectName := fmt.Sprintf("products/%s%s", uuid.NewString(), ext)

		_, err = database.MinIO.PutObject(
			ctx,
			os.Getenv("MINIO_BUCKET"),
			objectName,
			f,
			header.Size,
			minio.PutObjectOptions{ContentType: header.Header.Get("Content-Type")},
		)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("upload MinIO %s: %v", header.Filename, err)
		}

		urls = append(urls, "/uploads/"+objectName)
	}

	return urls, nil
}

// RemoveFile supprime un objet à partir de son URL relative.
func RemoveFile(ctx context.Context, relativeURL string) error {
	key := strings.TrimPrefix(relativeURL, "/uploads/")
	return database.MinIO.RemoveObject(
		ctx,
		os.Getenv("MINIO_BUCKET"),
		key,
		minio.RemoveObjectOptions{},
	)
}

// GenerateSignedURL génère une URL signée avec expiration pour servir un
// objet du bucket au dashboard.
func GenerateSignedURL(ctx context.Context, relativeURL string, duration time.Duration) (string, error) {
	key := strings.TrimPrefix(relativeURL, "/uploads/")

	presignedURL, err := database.MinIO.PresignedGetObject(
		ctx,
		os.Getenv("MINIO_BUCKET"),
		key,
		duration,
		make(url.Values),
	)
	if err != nil {
		return "", err
	}

	return presignedURL.String(), nil
}
