package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hotel-management/models"

	"github.com/google/uuid"
)

// Bucket is a subdirectory of the upload root with its own static mount.
type Bucket string

const (
	BucketRooms           Bucket = "rooms"
	BucketIDPictures      Bucket = "id_pictures"
	BucketProfilePictures Bucket = "profile_pictures"
	BucketAds             Bucket = "ads"
)

var Buckets = []Bucket{BucketRooms, BucketIDPictures, BucketProfilePictures, BucketAds}

// MountPath is the URL prefix the bucket is served under.
func (b Bucket) MountPath() string {
	switch b {
	case BucketRooms:
		return "/assets"
	case BucketAds:
		return "/ad_images"
	default:
		return "/" + string(b)
	}
}

// FileStore writes uploads to disk under Root/<bucket>.
type FileStore struct {
	Root string
	now  func() time.Time
}

func NewFileStore(root string) *FileStore {
	return &FileStore{Root: root, now: time.Now}
}

func (s *FileStore) Dir(b Bucket) string {
	return filepath.Join(s.Root, string(b))
}

// Save stores the uploaded file as <YYYYMMDD>-<uuid><ext> and returns the stored name.
func (s *FileStore) Save(b Bucket, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	dir := s.Dir(b)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir uploads dir: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	name := fmt.Sprintf("%s-%s%s", s.now().Format("20060102"), uuid.NewString(), ext)
	fullpath := filepath.Join(dir, name)

	dst, err := os.Create(fullpath)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(fullpath)
		return "", fmt.Errorf("write file: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(fullpath)
		return "", fmt.Errorf("close file: %w", err)
	}
	return name, nil
}

// Remove deletes a stored file. Empty names and the shared placeholder are ignored.
func (s *FileStore) Remove(b Bucket, name string) error {
	name = filepath.Base(strings.TrimSpace(name))
	if name == "" || name == "." || name == string(filepath.Separator) || isPlaceholder(name) {
		return nil
	}
	return os.Remove(filepath.Join(s.Dir(b), name))
}

func (s *FileStore) URL(b Bucket, name string) string {
	if name == "" {
		return ""
	}
	return b.MountPath() + "/" + name
}

func isPlaceholder(name string) bool {
	return name == models.DefaultProfilePicture
}
