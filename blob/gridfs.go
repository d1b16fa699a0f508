package blob

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrBlobNotFound is returned when no stored file matches the requested key.
var ErrBlobNotFound = errors.New("blob not found")

const transferDeadline = 30 * time.Second

// GridFSStore keeps uploaded media in MongoDB GridFS, one GridFS bucket per
// logical bucket name so image and video retention policies can differ.
// Public URLs point back at this service's /media route.
type GridFSStore struct {
	db      *mongo.Database
	baseURL string
}

// NewGridFSStore returns a blob store rooted at baseURL (no trailing slash).
func NewGridFSStore(db *mongo.Database, baseURL string) *GridFSStore {
	return &GridFSStore{db: db, baseURL: baseURL}
}

func (s *GridFSStore) bucket(name string) (*gridfs.Bucket, error) {
	return gridfs.NewBucket(s.db, options.GridFSBucket().SetName(name))
}

// Put stores the bytes under key in the named bucket and returns the public
// URL the file will be served from.
func (s *GridFSStore) Put(data []byte, mimeType, bucketName, key string) (string, error) {
	bucket, err := s.bucket(bucketName)
	if err != nil {
		return "", err
	}
	if err := bucket.SetWriteDeadline(time.Now().Add(transferDeadline)); err != nil {
		return "", err
	}

	uploadOpts := options.GridFSUpload().SetMetadata(bson.M{"contentType": mimeType})
	if _, err := bucket.UploadFromStream(key, bytes.NewReader(data), uploadOpts); err != nil {
		return "", fmt.Errorf("gridfs upload failed: %w", err)
	}

	return fmt.Sprintf("%s/media/%s/%s", s.baseURL, bucketName, key), nil
}

// Open streams a stored file by key, returning the reader, the content
// type recorded at upload time and the byte length.
func (s *GridFSStore) Open(bucketName, key string) (io.ReadCloser, string, int64, error) {
	bucket, err := s.bucket(bucketName)
	if err != nil {
		return nil, "", 0, err
	}
	if err := bucket.SetReadDeadline(time.Now().Add(transferDeadline)); err != nil {
		return nil, "", 0, err
	}

	stream, err := bucket.OpenDownloadStreamByName(key)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, "", 0, ErrBlobNotFound
		}
		return nil, "", 0, err
	}

	contentType := "application/octet-stream"
	var meta struct {
		ContentType string `bson:"contentType"`
	}
	if raw := stream.GetFile().Metadata; raw != nil {
		if err := bson.Unmarshal(raw, &meta); err == nil && meta.ContentType != "" {
			contentType = meta.ContentType
		}
	}

	return stream, contentType, stream.GetFile().Length, nil
}
