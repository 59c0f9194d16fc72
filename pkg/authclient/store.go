package authclient

import (
	"context"
	"encoding/json"
	"sync"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"

	"erpauth/internal/errors"
)

// DefaultSessionKey is the blob key a BlobTokenStore writes to.
const DefaultSessionKey = "erpauth_session.json"

// TokenStore persists the session between calls. Load returns (nil, nil) when empty.
type TokenStore interface {
	Load(ctx context.Context) (*Session, error)
	Save(ctx context.Context, session *Session) error
	Clear(ctx context.Context) error
}

// MemoryTokenStore keeps the session in process memory.
type MemoryTokenStore struct {
	mu      sync.RWMutex
	session *Session
}

// NewMemoryTokenStore creates an empty in-memory store.
func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{}
}

func (s *MemoryTokenStore) Load(context.Context) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return nil, nil
	}
	session := *s.session

	return &session, nil
}

func (s *MemoryTokenStore) Save(_ context.Context, session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *session
	s.session = &stored

	return nil
}

func (s *MemoryTokenStore) Clear(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = nil

	return nil
}

// BlobTokenStore keeps the session as a JSON object in a gocloud bucket.
type BlobTokenStore struct {
	bucket *blob.Bucket
	key    string
}

// NewBlobTokenStore stores the session under key in bucket. The caller owns the bucket.
func NewBlobTokenStore(bucket *blob.Bucket, key string) *BlobTokenStore {
	if key == "" {
		key = DefaultSessionKey
	}

	return &BlobTokenStore{bucket: bucket, key: key}
}

// FileTokenStore is a BlobTokenStore backed by a local directory.
type FileTokenStore struct {
	*BlobTokenStore
}

// NewFileTokenStore opens (creating if needed) dir and stores the session in a file inside it.
func NewFileTokenStore(dir string) (*FileTokenStore, error) {
	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{CreateDir: true})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open token directory %s", dir)
	}

	return &FileTokenStore{BlobTokenStore: NewBlobTokenStore(bucket, DefaultSessionKey)}, nil
}

// Close releases the underlying bucket.
func (s *FileTokenStore) Close() error {
	return s.bucket.Close()
}

func (s *BlobTokenStore) Load(ctx context.Context) (*Session, error) {
	raw, err := s.bucket.ReadAll(ctx, s.key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to read session")
	}

	var session Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return nil, errors.Wrap(err, "failed to decode session")
	}

	return &session, nil
}

func (s *BlobTokenStore) Save(ctx context.Context, session *Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return errors.Wrap(err, "failed to encode session")
	}

	opts := &blob.WriterOptions{ContentType: "application/json"}
	if err := s.bucket.WriteAll(ctx, s.key, raw, opts); err != nil {
		return errors.Wrap(err, "failed to write session")
	}

	return nil
}

func (s *BlobTokenStore) Clear(ctx context.Context) error {
	if err := s.bucket.Delete(ctx, s.key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}
