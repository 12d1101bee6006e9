package storage

import (
	"context"
	"fmt"
	"path"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultAvatarPrefix is the key prefix avatars are stored under.
const DefaultAvatarPrefix = "avatars"

// AvatarStore saves user avatar images into a FileStorage and hands back
// the URL they can be fetched from.
type AvatarStore struct {
	files  FileStorage
	prefix string
}

// NewAvatarStore creates an AvatarStore writing under prefix.
func NewAvatarStore(files FileStorage, prefix string) *AvatarStore {
	if prefix == "" {
		prefix = DefaultAvatarPrefix
	}
	return &AvatarStore{files: files, prefix: prefix}
}

// Save stores image as the avatar of userID and returns its URL.
// Every call writes a fresh key so cached copies of an older avatar are never served.
func (a *AvatarStore) Save(ctx context.Context, userID primitive.ObjectID, image []byte) (string, error) {
	if len(image) == 0 {
		return "", ErrEmptyObject
	}

	mtype := mimetype.Detect(image)
	key := path.Join(a.prefix, userID.Hex(), uuid.NewString()+mtype.Extension())

	if err := a.files.PutObject(ctx, key, mtype.String(), image); err != nil {
		return "", fmt.Errorf("store avatar for user %s: %w", userID.Hex(), err)
	}
	return a.files.ObjectURL(key), nil
}
