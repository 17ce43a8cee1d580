package json

import (
	"path/filepath"

	"github.com/drakos74/classifier/internal/storage"
	"github.com/rs/zerolog/log"
)

// BlobStorage stores every key as a json file under <root>/<table>/<shard>.
type BlobStorage struct {
	path  string
	table string
	shard string
}

// BlobShard creates json blob storages for the shards of the given table under the root directory.
func BlobShard(root, table string) storage.Shard {
	return func(shard string) (storage.Persistence, error) {
		return NewJsonBlob(root, table, shard), nil
	}
}

// NewJsonBlob creates a new json blob storage.
// table has the same schema
// shard is a logical split
func NewJsonBlob(root, table, shard string) *BlobStorage {
	if root == "" {
		root = storage.DefaultDir
	}
	return &BlobStorage{
		table: table,
		shard: shard,
		path:  root,
	}
}

func (s BlobStorage) dir() string {
	return filepath.Join(s.path, s.table, s.shard)
}

func (s BlobStorage) Store(k storage.Key, value interface{}) error {
	err := Save(s.dir(), k.Path(), value)
	if err != nil {
		return err
	}
	log.Debug().Str("path", s.dir()).Str("file", k.Path()).Msg("stored json file")
	return nil
}

func (s BlobStorage) Load(k storage.Key, value interface{}) error {
	return Load(s.dir(), k.Path(), value)
}
