package template

import (
	"crypto/sha256"
	"encoding/hex"
	"io/fs"
	"path"
	"strings"
	"sync"
)

// AssetURI encloses the filesystem static assets are served from and the URL prefix they are served under.
// It returns "asset" as the name of the function for convenient passing to a template.FuncMap.
//
// The function it returns emits a URI for the asset carrying a content hash,
// so browsers refetch an asset only once it changes.
// Assets missing from filesys get a URI without a hash.
func AssetURI(prefix string, filesys fs.FS) (string, func(string) string) {
	prefix = "/" + strings.Trim(prefix, "/")

	var (
		mu     sync.Mutex
		hashes = make(map[string]string)
	)

	return "asset", func(assetPath string) string {
		assetPath = strings.TrimPrefix(assetPath, "/")
		uri := path.Join(prefix, assetPath)
		if filesys == nil || assetPath == "" {
			return uri
		}

		mu.Lock()
		defer mu.Unlock()

		sum, ok := hashes[assetPath]
		if !ok {
			b, err := fs.ReadFile(filesys, assetPath)
			if err != nil {
				return uri
			}

			h := sha256.Sum256(b)
			sum = hex.EncodeToString(h[:])[:12]
			hashes[assetPath] = sum
		}

		return uri + "?v=" + sum
	}
}
