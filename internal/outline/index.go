package outline

import (
	"os"
	"path"
	"path/filepath"
)

// DefaultIndexFiles are the candidate index files of a directory, in
// priority order.
var DefaultIndexFiles = []string{"INDEX.md", "README.md", "index.md", "readme.md"}

// ResolveContent picks the body text of directory dir from the first index
// file that exists in it. rel is the directory's slash-separated path
// relative to the tree root. The returned path is rel extended with the
// chosen file name, or rel unchanged when no candidate exists.
//
// An index file that exists but cannot be read gives empty content; it
// still wins over lower priority candidates.
func (b *Builder) ResolveContent(dir, rel string) (content, chosen string) {
	for _, name := range b.opts.IndexFiles {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		return b.readContent(candidate), joinRel(rel, name)
	}
	return "", rel
}

// readContent returns the text of file, or "" if it cannot be read.
func (b *Builder) readContent(file string) string {
	data, err := os.ReadFile(file)
	if err != nil {
		b.log.Debug("unreadable file, using empty content", "path", file, "error", err)
		return ""
	}
	return string(data)
}

func joinRel(rel, name string) string {
	if rel == "" || rel == "." {
		return name
	}
	return path.Join(rel, name)
}
