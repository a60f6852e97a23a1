package audit

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	twerrors "github.com/alexisbeaulieu97/twmerge/pkg/errors"
)

// Source enumerates files to audit. accept receives slash separated paths
// relative to the source root; fn is only called for accepted files.
type Source interface {
	Name() string
	Files(ctx context.Context, accept func(path string) bool, fn func(path string, content []byte) error) error
}

// DirSource reads files from a directory tree on disk.
type DirSource struct {
	Root string
}

// Name implements Source.
func (d DirSource) Name() string { return "dir" }

// Files implements Source.
func (d DirSource) Files(ctx context.Context, accept func(string) bool, fn func(string, []byte) error) error {
	return filepath.WalkDir(d.Root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return twerrors.NewScanError(d.Name(), path, err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(d.Root, path)
		if err != nil {
			return twerrors.NewScanError(d.Name(), path, err)
		}
		rel = filepath.ToSlash(rel)

		if entry.IsDir() {
			if rel != "." && !accept(rel+"/") {
				return filepath.SkipDir
			}
			return nil
		}
		if !entry.Type().IsRegular() || !accept(rel) {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return twerrors.NewScanError(d.Name(), rel, err)
		}
		return fn(rel, content)
	})
}

// GitSource reads files from a commit of a git repository instead of the
// working tree, so uncommitted edits are ignored.
type GitSource struct {
	Path     string
	Revision string
}

// Name implements Source.
func (g GitSource) Name() string { return "git" }

// Files implements Source.
func (g GitSource) Files(ctx context.Context, accept func(string) bool, fn func(string, []byte) error) error {
	repo, err := git.PlainOpenWithOptions(g.Path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return twerrors.NewScanError(g.Name(), "", err)
	}

	rev := g.Revision
	if rev == "" {
		rev = "HEAD"
	}
	hash, err := repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return twerrors.NewScanError(g.Name(), "", err)
	}

	commit, err := repo.CommitObject(*hash)
	if err != nil {
		return twerrors.NewScanError(g.Name(), "", err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return twerrors.NewScanError(g.Name(), "", err)
	}

	return tree.Files().ForEach(func(f *object.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !f.Mode.IsFile() || !accept(f.Name) {
			return nil
		}
		if binary, err := f.IsBinary(); err != nil || binary {
			return nil
		}

		content, err := f.Contents()
		if err != nil {
			return twerrors.NewScanError(g.Name(), f.Name, err)
		}
		return fn(f.Name, []byte(content))
	})
}
