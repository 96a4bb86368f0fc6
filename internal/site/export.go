// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/oelhwry/folio/content"
	"github.com/oelhwry/folio/core/model"
	"github.com/oelhwry/folio/internal/logging"
	"golang.org/x/sync/errgroup"
)

// copyWorkers bounds concurrent image copies during Export.
const copyWorkers = 4

// Result summarises an export run.
type Result struct {
	Pages      int
	Lightboxes int
	Files      int
	Bytes      int64
	// Missing lists image references that could not be found next to the
	// content file.
	Missing []string
}

type tally struct {
	mu  sync.Mutex
	res Result
}

func (t *tally) file(n int64) {
	t.mu.Lock()
	t.res.Files++
	t.res.Bytes += n
	t.mu.Unlock()
}

func (t *tally) missing(ref string) {
	t.mu.Lock()
	t.res.Missing = append(t.res.Missing, ref)
	t.mu.Unlock()
}

// Export writes the whole site for p into dir: one index.html per route, the
// static files and every local image src can resolve.
func (r *Renderer) Export(ctx context.Context, p model.Portfolio, src content.Source, dir string) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("failed to create output dir: %w", err)
	}
	t := &tally{}

	for _, route := range Routes(p) {
		if err := ctx.Err(); err != nil {
			return t.res, err
		}
		var buf bytes.Buffer
		if err := r.Render(&buf, p, route); err != nil {
			return t.res, fmt.Errorf("render %s: %w", route.Path, err)
		}
		target := filepath.Join(dir, filepath.FromSlash(strings.Trim(route.Path, "/")), "index.html")
		if err := writeFile(target, buf.Bytes()); err != nil {
			return t.res, err
		}
		t.file(int64(buf.Len()))
		if route.IsLightbox() {
			t.res.Lightboxes++
		} else {
			t.res.Pages++
		}
	}

	err := fs.WalkDir(Static(), ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(Static(), name)
		if err != nil {
			return err
		}
		t.file(int64(len(data)))
		return writeFile(filepath.Join(dir, strings.Trim(StaticPrefix, "/"), filepath.FromSlash(name)), data)
	})
	if err != nil {
		return t.res, fmt.Errorf("failed to write static files: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(copyWorkers)
	for _, ref := range imageRefs(p) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			from := src.ResolveImage(ref)
			if from == "" {
				t.missing(ref)
				return nil
			}
			to := filepath.Join(dir, strings.Trim(AssetPrefix, "/"), filepath.FromSlash(ref))
			n, err := copyFile(from, to)
			if errors.Is(err, fs.ErrNotExist) {
				logging.Warnf("image %s not found at %s", ref, from)
				t.missing(ref)
				return nil
			}
			if err != nil {
				return fmt.Errorf("copy %s: %w", ref, err)
			}
			t.file(n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return t.res, err
	}
	sort.Strings(t.res.Missing)
	return t.res, nil
}

// imageRefs collects the distinct local image references of p. Remote URLs
// and references escaping the content directory are skipped.
func imageRefs(p model.Portfolio) []string {
	seen := make(map[string]bool)
	add := func(ref string) {
		if ref == "" || assetURL(ref) == ref {
			return
		}
		clean := path.Clean(strings.TrimPrefix(ref, "/"))
		if clean == ".." || strings.HasPrefix(clean, "../") {
			return
		}
		seen[clean] = true
	}
	for _, page := range p.Pages {
		for _, sec := range page.Sections {
			for _, shot := range sec.Gallery {
				add(shot.Image)
			}
			for _, pr := range sec.Projects {
				add(pr.Preview.Image)
			}
			for _, c := range sec.Comparisons {
				add(c.Before.Image)
				add(c.After.Image)
			}
		}
	}
	refs := make([]string, 0, len(seen))
	for ref := range seen {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	return refs
}

func writeFile(name string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return err
	}
	return os.WriteFile(name, data, 0o644)
}

func copyFile(from, to string) (int64, error) {
	in, err := os.Open(from)
	if err != nil {
		return 0, err
	}
	defer func() { _ = in.Close() }()

	if err := os.MkdirAll(filepath.Dir(to), 0o755); err != nil {
		return 0, err
	}
	out, err := os.OpenFile(to, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return n, err
}
