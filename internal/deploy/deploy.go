// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package deploy publishes an exported site to a remote host over sftp.
// Files are uploaded into a staging directory next to the target which is
// then renamed into place, so visitors never see a half uploaded site.
package deploy

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/oelhwry/folio/internal/logging"
)

// Remote is the subset of file operations a deploy needs.
type Remote interface {
	MkdirAll(dir string) error
	Create(name string) (io.WriteCloser, error)
	Rename(oldname, newname string) error
	RemoveAll(name string) error
	Exists(name string) (bool, error)
	Close() error
}

// Result summarises an upload.
type Result struct {
	Files int
	Bytes int64
	// Replaced reports whether a previous site was swapped out.
	Replaced bool
}

// Upload copies the tree under localDir to remoteDir on r.
func Upload(ctx context.Context, r Remote, localDir, remoteDir string) (Result, error) {
	var res Result
	stamp := time.Now().UTC().Format("20060102150405")
	remoteDir = path.Clean(remoteDir)
	staging := remoteDir + ".folio-" + stamp
	previous := remoteDir + ".old-" + stamp

	if err := r.MkdirAll(staging); err != nil {
		return res, fmt.Errorf("failed to create staging dir %s: %w", staging, err)
	}

	err := filepath.WalkDir(localDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		rel, err := filepath.Rel(localDir, p)
		if err != nil {
			return err
		}
		target := path.Join(staging, filepath.ToSlash(rel))
		if d.IsDir() {
			return r.MkdirAll(target)
		}
		n, err := uploadFile(r, p, target)
		if err != nil {
			return fmt.Errorf("failed to upload %s: %w", rel, err)
		}
		res.Files++
		res.Bytes += n
		return nil
	})
	if err != nil {
		_ = r.RemoveAll(staging)
		return res, err
	}

	exists, err := r.Exists(remoteDir)
	if err != nil {
		_ = r.RemoveAll(staging)
		return res, fmt.Errorf("failed to stat %s: %w", remoteDir, err)
	}
	if exists {
		if err := r.Rename(remoteDir, previous); err != nil {
			_ = r.RemoveAll(staging)
			return res, fmt.Errorf("failed to move previous site aside: %w", err)
		}
		res.Replaced = true
	}
	if err := r.Rename(staging, remoteDir); err != nil {
		if exists {
			_ = r.Rename(previous, remoteDir)
		}
		_ = r.RemoveAll(staging)
		return res, fmt.Errorf("failed to move site into place: %w", err)
	}
	if exists {
		if err := r.RemoveAll(previous); err != nil {
			logging.Warnf("deploy: could not remove previous site %s: %v", previous, err)
		}
	}
	logging.Debugf("deploy: uploaded %d files to %s", res.Files, remoteDir)
	return res, nil
}

func uploadFile(r Remote, local, remote string) (int64, error) {
	in, err := os.Open(local)
	if err != nil {
		return 0, err
	}
	defer func() { _ = in.Close() }()

	out, err := r.Create(remote)
	if err != nil {
		return 0, err
	}
	n, err := io.Copy(out, in)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return n, err
}
