// Package source resolves the expedition config argument to a local file.
package source

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	get "github.com/hashicorp/go-getter"
)

// FetchedName is the file name used for configs downloaded into the work dir.
const FetchedName = "expeditions.json"

// Fetch returns a local path for src. Existing files are used in place;
// anything else is handed to go-getter (http, git::, s3:: and friends) and
// downloaded into workDir.
func Fetch(ctx context.Context, src, workDir string, log *slog.Logger) (string, error) {
	if info, err := os.Stat(src); err == nil {
		if info.IsDir() {
			return "", fmt.Errorf("config %s is a directory", src)
		}
		return src, nil
	}

	pwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	dst := filepath.Join(workDir, FetchedName)
	log.Info("downloading config", "src", src, "dst", dst)

	client := &get.Client{
		Ctx:  ctx,
		Src:  src,
		Dst:  dst,
		Pwd:  pwd,
		Mode: get.ClientModeFile,
	}
	if err := client.Get(); err != nil {
		return "", fmt.Errorf("fetch config %s: %w", src, err)
	}

	log.Info("downloaded config", "dst", dst)
	return dst, nil
}
