/*
Copyright © 2025 Ambor <saltbo@foxmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/eslsoft/kelimo/internal/app"
	"github.com/eslsoft/kelimo/internal/infrastructure/database"
)

// dbInitCmd creates the schema and optionally seeds the word list.
var dbInitCmd = &cobra.Command{
	Use:   "db-init",
	Short: "Create the database schema and seed words",
	Long:  "Create or update the database schema. With --seed, import a word file (local path or http(s) URL) afterwards. go-sqlite3 needs CGO_ENABLED=1.",
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, _ := cmd.Flags().GetString("seed")
		sheet, _ := cmd.Flags().GetString("sheet")

		container, cleanup, err := app.Initialize()
		if err != nil {
			return fmt.Errorf("initialize: %w", err)
		}
		defer cleanup()

		if err := database.Migrate(cmd.Context(), container.Driver); err != nil {
			return err
		}
		container.Logger.Info("schema ready")
		if seed == "" {
			return nil
		}

		seedPath, err := resolveSeed(cmd.Context(), seed)
		if err != nil {
			return err
		}
		if seedPath != seed {
			defer os.RemoveAll(filepath.Dir(seedPath))
		}
		words, err := readWordFile(seedPath, sheet, cmd.InOrStdin())
		if err != nil {
			return err
		}
		_, err = importWords(cmd, container.Words, words)
		return err
	},
}

func init() {
	rootCmd.AddCommand(dbInitCmd)
	dbInitCmd.Flags().String("seed", "", "word file or URL to import after migrating")
	dbInitCmd.Flags().String("sheet", "", "worksheet to read when the seed is an .xlsx file")
}

// resolveSeed downloads http(s) seeds into a temp dir, keeping the remote file name
// so the extension picks the parser. Local paths are returned unchanged.
func resolveSeed(ctx context.Context, seed string) (string, error) {
	u, err := url.Parse(seed)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return seed, nil
	}
	name := path.Base(u.Path)
	if name == "" || name == "/" || name == "." {
		return "", fmt.Errorf("seed url %q has no file name", seed)
	}
	tmpDir, err := os.MkdirTemp("", "kelimo-seed-*")
	if err != nil {
		return "", err
	}
	dst := filepath.Join(tmpDir, name)
	if err := downloadFile(ctx, seed, dst); err != nil {
		os.RemoveAll(tmpDir)
		return "", err
	}
	return dst, nil
}

func downloadFile(ctx context.Context, rawURL, dst string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download %s: %s", rawURL, resp.Status)
	}
	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := io.Copy(f, resp.Body); err != nil {
		return err
	}
	return nil
}
