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
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/eslsoft/kelimo/internal/app"
	"github.com/eslsoft/kelimo/internal/entity"
	"github.com/eslsoft/kelimo/internal/usecase"
)

const (
	importInputKey = "import.input"
	importSheetKey = "import.sheet"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import words from a CSV or XLSX file",
	Long:  "Import words from a .csv, .csv.gz or .xlsx file. Columns are text, meaning, example, level unless a header row names them. Existing words are skipped.",
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath := viper.GetString(importInputKey)
		if inputPath == "" {
			return fmt.Errorf("specify a word file with --input, or - for stdin")
		}

		container, cleanup, err := app.Initialize()
		if err != nil {
			return fmt.Errorf("initialize: %w", err)
		}
		defer cleanup()

		words, err := readWordFile(inputPath, viper.GetString(importSheetKey), cmd.InOrStdin())
		if err != nil {
			return err
		}
		summary, err := importWords(cmd, container.Words, words)
		if err != nil {
			return err
		}
		container.Logger.WithField("input", inputPath).
			WithField("created", summary.Created).
			WithField("skipped", summary.Skipped).
			Info("import finished")
		return nil
	},
}

func importWords(cmd *cobra.Command, uc usecase.WordUsecase, words []entity.Word) (entity.ImportSummary, error) {
	summary, err := uc.ImportWords(cmd.Context(), words)
	if err != nil {
		return summary, fmt.Errorf("import words: %w", err)
	}
	cmd.Printf("imported %d words, skipped %d\n", summary.Created, summary.Skipped)
	return summary, nil
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringP("input", "i", "", "word file path, - reads CSV from stdin")
	importCmd.Flags().String("sheet", "", "worksheet to read from an .xlsx file (default: first sheet)")

	bindFlagToViper(importInputKey, importCmd.Flags().Lookup("input"))
	bindFlagToViper(importSheetKey, importCmd.Flags().Lookup("sheet"))
}
