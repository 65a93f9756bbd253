package db

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/khulnasoft-bot/code-translator/core"
	"github.com/khulnasoft-bot/code-translator/models"
)

// Record stores one transformation result in the history table and returns
// the stored row.
func Record(gdb *gorm.DB, result *core.Result, inputPath string) (*models.Translation, error) {
	warnings, err := json.Marshal(result.Warnings)
	if err != nil {
		return nil, fmt.Errorf("failed to encode warnings: %w", err)
	}
	errs, err := json.Marshal(result.Errors)
	if err != nil {
		return nil, fmt.Errorf("failed to encode errors: %w", err)
	}

	row := &models.Translation{
		ID:               newID(),
		SourceLanguage:   result.Source,
		TargetLanguage:   result.Target,
		SourceCode:       originalText(result),
		OutputCode:       result.Code,
		Warnings:         datatypes.JSON(warnings),
		Errors:           datatypes.JSON(errs),
		Functions:        result.Stats.Functions,
		Classes:          result.Stats.Classes,
		Imports:          result.Stats.Imports,
		LinesTransformed: result.Stats.LinesTransformed,
		MixedLanguage:    result.Stats.MixedLanguage,
		Normalized:       result.Stats.Normalized,
		InputPath:        inputPath,
	}
	if err := gdb.Create(row).Error; err != nil {
		return nil, fmt.Errorf("failed to record translation: %w", err)
	}
	return row, nil
}

// Recent returns the newest history rows, most recent first.
func Recent(gdb *gorm.DB, limit int) ([]models.Translation, error) {
	if limit <= 0 {
		limit = 20
	}
	var rows []models.Translation
	err := gdb.Order("created_at DESC").Limit(limit).Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	return rows, nil
}

func originalText(result *core.Result) string {
	var b []byte
	for i, line := range result.Lines {
		if i > 0 {
			b = append(b, '\n')
		}
		b = append(b, line.Original...)
	}
	return string(b)
}

func newID() string {
	var b [10]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "trn-0000000000000000"
	}
	return "trn-" + hex.EncodeToString(b[:])[:16]
}
