// Package wordlist loads the starter word content shipped with the
// service: tiered word lists and the word-match source bank, one YAML file
// per language.
package wordlist

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/wortwerk/wortspiel/internal/models"
)

// File is the on-disk shape of one language's starter content
type File struct {
	Language string `yaml:"language"`
	Words    struct {
		Easy   []entry `yaml:"easy"`
		Medium []entry `yaml:"medium"`
		Hard   []entry `yaml:"hard"`
	} `yaml:"words"`
	Bank []bankEntry `yaml:"bank"`
}

type entry struct {
	Word string `yaml:"word"`
	Hint string `yaml:"hint"`
}

type bankEntry struct {
	Word        string `yaml:"word"`
	Translation string `yaml:"translation"`
}

// Loader caches starter content loaded from a directory
type Loader struct {
	mu    sync.RWMutex
	words map[string]map[models.DifficultyTier][]models.WordEntry // lang -> tier -> entries
	banks map[string][]models.BankItem                            // lang -> bank
}

// NewLoader creates an empty loader
func NewLoader() *Loader {
	return &Loader{
		words: make(map[string]map[models.DifficultyTier][]models.WordEntry),
		banks: make(map[string][]models.BankItem),
	}
}

// LoadFromDir loads every *.yaml / *.yml file in the directory. Files that
// fail to parse are logged and skipped.
func (l *Loader) LoadFromDir(dir string) error {
	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			continue
		}
		files = append(files, matches...)
	}

	if len(files) == 0 {
		return fmt.Errorf("no wordlist files in %s", dir)
	}

	loaded := 0
	for _, file := range files {
		if err := l.LoadFromFile(file); err != nil {
			slog.Warn("failed to load wordlist", "file", file, "error", err)
			continue
		}
		loaded++
	}

	slog.Info("wordlists loaded", "dir", dir, "files", loaded)
	if loaded == 0 {
		return fmt.Errorf("no loadable wordlist files in %s", dir)
	}
	return nil
}

// LoadFromFile loads a single YAML wordlist file
func (l *Loader) LoadFromFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if f.Language == "" {
		return fmt.Errorf("%s: missing language", path)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	tiers := map[models.DifficultyTier][]entry{
		models.TierEasy:   f.Words.Easy,
		models.TierMedium: f.Words.Medium,
		models.TierHard:   f.Words.Hard,
	}
	byTier := make(map[models.DifficultyTier][]models.WordEntry)
	for tier, entries := range tiers {
		for _, e := range entries {
			if e.Word == "" {
				continue
			}
			byTier[tier] = append(byTier[tier], models.WordEntry{
				Word: models.NormalizeWord(e.Word),
				Hint: e.Hint,
			})
		}
	}
	l.words[f.Language] = byTier

	bank := make([]models.BankItem, 0, len(f.Bank))
	for _, b := range f.Bank {
		if b.Word == "" || b.Translation == "" {
			continue
		}
		bank = append(bank, models.BankItem{Word: b.Word, Translation: b.Translation})
	}
	l.banks[f.Language] = bank

	return nil
}

// Words returns the starter entries of a tier for a language
func (l *Loader) Words(lang string, tier models.DifficultyTier) []models.WordEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.words[lang][tier]
}

// Bank returns the starter word-match bank for a language
func (l *Loader) Bank(lang string) []models.BankItem {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.banks[lang]
}

// Languages lists the loaded languages
func (l *Loader) Languages() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	langs := make([]string, 0, len(l.words))
	for lang := range l.words {
		langs = append(langs, lang)
	}
	return langs
}
