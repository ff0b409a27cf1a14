package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/evaszabo/folio/internal/content"
)

// detectContentSource guesses a content source from the working directory.
func detectContentSource() (content.Source, string) {
	if info, err := os.Stat("content/projects"); err == nil && info.IsDir() {
		return content.SourceMarkdown, "content"
	}
	if _, err := os.Stat("catalog.db"); err == nil {
		return content.SourceSQLite, "catalog.db"
	}
	return content.SourceBuiltin, ""
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to folio! Let's configure your portfolio.")
	fmt.Println()

	cfg := DefaultConfig()

	source, sourcePath := detectContentSource()
	if source != content.SourceBuiltin {
		fmt.Printf("Detected %s content at %s\n\n", source, sourcePath)
	}

	// 1. Site name.
	namePrompt := promptui.Prompt{
		Label:   "Photographer name (blank keeps the built-in brand)",
		Default: "",
	}
	name, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site name: %w", err)
	}
	cfg.Site.Name = strings.TrimSpace(name)

	// 2. Content source.
	sources := []content.Source{content.SourceBuiltin, content.SourceMarkdown, content.SourceSQLite}
	items := make([]string, len(sources))
	cursor := 0
	for i, s := range sources {
		items[i] = string(s)
		if s == source {
			cursor = i
		}
	}
	sourcePrompt := promptui.Select{
		Label:     "Where are your projects stored?",
		Items:     items,
		CursorPos: cursor,
	}
	idx, _, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content source: %w", err)
	}
	cfg.Content.Source = sources[idx]

	// 3. Content path.
	if cfg.Content.Source != content.SourceBuiltin {
		def := sourcePath
		if cfg.Content.Source != source {
			def = map[content.Source]string{
				content.SourceMarkdown: "content",
				content.SourceSQLite:   "catalog.db",
			}[cfg.Content.Source]
		}
		pathPrompt := promptui.Prompt{
			Label:   "Content path",
			Default: def,
			Validate: func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("path is required")
				}
				return nil
			},
		}
		p, err := pathPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("content path: %w", err)
		}
		cfg.Content.Path = strings.TrimSpace(p)
	}

	// 4. Port.
	portPrompt := promptui.Prompt{
		Label:   "Server port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("server port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 5. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the static site",
		Default: cfg.Build.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.Build.OutputDir = outputDir

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
