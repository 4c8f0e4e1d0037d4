package store

import "github.com/nnrsauki/SaukiDataPro/internal/models"

// GetTheme returns the saved preference, or the store's default when the
// user never chose one. The browser's own color-scheme preference is a
// presentation concern handled in the templates.
func (s *Store) GetTheme() (models.Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var theme models.Theme
	ok, err := s.read(keyTheme, &theme)
	if err != nil {
		return "", err
	}
	if !ok || (theme != models.ThemeLight && theme != models.ThemeDark) {
		return s.defaultTheme, nil
	}
	return theme, nil
}

func (s *Store) SetTheme(theme models.Theme) error {
	if theme != models.ThemeDark {
		theme = models.ThemeLight
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(keyTheme, theme)
}
