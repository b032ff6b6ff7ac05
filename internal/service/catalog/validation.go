package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/m04kA/DMR-ReservationService/internal/domain"
)

// dangerousNamePatterns запрещенные конструкции в названии меню.
// SQL-ключевые слова считаются только как отдельные слова: "Dropped beef
// stew" проходит, "DROP TABLE x" — нет.
var dangerousNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\s|^)(SELECT|INSERT|UPDATE|DELETE|DROP|ALTER|CREATE|TRUNCATE)(\s|$)`),
	regexp.MustCompile(`(?i)(\s|^)(UNION|JOIN|FROM|WHERE)(\s|$)`),
	regexp.MustCompile(`'.*'`),
	regexp.MustCompile(`".*"`),
	regexp.MustCompile(`;`),
	regexp.MustCompile(`--`),
	regexp.MustCompile(`/\*`),
	regexp.MustCompile(`\*/`),
}

// htmlEscaper экранирование HTML-сущностей перед сохранением названия
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// validateMenuName проверяет название меню: непустое после обрезки
// пробелов, не длиннее MaxMenuNameLength символов, без опасных конструкций
func validateMenuName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidMenuName)
	}

	// Длина считается в рунах: названия могут быть на японском
	if len([]rune(name)) > domain.MaxMenuNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidMenuName, domain.MaxMenuNameLength)
	}

	for _, pattern := range dangerousNamePatterns {
		if pattern.MatchString(name) {
			return fmt.Errorf("%w: name contains a forbidden pattern", ErrInvalidMenuName)
		}
	}

	return nil
}

// sanitizeMenuName обрезает пробелы и экранирует HTML-сущности
func sanitizeMenuName(name string) string {
	return htmlEscaper.Replace(strings.TrimSpace(name))
}
