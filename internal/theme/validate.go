package theme

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/alexisbeaulieu97/thematic/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Validate reports every required token the theme leaves unset. A nil error
// means the theme is complete.
func Validate(t Theme) error {
	missing := MissingKeys(t)
	if len(missing) == 0 {
		return nil
	}
	return apperrors.NewValidationError(missing[0], fmt.Sprintf("missing required tokens: %s", strings.Join(missing, ", ")), nil)
}

// MissingKeys lists the dotted names of unset required tokens, e.g.
// "colors.primary".
func MissingKeys(t Theme) []string {
	err := validatorInstance().Struct(t)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return []string{err.Error()}
	}

	missing := make([]string, 0, len(ves))
	for _, fe := range ves {
		missing = append(missing, tokenPath(fe))
	}
	return missing
}

// tokenPath turns "Theme.Colors.Primary" into "colors.primary".
func tokenPath(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}
	return strings.Join(parts, ".")
}
