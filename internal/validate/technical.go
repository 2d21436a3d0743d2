package validate

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/presslens/presslens/internal/model"
)

// TechnicalValidator rejects non-parseable input before any semantic work.
type TechnicalValidator struct {
	cfg model.ParserConfig
}

// NewTechnicalValidator creates a validator with the given thresholds.
func NewTechnicalValidator(cfg model.ParserConfig) *TechnicalValidator {
	return &TechnicalValidator{cfg: cfg}
}

// Check validates a raw input value of unknown type. Each rejection yields
// exactly one error; warnings never block downstream parsing.
func (v *TechnicalValidator) Check(input any) model.TechnicalValidation {
	text, ok := input.(string)
	if !ok {
		return reject(model.ErrNotString,
			fmt.Sprintf("expected text input, got %T", input),
			"pass the release content as a plain UTF-8 string")
	}
	return v.CheckText(text)
}

// CheckText validates a string input.
func (v *TechnicalValidator) CheckText(text string) model.TechnicalValidation {
	if strings.TrimSpace(text) == "" {
		return reject(model.ErrEmptyInput,
			"input is empty or whitespace-only",
			"provide the full text of the press release")
	}

	n := len(text)
	if n < v.cfg.MinInputLength {
		return reject(model.ErrTooShort,
			fmt.Sprintf("input is %d characters; minimum is %d", n, v.cfg.MinInputLength),
			"provide the complete release, not a fragment")
	}
	if n > v.cfg.MaxInputLength {
		return reject(model.ErrTooLong,
			fmt.Sprintf("input is %d characters; maximum is %d", n, v.cfg.MaxInputLength),
			"split the document or trim non-release content")
	}

	if containsBinary(text) {
		return reject(model.ErrBinaryData,
			"input contains null bytes or control characters",
			"check the file encoding; the input looks like binary data")
	}

	letters := 0
	alnum := 0
	for _, r := range text {
		if unicode.IsLetter(r) {
			letters++
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			alnum++
		}
	}
	if letters < v.cfg.MinLetters {
		return reject(model.ErrNoText,
			fmt.Sprintf("input has only %d alphabetic characters; minimum is %d", letters, v.cfg.MinLetters),
			"the input does not contain meaningful text")
	}

	result := model.TechnicalValidation{IsParseable: true}
	result.Warnings = v.collectWarnings(text, alnum)
	return result
}

func (v *TechnicalValidator) collectWarnings(text string, alnum int) []model.InputWarning {
	var warnings []model.InputWarning

	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "<") && strings.Contains(trimmed, ">") {
		warnings = append(warnings, model.InputWarning{
			Type:    model.WarnLooksLikeHTML,
			Message: "input looks like HTML markup instead of plain text",
		})
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		warnings = append(warnings, model.InputWarning{
			Type:    model.WarnLooksLikeJSON,
			Message: "input looks like serialized JSON instead of plain text",
		})
	}

	if !strings.ContainsAny(text, "\n\r") {
		warnings = append(warnings, model.InputWarning{
			Type:    model.WarnNoLineBreaks,
			Message: "document has no line breaks",
		})
	} else {
		for _, line := range strings.Split(text, "\n") {
			if len(line) > v.cfg.MaxLineLength {
				warnings = append(warnings, model.InputWarning{
					Type:    model.WarnLongLine,
					Message: fmt.Sprintf("a line exceeds %d characters", v.cfg.MaxLineLength),
				})
				break
			}
		}
	}

	total := len([]rune(text))
	if total > 0 {
		symbolRatio := 1.0 - float64(alnum)/float64(total)
		if symbolRatio > v.cfg.MaxSymbolRatio {
			warnings = append(warnings, model.InputWarning{
				Type:    model.WarnMostlySymbols,
				Message: fmt.Sprintf("%.0f%% of characters are non-alphanumeric", symbolRatio*100),
			})
		}
	}

	return warnings
}

// containsBinary reports whether text has null bytes or non-printable
// control characters (tab, CR, LF allowed).
func containsBinary(text string) bool {
	for _, r := range text {
		if r == 0 {
			return true
		}
		if r < 0x20 && r != '\t' && r != '\n' && r != '\r' {
			return true
		}
	}
	return false
}

func reject(errType, message, suggestion string) model.TechnicalValidation {
	return model.TechnicalValidation{
		IsParseable: false,
		Errors: []model.InputError{{
			Type:       errType,
			Message:    message,
			Suggestion: suggestion,
		}},
	}
}
