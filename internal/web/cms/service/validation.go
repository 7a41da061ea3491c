package service

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Laisky/errors/v2"

	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/dto"
	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/model"
)

const (
	// maxTextFieldLength caps the length of short bilingual text fields.
	maxTextFieldLength = 500
	// maxContentLength caps the length of blog content per language.
	maxContentLength = 200_000
	// maxSlugLength caps the length of blog slugs.
	maxSlugLength = 200
	// maxSearchLength caps the length of free-text search input.
	maxSearchLength = 200
	// maxEmailLength caps the length of email addresses.
	maxEmailLength = 254
	// minPasswordLength is the minimum plaintext admin password length.
	minPasswordLength = 6
)

var slugRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// validationErrorf wraps model.ErrValidation with a descriptive,
// client-facing message.
func validationErrorf(format string, args ...any) error {
	return errors.Wrapf(model.ErrValidation, format, args...)
}

// sanitizeText trims input and enforces maxLen runes.
func sanitizeText(input string, maxLen int, field string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if strings.ContainsRune(trimmed, '\x00') {
		return "", validationErrorf("%s contains invalid null byte", field)
	}
	if utf8.RuneCountInString(trimmed) > maxLen {
		return "", validationErrorf("%s exceeds max length %d", field, maxLen)
	}

	return trimmed, nil
}

// requireText trims input and rejects empty values.
func requireText(input string, maxLen int, field string) (string, error) {
	trimmed, err := sanitizeText(input, maxLen, field)
	if err != nil {
		return "", err
	}
	if trimmed == "" {
		return "", validationErrorf("%s is required", field)
	}

	return trimmed, nil
}

// requireBilingual validates that both language values are present and
// non-empty, returning the trimmed pair.
func requireBilingual(b *model.Bilingual, maxLen int, field string) (model.Bilingual, error) {
	if b == nil {
		return model.Bilingual{}, validationErrorf("%s is required in both languages", field)
	}

	en, err := requireText(b.En, maxLen, field+".en")
	if err != nil {
		return model.Bilingual{}, err
	}
	pt, err := requireText(b.Pt, maxLen, field+".pt")
	if err != nil {
		return model.Bilingual{}, err
	}

	return model.Bilingual{En: en, Pt: pt}, nil
}

// sanitizeSlug lowercases and validates a URL slug.
func sanitizeSlug(slug string) (string, error) {
	trimmed, err := requireText(slug, maxSlugLength, "slug")
	if err != nil {
		return "", err
	}

	normalized := strings.ToLower(trimmed)
	if !slugRe.MatchString(normalized) {
		return "", validationErrorf("slug %q must contain only lowercase letters, digits and hyphens", slug)
	}

	return normalized, nil
}

// sanitizeEmail validates and normalizes an email address to lowercase.
func sanitizeEmail(email string) (string, error) {
	trimmed, err := requireText(email, maxEmailLength, "email")
	if err != nil {
		return "", err
	}

	parsed, err := mail.ParseAddress(trimmed)
	if err != nil {
		return "", validationErrorf("invalid email %q", email)
	}

	return strings.ToLower(parsed.Address), nil
}

// sanitizeListOpts applies defaults and bounds to list query inputs.
func sanitizeListOpts(opts dto.ListOpts) (dto.ListOpts, error) {
	if opts.Page <= 0 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = dto.DefaultPageSize
	}
	if opts.Limit > dto.MaxPageSize {
		return opts, validationErrorf("limit must be within [1~%d]", dto.MaxPageSize)
	}

	search, err := sanitizeText(opts.Search, maxSearchLength, "search")
	if err != nil {
		return opts, err
	}
	opts.Search = search

	return opts, nil
}
