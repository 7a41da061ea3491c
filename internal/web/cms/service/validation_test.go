package service

import (
	"strings"
	"testing"

	"github.com/Laisky/errors/v2"
	"github.com/stretchr/testify/require"

	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/dto"
	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/model"
)

func TestRequireBilingual(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input *model.Bilingual
		want  model.Bilingual
		ok    bool
	}{
		{"both languages", &model.Bilingual{En: " Hello ", Pt: "Olá"}, model.Bilingual{En: "Hello", Pt: "Olá"}, true},
		{"missing struct", nil, model.Bilingual{}, false},
		{"missing pt", &model.Bilingual{En: "Hello"}, model.Bilingual{}, false},
		{"missing en", &model.Bilingual{Pt: "Olá"}, model.Bilingual{}, false},
		{"whitespace only", &model.Bilingual{En: "  ", Pt: "Olá"}, model.Bilingual{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := requireBilingual(tc.input, maxTextFieldLength, "title")
			if !tc.ok {
				require.Error(t, err)
				require.True(t, errors.Is(err, model.ErrValidation))
				return
			}

			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestSanitizeSlug(t *testing.T) {
	t.Parallel()

	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"hello-world", "hello-world", true},
		{"Hello-World", "hello-world", true},
		{"  post-1  ", "post-1", true},
		{"", "", false},
		{"-leading", "", false},
		{"trailing-", "", false},
		{"no spaces", "", false},
		{"unicode-ç", "", false},
	}

	for _, tc := range cases {
		got, err := sanitizeSlug(tc.input)
		if !tc.ok {
			require.Errorf(t, err, "slug %q", tc.input)
			continue
		}

		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}
}

func TestSanitizeEmail_Normalizes(t *testing.T) {
	t.Parallel()

	email, err := sanitizeEmail("Example <User@Example.COM>")
	require.NoError(t, err)
	require.Equal(t, "user@example.com", email)

	_, err = sanitizeEmail("not-an-email")
	require.Error(t, err)
	require.True(t, errors.Is(err, model.ErrValidation))
}

func TestSanitizeText_RejectsOversizedAndNullBytes(t *testing.T) {
	t.Parallel()

	_, err := sanitizeText(strings.Repeat("a", maxTextFieldLength+1), maxTextFieldLength, "name")
	require.Error(t, err)

	_, err = sanitizeText("bad\x00input", maxTextFieldLength, "name")
	require.Error(t, err)

	got, err := sanitizeText("  fine  ", maxTextFieldLength, "name")
	require.NoError(t, err)
	require.Equal(t, "fine", got)
}

func TestSanitizeListOpts(t *testing.T) {
	t.Parallel()

	opts, err := sanitizeListOpts(dto.ListOpts{})
	require.NoError(t, err)
	require.Equal(t, 1, opts.Page)
	require.Equal(t, dto.DefaultPageSize, opts.Limit)

	_, err = sanitizeListOpts(dto.ListOpts{Limit: dto.MaxPageSize + 1})
	require.Error(t, err)
	require.True(t, errors.Is(err, model.ErrValidation))
}

func TestEstimateReadTime(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, estimateReadTime("short text"))
	require.Equal(t, 1, estimateReadTime(""))

	long := strings.Repeat("word ", readWordsPerMinute*3)
	require.Equal(t, 3, estimateReadTime(long))
}
