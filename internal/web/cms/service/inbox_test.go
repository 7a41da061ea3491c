package service

import (
	"context"
	"testing"

	"github.com/Laisky/errors/v2"
	"github.com/stretchr/testify/require"

	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/dto"
	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/model"
)

func TestCreateContact_RejectsIncompleteSubmissions(t *testing.T) {
	t.Parallel()
	s := &CMS{logger: newTestLogger(t)}

	valid := dto.ContactInput{
		Name:    "Jo Doe",
		Company: "",
		Email:   "jo@example.com",
		Phone:   "+351 912 345 678",
		Message: "hello there",
	}

	cases := []struct {
		name   string
		mutate func(*dto.ContactInput)
	}{
		{"missing name", func(in *dto.ContactInput) { in.Name = "" }},
		{"missing email", func(in *dto.ContactInput) { in.Email = "" }},
		{"bad email", func(in *dto.ContactInput) { in.Email = "not-an-email" }},
		{"missing phone", func(in *dto.ContactInput) { in.Phone = "  " }},
		{"missing message", func(in *dto.ContactInput) { in.Message = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := valid
			tc.mutate(&input)

			_, err := s.CreateContact(context.Background(), &input)
			require.Error(t, err)
			require.True(t, errors.Is(err, model.ErrValidation))
		})
	}
}
