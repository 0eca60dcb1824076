package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name  string `json:"name" validate:"required,min=2,max=100"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"omitempty,phonepattern"`
	Date  string `json:"date" validate:"required,dateformat"`
	Time  string `json:"time" validate:"required,timeslot"`
	Type  string `json:"meeting_type" validate:"omitempty,oneof=video phone in_person"`
}

func validSample() sampleRequest {
	return sampleRequest{
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Date:  "2026-01-15",
		Time:  "10:00",
	}
}

func fieldNames(errs FieldErrors) []string {
	names := make([]string, len(errs))
	for i, fe := range errs {
		names[i] = fe.Field
	}
	return names
}

func TestValidateStruct(t *testing.T) {
	t.Run("Valid Struct Passes", func(t *testing.T) {
		assert.NoError(t, ValidateStruct(validSample()))
	})

	t.Run("Field Names Come From JSON Tags", func(t *testing.T) {
		req := validSample()
		req.Email = "not-an-email"
		req.Type = "hologram"

		err := ValidateStruct(req)
		require.Error(t, err)

		var fieldErrs FieldErrors
		require.True(t, errors.As(err, &fieldErrs))
		assert.ElementsMatch(t, []string{"email", "meeting_type"}, fieldNames(fieldErrs))
	})

	t.Run("Timeslot Tag", func(t *testing.T) {
		for _, bad := range []string{"24:00", "9:00", "10:60", "noon"} {
			req := validSample()
			req.Time = bad
			assert.Error(t, ValidateStruct(req), "expected %q to fail", bad)
		}
		for _, good := range []string{"00:00", "10:30", "23:59", "10:30:00"} {
			req := validSample()
			req.Time = good
			assert.NoError(t, ValidateStruct(req), "expected %q to pass", good)
		}
	})

	t.Run("Phonepattern Tag", func(t *testing.T) {
		for _, good := range []string{"+1 (555) 123-4567", "555.123.4567", "84951234567"} {
			req := validSample()
			req.Phone = good
			assert.NoError(t, ValidateStruct(req), "expected %q to pass", good)
		}
		for _, bad := range []string{"call me", "555-123x", "+-()"} {
			req := validSample()
			req.Phone = bad
			assert.Error(t, ValidateStruct(req), "expected %q to fail", bad)
		}
	})

	t.Run("Dateformat Tag", func(t *testing.T) {
		for _, bad := range []string{"15.01.2026", "2026-13-01", "2026-01-32", "tomorrow"} {
			req := validSample()
			req.Date = bad
			assert.Error(t, ValidateStruct(req), "expected %q to fail", bad)
		}
	})

	t.Run("Messages Are Human Readable", func(t *testing.T) {
		req := validSample()
		req.Name = ""

		err := ValidateStruct(req)
		var fieldErrs FieldErrors
		require.True(t, errors.As(err, &fieldErrs))
		require.Len(t, fieldErrs, 1)
		assert.Equal(t, "name", fieldErrs[0].Field)
		assert.Equal(t, "name is required", fieldErrs[0].Message)
	})

	t.Run("Error String Joins Fields", func(t *testing.T) {
		req := validSample()
		req.Name = ""
		req.Email = ""

		err := ValidateStruct(req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed:")
	})
}
