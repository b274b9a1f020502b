package validation_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"tasklist/internal/models"
	"tasklist/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issues(t *testing.T, err error) []validation.Issue {
	t.Helper()
	var verr *validation.Error
	require.True(t, errors.As(validation.FromValidator(err), &verr), "expected *validation.Error, got %v", err)
	return verr.Issues
}

func TestRegisterInput(t *testing.T) {
	v := validation.New()

	err := v.Struct(models.RegisterInput{FirstName: "Ada", LastName: "L", Email: "ada@example.com", Password: "long enough"})
	assert.NoError(t, err)

	err = v.Struct(models.RegisterInput{Email: "not-an-email", Password: "short"})
	got := issues(t, err)
	assert.Contains(t, got, validation.Issue{Path: "firstName", Message: "is required"})
	assert.Contains(t, got, validation.Issue{Path: "lastName", Message: "is required"})
	assert.Contains(t, got, validation.Issue{Path: "email", Message: "must be a valid email address"})
	assert.Contains(t, got, validation.Issue{Path: "password", Message: "must be at least 8 characters"})
}

func TestEnumsAndColors(t *testing.T) {
	v := validation.New()

	status := models.TaskStatus("LATER")
	err := v.Struct(models.NewTask{TaskName: "x", Status: &status})
	assert.Contains(t, issues(t, err), validation.Issue{Path: "status", Message: "must be one of: TODO, IN_PROGRESS, DONE"})

	color := "black"
	err = v.Struct(models.NewList{Title: "Groceries", Color: &color})
	assert.Equal(t, "color", issues(t, err)[0].Path)

	format := models.DateFormatISO
	assert.NoError(t, v.Struct(models.SettingsPatch{DateFormat: &format}))
}

func TestPatchesNeedAtLeastOneField(t *testing.T) {
	v := validation.New()

	err := v.Struct(models.TaskUpdate{ID: 3})
	assert.Contains(t, issues(t, err), validation.Issue{Path: "", Message: "at least one field besides id must be provided"})

	err = v.Struct(models.ListPatch{})
	assert.Len(t, issues(t, err), 1)

	err = v.Struct(models.UserPatch{})
	assert.Len(t, issues(t, err), 1)

	archived := true
	assert.NoError(t, v.Struct(models.TaskUpdate{ID: 3, Archived: &archived}))

	// An explicit null listId counts as a supplied field.
	var upd models.TaskUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"listId":null}`), &upd))
	assert.NoError(t, v.Struct(upd))

	err = v.Struct(models.TaskUpdate{Archived: &archived})
	assert.Contains(t, issues(t, err), validation.Issue{Path: "id", Message: "is required"})
}

func TestTaskUpdate_NullableDescription(t *testing.T) {
	v := validation.New()

	var cleared models.TaskUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"id":3,"description":null}`), &cleared))
	assert.True(t, cleared.Description.Set)
	assert.Nil(t, cleared.Description.Value)
	assert.NoError(t, v.Struct(cleared))

	var tooLong models.TaskUpdate
	body, err := json.Marshal(map[string]interface{}{"id": 3, "description": strings.Repeat("x", 2001)})
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, &tooLong))
	assert.Contains(t, issues(t, v.Struct(tooLong)), validation.Issue{Path: "description", Message: "must be at most 2000 characters"})
}

func TestFromValidator_PassesThroughOtherErrors(t *testing.T) {
	other := errors.New("boom")
	assert.Same(t, other, validation.FromValidator(other))
}

func TestError_Message(t *testing.T) {
	err := &validation.Error{Issues: []validation.Issue{{Path: "email", Message: "is required"}}}
	assert.Equal(t, "validation failed: email: is required", err.Error())
}
