package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "infograph-backend/pkg/errors"
)

func strPtr(s string) *string { return &s }

func TestNewUser(t *testing.T) {
	u, err := NewUser("  u@example.com ", strPtr("User"))
	require.NoError(t, err)
	assert.Equal(t, "u@example.com", u.Email)
	assert.NotEmpty(t, u.ID)

	_, err = NewUser("   ", nil)
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestNewResearchSession(t *testing.T) {
	s, err := NewResearchSession("u1", "Summarize EV trends", nil, []string{" ev ", "", "Market"})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, s.Status)
	assert.Equal(t, []string{"ev", "Market"}, s.Tags)

	_, err = NewResearchSession("", "p", nil, nil)
	assert.True(t, pkgerrors.IsValidation(err))
	_, err = NewResearchSession("u1", "  ", nil, nil)
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestSessionApply(t *testing.T) {
	s, err := NewResearchSession("u1", "prompt", strPtr("energy"), []string{"a"})
	require.NoError(t, err)

	require.NoError(t, s.Apply(SessionUpdate{Status: strPtr("completed")}))
	assert.Equal(t, "completed", s.Status)
	assert.Equal(t, "prompt", s.Prompt)
	assert.Equal(t, "energy", *s.Topic)
	assert.Equal(t, []string{"a"}, s.Tags)

	tags := []string{"x", "y"}
	require.NoError(t, s.Apply(SessionUpdate{Topic: strPtr("cars"), Tags: &tags}))
	assert.Equal(t, "cars", *s.Topic)
	assert.Equal(t, []string{"x", "y"}, s.Tags)

	err = s.Apply(SessionUpdate{Status: strPtr(" "), Topic: strPtr("ignored")})
	assert.True(t, pkgerrors.IsValidation(err))
	assert.Equal(t, "cars", *s.Topic, "failed update must not mutate")
}

func TestSessionFilters(t *testing.T) {
	s, err := NewResearchSession("u1", "p", strPtr("Electric Vehicles"), []string{"EV", "Market"})
	require.NoError(t, err)

	assert.True(t, s.TopicContains("vehicle"))
	assert.False(t, s.TopicContains("solar"))

	assert.True(t, s.HasAllTags([]string{"ev", "market"}))
	assert.True(t, s.HasAllTags(nil))
	assert.False(t, s.HasAllTags([]string{"ev", "battery"}))

	noTopic, err := NewResearchSession("u1", "p", nil, []string{"a"})
	require.NoError(t, err)
	assert.False(t, noTopic.TopicContains(""))
	assert.False(t, noTopic.HasAllTags([]string{"a", "b"}))
}

func TestParseTagList(t *testing.T) {
	assert.Nil(t, ParseTagList(""))
	assert.Equal(t, []string{"a", "b"}, ParseTagList("a, b,,"))
}

func TestSessionCloneIsIndependent(t *testing.T) {
	s, err := NewResearchSession("u1", "p", strPtr("t"), []string{"a"})
	require.NoError(t, err)

	c := s.Clone()
	c.Tags[0] = "changed"
	*c.Topic = "changed"

	assert.Equal(t, "a", s.Tags[0])
	assert.Equal(t, "t", *s.Topic)
}

func TestNewSource(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	src, err := NewSource("EV Report", "https://example.com/ev", "Growing sales", 0.9, now)
	require.NoError(t, err)
	assert.Equal(t, now, src.FetchedAt)

	_, err = NewSource("", "https://example.com", "", 0, now)
	assert.True(t, pkgerrors.IsValidation(err))
	_, err = NewSource("t", "not a url", "", 0, now)
	assert.True(t, pkgerrors.IsValidation(err))
	_, err = NewSource("t", "https://example.com", "", 1.2, now)
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestNewMessage(t *testing.T) {
	m, err := NewMessage("s1", RoleUser, "Hello")
	require.NoError(t, err)
	assert.Equal(t, "s1", m.SessionID)

	_, err = NewMessage("s1", RoleAssistant, "   ")
	assert.True(t, pkgerrors.IsValidation(err))
	_, err = NewMessage("s1", "system", "hi")
	assert.True(t, pkgerrors.IsValidation(err))
	_, err = NewMessage("", RoleUser, "hi")
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestInfographicConstructors(t *testing.T) {
	placeholder := NewPlaceholderInfographic("s-1")
	assert.Equal(t, "/static/infographics/s-1.png", placeholder.ImageURL)
	assert.Equal(t, map[string]interface{}{"template": "basic_v1"}, placeholder.LayoutMeta)
	require.NotNil(t, placeholder.SessionID)
	assert.Equal(t, "s-1", *placeholder.SessionID)

	rendered := NewRenderedInfographic(nil, map[string]interface{}{"template": "basic_v1"})
	assert.Equal(t, "/api/infographics/"+rendered.ID+"/image", rendered.ImageURL)
	assert.Nil(t, rendered.SessionID)

	c := rendered.Clone()
	c.LayoutMeta["template"] = "other"
	assert.Equal(t, "basic_v1", rendered.LayoutMeta["template"])
}
