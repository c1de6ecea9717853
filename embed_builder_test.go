package discohook

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedBuilder_Build(t *testing.T) {
	embed, err := NewEmbedBuilder().
		WithTitle("Test").
		WithDescription("Description").
		WithURL("https://example.com").
		WithTimestampNow().
		WithColor(0x00FF00).
		WithFooter("footer", "").
		WithAuthor("author", "", "").
		Build()
	require.NoError(t, err)

	assert.Equal(t, "Test", embed.Title)
	assert.Equal(t, "Description", embed.Description)
	assert.NotEmpty(t, embed.Timestamp)
	require.NotNil(t, embed.Color)
	assert.Equal(t, 0x00FF00, *embed.Color)
	require.NotNil(t, embed.Footer)
	assert.Equal(t, "footer", embed.Footer.Text)
	require.NotNil(t, embed.Author)
	assert.Equal(t, "author", embed.Author.Name)
}

func TestEmbedBuilder_ColorIntAndHexEquivalence(t *testing.T) {
	fromInt, err := NewEmbedBuilder().WithColor(0x03B2F8).Build()
	require.NoError(t, err)

	fromHex, err := NewEmbedBuilder().WithHexColor("03b2f8").Build()
	require.NoError(t, err)

	fromPrefixedHex, err := NewEmbedBuilder().WithHexColor("#03B2F8").Build()
	require.NoError(t, err)

	require.NotNil(t, fromInt.Color)
	require.NotNil(t, fromHex.Color)
	require.NotNil(t, fromPrefixedHex.Color)
	assert.Equal(t, *fromInt.Color, *fromHex.Color)
	assert.Equal(t, *fromInt.Color, *fromPrefixedHex.Color)
}

func TestEmbedBuilder_InvalidHexColor(t *testing.T) {
	_, err := NewEmbedBuilder().WithHexColor("not-a-color").Build()
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestEmbedBuilder_ColorOutOfRange(t *testing.T) {
	_, err := NewEmbedBuilder().WithColor(0x1000000).Build()
	require.Error(t, err)

	_, err = NewEmbedBuilder().WithColor(-1).Build()
	require.Error(t, err)
}

func TestEmbedBuilder_ZeroColorSurvivesSerialization(t *testing.T) {
	embed, err := NewEmbedBuilder().WithColor(0).Build()
	require.NoError(t, err)

	data, err := json.Marshal(embed)
	require.NoError(t, err)
	assert.JSONEq(t, `{"color":0}`, string(data))
}

func TestEmbedBuilder_UnixTimestamp(t *testing.T) {
	embed, err := NewEmbedBuilder().WithUnixTimestamp(1609459200).Build()
	require.NoError(t, err)
	assert.Equal(t, "2021-01-01T00:00:00", embed.Timestamp)
}

func TestEmbedBuilder_AddThenRemoveFieldIsUndo(t *testing.T) {
	builder := NewEmbedBuilder()
	assert.Empty(t, builder.Fields())

	builder.AddField("name", "value", true)
	require.Len(t, builder.Fields(), 1)

	require.NoError(t, builder.RemoveField(0))
	assert.Empty(t, builder.Fields())
}

func TestEmbedBuilder_RemoveFieldOutOfRange(t *testing.T) {
	builder := NewEmbedBuilder().AddField("name", "value", false)

	err := builder.RemoveField(5)
	require.Error(t, err)

	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)

	err = builder.RemoveField(-1)
	require.Error(t, err)

	// The valid field is untouched.
	assert.Len(t, builder.Fields(), 1)
}

func TestEmbedBuilder_FieldOrderPreserved(t *testing.T) {
	builder := NewEmbedBuilder().
		AddField("first", "1", false).
		AddField("second", "2", false).
		AddField("third", "3", false)

	require.NoError(t, builder.RemoveField(1))

	fields := builder.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "first", fields[0].Name)
	assert.Equal(t, "third", fields[1].Name)
}

func TestEmbedBuilder_SettersAreIndependent(t *testing.T) {
	embed, err := NewEmbedBuilder().
		WithFooter("footer", "").
		WithImage("https://example.com/image.png").
		Build()
	require.NoError(t, err)

	require.NotNil(t, embed.Footer)
	require.NotNil(t, embed.Image)
	assert.Nil(t, embed.Thumbnail)
}

func TestEmbedBuilder_ValidateLimits(t *testing.T) {
	longTitle := make([]byte, 257)
	for i := range longTitle {
		longTitle[i] = 'a'
	}

	err := NewEmbedBuilder().WithTitle(string(longTitle)).Validate()
	require.Error(t, err)

	err = NewEmbedBuilder().WithTitle("ok").AddField("", "value", false).Validate()
	require.Error(t, err)
}

func TestEmbed_IsEmpty(t *testing.T) {
	assert.True(t, Embed{}.IsEmpty())

	embed, err := NewEmbedBuilder().WithTitle("t").Build()
	require.NoError(t, err)
	assert.False(t, embed.IsEmpty())

	embed, err = NewEmbedBuilder().WithColor(0).Build()
	require.NoError(t, err)
	assert.False(t, embed.IsEmpty())
}
