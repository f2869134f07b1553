package pagination

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/SscSPs/alsabqon_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeHistoryToken(t *testing.T) {
	cursor := domain.HistoryCursor{
		Timestamp: time.Date(2025, 1, 16, 11, 0, 0, 123456789, time.UTC),
		ID:        "0f8fad5b-d9cb-469f-a165-70867728950e",
	}

	token := EncodeHistoryToken(cursor)
	assert.NotEmpty(t, token)

	decoded, err := DecodeHistoryToken(token)
	require.NoError(t, err)
	assert.True(t, cursor.Timestamp.Equal(decoded.Timestamp))
	assert.Equal(t, cursor.ID, decoded.ID)
}

func TestEncodeHistoryTokenNormalisesZone(t *testing.T) {
	dubai := time.FixedZone("GST", 4*60*60)
	ts := time.Date(2025, 1, 16, 15, 0, 0, 0, dubai)

	decoded, err := DecodeHistoryToken(EncodeHistoryToken(domain.HistoryCursor{Timestamp: ts, ID: "a"}))
	require.NoError(t, err)
	assert.True(t, ts.Equal(decoded.Timestamp))
	assert.Equal(t, time.UTC, decoded.Timestamp.Location())
}

func TestDecodeHistoryTokenError(t *testing.T) {
	_, err := DecodeHistoryToken("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	noSeparator := base64.URLEncoding.EncodeToString([]byte("2025-01-16T11:00:00Z"))
	_, err = DecodeHistoryToken(noSeparator)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	badTime := base64.URLEncoding.EncodeToString([]byte("notatime|abc"))
	_, err = DecodeHistoryToken(badTime)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "timestamp parse")
}

func TestMultiFieldToken(t *testing.T) {
	token := EncodeMultiFieldToken("one", "two", "three")
	fields, err := DecodeMultiFieldToken(token)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, fields)
}
