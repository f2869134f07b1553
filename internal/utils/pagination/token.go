package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/alsabqon_app/internal/core/domain"
)

const timeFormat = time.RFC3339Nano

// EncodeHistoryToken creates a base64 encoded token from the last entry of a history page.
// Entries are ordered by (timestamp, id) so the pair is a stable resume point.
func EncodeHistoryToken(cursor domain.HistoryCursor) string {
	return EncodeMultiFieldToken(cursor.Timestamp.UTC().Format(timeFormat), cursor.ID)
}

// DecodeHistoryToken parses a token produced by EncodeHistoryToken.
func DecodeHistoryToken(token string) (domain.HistoryCursor, error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return domain.HistoryCursor{}, err
	}
	if len(parts) != 2 || parts[1] == "" {
		return domain.HistoryCursor{}, fmt.Errorf("invalid pagination token format (split)")
	}

	ts, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return domain.HistoryCursor{}, fmt.Errorf("invalid pagination token format (timestamp parse): %w", err)
	}
	return domain.HistoryCursor{Timestamp: ts, ID: parts[1]}, nil
}

// EncodeMultiFieldToken creates a token with any number of string fields
func EncodeMultiFieldToken(fields ...string) string {
	return base64.URLEncoding.EncodeToString([]byte(strings.Join(fields, "|")))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	return strings.Split(string(decodedBytes), "|"), nil
}
