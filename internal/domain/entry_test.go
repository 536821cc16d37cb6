package domain

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntries(t *testing.T) {
	t.Run("well formed lines", func(t *testing.T) {
		input := "windSpeedWaveFactor:0.42\nwaveWeight:2\n"
		entries, skipped, err := ParseEntries(strings.NewReader(input))

		require.NoError(t, err)
		assert.Empty(t, skipped)
		want := []ConfigEntry{
			{Key: "windSpeedWaveFactor", RawValue: "0.42"},
			{Key: "waveWeight", RawValue: "2"},
		}
		if diff := cmp.Diff(want, entries); diff != "" {
			t.Fatalf("entries mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("splits on first colon only", func(t *testing.T) {
		entries, _, err := ParseEntries(strings.NewReader("note:a:b"))

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "note", entries[0].Key)
		assert.Equal(t, "a:b", entries[0].RawValue)
	})

	t.Run("CRLF line endings", func(t *testing.T) {
		entries, skipped, err := ParseEntries(strings.NewReader("waveWeight:1.5\r\nsmallWavesValueMultiplier:0.1\r\n"))

		require.NoError(t, err)
		assert.Empty(t, skipped)
		require.Len(t, entries, 2)
		assert.Equal(t, "1.5", entries[0].RawValue)
		assert.Equal(t, "0.1", entries[1].RawValue)
	})

	t.Run("malformed line is skipped, rest kept", func(t *testing.T) {
		input := strings.Join([]string{
			"windSpeedWaveFactor:0.5",
			"this line has no separator",
			"waveInertiaWindScale:0.6",
			":novalue",
			"waveWeight:0.7",
		}, "\n")
		entries, skipped, err := ParseEntries(strings.NewReader(input))

		require.NoError(t, err)
		assert.Len(t, entries, 3)
		require.Len(t, skipped, 2)
		assert.Equal(t, 2, skipped[0].Line)
		assert.Equal(t, 4, skipped[1].Line)
		assert.True(t, errors.Is(skipped[0], ErrLineMalformed))
		assert.Contains(t, skipped[0].Error(), "line 2")
	})

	t.Run("blank and comment lines ignored", func(t *testing.T) {
		entries, skipped, err := ParseEntries(strings.NewReader("\n# tuned for rough seas\n   \nwaveWeight:3\n"))

		require.NoError(t, err)
		assert.Empty(t, skipped)
		assert.Len(t, entries, 1)
	})

	t.Run("very long lines do not drop the rest", func(t *testing.T) {
		input := strings.Join([]string{
			"windSpeedWaveFactor:0.42",
			"# " + strings.Repeat("~", 70*1024),
			"notes:" + strings.Repeat("x", 70*1024),
			"waveWeight:2",
		}, "\n")
		entries, skipped, err := ParseEntries(strings.NewReader(input))

		require.NoError(t, err)
		assert.Empty(t, skipped)
		require.Len(t, entries, 3)
		assert.Equal(t, "0.42", entries[0].RawValue)
		assert.Len(t, entries[1].RawValue, 70*1024)
		assert.Equal(t, "2", entries[2].RawValue)
	})

	t.Run("read error is returned", func(t *testing.T) {
		_, _, err := ParseEntries(iotest.ErrReader(errors.New("disk gone")))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "read tunables")
	})

	t.Run("empty input", func(t *testing.T) {
		entries, skipped, err := ParseEntries(strings.NewReader(""))

		require.NoError(t, err)
		assert.Empty(t, entries)
		assert.Empty(t, skipped)
	})
}

func TestGetValue(t *testing.T) {
	entries := []ConfigEntry{
		{Key: "oldwaveWeightBackup", RawValue: "9"},
		{Key: "waveWeight", RawValue: "2"},
		{Key: "windSpeedWaveFactor", RawValue: "0.4"},
	}

	tests := []struct {
		name      string
		key       string
		mode      MatchMode
		wantValue string
		wantFound bool
	}{
		{"contains returns first containing key", "waveWeight", MatchContains, "9", true},
		{"exact skips containing keys", "waveWeight", MatchExact, "2", true},
		{"exact match", "windSpeedWaveFactor", MatchExact, "0.4", true},
		{"missing key contains", "smallWavesValueMultiplier", MatchContains, "", false},
		{"missing key exact", "wave", MatchExact, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, found := GetValue(entries, tt.key, tt.mode)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func TestParseMatchMode(t *testing.T) {
	mode, err := ParseMatchMode("")
	require.NoError(t, err)
	assert.Equal(t, MatchContains, mode)

	mode, err = ParseMatchMode("EXACT")
	require.NoError(t, err)
	assert.Equal(t, MatchExact, mode)
	assert.Equal(t, "exact", mode.String())

	_, err = ParseMatchMode("fuzzy")
	require.Error(t, err)
}
