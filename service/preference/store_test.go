package preference

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/guitarfest/model"
)

func festPreferences() model.Preferences {
	return model.Preferences{
		{Person: "ty", Items: []model.Item{"guitar_1", "guitar_2", "guitar_3"}},
		{Person: "helene", Items: []model.Item{"guitar_1", "guitar_2", "guitar_4"}},
		{Person: "alex", Items: []model.Item{"guitar_2", "guitar_3", "guitar_4"}},
		{Person: "dominique", Items: []model.Item{"guitar_4", "guitar_1", "guitar_2"}},
	}
}

func TestDecodeCSV(t *testing.T) {
	testCases := []struct {
		description string
		data        string
		comma       rune
		header      bool
		expect      model.Preferences
		expectErr   error
	}{
		{
			description: "worked example with header and blank cells",
			data: "person,first,second,third\n" +
				"ty,guitar_1,guitar_2,guitar_3\n" +
				"helene, guitar_1 ,,guitar_2,guitar_4\n" +
				"# late entry\n" +
				"alex,guitar_2,guitar_3,guitar_4,,\n" +
				",,,\n" +
				"dominique,guitar_4,guitar_1,guitar_2\n",
			comma:  ',',
			header: true,
			expect: festPreferences(),
		},
		{
			description: "short and empty lists",
			data:        "ty\tguitar_1\nalex\n",
			comma:       '\t',
			expect: model.Preferences{
				{Person: "ty", Items: []model.Item{"guitar_1"}},
				{Person: "alex"},
			},
		},
		{
			description: "items without person",
			data:        "ty,guitar_1\n,guitar_2\n",
			comma:       ',',
			expectErr:   model.ErrMalformedPreference,
		},
		{
			description: "duplicate person",
			data:        "ty,guitar_1\nty,guitar_2\n",
			comma:       ',',
			expectErr:   model.ErrDuplicatePerson,
		},
		{
			description: "bad quoting",
			data:        "ty,\"guitar_1\n",
			comma:       ',',
			expectErr:   model.ErrMalformedPreference,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			actual, err := DecodeCSV([]byte(tc.data), tc.comma, tc.header)
			if tc.expectErr != nil {
				assert.True(t, errors.Is(err, tc.expectErr), err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expect, actual)
		})
	}
}

func TestDecodeYAML(t *testing.T) {
	testCases := []struct {
		description string
		data        string
		expect      model.Preferences
		expectErr   bool
	}{
		{
			description: "worked example keeps document order",
			data: "ty: [guitar_1, guitar_2, guitar_3]\n" +
				"helene: [guitar_1, guitar_2, guitar_4]\n" +
				"alex:\n  - guitar_2\n  - guitar_3\n  - ''\n  - guitar_4\n" +
				"dominique: [guitar_4, guitar_1, guitar_2]\n",
			expect: festPreferences(),
		},
		{
			description: "person without items",
			data:        "ty:\n",
			expect:      model.Preferences{{Person: "ty"}},
		},
		{
			description: "empty document",
			data:        "",
		},
		{
			description: "not a mapping",
			data:        "- ty\n- alex\n",
			expectErr:   true,
		},
		{
			description: "nested items",
			data:        "ty: [[guitar_1]]\n",
			expectErr:   true,
		},
		{
			description: "duplicate person",
			data:        "ty: [guitar_1]\nty: [guitar_2]\n",
			expectErr:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			actual, err := DecodeYAML([]byte(tc.data))
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expect, actual)
		})
	}
}

func TestService_Load(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "prefs.csv")
	yamlPath := filepath.Join(dir, "prefs.yml")
	txtPath := filepath.Join(dir, "prefs.txt")
	assert.NoError(t, os.WriteFile(csvPath, []byte("ty,guitar_1\n"), 0o644))
	assert.NoError(t, os.WriteFile(yamlPath, []byte("ty: [guitar_1]\n"), 0o644))
	assert.NoError(t, os.WriteFile(txtPath, []byte("ty,guitar_1\n"), 0o644))
	expect := model.Preferences{{Person: "ty", Items: []model.Item{"guitar_1"}}}

	testCases := []struct {
		description string
		url         string
		options     []Option
		expectErr   bool
	}{
		{description: "csv inferred", url: csvPath},
		{description: "yaml inferred", url: yamlPath},
		{description: "format forced", url: txtPath, options: []Option{WithFormat("CSV")}},
		{description: "unknown extension", url: txtPath, expectErr: true},
		{description: "missing file", url: filepath.Join(dir, "missing.csv"), expectErr: true},
		{description: "empty url", url: "", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			actual, err := New(tc.url, tc.options...).Load(context.Background())
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, expect, actual)
		})
	}
}

func TestStatic_Load(t *testing.T) {
	actual, err := Static(festPreferences()).Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, festPreferences(), actual)
}
