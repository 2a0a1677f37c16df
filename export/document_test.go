package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/evo-body/body"
)

func generate(t *testing.T, shape body.Shape, fill float64) Document {
	t.Helper()
	seg, err := body.New(shape, body.Dimensions{Size: 6, AppendageDiameter: 1, AppendageLength: 2}, body.StrategyShuffle)
	require.NoError(t, err)
	apps, err := seg.Appendages(fill, body.NewRand(8))
	require.NoError(t, err)
	return New(seg, fill, 8, apps)
}

func TestNew_Fields(t *testing.T) {
	doc := generate(t, body.ShapeCube, 0.5)

	_, err := uuid.Parse(doc.ID)
	assert.NoError(t, err)
	assert.Equal(t, 54, doc.SlotCount)
	assert.Equal(t, 27, doc.Requested)
	assert.Len(t, doc.Appendages, 27)
	assert.Zero(t, doc.Shortfall())
}

func TestEncode_MatchesSchema(t *testing.T) {
	for _, shape := range []body.Shape{body.ShapeCube, body.ShapeSphere} {
		var buf bytes.Buffer
		require.NoError(t, generate(t, shape, 0.3).Encode(&buf))
		assert.NoError(t, Validate(buf.Bytes()), shape.String())
		assert.Contains(t, buf.String(), `"shape": "`+shape.String()+`"`)
	}
}

func TestEncode_EmptyAppendagesIsArray(t *testing.T) {
	doc := generate(t, body.ShapeCube, 0)

	var buf bytes.Buffer
	require.NoError(t, doc.Encode(&buf))
	assert.Contains(t, buf.String(), `"appendages": []`)
	assert.NoError(t, Validate(buf.Bytes()))
}

func TestDecode_RoundTrip(t *testing.T) {
	doc := generate(t, body.ShapeCube, 0.25)

	var buf bytes.Buffer
	require.NoError(t, doc.Encode(&buf))
	got, err := Decode(&buf)
	require.NoError(t, err)

	if diff := cmp.Diff(doc, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{`},
		{"missing fields", `{"id":"x"}`},
		{"bad shape", `{"id":"x","version":"1.0","shape":"torus","strategy":"retry","seed":1,"fill":0.5,
			"dimensions":{"size":1,"appendage_diameter":0.1,"appendage_length":0},
			"slot_count":0,"requested":0,"appendages":[]}`},
		{"fill out of range", `{"id":"x","version":"1.0","shape":"cube","strategy":"retry","seed":1,"fill":2,
			"dimensions":{"size":1,"appendage_diameter":0.1,"appendage_length":0},
			"slot_count":0,"requested":0,"appendages":[]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, Validate([]byte(tt.raw)))
		})
	}
}

func TestWriteReadFile(t *testing.T) {
	dir := t.TempDir()
	doc := generate(t, body.ShapeSphere, 0.75)

	for _, name := range []string{"body.json", "nested/body.json.zst"} {
		path := filepath.Join(dir, name)
		require.NoError(t, WriteFile(path, doc), name)

		got, err := ReadFile(path)
		require.NoError(t, err, name)
		if diff := cmp.Diff(doc, got); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
		}
	}

	plain, err := os.ReadFile(filepath.Join(dir, "body.json"))
	require.NoError(t, err)
	packed, err := os.ReadFile(filepath.Join(dir, "nested/body.json.zst"))
	require.NoError(t, err)
	assert.Less(t, len(packed), len(plain))

	_, err = ReadFile(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
