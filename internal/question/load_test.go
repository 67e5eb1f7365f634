package question

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `[
  {
    "question": "Which operators are unary?",
    "options": [
      {"text": "Selection", "correct": true},
      {"text": "Join", "correct": false},
      {"text": "Projection", "correct": true}
    ]
  },
  {
    "question": "Which operators are set operators?",
    "options": [
      {"text": "Union", "correct": true},
      {"text": "Rename", "correct": false}
    ]
  }
]`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestParseJSON(t *testing.T) {
	qs, err := ParseJSON([]byte(sampleJSON))
	require.NoError(t, err)
	require.Len(t, qs, 2)

	assert.Equal(t, "Which operators are unary?", qs[0].Prompt)
	require.Len(t, qs[0].Options, 3)
	assert.Equal(t, "Projection", qs[0].Options[2].Text)
	assert.True(t, qs[0].Options[2].Correct)
	assert.Equal(t, 2, qs[0].CorrectCount())
	assert.Equal(t, 1, qs[1].CorrectCount())
}

func TestParseJSON_Empty(t *testing.T) {
	qs, err := ParseJSON([]byte(`[]`))
	require.NoError(t, err)
	assert.NotNil(t, qs)
	assert.Empty(t, qs)
}

func TestParseJSON_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{"question":`},
		{"object instead of array", `{"question": "q", "options": []}`},
		{"missing options", `[{"question": "q"}]`},
		{"missing prompt", `[{"options": []}]`},
		{"empty prompt", `[{"question": "", "options": []}]`},
		{"option without flag", `[{"question": "q", "options": [{"text": "a"}]}]`},
		{"flag is a string", `[{"question": "q", "options": [{"text": "a", "correct": "yes"}]}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON([]byte(tt.raw))
			assert.Error(t, err)
		})
	}
}

func TestParseJSON_ExtraFieldsAllowed(t *testing.T) {
	raw := `[{"question": "q", "topic": "algebra", "options": [{"text": "a", "correct": true, "note": "x"}]}]`
	qs, err := ParseJSON([]byte(raw))
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.True(t, qs[0].IsCorrect(0))
}

func TestLoad_JSON(t *testing.T) {
	p := writeFile(t, "questions.json", sampleJSON)

	set, err := Load(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, p, set.Source)
	assert.Equal(t, 2, set.Len())
}

func TestLoad_MissingFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nope.json")

	_, err := Load(context.Background(), p)
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, p, loadErr.Path)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoad_MalformedFile(t *testing.T) {
	p := writeFile(t, "questions.json", `[{"question": 1}]`)

	_, err := Load(context.Background(), p)
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	p := writeFile(t, "questions.yaml", "- question: q\n")

	_, err := Load(context.Background(), p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func createBank(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "bank.db")

	db, err := sql.Open("sqlite", p)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(BankSchema)
	require.NoError(t, err)

	// Positions are deliberately out of id order.
	stmts := []string{
		`INSERT INTO questions (id, position, prompt) VALUES (1, 2, 'Second')`,
		`INSERT INTO questions (id, position, prompt) VALUES (2, 1, 'First')`,
		`INSERT INTO options (question_id, position, text, correct) VALUES (1, 1, 'b', 1)`,
		`INSERT INTO options (question_id, position, text, correct) VALUES (1, 0, 'a', 0)`,
		`INSERT INTO options (question_id, position, text, correct) VALUES (2, 0, 'x', 1)`,
		`INSERT INTO options (question_id, position, text, correct) VALUES (2, 1, 'y', 1)`,
		`INSERT INTO options (question_id, position, text, correct) VALUES (2, 2, 'z', 0)`,
	}
	for _, s := range stmts {
		_, err := db.Exec(s)
		require.NoError(t, err)
	}
	return p
}

func TestLoad_SQLite(t *testing.T) {
	p := createBank(t)

	set, err := Load(context.Background(), p)
	require.NoError(t, err)
	require.Equal(t, 2, set.Len())

	first := set.Questions[0]
	assert.Equal(t, "First", first.Prompt)
	require.Len(t, first.Options, 3)
	assert.Equal(t, []string{"x", "y", "z"}, []string{first.Options[0].Text, first.Options[1].Text, first.Options[2].Text})
	assert.Equal(t, 2, first.CorrectCount())

	second := set.Questions[1]
	assert.Equal(t, "Second", second.Prompt)
	require.Len(t, second.Options, 2)
	assert.Equal(t, "a", second.Options[0].Text)
	assert.False(t, second.Options[0].Correct)
	assert.True(t, second.Options[1].Correct)
}

func TestLoad_SQLiteMissing(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing.db")

	_, err := Load(context.Background(), p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoad_SQLiteWithoutTables(t *testing.T) {
	p := filepath.Join(t.TempDir(), "empty.sqlite")
	db, err := sql.Open("sqlite", p)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE unrelated (id INTEGER)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = Load(context.Background(), p)
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
}

func TestSummarize(t *testing.T) {
	set := &Set{Questions: []Question{
		{Prompt: "ok", Options: []Option{{Text: "a", Correct: true}, {Text: "b"}}},
		{Prompt: "none", Options: []Option{{Text: "a"}}},
		{Prompt: "wide", Options: []Option{
			{Text: "1", Correct: true}, {Text: "2"}, {Text: "3"}, {Text: "4"}, {Text: "5"}, {Text: "6"},
		}},
	}}

	sum := Summarize(set)
	require.Len(t, sum.Questions, 3)
	assert.Equal(t, 2, sum.Warnings)

	assert.False(t, sum.Questions[0].NoCorrect)
	assert.False(t, sum.Questions[0].OverSlots)
	assert.True(t, sum.Questions[1].NoCorrect)
	assert.True(t, sum.Questions[2].OverSlots)
	assert.Equal(t, 6, sum.Questions[2].OptionCount)
}

func TestSummarize_Nil(t *testing.T) {
	sum := Summarize(nil)
	assert.Empty(t, sum.Questions)
	assert.Zero(t, sum.Warnings)
}
