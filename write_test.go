package tablefy_test

import (
	"bytes"
	"testing"

	"github.com/bjaus/tablefy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFormats(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format tablefy.Format
		want   string
	}{
		"csv": {format: tablefy.CSV, want: "Name,Age\nAlice,30\nBob,25\n"},
		"tsv": {format: tablefy.TSV, want: "Name\tAge\nAlice\t30\nBob\t25\n"},
		"markdown": {format: tablefy.Markdown, want: "" +
			"| Name  | Age |\n" +
			"| ----- | --- |\n" +
			"| Alice | 30  |\n" +
			"| Bob   | 25  |\n"},
		"json":  {format: tablefy.JSON, want: `[{"Name":"Alice","Age":"30"},{"Name":"Bob","Age":"25"}]` + "\n"},
		"jsonl": {format: tablefy.JSONL, want: `{"Name":"Alice","Age":"30"}` + "\n" + `{"Name":"Bob","Age":"25"}` + "\n"},
		"html": {format: tablefy.HTML, want: "" +
			"<table>\n" +
			"  <thead>\n" +
			"    <tr>\n" +
			"      <th>Name</th>\n" +
			"      <th>Age</th>\n" +
			"    </tr>\n" +
			"  </thead>\n" +
			"  <tbody>\n" +
			"    <tr>\n" +
			"      <td>Alice</td>\n" +
			"      <td>30</td>\n" +
			"    </tr>\n" +
			"    <tr>\n" +
			"      <td>Bob</td>\n" +
			"      <td>25</td>\n" +
			"    </tr>\n" +
			"  </tbody>\n" +
			"</table>\n"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			require.NoError(t, peopleTable().Write(&buf, tt.format))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteText(t *testing.T) {
	t.Parallel()
	table := peopleTable()
	var buf bytes.Buffer
	require.NoError(t, table.Write(&buf, tablefy.Text))
	assert.Equal(t, table.String(), buf.String())
}

func TestWriteYAML(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.NoError(t, peopleTable().Write(&buf, tablefy.YAML))
	out := buf.String()
	assert.Contains(t, out, "- Name: Alice\n")
	assert.Contains(t, out, `Age: "30"`)
	assert.Contains(t, out, "- Name: Bob\n")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Alice")), bytes.Index(buf.Bytes(), []byte("Bob")))
}

func TestWriteEmptyTable(t *testing.T) {
	t.Parallel()
	table := tablefy.IntoTable([]person{})
	tests := map[string]struct {
		format tablefy.Format
		want   string
	}{
		"csv":   {format: tablefy.CSV, want: "Name,Age\n"},
		"tsv":   {format: tablefy.TSV, want: "Name\tAge\n"},
		"json":  {format: tablefy.JSON, want: "[]\n"},
		"jsonl": {format: tablefy.JSONL, want: ""},
		"yaml":  {format: tablefy.YAML, want: "[]\n"},
		"markdown": {format: tablefy.Markdown, want: "" +
			"| Name | Age |\n" +
			"| ---- | --- |\n"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			require.NoError(t, table.Write(&buf, tt.format))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteCSVQuoted(t *testing.T) {
	t.Parallel()
	table := tablefy.IntoTable([]person{{Name: "hello, world", Age: 30}})
	var buf bytes.Buffer
	require.NoError(t, table.Write(&buf, tablefy.CSV))
	assert.Contains(t, buf.String(), `"hello, world"`)
}

func TestWriteMarkdownAligned(t *testing.T) {
	t.Parallel()
	table := tablefy.NewTable()
	table.SetHeader([]string{"L", "C", "R"})
	table.AddRow([]string{"a", "b", "c"})
	table.SetAlignments([]tablefy.Alignment{tablefy.AlignLeft, tablefy.AlignCenter, tablefy.AlignRight})
	var buf bytes.Buffer
	require.NoError(t, table.Write(&buf, tablefy.Markdown))
	want := "" +
		"| L   |  C  |   R |\n" +
		"| --- | :-: | --: |\n" +
		"| a   |  b  |   c |\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteMarkdownEscapesPipes(t *testing.T) {
	t.Parallel()
	table := tablefy.NewTable()
	table.SetHeader([]string{"Expr"})
	table.AddRow([]string{"a|b"})
	var buf bytes.Buffer
	require.NoError(t, table.Write(&buf, tablefy.Markdown))
	assert.Contains(t, buf.String(), `| a\|b |`)
}

func TestWriteMarkdownRequiresHeader(t *testing.T) {
	t.Parallel()
	table := tablefy.NewTable()
	table.AddRow([]string{"a"})
	var buf bytes.Buffer
	err := table.Write(&buf, tablefy.Markdown)
	assert.ErrorIs(t, err, tablefy.ErrMissingHeader)
}

func TestWriteHTMLTitleAndAlignment(t *testing.T) {
	t.Parallel()
	table := peopleTable()
	table.SetTitle("<People>")
	table.SetAlignments([]tablefy.Alignment{tablefy.AlignCenter, tablefy.AlignRight})
	var buf bytes.Buffer
	require.NoError(t, table.Write(&buf, tablefy.HTML))
	out := buf.String()
	assert.Contains(t, out, "<caption>&lt;People&gt;</caption>")
	assert.Contains(t, out, `<th style="text-align: center">Name</th>`)
	assert.Contains(t, out, `<td style="text-align: right">30</td>`)
}

func TestWriteJSONWithoutHeader(t *testing.T) {
	t.Parallel()
	table := tablefy.NewTable()
	table.SetHeader([]string{"A"})
	table.AddRow([]string{"1", "<2>"})
	var buf bytes.Buffer
	require.NoError(t, table.Write(&buf, tablefy.JSONL))
	assert.Equal(t, `{"A":"1","column2":"<2>"}`+"\n", buf.String())
}

func TestWriteUnsupportedFormat(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := peopleTable().Write(&buf, tablefy.Format("xml"))
	assert.ErrorIs(t, err, tablefy.ErrUnsupportedFormat)
}

func TestMarshal(t *testing.T) {
	t.Parallel()
	data, err := peopleTable().Marshal(tablefy.CSV)
	require.NoError(t, err)
	assert.Equal(t, "Name,Age\nAlice,30\nBob,25\n", string(data))

	_, err = peopleTable().Marshal(tablefy.Format("xml"))
	assert.Error(t, err)
}

func TestWriteErrors(t *testing.T) {
	t.Parallel()
	for _, f := range tablefy.Formats() {
		t.Run(f.String(), func(t *testing.T) {
			t.Parallel()
			err := peopleTable().Write(&errWriter{}, f)
			assert.Error(t, err)
		})
	}
}
